package store

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSearchProductsMatchesNameTagsAndBrand(t *testing.T) {
	s := NewStore()

	byName := s.SearchProducts("kindle", SearchFilter{})
	require.Len(t, byName, 1)
	assert.Equal(t, "prod-004", byName[0].ID)

	byBrand := s.SearchProducts("sony", SearchFilter{})
	require.Len(t, byBrand, 1)
	assert.Equal(t, "prod-001", byBrand[0].ID)

	byTag := s.SearchProducts("smart home", SearchFilter{})
	require.Len(t, byTag, 1)
	assert.Equal(t, "prod-008", byTag[0].ID)
}

func TestSearchProductsNoMatchReturnsEmpty(t *testing.T) {
	s := NewStore()

	results := s.SearchProducts("quantum flux capacitor", SearchFilter{})
	assert.NotNil(t, results)
	assert.Empty(t, results)
}

func TestSearchProductsFilters(t *testing.T) {
	s := NewStore()

	cheap := s.SearchProducts("", SearchFilter{Category: CategoryElectronics, MaxPrice: 2000})
	for _, p := range cheap {
		assert.Equal(t, CategoryElectronics, p.Category)
		assert.LessOrEqual(t, p.Price, 2000.0)
	}
	require.NotEmpty(t, cheap)

	inStock := s.SearchProducts("levi's", SearchFilter{InStockOnly: true})
	assert.Empty(t, inStock, "prod-007 is out of stock")
}

func TestProductByIDNotFound(t *testing.T) {
	s := NewStore()

	_, err := s.ProductByID("prod-999")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDiscountPercentage(t *testing.T) {
	p, err := NewStore().ProductByID("prod-001")
	require.NoError(t, err)
	assert.InDelta(t, 18.2, p.DiscountPercentage(), 0.05)

	full := Product{Price: 10, OriginalPrice: 10}
	assert.Zero(t, full.DiscountPercentage())
}

func TestRecommendationsRelatedToProduct(t *testing.T) {
	s := NewStore()

	recs := s.Recommendations("prod-001", "", 4)
	require.NotEmpty(t, recs)
	assert.LessOrEqual(t, len(recs), 4)
	for i, p := range recs {
		assert.NotEqual(t, "prod-001", p.ID)
		if i > 0 {
			assert.GreaterOrEqual(t, recs[i-1].Rating, p.Rating)
		}
	}
}

func TestRecommendationsByCategory(t *testing.T) {
	s := NewStore()

	recs := s.Recommendations("", CategoryHome, 2)
	require.Len(t, recs, 2)
	for _, p := range recs {
		assert.Equal(t, CategoryHome, p.Category)
	}
}

func TestOrderShippedHasOrderedTrackingEvents(t *testing.T) {
	s := NewStore()

	o, err := s.OrderByID("ord-001")
	require.NoError(t, err)
	assert.Equal(t, OrderShipped, o.Status)
	assert.Equal(t, "TK123456789TR", o.TrackingNumber)
	require.NotEmpty(t, o.TrackingEvents)
	for i := 1; i < len(o.TrackingEvents); i++ {
		assert.True(t, o.TrackingEvents[i].Timestamp.After(o.TrackingEvents[i-1].Timestamp),
			"tracking events must be ordered oldest first")
	}
}

func TestOrdersByEmailNewestFirst(t *testing.T) {
	s := NewStore()

	orders := s.OrdersByEmail("ALEX.MORGAN@example.com")
	require.Len(t, orders, 2)
	assert.Equal(t, "ord-001", orders[0].ID)
	assert.Equal(t, "ord-002", orders[1].ID)
}

func TestCancelOrderDurable(t *testing.T) {
	s := NewStore()

	cancelled, err := s.CancelOrder("ord-004")
	require.NoError(t, err)
	assert.Equal(t, OrderCancelled, cancelled.Status)

	stored, err := s.OrderByID("ord-004")
	require.NoError(t, err)
	assert.Equal(t, OrderCancelled, stored.Status)

	// A second cancel hits the precondition.
	_, err = s.CancelOrder("ord-004")
	var notCancellable *NotCancellableError
	require.ErrorAs(t, err, &notCancellable)
	assert.Equal(t, OrderCancelled, notCancellable.Status)
}

func TestCancelOrderShippedRejectedWithoutMutation(t *testing.T) {
	s := NewStore()

	_, err := s.CancelOrder("ord-001")
	var notCancellable *NotCancellableError
	require.ErrorAs(t, err, &notCancellable)
	assert.Equal(t, OrderShipped, notCancellable.Status)

	stored, err := s.OrderByID("ord-001")
	require.NoError(t, err)
	assert.Equal(t, OrderShipped, stored.Status)
}

func TestCancelOrderNotFound(t *testing.T) {
	s := NewStore()

	_, err := s.CancelOrder("ord-999")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCustomerLookups(t *testing.T) {
	s := NewStore()

	byEmail, err := s.CustomerByEmail("sarah.kim@example.com")
	require.NoError(t, err)
	assert.Equal(t, "cust-002", byEmail.ID)

	byID, err := s.CustomerByID("cust-003")
	require.NoError(t, err)
	assert.Equal(t, 4567, byID.LoyaltyPoints)

	_, err = s.CustomerByEmail("nobody@example.com")
	assert.True(t, errors.Is(err, ErrNotFound))
}

func TestOrderByIDReturnsCopy(t *testing.T) {
	s := NewStore()

	o, err := s.OrderByID("ord-001")
	require.NoError(t, err)
	o.Status = OrderRefunded
	o.TrackingEvents = nil

	again, err := s.OrderByID("ord-001")
	require.NoError(t, err)
	assert.Equal(t, OrderShipped, again.Status)
	assert.NotEmpty(t, again.TrackingEvents)
}
