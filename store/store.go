package store

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"
)

// ErrNotFound is returned when a product, order or customer does not exist.
var ErrNotFound = errors.New("not found")

// NotCancellableError is returned by CancelOrder when the order's current
// status does not allow cancellation. It carries the status so callers can
// surface it to the customer.
type NotCancellableError struct {
	OrderID string
	Status  OrderStatus
}

func (e *NotCancellableError) Error() string {
	return fmt.Sprintf("order %s cannot be cancelled in status %s", e.OrderID, e.Status)
}

// SearchFilter narrows a product search. Zero values leave the dimension
// unfiltered.
type SearchFilter struct {
	Category    ProductCategory
	MaxPrice    float64
	MinRating   float64
	InStockOnly bool
}

// Store is the in-memory product, order and customer repository shared by
// all agents. It is read-mostly; the only mutation is order cancellation.
// Safe for concurrent use.
type Store struct {
	mu        sync.RWMutex
	products  []Product
	orders    map[string]*Order
	customers []Customer
}

// NewStore creates a store populated with the demo data set.
func NewStore() *Store {
	orders := make(map[string]*Order)
	for _, o := range seedOrders(time.Now().UTC()) {
		o := o
		orders[o.ID] = &o
	}
	return &Store{
		products:  seedProducts(),
		orders:    orders,
		customers: seedCustomers(),
	}
}

// Products returns the full catalog.
func (s *Store) Products() []Product {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]Product(nil), s.products...)
}

// ProductByID returns the product with the given ID.
func (s *Store) ProductByID(id string) (*Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, p := range s.products {
		if p.ID == id {
			p := p
			return &p, nil
		}
	}
	return nil, fmt.Errorf("product %q: %w", id, ErrNotFound)
}

// ProductsByCategory returns all products in the category.
func (s *Store) ProductsByCategory(category ProductCategory) []Product {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []Product
	for _, p := range s.products {
		if p.Category == category {
			out = append(out, p)
		}
	}
	return out
}

// SearchProducts matches the query case-insensitively against product name,
// description, tags and brand, then applies the filter. A query matching
// nothing yields an empty slice, not an error.
func (s *Store) SearchProducts(query string, filter SearchFilter) []Product {
	s.mu.RLock()
	defer s.mu.RUnlock()

	q := strings.ToLower(query)
	out := []Product{}
	for _, p := range s.products {
		if !matchesQuery(p, q) {
			continue
		}
		if filter.Category != "" && p.Category != filter.Category {
			continue
		}
		if filter.MaxPrice > 0 && p.Price > filter.MaxPrice {
			continue
		}
		if filter.MinRating > 0 && p.Rating < filter.MinRating {
			continue
		}
		if filter.InStockOnly && !p.InStock {
			continue
		}
		out = append(out, p)
	}
	return out
}

// Recommendations returns up to limit products related to the base product
// (same category or overlapping tags) or, without a base, the top-rated
// products of a category or the whole catalog. Results are sorted by rating
// descending.
func (s *Store) Recommendations(productID string, category ProductCategory, limit int) []Product {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if limit <= 0 {
		limit = 4
	}

	var pool []Product
	if productID != "" {
		var base *Product
		for _, p := range s.products {
			if p.ID == productID {
				p := p
				base = &p
				break
			}
		}
		if base != nil {
			for _, p := range s.products {
				if p.ID == base.ID {
					continue
				}
				if p.Category == base.Category || sharesTag(p.Tags, base.Tags) {
					pool = append(pool, p)
				}
			}
		}
	}
	if pool == nil && category != "" {
		for _, p := range s.products {
			if p.Category == category {
				pool = append(pool, p)
			}
		}
	}
	if pool == nil {
		pool = append(pool, s.products...)
	}

	sort.SliceStable(pool, func(i, j int) bool { return pool[i].Rating > pool[j].Rating })
	if len(pool) > limit {
		pool = pool[:limit]
	}
	return pool
}

// OrderByID returns a copy of the order with the given ID.
func (s *Store) OrderByID(id string) (*Order, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	o, ok := s.orders[id]
	if !ok {
		return nil, fmt.Errorf("order %q: %w", id, ErrNotFound)
	}
	return cloneOrder(o), nil
}

// OrdersByCustomer returns all orders of a customer, newest first.
func (s *Store) OrdersByCustomer(customerID string) []Order {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []Order
	for _, o := range s.orders {
		if o.CustomerID == customerID {
			out = append(out, *cloneOrder(o))
		}
	}
	sortOrders(out)
	return out
}

// OrdersByEmail returns all orders placed under the email, newest first.
func (s *Store) OrdersByEmail(email string) []Order {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []Order
	for _, o := range s.orders {
		if strings.EqualFold(o.CustomerEmail, email) {
			out = append(out, *cloneOrder(o))
		}
	}
	sortOrders(out)
	return out
}

// CancelOrder cancels a pending or confirmed order and returns the updated
// order. An ineligible order yields *NotCancellableError and no mutation.
func (s *Store) CancelOrder(id string) (*Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	o, ok := s.orders[id]
	if !ok {
		return nil, fmt.Errorf("order %q: %w", id, ErrNotFound)
	}
	if !o.Status.Cancellable() {
		return nil, &NotCancellableError{OrderID: id, Status: o.Status}
	}

	o.Status = OrderCancelled
	o.UpdatedAt = time.Now().UTC()

	return cloneOrder(o), nil
}

// CustomerByID returns the customer with the given ID.
func (s *Store) CustomerByID(id string) (*Customer, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, c := range s.customers {
		if c.ID == id {
			c := c
			return &c, nil
		}
	}
	return nil, fmt.Errorf("customer %q: %w", id, ErrNotFound)
}

// CustomerByEmail returns the customer registered under the email.
func (s *Store) CustomerByEmail(email string) (*Customer, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, c := range s.customers {
		if strings.EqualFold(c.Email, email) {
			c := c
			return &c, nil
		}
	}
	return nil, fmt.Errorf("customer %q: %w", email, ErrNotFound)
}

func matchesQuery(p Product, q string) bool {
	if q == "" {
		return true
	}
	if strings.Contains(strings.ToLower(p.Name), q) ||
		strings.Contains(strings.ToLower(p.Description), q) ||
		strings.Contains(strings.ToLower(p.Brand), q) {
		return true
	}
	for _, tag := range p.Tags {
		if strings.Contains(strings.ToLower(tag), q) {
			return true
		}
	}
	return false
}

func sharesTag(a, b []string) bool {
	for _, x := range a {
		for _, y := range b {
			if x == y {
				return true
			}
		}
	}
	return false
}

func sortOrders(orders []Order) {
	sort.SliceStable(orders, func(i, j int) bool {
		return orders[i].CreatedAt.After(orders[j].CreatedAt)
	})
}

func cloneOrder(o *Order) *Order {
	c := *o
	c.Items = append([]OrderItem(nil), o.Items...)
	c.TrackingEvents = append([]TrackingEvent(nil), o.TrackingEvents...)
	return &c
}
