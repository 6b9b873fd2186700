package store

import "time"

// OrderStatus is the fulfillment state of an order.
type OrderStatus string

const (
	OrderPending    OrderStatus = "pending"
	OrderConfirmed  OrderStatus = "confirmed"
	OrderProcessing OrderStatus = "processing"
	OrderShipped    OrderStatus = "shipped"
	OrderDelivered  OrderStatus = "delivered"
	OrderCancelled  OrderStatus = "cancelled"
	OrderRefunded   OrderStatus = "refunded"
)

// Cancellable reports whether an order in this status may still be
// cancelled. Once an order is processing or beyond, cancellation is closed.
func (s OrderStatus) Cancellable() bool {
	return s == OrderPending || s == OrderConfirmed
}

// ProductCategory is the catalog category of a product.
type ProductCategory string

const (
	CategoryElectronics ProductCategory = "electronics"
	CategoryClothing    ProductCategory = "clothing"
	CategoryBooks       ProductCategory = "books"
	CategoryHome        ProductCategory = "home"
	CategorySports      ProductCategory = "sports"
	CategoryBeauty      ProductCategory = "beauty"
	CategoryToys        ProductCategory = "toys"
	CategoryFood        ProductCategory = "food"
)

// Categories lists every valid product category, used for tool argument
// enum constraints.
func Categories() []string {
	return []string{
		string(CategoryElectronics),
		string(CategoryClothing),
		string(CategoryBooks),
		string(CategoryHome),
		string(CategorySports),
		string(CategoryBeauty),
		string(CategoryToys),
		string(CategoryFood),
	}
}

// ProductReview is a customer review attached to a product.
type ProductReview struct {
	ReviewerName     string  `json:"reviewer_name"`
	Rating           float64 `json:"rating"`
	Comment          string  `json:"comment"`
	VerifiedPurchase bool    `json:"verified_purchase"`
	Date             string  `json:"date"`
}

// Product is one catalog entry.
type Product struct {
	ID             string            `json:"id"`
	Name           string            `json:"name"`
	Description    string            `json:"description"`
	Category       ProductCategory   `json:"category"`
	Price          float64           `json:"price"`
	OriginalPrice  float64           `json:"original_price,omitempty"`
	Stock          int               `json:"stock"`
	Brand          string            `json:"brand"`
	SKU            string            `json:"sku"`
	Rating         float64           `json:"rating"`
	ReviewCount    int               `json:"review_count"`
	Reviews        []ProductReview   `json:"reviews,omitempty"`
	Tags           []string          `json:"tags,omitempty"`
	InStock        bool              `json:"in_stock"`
	Specifications map[string]string `json:"specifications,omitempty"`
}

// DiscountPercentage returns the discount relative to the original price,
// rounded to one decimal, or 0 when the product is not discounted.
func (p Product) DiscountPercentage() float64 {
	if p.OriginalPrice <= p.Price {
		return 0
	}
	pct := (1 - p.Price/p.OriginalPrice) * 100
	return float64(int(pct*10+0.5)) / 10
}

// OrderItem is one line of an order.
type OrderItem struct {
	ProductID   string  `json:"product_id"`
	ProductName string  `json:"product_name"`
	Quantity    int     `json:"quantity"`
	UnitPrice   float64 `json:"unit_price"`
	TotalPrice  float64 `json:"total_price"`
}

// ShippingAddress is the delivery address of an order.
type ShippingAddress struct {
	FullName   string `json:"full_name"`
	Street     string `json:"street"`
	City       string `json:"city"`
	State      string `json:"state"`
	PostalCode string `json:"postal_code"`
	Country    string `json:"country"`
}

// TrackingEvent is one step in an order's shipping history.
type TrackingEvent struct {
	Timestamp   time.Time `json:"timestamp"`
	Status      string    `json:"status"`
	Location    string    `json:"location"`
	Description string    `json:"description"`
}

// Order is a customer order, including its tracking history oldest first.
type Order struct {
	ID                string          `json:"id"`
	CustomerID        string          `json:"customer_id"`
	CustomerEmail     string          `json:"customer_email"`
	Items             []OrderItem     `json:"items"`
	Status            OrderStatus     `json:"status"`
	ShippingAddress   ShippingAddress `json:"shipping_address"`
	Subtotal          float64         `json:"subtotal"`
	ShippingCost      float64         `json:"shipping_cost"`
	Tax               float64         `json:"tax"`
	Total             float64         `json:"total"`
	CreatedAt         time.Time       `json:"created_at"`
	UpdatedAt         time.Time       `json:"updated_at"`
	TrackingNumber    string          `json:"tracking_number,omitempty"`
	TrackingEvents    []TrackingEvent `json:"tracking_events,omitempty"`
	EstimatedDelivery string          `json:"estimated_delivery,omitempty"`
}

// Customer is one account record.
type Customer struct {
	ID            string    `json:"id"`
	Email         string    `json:"email"`
	FullName      string    `json:"full_name"`
	Phone         string    `json:"phone,omitempty"`
	TotalOrders   int       `json:"total_orders"`
	TotalSpent    float64   `json:"total_spent"`
	LoyaltyPoints int       `json:"loyalty_points"`
	CreatedAt     time.Time `json:"created_at"`
}
