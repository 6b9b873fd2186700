package assistant

import (
	"errors"
	"fmt"
	"time"

	"github.com/shopmesh/shopmesh/core"
	"github.com/shopmesh/shopmesh/store"
	"github.com/shopmesh/shopmesh/tool"
)

// NewDomainRegistry builds the registry of catalog, order and customer tools
// backed by st. The same registry is served by the tool backend and used as
// the agents' local fallback. Tool failures are returned as JSON payloads
// with an error field, never as Go errors, so the model can react to them.
func NewDomainRegistry(st *store.Store) *tool.Registry {
	registry := tool.NewRegistry()

	registry.MustRegister(
		searchProductsTool(st),
		productDetailsTool(st),
		productsByCategoryTool(st),
		productAvailabilityTool(st),
		recommendationsTool(st),
		orderStatusTool(st),
		customerOrdersTool(st),
		customerProfileTool(st),
		cancelOrderTool(st),
	)

	return registry
}

func searchProductsTool(st *store.Store) tool.Tool {
	return tool.NewFunctionTool(
		"search_products",
		"Search products by keyword in name, description, tags or brand",
		map[string]any{
			"type": "object",
			"properties": map[string]any{
				"query":         map[string]any{"type": "string", "description": "Search keyword"},
				"category":      map[string]any{"type": "string", "description": "Filter by category", "enum": store.Categories()},
				"max_price":     map[string]any{"type": "number", "description": "Maximum price filter"},
				"min_rating":    map[string]any{"type": "number", "description": "Minimum rating filter (1-5)"},
				"in_stock_only": map[string]any{"type": "boolean", "description": "Return only in-stock items"},
			},
			"required": []string{"query"},
		},
		func(_ *core.ToolContext, args map[string]any) (any, error) {
			query, _ := args["query"].(string)

			filter := store.SearchFilter{}
			if cat, ok := args["category"].(string); ok {
				filter.Category = store.ProductCategory(cat)
			}
			if maxPrice, ok := args["max_price"].(float64); ok {
				filter.MaxPrice = maxPrice
			}
			if minRating, ok := args["min_rating"].(float64); ok {
				filter.MinRating = minRating
			}
			if inStock, ok := args["in_stock_only"].(bool); ok {
				filter.InStockOnly = inStock
			}

			results := st.SearchProducts(query, filter)
			return map[string]any{
				"products": productSummaries(results),
				"total":    len(results),
				"query":    query,
			}, nil
		},
	)
}

func productDetailsTool(st *store.Store) tool.Tool {
	return tool.NewFunctionTool(
		"get_product_details",
		"Get full details of a product by ID including reviews and specifications",
		map[string]any{
			"type": "object",
			"properties": map[string]any{
				"product_id": map[string]any{"type": "string", "description": "Product ID (e.g. prod-001)"},
			},
			"required": []string{"product_id"},
		},
		func(_ *core.ToolContext, args map[string]any) (any, error) {
			id, _ := args["product_id"].(string)
			product, err := st.ProductByID(id)
			if err != nil {
				return errorData("Product %s not found", id), nil
			}
			return product, nil
		},
	)
}

func productsByCategoryTool(st *store.Store) tool.Tool {
	return tool.NewFunctionTool(
		"get_products_by_category",
		"List all products in a specific category",
		map[string]any{
			"type": "object",
			"properties": map[string]any{
				"category": map[string]any{"type": "string", "enum": store.Categories()},
			},
			"required": []string{"category"},
		},
		func(_ *core.ToolContext, args map[string]any) (any, error) {
			cat, _ := args["category"].(string)
			if !validCategory(cat) {
				return errorData("Unknown category: %s", cat), nil
			}
			products := st.ProductsByCategory(store.ProductCategory(cat))
			return map[string]any{
				"products": productSummaries(products),
				"category": cat,
			}, nil
		},
	)
}

func productAvailabilityTool(st *store.Store) tool.Tool {
	return tool.NewFunctionTool(
		"check_product_availability",
		"Check if a product is in stock and get current price",
		map[string]any{
			"type": "object",
			"properties": map[string]any{
				"product_id": map[string]any{"type": "string"},
			},
			"required": []string{"product_id"},
		},
		func(_ *core.ToolContext, args map[string]any) (any, error) {
			id, _ := args["product_id"].(string)
			product, err := st.ProductByID(id)
			if err != nil {
				return errorData("Product %s not found", id), nil
			}
			return map[string]any{
				"product_id":          product.ID,
				"name":                product.Name,
				"in_stock":            product.InStock,
				"stock_count":         product.Stock,
				"price":               product.Price,
				"original_price":      product.OriginalPrice,
				"discount_percentage": product.DiscountPercentage(),
			}, nil
		},
	)
}

func recommendationsTool(st *store.Store) tool.Tool {
	return tool.NewFunctionTool(
		"get_recommendations",
		"Get product recommendations based on a product or category",
		map[string]any{
			"type": "object",
			"properties": map[string]any{
				"product_id": map[string]any{"type": "string", "description": "Base product for recommendations"},
				"category":   map[string]any{"type": "string", "description": "Category for recommendations"},
				"limit":      map[string]any{"type": "integer", "description": "Max number of recommendations", "default": 4},
			},
		},
		func(_ *core.ToolContext, args map[string]any) (any, error) {
			productID, _ := args["product_id"].(string)
			category, _ := args["category"].(string)

			limit := 4
			if l, ok := args["limit"].(float64); ok && l > 0 {
				limit = int(l)
			}

			recs := st.Recommendations(productID, store.ProductCategory(category), limit)
			return map[string]any{"recommendations": productSummaries(recs)}, nil
		},
	)
}

func orderStatusTool(st *store.Store) tool.Tool {
	return tool.NewFunctionTool(
		"get_order_status",
		"Get current status and tracking info for an order",
		map[string]any{
			"type": "object",
			"properties": map[string]any{
				"order_id": map[string]any{"type": "string", "description": "Order ID (e.g. ord-001)"},
			},
			"required": []string{"order_id"},
		},
		func(_ *core.ToolContext, args map[string]any) (any, error) {
			id, _ := args["order_id"].(string)
			order, err := st.OrderByID(id)
			if err != nil {
				return errorData("Order %s not found", id), nil
			}

			items := make([]map[string]any, 0, len(order.Items))
			for _, item := range order.Items {
				items = append(items, map[string]any{"name": item.ProductName, "qty": item.Quantity})
			}

			events := make([]map[string]any, 0, len(order.TrackingEvents))
			for _, ev := range order.TrackingEvents {
				events = append(events, map[string]any{
					"timestamp":   ev.Timestamp.Format(time.RFC3339),
					"status":      ev.Status,
					"location":    ev.Location,
					"description": ev.Description,
				})
			}

			return map[string]any{
				"order_id":           order.ID,
				"status":             string(order.Status),
				"tracking_number":    order.TrackingNumber,
				"estimated_delivery": order.EstimatedDelivery,
				"items":              items,
				"total":              order.Total,
				"tracking_events":    events,
			}, nil
		},
	)
}

func customerOrdersTool(st *store.Store) tool.Tool {
	return tool.NewFunctionTool(
		"get_customer_orders",
		"Get all orders for a customer by email or customer ID",
		map[string]any{
			"type": "object",
			"properties": map[string]any{
				"email":       map[string]any{"type": "string", "description": "Customer email"},
				"customer_id": map[string]any{"type": "string", "description": "Customer ID"},
			},
		},
		func(_ *core.ToolContext, args map[string]any) (any, error) {
			email, _ := args["email"].(string)
			customerID, _ := args["customer_id"].(string)

			var orders []store.Order
			switch {
			case email != "":
				orders = st.OrdersByEmail(email)
			case customerID != "":
				orders = st.OrdersByCustomer(customerID)
			default:
				return errorData("Provide either email or customer_id"), nil
			}

			summaries := make([]map[string]any, 0, len(orders))
			for _, o := range orders {
				summaries = append(summaries, map[string]any{
					"id":              o.ID,
					"status":          string(o.Status),
					"total":           o.Total,
					"item_count":      len(o.Items),
					"created_at":      o.CreatedAt.Format(time.RFC3339),
					"tracking_number": o.TrackingNumber,
				})
			}

			return map[string]any{"orders": summaries, "total": len(orders)}, nil
		},
	)
}

func customerProfileTool(st *store.Store) tool.Tool {
	return tool.NewFunctionTool(
		"get_customer_profile",
		"Get customer profile including loyalty points and order history",
		map[string]any{
			"type": "object",
			"properties": map[string]any{
				"email":       map[string]any{"type": "string"},
				"customer_id": map[string]any{"type": "string"},
			},
		},
		func(_ *core.ToolContext, args map[string]any) (any, error) {
			email, _ := args["email"].(string)
			customerID, _ := args["customer_id"].(string)

			var (
				customer *store.Customer
				err      error
			)
			switch {
			case email != "":
				customer, err = st.CustomerByEmail(email)
			case customerID != "":
				customer, err = st.CustomerByID(customerID)
			default:
				return errorData("Provide either email or customer_id"), nil
			}
			if err != nil {
				return errorData("Customer not found"), nil
			}

			return customer, nil
		},
	)
}

func cancelOrderTool(st *store.Store) tool.Tool {
	return tool.NewFunctionTool(
		"cancel_order",
		"Cancel a pending or confirmed order",
		map[string]any{
			"type": "object",
			"properties": map[string]any{
				"order_id": map[string]any{"type": "string"},
				"reason":   map[string]any{"type": "string", "description": "Reason for cancellation"},
			},
			"required": []string{"order_id"},
		},
		func(_ *core.ToolContext, args map[string]any) (any, error) {
			id, _ := args["order_id"].(string)

			order, err := st.CancelOrder(id)
			if err != nil {
				var notCancellable *store.NotCancellableError
				if errors.As(err, &notCancellable) {
					return map[string]any{
						"error":       fmt.Sprintf("Order cannot be cancelled. Current status: %s", notCancellable.Status),
						"cancellable": false,
					}, nil
				}
				return errorData("Order %s not found", id), nil
			}

			return map[string]any{
				"success":       true,
				"order_id":      order.ID,
				"message":       fmt.Sprintf("Order %s has been cancelled successfully. Refund will be processed in 3-5 business days.", order.ID),
				"refund_amount": order.Total,
			}, nil
		},
	)
}

func productSummaries(products []store.Product) []map[string]any {
	out := make([]map[string]any, 0, len(products))
	for _, p := range products {
		out = append(out, map[string]any{
			"id":                  p.ID,
			"name":                p.Name,
			"category":            string(p.Category),
			"price":               p.Price,
			"original_price":      p.OriginalPrice,
			"discount_percentage": p.DiscountPercentage(),
			"rating":              p.Rating,
			"review_count":        p.ReviewCount,
			"in_stock":            p.InStock,
			"brand":               p.Brand,
			"tags":                p.Tags,
		})
	}
	return out
}

func validCategory(cat string) bool {
	for _, c := range store.Categories() {
		if c == cat {
			return true
		}
	}
	return false
}

func errorData(format string, args ...any) map[string]any {
	return map[string]any{"error": fmt.Sprintf(format, args...)}
}
