package store

import "time"

// seedProducts returns the demo catalog. Product IDs are stable so tests
// and example utterances can reference them.
func seedProducts() []Product {
	return []Product{
		{
			ID:            "prod-001",
			Name:          "Sony WH-1000XM5 Wireless Headphones",
			Description:   "Industry-leading noise cancellation. 30-hour battery life, quick charge support and crystal-clear sound quality.",
			Category:      CategoryElectronics,
			Price:         899.99,
			OriginalPrice: 1099.99,
			Stock:         45,
			Brand:         "Sony",
			SKU:           "SONY-WH1000XM5-BLK",
			Rating:        4.8,
			ReviewCount:   1247,
			Tags:          []string{"headphones", "bluetooth", "noise cancelling", "sony", "premium"},
			InStock:       true,
			Specifications: map[string]string{
				"Connectivity": "Bluetooth 5.2",
				"Battery Life": "30 hours",
				"Weight":       "250g",
				"Color":        "Black",
				"Warranty":     "2 years",
			},
			Reviews: []ProductReview{
				{ReviewerName: "Alex M.", Rating: 5.0, Comment: "Amazing noise cancellation. Indispensable on flights.", VerifiedPurchase: true, Date: "2024-11-15"},
				{ReviewerName: "Sarah K.", Rating: 4.5, Comment: "Great sound quality but a bit heavy.", VerifiedPurchase: true, Date: "2024-12-01"},
			},
		},
		{
			ID:            "prod-002",
			Name:          "Apple MacBook Pro 14\" M3 Pro",
			Description:   "Professional performance with the M3 Pro chip. Up to 18 hours of battery life, Liquid Retina XDR display.",
			Category:      CategoryElectronics,
			Price:         54999.99,
			OriginalPrice: 59999.99,
			Stock:         12,
			Brand:         "Apple",
			SKU:           "APPLE-MBP14-M3PRO-SLV",
			Rating:        4.9,
			ReviewCount:   567,
			Tags:          []string{"laptop", "apple", "macbook", "m3", "professional"},
			InStock:       true,
			Specifications: map[string]string{
				"Processor": "Apple M3 Pro",
				"RAM":       "18GB",
				"Storage":   "512GB SSD",
				"Display":   "14.2\" Liquid Retina XDR",
				"Battery":   "18 hours",
			},
			Reviews: []ProductReview{
				{ReviewerName: "Ben S.", Rating: 5.0, Comment: "Very productive as a developer machine. Build times are incredibly fast.", VerifiedPurchase: true, Date: "2024-10-20"},
			},
		},
		{
			ID:            "prod-003",
			Name:          "Nike Air Max 270 Sneakers",
			Description:   "Maximum comfort with Max Air cushioning. Breathable mesh upper.",
			Category:      CategoryClothing,
			Price:         2199.99,
			OriginalPrice: 2799.99,
			Stock:         78,
			Brand:         "Nike",
			SKU:           "NIKE-AM270-WHT-42",
			Rating:        4.6,
			ReviewCount:   3421,
			Tags:          []string{"shoes", "sports", "nike", "running", "comfortable"},
			InStock:       true,
			Specifications: map[string]string{
				"Sizes":    "36-47",
				"Material": "Mesh + Leather",
				"Sole":     "Foam + Air Max",
				"Use":      "Daily / Running",
			},
			Reviews: []ProductReview{
				{ReviewerName: "Fiona B.", Rating: 4.0, Comment: "Very comfortable, perfect for daily city wear.", VerifiedPurchase: true, Date: "2024-11-28"},
				{ReviewerName: "Mark A.", Rating: 5.0, Comment: "Great value for money.", VerifiedPurchase: true, Date: "2024-12-10"},
			},
		},
		{
			ID:            "prod-004",
			Name:          "Kindle Paperwhite (11th Gen)",
			Description:   "300 ppi display, 10 weeks of battery life, waterproof design. 8GB storage.",
			Category:      CategoryElectronics,
			Price:         1299.99,
			OriginalPrice: 1499.99,
			Stock:         156,
			Brand:         "Amazon",
			SKU:           "AMZN-KINDLE-PW11-BLK",
			Rating:        4.7,
			ReviewCount:   8934,
			Tags:          []string{"e-reader", "kindle", "amazon", "reading", "books"},
			InStock:       true,
			Specifications: map[string]string{
				"Display":      "6.8\" 300ppi E Ink",
				"Storage":      "8GB",
				"Battery Life": "10 weeks",
				"Waterproof":   "IPX8",
			},
			Reviews: []ProductReview{
				{ReviewerName: "Ella C.", Rating: 5.0, Comment: "Completely rediscovered reading. No eye strain at all.", VerifiedPurchase: true, Date: "2024-09-15"},
			},
		},
		{
			ID:            "prod-005",
			Name:          "Dyson V15 Detect Cordless Vacuum",
			Description:   "Laser dust detection technology. 60 minutes of battery life, HEPA filtration.",
			Category:      CategoryHome,
			Price:         12999.99,
			OriginalPrice: 14999.99,
			Stock:         23,
			Brand:         "Dyson",
			SKU:           "DYSON-V15-DETECT",
			Rating:        4.8,
			ReviewCount:   2156,
			Tags:          []string{"vacuum", "cordless", "dyson", "cleaning", "home"},
			InStock:       true,
			Specifications: map[string]string{
				"Battery Life": "60 minutes",
				"Suction":      "230AW",
				"Filter":       "HEPA",
				"Weight":       "3.1kg",
			},
		},
		{
			ID:            "prod-006",
			Name:          "Samsung Galaxy S24 Ultra",
			Description:   "200MP camera, 5000mAh battery, Snapdragon 8 Gen 3, S Pen included.",
			Category:      CategoryElectronics,
			Price:         47999.99,
			OriginalPrice: 52999.99,
			Stock:         34,
			Brand:         "Samsung",
			SKU:           "SAMSUNG-S24U-BLK-256",
			Rating:        4.7,
			ReviewCount:   4521,
			Tags:          []string{"phone", "samsung", "galaxy", "android", "camera"},
			InStock:       true,
			Specifications: map[string]string{
				"Processor": "Snapdragon 8 Gen 3",
				"RAM":       "12GB",
				"Storage":   "256GB",
				"Camera":    "200MP + 12MP + 10MP + 50MP",
				"Battery":   "5000mAh",
				"Display":   "6.8\" Dynamic AMOLED 2X",
			},
			Reviews: []ProductReview{
				{ReviewerName: "Chris T.", Rating: 5.0, Comment: "Camera quality rivals professional cameras.", VerifiedPurchase: true, Date: "2024-10-05"},
			},
		},
		{
			ID:            "prod-007",
			Name:          "Levi's 501 Original Men's Jeans",
			Description:   "The iconic straight-fit Levi's 501. 100% cotton, durable and timeless style.",
			Category:      CategoryClothing,
			Price:         899.99,
			OriginalPrice: 1099.99,
			Stock:         0,
			Brand:         "Levi's",
			SKU:           "LEVIS-501-32X32-BLU",
			Rating:        4.5,
			ReviewCount:   12453,
			Tags:          []string{"jeans", "denim", "men", "levi's", "classic"},
			InStock:       false,
			Specifications: map[string]string{
				"Sizes":    "All sizes",
				"Material": "100% Cotton",
				"Fit":      "Straight",
				"Color":    "Blue",
			},
		},
		{
			ID:            "prod-008",
			Name:          "Philips Hue Starter Kit (4 Bulbs + Bridge)",
			Description:   "Smart home lighting system. 16 million colors, app-controlled.",
			Category:      CategoryHome,
			Price:         2499.99,
			OriginalPrice: 2999.99,
			Stock:         67,
			Brand:         "Philips",
			SKU:           "PHILIPS-HUE-SK4",
			Rating:        4.4,
			ReviewCount:   5671,
			Tags:          []string{"smart home", "lighting", "philips", "hue", "automation"},
			InStock:       true,
			Specifications: map[string]string{
				"Bulbs":    "4",
				"Protocol": "Zigbee / Bluetooth",
				"Colors":   "16 million",
				"Power":    "9W (75W equivalent)",
			},
		},
		{
			ID:            "prod-009",
			Name:          "Atomic Habits - James Clear",
			Description:   "The big impact of small habits. A worldwide bestseller with over 10 million copies sold.",
			Category:      CategoryBooks,
			Price:         89.99,
			OriginalPrice: 119.99,
			Stock:         234,
			Brand:         "Avery",
			SKU:           "BOOK-ATOMIC-HABITS",
			Rating:        4.9,
			ReviewCount:   34521,
			Tags:          []string{"book", "self improvement", "habits", "bestseller"},
			InStock:       true,
			Specifications: map[string]string{
				"Pages":     "320",
				"Language":  "English",
				"Publisher": "Avery",
				"Edition":   "15th printing",
			},
		},
		{
			ID:            "prod-010",
			Name:          "Nespresso Vertuo Next Coffee Machine",
			Description:   "Perfect espresso with Centrifusion technology. 5 cup sizes, smart capsule recognition.",
			Category:      CategoryHome,
			Price:         3299.99,
			OriginalPrice: 3999.99,
			Stock:         45,
			Brand:         "Nespresso",
			SKU:           "NESPRESSO-VERTUO-NEXT",
			Rating:        4.6,
			ReviewCount:   7823,
			Tags:          []string{"coffee", "nespresso", "espresso", "capsule", "kitchen"},
			InStock:       true,
			Specifications: map[string]string{
				"Capacity":  "1.1L",
				"Pressure":  "19 bar",
				"Heat-up":   "30 seconds",
				"Cup Sizes": "5 different",
			},
		},
	}
}

func seedCustomers() []Customer {
	return []Customer{
		{
			ID:            "cust-001",
			Email:         "alex.morgan@example.com",
			FullName:      "Alex Morgan",
			Phone:         "+1 555 123 4567",
			TotalOrders:   8,
			TotalSpent:    12450.50,
			LoyaltyPoints: 1245,
			CreatedAt:     time.Date(2023, 3, 15, 0, 0, 0, 0, time.UTC),
		},
		{
			ID:            "cust-002",
			Email:         "sarah.kim@example.com",
			FullName:      "Sarah Kim",
			Phone:         "+1 555 987 6543",
			TotalOrders:   3,
			TotalSpent:    3210.00,
			LoyaltyPoints: 321,
			CreatedAt:     time.Date(2024, 1, 8, 0, 0, 0, 0, time.UTC),
		},
		{
			ID:            "cust-003",
			Email:         "michael.davis@example.com",
			FullName:      "Michael Davis",
			Phone:         "+1 555 456 7890",
			TotalOrders:   15,
			TotalSpent:    45670.00,
			LoyaltyPoints: 4567,
			CreatedAt:     time.Date(2022, 7, 22, 0, 0, 0, 0, time.UTC),
		},
	}
}

// seedOrders returns the demo orders. Tracking events are ordered oldest
// first; timestamps are relative to now so the data always looks recent.
func seedOrders(now time.Time) []Order {
	return []Order{
		{
			ID:            "ord-001",
			CustomerID:    "cust-001",
			CustomerEmail: "alex.morgan@example.com",
			Items: []OrderItem{
				{ProductID: "prod-001", ProductName: "Sony WH-1000XM5 Wireless Headphones", Quantity: 1, UnitPrice: 899.99, TotalPrice: 899.99},
			},
			Status: OrderShipped,
			ShippingAddress: ShippingAddress{
				FullName: "Alex Morgan", Street: "42 Main Street", City: "Springfield",
				State: "IL", PostalCode: "62701", Country: "US",
			},
			Subtotal:          899.99,
			ShippingCost:      0,
			Tax:               161.99,
			Total:             1061.98,
			CreatedAt:         now.Add(-3 * 24 * time.Hour),
			UpdatedAt:         now.Add(-12 * time.Hour),
			TrackingNumber:    "TK123456789TR",
			EstimatedDelivery: now.Add(48 * time.Hour).Format("2006-01-02"),
			TrackingEvents: []TrackingEvent{
				{Timestamp: now.Add(-3 * 24 * time.Hour), Status: "Order Received", Location: "Springfield Warehouse", Description: "Your order has been registered"},
				{Timestamp: now.Add(-2 * 24 * time.Hour), Status: "Shipped", Location: "Springfield Distribution Center", Description: "Your package was handed to the carrier"},
				{Timestamp: now.Add(-12 * time.Hour), Status: "Out for Delivery", Location: "Springfield West Branch", Description: "Your package reached the delivery branch"},
			},
		},
		{
			ID:            "ord-002",
			CustomerID:    "cust-001",
			CustomerEmail: "alex.morgan@example.com",
			Items: []OrderItem{
				{ProductID: "prod-009", ProductName: "Atomic Habits - James Clear", Quantity: 2, UnitPrice: 89.99, TotalPrice: 179.98},
				{ProductID: "prod-004", ProductName: "Kindle Paperwhite (11th Gen)", Quantity: 1, UnitPrice: 1299.99, TotalPrice: 1299.99},
			},
			Status: OrderDelivered,
			ShippingAddress: ShippingAddress{
				FullName: "Alex Morgan", Street: "42 Main Street", City: "Springfield",
				State: "IL", PostalCode: "62701", Country: "US",
			},
			Subtotal:       1479.97,
			ShippingCost:   0,
			Tax:            266.39,
			Total:          1746.36,
			CreatedAt:      now.Add(-15 * 24 * time.Hour),
			UpdatedAt:      now.Add(-10 * 24 * time.Hour),
			TrackingNumber: "TK987654321TR",
			TrackingEvents: []TrackingEvent{
				{Timestamp: now.Add(-15 * 24 * time.Hour), Status: "Order Received", Location: "Springfield Warehouse", Description: "Your order has been registered"},
				{Timestamp: now.Add(-10 * 24 * time.Hour), Status: "Delivered", Location: "Springfield", Description: "Your package was delivered at the door"},
			},
		},
		{
			ID:            "ord-003",
			CustomerID:    "cust-002",
			CustomerEmail: "sarah.kim@example.com",
			Items: []OrderItem{
				{ProductID: "prod-003", ProductName: "Nike Air Max 270 Sneakers", Quantity: 1, UnitPrice: 2199.99, TotalPrice: 2199.99},
			},
			Status: OrderProcessing,
			ShippingAddress: ShippingAddress{
				FullName: "Sarah Kim", Street: "15 Bay Avenue", City: "Portland",
				State: "OR", PostalCode: "97201", Country: "US",
			},
			Subtotal:          2199.99,
			ShippingCost:      0,
			Tax:               396.00,
			Total:             2595.99,
			CreatedAt:         now.Add(-6 * time.Hour),
			UpdatedAt:         now.Add(-2 * time.Hour),
			EstimatedDelivery: now.Add(72 * time.Hour).Format("2006-01-02"),
		},
		{
			ID:            "ord-004",
			CustomerID:    "cust-003",
			CustomerEmail: "michael.davis@example.com",
			Items: []OrderItem{
				{ProductID: "prod-002", ProductName: "Apple MacBook Pro 14\" M3 Pro", Quantity: 1, UnitPrice: 54999.99, TotalPrice: 54999.99},
			},
			Status: OrderConfirmed,
			ShippingAddress: ShippingAddress{
				FullName: "Michael Davis", Street: "7 Liberty Lane", City: "Austin",
				State: "TX", PostalCode: "78701", Country: "US",
			},
			Subtotal:          54999.99,
			ShippingCost:      0,
			Tax:               9899.99,
			Total:             64899.98,
			CreatedAt:         now.Add(-2 * time.Hour),
			UpdatedAt:         now.Add(-1 * time.Hour),
			EstimatedDelivery: now.Add(5 * 24 * time.Hour).Format("2006-01-02"),
		},
	}
}
