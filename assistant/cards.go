package assistant

import "github.com/shopmesh/shopmesh/a2a"

// Agent cards published at /.well-known/agent.json. They advertise each
// service's skills to peers and clients; the orchestrator's delegation does
// not depend on them.

// OrchestratorCard describes the public shopping assistant.
func OrchestratorCard(url string) a2a.AgentCard {
	return a2a.AgentCard{
		Name:               "E-Commerce Shopping Assistant",
		Description:        "Intelligent e-commerce assistant. Routes product search, order tracking, price comparison and personalized recommendations to multiple specialist agents.",
		URL:                url,
		Version:            "1.0.0",
		DefaultInputModes:  []string{"text"},
		DefaultOutputModes: []string{"text"},
		Capabilities:       a2a.Capabilities{Streaming: false},
		Skills: []a2a.Skill{
			{
				ID:          "shopping_assistant",
				Name:        "Shopping Assistant",
				Description: "General assistant for products, orders and research",
				Tags:        []string{"shopping", "help", "assistant"},
				Examples: []string{
					"Can you recommend a good pair of headphones?",
					"Where is my order?",
					"How much does the Sony WH-1000XM5 cost?",
					"Show my recent orders",
				},
			},
		},
	}
}

// ProductAgentCard describes the product specialist.
func ProductAgentCard(url string) a2a.AgentCard {
	return a2a.AgentCard{
		Name:               "Product Agent",
		Description:        "E-commerce product expert. Searches, compares and recommends products and looks up prices and reviews on the web.",
		URL:                url,
		Version:            "1.0.0",
		DefaultInputModes:  []string{"text"},
		DefaultOutputModes: []string{"text"},
		Capabilities:       a2a.Capabilities{Streaming: false},
		Skills: []a2a.Skill{
			{
				ID:          "product_search",
				Name:        "Product Search",
				Description: "Search and filter the product catalog",
				Tags:        []string{"product", "search", "catalog"},
				Examples:    []string{"Recommend headphones", "Any laptops under 500 dollars?"},
			},
			{
				ID:          "product_details",
				Name:        "Product Details",
				Description: "Product specifications, reviews and stock information",
				Tags:        []string{"details", "specifications", "reviews"},
				Examples:    []string{"Tell me about prod-001", "What are the specs of the Sony WH-1000XM5?"},
			},
			{
				ID:          "product_recommendations",
				Name:        "Product Recommendations",
				Description: "Personalized product recommendations",
				Tags:        []string{"recommendation", "suggestion", "similar"},
				Examples:    []string{"Recommend me an electronics product", "What is similar to this product?"},
			},
			{
				ID:          "web_price_search",
				Name:        "Web Price Search",
				Description: "Product price and review search on the web",
				Tags:        []string{"web", "price", "comparison", "review"},
				Examples:    []string{"What is the market price of the Sony WH-1000XM5?", "MacBook Pro reviews"},
			},
		},
	}
}

// OrderAgentCard describes the order specialist.
func OrderAgentCard(url string) a2a.AgentCard {
	return a2a.AgentCard{
		Name:               "Order Agent",
		Description:        "E-commerce order management expert. Handles order tracking, cancellation, refunds and customer accounts.",
		URL:                url,
		Version:            "1.0.0",
		DefaultInputModes:  []string{"text"},
		DefaultOutputModes: []string{"text"},
		Capabilities:       a2a.Capabilities{Streaming: false},
		Skills: []a2a.Skill{
			{
				ID:          "order_tracking",
				Name:        "Order Tracking",
				Description: "Order status and shipment tracking details",
				Tags:        []string{"order", "tracking", "shipping"},
				Examples:    []string{"Where is my order ord-001?", "Check my shipping status"},
			},
			{
				ID:          "order_history",
				Name:        "Order History",
				Description: "List all orders of a customer",
				Tags:        []string{"orders", "history"},
				Examples:    []string{"Show all my orders", "What are my recent orders?"},
			},
			{
				ID:          "order_cancellation",
				Name:        "Order Cancellation",
				Description: "Cancel eligible orders and start the refund",
				Tags:        []string{"cancel", "refund"},
				Examples:    []string{"Cancel my order", "Can I cancel ord-003?"},
			},
			{
				ID:          "customer_profile",
				Name:        "Customer Profile",
				Description: "Account details and loyalty points",
				Tags:        []string{"account", "loyalty", "profile"},
				Examples:    []string{"How many loyalty points do I have?", "Tell me about my account"},
			},
		},
	}
}

// SearchAgentCard describes the web research specialist.
func SearchAgentCard(url string) a2a.AgentCard {
	return a2a.AgentCard{
		Name:               "Search Agent",
		Description:        "E-commerce research expert. Provides current information through web search, price comparison and trend analysis.",
		URL:                url,
		Version:            "1.0.0",
		DefaultInputModes:  []string{"text"},
		DefaultOutputModes: []string{"text"},
		Capabilities:       a2a.Capabilities{Streaming: false},
		Skills: []a2a.Skill{
			{
				ID:          "web_search",
				Name:        "Web Search",
				Description: "Search the web for any topic",
				Tags:        []string{"web", "search", "news"},
				Examples:    []string{"Latest news about the iPhone 16", "Laptop recommendations this year"},
			},
			{
				ID:          "price_comparison",
				Name:        "Price Comparison",
				Description: "Compare product prices across platforms",
				Tags:        []string{"price", "comparison"},
				Examples:    []string{"Sony WH-1000XM5 Amazon vs Best Buy", "Where is the cheapest MacBook?"},
			},
			{
				ID:          "product_reviews",
				Name:        "Product Reviews",
				Description: "User reviews and expert opinions from the web",
				Tags:        []string{"reviews", "opinions"},
				Examples:    []string{"Dyson V15 reviews", "Nike Air Max user experiences"},
			},
			{
				ID:          "trending_products",
				Name:        "Trending Products",
				Description: "Trending and best-selling products in a category",
				Tags:        []string{"trending", "best sellers"},
				Examples:    []string{"Trending electronics products", "Best-selling headphones"},
			},
		},
	}
}
