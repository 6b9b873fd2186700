package assistant

import (
	"fmt"

	"github.com/shopmesh/shopmesh/core"
	"github.com/shopmesh/shopmesh/tool"
	"github.com/shopmesh/shopmesh/websearch"
)

// WebSearchTool builds the general web search tool used by the search agent.
func WebSearchTool(client *websearch.Client) tool.Tool {
	return tool.NewFunctionTool(
		"web_search",
		"Search the web for product reviews, price comparisons, news or any current information. search_depth is 'basic' or 'advanced'.",
		map[string]any{
			"type": "object",
			"properties": map[string]any{
				"query":        map[string]any{"type": "string"},
				"search_depth": map[string]any{"type": "string", "enum": []string{websearch.DepthBasic, websearch.DepthAdvanced}, "default": websearch.DepthBasic},
			},
			"required": []string{"query"},
		},
		func(toolCtx *core.ToolContext, args map[string]any) (any, error) {
			query, _ := args["query"].(string)
			depth, _ := args["search_depth"].(string)

			resp, err := client.Search(toolCtx.Context(), websearch.Query{Text: query, Depth: depth, MaxResults: 5})
			if err != nil {
				return searchErrorData(err), nil
			}
			if resp.Disabled {
				return disabledData(resp), nil
			}

			results := make([]map[string]any, 0, len(resp.Results))
			for _, r := range resp.Results {
				results = append(results, map[string]any{
					"title":   r.Title,
					"url":     r.URL,
					"content": clip(r.Content, 600),
					"score":   r.Score,
				})
			}

			return map[string]any{"answer": resp.Answer, "results": results}, nil
		},
	)
}

// WebSearchProductsTool searches the web for product information, used by the
// product agent alongside catalog tools.
func WebSearchProductsTool(client *websearch.Client) tool.Tool {
	return tool.NewFunctionTool(
		"web_search_products",
		"Search the web for product reviews, comparisons, or current market prices",
		map[string]any{
			"type": "object",
			"properties": map[string]any{
				"query": map[string]any{"type": "string"},
			},
			"required": []string{"query"},
		},
		func(toolCtx *core.ToolContext, args map[string]any) (any, error) {
			query, _ := args["query"].(string)

			resp, err := client.Search(toolCtx.Context(), websearch.Query{Text: query, MaxResults: 5})
			if err != nil {
				return searchErrorData(err), nil
			}
			if resp.Disabled {
				return disabledData(resp), nil
			}

			return map[string]any{
				"answer":  resp.Answer,
				"results": snippetData(resp.Results, 3, 500),
			}, nil
		},
	)
}

// WebSearchShippingTool searches for carrier, delivery and return policy
// information, used by the order agent.
func WebSearchShippingTool(client *websearch.Client) tool.Tool {
	return tool.NewFunctionTool(
		"web_search_shipping",
		"Search the web for shipping carriers, delivery times or return policies",
		map[string]any{
			"type": "object",
			"properties": map[string]any{
				"query": map[string]any{"type": "string"},
			},
			"required": []string{"query"},
		},
		func(toolCtx *core.ToolContext, args map[string]any) (any, error) {
			query, _ := args["query"].(string)

			resp, err := client.Search(toolCtx.Context(), websearch.Query{Text: query, MaxResults: 3})
			if err != nil {
				return searchErrorData(err), nil
			}
			if resp.Disabled {
				return disabledData(resp), nil
			}

			return map[string]any{
				"answer":  resp.Answer,
				"results": snippetData(resp.Results, 3, 400),
			}, nil
		},
	)
}

// ComparePricesTool compares a product's prices across retail platforms.
func ComparePricesTool(client *websearch.Client) tool.Tool {
	return tool.NewFunctionTool(
		"compare_prices",
		"Compare a product's prices across different retail platforms (Amazon, Walmart, Best Buy, etc.)",
		map[string]any{
			"type": "object",
			"properties": map[string]any{
				"product_name": map[string]any{"type": "string"},
			},
			"required": []string{"product_name"},
		},
		func(toolCtx *core.ToolContext, args map[string]any) (any, error) {
			productName, _ := args["product_name"].(string)

			query := fmt.Sprintf("%s price comparison Amazon Walmart Best Buy", productName)
			resp, err := client.Search(toolCtx.Context(), websearch.Query{Text: query, MaxResults: 6})
			if err != nil {
				return searchErrorData(err), nil
			}
			if resp.Disabled {
				return disabledData(resp), nil
			}

			sources := make([]map[string]any, 0, len(resp.Results))
			for i, r := range resp.Results {
				if i >= 5 {
					break
				}
				sources = append(sources, map[string]any{
					"source": r.Title,
					"url":    r.URL,
					"info":   clip(r.Content, 400),
				})
			}

			return map[string]any{
				"product":       productName,
				"answer":        resp.Answer,
				"price_sources": sources,
			}, nil
		},
	)
}

// ProductReviewsWebTool finds user and expert reviews for a product on the web.
func ProductReviewsWebTool(client *websearch.Client) tool.Tool {
	return tool.NewFunctionTool(
		"get_product_reviews_web",
		"Search the web for user reviews and expert opinions on a product",
		map[string]any{
			"type": "object",
			"properties": map[string]any{
				"product_name": map[string]any{"type": "string"},
			},
			"required": []string{"product_name"},
		},
		func(toolCtx *core.ToolContext, args map[string]any) (any, error) {
			productName, _ := args["product_name"].(string)

			query := fmt.Sprintf("%s user reviews expert review", productName)
			resp, err := client.Search(toolCtx.Context(), websearch.Query{
				Text:       query,
				Depth:      websearch.DepthAdvanced,
				MaxResults: 5,
			})
			if err != nil {
				return searchErrorData(err), nil
			}
			if resp.Disabled {
				return disabledData(resp), nil
			}

			reviews := make([]map[string]any, 0, len(resp.Results))
			for i, r := range resp.Results {
				if i >= 4 {
					break
				}
				reviews = append(reviews, map[string]any{
					"source":  r.Title,
					"url":     r.URL,
					"excerpt": clip(r.Content, 500),
				})
			}

			return map[string]any{
				"product": productName,
				"summary": resp.Answer,
				"reviews": reviews,
			}, nil
		},
	)
}

// TrendingProductsTool finds trending and best-selling products in a category.
func TrendingProductsTool(client *websearch.Client) tool.Tool {
	return tool.NewFunctionTool(
		"get_trending_products",
		"Search the web for trending and best-selling products in a category",
		map[string]any{
			"type": "object",
			"properties": map[string]any{
				"category": map[string]any{"type": "string"},
			},
			"required": []string{"category"},
		},
		func(toolCtx *core.ToolContext, args map[string]any) (any, error) {
			category, _ := args["category"].(string)

			query := fmt.Sprintf("best %s products trending best sellers", category)
			resp, err := client.Search(toolCtx.Context(), websearch.Query{Text: query, MaxResults: 5})
			if err != nil {
				return searchErrorData(err), nil
			}
			if resp.Disabled {
				return disabledData(resp), nil
			}

			return map[string]any{
				"category":         category,
				"trending_summary": resp.Answer,
				"sources":          snippetData(resp.Results, 4, 400),
			}, nil
		},
	)
}

func snippetData(results []websearch.Snippet, limit, maxContent int) []map[string]any {
	out := make([]map[string]any, 0, limit)
	for i, r := range results {
		if i >= limit {
			break
		}
		out = append(out, map[string]any{
			"title":   r.Title,
			"url":     r.URL,
			"content": clip(r.Content, maxContent),
		})
	}
	return out
}

func searchErrorData(err error) map[string]any {
	return map[string]any{"error": err.Error(), "results": []any{}}
}

func disabledData(resp *websearch.Response) map[string]any {
	return map[string]any{"message": resp.Message, "results": []any{}}
}

func clip(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}
