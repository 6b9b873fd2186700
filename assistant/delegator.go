package assistant

import (
	"encoding/json"

	"github.com/shopmesh/shopmesh/a2a"
	"github.com/shopmesh/shopmesh/core"
	"github.com/shopmesh/shopmesh/tool"
)

// remoteAgent describes one specialist agent reachable over the wire.
type remoteAgent struct {
	Name         string   `json:"name"`
	URL          string   `json:"url"`
	Capabilities []string `json:"capabilities"`
}

// Delegator holds the delegation tools the orchestrator uses to hand work to
// the specialist agents. Delegation never fails: an unreachable agent yields
// a fallback message the orchestrator can relay to the customer.
type Delegator struct {
	client  *a2a.Client
	product remoteAgent
	order   remoteAgent
	search  remoteAgent
}

// NewDelegator wires the delegation client to the three specialist URLs.
func NewDelegator(client *a2a.Client, productURL, orderURL, searchURL string) *Delegator {
	return &Delegator{
		client: client,
		product: remoteAgent{
			Name: "Product Agent",
			URL:  productURL,
			Capabilities: []string{
				"Product search and filtering",
				"Product details and specifications",
				"Stock and price checks",
				"Product recommendations",
				"Web search for products",
			},
		},
		order: remoteAgent{
			Name: "Order Agent",
			URL:  orderURL,
			Capabilities: []string{
				"Order status tracking",
				"Shipment tracking details",
				"Order cancellation",
				"Customer profile and loyalty points",
				"Order history",
			},
		},
		search: remoteAgent{
			Name: "Search Agent",
			URL:  searchURL,
			Capabilities: []string{
				"Web search",
				"Price comparison (Amazon, Walmart, Best Buy)",
				"Product reviews",
				"Trending product analysis",
			},
		},
	}
}

// Tools returns the full delegation tool set for the orchestrator.
func (d *Delegator) Tools() []tool.Tool {
	return []tool.Tool{
		d.askTool(
			"ask_product_agent",
			"Ask the Product Agent about the product catalog, product search, feature comparison, stock levels or product recommendations.",
			d.product,
		),
		d.askTool(
			"ask_order_agent",
			"Ask the Order Agent about order tracking, shipping status, order cancellation, refunds or customer account details.",
			d.order,
		),
		d.askTool(
			"ask_search_agent",
			"Ask the Search Agent for web searches, current price comparisons, product reviews or market trends.",
			d.search,
		),
		d.capabilitiesTool(),
	}
}

func (d *Delegator) askTool(name, description string, target remoteAgent) tool.Tool {
	return tool.NewFunctionTool(
		name,
		description,
		map[string]any{
			"type": "object",
			"properties": map[string]any{
				"query": map[string]any{"type": "string", "description": "The question to forward to the agent"},
			},
			"required": []string{"query"},
		},
		func(toolCtx *core.ToolContext, args map[string]any) (any, error) {
			query, _ := args["query"].(string)
			return d.client.Delegate(toolCtx.Context(), target.Name, target.URL, query), nil
		},
	)
}

func (d *Delegator) capabilitiesTool() tool.Tool {
	return tool.NewFunctionTool(
		"get_agent_capabilities",
		"List the capabilities of all available specialist agents and what they can help with.",
		map[string]any{"type": "object", "properties": map[string]any{}},
		func(_ *core.ToolContext, _ map[string]any) (any, error) {
			raw, err := json.Marshal(map[string]any{
				"agents": []remoteAgent{d.product, d.order, d.search},
			})
			if err != nil {
				return nil, err
			}
			return string(raw), nil
		},
	)
}

// Agents returns the remote agent descriptors, used by the gateway listing.
func (d *Delegator) Agents() []remoteAgent {
	return []remoteAgent{d.product, d.order, d.search}
}
