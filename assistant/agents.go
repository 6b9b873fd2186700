package assistant

import (
	"time"

	"github.com/shopmesh/shopmesh/a2a"
	"github.com/shopmesh/shopmesh/agent"
	"github.com/shopmesh/shopmesh/core"
	"github.com/shopmesh/shopmesh/model"
	"github.com/shopmesh/shopmesh/tool"
	"github.com/shopmesh/shopmesh/toolserver"
	"github.com/shopmesh/shopmesh/websearch"
)

// Per-agent tool execution bounds. The registry timer must outlast the
// inner client budgets: a delegated call may use the full delegation
// window, and a hanging tool backend spends its invoke timeout before the
// local fallback even starts.
const (
	orchestratorToolTimeout = a2a.DefaultDelegationTimeout + 5*time.Second
	specialistToolTimeout   = toolserver.DefaultInvokeTimeout + tool.DefaultExecuteTimeout + 5*time.Second
)

// NewProductAgent builds the product specialist. Catalog tools run on the
// shared tool backend through tools; web search goes directly to search.
func NewProductAgent(llm model.Model, tools *toolserver.Client, schemas *tool.Registry, search *websearch.Client) *agent.ModelAgent {
	return agent.NewModelAgent("product_agent", llm, func(o *agent.ModelAgentOptions) {
		o.Description = "Product discovery, recommendations and price analysis"
		o.Instruction = agent.NewInstructionFromText(productPrompt)
		o.Registry = tool.NewRegistry(tool.WithExecuteTimeout(specialistToolTimeout))
		o.Tools = append(
			remoteTools(tools, schemas,
				"search_products",
				"get_product_details",
				"get_products_by_category",
				"check_product_availability",
				"get_recommendations",
			),
			WebSearchProductsTool(search),
		)
	})
}

// NewOrderAgent builds the order specialist.
func NewOrderAgent(llm model.Model, tools *toolserver.Client, schemas *tool.Registry, search *websearch.Client) *agent.ModelAgent {
	return agent.NewModelAgent("order_agent", llm, func(o *agent.ModelAgentOptions) {
		o.Description = "Order tracking, cancellation and customer support"
		o.Instruction = agent.NewInstructionFromText(orderPrompt)
		o.Registry = tool.NewRegistry(tool.WithExecuteTimeout(specialistToolTimeout))
		o.Tools = append(
			remoteTools(tools, schemas,
				"get_order_status",
				"get_customer_orders",
				"cancel_order",
				"get_customer_profile",
			),
			WebSearchShippingTool(search),
		)
	})
}

// NewSearchAgent builds the web research specialist. All of its tools hit
// the search provider directly.
func NewSearchAgent(llm model.Model, search *websearch.Client) *agent.ModelAgent {
	return agent.NewModelAgent("search_agent", llm, func(o *agent.ModelAgentOptions) {
		o.Description = "Web search, price comparison and market research"
		o.Instruction = agent.NewInstructionFromText(searchPrompt)
		o.Registry = tool.NewRegistry(tool.WithExecuteTimeout(specialistToolTimeout))
		o.Tools = []tool.Tool{
			WebSearchTool(search),
			ComparePricesTool(search),
			ProductReviewsWebTool(search),
			TrendingProductsTool(search),
		}
	})
}

// NewOrchestratorAgent builds the routing agent. Its tools delegate to the
// specialist agents at the given URLs; it holds no domain tools of its own.
func NewOrchestratorAgent(llm model.Model, delegator *Delegator) *agent.ModelAgent {
	return agent.NewModelAgent("orchestrator", llm, func(o *agent.ModelAgentOptions) {
		o.Description = "Shopping assistant routing customer requests to specialist agents"
		o.Instruction = agent.NewInstructionFromText(orchestratorPrompt)
		o.Registry = tool.NewRegistry(tool.WithExecuteTimeout(orchestratorToolTimeout))
		o.Tools = delegator.Tools()
	})
}

// remoteTools wraps registry tools so calls go to the shared backend while
// keeping the same name, description and argument schema the model sees.
func remoteTools(client *toolserver.Client, schemas *tool.Registry, names ...string) []tool.Tool {
	out := make([]tool.Tool, 0, len(names))
	for _, name := range names {
		src, ok := schemas.Get(name)
		if !ok {
			continue
		}
		name := name
		out = append(out, tool.NewFunctionTool(
			src.Name(),
			src.Description(),
			src.Parameters(),
			func(toolCtx *core.ToolContext, args map[string]any) (any, error) {
				return client.Invoke(toolCtx.Context(), name, args), nil
			},
		))
	}
	return out
}
