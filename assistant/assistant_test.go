package assistant

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shopmesh/shopmesh/a2a"
	"github.com/shopmesh/shopmesh/agent"
	"github.com/shopmesh/shopmesh/core"
	"github.com/shopmesh/shopmesh/logging"
	"github.com/shopmesh/shopmesh/model"
	"github.com/shopmesh/shopmesh/runner"
	"github.com/shopmesh/shopmesh/session"
	"github.com/shopmesh/shopmesh/store"
	"github.com/shopmesh/shopmesh/task"
	"github.com/shopmesh/shopmesh/tool"
	"github.com/shopmesh/shopmesh/toolserver"
	"github.com/shopmesh/shopmesh/websearch"
)

func newToolCtx(t *testing.T) *core.ToolContext {
	t.Helper()

	sessions := session.NewInMemoryStore()
	sess, err := sessions.GetOrCreate("assistant-test")
	require.NoError(t, err)

	runCtx := core.NewRunContext(
		context.Background(),
		sess.ID,
		core.NewID(),
		core.AgentInfo{Name: "test", Type: "agent"},
		core.Content{},
		0,
		nil,
		nil,
		sess,
		sessions,
		logging.NoOpLogger{},
	)

	return core.NewToolContext(runCtx, core.NewID())
}

func execute(t *testing.T, registry *tool.Registry, name string, args map[string]any) map[string]any {
	t.Helper()

	result, err := registry.Execute(newToolCtx(t), name, args)
	require.NoError(t, err)

	out, ok := result.(map[string]any)
	require.True(t, ok, "tool %s should return a map payload", name)

	return out
}

func TestDomainRegistryToolNames(t *testing.T) {
	registry := NewDomainRegistry(store.NewStore())

	assert.ElementsMatch(t, []string{
		"search_products",
		"get_product_details",
		"get_products_by_category",
		"check_product_availability",
		"get_recommendations",
		"get_order_status",
		"get_customer_orders",
		"get_customer_profile",
		"cancel_order",
	}, registry.Names())
}

func TestSearchProductsToolPayload(t *testing.T) {
	registry := NewDomainRegistry(store.NewStore())

	out := execute(t, registry, "search_products", map[string]any{
		"query":    "sony",
		"category": "electronics",
	})

	assert.Equal(t, "sony", out["query"])
	products, ok := out["products"].([]map[string]any)
	require.True(t, ok)
	require.NotEmpty(t, products)
	assert.Equal(t, out["total"], len(products))
	assert.Contains(t, products[0], "discount_percentage")
}

func TestProductDetailsNotFoundIsDataNotError(t *testing.T) {
	registry := NewDomainRegistry(store.NewStore())

	out := execute(t, registry, "get_product_details", map[string]any{"product_id": "prod-999"})

	assert.Equal(t, "Product prod-999 not found", out["error"])
}

func TestOrderStatusToolIncludesTracking(t *testing.T) {
	registry := NewDomainRegistry(store.NewStore())

	out := execute(t, registry, "get_order_status", map[string]any{"order_id": "ord-001"})

	assert.Equal(t, "shipped", out["status"])
	assert.Equal(t, "TK123456789TR", out["tracking_number"])
	events, ok := out["tracking_events"].([]map[string]any)
	require.True(t, ok)
	assert.Len(t, events, 3)
}

func TestCancelOrderToolPrecondition(t *testing.T) {
	registry := NewDomainRegistry(store.NewStore())

	out := execute(t, registry, "cancel_order", map[string]any{"order_id": "ord-001"})
	assert.Equal(t, false, out["cancellable"])
	assert.Contains(t, out["error"], "shipped")

	out = execute(t, registry, "cancel_order", map[string]any{"order_id": "ord-004"})
	assert.Equal(t, true, out["success"])
	assert.Contains(t, out["message"], "ord-004")

	// cancellation is durable, a second attempt is rejected
	out = execute(t, registry, "cancel_order", map[string]any{"order_id": "ord-004"})
	assert.Equal(t, false, out["cancellable"])
}

func TestCustomerOrdersToolRequiresIdentifier(t *testing.T) {
	registry := NewDomainRegistry(store.NewStore())

	out := execute(t, registry, "get_customer_orders", map[string]any{})
	assert.Equal(t, "Provide either email or customer_id", out["error"])

	out = execute(t, registry, "get_customer_orders", map[string]any{"email": "alex.morgan@example.com"})
	assert.NotZero(t, out["total"])
}

func TestRecommendationsToolDefaultLimit(t *testing.T) {
	registry := NewDomainRegistry(store.NewStore())

	out := execute(t, registry, "get_recommendations", map[string]any{})
	recs, ok := out["recommendations"].([]map[string]any)
	require.True(t, ok)
	assert.Len(t, recs, 4)
}

func TestWebSearchToolDisabledWithoutKey(t *testing.T) {
	searchTool := WebSearchTool(websearch.NewClient(""))

	result, err := searchTool.Call(newToolCtx(t), map[string]any{"query": "anything"})
	require.NoError(t, err)

	out, ok := result.(map[string]any)
	require.True(t, ok)
	assert.Contains(t, out["message"], "not configured")
}

func TestDelegationToolNeverErrors(t *testing.T) {
	delegator := NewDelegator(a2a.NewClient(), "http://127.0.0.1:1", "http://127.0.0.1:1", "http://127.0.0.1:1")

	registry := tool.NewRegistry()
	registry.MustRegister(delegator.Tools()...)

	result, err := registry.Execute(newToolCtx(t), "ask_product_agent", map[string]any{"query": "hi"})
	require.NoError(t, err)
	assert.Contains(t, result.(string), "Product Agent")
	assert.Contains(t, result.(string), "unreachable")
}

func TestAgentCapabilitiesToolListsAllAgents(t *testing.T) {
	delegator := NewDelegator(a2a.NewClient(), "http://p", "http://o", "http://s")

	registry := tool.NewRegistry()
	registry.MustRegister(delegator.Tools()...)

	result, err := registry.Execute(newToolCtx(t), "get_agent_capabilities", map[string]any{})
	require.NoError(t, err)

	var payload struct {
		Agents []remoteAgent `json:"agents"`
	}
	require.NoError(t, json.Unmarshal([]byte(result.(string)), &payload))
	require.Len(t, payload.Agents, 3)
	assert.Equal(t, "Product Agent", payload.Agents[0].Name)
}

func TestSearchAgentToolSet(t *testing.T) {
	llm := model.NewMockModel("mock-model", "mock")
	a := NewSearchAgent(llm, websearch.NewClient(""))

	assert.ElementsMatch(t, []string{
		"web_search",
		"compare_prices",
		"get_product_reviews_web",
		"get_trending_products",
	}, a.Tools().Names())
}

func TestAgentToolBudgetsOutlastInnerTimeouts(t *testing.T) {
	llm := model.NewMockModel("mock-model", "mock")
	schemas := NewDomainRegistry(store.NewStore())
	tools := toolserver.NewClient("http://127.0.0.1:1", schemas, toolserver.ClientOptions{})
	search := websearch.NewClient("")
	delegator := NewDelegator(a2a.NewClient(), "http://p", "http://o", "http://s")

	// A delegated call may run the full delegation window before the
	// orchestrator's registry timer is allowed to fire.
	orch := NewOrchestratorAgent(llm, delegator)
	assert.Greater(t, orch.Tools().ExecuteTimeout(), a2a.DefaultDelegationTimeout)

	// Specialist tools must survive a hanging backend plus the local
	// fallback without the registry discarding the fallback result.
	innerBudget := toolserver.DefaultInvokeTimeout + tool.DefaultExecuteTimeout
	for name, a := range map[string]*agent.ModelAgent{
		"product": NewProductAgent(llm, tools, schemas, search),
		"order":   NewOrderAgent(llm, tools, schemas, search),
		"search":  NewSearchAgent(llm, search),
	} {
		assert.Greater(t, a.Tools().ExecuteTimeout(), innerBudget, "agent %s", name)
	}
}

func newMockRunner(reply string) *runner.Runner {
	llm := model.NewMockModel("mock-model", "mock")
	llm.AddResponse("hello", reply)
	a := agent.NewModelAgent("orchestrator", llm)
	return runner.New(a)
}

func TestExecutorDrivesTaskLifecycle(t *testing.T) {
	tasks := task.NewStore()
	tk := task.New("ctx-1")
	require.NoError(t, tasks.Create(tk))

	updater := task.NewUpdater(tasks, tk.ID, nil, logging.NoOpLogger{})
	exec := NewAgentExecutor(newMockRunner("routed reply"), "Shopping Assistant Response", "Analyzing your request...", logging.NoOpLogger{})

	require.NoError(t, exec.Execute(context.Background(), "ctx-1", "hello", updater))

	stored, err := tasks.Get(tk.ID)
	require.NoError(t, err)
	assert.Equal(t, task.StateCompleted, stored.Status.State)
	require.Len(t, stored.Artifacts, 1)
	assert.Equal(t, "Shopping Assistant Response", stored.Artifacts[0].Name)
	assert.Equal(t, "routed reply", stored.Artifacts[0].Text())
}

func TestGatewayChatEndpoint(t *testing.T) {
	delegator := NewDelegator(a2a.NewClient(), "http://p", "http://o", "http://s")

	router := chi.NewRouter()
	GatewayRoutes(newMockRunner("gateway reply"), delegator, logging.NoOpLogger{})(router)

	ts := httptest.NewServer(router)
	defer ts.Close()

	body, _ := json.Marshal(map[string]string{"message": "hello", "session_id": "s-1"})
	resp, err := http.Post(ts.URL+"/api/chat", "application/json", bytes.NewReader(body))
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)

	var out map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	assert.Equal(t, "gateway reply", out["response"])
	assert.Equal(t, "s-1", out["session_id"])
}

func TestGatewayChatRequiresMessage(t *testing.T) {
	delegator := NewDelegator(a2a.NewClient(), "http://p", "http://o", "http://s")

	router := chi.NewRouter()
	GatewayRoutes(newMockRunner(""), delegator, logging.NoOpLogger{})(router)

	ts := httptest.NewServer(router)
	defer ts.Close()

	resp, err := http.Post(ts.URL+"/api/chat", "application/json", bytes.NewReader([]byte(`{"message":"  "}`)))
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestGatewayListsAgents(t *testing.T) {
	delegator := NewDelegator(a2a.NewClient(), "http://p/", "http://o", "http://s")

	router := chi.NewRouter()
	GatewayRoutes(newMockRunner(""), delegator, logging.NoOpLogger{})(router)

	ts := httptest.NewServer(router)
	defer ts.Close()

	resp, err := http.Get(ts.URL + "/api/agents")
	require.NoError(t, err)
	defer resp.Body.Close()

	var out struct {
		Agents []struct {
			Name      string `json:"name"`
			AgentCard string `json:"agent_card"`
		} `json:"agents"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	require.Len(t, out.Agents, 3)
	assert.Equal(t, "http://p/.well-known/agent.json", out.Agents[0].AgentCard)
}
