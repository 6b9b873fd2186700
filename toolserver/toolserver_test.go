package toolserver

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shopmesh/shopmesh/core"
	"github.com/shopmesh/shopmesh/logging"
	"github.com/shopmesh/shopmesh/session"
	"github.com/shopmesh/shopmesh/tool"
)

func newTestRegistry(t *testing.T) *tool.Registry {
	t.Helper()

	registry := tool.NewRegistry()
	registry.MustRegister(tool.NewFunctionTool(
		"echo",
		"Echo the input back",
		map[string]any{
			"type": "object",
			"properties": map[string]any{
				"text": map[string]any{"type": "string"},
			},
			"required": []string{"text"},
		},
		func(_ *core.ToolContext, args map[string]any) (any, error) {
			return map[string]any{"echo": args["text"]}, nil
		},
	))
	registry.MustRegister(tool.NewFunctionTool(
		"always_fails",
		"Fail on every call",
		map[string]any{"type": "object", "properties": map[string]any{}},
		func(_ *core.ToolContext, _ map[string]any) (any, error) {
			return nil, assert.AnError
		},
	))

	return registry
}

func postTool(t *testing.T, url, name string, args map[string]any) map[string]any {
	t.Helper()

	body, err := json.Marshal(InvokeRequest{Name: name, Arguments: args})
	require.NoError(t, err)

	resp, err := http.Post(url+"/tool", "application/json", bytes.NewReader(body))
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)

	var out map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))

	return out
}

func TestServerInvokesTool(t *testing.T) {
	srv := NewServer(ServerConfig{Registry: newTestRegistry(t)})
	ts := httptest.NewServer(srv)
	defer ts.Close()

	out := postTool(t, ts.URL, "echo", map[string]any{"text": "hello"})

	assert.Equal(t, "hello", out["echo"])
}

func TestServerToolFailureIsPayloadNotTransportError(t *testing.T) {
	srv := NewServer(ServerConfig{Registry: newTestRegistry(t)})
	ts := httptest.NewServer(srv)
	defer ts.Close()

	out := postTool(t, ts.URL, "always_fails", map[string]any{})

	assert.Contains(t, out, "error")
	assert.Equal(t, tool.CodeExecution, out["code"])
}

func TestServerUnknownToolIsPayload(t *testing.T) {
	srv := NewServer(ServerConfig{Registry: newTestRegistry(t)})
	ts := httptest.NewServer(srv)
	defer ts.Close()

	out := postTool(t, ts.URL, "no_such_tool", map[string]any{})

	assert.Contains(t, out, "error")
	assert.Equal(t, tool.CodeUnknownTool, out["code"])
}

func TestServerRejectsMissingName(t *testing.T) {
	srv := NewServer(ServerConfig{Registry: newTestRegistry(t)})
	ts := httptest.NewServer(srv)
	defer ts.Close()

	resp, err := http.Post(ts.URL+"/tool", "application/json", bytes.NewReader([]byte(`{"arguments":{}}`)))
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestServerListsTools(t *testing.T) {
	srv := NewServer(ServerConfig{Registry: newTestRegistry(t)})
	ts := httptest.NewServer(srv)
	defer ts.Close()

	resp, err := http.Get(ts.URL + "/tools")
	require.NoError(t, err)
	defer resp.Body.Close()

	var out struct {
		Tools []string `json:"tools"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	assert.ElementsMatch(t, []string{"echo", "always_fails"}, out.Tools)
}

func TestClientInvokesBackend(t *testing.T) {
	srv := NewServer(ServerConfig{Registry: newTestRegistry(t)})
	ts := httptest.NewServer(srv)
	defer ts.Close()

	client := NewClient(ts.URL, nil, ClientOptions{})

	result := client.Invoke(context.Background(), "echo", map[string]any{"text": "ping"})

	var out map[string]any
	require.NoError(t, json.Unmarshal([]byte(result), &out))
	assert.Equal(t, "ping", out["echo"])
}

func TestClientFallsBackToLocalRegistry(t *testing.T) {
	client := NewClient("http://127.0.0.1:1", newTestRegistry(t), ClientOptions{})

	result := client.Invoke(context.Background(), "echo", map[string]any{"text": "offline"})

	var out map[string]any
	require.NoError(t, json.Unmarshal([]byte(result), &out))
	assert.Equal(t, "offline", out["echo"])
}

func TestClientFallsBackWhenBackendStalls(t *testing.T) {
	stall := httptest.NewServer(http.HandlerFunc(func(_ http.ResponseWriter, _ *http.Request) {
		time.Sleep(500 * time.Millisecond)
	}))
	defer stall.Close()

	fallback := newTestRegistry(t)
	client := NewClient(stall.URL, fallback, ClientOptions{Timeout: 50 * time.Millisecond})

	// Wired the way an agent registers a backend tool: an outer registry
	// whose execute timer outlasts the invoke timeout plus the fallback.
	outer := tool.NewRegistry(tool.WithExecuteTimeout(DefaultInvokeTimeout + tool.DefaultExecuteTimeout))
	outer.MustRegister(tool.NewFunctionTool(
		"echo",
		"Echo the input back",
		map[string]any{
			"type": "object",
			"properties": map[string]any{
				"text": map[string]any{"type": "string"},
			},
			"required": []string{"text"},
		},
		func(toolCtx *core.ToolContext, args map[string]any) (any, error) {
			return client.Invoke(toolCtx.Context(), "echo", args), nil
		},
	))

	sessions := session.NewInMemoryStore()
	sess, err := sessions.GetOrCreate("stall-test")
	require.NoError(t, err)
	runCtx := core.NewRunContext(
		context.Background(), sess.ID, core.NewID(),
		core.AgentInfo{Name: "test", Type: "agent"}, core.Content{},
		0, nil, nil, sess, sessions, logging.NoOpLogger{},
	)

	result, err := outer.Execute(core.NewToolContext(runCtx, core.NewID()), "echo", map[string]any{"text": "stalled"})
	require.NoError(t, err)

	var out map[string]any
	require.NoError(t, json.Unmarshal([]byte(result.(string)), &out))
	assert.Equal(t, "stalled", out["echo"])
}

func TestClientWithoutFallbackReturnsErrorPayload(t *testing.T) {
	client := NewClient("http://127.0.0.1:1", nil, ClientOptions{})

	result := client.Invoke(context.Background(), "echo", map[string]any{"text": "x"})

	var out map[string]string
	require.NoError(t, json.Unmarshal([]byte(result), &out))
	assert.Contains(t, out["error"], "unreachable")
}
