package tool

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shopmesh/shopmesh/core"
	"github.com/shopmesh/shopmesh/logging"
)

// -------------------- FunctionTool Tests --------------------

func TestFunctionTool_Success(t *testing.T) {
	params := map[string]any{
		"type": "object",
		"properties": map[string]any{
			"a": map[string]any{"type": "number"},
			"b": map[string]any{"type": "number"},
		},
		"required": []string{"a", "b"},
	}

	sumTool := NewFunctionTool("sum", "Add numbers", params, func(_ *core.ToolContext, args map[string]any) (any, error) {
		return args["a"].(float64) + args["b"].(float64), nil
	})

	tc := core.NewToolContext(dummyRunContext(), "fc1")
	result, err := sumTool.Call(tc, map[string]any{"a": 2.0, "b": 3.0})
	assert.NoError(t, err)
	assert.Equal(t, 5.0, result)
}

func TestFunctionTool_ValidationError(t *testing.T) {
	params := map[string]any{
		"type": "object",
		"properties": map[string]any{
			"a": map[string]any{"type": "number"},
		},
		"required": []any{"a"},
	}
	tTool := NewFunctionTool("test", "Test", params, func(_ *core.ToolContext, _ map[string]any) (any, error) {
		return 0, nil
	})
	tc := core.NewToolContext(dummyRunContext(), "fc2")
	_, err := tTool.Call(tc, map[string]any{})
	require.Error(t, err)
	toolErr, ok := err.(*ToolError)
	require.True(t, ok)
	assert.Equal(t, CodeValidation, toolErr.Code)
}

func TestFunctionTool_EnumValidation(t *testing.T) {
	params := map[string]any{
		"type": "object",
		"properties": map[string]any{
			"search_depth": map[string]any{"type": "string", "enum": []any{"basic", "advanced"}},
		},
	}
	searchTool := NewFunctionTool("web_search", "Search the web", params, func(_ *core.ToolContext, _ map[string]any) (any, error) {
		return "ok", nil
	})

	tc := core.NewToolContext(dummyRunContext(), "fc-enum")

	_, err := searchTool.Call(tc, map[string]any{"search_depth": "advanced"})
	assert.NoError(t, err)

	_, err = searchTool.Call(tc, map[string]any{"search_depth": "bottomless"})
	require.Error(t, err)
	toolErr, ok := err.(*ToolError)
	require.True(t, ok)
	assert.Equal(t, CodeValidation, toolErr.Code)
}

func TestFunctionTool_DefaultsApplied(t *testing.T) {
	params := map[string]any{
		"type": "object",
		"properties": map[string]any{
			"query": map[string]any{"type": "string"},
			"depth": map[string]any{"type": "string", "default": "basic"},
		},
		"required": []string{"query"},
	}
	var seen map[string]any
	searchTool := NewFunctionTool("web_search", "Search the web", params, func(_ *core.ToolContext, args map[string]any) (any, error) {
		seen = args
		return "ok", nil
	})

	tc := core.NewToolContext(dummyRunContext(), "fc-def")
	_, err := searchTool.Call(tc, map[string]any{"query": "usb-c hub"})
	require.NoError(t, err)
	assert.Equal(t, "basic", seen["depth"])
}

func TestFunctionTool_ExecutionError(t *testing.T) {
	params := map[string]any{"type": "object", "properties": map[string]any{}}
	execTool := NewFunctionTool("fail", "Fails", params, func(_ *core.ToolContext, _ map[string]any) (any, error) {
		return nil, errors.New("boom")
	})
	tc := core.NewToolContext(dummyRunContext(), "fc3")
	_, err := execTool.Call(tc, map[string]any{})
	require.Error(t, err)
	toolErr, ok := err.(*ToolError)
	require.True(t, ok)
	assert.Equal(t, CodeExecution, toolErr.Code)
}

// -------------------- Registry Tests --------------------

func TestRegistry_RegisterAndLookup(t *testing.T) {
	r := NewRegistry()
	params := map[string]any{"type": "object", "properties": map[string]any{}}

	require.NoError(t, r.Register(NewFunctionTool("get_order", "Get an order", params, nopFn)))
	require.NoError(t, r.Register(NewFunctionTool("cancel_order", "Cancel an order", params, nopFn)))

	err := r.Register(NewFunctionTool("get_order", "Duplicate", params, nopFn))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already registered")

	assert.Equal(t, 2, r.Len())
	assert.Equal(t, []string{"cancel_order", "get_order"}, r.Names())

	_, ok := r.Get("get_order")
	assert.True(t, ok)
	_, ok = r.Get("no_such_tool")
	assert.False(t, ok)
}

func TestRegistry_Definitions(t *testing.T) {
	r := NewRegistry()
	params := map[string]any{"type": "object", "properties": map[string]any{}}
	r.MustRegister(
		NewFunctionTool("get_order", "Get an order", params, nopFn),
		NewFunctionTool("cancel_order", "Cancel an order", params, nopFn),
	)

	defs := r.Definitions()
	require.Len(t, defs, 2)
	assert.Equal(t, "cancel_order", defs[0].Function.Name)
	assert.Equal(t, "get_order", defs[1].Function.Name)
	assert.Equal(t, "function", defs[0].Type)
}

func TestRegistry_ExecuteUnknownTool(t *testing.T) {
	r := NewRegistry()
	tc := core.NewToolContext(dummyRunContext(), "fc-unknown")

	_, err := r.Execute(tc, "ghost_tool", map[string]any{})
	require.Error(t, err)
	toolErr, ok := err.(*ToolError)
	require.True(t, ok)
	assert.Equal(t, CodeUnknownTool, toolErr.Code)
	assert.Contains(t, toolErr.Message, "ghost_tool")
}

func TestRegistry_ExecuteTimeout(t *testing.T) {
	r := NewRegistry(WithExecuteTimeout(20 * time.Millisecond))
	params := map[string]any{"type": "object", "properties": map[string]any{}}
	r.MustRegister(NewFunctionTool("slow", "Sleeps", params, func(_ *core.ToolContext, _ map[string]any) (any, error) {
		time.Sleep(500 * time.Millisecond)
		return "late", nil
	}))

	tc := core.NewToolContext(dummyRunContext(), "fc-slow")
	_, err := r.Execute(tc, "slow", map[string]any{})
	require.Error(t, err)
	toolErr, ok := err.(*ToolError)
	require.True(t, ok)
	assert.Equal(t, CodeTimeout, toolErr.Code)
}

func TestRegistry_ExecuteSuccess(t *testing.T) {
	r := NewRegistry()
	params := map[string]any{"type": "object", "properties": map[string]any{}}
	r.MustRegister(NewFunctionTool("ping", "Ping", params, func(_ *core.ToolContext, _ map[string]any) (any, error) {
		return "pong", nil
	}))

	tc := core.NewToolContext(dummyRunContext(), "fc-ping")
	result, err := r.Execute(tc, "ping", map[string]any{})
	require.NoError(t, err)
	assert.Equal(t, "pong", result)
}

// -------------------- ToolError Formatting --------------------

func TestToolErrorFormatting(t *testing.T) {
	err := NewToolError("demo", "something failed", "E123")
	assert.Contains(t, err.Error(), "E123")
	assert.Contains(t, err.Error(), "demo")
}

// -------------------- Helpers --------------------

func nopFn(_ *core.ToolContext, _ map[string]any) (any, error) { return nil, nil }

type memSessionStore struct {
	mu       sync.RWMutex
	sessions map[string]*core.Session
}

func newMemSessionStore() *memSessionStore {
	return &memSessionStore{sessions: map[string]*core.Session{}}
}

func (s *memSessionStore) Create(id string) (*core.Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess := core.NewSession(id)
	s.sessions[id] = sess
	return sess.Clone(), nil
}

func (s *memSessionStore) Get(id string) (*core.Session, error) {
	s.mu.RLock()
	sess, ok := s.sessions[id]
	s.mu.RUnlock()
	if !ok {
		return nil, errors.New("session not found")
	}
	return sess.Clone(), nil
}

func (s *memSessionStore) GetOrCreate(id string) (*core.Session, error) {
	if sess, err := s.Get(id); err == nil {
		return sess, nil
	}
	return s.Create(id)
}

func (s *memSessionStore) AppendEvent(id string, ev core.Event) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.sessions[id]; !ok {
		s.sessions[id] = core.NewSession(id)
	}
	s.sessions[id].AddEvent(ev)
	return nil
}

func (s *memSessionStore) ApplyDelta(id string, delta map[string]any) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.sessions[id]; !ok {
		s.sessions[id] = core.NewSession(id)
	}
	s.sessions[id].ApplyStateDelta(delta)
	return nil
}

func dummyRunContext() *core.RunContext {
	store := newMemSessionStore()
	sessionID := "ctx-1"
	if _, err := store.Create(sessionID); err != nil {
		panic(err)
	}

	emit := make(chan core.Event, 10)
	resume := make(chan struct{}, 1)

	return core.NewRunContext(
		context.Background(),
		sessionID, "run-1",
		core.AgentInfo{Name: "agent", Type: "test"},
		core.Content{},
		0,
		emit, resume,
		core.NewSession(sessionID),
		store,
		logging.NoOpLogger{},
	)
}
