package tool

import (
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/shopmesh/shopmesh/core"
	"github.com/shopmesh/shopmesh/model"
)

// DefaultExecuteTimeout bounds a single tool execution.
const DefaultExecuteTimeout = 15 * time.Second

// Registry holds a named set of tools and executes them with a per-call
// timeout. It is safe for concurrent use.
type Registry struct {
	mu      sync.RWMutex
	tools   map[string]Tool
	timeout time.Duration
}

// RegistryOption mutates registry construction settings.
type RegistryOption func(*Registry)

// WithExecuteTimeout overrides the per-call execution timeout.
// A zero duration disables the timeout.
func WithExecuteTimeout(d time.Duration) RegistryOption {
	return func(r *Registry) { r.timeout = d }
}

// NewRegistry creates an empty tool registry.
func NewRegistry(opts ...RegistryOption) *Registry {
	r := &Registry{
		tools:   make(map[string]Tool),
		timeout: DefaultExecuteTimeout,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Register adds a tool. Registering a second tool under an existing name is
// an error.
func (r *Registry) Register(t Tool) error {
	if t == nil || t.Name() == "" {
		return fmt.Errorf("cannot register unnamed tool")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.tools[t.Name()]; exists {
		return fmt.Errorf("tool %q already registered", t.Name())
	}
	r.tools[t.Name()] = t

	return nil
}

// MustRegister registers tools and panics on collision. Intended for static
// agent construction at startup.
func (r *Registry) MustRegister(tools ...Tool) {
	for _, t := range tools {
		if err := r.Register(t); err != nil {
			panic(err)
		}
	}
}

// Get returns the tool registered under name.
func (r *Registry) Get(name string) (Tool, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	t, ok := r.tools[name]
	return t, ok
}

// Names returns the sorted names of all registered tools.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.tools))
	for name := range r.tools {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ExecuteTimeout returns the per-call execution bound. Zero means unbounded.
func (r *Registry) ExecuteTimeout() time.Duration {
	return r.timeout
}

// Len returns the number of registered tools.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.tools)
}

// Definitions renders all registered tools as model tool definitions, sorted
// by name for deterministic request payloads.
func (r *Registry) Definitions() []model.ToolDefinition {
	r.mu.RLock()
	defer r.mu.RUnlock()

	defs := make([]model.ToolDefinition, 0, len(r.tools))
	for _, t := range r.tools {
		defs = append(defs, model.ToolDefinition{
			Type: "function",
			Function: model.FunctionDefinition{
				Name:        t.Name(),
				Description: t.Description(),
				Parameters:  t.Parameters(),
			},
		})
	}
	sort.Slice(defs, func(i, j int) bool { return defs[i].Function.Name < defs[j].Function.Name })
	return defs
}

// Execute runs the named tool, bounding execution by the registry timeout.
// Unknown tools yield *ToolError{Code: CodeUnknownTool}; a timeout yields
// *ToolError{Code: CodeTimeout}. The tool goroutine is not forcibly stopped
// on timeout, its eventual result is discarded.
func (r *Registry) Execute(toolCtx *core.ToolContext, name string, args map[string]any) (any, error) {
	t, ok := r.Get(name)
	if !ok {
		return nil, NewToolError(name, fmt.Sprintf("unknown tool: %s", name), CodeUnknownTool)
	}

	if r.timeout <= 0 {
		return t.Call(toolCtx, args)
	}

	type outcome struct {
		result any
		err    error
	}
	done := make(chan outcome, 1)

	go func() {
		result, err := t.Call(toolCtx, args)
		done <- outcome{result: result, err: err}
	}()

	timer := time.NewTimer(r.timeout)
	defer timer.Stop()

	select {
	case out := <-done:
		return out.result, out.err
	case <-toolCtx.Context().Done():
		return nil, toolCtx.Context().Err()
	case <-timer.C:
		return nil, NewToolError(name, fmt.Sprintf("execution exceeded %s", r.timeout), CodeTimeout)
	}
}
