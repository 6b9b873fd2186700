// Package flow provides the execution pipeline for agents.
//
// A flow orchestrates one complete agent run: building the model request from
// instructions and conversation history, calling the model, executing any
// requested tools and feeding their results back until the model produces a
// final text answer.
package flow

import (
	"github.com/shopmesh/shopmesh/core"
	"github.com/shopmesh/shopmesh/model"
	"github.com/shopmesh/shopmesh/tool"
)

// Flow defines the interface for agent execution flows.
type Flow interface {
	// Execute runs the flow with the given context. It returns a channel of
	// events representing execution progress; the channel is closed when the
	// run terminates.
	Execute(runCtx *core.RunContext) (<-chan core.Event, error)
}

// FlowAgent defines the surface agents expose to flows without revealing the
// full agent implementation.
type FlowAgent interface {
	// GetName returns the agent's display name.
	GetName() string

	// GetModel returns the language model instance.
	GetModel() model.Model

	// ResolveInstructions returns the system prompt for this run.
	ResolveInstructions(runCtx *core.RunContext) (string, error)

	// Tools returns the agent's tool registry.
	Tools() *tool.Registry

	// MaxHistoryMessages returns the maximum number of conversation history
	// messages to include in a model request.
	MaxHistoryMessages() int
}

// RequestProcessor mutates the model request before generation.
type RequestProcessor interface {
	// Name returns the processor's identifier.
	Name() string
	// ProcessRequest modifies the request before model execution.
	ProcessRequest(runCtx *core.RunContext, req *model.Request, agent FlowAgent) error
}
