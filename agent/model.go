package agent

import (
	"fmt"

	"github.com/shopmesh/shopmesh/core"
	"github.com/shopmesh/shopmesh/flow"
	"github.com/shopmesh/shopmesh/model"
	"github.com/shopmesh/shopmesh/tool"
)

// ModelAgentOptions configures a ModelAgent instance. Use functional options
// with NewModelAgent to override defaults.
type ModelAgentOptions struct {
	Description        string
	Instruction        Instruction
	MaxHistoryMessages int
	Tools              []tool.Tool
	Registry           *tool.Registry
}

// ModelAgent is a complete agent implementation driving a language model
// through the tool-calling flow. It supports natural language conversation
// through system prompts, function calling with registered tools and
// session-backed conversation history.
type ModelAgent struct {
	BaseAgent
	llm                model.Model
	instruction        Instruction
	registry           *tool.Registry
	maxHistoryMessages int
}

// NewModelAgent creates a model-backed agent. By default it carries an empty
// tool registry and a 20-message history window.
func NewModelAgent(name string, llm model.Model, optFns ...func(o *ModelAgentOptions)) *ModelAgent {
	opts := ModelAgentOptions{
		Instruction:        NewInstructionFromText(fmt.Sprintf("You are %s, a helpful assistant.", name)),
		MaxHistoryMessages: 20,
	}

	for _, fn := range optFns {
		fn(&opts)
	}

	registry := opts.Registry
	if registry == nil {
		registry = tool.NewRegistry()
	}
	registry.MustRegister(opts.Tools...)

	a := &ModelAgent{
		BaseAgent:          NewBaseAgent(name),
		llm:                llm,
		instruction:        opts.Instruction,
		registry:           registry,
		maxHistoryMessages: opts.MaxHistoryMessages,
	}
	if opts.Description != "" {
		a.SetDescription(opts.Description)
	}
	return a
}

// RegisterTool adds a function tool to the agent's capability set.
func (a *ModelAgent) RegisterTool(t tool.Tool) error {
	return a.registry.Register(t)
}

// GetName returns the agent's display name.
func (a *ModelAgent) GetName() string { return a.Name() }

// GetModel returns the language model instance.
func (a *ModelAgent) GetModel() model.Model { return a.llm }

// Tools returns the agent's tool registry.
func (a *ModelAgent) Tools() *tool.Registry { return a.registry }

// MaxHistoryMessages returns the conversation history window size.
func (a *ModelAgent) MaxHistoryMessages() int { return a.maxHistoryMessages }

// ResolveInstructions produces the system prompt by resolving static or
// dynamic instruction sources.
func (a *ModelAgent) ResolveInstructions(runCtx *core.RunContext) (string, error) {
	return a.instruction.Resolve(runCtx)
}

// Run implements core.Agent. It executes the tool-calling flow and forwards
// flow events to the run context for persistence by the runner.
func (a *ModelAgent) Run(runCtx *core.RunContext) error {
	runCtx.LogDebug("agent.run.start", "agent", a.Name(), "run", runCtx.RunID)

	fl := flow.NewToolCallingFlow(a)

	eventChan, err := fl.Execute(runCtx)
	if err != nil {
		runCtx.LogError("agent.flow.execute.error", "agent", a.Name(), "error", err.Error())

		return fmt.Errorf("flow execution failed: %w", err)
	}

	for event := range eventChan {
		select {
		case runCtx.Emit <- event:
			runCtx.LogDebug(
				"agent.event.forward",
				"agent", a.Name(),
				"event_id", event.ID,
				"fn_calls", len(event.GetFunctionCalls()),
			)
		case <-runCtx.Context.Done():
			runCtx.LogWarn("agent.run.context_done", "agent", a.Name(), "error", runCtx.Context.Err())

			return runCtx.Context.Err()
		}
	}

	runCtx.LogDebug("agent.run.complete", "agent", a.Name())

	return nil
}
