package flow

import (
	"fmt"
	"time"

	"github.com/shopmesh/shopmesh/core"
	"github.com/shopmesh/shopmesh/model"
	"github.com/shopmesh/shopmesh/telemetry"
)

// ToolCallingFlow drives the request -> model -> tool execution cycle for a
// single agent until the model answers with plain text. Each model turn may
// request several tool calls; all of them are executed (in parallel) and
// their results appended to the conversation before the next turn.
type ToolCallingFlow struct {
	agent             FlowAgent
	requestProcessors []RequestProcessor
	executor          FunctionExecutor
}

// ToolCallingFlowOption mutates flow construction settings.
type ToolCallingFlowOption func(*ToolCallingFlow)

// WithFunctionExecutor overrides the default parallel function executor.
func WithFunctionExecutor(e FunctionExecutor) ToolCallingFlowOption {
	return func(f *ToolCallingFlow) { f.executor = e }
}

// WithRequestProcessors replaces the default processor chain.
func WithRequestProcessors(ps ...RequestProcessor) ToolCallingFlowOption {
	return func(f *ToolCallingFlow) { f.requestProcessors = ps }
}

// NewToolCallingFlow creates a flow with the default processors for
// instruction resolution and conversation assembly.
func NewToolCallingFlow(agent FlowAgent, opts ...ToolCallingFlowOption) *ToolCallingFlow {
	f := &ToolCallingFlow{
		agent: agent,
		requestProcessors: []RequestProcessor{
			NewInstructionsProcessor(),
			NewContentsProcessor(),
		},
		executor: NewParallelFunctionExecutor(FunctionExecutorConfig{PreserveOrder: true}),
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Execute launches the flow asynchronously and returns a channel of Events.
// The channel is closed when a final response is emitted or an unrecoverable
// error occurs. Callers should range over the returned channel.
func (f *ToolCallingFlow) Execute(runCtx *core.RunContext) (<-chan core.Event, error) {
	eventChan := make(chan core.Event, 100)

	go func() {
		defer close(eventChan)

		for {
			if !f.runTurn(runCtx, eventChan) {
				return
			}
		}
	}()

	return eventChan, nil
}

// runTurn performs one model turn including any tool executions. It reports
// whether the loop should run another turn.
func (f *ToolCallingFlow) runTurn(runCtx *core.RunContext, eventChan chan<- core.Event) bool {
	// Refresh the session snapshot so the request sees the latest
	// conversation, including tool responses persisted last turn.
	if runCtx.SessionStore != nil {
		if latest, err := runCtx.SessionStore.Get(runCtx.SessionID); err == nil && latest != nil {
			runCtx.Session = latest
		}
	}

	req := new(model.Request)
	for _, processor := range f.requestProcessors {
		if err := processor.ProcessRequest(runCtx, req, f.agent); err != nil {
			f.emitError(runCtx, eventChan, fmt.Errorf("request processor %s failed: %w", processor.Name(), err))
			return false
		}
	}

	if registry := f.agent.Tools(); registry != nil && registry.Len() > 0 {
		req.Tools = registry.Definitions()
	}

	if runCtx.Limiter != nil {
		if err := runCtx.Limiter.Increment(); err != nil {
			f.emitError(runCtx, eventChan, err)
			return false
		}
	}

	info := f.agent.GetModel().Info()
	start := time.Now()

	resp, err := f.agent.GetModel().Generate(runCtx.Context, *req)

	telemetry.Metrics.LLMLatency.WithLabelValues(info.Provider, info.Name).Observe(time.Since(start).Seconds())
	telemetry.Metrics.LLMRequestsTotal.WithLabelValues(info.Provider, info.Name).Inc()
	if err != nil {
		telemetry.Metrics.ErrorsTotal.WithLabelValues("model").Inc()
		f.emitError(runCtx, eventChan, fmt.Errorf("model generation failed: %w", err))
		return false
	}
	if resp.Usage != nil {
		telemetry.Metrics.TokensUsed.WithLabelValues("input", info.Name).Add(float64(resp.Usage.PromptTokens))
		telemetry.Metrics.TokensUsed.WithLabelValues("output", info.Name).Add(float64(resp.Usage.CompletionTokens))
	}

	runCtx.LogDebug("agent.model.turn",
		"agent", f.agent.GetName(),
		"finish_reason", resp.FinishReason,
		"calls", len(resp.Content.Parts),
	)

	ev := core.NewEvent(runCtx.RunID, f.agent.GetName())
	ev.Content = &resp.Content

	if !f.emit(runCtx, eventChan, ev) {
		return false
	}

	fnCalls := ev.GetFunctionCalls()
	if len(fnCalls) == 0 {
		return false // final text answer
	}

	f.executor.Execute(runCtx, f.agent, f.agent.Tools(), fnCalls, func(respEv core.Event) error {
		if !f.emit(runCtx, eventChan, respEv) {
			return runCtx.Context.Err()
		}
		return nil
	})

	return runCtx.Context.Err() == nil
}

// emit sends an event and blocks until the runner has persisted it. A false
// return means the run context was cancelled.
func (f *ToolCallingFlow) emit(runCtx *core.RunContext, eventChan chan<- core.Event, ev core.Event) bool {
	select {
	case <-runCtx.Context.Done():
		return false
	case eventChan <- ev:
	}

	if runCtx.Resume != nil {
		select {
		case <-runCtx.Context.Done():
			return false
		case <-runCtx.Resume:
		}
	}

	return true
}

// emitError converts an internal error to an error event.
func (f *ToolCallingFlow) emitError(runCtx *core.RunContext, eventChan chan<- core.Event, err error) {
	runCtx.LogError("agent.flow.error", "agent", f.agent.GetName(), "error", err.Error())
	f.emit(runCtx, eventChan, core.NewErrorEvent(runCtx.RunID, f.agent.GetName(), err))
}
