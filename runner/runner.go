package runner

import (
	"context"
	"fmt"
	"sync"

	"github.com/shopmesh/shopmesh/core"
	"github.com/shopmesh/shopmesh/logging"
	"github.com/shopmesh/shopmesh/session"
)

// Options holds dependency and configuration overrides passed to New().
type Options struct {
	// EventBufferSize sets channel buffering for emitted events.
	EventBufferSize int
	// MaxModelCalls bounds the number of model calls per run.
	MaxModelCalls int
	// SessionStore persists conversation history and state.
	SessionStore core.SessionStore
	// Logger receives structured runner diagnostics.
	Logger logging.Logger
}

// Runner drives a single agent: it resolves the session, persists the user
// message, starts the agent and relays emitted events while appending them to
// history. Each persisted event is acknowledged back to the agent through the
// resume channel so the flow never races ahead of the session store. Public
// methods are safe for concurrent use.
type Runner struct {
	agent core.Agent

	eventBufferSize int
	maxModelCalls   int

	sessionStore core.SessionStore
	logger       logging.Logger

	activeRuns map[string]context.CancelFunc
	mu         sync.RWMutex
}

// New constructs a Runner with optional overrides.
func New(agent core.Agent, optFns ...func(o *Options)) *Runner {
	opts := Options{
		EventBufferSize: 100,
		MaxModelCalls:   100,
		SessionStore:    session.NewInMemoryStore(),
		Logger:          logging.NoOpLogger{},
	}

	for _, fn := range optFns {
		fn(&opts)
	}

	return &Runner{
		agent:           agent,
		eventBufferSize: opts.EventBufferSize,
		maxModelCalls:   opts.MaxModelCalls,
		sessionStore:    opts.SessionStore,
		logger:          opts.Logger,
		activeRuns:      make(map[string]context.CancelFunc),
	}
}

// Run starts an asynchronous run against the session, creating the session on
// first use. It returns the run ID, a channel of emitted events and a channel
// carrying at most one terminal error. Both channels are closed when the run
// finishes.
func (r *Runner) Run(
	ctx context.Context,
	sessionID string,
	userContent core.Content,
) (string, <-chan core.Event, <-chan error, error) {
	sess, err := r.sessionStore.GetOrCreate(sessionID)
	if err != nil {
		return "", nil, nil, fmt.Errorf("failed to resolve session: %w", err)
	}

	runID := core.NewID()

	eventsCh := make(chan core.Event, r.eventBufferSize)
	errorsCh := make(chan error, 1)
	agentEmit := make(chan core.Event, r.eventBufferSize)
	resumeCh := make(chan struct{}, 1)

	ctx, cancel := context.WithCancel(ctx)
	r.mu.Lock()
	r.activeRuns[runID] = cancel
	r.mu.Unlock()

	agentInfo := core.AgentInfo{Name: r.agent.Name(), Type: "agent"}

	runCtx := core.NewRunContext(
		ctx,
		sessionID,
		runID,
		agentInfo,
		userContent,
		r.maxModelCalls,
		agentEmit,
		resumeCh,
		sess,
		r.sessionStore,
		r.logger,
	)

	userEvent := core.NewUserContentEvent(runID, &userContent)
	if err := r.sessionStore.AppendEvent(sessionID, userEvent); err != nil {
		cancel()
		r.mu.Lock()
		delete(r.activeRuns, runID)
		r.mu.Unlock()
		return "", nil, nil, fmt.Errorf("failed to append user event: %w", err)
	}

	go func() {
		defer func() {
			close(agentEmit)
			r.mu.Lock()
			delete(r.activeRuns, runID)
			r.mu.Unlock()
		}()

		if err := r.agent.Run(runCtx); err != nil {
			select {
			case <-runCtx.Done():
			case errorsCh <- fmt.Errorf("agent execution failed: %w", err):
			}
		}
	}()

	go func() {
		defer func() { close(eventsCh); close(errorsCh) }()

		r.processEvents(runCtx, sessionID, agentEmit, resumeCh, eventsCh, errorsCh)
	}()

	return runID, eventsCh, errorsCh, nil
}

// RunSync executes a run to completion and returns the text of the final
// agent event. A terminal error event or an agent error fails the call.
func (r *Runner) RunSync(ctx context.Context, sessionID, message string) (string, error) {
	content := core.Content{Role: "user", Parts: []core.Part{core.TextPart{Text: message}}}

	_, eventsCh, errorsCh, err := r.Run(ctx, sessionID, content)
	if err != nil {
		return "", err
	}

	var final *core.Event
	for ev := range eventsCh {
		ev := ev
		if ev.ErrorMessage != nil {
			return "", fmt.Errorf("run failed: %s", *ev.ErrorMessage)
		}
		if ev.IsFinalResponse() {
			final = &ev
		}
	}
	if err := <-errorsCh; err != nil {
		return "", err
	}
	if final == nil {
		return "", fmt.Errorf("run produced no final response")
	}

	return final.Text(), nil
}

// Cancel cancels a running run by ID.
func (r *Runner) Cancel(runID string) error {
	r.mu.Lock()
	cancel, exists := r.activeRuns[runID]
	r.mu.Unlock()

	if !exists {
		return fmt.Errorf("run %s not found", runID)
	}

	cancel()

	return nil
}

func (r *Runner) processEvents(
	runCtx *core.RunContext,
	sessionID string,
	agentEmit <-chan core.Event,
	resumeCh chan<- struct{},
	eventsCh chan<- core.Event,
	errorsCh chan<- error,
) {
	for {
		select {
		case <-runCtx.Done():
			return
		case ev, ok := <-agentEmit:
			if !ok {
				return
			}
			if err := r.sessionStore.AppendEvent(sessionID, ev); err != nil {
				select {
				case <-runCtx.Done():
				case errorsCh <- fmt.Errorf("failed to append event to session: %w", err):
				}
				return
			}
			select {
			case <-runCtx.Done():
				return
			case eventsCh <- ev:
				r.logger.Debug("runner.event.delivered", "event_id", ev.ID, "session_id", sessionID)
			}
			select {
			case <-runCtx.Done():
				return
			case resumeCh <- struct{}{}:
			default:
			}
		}
	}
}
