package core

import (
	"context"
	"fmt"

	"github.com/shopmesh/shopmesh/logging"
)

// RunContext carries execution state and helpers for a single agent run. It
// aggregates the ambient cancellation Context, identifiers, the triggering
// user Content, the event emission / resumption channel pair and the backing
// SessionStore. The flow emits events through EmitEvent and then waits on
// WaitForResume until the runner has persisted the event, so session history
// never lags behind what downstream consumers observed.
type RunContext struct {
	Context          context.Context
	SessionID, RunID string
	Agent            AgentInfo
	UserContent      Content
	Emit             chan<- Event
	Resume           <-chan struct{}
	SessionStore     SessionStore
	Session          *Session
	Limiter          *ModelLimiter

	*loggerAdapter
}

// NewRunContext constructs a RunContext bound to a session snapshot.
func NewRunContext(
	ctx context.Context,
	sessionID, runID string,
	agent AgentInfo,
	userContent Content,
	maxModelCalls int,
	emit chan<- Event,
	resume <-chan struct{},
	sess *Session,
	sessionStore SessionStore,
	logger logging.Logger,
) *RunContext {
	return &RunContext{
		Context:       ctx,
		SessionID:     sessionID,
		RunID:         runID,
		Agent:         agent,
		UserContent:   userContent,
		Emit:          emit,
		Resume:        resume,
		Session:       sess,
		SessionStore:  sessionStore,
		Limiter:       NewModelLimiter(maxModelCalls),
		loggerAdapter: newLoggerAdapter(logger),
	}
}

// Done returns a channel closed when the underlying context is cancelled.
func (rc *RunContext) Done() <-chan struct{} { return rc.Context.Done() }

// Err returns the cancellation error (if any) from the underlying context.
func (rc *RunContext) Err() error { return rc.Context.Err() }

// GetState returns the persisted session value for a key.
func (rc *RunContext) GetState(k string) (any, bool) {
	if rc.Session == nil {
		return nil, false
	}
	return rc.Session.GetState(k)
}

// SetState persists a state mutation through the SessionStore.
func (rc *RunContext) SetState(k string, v any) error {
	if rc.SessionStore == nil {
		return fmt.Errorf("session store not configured")
	}
	if err := rc.SessionStore.ApplyDelta(rc.SessionID, map[string]any{k: v}); err != nil {
		return err
	}
	if rc.Session != nil {
		rc.Session.SetState(k, v)
	}
	return nil
}

// RefreshSession reloads the session snapshot from the SessionStore.
func (rc *RunContext) RefreshSession() error {
	if rc.SessionStore == nil {
		return fmt.Errorf("session store not configured")
	}

	s, err := rc.SessionStore.Get(rc.SessionID)
	if err != nil {
		return err
	}

	rc.Session = s

	return nil
}

// GetSessionHistory returns all historical events for the session.
func (rc *RunContext) GetSessionHistory() []Event {
	if rc.Session == nil {
		return []Event{}
	}

	return rc.Session.GetEvents()
}

// GetAgentName returns the logical agent name for this run.
func (rc *RunContext) GetAgentName() string { return rc.Agent.Name }

// EmitEvent sends the event to the runner, honoring context cancellation.
func (rc *RunContext) EmitEvent(ev Event) error {
	select {
	case <-rc.Context.Done():
		return rc.Context.Err()
	case rc.Emit <- ev:
	}

	return nil
}

// WaitForResume blocks until the runner signals that the previously emitted
// event has been persisted, or the context is cancelled.
func (rc *RunContext) WaitForResume() error {
	if rc.Resume == nil {
		return nil
	}

	select {
	case <-rc.Resume:
		return nil
	case <-rc.Context.Done():
		return rc.Context.Err()
	}
}
