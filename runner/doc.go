// Package runner coordinates agent execution against a session store.
//
// A Runner resolves the session for an incoming message, appends the user
// event, starts the agent and relays the events it emits. Every relayed
// event is persisted before the agent is resumed, which keeps the session
// history consistent with what callers have observed. RunSync wraps the
// asynchronous form for callers that only want the final answer text.
package runner
