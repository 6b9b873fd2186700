// Package a2a implements the agent-to-agent protocol spoken between the
// orchestrator and the specialist agents: JSON-RPC 2.0 over HTTP with
// message/send, tasks/get and tasks/cancel methods, plus the static agent
// card served at /.well-known/agent.json.
//
// The Server wraps an Executor in a full task lifecycle per inbound message
// and replies with the terminal task. The Client performs delegation: it
// sends a message, waits for the terminal task and extracts its text,
// degrading any failure to a fallback string rather than an error so the
// orchestrating loop never crashes on an unreachable agent.
package a2a
