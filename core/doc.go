// Package core provides the foundational domain types, interfaces and
// execution contexts shared by the agent runtime. It defines:
//
//   - Agents (units of autonomous work behind the A2A surface)
//   - Sessions (stateful conversational containers keyed by A2A context id)
//   - Events (immutable communication records)
//   - RunContext / ToolContext (scoped execution and tool sandboxing)
//   - The SessionStore interface for pluggable history persistence
//
// The package keeps implementation concerns (persistence, transports,
// concrete agents) out of scope, exposing small interfaces to enable custom
// backends.
package core
