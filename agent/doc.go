// Package agent provides the model-backed agents that answer customer
// requests. BaseAgent carries identity (name, description) and ModelAgent
// layers a tool-calling loop on top of a language model: it resolves
// instructions, hands the conversation to the flow package and forwards the
// resulting events to the caller through the RunContext.
//
// Agents stay intentionally thin. Persistence lives in the session package,
// model specifics in the model package and tool dispatch in the tool
// package, so an agent is little more than configuration plus a Run method.
package agent
