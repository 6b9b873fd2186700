package core

// Agent is the primary processing unit. An agent receives input through a
// RunContext, processes it and emits events to communicate results back to
// the runner.
//
// Implementations must respect context cancellation and emit events through
// the provided RunContext, honoring the emit/resume handshake.
type Agent interface {
	Name() string
	Description() string
	Run(runCtx *RunContext) error
}

// AgentInfo carries identifying details about an agent used in contexts and
// events. Name is the external identifier; Type categorizes the
// implementation (e.g. "orchestrator", "specialist").
type AgentInfo struct{ Name, Type string }
