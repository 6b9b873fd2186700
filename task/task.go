package task

import (
	"time"

	"github.com/google/uuid"
)

// State is the lifecycle state of a task. The wire strings follow the A2A
// convention.
type State string

const (
	StateSubmitted     State = "submitted"
	StateWorking       State = "working"
	StateInputRequired State = "input-required"
	StateCompleted     State = "completed"
	StateCanceled      State = "canceled"
	StateFailed        State = "failed"
)

// Terminal reports whether no further transitions are allowed from s.
func (s State) Terminal() bool {
	switch s {
	case StateCompleted, StateCanceled, StateFailed:
		return true
	}
	return false
}

// Status is a task's current state plus an optional human-readable progress
// message.
type Status struct {
	State     State     `json:"state"`
	Message   string    `json:"message,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

// Artifact is a named result payload attached to a completed task. Texts
// holds one or more textual parts in order.
type Artifact struct {
	ID    string   `json:"artifactId"`
	Name  string   `json:"name,omitempty"`
	Texts []string `json:"texts"`
}

// Text joins all textual parts of the artifact.
func (a Artifact) Text() string {
	switch len(a.Texts) {
	case 0:
		return ""
	case 1:
		return a.Texts[0]
	}
	out := a.Texts[0]
	for _, t := range a.Texts[1:] {
		out += t
	}
	return out
}

// Task is a trackable unit of work created per inbound request. ContextID
// correlates the task to a conversation; History records every status the
// task has passed through, oldest first.
type Task struct {
	ID        string     `json:"id"`
	ContextID string     `json:"contextId"`
	Status    Status     `json:"status"`
	Artifacts []Artifact `json:"artifacts,omitempty"`
	History   []Status   `json:"history,omitempty"`
}

// New creates a task bound to contextID. A missing contextID gets a fresh
// identifier so correlation always works.
func New(contextID string) *Task {
	if contextID == "" {
		contextID = uuid.NewString()
	}
	return &Task{
		ID:        uuid.NewString(),
		ContextID: contextID,
	}
}
