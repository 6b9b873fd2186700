package task

import (
	"fmt"
	"sync"
)

// Store is an in-memory task repository. Tasks are never deleted within the
// process lifetime. Safe for concurrent use.
type Store struct {
	mu    sync.RWMutex
	tasks map[string]*Task
}

// NewStore creates an empty task store.
func NewStore() *Store {
	return &Store{tasks: make(map[string]*Task)}
}

// Create registers the task. Creating a second task under an existing ID is
// an error.
func (s *Store) Create(t *Task) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.tasks[t.ID]; exists {
		return fmt.Errorf("task %q already exists", t.ID)
	}
	s.tasks[t.ID] = t

	return nil
}

// Get returns a copy of the task with the given ID.
func (s *Store) Get(id string) (*Task, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	t, ok := s.tasks[id]
	if !ok {
		return nil, fmt.Errorf("task %q not found", id)
	}

	return cloneTask(t), nil
}

// Len returns the number of stored tasks.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.tasks)
}

// setStatus updates the task status and appends it to the history. It
// rejects transitions out of a terminal state.
func (s *Store) setStatus(id string, status Status) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	t, ok := s.tasks[id]
	if !ok {
		return fmt.Errorf("task %q not found", id)
	}
	if t.Status.State.Terminal() {
		return fmt.Errorf("task %q is already %s", id, t.Status.State)
	}

	t.Status = status
	t.History = append(t.History, status)

	return nil
}

// addArtifact appends an artifact to the task.
func (s *Store) addArtifact(id string, a Artifact) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	t, ok := s.tasks[id]
	if !ok {
		return fmt.Errorf("task %q not found", id)
	}
	t.Artifacts = append(t.Artifacts, a)

	return nil
}

func cloneTask(t *Task) *Task {
	c := *t
	c.Artifacts = append([]Artifact(nil), t.Artifacts...)
	c.History = append([]Status(nil), t.History...)
	return &c
}
