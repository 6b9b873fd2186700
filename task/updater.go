package task

import (
	"time"

	"github.com/google/uuid"

	"github.com/shopmesh/shopmesh/logging"
	"github.com/shopmesh/shopmesh/telemetry"
)

// StatusEvent notifies an observer of a task transition or artifact
// attachment. Artifact is non-nil only for artifact events. Final marks
// terminal transitions.
type StatusEvent struct {
	TaskID   string
	Status   Status
	Artifact *Artifact
	Final    bool
}

// Updater drives a single task through its lifecycle. Every transition and
// artifact attachment is written to the store and pushed onto the event
// channel, so callers observe progress asynchronously while work continues.
// The channel is never closed by the Updater; callers must keep draining it
// until they see a final event.
type Updater struct {
	store  *Store
	taskID string
	events chan<- StatusEvent
	logger logging.Logger
}

// NewUpdater binds an updater to a stored task. A nil events channel
// disables notifications; a nil logger disables logging.
func NewUpdater(store *Store, taskID string, events chan<- StatusEvent, logger logging.Logger) *Updater {
	if logger == nil {
		logger = logging.NoOpLogger{}
	}
	return &Updater{store: store, taskID: taskID, events: events, logger: logger}
}

// Submit marks the task as accepted for processing. Must be called before
// any work begins.
func (u *Updater) Submit() error {
	return u.transition(StateSubmitted, "")
}

// StartWork marks the task as actively being worked on.
func (u *Updater) StartWork() error {
	return u.transition(StateWorking, "")
}

// UpdateStatus emits an intermediate progress notification, e.g. a
// human-readable "searching the catalog" message while the state stays
// working.
func (u *Updater) UpdateStatus(state State, message string) error {
	return u.transition(state, message)
}

// AddArtifact attaches a named textual result to the task.
func (u *Updater) AddArtifact(name string, texts ...string) error {
	a := Artifact{
		ID:    uuid.NewString(),
		Name:  name,
		Texts: texts,
	}

	if err := u.store.addArtifact(u.taskID, a); err != nil {
		return err
	}

	u.logger.Debug("task.artifact.added", "task_id", u.taskID, "artifact", a.Name)
	u.notify(StatusEvent{TaskID: u.taskID, Artifact: &a})

	return nil
}

// Complete transitions the task to its successful terminal state. Calling it
// twice is an error.
func (u *Updater) Complete() error {
	return u.transition(StateCompleted, "")
}

// Fail transitions the task to its failed terminal state with an explanatory
// message.
func (u *Updater) Fail(message string) error {
	return u.transition(StateFailed, message)
}

func (u *Updater) transition(state State, message string) error {
	status := Status{State: state, Message: message, Timestamp: time.Now().UTC()}

	if err := u.store.setStatus(u.taskID, status); err != nil {
		return err
	}

	u.logger.Debug("task.status.changed", "task_id", u.taskID, "state", string(state), "message", message)

	if state.Terminal() {
		telemetry.Metrics.TasksTotal.WithLabelValues(string(state)).Inc()
	}
	u.notify(StatusEvent{TaskID: u.taskID, Status: status, Final: state.Terminal()})

	return nil
}

func (u *Updater) notify(ev StatusEvent) {
	if u.events == nil {
		return
	}
	u.events <- ev
}
