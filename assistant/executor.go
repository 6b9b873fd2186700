package assistant

import (
	"context"
	"fmt"

	"github.com/shopmesh/shopmesh/logging"
	"github.com/shopmesh/shopmesh/runner"
	"github.com/shopmesh/shopmesh/task"
)

// AgentExecutor drives one agent run per incoming task. The task context ID
// doubles as the session ID, so follow-up tasks in the same context share
// conversation history.
type AgentExecutor struct {
	runner          *runner.Runner
	artifactName    string
	progressMessage string
	logger          logging.Logger
}

// NewAgentExecutor wraps a runner for serving over the wire. artifactName
// labels the response artifact; progressMessage is published while the
// agent works.
func NewAgentExecutor(r *runner.Runner, artifactName, progressMessage string, logger logging.Logger) *AgentExecutor {
	if logger == nil {
		logger = logging.NoOpLogger{}
	}
	return &AgentExecutor{
		runner:          r,
		artifactName:    artifactName,
		progressMessage: progressMessage,
		logger:          logger,
	}
}

// Execute runs the agent against the query and drives the task through its
// lifecycle. Errors are returned to the server, which marks the task failed.
func (e *AgentExecutor) Execute(ctx context.Context, contextID, query string, updater *task.Updater) error {
	if err := updater.Submit(); err != nil {
		return err
	}
	if err := updater.StartWork(); err != nil {
		return err
	}
	if err := updater.UpdateStatus(task.StateWorking, e.progressMessage); err != nil {
		return err
	}

	response, err := e.runner.RunSync(ctx, contextID, query)
	if err != nil {
		return fmt.Errorf("agent run failed: %w", err)
	}
	if response == "" {
		response = "Sorry, I could not process your request. Please try again."
	}

	if err := updater.AddArtifact(e.artifactName, response); err != nil {
		return err
	}
	if err := updater.Complete(); err != nil {
		return err
	}

	e.logger.Info("executor.task.complete", "context_id", contextID)

	return nil
}
