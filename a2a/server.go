package a2a

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/shopmesh/shopmesh/logging"
	"github.com/shopmesh/shopmesh/task"
	"github.com/shopmesh/shopmesh/telemetry"
)

// Executor runs one task lifecycle for an inbound query. Implementations
// drive the updater from Submit through a terminal state; the server only
// guarantees a Fail transition when Execute returns an error with the task
// still open.
type Executor interface {
	Execute(ctx context.Context, contextID, query string, updater *task.Updater) error
}

// ServerConfig configures an agent-facing A2A server.
type ServerConfig struct {
	Host     string
	Port     int
	Card     AgentCard
	Executor Executor
	Tasks    *task.Store
	Logger   logging.Logger
	// ExtraRoutes registers additional routes, e.g. the orchestrator's REST
	// gateway endpoints, on the same router.
	ExtraRoutes func(r chi.Router)
}

// Server exposes one agent over the A2A JSON-RPC protocol: the agent card at
// /.well-known/agent.json, the RPC endpoint at /, plus /health and /metrics.
type Server struct {
	router   chi.Router
	server   *http.Server
	card     AgentCard
	executor Executor
	tasks    *task.Store
	logger   logging.Logger
}

// NewServer builds the server and its router.
func NewServer(cfg ServerConfig) *Server {
	if cfg.Logger == nil {
		cfg.Logger = logging.NoOpLogger{}
	}
	if cfg.Tasks == nil {
		cfg.Tasks = task.NewStore()
	}

	s := &Server{
		card:     cfg.Card,
		executor: cfg.Executor,
		tasks:    cfg.Tasks,
		logger:   cfg.Logger,
	}

	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)

	r.Get("/.well-known/agent.json", s.handleAgentCard)
	r.Get("/health", s.handleHealth)
	r.Handle("/metrics", promhttp.Handler())
	if cfg.ExtraRoutes != nil {
		cfg.ExtraRoutes(r)
	}
	r.Post("/", s.handleJSONRPC)

	s.router = r
	s.server = &http.Server{
		Addr:              fmt.Sprintf("%s:%d", cfg.Host, cfg.Port),
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	return s
}

// ServeHTTP makes the server mountable as a plain http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// Start begins listening. It blocks until the listener fails or Shutdown is
// called.
func (s *Server) Start() error {
	s.logger.Info("a2a.server.starting", "agent", s.card.Name, "addr", s.server.Addr)
	if err := s.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// Shutdown stops the server gracefully.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.server.Shutdown(ctx)
}

func (s *Server) handleAgentCard(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, s.card)
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"status":  "healthy",
		"service": s.card.Name,
		"version": s.card.Version,
	})
}

func (s *Server) handleJSONRPC(w http.ResponseWriter, r *http.Request) {
	var req JSONRPCRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusOK, NewErrorResponse(nil, CodeParse, "invalid JSON payload"))
		return
	}
	if req.JSONRPC != Version {
		writeJSON(w, http.StatusOK, NewErrorResponse(req.ID, CodeInvalidRequest, "unsupported jsonrpc version"))
		return
	}

	switch req.Method {
	case MethodMessageSend:
		s.rpcMessageSend(w, r, req)
	case MethodTasksGet:
		s.rpcTasksGet(w, req)
	case MethodTasksCancel:
		s.rpcTasksCancel(w, req)
	default:
		writeJSON(w, http.StatusOK, NewErrorResponse(req.ID, CodeMethodNotFound, fmt.Sprintf("method %q not found", req.Method)))
	}
}

// rpcMessageSend runs a complete task lifecycle for the inbound message and
// responds with the terminal task. Progress events are consumed concurrently
// so the updater never blocks mid-run.
func (s *Server) rpcMessageSend(w http.ResponseWriter, r *http.Request, req JSONRPCRequest) {
	start := time.Now()

	var params MessageSendParams
	if err := json.Unmarshal(req.Params, &params); err != nil {
		writeJSON(w, http.StatusOK, NewErrorResponse(req.ID, CodeInvalidParams, "invalid params"))
		return
	}

	query := params.Message.Text()
	if query == "" {
		writeJSON(w, http.StatusOK, NewErrorResponse(req.ID, CodeInvalidParams, "message has no text"))
		return
	}

	tk := task.New(params.ContextID)
	if err := s.tasks.Create(tk); err != nil {
		writeJSON(w, http.StatusOK, NewErrorResponse(req.ID, CodeInternal, err.Error()))
		return
	}

	events := make(chan task.StatusEvent, 64)
	drained := make(chan struct{})
	go func() {
		defer close(drained)
		for ev := range events {
			if ev.Artifact != nil {
				s.logger.Debug("a2a.task.artifact", "task_id", ev.TaskID, "name", ev.Artifact.Name)
				continue
			}
			s.logger.Debug("a2a.task.status", "task_id", ev.TaskID, "state", string(ev.Status.State))
			if ev.Final {
				return
			}
		}
	}()

	updater := task.NewUpdater(s.tasks, tk.ID, events, s.logger)

	if err := s.executor.Execute(r.Context(), tk.ContextID, query, updater); err != nil {
		s.logger.Error("a2a.task.execute_failed", "task_id", tk.ID, "error", err.Error())
		telemetry.Metrics.ErrorsTotal.WithLabelValues("a2a_server").Inc()
		// Execute may have failed before reaching a terminal transition.
		if stored, gerr := s.tasks.Get(tk.ID); gerr == nil && !stored.Status.State.Terminal() {
			_ = updater.Fail(fmt.Sprintf("An error occurred: %s", err))
		}
	}
	<-drained

	telemetry.Metrics.RequestDuration.WithLabelValues("message_send").Observe(time.Since(start).Seconds())

	stored, err := s.tasks.Get(tk.ID)
	if err != nil {
		writeJSON(w, http.StatusOK, NewErrorResponse(req.ID, CodeInternal, err.Error()))
		return
	}
	telemetry.Metrics.RequestsTotal.WithLabelValues("message_send", string(stored.Status.State)).Inc()
	writeJSON(w, http.StatusOK, NewResponse(req.ID, stored))
}

func (s *Server) rpcTasksGet(w http.ResponseWriter, req JSONRPCRequest) {
	var params TaskQueryParams
	if err := json.Unmarshal(req.Params, &params); err != nil {
		writeJSON(w, http.StatusOK, NewErrorResponse(req.ID, CodeInvalidParams, "invalid params"))
		return
	}

	stored, err := s.tasks.Get(params.ID)
	if err != nil {
		writeJSON(w, http.StatusOK, NewErrorResponse(req.ID, CodeTaskNotFound, err.Error()))
		return
	}
	writeJSON(w, http.StatusOK, NewResponse(req.ID, stored))
}

// rpcTasksCancel always rejects: none of the agents in this system support
// cancelling in-flight work.
func (s *Server) rpcTasksCancel(w http.ResponseWriter, req JSONRPCRequest) {
	writeJSON(w, http.StatusOK, NewErrorResponse(req.ID, CodeUnsupportedOperation, "This operation is not supported"))
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
