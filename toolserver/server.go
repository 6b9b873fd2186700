package toolserver

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/shopmesh/shopmesh/core"
	"github.com/shopmesh/shopmesh/logging"
	"github.com/shopmesh/shopmesh/session"
	"github.com/shopmesh/shopmesh/telemetry"
	"github.com/shopmesh/shopmesh/tool"
)

// InvokeRequest is the body of POST /tool.
type InvokeRequest struct {
	Name      string         `json:"name"`
	Arguments map[string]any `json:"arguments"`
}

// ServerConfig configures the shared tool backend.
type ServerConfig struct {
	Host     string
	Port     int
	Registry *tool.Registry
	Logger   logging.Logger
}

// Server exposes a tool registry over HTTP so every agent executes domain
// tools against the same backend. Tool failures are data: the response is
// always a JSON payload, an error field included when the tool failed.
type Server struct {
	router   chi.Router
	server   *http.Server
	registry *tool.Registry
	logger   logging.Logger
	sessions core.SessionStore
}

// NewServer builds the backend and its router.
func NewServer(cfg ServerConfig) *Server {
	if cfg.Logger == nil {
		cfg.Logger = logging.NoOpLogger{}
	}

	s := &Server{
		registry: cfg.Registry,
		logger:   cfg.Logger,
		sessions: session.NewInMemoryStore(),
	}

	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)

	r.Post("/tool", s.handleInvoke)
	r.Get("/tools", s.handleList)
	r.Get("/health", s.handleHealth)
	r.Handle("/metrics", promhttp.Handler())

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

// Start begins listening until the listener fails or Shutdown is called.
func (s *Server) Start() error {
	s.logger.Info("toolserver.starting", "addr", s.server.Addr, "tools", s.registry.Len())
	if err := s.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// Shutdown stops the server gracefully.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.server.Shutdown(ctx)
}

func (s *Server) handleInvoke(w http.ResponseWriter, r *http.Request) {
	var req InvokeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}
	if req.Name == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "tool name is required"})
		return
	}

	s.logger.Info("toolserver.invoke", "tool", req.Name)

	start := time.Now()
	result := ExecuteTool(r.Context(), s.registry, s.sessions, s.logger, req.Name, req.Arguments)
	telemetry.Metrics.ToolDuration.WithLabelValues(req.Name).Observe(time.Since(start).Seconds())

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(result))
}

func (s *Server) handleList(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{"tools": s.registry.Names()})
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"status":  "healthy",
		"service": "tool-backend",
		"tools":   s.registry.Len(),
	})
}

// ExecuteTool runs a registry tool outside an agent run and serializes the
// outcome to JSON. Tool failures become error payloads, never transport
// errors. The backend and the agents' local fallback both route through
// this function, keeping the two behaviorally equivalent per tool name.
func ExecuteTool(
	ctx context.Context,
	registry *tool.Registry,
	sessions core.SessionStore,
	logger logging.Logger,
	name string,
	args map[string]any,
) string {
	sess, err := sessions.GetOrCreate("tool-backend")
	if err != nil {
		telemetry.Metrics.ToolExecutions.WithLabelValues(name, "error").Inc()
		return errorPayload(err)
	}

	runCtx := core.NewRunContext(
		ctx,
		sess.ID,
		core.NewID(),
		core.AgentInfo{Name: "tool-backend", Type: "backend"},
		core.Content{},
		0,
		nil,
		nil,
		sess,
		sessions,
		logger,
	)
	toolCtx := core.NewToolContext(runCtx, core.NewID())

	result, err := registry.Execute(toolCtx, name, args)
	if err != nil {
		telemetry.Metrics.ToolExecutions.WithLabelValues(name, "error").Inc()
		return errorPayload(err)
	}

	telemetry.Metrics.ToolExecutions.WithLabelValues(name, "ok").Inc()

	raw, err := json.Marshal(result)
	if err != nil {
		return errorPayload(fmt.Errorf("failed to serialize tool result: %w", err))
	}
	return string(raw)
}

func errorPayload(err error) string {
	payload := map[string]string{"error": err.Error()}

	var toolErr *tool.ToolError
	if errors.As(err, &toolErr) {
		payload["code"] = toolErr.Code
	}

	raw, _ := json.Marshal(payload)
	return string(raw)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
