package assistant

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/shopmesh/shopmesh/logging"
	"github.com/shopmesh/shopmesh/runner"
)

// chatRequest is the body of POST /api/chat.
type chatRequest struct {
	Message   string `json:"message"`
	SessionID string `json:"session_id"`
}

// GatewayRoutes returns the REST routes mounted next to the orchestrator's
// wire endpoint: a direct chat API for web UIs and an agent directory.
func GatewayRoutes(r *runner.Runner, d *Delegator, logger logging.Logger) func(chi.Router) {
	if logger == nil {
		logger = logging.NoOpLogger{}
	}

	return func(router chi.Router) {
		router.Post("/api/chat", func(w http.ResponseWriter, req *http.Request) {
			var body chatRequest
			if err := json.NewDecoder(req.Body).Decode(&body); err != nil {
				writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
				return
			}

			message := strings.TrimSpace(body.Message)
			if message == "" {
				writeJSON(w, http.StatusBadRequest, map[string]string{"error": "message field is required"})
				return
			}

			sessionID := body.SessionID
			if sessionID == "" {
				sessionID = "default"
			}

			response, err := r.RunSync(req.Context(), sessionID, message)
			if err != nil {
				logger.Error("gateway.chat.error", "session_id", sessionID, "error", err.Error())
				writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
				return
			}
			if response == "" {
				response = "Could not generate a response."
			}

			writeJSON(w, http.StatusOK, map[string]string{
				"response":   response,
				"session_id": sessionID,
			})
		})

		router.Get("/api/agents", func(w http.ResponseWriter, _ *http.Request) {
			agents := make([]map[string]any, 0, 3)
			for _, a := range d.Agents() {
				agents = append(agents, map[string]any{
					"name":         a.Name,
					"url":          a.URL,
					"agent_card":   strings.TrimSuffix(a.URL, "/") + "/.well-known/agent.json",
					"capabilities": a.Capabilities,
				})
			}
			writeJSON(w, http.StatusOK, map[string]any{"agents": agents})
		})
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
