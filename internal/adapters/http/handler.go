// Package httpadapter exposes the assistant over HTTP: the chat turn
// endpoint, the weekly research trigger and a health check.
package httpadapter

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/shennylee/aios/internal/app/orchestrator"
	"github.com/shennylee/aios/internal/app/research"
	"github.com/shennylee/aios/internal/domain"
	"github.com/shennylee/aios/internal/observability"
)

type Server struct {
	orch       *orchestrator.Orchestrator
	pipeline   *research.Pipeline
	cronSecret string
}

func NewServer(orch *orchestrator.Orchestrator, pipeline *research.Pipeline, cronSecret string) http.Handler {
	s := &Server{orch: orch, pipeline: pipeline, cronSecret: cronSecret}

	mux := http.NewServeMux()
	mux.HandleFunc("/healthz", s.handleHealthz)
	mux.HandleFunc("/chat", s.handleChat)
	mux.HandleFunc("/research/weekly", s.handleWeeklyResearch)

	return chainMiddlewares(mux, withRequestID, withLogging, withCORS)
}

// ─────────────────────────────────────────────
// DTOs (request/response)
// ─────────────────────────────────────────────

type chatRequest struct {
	AgentID  string `json:"agent_id"`
	Message  string `json:"message"`
	ThreadID string `json:"thread_id,omitempty"`
}

type chatResponse struct {
	ThreadID string `json:"thread_id"`
	Message  string `json:"message"`
}

type researchResponse struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Stats   *research.Stats `json:"stats"`
}

// ─────────────────────────────────────────────
// Handlers
// ─────────────────────────────────────────────

func (s *Server) handleHealthz(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleChat(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		methodNotAllowed(w)
		return
	}

	var req chatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		badRequest(w, "invalid JSON body")
		return
	}
	if req.AgentID == "" {
		badRequest(w, "agent_id is required")
		return
	}
	if strings.TrimSpace(req.Message) == "" {
		badRequest(w, "message is required")
		return
	}

	out, err := s.orch.HandleTurn(r.Context(), orchestrator.TurnInput{
		AgentID:  domain.AgentID(req.AgentID),
		Message:  req.Message,
		ThreadID: domain.ThreadID(req.ThreadID),
	})
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrAgentNotFound):
			writeJSON(w, http.StatusNotFound, map[string]string{"error": "Agent not found"})
		case errors.Is(err, domain.ErrRunFailed):
			internalError(w, r, err, "Assistant run failed")
		default:
			internalError(w, r, err, "Internal server error")
		}
		return
	}

	writeJSON(w, http.StatusOK, chatResponse{
		ThreadID: string(out.ThreadID),
		Message:  out.Message,
	})
}

// handleWeeklyResearch triggers the batch pipeline. GET is allowed for
// manual runs; the cron secret, when configured, guards both methods.
func (s *Server) handleWeeklyResearch(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost && r.Method != http.MethodGet {
		methodNotAllowed(w)
		return
	}

	if s.cronSecret != "" && r.Header.Get("Authorization") != "Bearer "+s.cronSecret {
		writeJSON(w, http.StatusUnauthorized, map[string]string{"error": "Unauthorized"})
		return
	}

	stats, err := s.pipeline.Run(r.Context())
	if err != nil {
		internalError(w, r, err, "Weekly research failed")
		return
	}

	writeJSON(w, http.StatusOK, researchResponse{
		Success: true,
		Message: "Weekly research completed and emailed",
		Stats:   stats,
	})
}

// ─────────────────────────────────────────────
// HTTP helpers
// ─────────────────────────────────────────────

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func badRequest(w http.ResponseWriter, msg string) {
	writeJSON(w, http.StatusBadRequest, map[string]string{"error": msg})
}

func internalError(w http.ResponseWriter, r *http.Request, err error, msg string) {
	observability.LoggerFromContext(r.Context()).Error("request failed",
		"path", r.URL.Path, "error", err)
	writeJSON(w, http.StatusInternalServerError, map[string]string{"error": msg})
}

func methodNotAllowed(w http.ResponseWriter) {
	writeJSON(w, http.StatusMethodNotAllowed, map[string]string{"error": "method not allowed"})
}
