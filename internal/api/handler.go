// Package api provides the bot's operational HTTP endpoints.
package api

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/akravets/dbrain-bot/internal/session"
	"github.com/akravets/dbrain-bot/internal/store"
)

// HealthChecker reports whether the processor backend is reachable.
type HealthChecker interface {
	Health(ctx context.Context) error
}

// Handler serves health and status endpoints.
type Handler struct {
	repo      store.Repository
	sessions  *session.Store
	processor HealthChecker
	startedAt time.Time
}

// NewHandler creates a Handler with common dependencies.
func NewHandler(repo store.Repository, sessions *session.Store, processor HealthChecker) *Handler {
	return &Handler{
		repo:      repo,
		sessions:  sessions,
		processor: processor,
		startedAt: time.Now(),
	}
}

// JSON writes a JSON response with the given status code.
func JSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		http.Error(w, `{"error": "failed to encode response"}`, http.StatusInternalServerError)
	}
}

// Error writes a JSON error response.
func Error(w http.ResponseWriter, status int, message string) {
	JSON(w, status, map[string]string{"error": message})
}

// Health returns the health status of the bot and its dependencies.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	checks := map[string]string{"bot": "ok"}
	statusCode := http.StatusOK
	overall := "healthy"

	if err := h.repo.Ping(ctx); err != nil {
		slog.Error("Health check failed", "check", "database", "error", err)
		checks["database"] = "unreachable"
		overall = "degraded"
		statusCode = http.StatusServiceUnavailable
	} else {
		checks["database"] = "ok"
	}

	if h.processor != nil {
		if err := h.processor.Health(ctx); err != nil {
			slog.Error("Health check failed", "check", "processor", "error", err)
			checks["processor"] = "unreachable"
			overall = "degraded"
			statusCode = http.StatusServiceUnavailable
		} else {
			checks["processor"] = "ok"
		}
	}

	JSON(w, statusCode, map[string]interface{}{
		"status": overall,
		"checks": checks,
	})
}

// Status returns live session and archive counters.
func (h *Handler) Status(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	archived, err := h.repo.CountArchivedSessions(ctx)
	if err != nil {
		slog.Error("Failed to count archived sessions", "error", err)
		Error(w, http.StatusInternalServerError, "failed to read archive")
		return
	}

	JSON(w, http.StatusOK, map[string]interface{}{
		"active_sessions":   h.sessions.Count(),
		"archived_sessions": archived,
		"uptime_seconds":    int(time.Since(h.startedAt).Seconds()),
	})
}

// RegisterRoutes registers all API routes.
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Get("/health", h.Health)
	r.Get("/api/status", h.Status)
}
