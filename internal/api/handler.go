package api

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/Karthik-NDSK/the-lecture-lab/internal/service"
	"github.com/Karthik-NDSK/the-lecture-lab/internal/store"
)

// Handler holds all dependencies needed by HTTP handlers.
// Instead of relying on package-level globals, every handler method
// receives its dependencies through this struct.
type Handler struct {
	store      store.Store
	quizzes    *service.QuizService
	generation *service.GenerationService
	logger     *slog.Logger
}

// NewHandler creates a Handler with the given dependencies.
func NewHandler(s store.Store, quizzes *service.QuizService, generation *service.GenerationService, logger *slog.Logger) *Handler {
	return &Handler{
		store:      s,
		quizzes:    quizzes,
		generation: generation,
		logger:     logger,
	}
}

// userID extracts the acting principal. Auth mechanics live in front of this
// service; here the caller's identity arrives as a header. Writes an error
// and returns "" when missing.
func userID(w http.ResponseWriter, r *http.Request) string {
	uid := r.Header.Get("X-User-ID")
	if uid == "" {
		respondError(w, http.StatusUnauthorized, "X-User-ID header is required")
	}
	return uid
}

// respondJSON writes a JSON response with the given status code.
func respondJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// respondError writes a JSON error body with the given status code.
func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{"error": message})
}

// decodeJSON decodes the request body into v. Returns false (after writing
// a 400) if the body is not valid JSON.
func decodeJSON(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		respondError(w, http.StatusBadRequest, "invalid json")
		return false
	}
	return true
}

// handleStoreError checks for common store errors and writes the appropriate
// HTTP response. Returns true if an error was handled (caller should return).
func (h *Handler) handleStoreError(w http.ResponseWriter, err error, entity string) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, store.ErrNotFound) {
		respondError(w, http.StatusNotFound, entity+" not found")
		return true
	}
	h.logger.Error("store error", "error", err, "entity", entity)
	respondError(w, http.StatusInternalServerError, "internal error")
	return true
}
