package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"
)

// sessionCounter reports how many sessions are live
type sessionCounter interface {
	Len() int
}

// HealthHandler provides health check endpoint
type HealthHandler struct {
	logger   *slog.Logger
	sessions sessionCounter
	version  string
}

// NewHealthHandler creates a new health handler
func NewHealthHandler(logger *slog.Logger, sessions sessionCounter, version string) *HealthHandler {
	return &HealthHandler{
		logger:   logger,
		sessions: sessions,
		version:  version,
	}
}

// HealthResponse represents the health check response
type HealthResponse struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
	Version   string    `json:"version"`
	Sessions  int       `json:"sessions"`
}

// ServeHTTP handles health check requests
func (h *HealthHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	response := HealthResponse{
		Status:    "healthy",
		Timestamp: time.Now().UTC(),
		Version:   h.version,
		Sessions:  h.sessions.Len(),
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)

	if err := json.NewEncoder(w).Encode(response); err != nil {
		h.logger.Error("failed to encode health response", "error", err)
	}
}
