package handlers

import (
	"log/slog"
	"net/http"
)

// HealthHandler serves the liveness endpoints.
type HealthHandler struct {
	instanceID string
	logger     *slog.Logger
}

// NewHealthHandler creates a new health handler. instanceID identifies this
// process in liveness responses.
func NewHealthHandler(instanceID string, logger *slog.Logger) *HealthHandler {
	return &HealthHandler{
		instanceID: instanceID,
		logger:     logger,
	}
}

// Root handles GET /
func (h *HealthHandler) Root(w http.ResponseWriter, r *http.Request) {
	WriteJSON(w, http.StatusOK, map[string]string{
		"message":     "E-commerce backend is running",
		"instance_id": h.instanceID,
	}, h.logger)
}

// Hello handles GET /api/hello
func (h *HealthHandler) Hello(w http.ResponseWriter, r *http.Request) {
	WriteJSON(w, http.StatusOK, map[string]string{
		"message": "Hello from the backend API!",
	}, h.logger)
}
