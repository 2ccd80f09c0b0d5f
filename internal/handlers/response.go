package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gramtop961/storefront-api/internal/store"
)

// WriteJSON writes a JSON response
func WriteJSON(w http.ResponseWriter, status int, data interface{}, logger *slog.Logger) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(data); err != nil {
		logger.Error("failed to encode JSON response", "error", err)
	}
}

// WriteError writes an error response in JSON format
func WriteError(w http.ResponseWriter, status int, message string, logger *slog.Logger) {
	WriteJSON(w, status, map[string]string{"error": message}, logger)
}

// storeErrorStatus maps store errors to HTTP status codes:
// - 500: store not configured
// - 400: malformed identifier
// - 404: no matching record
func storeErrorStatus(err error) (int, string, bool) {
	switch {
	case errors.Is(err, store.ErrUnavailable):
		return http.StatusInternalServerError, "Database not configured", true
	case errors.Is(err, store.ErrInvalidID):
		return http.StatusBadRequest, "Invalid product id", true
	case errors.Is(err, store.ErrNotFound):
		return http.StatusNotFound, "Product not found", true
	default:
		return 0, "", false
	}
}
