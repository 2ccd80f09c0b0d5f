package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gramtop961/storefront-api/internal/store"
)

// DiagnosticsHandler reports store reachability and configured collections.
type DiagnosticsHandler struct {
	store      store.Store
	urlSet     bool
	nameSet    bool
	instanceID string
	logger     *slog.Logger
}

// NewDiagnosticsHandler creates a diagnostics handler. st may be nil when no
// store is configured; urlSet/nameSet report whether the corresponding
// environment values were provided.
func NewDiagnosticsHandler(st store.Store, urlSet, nameSet bool, instanceID string, logger *slog.Logger) *DiagnosticsHandler {
	return &DiagnosticsHandler{
		store:      st,
		urlSet:     urlSet,
		nameSet:    nameSet,
		instanceID: instanceID,
		logger:     logger,
	}
}

// diagnosticsResponse mirrors the shape the frontend tooling expects.
type diagnosticsResponse struct {
	Backend          string   `json:"backend"`
	Database         string   `json:"database"`
	DatabaseURL      string   `json:"database_url"`
	DatabaseName     string   `json:"database_name"`
	ConnectionStatus string   `json:"connection_status"`
	Collections      []string `json:"collections"`
	InstanceID       string   `json:"instance_id"`
}

// ServeHTTP handles GET /test
func (h *DiagnosticsHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	resp := diagnosticsResponse{
		Backend:          "running",
		Database:         "not available",
		DatabaseURL:      configuredFlag(h.urlSet),
		DatabaseName:     configuredFlag(h.nameSet),
		ConnectionStatus: "not connected",
		Collections:      []string{},
		InstanceID:       h.instanceID,
	}

	if h.store != nil {
		resp.ConnectionStatus = "connected"
		resp.Database = "available"

		if names, err := h.store.ListCollections(r.Context()); err != nil {
			h.logger.Warn("diagnostics: list collections failed", "error", err)
			resp.Database = "connected but errored"
		} else {
			if len(names) > 10 {
				names = names[:10]
			}
			resp.Collections = names
			resp.Database = "connected and working"
		}
	}

	WriteJSON(w, http.StatusOK, resp, h.logger)
}

func configuredFlag(set bool) string {
	if set {
		return "set"
	}
	return "not set"
}
