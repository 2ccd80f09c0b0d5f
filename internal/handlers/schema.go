package handlers

import (
	"log/slog"
	"net/http"
)

// SchemaHandler serves JSON Schema documents for the stored record shapes,
// for tooling and inspectors.
type SchemaHandler struct {
	logger *slog.Logger
}

// NewSchemaHandler creates a new schema handler
func NewSchemaHandler(logger *slog.Logger) *SchemaHandler {
	return &SchemaHandler{logger: logger}
}

// ServeHTTP handles GET /schema
func (h *SchemaHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	WriteJSON(w, http.StatusOK, map[string]any{
		"product": productSchema,
		"order":   orderSchema,
	}, h.logger)
}

var productSchema = map[string]any{
	"title": "Product",
	"type":  "object",
	"properties": map[string]any{
		"title":       map[string]any{"type": "string"},
		"description": map[string]any{"type": "string"},
		"price":       map[string]any{"type": "number", "minimum": 0},
		"category":    map[string]any{"type": "string", "default": "Other"},
		"image":       map[string]any{"type": "string"},
		"rating":      map[string]any{"type": "number", "default": 4.5},
		"in_stock":    map[string]any{"type": "boolean", "default": true},
	},
	"required": []string{"title", "description", "price"},
}

var orderSchema = map[string]any{
	"title": "Order",
	"type":  "object",
	"properties": map[string]any{
		"items": map[string]any{
			"type": "array",
			"items": map[string]any{
				"type": "object",
				"properties": map[string]any{
					"product_id": map[string]any{"type": "string"},
					"title":      map[string]any{"type": "string"},
					"price":      map[string]any{"type": "number", "minimum": 0},
					"quantity":   map[string]any{"type": "integer", "minimum": 1, "default": 1},
					"image":      map[string]any{"type": "string"},
				},
			},
		},
		"subtotal":         map[string]any{"type": "number"},
		"shipping":         map[string]any{"type": "number"},
		"taxes":            map[string]any{"type": "number"},
		"total":            map[string]any{"type": "number"},
		"customer_name":    map[string]any{"type": "string"},
		"customer_email":   map[string]any{"type": "string"},
		"customer_address": map[string]any{"type": "string"},
	},
	"required": []string{"items", "customer_name", "customer_email", "customer_address"},
}
