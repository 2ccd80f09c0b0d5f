package handlers

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gramtop961/storefront-api/internal/service"
	"github.com/go-chi/chi/v5"
)

// ProductHandler handles product-related HTTP requests
type ProductHandler struct {
	catalog *service.CatalogService
	logger  *slog.Logger
}

// NewProductHandler creates a new product handler
func NewProductHandler(catalog *service.CatalogService, logger *slog.Logger) *ProductHandler {
	return &ProductHandler{
		catalog: catalog,
		logger:  logger,
	}
}

// ListProducts handles GET /api/products
// Query params: category (exact match), q (free-text), limit (default 50)
func (h *ProductHandler) ListProducts(w http.ResponseWriter, r *http.Request) {
	query := service.ListQuery{
		Category: r.URL.Query().Get("category"),
		Text:     r.URL.Query().Get("q"),
		Limit:    service.DefaultListLimit,
	}
	if raw := r.URL.Query().Get("limit"); raw != "" {
		if limit, err := strconv.ParseInt(raw, 10, 64); err == nil {
			query.Limit = limit
		}
	}

	products, err := h.catalog.ListProducts(r.Context(), query)
	if err != nil {
		if status, msg, ok := storeErrorStatus(err); ok {
			WriteError(w, status, msg, h.logger)
			return
		}
		h.logger.Error("failed to list products", "error", err)
		WriteError(w, http.StatusInternalServerError, "Internal server error", h.logger)
		return
	}

	WriteJSON(w, http.StatusOK, products, h.logger)
}

// GetProduct handles GET /api/products/{productId}
// - 200: successful operation
// - 400: malformed product id
// - 404: product not found
// - 500: store not configured
func (h *ProductHandler) GetProduct(w http.ResponseWriter, r *http.Request) {
	productID := chi.URLParam(r, "productId")

	product, err := h.catalog.GetProduct(r.Context(), productID)
	if err != nil {
		if status, msg, ok := storeErrorStatus(err); ok {
			h.logger.Info("get product failed", "productId", productID, "status", status)
			WriteError(w, status, msg, h.logger)
			return
		}
		h.logger.Error("failed to get product", "productId", productID, "error", err)
		WriteError(w, http.StatusInternalServerError, "Internal server error", h.logger)
		return
	}

	WriteJSON(w, http.StatusOK, product, h.logger)
}

// SeedProducts handles POST /api/products/seed
// Inserts the demo catalog best-effort and reports the inserted count.
func (h *ProductHandler) SeedProducts(w http.ResponseWriter, r *http.Request) {
	inserted, err := h.catalog.SeedDemoProducts(r.Context())
	if err != nil {
		if status, msg, ok := storeErrorStatus(err); ok {
			WriteError(w, status, msg, h.logger)
			return
		}
		h.logger.Error("failed to seed products", "error", err)
		WriteError(w, http.StatusInternalServerError, "Internal server error", h.logger)
		return
	}

	h.logger.Info("demo catalog seeded", "inserted", inserted)
	WriteJSON(w, http.StatusOK, map[string]int{"inserted": inserted}, h.logger)
}
