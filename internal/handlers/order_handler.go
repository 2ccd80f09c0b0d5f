package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/gramtop961/storefront-api/internal/models"
	"github.com/gramtop961/storefront-api/internal/service"
)

// OrderHandler handles order-related HTTP requests
type OrderHandler struct {
	orders *service.OrderService
	log    *slog.Logger
}

// NewOrderHandler creates a new order handler
func NewOrderHandler(orders *service.OrderService, log *slog.Logger) *OrderHandler {
	return &OrderHandler{
		orders: orders,
		log:    log,
	}
}

// CreateOrder handles POST /api/orders
func (h *OrderHandler) CreateOrder(w http.ResponseWriter, r *http.Request) {
	var req models.CreateOrderRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.log.Error("failed to decode order request", "error", err)
		WriteError(w, http.StatusBadRequest, "Invalid request body", h.log)
		return
	}

	receipt, err := h.orders.CreateOrder(r.Context(), req)
	if err != nil {
		h.log.Error("failed to create order", "error", err)

		if status, msg, ok := storeErrorStatus(err); ok {
			WriteError(w, status, msg, h.log)
			return
		}
		WriteError(w, http.StatusInternalServerError, "Internal server error", h.log)
		return
	}

	WriteJSON(w, http.StatusOK, receipt, h.log)
	h.log.Info("order created successfully", "order_id", receipt.OrderID, "total", receipt.Total)
}
