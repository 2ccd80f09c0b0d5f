package handlers

import (
	"encoding/json"
	"math"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gramtop961/storefront-api/internal/models"
	"github.com/gramtop961/storefront-api/internal/service"
	"github.com/gramtop961/storefront-api/internal/store"
	"github.com/gramtop961/storefront-api/pkg/logger"
)

func newOrderHandler(st store.Store) *OrderHandler {
	return NewOrderHandler(service.NewOrderService(st), logger.New("error"))
}

func TestCreateOrder(t *testing.T) {
	handler := newOrderHandler(store.NewMemoryStore())

	body := `{
		"items": [{"product_id": "p1", "title": "Headphones", "price": 30, "quantity": 2}],
		"customer_name": "Ada Lovelace",
		"customer_email": "ada@example.com",
		"customer_address": "12 Analytical Way"
	}`

	req := httptest.NewRequest(http.MethodPost, "/api/orders", strings.NewReader(body))
	w := httptest.NewRecorder()
	handler.CreateOrder(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", w.Code, w.Body.String())
	}

	var receipt models.OrderReceipt
	if err := json.NewDecoder(w.Body).Decode(&receipt); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if receipt.OrderID == "" {
		t.Error("expected an order id")
	}
	if math.Abs(receipt.Total-64.20) > 1e-9 {
		t.Errorf("expected total 64.20, got %v", receipt.Total)
	}
}

func TestCreateOrder_DefaultsApplied(t *testing.T) {
	handler := newOrderHandler(store.NewMemoryStore())

	// Quantity omitted defaults to 1; price omitted defaults to 0.
	body := `{
		"items": [{"product_id": "p1", "title": "Bottle", "price": 10}, {"product_id": "p2", "title": "Sticker"}],
		"customer_name": "Ada",
		"customer_email": "ada@example.com",
		"customer_address": "somewhere"
	}`

	req := httptest.NewRequest(http.MethodPost, "/api/orders", strings.NewReader(body))
	w := httptest.NewRecorder()
	handler.CreateOrder(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}

	var receipt models.OrderReceipt
	if err := json.NewDecoder(w.Body).Decode(&receipt); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	// subtotal 10.00, shipping 6.99, taxes 0.70
	if math.Abs(receipt.Total-17.69) > 1e-9 {
		t.Errorf("expected total 17.69, got %v", receipt.Total)
	}
}

func TestCreateOrder_EmptyItems(t *testing.T) {
	handler := newOrderHandler(store.NewMemoryStore())

	body := `{"items": [], "customer_name": "Ada", "customer_email": "a@b.c", "customer_address": "x"}`
	req := httptest.NewRequest(http.MethodPost, "/api/orders", strings.NewReader(body))
	w := httptest.NewRecorder()
	handler.CreateOrder(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}

	var receipt models.OrderReceipt
	if err := json.NewDecoder(w.Body).Decode(&receipt); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if math.Abs(receipt.Total-6.99) > 1e-9 {
		t.Errorf("empty order should cost shipping only, got %v", receipt.Total)
	}
}

func TestCreateOrder_InvalidBody(t *testing.T) {
	handler := newOrderHandler(store.NewMemoryStore())

	req := httptest.NewRequest(http.MethodPost, "/api/orders", strings.NewReader("{not json"))
	w := httptest.NewRecorder()
	handler.CreateOrder(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("expected status 400, got %d", w.Code)
	}
}

func TestCreateOrder_NoStore(t *testing.T) {
	handler := newOrderHandler(nil)

	body := `{"items": [], "customer_name": "Ada", "customer_email": "a@b.c", "customer_address": "x"}`
	req := httptest.NewRequest(http.MethodPost, "/api/orders", strings.NewReader(body))
	w := httptest.NewRecorder()
	handler.CreateOrder(w, req)

	if w.Code != http.StatusInternalServerError {
		t.Errorf("expected status 500 when store unconfigured, got %d", w.Code)
	}
}
