package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gramtop961/storefront-api/internal/store"
	"github.com/gramtop961/storefront-api/pkg/logger"
)

func TestDiagnostics_NoStore(t *testing.T) {
	handler := NewDiagnosticsHandler(nil, false, true, "instance-1", logger.New("error"))

	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}

	var resp diagnosticsResponse
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.ConnectionStatus != "not connected" {
		t.Errorf("expected not connected, got %q", resp.ConnectionStatus)
	}
	if resp.DatabaseURL != "not set" {
		t.Errorf("expected database_url 'not set', got %q", resp.DatabaseURL)
	}
	if resp.DatabaseName != "set" {
		t.Errorf("expected database_name 'set', got %q", resp.DatabaseName)
	}
	if len(resp.Collections) != 0 {
		t.Errorf("expected no collections, got %v", resp.Collections)
	}
	if resp.InstanceID != "instance-1" {
		t.Errorf("expected instance id, got %q", resp.InstanceID)
	}
}

func TestDiagnostics_WithStore(t *testing.T) {
	st := store.NewMemoryStore()
	if _, err := st.InsertOne(context.Background(), "product", store.Document{"title": "x"}); err != nil {
		t.Fatalf("InsertOne() error = %v", err)
	}

	handler := NewDiagnosticsHandler(st, true, true, "instance-1", logger.New("error"))

	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	var resp diagnosticsResponse
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.ConnectionStatus != "connected" {
		t.Errorf("expected connected, got %q", resp.ConnectionStatus)
	}
	if resp.Database != "connected and working" {
		t.Errorf("expected working database, got %q", resp.Database)
	}
	if len(resp.Collections) != 1 || resp.Collections[0] != "product" {
		t.Errorf("expected [product], got %v", resp.Collections)
	}
}

func TestHealthEndpoints(t *testing.T) {
	handler := NewHealthHandler("instance-1", logger.New("error"))

	w := httptest.NewRecorder()
	handler.Root(w, httptest.NewRequest(http.MethodGet, "/", nil))
	if w.Code != http.StatusOK {
		t.Errorf("root: expected status 200, got %d", w.Code)
	}
	var root map[string]string
	if err := json.NewDecoder(w.Body).Decode(&root); err != nil {
		t.Fatalf("failed to decode root response: %v", err)
	}
	if root["message"] == "" {
		t.Error("root: expected a liveness message")
	}

	w = httptest.NewRecorder()
	handler.Hello(w, httptest.NewRequest(http.MethodGet, "/api/hello", nil))
	if w.Code != http.StatusOK {
		t.Errorf("hello: expected status 200, got %d", w.Code)
	}
}

func TestSchemaEndpoint(t *testing.T) {
	handler := NewSchemaHandler(logger.New("error"))

	w := httptest.NewRecorder()
	handler.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/schema", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}

	var resp map[string]map[string]any
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	for _, name := range []string{"product", "order"} {
		schema, ok := resp[name]
		if !ok {
			t.Fatalf("schema for %q missing", name)
		}
		if schema["type"] != "object" {
			t.Errorf("%s schema type = %v, want object", name, schema["type"])
		}
	}
}
