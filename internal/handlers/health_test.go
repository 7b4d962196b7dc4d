package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"go.uber.org/mock/gomock"

	"faqsearch/internal/index"
	"faqsearch/internal/store/mocks"
)

func TestHealthHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	handler := NewHealthHandler(index.NewManager(mocks.NewMockDocumentStore(ctrl)))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/health", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
	}
	var resp HealthResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Status != "healthy" {
		t.Errorf("status = %q, want healthy", resp.Status)
	}
	if resp.Checks["document_store"] != "configured" {
		t.Errorf("document_store check = %q, want configured", resp.Checks["document_store"])
	}
	if resp.Timestamp == "" {
		t.Error("timestamp is empty")
	}
}

func TestHealthHandler_Degraded(t *testing.T) {
	handler := NewHealthHandler(index.NewManager(nil))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/health", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
	}
	var resp HealthResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Status != "degraded" {
		t.Errorf("status = %q, want degraded", resp.Status)
	}
	if resp.Checks["document_store"] != "disabled" {
		t.Errorf("document_store check = %q, want disabled", resp.Checks["document_store"])
	}
}
