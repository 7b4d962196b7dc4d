package handlers

import (
	"net/http"
	"time"

	"faqsearch/internal/index"
)

// HealthHandler reports service health. Search being disabled is a degraded
// but healthy state: FAQ management keeps working without it.
type HealthHandler struct {
	index *index.Manager
}

// NewHealthHandler creates a new HealthHandler.
func NewHealthHandler(idx *index.Manager) *HealthHandler {
	return &HealthHandler{index: idx}
}

// HealthResponse represents the health check response.
type HealthResponse struct {
	// Overall health status: "healthy" or "degraded"
	Status string `json:"status"`

	// Timestamp of the health check
	Timestamp string `json:"timestamp"`

	// Individual check results
	Checks map[string]string `json:"checks"`
}

// ServeHTTP handles GET /api/health.
func (h *HealthHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	resp := HealthResponse{
		Status:    "healthy",
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Checks:    map[string]string{},
	}
	if h.index.Enabled() {
		resp.Checks["document_store"] = "configured"
	} else {
		resp.Checks["document_store"] = "disabled"
		resp.Status = "degraded"
	}
	writeJSON(w, http.StatusOK, resp)
}
