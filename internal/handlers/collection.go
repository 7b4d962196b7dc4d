package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"faqsearch/internal/service"
)

// CollectionHandler manages per-chatbot collections. It is called by the
// chatbot-management service on chatbot create/delete.
type CollectionHandler struct {
	svc service.FaqSearch
}

// NewCollectionHandler creates a new CollectionHandler.
func NewCollectionHandler(svc service.FaqSearch) *CollectionHandler {
	return &CollectionHandler{svc: svc}
}

// Ensure handles PUT /api/collections/{chatbotID}.
func (h *CollectionHandler) Ensure(w http.ResponseWriter, r *http.Request) {
	chatbotID := chi.URLParam(r, "chatbotID")
	if chatbotID == "" {
		writeError(w, http.StatusBadRequest, "chatbotID is required")
		return
	}
	ok := h.svc.EnsureCollection(r.Context(), chatbotID)
	writeJSON(w, http.StatusOK, OKResponse{OK: ok})
}

// Recreate handles POST /api/collections/{chatbotID}/recreate. The fresh
// collection is empty; documents must be re-written by the owning service.
func (h *CollectionHandler) Recreate(w http.ResponseWriter, r *http.Request) {
	chatbotID := chi.URLParam(r, "chatbotID")
	if chatbotID == "" {
		writeError(w, http.StatusBadRequest, "chatbotID is required")
		return
	}
	ok := h.svc.RecreateCollection(r.Context(), chatbotID)
	writeJSON(w, http.StatusOK, OKResponse{OK: ok})
}

// Delete handles DELETE /api/collections/{chatbotID}.
func (h *CollectionHandler) Delete(w http.ResponseWriter, r *http.Request) {
	chatbotID := chi.URLParam(r, "chatbotID")
	if chatbotID == "" {
		writeError(w, http.StatusBadRequest, "chatbotID is required")
		return
	}
	ok := h.svc.DeleteCollection(r.Context(), chatbotID)
	writeJSON(w, http.StatusOK, OKResponse{OK: ok})
}
