package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"faqsearch/internal/search"
	"faqsearch/internal/service"
)

// FaqHandler maintains FAQ documents in the search index. It is called by the
// FAQ-management service on create/update/delete of the FAQ entity.
type FaqHandler struct {
	svc service.FaqSearch
}

// NewFaqHandler creates a new FaqHandler.
func NewFaqHandler(svc service.FaqSearch) *FaqHandler {
	return &FaqHandler{svc: svc}
}

// UpsertFaqRequest is the HTTP payload for indexing one FAQ.
type UpsertFaqRequest struct {
	ChatbotID string    `json:"chatbot_id"`
	FaqID     string    `json:"faq_id"`
	Question  string    `json:"question"`
	Answer    string    `json:"answer"`
	Synonyms  string    `json:"synonyms,omitempty"`
	Status    string    `json:"status,omitempty"`
	Embedding []float32 `json:"embedding"`
}

// Upsert handles PUT /api/faqs.
func (h *FaqHandler) Upsert(w http.ResponseWriter, r *http.Request) {
	var req UpsertFaqRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if req.ChatbotID == "" || req.FaqID == "" {
		writeError(w, http.StatusBadRequest, "chatbot_id and faq_id are required")
		return
	}

	ok := h.svc.UpsertFaq(r.Context(), search.UpsertRequest{
		ChatbotID: req.ChatbotID,
		FaqID:     req.FaqID,
		Question:  req.Question,
		Answer:    req.Answer,
		Synonyms:  req.Synonyms,
		Status:    req.Status,
		Embedding: req.Embedding,
	})
	writeJSON(w, http.StatusOK, OKResponse{OK: ok})
}

// Remove handles DELETE /api/faqs/{chatbotID}/{faqID}.
func (h *FaqHandler) Remove(w http.ResponseWriter, r *http.Request) {
	chatbotID := chi.URLParam(r, "chatbotID")
	faqID := chi.URLParam(r, "faqID")
	if chatbotID == "" || faqID == "" {
		writeError(w, http.StatusBadRequest, "chatbotID and faqID are required")
		return
	}
	ok := h.svc.RemoveFaq(r.Context(), chatbotID, faqID)
	writeJSON(w, http.StatusOK, OKResponse{OK: ok})
}
