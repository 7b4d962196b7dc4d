package handlers

import (
	"encoding/json"
	"net/http"

	"faqsearch/internal/contextutil"
	"faqsearch/internal/embedding"
	"faqsearch/internal/search"
	"faqsearch/internal/service"
)

// SearchHandler handles HTTP requests for hybrid FAQ retrieval.
type SearchHandler struct {
	svc      service.FaqSearch
	embedder *embedding.Client // optional; nil when no embeddings endpoint is configured
}

// NewSearchHandler creates a new SearchHandler. embedder may be nil, in which
// case callers must supply the query embedding themselves.
func NewSearchHandler(svc service.FaqSearch, embedder *embedding.Client) *SearchHandler {
	return &SearchHandler{svc: svc, embedder: embedder}
}

// SearchRequest is the HTTP payload for a retrieval query.
type SearchRequest struct {
	ChatbotID string `json:"chatbot_id"`
	Query     string `json:"query"`
	// Embedding is the query vector. Optional when the server has an
	// embeddings endpoint configured.
	Embedding []float32 `json:"embedding,omitempty"`

	TopK         int     `json:"top_k,omitempty"`
	BM25Weight   float64 `json:"bm25_weight,omitempty"`
	KNNWeight    float64 `json:"knn_weight,omitempty"`
	SimThreshold float64 `json:"sim_threshold,omitempty"`
	RankConstant int     `json:"rank_constant,omitempty"`
}

// SearchResponse is the HTTP payload for retrieval results.
type SearchResponse struct {
	Results []search.RankedResult `json:"results"`
	Count   int                   `json:"count"`
}

// ServeHTTP handles POST /api/search.
func (h *SearchHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := contextutil.LoggerFromContext(ctx)

	var req SearchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if req.ChatbotID == "" {
		writeError(w, http.StatusBadRequest, "chatbot_id is required")
		return
	}
	if req.Query == "" {
		writeError(w, http.StatusBadRequest, "query is required")
		return
	}

	embeddingVec := req.Embedding
	if len(embeddingVec) == 0 {
		if h.embedder == nil {
			writeError(w, http.StatusBadRequest, "embedding is required (no embeddings endpoint configured)")
			return
		}
		vec, err := h.embedder.EmbedText(ctx, req.Query)
		if err != nil {
			// Search is an enhancement; an embedding failure degrades the
			// call to "no matches" rather than an error.
			logger.WarnContext(ctx, "failed to embed query, returning no results", "error", err)
			writeJSON(w, http.StatusOK, SearchResponse{Results: []search.RankedResult{}})
			return
		}
		embeddingVec = vec
	}

	results := h.svc.Search(ctx, req.ChatbotID, req.Query, embeddingVec, search.Options{
		TopK:         req.TopK,
		BM25Weight:   req.BM25Weight,
		KNNWeight:    req.KNNWeight,
		SimThreshold: req.SimThreshold,
		RankConstant: req.RankConstant,
	})

	writeJSON(w, http.StatusOK, SearchResponse{Results: results, Count: len(results)})
}
