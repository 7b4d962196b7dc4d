package search

import (
	"context"
	"errors"
	"strings"
	"time"

	"faqsearch/internal/contextutil"
	"faqsearch/internal/index"
	"faqsearch/internal/normalizer"
	"faqsearch/internal/store"
)

// Writer maintains a single FAQ's searchable representation. It mirrors the
// FAQ entity's lifecycle in the system of record: upserted on create/update,
// removed on delete, at-least-once. All failures collapse to false with a
// logged warning; search is an enhancement, not a required path.
type Writer struct {
	index      *index.Manager
	vectorSize int
}

// NewWriter creates a Writer. vectorSize is the deployment-wide embedding
// dimensionality; embeddings of any other length are rejected before they
// reach the store.
func NewWriter(idx *index.Manager, vectorSize int) *Writer {
	return &Writer{index: idx, vectorSize: vectorSize}
}

// Upsert writes or overwrites the document keyed by FaqID. The collection is
// created if missing (auto-heal), and the write is retried once if the store
// reports the collection gone between the ensure and the write.
func (w *Writer) Upsert(ctx context.Context, req UpsertRequest) bool {
	logger := contextutil.LoggerFromContext(ctx)

	if !w.index.Enabled() {
		logger.WarnContext(ctx, "document store not configured, skipping upsert",
			"chatbot_id", req.ChatbotID, "faq_id", req.FaqID)
		return false
	}
	if len(req.Embedding) != w.vectorSize {
		logger.WarnContext(ctx, "embedding dimensionality mismatch, rejecting upsert",
			"chatbot_id", req.ChatbotID, "faq_id", req.FaqID,
			"got", len(req.Embedding), "want", w.vectorSize)
		return false
	}

	status := req.Status
	if status == "" {
		status = store.StatusActive
	}
	if status != store.StatusActive && status != store.StatusInactive {
		logger.WarnContext(ctx, "invalid document status, rejecting upsert",
			"chatbot_id", req.ChatbotID, "faq_id", req.FaqID, "status", status)
		return false
	}

	if !w.index.Ensure(ctx, req.ChatbotID) {
		return false
	}

	now := time.Now().UTC()
	doc := store.FaqDocument{
		FaqID:     req.FaqID,
		ChatbotID: req.ChatbotID,
		Question:  req.Question,
		Answer:    req.Answer,
		SearchKey: normalizer.Normalize(strings.TrimSpace(req.Question + " " + req.Synonyms)),
		Embedding: req.Embedding,
		Status:    status,
		CreatedAt: now,
		UpdatedAt: now,
	}

	collection := index.CollectionName(req.ChatbotID)
	err := w.index.Store().IndexDocument(ctx, collection, doc)
	if errors.Is(err, store.ErrCollectionNotFound) {
		// Collection vanished between ensure and write; heal and retry once.
		if !w.index.Ensure(ctx, req.ChatbotID) {
			return false
		}
		err = w.index.Store().IndexDocument(ctx, collection, doc)
	}
	if err != nil {
		logger.WarnContext(ctx, "failed to index document",
			"collection", collection, "faq_id", req.FaqID, "error", err)
		return false
	}

	logger.InfoContext(ctx, "document indexed", "collection", collection, "faq_id", req.FaqID, "status", status)
	return true
}

// Remove deletes the document. Absent collections and absent documents are
// both no-op successes.
func (w *Writer) Remove(ctx context.Context, chatbotID, faqID string) bool {
	logger := contextutil.LoggerFromContext(ctx)

	if !w.index.Enabled() {
		logger.WarnContext(ctx, "document store not configured, skipping remove",
			"chatbot_id", chatbotID, "faq_id", faqID)
		return false
	}

	collection := index.CollectionName(chatbotID)
	err := w.index.Store().DeleteDocument(ctx, collection, faqID)
	if errors.Is(err, store.ErrCollectionNotFound) {
		return true
	}
	if err != nil {
		logger.WarnContext(ctx, "failed to delete document",
			"collection", collection, "faq_id", faqID, "error", err)
		return false
	}
	return true
}
