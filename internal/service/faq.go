// Package service exposes the public contract of the FAQ retrieval engine to
// its collaborators (FAQ management, chatbot management, query answering).
// Internally everything reports errors; here they collapse to the documented
// fallback values — false, empty list, no-op — and nothing ever panics or
// propagates a store failure to the caller.
package service

import (
	"context"

	"faqsearch/internal/contextutil"
	"faqsearch/internal/index"
	"faqsearch/internal/search"
)

// FaqSearch is the inbound boundary of the retrieval subsystem.
type FaqSearch interface {
	// EnsureCollection reports whether the chatbot's collection exists after
	// the call, creating it if absent.
	EnsureCollection(ctx context.Context, chatbotID string) bool

	// RecreateCollection replaces the collection with a fresh, empty one.
	// Existing documents are not repopulated.
	RecreateCollection(ctx context.Context, chatbotID string) bool

	// DeleteCollection removes the collection; absence is a no-op success.
	DeleteCollection(ctx context.Context, chatbotID string) bool

	// UpsertFaq writes a FAQ's searchable representation.
	UpsertFaq(ctx context.Context, req search.UpsertRequest) bool

	// RemoveFaq deletes a FAQ's searchable representation.
	RemoveFaq(ctx context.Context, chatbotID, faqID string) bool

	// Search returns the fused ranked results for a query. It never returns
	// an error: a query that cannot be served yields an empty list, which the
	// caller must read as "no relevant answer found".
	Search(ctx context.Context, chatbotID, queryText string, queryEmbedding []float32, opts search.Options) []search.RankedResult
}

type faqSearch struct {
	index        *index.Manager
	writer       *search.Writer
	orchestrator *search.Orchestrator
}

// NewFaqSearch wires the collection manager, write path, and read path into
// the public facade.
func NewFaqSearch(idx *index.Manager, writer *search.Writer, orchestrator *search.Orchestrator) FaqSearch {
	return &faqSearch{
		index:        idx,
		writer:       writer,
		orchestrator: orchestrator,
	}
}

func (s *faqSearch) EnsureCollection(ctx context.Context, chatbotID string) bool {
	if !validChatbotID(ctx, chatbotID) {
		return false
	}
	return s.index.Ensure(ctx, chatbotID)
}

func (s *faqSearch) RecreateCollection(ctx context.Context, chatbotID string) bool {
	if !validChatbotID(ctx, chatbotID) {
		return false
	}
	return s.index.Recreate(ctx, chatbotID)
}

func (s *faqSearch) DeleteCollection(ctx context.Context, chatbotID string) bool {
	if !validChatbotID(ctx, chatbotID) {
		return false
	}
	return s.index.Delete(ctx, chatbotID)
}

func (s *faqSearch) UpsertFaq(ctx context.Context, req search.UpsertRequest) bool {
	if !validChatbotID(ctx, req.ChatbotID) {
		return false
	}
	if req.FaqID == "" {
		logValidation(ctx, "faq_id", "must not be empty")
		return false
	}
	return s.writer.Upsert(ctx, req)
}

func (s *faqSearch) RemoveFaq(ctx context.Context, chatbotID, faqID string) bool {
	if !validChatbotID(ctx, chatbotID) {
		return false
	}
	if faqID == "" {
		logValidation(ctx, "faq_id", "must not be empty")
		return false
	}
	return s.writer.Remove(ctx, chatbotID, faqID)
}

func (s *faqSearch) Search(ctx context.Context, chatbotID, queryText string, queryEmbedding []float32, opts search.Options) (results []search.RankedResult) {
	// The search contract is "never throws": whatever goes wrong below this
	// line, the caller gets an empty list, not a panic.
	defer func() {
		if r := recover(); r != nil {
			logger := contextutil.LoggerFromContext(ctx)
			logger.ErrorContext(ctx, "search panicked, returning no results", "chatbot_id", chatbotID, "panic", r)
			results = []search.RankedResult{}
		}
	}()

	if !validChatbotID(ctx, chatbotID) {
		return []search.RankedResult{}
	}
	return s.orchestrator.Search(ctx, chatbotID, queryText, queryEmbedding, opts)
}

func validChatbotID(ctx context.Context, chatbotID string) bool {
	if chatbotID == "" {
		logValidation(ctx, "chatbot_id", "must not be empty")
		return false
	}
	return true
}

func logValidation(ctx context.Context, field, message string) {
	logger := contextutil.LoggerFromContext(ctx)
	verr := &ValidationError{Field: field, Message: message}
	logger.WarnContext(ctx, "rejecting request", "error", verr)
}
