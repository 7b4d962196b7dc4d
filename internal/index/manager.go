// Package index owns the collection lifecycle: one logical collection per
// chatbot, created lazily, deleted with the chatbot. Every operation degrades
// to false with a logged warning instead of surfacing store errors, because
// the document store is optional at deployment time and its absence must not
// break FAQ management.
package index

import (
	"context"

	"faqsearch/internal/contextutil"
	"faqsearch/internal/store"
)

// CollectionName derives the collection name for a chatbot. It is a pure
// function: the same chatbot always maps to the same collection.
func CollectionName(chatbotID string) string {
	return "faq_" + chatbotID
}

// Manager creates, verifies, and deletes per-chatbot collections.
type Manager struct {
	store store.DocumentStore
}

// NewManager creates a Manager. A nil store means search is not configured;
// every operation then reports false.
func NewManager(s store.DocumentStore) *Manager {
	return &Manager{store: s}
}

// Enabled reports whether a document store is configured.
func (m *Manager) Enabled() bool {
	return m.store != nil
}

// Store exposes the underlying document store to the read and write paths.
// Nil when search is disabled.
func (m *Manager) Store() store.DocumentStore {
	return m.store
}

// Ensure creates the collection for the chatbot if absent and reports whether
// it exists after the call. Losing a creation race to a concurrent caller
// counts as success.
func (m *Manager) Ensure(ctx context.Context, chatbotID string) bool {
	logger := contextutil.LoggerFromContext(ctx)
	if m.store == nil {
		logger.WarnContext(ctx, "document store not configured, skipping collection ensure", "chatbot_id", chatbotID)
		return false
	}
	collection := CollectionName(chatbotID)
	if err := m.store.EnsureCollection(ctx, collection); err != nil {
		logger.WarnContext(ctx, "failed to ensure collection", "collection", collection, "error", err)
		return false
	}
	return true
}

// Recreate deletes the collection if present and creates a fresh, empty one
// with the canonical schema. Documents are not repopulated.
func (m *Manager) Recreate(ctx context.Context, chatbotID string) bool {
	logger := contextutil.LoggerFromContext(ctx)
	if m.store == nil {
		logger.WarnContext(ctx, "document store not configured, skipping collection recreate", "chatbot_id", chatbotID)
		return false
	}
	collection := CollectionName(chatbotID)
	if err := m.store.DeleteCollection(ctx, collection); err != nil {
		logger.WarnContext(ctx, "failed to delete collection for recreate", "collection", collection, "error", err)
		return false
	}
	if err := m.store.EnsureCollection(ctx, collection); err != nil {
		logger.WarnContext(ctx, "failed to recreate collection", "collection", collection, "error", err)
		return false
	}
	logger.InfoContext(ctx, "collection recreated", "collection", collection)
	return true
}

// Delete removes the collection. Deleting an absent collection is success.
func (m *Manager) Delete(ctx context.Context, chatbotID string) bool {
	logger := contextutil.LoggerFromContext(ctx)
	if m.store == nil {
		logger.WarnContext(ctx, "document store not configured, skipping collection delete", "chatbot_id", chatbotID)
		return false
	}
	collection := CollectionName(chatbotID)
	if err := m.store.DeleteCollection(ctx, collection); err != nil {
		logger.WarnContext(ctx, "failed to delete collection", "collection", collection, "error", err)
		return false
	}
	return true
}

// Exists reports whether the chatbot's collection exists. Store errors are
// reported as absence, not failure.
func (m *Manager) Exists(ctx context.Context, chatbotID string) bool {
	if m.store == nil {
		return false
	}
	collection := CollectionName(chatbotID)
	exists, err := m.store.CollectionExists(ctx, collection)
	if err != nil {
		logger := contextutil.LoggerFromContext(ctx)
		logger.WarnContext(ctx, "failed to check collection existence", "collection", collection, "error", err)
		return false
	}
	return exists
}
