package store

import (
	"context"
	"errors"
)

// HybridStore composes the two backends behind the DocumentStore interface:
// qdrant owns the vector branch and is the source of truth for collection
// existence; bleve owns the lexical branch. Both are kept in step on every
// lifecycle and document operation.
type HybridStore struct {
	vectors *QdrantStore
	lexical *BleveStore
}

// NewHybridStore combines the vector and lexical backends.
func NewHybridStore(vectors *QdrantStore, lexical *BleveStore) *HybridStore {
	return &HybridStore{vectors: vectors, lexical: lexical}
}

var _ DocumentStore = (*HybridStore)(nil)

func (s *HybridStore) EnsureCollection(ctx context.Context, collection string) error {
	if err := s.vectors.EnsureCollection(ctx, collection); err != nil {
		return err
	}
	return s.lexical.EnsureCollection(ctx, collection)
}

func (s *HybridStore) DeleteCollection(ctx context.Context, collection string) error {
	return errors.Join(
		s.vectors.DeleteCollection(ctx, collection),
		s.lexical.DeleteCollection(ctx, collection),
	)
}

func (s *HybridStore) CollectionExists(ctx context.Context, collection string) (bool, error) {
	return s.vectors.CollectionExists(ctx, collection)
}

// IndexDocument writes the vector side first; the lexical side only sees
// documents the source of truth accepted. A lexical failure after a vector
// success is surfaced so the caller logs it, and the next upsert repairs it.
func (s *HybridStore) IndexDocument(ctx context.Context, collection string, doc FaqDocument) error {
	if err := s.vectors.IndexDocument(ctx, collection, doc); err != nil {
		return err
	}
	// The lexical index may be missing on a fresh disk even when the vector
	// collection exists; recreate it rather than failing the write.
	err := s.lexical.IndexDocument(ctx, collection, doc)
	if errors.Is(err, ErrCollectionNotFound) {
		if err = s.lexical.EnsureCollection(ctx, collection); err == nil {
			err = s.lexical.IndexDocument(ctx, collection, doc)
		}
	}
	return err
}

func (s *HybridStore) DeleteDocument(ctx context.Context, collection, faqID string) error {
	if err := s.vectors.DeleteDocument(ctx, collection, faqID); err != nil {
		return err
	}
	err := s.lexical.DeleteDocument(ctx, collection, faqID)
	if errors.Is(err, ErrCollectionNotFound) {
		// Nothing indexed lexically, nothing to delete.
		return nil
	}
	return err
}

func (s *HybridStore) KeywordSearch(ctx context.Context, collection, query string, limit int) ([]Candidate, error) {
	return s.lexical.KeywordSearch(ctx, collection, query, limit)
}

func (s *HybridStore) VectorSearch(ctx context.Context, collection string, vector []float32, limit int) ([]Candidate, error) {
	return s.vectors.VectorSearch(ctx, collection, vector, limit)
}
