// Package store defines the document-store boundary for FAQ retrieval and its
// concrete backends: qdrant for the vector branch (and document payloads) and
// bleve for the lexical branch.
package store

//go:generate go run go.uber.org/mock/mockgen@latest -destination=mocks/mock_document_store.go -package=mocks faqsearch/internal/store DocumentStore

import (
	"context"
	"errors"
	"time"
)

// Document statuses. Only active documents are eligible for retrieval.
const (
	StatusActive   = "active"
	StatusInactive = "inactive"
)

// ErrCollectionNotFound is returned when an operation targets a collection
// that does not exist. Writers use it to auto-heal by creating the collection
// and retrying once.
var ErrCollectionNotFound = errors.New("collection not found")

// FaqDocument is the searchable representation of a single FAQ.
type FaqDocument struct {
	// FaqID is the stable external identifier, unique within a collection.
	FaqID string
	// ChatbotID is the tenant key; a collection holds documents for exactly one chatbot.
	ChatbotID string
	// Question and Answer are original-script display text, stored but never searched.
	Question string
	Answer   string
	// SearchKey is the normalized question+synonyms text; the only lexically-searched field.
	SearchKey string
	// Embedding is the dense vector used for semantic similarity. Its length
	// must equal the collection's configured dimensionality.
	Embedding []float32
	Status    string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Candidate is one ranked hit from a branch query. Doc.Embedding is left
// empty; the vector never leaves the store.
type Candidate struct {
	Doc FaqDocument
	// Score is branch-specific: a relevance score for keyword search, a raw
	// cosine similarity in [-1, 1] for vector search.
	Score float64
}

// DocumentStore is the boundary to the external document store. Collection
// lifecycle, single-document writes with synchronous visibility, and the two
// candidate-retrieval primitives the retrieval orchestrator fans out to.
type DocumentStore interface {
	// EnsureCollection creates the collection if absent. A concurrent creator
	// winning the race is success, not failure.
	EnsureCollection(ctx context.Context, collection string) error

	// DeleteCollection removes the collection and all its documents.
	// Deleting an absent collection is a no-op success.
	DeleteCollection(ctx context.Context, collection string) error

	// CollectionExists reports whether the collection exists.
	CollectionExists(ctx context.Context, collection string) (bool, error)

	// IndexDocument writes or overwrites the document keyed by its FaqID.
	// The write is immediately visible to subsequent reads.
	// Returns ErrCollectionNotFound if the collection does not exist.
	IndexDocument(ctx context.Context, collection string, doc FaqDocument) error

	// DeleteDocument removes the document. Deleting an absent document is a
	// no-op success; an absent collection returns ErrCollectionNotFound.
	DeleteDocument(ctx context.Context, collection, faqID string) error

	// KeywordSearch returns up to limit active documents by lexical relevance
	// against the search key, best first.
	KeywordSearch(ctx context.Context, collection, query string, limit int) ([]Candidate, error)

	// VectorSearch returns up to limit active documents by cosine similarity
	// against the query vector, most similar first. Scores are raw cosine
	// similarities in [-1, 1].
	VectorSearch(ctx context.Context, collection string, vector []float32, limit int) ([]Candidate, error)
}
