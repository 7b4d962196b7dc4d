package store

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/blevesearch/bleve/v2"
	"github.com/blevesearch/bleve/v2/analysis/lang/cjk"
	"github.com/blevesearch/bleve/v2/mapping"

	"faqsearch/internal/contextutil"
)

// BleveStore holds the lexical branch: one bleve index per chatbot collection,
// keyed by the same collection name as the vector side. The search key is
// analyzed with the CJK analyzer so Chinese text tokenizes sensibly; relevance
// ordering comes from bleve's scorer.
type BleveStore struct {
	// rootDir is where on-disk indexes live. Empty means memory-only indexes,
	// which only makes sense for tests and throwaway deployments.
	rootDir string

	mu   sync.Mutex
	open map[string]bleve.Index
}

// NewBleveStore creates the lexical index store rooted at rootDir.
func NewBleveStore(rootDir string) *BleveStore {
	return &BleveStore{
		rootDir: rootDir,
		open:    make(map[string]bleve.Index),
	}
}

// EnsureCollection opens the index for the collection, creating it if absent.
// A concurrent creator on the same path is tolerated.
func (s *BleveStore) EnsureCollection(ctx context.Context, collection string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, err := s.ensureLocked(collection)
	return err
}

// DeleteCollection closes and removes the index. Absent indexes are a no-op.
func (s *BleveStore) DeleteCollection(ctx context.Context, collection string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if idx, ok := s.open[collection]; ok {
		if err := idx.Close(); err != nil {
			return fmt.Errorf("failed to close lexical index: %w", err)
		}
		delete(s.open, collection)
	}
	if s.rootDir != "" {
		if err := os.RemoveAll(s.indexPath(collection)); err != nil {
			return fmt.Errorf("failed to remove lexical index: %w", err)
		}
	}
	return nil
}

// CollectionExists reports whether the lexical index exists.
func (s *BleveStore) CollectionExists(ctx context.Context, collection string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.open[collection]; ok {
		return true, nil
	}
	if s.rootDir == "" {
		return false, nil
	}
	if _, err := os.Stat(s.indexPath(collection)); err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, fmt.Errorf("failed to stat lexical index: %w", err)
	}
	return true, nil
}

// IndexDocument writes the document into the lexical index. Bleve writes are
// synchronous, so visibility is immediate.
func (s *BleveStore) IndexDocument(ctx context.Context, collection string, doc FaqDocument) error {
	idx, err := s.getIndex(collection)
	if err != nil {
		return err
	}
	fields := map[string]any{
		"faq_id":     doc.FaqID,
		"chatbot_id": doc.ChatbotID,
		"question":   doc.Question,
		"answer":     doc.Answer,
		"search_key": doc.SearchKey,
		"status":     doc.Status,
		"created_at": doc.CreatedAt.UTC().Format(time.RFC3339),
		"updated_at": doc.UpdatedAt.UTC().Format(time.RFC3339),
	}
	if err := idx.Index(doc.FaqID, fields); err != nil {
		return fmt.Errorf("failed to index document: %w", err)
	}
	return nil
}

// DeleteDocument removes the document; ids that were never indexed no-op.
func (s *BleveStore) DeleteDocument(ctx context.Context, collection, faqID string) error {
	idx, err := s.getIndex(collection)
	if err != nil {
		return err
	}
	if err := idx.Delete(faqID); err != nil {
		return fmt.Errorf("failed to delete document: %w", err)
	}
	return nil
}

// KeywordSearch runs a relevance query over the search key, restricted to
// active documents, best match first.
func (s *BleveStore) KeywordSearch(ctx context.Context, collection, query string, limit int) ([]Candidate, error) {
	if limit <= 0 {
		return nil, fmt.Errorf("limit must be greater than 0")
	}
	idx, err := s.getIndex(collection)
	if err != nil {
		return nil, err
	}

	match := bleve.NewMatchQuery(query)
	match.SetField("search_key")
	active := bleve.NewTermQuery(StatusActive)
	active.SetField("status")

	req := bleve.NewSearchRequestOptions(bleve.NewConjunctionQuery(match, active), limit, 0, false)
	req.Fields = []string{"*"}

	res, err := idx.SearchInContext(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("failed to search lexical index: %w", err)
	}

	candidates := make([]Candidate, 0, len(res.Hits))
	for _, hit := range res.Hits {
		candidates = append(candidates, Candidate{
			Doc:   docFromFields(hit.ID, hit.Fields),
			Score: hit.Score,
		})
	}

	logger := contextutil.LoggerFromContext(ctx)
	logger.DebugContext(ctx, "keyword search completed", "collection", collection, "hits", len(candidates))
	return candidates, nil
}

// getIndex returns the open index for the collection, opening it from disk on
// first use. Missing indexes map to ErrCollectionNotFound.
func (s *BleveStore) getIndex(collection string) (bleve.Index, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if idx, ok := s.open[collection]; ok {
		return idx, nil
	}
	if s.rootDir == "" {
		return nil, fmt.Errorf("%w: %s", ErrCollectionNotFound, collection)
	}
	path := s.indexPath(collection)
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrCollectionNotFound, collection)
		}
		return nil, fmt.Errorf("failed to stat lexical index: %w", err)
	}
	idx, err := bleve.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open lexical index: %w", err)
	}
	s.open[collection] = idx
	return idx, nil
}

// ensureLocked opens or creates the index. Caller holds s.mu.
func (s *BleveStore) ensureLocked(collection string) (bleve.Index, error) {
	if idx, ok := s.open[collection]; ok {
		return idx, nil
	}

	if s.rootDir == "" {
		idx, err := bleve.NewMemOnly(buildIndexMapping())
		if err != nil {
			return nil, fmt.Errorf("failed to create in-memory lexical index: %w", err)
		}
		s.open[collection] = idx
		return idx, nil
	}

	path := s.indexPath(collection)
	idx, err := bleve.New(path, buildIndexMapping())
	if err == bleve.ErrorIndexPathExists {
		idx, err = bleve.Open(path)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to open lexical index: %w", err)
	}
	s.open[collection] = idx
	return idx, nil
}

func (s *BleveStore) indexPath(collection string) string {
	return filepath.Join(s.rootDir, collection+".bleve")
}

// buildIndexMapping defines the canonical collection schema on the lexical
// side: search_key analyzed with the CJK analyzer, status as an exact-match
// keyword, everything else stored but not indexed.
func buildIndexMapping() mapping.IndexMapping {
	searchKey := bleve.NewTextFieldMapping()
	searchKey.Analyzer = cjk.AnalyzerName
	searchKey.Store = false

	statusField := bleve.NewKeywordFieldMapping()
	statusField.Store = true

	stored := bleve.NewTextFieldMapping()
	stored.Index = false
	stored.Store = true

	doc := bleve.NewDocumentMapping()
	doc.AddFieldMappingsAt("search_key", searchKey)
	doc.AddFieldMappingsAt("status", statusField)
	for _, name := range []string{"faq_id", "chatbot_id", "question", "answer", "created_at", "updated_at"} {
		doc.AddFieldMappingsAt(name, stored)
	}

	m := bleve.NewIndexMapping()
	m.DefaultMapping = doc
	return m
}

func docFromFields(id string, fields map[string]any) FaqDocument {
	str := func(key string) string {
		if v, ok := fields[key].(string); ok {
			return v
		}
		return ""
	}
	doc := FaqDocument{
		FaqID:     str("faq_id"),
		ChatbotID: str("chatbot_id"),
		Question:  str("question"),
		Answer:    str("answer"),
		Status:    str("status"),
	}
	if doc.FaqID == "" {
		doc.FaqID = id
	}
	if t, err := time.Parse(time.RFC3339, str("created_at")); err == nil {
		doc.CreatedAt = t
	}
	if t, err := time.Parse(time.RFC3339, str("updated_at")); err == nil {
		doc.UpdatedAt = t
	}
	return doc
}
