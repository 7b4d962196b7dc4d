package store

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/qdrant/go-client/qdrant"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"faqsearch/internal/contextutil"
)

// QdrantStore holds the vector branch: one qdrant collection per chatbot with
// a cosine-metric dense vector plus the document payload.
type QdrantStore struct {
	client     *qdrant.Client
	vectorSize int
}

// NewQdrantStore creates a qdrant-backed vector store.
// urlStr should be in the format "http://host:port" (e.g., "http://localhost:6333").
// The gRPC port (typically 6334) will be derived from the HTTP port.
// vectorSize is the fixed dimensionality every collection is created with.
func NewQdrantStore(urlStr string, vectorSize int) (*QdrantStore, error) {
	parsedURL, err := url.Parse(urlStr)
	if err != nil {
		return nil, fmt.Errorf("invalid Qdrant URL: %w", err)
	}

	host := parsedURL.Hostname()
	if host == "" {
		host = "localhost"
	}

	port := 6334 // Default gRPC port
	if parsedURL.Port() != "" {
		httpPort, err := strconv.Atoi(parsedURL.Port())
		if err == nil {
			// gRPC port is typically HTTP port + 1
			port = httpPort + 1
		}
	}

	client, err := qdrant.NewClient(&qdrant.Config{
		Host: host,
		Port: port,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create Qdrant client: %w", err)
	}

	return &QdrantStore{client: client, vectorSize: vectorSize}, nil
}

// EnsureCollection creates the collection if absent. A concurrent creator
// losing us the race surfaces as AlreadyExists and is treated as success.
func (s *QdrantStore) EnsureCollection(ctx context.Context, collection string) error {
	exists, err := s.client.CollectionExists(ctx, collection)
	if err != nil {
		return fmt.Errorf("failed to check collection existence: %w", err)
	}
	if exists {
		return nil
	}

	logger := contextutil.LoggerFromContext(ctx)
	logger.InfoContext(ctx, "creating collection", "collection", collection, "vector_size", s.vectorSize)

	err = s.client.CreateCollection(ctx, &qdrant.CreateCollection{
		CollectionName: collection,
		VectorsConfig: qdrant.NewVectorsConfig(&qdrant.VectorParams{
			Size:     uint64(s.vectorSize),
			Distance: qdrant.Distance_Cosine,
		}),
	})
	if err != nil {
		if isAlreadyExists(err) {
			logger.InfoContext(ctx, "collection created concurrently", "collection", collection)
			return nil
		}
		return fmt.Errorf("failed to create collection: %w", err)
	}
	return nil
}

// DeleteCollection removes the collection; absent collections are a no-op.
func (s *QdrantStore) DeleteCollection(ctx context.Context, collection string) error {
	err := s.client.DeleteCollection(ctx, collection)
	if err != nil && !isNotFound(err) {
		return fmt.Errorf("failed to delete collection: %w", err)
	}
	return nil
}

// CollectionExists reports whether the collection exists.
func (s *QdrantStore) CollectionExists(ctx context.Context, collection string) (bool, error) {
	exists, err := s.client.CollectionExists(ctx, collection)
	if err != nil {
		return false, fmt.Errorf("failed to check collection existence: %w", err)
	}
	return exists, nil
}

// IndexDocument upserts the document with wait=true so the write is visible
// to the next read in the same request.
func (s *QdrantStore) IndexDocument(ctx context.Context, collection string, doc FaqDocument) error {
	point := &qdrant.PointStruct{
		Id:      qdrant.NewID(pointID(doc.FaqID)),
		Vectors: qdrant.NewVectors(doc.Embedding...),
		Payload: qdrant.NewValueMap(encodePayload(doc)),
	}

	_, err := s.client.Upsert(ctx, &qdrant.UpsertPoints{
		CollectionName: collection,
		Points:         []*qdrant.PointStruct{point},
		Wait:           qdrant.PtrOf(true),
	})
	if err != nil {
		if isNotFound(err) {
			return fmt.Errorf("%w: %s", ErrCollectionNotFound, collection)
		}
		return fmt.Errorf("failed to upsert document: %w", err)
	}
	return nil
}

// DeleteDocument removes the document with wait=true. Deleting an id that was
// never written is a no-op success.
func (s *QdrantStore) DeleteDocument(ctx context.Context, collection, faqID string) error {
	_, err := s.client.Delete(ctx, &qdrant.DeletePoints{
		CollectionName: collection,
		Points:         qdrant.NewPointsSelector(qdrant.NewID(pointID(faqID))),
		Wait:           qdrant.PtrOf(true),
	})
	if err != nil {
		if isNotFound(err) {
			return fmt.Errorf("%w: %s", ErrCollectionNotFound, collection)
		}
		return fmt.Errorf("failed to delete document: %w", err)
	}
	return nil
}

// VectorSearch returns the most similar active documents. Qdrant's cosine
// score is the raw similarity; no rescaling happens here.
func (s *QdrantStore) VectorSearch(ctx context.Context, collection string, vector []float32, limit int) ([]Candidate, error) {
	if limit <= 0 {
		return nil, fmt.Errorf("limit must be greater than 0")
	}

	lim := uint64(limit)
	scored, err := s.client.Query(ctx, &qdrant.QueryPoints{
		CollectionName: collection,
		Query:          qdrant.NewQuery(vector...),
		Limit:          &lim,
		Filter: &qdrant.Filter{
			Must: []*qdrant.Condition{qdrant.NewMatch("status", StatusActive)},
		},
		WithPayload: qdrant.NewWithPayload(true),
	})
	if err != nil {
		if isNotFound(err) {
			return nil, fmt.Errorf("%w: %s", ErrCollectionNotFound, collection)
		}
		return nil, fmt.Errorf("failed to query collection: %w", err)
	}

	candidates := make([]Candidate, 0, len(scored))
	for _, hit := range scored {
		doc := decodePayload(hit.Payload)
		if doc.FaqID == "" {
			continue
		}
		candidates = append(candidates, Candidate{Doc: doc, Score: float64(hit.Score)})
	}
	return candidates, nil
}

// pointID derives a stable UUID from the external FAQ id. Qdrant point ids
// must be UUIDs or integers, and the derivation must be deterministic so that
// upserts overwrite and deletes hit the same point.
func pointID(faqID string) string {
	return uuid.NewSHA1(uuid.NameSpaceOID, []byte(faqID)).String()
}

func isNotFound(err error) bool {
	if status.Code(err) == codes.NotFound {
		return true
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "not found") || strings.Contains(msg, "doesn't exist")
}

func isAlreadyExists(err error) bool {
	if status.Code(err) == codes.AlreadyExists {
		return true
	}
	return strings.Contains(strings.ToLower(err.Error()), "already exists")
}

func encodePayload(doc FaqDocument) map[string]any {
	return map[string]any{
		"faq_id":     doc.FaqID,
		"chatbot_id": doc.ChatbotID,
		"question":   doc.Question,
		"answer":     doc.Answer,
		"search_key": doc.SearchKey,
		"status":     doc.Status,
		"created_at": doc.CreatedAt.UTC().Format(time.RFC3339),
		"updated_at": doc.UpdatedAt.UTC().Format(time.RFC3339),
	}
}

func decodePayload(payload map[string]*qdrant.Value) FaqDocument {
	var doc FaqDocument
	doc.FaqID = payloadString(payload, "faq_id")
	doc.ChatbotID = payloadString(payload, "chatbot_id")
	doc.Question = payloadString(payload, "question")
	doc.Answer = payloadString(payload, "answer")
	doc.SearchKey = payloadString(payload, "search_key")
	doc.Status = payloadString(payload, "status")
	if t, err := time.Parse(time.RFC3339, payloadString(payload, "created_at")); err == nil {
		doc.CreatedAt = t
	}
	if t, err := time.Parse(time.RFC3339, payloadString(payload, "updated_at")); err == nil {
		doc.UpdatedAt = t
	}
	return doc
}

func payloadString(payload map[string]*qdrant.Value, key string) string {
	v, ok := payload[key]
	if !ok || v == nil {
		return ""
	}
	if sv, ok := v.Kind.(*qdrant.Value_StringValue); ok {
		return sv.StringValue
	}
	return ""
}
