package search

import (
	"context"
	"sort"
	"sync"

	"faqsearch/internal/contextutil"
	"faqsearch/internal/index"
	"faqsearch/internal/normalizer"
	"faqsearch/internal/store"
)

// Orchestrator runs the hybrid read path: lexical and vector candidate
// retrieval in parallel, weighted RRF fusion, then result assembly.
type Orchestrator struct {
	index *index.Manager
}

// NewOrchestrator creates an Orchestrator over the given collection manager.
func NewOrchestrator(idx *index.Manager) *Orchestrator {
	return &Orchestrator{index: idx}
}

// Search returns up to opts.TopK ranked results for the query. It never
// fails: an unpopulated chatbot, a disabled store, or a branch error all
// degrade to fewer (possibly zero) results, with the cause logged where it
// was caught.
//
// Both branches over-fetch 2*TopK candidates so fusion still has material
// after threshold filtering, and both are restricted to active documents by
// the store. The caller blocks until both branches complete; a branch that
// errors contributes an empty candidate set rather than aborting the other.
func (o *Orchestrator) Search(ctx context.Context, chatbotID, queryText string, queryEmbedding []float32, opts Options) []RankedResult {
	logger := contextutil.LoggerFromContext(ctx)
	opts = opts.withDefaults()

	// An unpopulated chatbot is a normal state, not an error.
	if !o.index.Exists(ctx, chatbotID) {
		logger.DebugContext(ctx, "collection does not exist, returning no results", "chatbot_id", chatbotID)
		return []RankedResult{}
	}

	normalizedQuery := normalizer.Normalize(queryText)
	collection := index.CollectionName(chatbotID)
	st := o.index.Store()
	fetch := 2 * opts.TopK

	var (
		lexical []store.Candidate
		vector  []store.Candidate
		wg      sync.WaitGroup
	)

	wg.Add(2)
	go func() {
		defer wg.Done()
		res, err := st.KeywordSearch(ctx, collection, normalizedQuery, fetch)
		if err != nil {
			logger.WarnContext(ctx, "keyword branch failed", "collection", collection, "error", err)
			return
		}
		lexical = res
	}()
	go func() {
		defer wg.Done()
		res, err := st.VectorSearch(ctx, collection, queryEmbedding, fetch)
		if err != nil {
			logger.WarnContext(ctx, "vector branch failed", "collection", collection, "error", err)
			return
		}
		vector = res
	}()
	wg.Wait()

	docs := make(map[string]store.FaqDocument, len(lexical)+len(vector))

	// Lexical ranks follow the order the store returned: rank 1 is best.
	bm25Ranks := make(map[string]int, len(lexical))
	for i, c := range lexical {
		if _, seen := bm25Ranks[c.Doc.FaqID]; seen {
			continue
		}
		bm25Ranks[c.Doc.FaqID] = i + 1
		docs[c.Doc.FaqID] = c.Doc
	}

	// Vector ranks are assigned over the candidates that survive the
	// similarity cutoff. The store returns raw cosine similarity, so the
	// threshold applies directly; the boundary is inclusive.
	surviving := make([]store.Candidate, 0, len(vector))
	for _, c := range vector {
		if c.Score >= opts.SimThreshold {
			surviving = append(surviving, c)
		}
	}
	sort.SliceStable(surviving, func(i, j int) bool {
		return surviving[i].Score > surviving[j].Score
	})
	knnRanks := make(map[string]int, len(surviving))
	rank := 0
	for _, c := range surviving {
		if _, seen := knnRanks[c.Doc.FaqID]; seen {
			continue
		}
		rank++
		knnRanks[c.Doc.FaqID] = rank
		if _, ok := docs[c.Doc.FaqID]; !ok {
			docs[c.Doc.FaqID] = c.Doc
		}
	}

	fused := FuseRanks(bm25Ranks, knnRanks, opts.BM25Weight, opts.KNNWeight, opts.RankConstant)
	if len(fused) > opts.TopK {
		fused = fused[:opts.TopK]
	}

	results := Assemble(ctx, fused, bm25Ranks, knnRanks, opts.RankConstant, docs)
	logger.InfoContext(ctx, "hybrid search completed",
		"chatbot_id", chatbotID,
		"lexical_candidates", len(lexical),
		"vector_candidates", len(vector),
		"vector_surviving", len(surviving),
		"results", len(results),
	)
	return results
}
