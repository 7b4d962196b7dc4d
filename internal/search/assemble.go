package search

import (
	"context"

	"faqsearch/internal/contextutil"
	"faqsearch/internal/store"
)

// Assemble resolves fused ids back to their source documents and produces the
// externally-visible ranked result set. The two branch candidate lists can
// disagree at the edges, so a fused id with no source document is skipped
// with a warning rather than failing the call.
func Assemble(
	ctx context.Context,
	fused []FusedCandidate,
	bm25Ranks, knnRanks map[string]int,
	rankConstant int,
	docs map[string]store.FaqDocument,
) []RankedResult {
	logger := contextutil.LoggerFromContext(ctx)

	results := make([]RankedResult, 0, len(fused))
	for _, f := range fused {
		doc, ok := docs[f.ID]
		if !ok {
			logger.WarnContext(ctx, "fused id has no source document, skipping", "faq_id", f.ID)
			continue
		}
		results = append(results, RankedResult{
			FaqID:     doc.FaqID,
			ChatbotID: doc.ChatbotID,
			Question:  doc.Question,
			Answer:    doc.Answer,
			Score:     f.Score,
			Metadata: RankMetadata{
				BM25Rank:     bm25Ranks[f.ID],
				KnnRank:      knnRanks[f.ID],
				RRFScore:     f.Score,
				RankConstant: rankConstant,
			},
		})
	}
	return results
}
