package search

import "sort"

// MissingRankSentinel is the rank charged to a document absent from one
// branch. It is large enough that the absent branch contributes a negligible
// but non-zero score, so single-branch matches stay in the running instead of
// being disqualified.
const MissingRankSentinel = 9999

// FusedCandidate is one id with its combined RRF score.
type FusedCandidate struct {
	ID    string
	Score float64
}

// FuseRanks merges the two branch rankings with weighted Reciprocal Rank
// Fusion: score(id) = bm25Weight/(k + bm25Rank) + knnWeight/(k + knnRank),
// over the union of both rank maps. The result is sorted by score descending,
// ties broken by id ascending so the ordering is reproducible.
//
// Pure function: no I/O, no store access.
func FuseRanks(bm25Ranks, knnRanks map[string]int, bm25Weight, knnWeight float64, rankConstant int) []FusedCandidate {
	if len(bm25Ranks) == 0 && len(knnRanks) == 0 {
		return []FusedCandidate{}
	}

	ids := make(map[string]struct{}, len(bm25Ranks)+len(knnRanks))
	for id := range bm25Ranks {
		ids[id] = struct{}{}
	}
	for id := range knnRanks {
		ids[id] = struct{}{}
	}

	fused := make([]FusedCandidate, 0, len(ids))
	for id := range ids {
		bm25Rank, ok := bm25Ranks[id]
		if !ok {
			bm25Rank = MissingRankSentinel
		}
		knnRank, ok := knnRanks[id]
		if !ok {
			knnRank = MissingRankSentinel
		}
		score := rrf(bm25Rank, rankConstant)*bm25Weight + rrf(knnRank, rankConstant)*knnWeight
		fused = append(fused, FusedCandidate{ID: id, Score: score})
	}

	sort.Slice(fused, func(i, j int) bool {
		if fused[i].Score != fused[j].Score {
			return fused[i].Score > fused[j].Score
		}
		return fused[i].ID < fused[j].ID
	})
	return fused
}

func rrf(rank, rankConstant int) float64 {
	return 1.0 / float64(rankConstant+rank)
}
