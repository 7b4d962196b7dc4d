// Package search implements the hybrid FAQ retrieval core: the write path
// that builds searchable documents, the fan-out read path over the lexical
// and vector branches, and the rank fusion that merges them.
package search

// Default retrieval parameters. Weights are relative, not probabilities; they
// need not sum to 1.
const (
	DefaultTopK         = 5
	DefaultBM25Weight   = 0.3
	DefaultKNNWeight    = 0.7
	DefaultSimThreshold = 0.45
	DefaultRankConstant = 60
)

// Options tunes a single search call. Zero values fall back to the defaults.
type Options struct {
	// TopK caps the fused result list.
	TopK int `json:"top_k,omitempty"`
	// BM25Weight and KNNWeight scale each branch's RRF contribution.
	BM25Weight float64 `json:"bm25_weight,omitempty"`
	KNNWeight  float64 `json:"knn_weight,omitempty"`
	// SimThreshold is a cosine-similarity cutoff in [-1, 1]; vector candidates
	// strictly below it are discarded before ranking. The boundary is inclusive.
	SimThreshold float64 `json:"sim_threshold,omitempty"`
	// RankConstant is the k in the RRF formula 1/(k + rank).
	RankConstant int `json:"rank_constant,omitempty"`
}

func (o Options) withDefaults() Options {
	if o.TopK < 1 {
		o.TopK = DefaultTopK
	}
	if o.BM25Weight == 0 {
		o.BM25Weight = DefaultBM25Weight
	}
	if o.KNNWeight == 0 {
		o.KNNWeight = DefaultKNNWeight
	}
	if o.SimThreshold == 0 {
		o.SimThreshold = DefaultSimThreshold
	}
	if o.RankConstant <= 0 {
		o.RankConstant = DefaultRankConstant
	}
	return o
}

// UpsertRequest carries one FAQ's searchable representation to the write path.
type UpsertRequest struct {
	ChatbotID string
	FaqID     string
	Question  string
	Answer    string
	// Synonyms is optional alternate phrasing folded into the search key.
	Synonyms  string
	Status    string
	Embedding []float32
}

// RankMetadata explains how a result earned its position. A rank of 0 means
// the document was absent from that branch.
type RankMetadata struct {
	BM25Rank     int     `json:"bm25_rank"`
	KnnRank      int     `json:"knn_rank"`
	RRFScore     float64 `json:"rrf_score"`
	RankConstant int     `json:"rank_constant"`
}

// RankedResult is one externally-visible search hit.
type RankedResult struct {
	FaqID     string       `json:"faq_id"`
	ChatbotID string       `json:"chatbot_id"`
	Question  string       `json:"question"`
	Answer    string       `json:"answer"`
	Score     float64      `json:"score"`
	Metadata  RankMetadata `json:"metadata"`
}
