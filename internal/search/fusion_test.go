package search

import (
	"testing"
)

func TestFuseRanks_EmptyInputs(t *testing.T) {
	got := FuseRanks(nil, nil, DefaultBM25Weight, DefaultKNNWeight, DefaultRankConstant)
	if len(got) != 0 {
		t.Errorf("FuseRanks(nil, nil) = %v, want empty", got)
	}
}

func TestFuseRanks_UnionOfBranches(t *testing.T) {
	bm25 := map[string]int{"a": 1, "b": 2}
	knn := map[string]int{"b": 1, "c": 2}

	got := FuseRanks(bm25, knn, DefaultBM25Weight, DefaultKNNWeight, DefaultRankConstant)
	if len(got) != 3 {
		t.Fatalf("FuseRanks() returned %d candidates, want 3", len(got))
	}

	// b appears in both branches and must win.
	if got[0].ID != "b" {
		t.Errorf("FuseRanks() top candidate = %q, want %q", got[0].ID, "b")
	}
}

func TestFuseRanks_SentinelKeepsSingleBranchCandidates(t *testing.T) {
	bm25 := map[string]int{"lexical-only": 1}
	knn := map[string]int{"both": 1}
	bm25["both"] = 1

	got := FuseRanks(bm25, knn, DefaultBM25Weight, DefaultKNNWeight, DefaultRankConstant)
	if len(got) != 2 {
		t.Fatalf("FuseRanks() returned %d candidates, want 2", len(got))
	}

	var single, both FusedCandidate
	for _, c := range got {
		switch c.ID {
		case "lexical-only":
			single = c
		case "both":
			both = c
		}
	}

	if single.Score <= 0 {
		t.Errorf("single-branch candidate score = %v, want > 0 (sentinel contribution)", single.Score)
	}
	if single.Score >= both.Score {
		t.Errorf("single-branch score %v should be below dual rank-1 score %v", single.Score, both.Score)
	}
}

func TestFuseRanks_MonotonicInRank(t *testing.T) {
	bm25 := map[string]int{"x": 3}

	worse := FuseRanks(bm25, map[string]int{"x": 5}, DefaultBM25Weight, DefaultKNNWeight, DefaultRankConstant)
	better := FuseRanks(bm25, map[string]int{"x": 2}, DefaultBM25Weight, DefaultKNNWeight, DefaultRankConstant)

	if better[0].Score <= worse[0].Score {
		t.Errorf("improving knn rank did not increase score: better=%v worse=%v", better[0].Score, worse[0].Score)
	}
}

func TestFuseRanks_TiesBrokenByID(t *testing.T) {
	bm25 := map[string]int{"zeta": 1, "alpha": 1}

	got := FuseRanks(bm25, nil, DefaultBM25Weight, DefaultKNNWeight, DefaultRankConstant)
	if len(got) != 2 {
		t.Fatalf("FuseRanks() returned %d candidates, want 2", len(got))
	}
	if got[0].ID != "alpha" || got[1].ID != "zeta" {
		t.Errorf("tie not broken by id: got [%s, %s], want [alpha, zeta]", got[0].ID, got[1].ID)
	}

	// Same inputs must always yield the same ordering.
	for i := 0; i < 5; i++ {
		again := FuseRanks(bm25, nil, DefaultBM25Weight, DefaultKNNWeight, DefaultRankConstant)
		if again[0].ID != got[0].ID || again[1].ID != got[1].ID {
			t.Fatal("FuseRanks ordering is not reproducible")
		}
	}
}

func TestFuseRanks_WeightsScaleContributions(t *testing.T) {
	bm25 := map[string]int{"lex": 1}
	knn := map[string]int{"sem": 1}

	// knn-heavy defaults: a vector rank-1 hit must outrank a lexical rank-1 hit.
	got := FuseRanks(bm25, knn, DefaultBM25Weight, DefaultKNNWeight, DefaultRankConstant)
	if got[0].ID != "sem" {
		t.Errorf("with knn-heavy weights, top = %q, want %q", got[0].ID, "sem")
	}

	// Flip the weights and the lexical hit wins.
	flipped := FuseRanks(bm25, knn, DefaultKNNWeight, DefaultBM25Weight, DefaultRankConstant)
	if flipped[0].ID != "lex" {
		t.Errorf("with bm25-heavy weights, top = %q, want %q", flipped[0].ID, "lex")
	}
}
