package dmysssp_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/dmypath/dmysssp"
	"github.com/katalvlaran/dmypath/graph"
)

// S7 — select_pivots postconditions: |P| <= max(1, |candidates|/k),
// P has no duplicates, P is a subset of candidates.
func TestSelectPivots_Postconditions(t *testing.T) {
	g := mustGraph(t, 8, []graph.Edge{
		{Source: 1, Target: 2, Index: 0},
		{Source: 2, Target: 3, Index: 1},
		{Source: 3, Target: 4, Index: 2},
		{Source: 4, Target: 5, Index: 3},
		{Source: 5, Target: 6, Index: 4},
		{Source: 6, Target: 7, Index: 5},
		{Source: 7, Target: 8, Index: 6},
	}, []float64{1, 2, 3, 4, 5, 6, 7})

	dist := []float64{dmysssp.Inf, 0, 1, 3, 6, 10, 15, 21, 28}
	candidates := []int{1, 2, 3, 4, 5, 6, 7, 8}

	for _, k := range []int{1, 2, 3, 4, 8, 16} {
		pivots := dmysssp.SelectPivots(g, candidates, dist, k, nil)

		maxAllowed := len(candidates) / k
		if maxAllowed < 1 {
			maxAllowed = 1
		}
		require.LessOrEqual(t, len(pivots), maxAllowed, "k=%d", k)

		seen := make(map[int]bool, len(pivots))
		inCandidates := make(map[int]bool, len(candidates))
		for _, c := range candidates {
			inCandidates[c] = true
		}
		for _, p := range pivots {
			require.False(t, seen[p], "duplicate pivot %d for k=%d", p, k)
			seen[p] = true
			require.True(t, inCandidates[p], "pivot %d not in candidates for k=%d", p, k)
		}
	}
}

func TestSelectPivots_EmptyCandidates(t *testing.T) {
	g := mustGraph(t, 2, []graph.Edge{{Source: 1, Target: 2, Index: 0}}, []float64{1})
	dist := []float64{dmysssp.Inf, 0, 1}
	pivots := dmysssp.SelectPivots(g, nil, dist, 4, nil)
	require.Nil(t, pivots)
}

func TestSelectPivots_FewerThanK(t *testing.T) {
	g := mustGraph(t, 3, []graph.Edge{
		{Source: 1, Target: 2, Index: 0},
		{Source: 1, Target: 3, Index: 1},
	}, []float64{1, 2})
	dist := []float64{dmysssp.Inf, 0, 1, 2}
	candidates := []int{2, 3}

	pivots := dmysssp.SelectPivots(g, candidates, dist, 10, nil)
	require.ElementsMatch(t, candidates, pivots)
}

func TestSelectPivots_CustomScorer(t *testing.T) {
	g := mustGraph(t, 3, []graph.Edge{
		{Source: 1, Target: 2, Index: 0},
		{Source: 1, Target: 3, Index: 1},
		{Source: 2, Target: 3, Index: 2},
	}, []float64{1, 1, 1})
	dist := []float64{dmysssp.Inf, 0, 1, 1}
	candidates := []int{2, 3}

	// Prefer the vertex with the larger out-degree by scoring it lowest.
	scorer := func(_ int, d float64, outDegree int) float64 {
		return d - float64(outDegree)*10
	}
	pivots := dmysssp.SelectPivots(g, candidates, dist, 2, scorer)
	require.Len(t, pivots, 2) // k == len(candidates) returns all, scorer only affects order
}
