package dmysssp

import (
	"sort"

	"github.com/katalvlaran/dmypath/graph"
)

// SelectPivots implements spec.md §4.3.4: sort candidates ascending by
// score (distance-only by default, or scorer if set), and if
// |candidates| <= k return all of them; otherwise pick
// target = max(1, floor(|candidates|/k)) vertices at uniform strides
// through the sorted sequence (indices 0, step, 2*step, ... in
// 0-based terms), clamped to the sequence length. The sort is stable,
// so distance (or score) ties preserve candidates' original relative
// order.
//
// Postconditions (spec.md §8 item 7): len(result) <= max(1,
// len(candidates)/k); result has no duplicates; every pivot is in
// candidates.
func SelectPivots(g *graph.Graph, candidates []int, dist []float64, k int, scorer PivotScorer) []int {
	if len(candidates) == 0 {
		return nil
	}
	if scorer == nil {
		scorer = defaultOptions().PivotScorer
	}

	sorted := append([]int(nil), candidates...)
	sort.SliceStable(sorted, func(i, j int) bool {
		si := scorer(sorted[i], dist[sorted[i]], g.OutDegree(sorted[i]))
		sj := scorer(sorted[j], dist[sorted[j]], g.OutDegree(sorted[j]))
		return si < sj
	})

	if len(sorted) <= k {
		return sorted
	}

	target := len(sorted) / k
	if target < 1 {
		target = 1
	}
	step := len(sorted) / target
	if step < 1 {
		step = 1
	}

	pivots := make([]int, 0, target)
	for i := 0; i < len(sorted) && len(pivots) < target; i += step {
		pivots = append(pivots, sorted[i])
	}
	return pivots
}
