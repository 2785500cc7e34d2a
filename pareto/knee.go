package pareto

import "math"

// KneePoint selects the Pareto solution farthest (in normalized
// Euclidean norm) from the utopia point, per spec.md §4.4.6. Each
// objective axis is normalized to [0,1] using the (utopia, nadir)
// extremes observed across front; an axis whose nadir-utopia spread
// is <= AbsoluteTol is normalized to 0 for every solution (degenerate
// axis, no information to maximize against). Ties are broken by
// insertion order (first occurrence in front wins). Returns false for
// an empty front.
func KneePoint(front []ParetoSolution) (ParetoSolution, bool) {
	if len(front) == 0 {
		return ParetoSolution{}, false
	}
	if len(front) == 1 {
		return front[0], true
	}

	d := len(front[0].Objectives)
	utopia := append([]float64(nil), front[0].Objectives...)
	nadir := append([]float64(nil), front[0].Objectives...)
	for _, sol := range front[1:] {
		for i := 0; i < d; i++ {
			if sol.Objectives[i] < utopia[i] {
				utopia[i] = sol.Objectives[i]
			}
			if sol.Objectives[i] > nadir[i] {
				nadir[i] = sol.Objectives[i]
			}
		}
	}

	bestIdx := 0
	bestNorm := -1.0
	for si, sol := range front {
		var sumSq float64
		for i := 0; i < d; i++ {
			spread := nadir[i] - utopia[i]
			var norm float64
			if spread > AbsoluteTol {
				norm = (sol.Objectives[i] - utopia[i]) / spread
			}
			sumSq += norm * norm
		}
		n := math.Sqrt(sumSq)
		if n > bestNorm {
			bestNorm = n
			bestIdx = si
		}
	}
	return front[bestIdx], true
}
