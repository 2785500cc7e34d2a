package pareto

// Dominates reports whether a dominates b under the given per-axis
// senses: a is no worse than b on every coordinate (within atol), and
// strictly better than b on at least one coordinate (outside atol).
// "Better" means smaller for SenseMin, larger for SenseMax. a and b
// must have equal length; callers that hold a MultiObjectiveGraph
// should pass the graph's per-axis senses (g.Sense(i) for each axis i).
func Dominates(a, b []float64, sense []Sense, atol float64) bool {
	strictlyBetter := false
	for i := range a {
		diff := a[i] - b[i]
		switch sense[i] {
		case SenseMin:
			if diff > atol {
				return false // a worse than b on this axis
			}
			if diff < -atol {
				strictlyBetter = true
			}
		case SenseMax:
			if diff < -atol {
				return false
			}
			if diff > atol {
				strictlyBetter = true
			}
		}
	}
	return strictlyBetter
}

// sensesOf is a small helper turning a *MultiObjectiveGraph's sense
// table into the []Sense slice Dominates expects.
func sensesOf(g *MultiObjectiveGraph) []Sense {
	out := make([]Sense, g.D())
	for i := range out {
		out[i] = g.Sense(i)
	}
	return out
}
