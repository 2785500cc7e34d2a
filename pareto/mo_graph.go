package pareto

import (
	"fmt"
	"math"
)

// NewGraph builds a validated, immutable *MultiObjectiveGraph over n
// vertices (1..n) and d objective axes, deriving the adjacency table
// from the edge list, per spec.md §3's "convenience constructor". names
// may be nil (then Name returns ""); sense must have exactly d entries.
//
// Validation order: n, d > 0; len(sense) == d; every sense value valid;
// for each edge, Source/Target in [1,n], len(Weights) == d, every
// weight finite and non-negative.
func NewGraph(n, d int, edges []MultiObjectiveEdge, names []string, sense []Sense) (*MultiObjectiveGraph, error) {
	if n <= 0 {
		return nil, fmt.Errorf("%w: n=%d must be positive", ErrInvalidSize, n)
	}
	if d <= 0 {
		return nil, fmt.Errorf("%w: d=%d must be positive", ErrInvalidSize, d)
	}
	if len(sense) != d {
		return nil, fmt.Errorf("%w: len(sense)=%d != d=%d", ErrDimensionMismatch, len(sense), d)
	}
	for i, s := range sense {
		if !s.valid() {
			return nil, fmt.Errorf("%w: sense[%d]=%v", ErrInvalidSense, i, s)
		}
	}
	if names != nil && len(names) != d {
		return nil, fmt.Errorf("%w: len(names)=%d != d=%d", ErrDimensionMismatch, len(names), d)
	}

	for i, e := range edges {
		if e.Source < 1 || e.Source > n {
			return nil, fmt.Errorf("%w: edge %d source=%d not in [1,%d]", ErrVertexOutOfRange, i, e.Source, n)
		}
		if e.Target < 1 || e.Target > n {
			return nil, fmt.Errorf("%w: edge %d target=%d not in [1,%d]", ErrVertexOutOfRange, i, e.Target, n)
		}
		if len(e.Weights) != d {
			return nil, fmt.Errorf("%w: edge %d has %d weights, want %d", ErrDimensionMismatch, i, len(e.Weights), d)
		}
		for j, w := range e.Weights {
			if math.IsNaN(w) || math.IsInf(w, 0) || w < 0 {
				return nil, fmt.Errorf("%w: edge %d weight[%d]=%v", ErrNonFiniteWeight, i, j, w)
			}
		}
	}

	g := &MultiObjectiveGraph{
		n:         n,
		d:         d,
		edges:     append([]MultiObjectiveEdge(nil), edges...),
		names:     append([]string(nil), names...),
		sense:     append([]Sense(nil), sense...),
		adjacency: make([][]int, n+1),
	}
	for i, e := range g.edges {
		g.adjacency[e.Source] = append(g.adjacency[e.Source], i)
	}
	return g, nil
}
