package graph

import (
	"fmt"
	"math"
)

// New builds a validated, immutable *Graph over n vertices (1..n) from
// the parallel edges/weights arrays, enforcing every invariant before
// constructing the adjacency table:
//
//  1. n > 0 and len(edges) == len(weights).
//  2. Every weight is finite and non-negative.
//  3. edges[i].Index == i for every i.
//  4. Every edge's Source and Target lie in [1, n].
//
// Self-loops (Source == Target) are structurally permitted.
func New(n int, edges []Edge, weights []float64) (*Graph, error) {
	if n <= 0 {
		return nil, fmt.Errorf("%w: n=%d must be positive", ErrInvalidSize, n)
	}
	if len(edges) != len(weights) {
		return nil, fmt.Errorf("%w: len(edges)=%d != len(weights)=%d", ErrInvalidSize, len(edges), len(weights))
	}

	for i, e := range edges {
		if e.Index != i {
			return nil, fmt.Errorf("%w: edges[%d].Index=%d", ErrIndexMismatch, i, e.Index)
		}
		if e.Source < 1 || e.Source > n {
			return nil, fmt.Errorf("%w: edge %d source=%d not in [1,%d]", ErrVertexOutOfRange, i, e.Source, n)
		}
		if e.Target < 1 || e.Target > n {
			return nil, fmt.Errorf("%w: edge %d target=%d not in [1,%d]", ErrVertexOutOfRange, i, e.Target, n)
		}
		w := weights[i]
		if math.IsNaN(w) || math.IsInf(w, 0) {
			return nil, fmt.Errorf("%w: weight[%d]=%v", ErrNonFiniteWeight, i, w)
		}
		if w < 0 {
			return nil, fmt.Errorf("%w: weight[%d]=%v", ErrNegativeWeight, i, w)
		}
	}

	g := &Graph{
		n:         n,
		edges:     append([]Edge(nil), edges...),
		weights:   append([]float64(nil), weights...),
		adjacency: make([][]int, n+1),
	}
	for i, e := range g.edges {
		g.adjacency[e.Source] = append(g.adjacency[e.Source], i)
	}
	return g, nil
}

// Validate re-checks every invariant New enforces, plus adjacency
// consistency: for every vertex v and every edge index e in
// adjacency(v), edges[e].Source must equal v. Validate is idempotent
// and safe to call on any *Graph, including ones assembled outside New.
func Validate(g *Graph) error {
	if g == nil {
		return fmt.Errorf("%w: nil graph", ErrInvalidSize)
	}
	if g.n <= 0 {
		return fmt.Errorf("%w: n=%d must be positive", ErrInvalidSize, g.n)
	}
	if len(g.edges) != len(g.weights) {
		return fmt.Errorf("%w: len(edges)=%d != len(weights)=%d", ErrInvalidSize, len(g.edges), len(g.weights))
	}
	for i, e := range g.edges {
		if e.Index != i {
			return fmt.Errorf("%w: edges[%d].Index=%d", ErrIndexMismatch, i, e.Index)
		}
		if e.Source < 1 || e.Source > g.n || e.Target < 1 || e.Target > g.n {
			return fmt.Errorf("%w: edge %d (%d->%d) out of [1,%d]", ErrVertexOutOfRange, i, e.Source, e.Target, g.n)
		}
		w := g.weights[i]
		if math.IsNaN(w) || math.IsInf(w, 0) {
			return fmt.Errorf("%w: weight[%d]=%v", ErrNonFiniteWeight, i, w)
		}
		if w < 0 {
			return fmt.Errorf("%w: weight[%d]=%v", ErrNegativeWeight, i, w)
		}
	}
	for v := 1; v <= g.n; v++ {
		for _, e := range g.adjacency[v] {
			if g.edges[e].Source != v {
				return fmt.Errorf("%w: adjacency[%d] references edge %d whose source is %d", ErrAdjacencyInconsistent, v, e, g.edges[e].Source)
			}
		}
	}
	return nil
}
