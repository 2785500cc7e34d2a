// Package randgraph generates deterministic, seeded random graphs for
// property-based tests, adapted from lvlath/builder's Erdős–Rényi
// constructor (RandomSparse) to dmypath's 1-based, parallel-array
// graph.Graph representation.
package randgraph

import (
	"fmt"
	"math/rand"

	"github.com/katalvlaran/dmypath/graph"
)

// File-local constants (no magic literals).
const (
	minVertices = 1
	probMin     = 0.0
	probMax     = 1.0
	minWeight   = 0.1
	maxWeight   = 10.0
)

// ErrTooFewVertices reports a requested vertex count below minVertices.
var ErrTooFewVertices = fmt.Errorf("randgraph: n must be >= %d", minVertices)

// ErrInvalidProbability reports an edge probability outside [0,1].
var ErrInvalidProbability = fmt.Errorf("randgraph: p must be in [%.1f,%.1f]", probMin, probMax)

// Directed builds a directed Erdős–Rényi-style graph on n vertices
// (1-based, per graph.Graph's convention), including each ordered pair
// (i,j), i != j, independently with probability p. Edge weights are
// drawn uniformly from [minWeight, maxWeight]. seed controls the
// source of randomness for full reproducibility across runs.
func Directed(n int, p float64, seed int64) (*graph.Graph, error) {
	if n < minVertices {
		return nil, ErrTooFewVertices
	}
	if p < probMin || p > probMax {
		return nil, ErrInvalidProbability
	}

	rng := rand.New(rand.NewSource(seed))

	var edges []graph.Edge
	var weights []float64
	idx := 0

	// Stable trial order: i asc, j asc, matching the teacher generator's
	// determinism-for-fixed-seed contract.
	for i := 1; i <= n; i++ {
		for j := 1; j <= n; j++ {
			if i == j {
				continue
			}
			if rng.Float64() <= p {
				edges = append(edges, graph.Edge{Source: i, Target: j, Index: idx})
				weights = append(weights, minWeight+rng.Float64()*(maxWeight-minWeight))
				idx++
			}
		}
	}

	return graph.New(n, edges, weights)
}

// Connected builds a directed graph like Directed, but first lays down
// a Hamiltonian chain 1->2->...->n (guaranteeing every vertex is
// reachable from vertex 1) before sampling additional random edges at
// probability p over the remaining ordered pairs.
func Connected(n int, p float64, seed int64) (*graph.Graph, error) {
	if n < minVertices {
		return nil, ErrTooFewVertices
	}
	if p < probMin || p > probMax {
		return nil, ErrInvalidProbability
	}

	rng := rand.New(rand.NewSource(seed))

	var edges []graph.Edge
	var weights []float64
	idx := 0

	for i := 1; i < n; i++ {
		edges = append(edges, graph.Edge{Source: i, Target: i + 1, Index: idx})
		weights = append(weights, minWeight+rng.Float64()*(maxWeight-minWeight))
		idx++
	}

	for i := 1; i <= n; i++ {
		for j := 1; j <= n; j++ {
			if i == j || j == i+1 {
				continue
			}
			if rng.Float64() <= p {
				edges = append(edges, graph.Edge{Source: i, Target: j, Index: idx})
				weights = append(weights, minWeight+rng.Float64()*(maxWeight-minWeight))
				idx++
			}
		}
	}

	return graph.New(n, edges, weights)
}
