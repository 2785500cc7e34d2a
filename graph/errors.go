package graph

import "errors"

// Sentinel errors returned by New and Validate. Each is wrapped with
// offending-index/value context via fmt.Errorf at the call site.
var (
	// ErrInvalidSize indicates a non-positive vertex count or a length
	// mismatch between the edges and weights arrays.
	ErrInvalidSize = errors.New("graph: invalid size")

	// ErrNegativeWeight indicates a weight below zero.
	ErrNegativeWeight = errors.New("graph: negative weight")

	// ErrNonFiniteWeight indicates a weight that is NaN or +/-Inf.
	ErrNonFiniteWeight = errors.New("graph: non-finite weight")

	// ErrIndexMismatch indicates edges[i].Index != i.
	ErrIndexMismatch = errors.New("graph: edge index mismatch")

	// ErrVertexOutOfRange indicates a source or target outside [1, n].
	ErrVertexOutOfRange = errors.New("graph: vertex out of range")

	// ErrAdjacencyInconsistent indicates an adjacency entry pointing at
	// an edge whose recorded source does not match the adjacency key.
	// New always builds adjacency itself and cannot trigger this; it
	// exists for Validate, which re-checks a *Graph's invariants from
	// scratch and must not assume the table was built correctly.
	ErrAdjacencyInconsistent = errors.New("graph: adjacency inconsistent with edge source")
)
