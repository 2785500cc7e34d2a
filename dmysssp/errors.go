package dmysssp

import "errors"

// ErrVertexOutOfRange indicates a source, or a query vertex, outside
// [1, n] for the given graph.
var ErrVertexOutOfRange = errors.New("dmysssp: vertex out of range")
