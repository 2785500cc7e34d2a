// Package dmysssp implements a recursive frontier-sparsifying
// single-source shortest-path kernel ("DMY": recursive layering +
// bounded multi-source relaxation, pivot selection, and block
// partitioning) over graph.Graph, plus a linear-scan reference oracle
// used to validate it and a set of generic path-analysis helpers built
// on top of the kernel.
//
// Top-level entry points:
//
//	dist, err := dmysssp.SSSP(g, source)
//	dist, parent, err := dmysssp.SSSPWithParents(g, source)
//	dist, err = dmysssp.SSSPBounded(g, source, maxDistance)
//
// Every call allocates its own dist/parent buffers; g is read-only, so
// concurrent calls against the same *graph.Graph are safe.
//
// The kernel's recursion parameters (pivot threshold k, partition
// parameter t) are derived from the graph size automatically; see
// Options for the one literal the algorithm leaves open to
// configuration (the advanced pivot-scoring degree weight).
package dmysssp
