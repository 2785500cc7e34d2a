// Package dmypath is your toolkit for single-source shortest paths and
// multi-objective route selection over directed, non-negative-weight
// graphs in Go.
//
// 🚀 What is dmypath?
//
//	A small, mostly zero-dependency shortest-path engine built around:
//
//	  • graph/    — an immutable, construct-once directed-graph type
//	  • dmysssp/  — a recursive frontier-sparsifying SSSP kernel (pivot
//	                selection + bounded multi-source relaxation + block
//	                partitioning), plus a linear-scan reference oracle
//	                and generic path-analysis helpers
//	  • pareto/   — a label-setting multi-objective Pareto front
//	                enumerator with dominance pruning, three
//	                scalarization strategies, and knee-point selection
//	  • domainkit/ — a thin illustration of wrapping the kernel with a
//	                 domain vocabulary (names instead of vertex indices)
//
// ✨ Why this shape?
//
//   - Construct once, read many — graphs are validated at construction
//     and never mutated, so concurrent SSSP/Pareto calls over the same
//     graph need no locking.
//   - Deterministic — every kernel is single-threaded and reproducible
//     for a fixed graph and seed.
//   - Pure Go — no cgo and no runtime dependencies beyond the standard
//     library; testify is used only in _test.go files.
//
// Quick example:
//
//	g, err := graph.New(4, []graph.Edge{
//	    {Source: 1, Target: 2, Index: 0},
//	    {Source: 1, Target: 3, Index: 1},
//	    {Source: 2, Target: 4, Index: 2},
//	    {Source: 3, Target: 4, Index: 3},
//	}, []float64{1.0, 2.0, 1.5, 0.5})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	dist, err := dmysssp.SSSP(g, 1) // dist[1:] == [0, 1, 2, 2.5]; slot 0 is unused (+Inf)
package dmypath
