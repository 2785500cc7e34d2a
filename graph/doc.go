// Package graph defines the immutable, validated directed-graph
// representation shared by the dmysssp and pareto packages.
//
// 🚀 What is dmypath/graph?
//
//	A tiny, zero-dependency, construct-once graph type:
//
//	  • Vertices are 1..n; edges and weights live in parallel arrays.
//	  • Every invariant (weight non-negativity, index alignment, vertex
//	    range, adjacency consistency) is checked once at construction.
//	  • No mutation after New — safe to share a single *Graph across any
//	    number of concurrent SSSP or Pareto calls.
//
// Quick example:
//
//	g, err := graph.New(4, []graph.Edge{
//	    {Source: 1, Target: 2, Index: 0},
//	    {Source: 2, Target: 3, Index: 1},
//	}, []float64{1.0, 2.5})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(g.OutDegree(1))
package graph
