package graph

// Edge is an immutable (source, target, index) record. Index is the
// edge's position in the parallel weight array; New enforces
// edges[i].Index == i for every i.
type Edge struct {
	Source int
	Target int
	Index  int
}

// Graph is an immutable, construct-once directed graph: vertex count N,
// parallel Edges/Weights arrays, and an adjacency table mapping each
// vertex to the ordered list of edge indices whose Source is that
// vertex.
//
// There is no mutator after New — two independent SSSP or Pareto calls
// against the same *Graph are always safe to run in parallel, since
// each call allocates its own distance/parent buffers and the graph
// itself is never written to again ("immutable graph / owned buffers /
// parallel-safe reads").
type Graph struct {
	n         int
	edges     []Edge
	weights   []float64
	adjacency [][]int // adjacency[v], v in [1,n]; index 0 unused
}

// N returns the vertex count.
func (g *Graph) N() int { return g.n }

// M returns the edge count.
func (g *Graph) M() int { return len(g.edges) }

// EdgeAt returns the edge at position i.
func (g *Graph) EdgeAt(i int) Edge { return g.edges[i] }

// WeightAt returns the weight of the edge at position i.
func (g *Graph) WeightAt(i int) float64 { return g.weights[i] }

// Statistics summarizes structural metrics of a Graph.
type Statistics struct {
	NumVertices   int
	NumEdges      int
	Density       float64
	HasSelfLoops  bool
	MaxOutDegree  int
	MinOutDegree  int
	AvgOutDegree  float64
}
