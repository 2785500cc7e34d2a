package graph

import "sort"

// OutDegree returns the number of outgoing edges from v.
func (g *Graph) OutDegree(v int) int { return len(g.adjacency[v]) }

// OutgoingEdges returns the edge indices whose Source is v, in
// construction order.
func (g *Graph) OutgoingEdges(v int) []int { return g.adjacency[v] }

// FindEdge returns the index of an edge u->v, and whether one exists.
// Linear in OutDegree(u). If multiple parallel edges u->v exist, the
// first one in adjacency order is returned.
func (g *Graph) FindEdge(u, v int) (int, bool) {
	for _, e := range g.adjacency[u] {
		if g.edges[e].Target == v {
			return e, true
		}
	}
	return 0, false
}

// EdgeWeightBetween returns the weight of an edge u->v, and whether one
// exists. Linear in OutDegree(u).
func (g *Graph) EdgeWeightBetween(u, v int) (float64, bool) {
	e, ok := g.FindEdge(u, v)
	if !ok {
		return 0, false
	}
	return g.weights[e], true
}

// HasSelfLoops reports whether any edge has Source == Target.
func (g *Graph) HasSelfLoops() bool {
	for _, e := range g.edges {
		if e.Source == e.Target {
			return true
		}
	}
	return false
}

// Density returns m / (n*(n-1)) for n > 1, the fraction of the
// directed-simple-graph edge capacity actually used. Returns 0 for n <= 1.
func (g *Graph) Density() float64 {
	if g.n <= 1 {
		return 0
	}
	capacity := float64(g.n) * float64(g.n-1)
	return float64(len(g.edges)) / capacity
}

// ComputeStatistics summarizes structural metrics of the graph.
func (g *Graph) ComputeStatistics() Statistics {
	stats := Statistics{
		NumVertices:  g.n,
		NumEdges:     len(g.edges),
		Density:      g.Density(),
		HasSelfLoops: g.HasSelfLoops(),
	}
	if g.n == 0 {
		return stats
	}
	minDeg, maxDeg, sum := -1, 0, 0
	for v := 1; v <= g.n; v++ {
		d := g.OutDegree(v)
		sum += d
		if d > maxDeg {
			maxDeg = d
		}
		if minDeg == -1 || d < minDeg {
			minDeg = d
		}
	}
	stats.MaxOutDegree = maxDeg
	stats.MinOutDegree = minDeg
	stats.AvgOutDegree = float64(sum) / float64(g.n)
	return stats
}

// Reachability returns the set of vertices reachable from source via a
// plain, weight-ignoring breadth-first traversal (including source
// itself). Used for connectivity queries and as a structural sanity
// check independent of the weighted SSSP kernel.
func (g *Graph) Reachability(source int) map[int]struct{} {
	visited := map[int]struct{}{source: {}}
	queue := []int{source}
	for len(queue) > 0 {
		u := queue[0]
		queue = queue[1:]
		for _, ei := range g.adjacency[u] {
			v := g.edges[ei].Target
			if _, seen := visited[v]; !seen {
				visited[v] = struct{}{}
				queue = append(queue, v)
			}
		}
	}
	return visited
}

// SortedReachability is Reachability with a deterministic, ascending
// vertex-id ordering — convenient for tests and for callers that need
// reproducible output.
func (g *Graph) SortedReachability(source int) []int {
	set := g.Reachability(source)
	out := make([]int, 0, len(set))
	for v := range set {
		out = append(out, v)
	}
	sort.Ints(out)
	return out
}
