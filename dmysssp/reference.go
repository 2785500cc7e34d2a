package dmysssp

import (
	"fmt"

	"github.com/katalvlaran/dmypath/graph"
)

// ReferenceDijkstra is the validation oracle of spec.md §4.2: a
// straightforward label-setting shortest-path algorithm with a
// per-vertex visited flag and linear-scan extraction of the minimum
// dist[u] among unvisited vertices. It is deliberately O(n^2), not
// heap-based, so it stays simple enough to trust as ground truth for
// the DMY kernel rather than fast — DMY's own speed is the point of
// this module, not the oracle's.
func ReferenceDijkstra(g *graph.Graph, source int) ([]float64, []int, error) {
	if g == nil {
		return nil, nil, fmt.Errorf("%w: nil graph", ErrVertexOutOfRange)
	}
	if source < 1 || source > g.N() {
		return nil, nil, fmt.Errorf("%w: source=%d not in [1,%d]", ErrVertexOutOfRange, source, g.N())
	}

	n := g.N()
	dist := make([]float64, n+1)
	parent := make([]int, n+1)
	visited := make([]bool, n+1)
	for v := range dist {
		dist[v] = Inf
	}
	dist[source] = 0

	for iter := 0; iter < n; iter++ {
		u, best := -1, Inf
		for v := 1; v <= n; v++ {
			if !visited[v] && dist[v] < best {
				best = dist[v]
				u = v
			}
		}
		if u == -1 {
			break
		}
		visited[u] = true
		for _, ei := range g.OutgoingEdges(u) {
			e := g.EdgeAt(ei)
			newDist := dist[u] + g.WeightAt(ei)
			if newDist < dist[e.Target] {
				dist[e.Target] = newDist
				parent[e.Target] = u
			}
		}
	}

	return dist, parent, nil
}
