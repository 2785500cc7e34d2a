package dmysssp

import "github.com/katalvlaran/dmypath/graph"

// ReconstructPath walks parent pointers from target back to source,
// per spec.md §4.3.6. If parent[target] == 0 and target != source,
// there is no path and the result is nil. Iteration is bounded by
// len(parent)-1 (the vertex count) to catch an accidental cycle in
// parent, which should never occur on a correct SSSP run — if it does,
// this is an internal-invariant bug, not a caller error, and panics.
func ReconstructPath(parent []int, source, target int) []int {
	if target == source {
		return []int{source}
	}
	if parent[target] == 0 {
		return nil
	}

	n := len(parent) - 1
	path := []int{target}
	cur := target
	for cur != source {
		p := parent[cur]
		if p == 0 {
			return nil
		}
		path = append([]int{p}, path...)
		cur = p
		debugAssert(len(path) <= n+1, "ReconstructPath: parent chain cycle")
	}
	debugAssert(path[0] == source, "ReconstructPath: walk did not terminate at source")
	return path
}

// ShortestPathTree returns, for each vertex reachable from source
// according to parent, its reconstructed path (including source
// itself, whose path is [source]).
func ShortestPathTree(parent []int, source int) map[int][]int {
	tree := make(map[int][]int)
	n := len(parent) - 1
	for v := 1; v <= n; v++ {
		if p := ReconstructPath(parent, source, v); p != nil {
			tree[v] = p
		}
	}
	return tree
}

// PathLength sums edge weights along path, using the first direct
// edge found between each consecutive pair. Returns Inf if any
// consecutive pair lacks a direct edge, and 0 if path has fewer than
// two vertices (an empty or single-vertex path has no edges to sum).
func PathLength(path []int, g *graph.Graph) float64 {
	if len(path) < 2 {
		return 0
	}
	total := 0.0
	for i := 0; i+1 < len(path); i++ {
		w, ok := g.EdgeWeightBetween(path[i], path[i+1])
		if !ok {
			return Inf
		}
		total += w
	}
	return total
}
