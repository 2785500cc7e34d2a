package pareto

import "github.com/katalvlaran/dmypath/dmysssp"

// ComputePathObjectives walks the path encoded by parent from source to
// target, summing each hop's multi-objective weight vector, per
// spec.md §4.4.7. If edgeIndices is non-nil and edgeIndices[v] names an
// edge index for a visited vertex v, that edge is used directly;
// otherwise the adjacency of parent[v] is scanned for an edge whose
// target is v. Returns a length-d vector of +Inf if the path is
// broken (a visited vertex has parent 0 before reaching source, or no
// matching edge is found).
func ComputePathObjectives(mog *MultiObjectiveGraph, parent []int, source, target int, edgeIndices map[int]int) []float64 {
	path := dmysssp.ReconstructPath(parent, source, target)
	if path == nil {
		objs := make([]float64, mog.D())
		for i := range objs {
			objs[i] = Inf
		}
		return objs
	}

	objectives := make([]float64, mog.D())
	for i := 0; i+1 < len(path); i++ {
		u, v := path[i], path[i+1]

		var chosen MultiObjectiveEdge
		found := false
		if edgeIndices != nil {
			if ei, ok := edgeIndices[v]; ok {
				chosen, found = mog.EdgeAt(ei), true
			}
		}
		if !found {
			for _, ei := range mog.OutgoingEdgeIndices(u) {
				e := mog.EdgeAt(ei)
				if e.Target == v {
					chosen, found = e, true
					break
				}
			}
		}
		if !found {
			objs := make([]float64, mog.D())
			for i := range objs {
				objs[i] = Inf
			}
			return objs
		}
		for j, w := range chosen.Weights {
			objectives[j] += w
		}
	}
	return objectives
}
