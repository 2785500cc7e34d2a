package pareto

import (
	"github.com/katalvlaran/dmypath/graph"
)

// buildScalarGraph reduces a MultiObjectiveGraph to a scalar graph.Graph
// by applying weightFn to each edge in activeEdges (original edge
// indices into mog; nil means "every edge"). It returns the scalar
// graph plus origEdge, a slice mapping the new graph's edge index back
// to the original mog edge index (needed because graph.Graph requires
// edges[i].Index == i, which may not hold for a filtered subset).
func buildScalarGraph(mog *MultiObjectiveGraph, activeEdges []int, weightFn func(MultiObjectiveEdge) float64) (*graph.Graph, []int, error) {
	if activeEdges == nil {
		activeEdges = make([]int, mog.M())
		for i := range activeEdges {
			activeEdges[i] = i
		}
	}

	edges := make([]graph.Edge, len(activeEdges))
	weights := make([]float64, len(activeEdges))
	origEdge := make([]int, len(activeEdges))

	for newIdx, oldIdx := range activeEdges {
		e := mog.EdgeAt(oldIdx)
		edges[newIdx] = graph.Edge{Source: e.Source, Target: e.Target, Index: newIdx}
		weights[newIdx] = weightFn(e)
		origEdge[newIdx] = oldIdx
	}

	g, err := graph.New(mog.N(), edges, weights)
	if err != nil {
		return nil, nil, err
	}
	return g, origEdge, nil
}
