package pareto

import (
	"fmt"
	"math"

	"github.com/katalvlaran/dmypath/dmysssp"
)

// WeightedSum reduces the multi-objective graph to a scalar graph via
// sum_i weights[i]*edge.Weights[i], runs the scalar SSSP kernel, and
// recovers the true per-axis objective vector along the chosen path,
// per spec.md §4.4.3. Preconditions: len(weights) == d; weights sum to
// 1 within WeightSumTol; every objective axis is :min (mixed senses
// require the caller to transform maximize axes into costs first).
//
// If target is unreachable under the scalar weighting, WeightedSum
// returns the infeasibility sentinel (objectives = [+Inf]*d, empty
// path) rather than an error, mirroring EpsilonConstraint and
// Lexicographic's contract.
func WeightedSum(mog *MultiObjectiveGraph, source, target int, weights []float64) (ParetoSolution, error) {
	if source < 1 || source > mog.N() {
		return ParetoSolution{}, errVertexOutOfRangef("source", source, mog.N())
	}
	if target < 1 || target > mog.N() {
		return ParetoSolution{}, errVertexOutOfRangef("target", target, mog.N())
	}
	if len(weights) != mog.D() {
		return ParetoSolution{}, fmt.Errorf("%w: len(weights)=%d != d=%d", ErrDimensionMismatch, len(weights), mog.D())
	}
	if !mog.AllMin() {
		return ParetoSolution{}, fmt.Errorf("%w: weighted_sum requires every objective axis to be :min", ErrMixedObjectiveSense)
	}
	var sum float64
	for _, w := range weights {
		sum += w
	}
	if math.Abs(sum-1.0) > WeightSumTol {
		return ParetoSolution{}, fmt.Errorf("%w: sum(weights)=%v", ErrWeightsDontSumToOne, sum)
	}

	scalarWeight := func(e MultiObjectiveEdge) float64 {
		var s float64
		for i, w := range weights {
			s += w * e.Weights[i]
		}
		return s
	}

	sg, _, err := buildScalarGraph(mog, nil, scalarWeight)
	if err != nil {
		return ParetoSolution{}, err
	}

	dist, parent, err := dmysssp.SSSPWithParents(sg, source)
	if err != nil {
		return ParetoSolution{}, err
	}
	if dist[target] >= dmysssp.Inf {
		return infeasible(mog.D(), mog.N()), nil
	}

	path := dmysssp.ReconstructPath(parent, source, target)
	objectives := recoverPathObjectives(mog, dist, path, scalarWeight)

	return ParetoSolution{Objectives: objectives, Path: path, Parent: parent}, nil
}

// recoverPathObjectives walks a path of scalar-SSSP vertices and, for
// each hop (u,v), selects the multi-objective edge that produced it:
// prefer the edge whose scalarWeight satisfies dist[u]+w == dist[v]
// within AbsoluteTol; fall back to the first edge (u,v) in adjacency
// if none match exactly (floating-point tie-break, per spec.md
// §4.4.3). Returns the summed per-axis objective vector.
func recoverPathObjectives(mog *MultiObjectiveGraph, dist []float64, path []int, scalarWeight func(MultiObjectiveEdge) float64) []float64 {
	objectives := make([]float64, mog.D())
	for i := 0; i+1 < len(path); i++ {
		u, v := path[i], path[i+1]
		chosen, ok := pickEdge(mog, u, v, dist, scalarWeight)
		if !ok {
			continue
		}
		for j, w := range chosen.Weights {
			objectives[j] += w
		}
	}
	return objectives
}

func pickEdge(mog *MultiObjectiveGraph, u, v int, dist []float64, scalarWeight func(MultiObjectiveEdge) float64) (MultiObjectiveEdge, bool) {
	var fallback MultiObjectiveEdge
	haveFallback := false

	for _, ei := range mog.OutgoingEdgeIndices(u) {
		e := mog.EdgeAt(ei)
		if e.Target != v {
			continue
		}
		if !haveFallback {
			fallback = e
			haveFallback = true
		}
		w := scalarWeight(e)
		if math.Abs(dist[u]+w-dist[v]) <= AbsoluteTol {
			return e, true
		}
	}
	return fallback, haveFallback
}
