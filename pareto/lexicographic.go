package pareto

import (
	"fmt"
	"math"

	"github.com/katalvlaran/dmypath/dmysssp"
)

// Lexicographic iteratively restricts the edge set to those
// participating in some shortest path under each objective in
// priorityOrder (most important first), per spec.md §4.4.5.
// Preconditions: every objective axis is :min (same transform-first
// contract as WeightedSum). priorityOrder holds 1-based objective
// indices.
//
// If any priority's restricted graph cannot reach target, or the
// active edge set becomes empty, Lexicographic returns the
// infeasibility sentinel and a nil error.
func Lexicographic(mog *MultiObjectiveGraph, source, target int, priorityOrder []int) (ParetoSolution, error) {
	if source < 1 || source > mog.N() {
		return ParetoSolution{}, errVertexOutOfRangef("source", source, mog.N())
	}
	if target < 1 || target > mog.N() {
		return ParetoSolution{}, errVertexOutOfRangef("target", target, mog.N())
	}
	if !mog.AllMin() {
		return ParetoSolution{}, fmt.Errorf("%w: lexicographic requires every objective axis to be :min", ErrMixedObjectiveSense)
	}
	for _, o := range priorityOrder {
		if o < 1 || o > mog.D() {
			return ParetoSolution{}, fmt.Errorf("%w: priority objective %d not in [1,%d]", ErrVertexOutOfRange, o, mog.D())
		}
	}

	active := make([]int, mog.M())
	for i := range active {
		active[i] = i
	}

	var lastParent []int

	for _, o := range priorityOrder {
		axis := o - 1

		sg, origEdge, err := buildScalarGraph(mog, active, func(e MultiObjectiveEdge) float64 { return e.Weights[axis] })
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
		lastParent = parent

		var retained []int
		for _, oldIdx := range origEdge {
			e := mog.EdgeAt(oldIdx)
			if dist[e.Source] >= dmysssp.Inf || dist[e.Target] >= dmysssp.Inf {
				continue
			}
			if math.Abs(dist[e.Source]+e.Weights[axis]-dist[e.Target]) <= AbsoluteTol {
				retained = append(retained, oldIdx)
			}
		}
		if len(retained) == 0 {
			return infeasible(mog.D(), mog.N()), nil
		}
		active = retained
	}

	path := dmysssp.ReconstructPath(lastParent, source, target)
	if path == nil {
		return infeasible(mog.D(), mog.N()), nil
	}

	objectives := make([]float64, mog.D())
	for i := 0; i+1 < len(path); i++ {
		u, v := path[i], path[i+1]
		e, ok := firstActiveEdge(mog, active, u, v)
		if !ok {
			continue
		}
		for j, w := range e.Weights {
			objectives[j] += w
		}
	}

	return ParetoSolution{Objectives: objectives, Path: path, Parent: lastParent}, nil
}

func firstActiveEdge(mog *MultiObjectiveGraph, active []int, u, v int) (MultiObjectiveEdge, bool) {
	for _, idx := range active {
		e := mog.EdgeAt(idx)
		if e.Source == u && e.Target == v {
			return e, true
		}
	}
	return MultiObjectiveEdge{}, false
}
