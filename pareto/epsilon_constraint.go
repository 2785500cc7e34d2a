package pareto

import (
	"fmt"
	"math"
)

// DefaultFrontCap is the max_solutions bound EpsilonConstraint passes
// internally to ComputeParetoFront, matching the default shown in
// spec.md §6's external-interface signature.
const DefaultFrontCap = 100

// EpsilonConstraint computes the Pareto front, filters it to solutions
// satisfying every non-primary constraint within AbsoluteTol, and
// returns the survivor optimizing primaryObjective, per spec.md §4.4.4.
// primaryObjective is 1-based (1 ≤ primaryObjective ≤ d), matching the
// specification's pseudocode. constraints[primaryObjective-1] is
// ignored (free); for every other axis i, constraints[i] is an upper
// bound when sense[i] == SenseMin, a lower bound when sense[i] ==
// SenseMax; ±Inf disables the bound on that axis.
//
// If no Pareto solution survives filtering, EpsilonConstraint returns
// the infeasibility sentinel (objectives = [+Inf]*d, empty path) and a
// nil error: infeasibility is an expected outcome here, not a bug.
func EpsilonConstraint(mog *MultiObjectiveGraph, source, target, primaryObjective int, constraints []float64) (ParetoSolution, error) {
	if source < 1 || source > mog.N() {
		return ParetoSolution{}, errVertexOutOfRangef("source", source, mog.N())
	}
	if target < 1 || target > mog.N() {
		return ParetoSolution{}, errVertexOutOfRangef("target", target, mog.N())
	}
	if primaryObjective < 1 || primaryObjective > mog.D() {
		return ParetoSolution{}, fmt.Errorf("%w: primary_objective=%d not in [1,%d]", ErrVertexOutOfRange, primaryObjective, mog.D())
	}
	if len(constraints) != mog.D() {
		return ParetoSolution{}, fmt.Errorf("%w: len(constraints)=%d != d=%d", ErrDimensionMismatch, len(constraints), mog.D())
	}

	front, err := ComputeParetoFront(mog, source, target, DefaultFrontCap)
	if err != nil {
		return ParetoSolution{}, err
	}

	primaryIdx := primaryObjective - 1

	var best ParetoSolution
	haveBest := false
	for _, sol := range front {
		if !satisfiesConstraints(mog, sol, constraints, primaryIdx) {
			continue
		}
		if !haveBest {
			best, haveBest = sol, true
			continue
		}
		if betterPrimary(mog.Sense(primaryIdx), sol.Objectives[primaryIdx], best.Objectives[primaryIdx]) {
			best = sol
		}
	}

	if !haveBest {
		return infeasible(mog.D(), mog.N()), nil
	}
	return best, nil
}

func satisfiesConstraints(mog *MultiObjectiveGraph, sol ParetoSolution, constraints []float64, primaryIdx int) bool {
	for i := 0; i < mog.D(); i++ {
		if i == primaryIdx {
			continue
		}
		bound := constraints[i]
		v := sol.Objectives[i]
		switch mog.Sense(i) {
		case SenseMin:
			if math.IsInf(bound, 1) {
				continue
			}
			if v > bound+AbsoluteTol {
				return false
			}
		case SenseMax:
			if math.IsInf(bound, -1) {
				continue
			}
			if v < bound-AbsoluteTol {
				return false
			}
		}
	}
	return true
}

func betterPrimary(sense Sense, candidate, incumbent float64) bool {
	if sense == SenseMin {
		return candidate < incumbent
	}
	return candidate > incumbent
}
