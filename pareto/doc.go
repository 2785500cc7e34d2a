// Package pareto implements a multi-objective extension of the sssp
// kernel: a label-setting Pareto front enumerator with dominance
// pruning, plus three scalarization strategies (weighted-sum,
// ε-constraint, lexicographic) and knee-point selection, all built
// over MultiObjectiveGraph.
//
// Top-level entry points:
//
//	front, err := pareto.ComputeParetoFront(mog, source, target, maxSolutions)
//	sol, err := pareto.WeightedSum(mog, source, target, weights)
//	sol, err := pareto.EpsilonConstraint(mog, source, target, primary, constraints)
//	sol, err := pareto.Lexicographic(mog, source, target, priorityOrder)
//	best, ok := pareto.KneePoint(front)
//
// Scalarization wrappers that can fail to find a feasible solution
// (WeightedSum, EpsilonConstraint, Lexicographic) signal infeasibility by returning
// a sentinel ParetoSolution with every objective set to +Inf and an
// empty path, rather than an error: infeasibility is an expected
// outcome, not a bug.
package pareto
