package dmysssp

import "math"

// Numeric constants shared across the kernel and its callers.
const (
	// AbsoluteTol is the tolerance used for all float equality
	// comparisons in the kernel (triangle-inequality checks, tie
	// detection when recovering which edge realized an optimum, etc).
	AbsoluteTol = 1e-10

	// EpsilonBlockBound is added to a block's max distance to form its
	// upper_bound, per the block-partitioning contract.
	EpsilonBlockBound = 1e-9

	// baseCaseThreshold is the implementation-defined "small constant"
	// at or below which recursiveLayer runs a plain bounded relaxation
	// to a fixed point instead of recursing further.
	baseCaseThreshold = 16

	// DefaultPivotDegreeWeight is the literal coefficient used by the
	// advanced pivot scorer (dist[v] - weight*outDegree(v)). Spec.md §9
	// flags this coefficient as an open question between "keep it a
	// literal" and "make it configurable" — Options.PivotScorer lets a
	// caller substitute a scorer with a different weight; this constant
	// is the weight AdvancedPivotScorer() always uses.
	DefaultPivotDegreeWeight = 0.1
)

// Inf is the sentinel distance for unreachable vertices.
var Inf = math.Inf(1)
