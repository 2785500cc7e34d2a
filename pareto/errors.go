package pareto

import "errors"

// Sentinel errors returned by the multi-objective constructors and
// scalarization wrappers. Each is wrapped with offending-value context
// via fmt.Errorf at the call site.
var (
	// ErrInvalidSize indicates a non-positive vertex count or a
	// non-positive objective count.
	ErrInvalidSize = errors.New("pareto: invalid size")

	// ErrDimensionMismatch indicates a sense or names array, an edge
	// weight vector, a weights slice, or a constraints slice whose
	// length does not equal d.
	ErrDimensionMismatch = errors.New("pareto: dimension mismatch")

	// ErrMixedObjectiveSense indicates WeightedSum or Lexicographic was
	// called on a graph that is not all-:min; both require the caller
	// to transform maximize objectives into costs beforehand.
	ErrMixedObjectiveSense = errors.New("pareto: mixed objective sense")

	// ErrWeightsDontSumToOne indicates WeightedSum's weights vector
	// does not sum to 1 within WeightSumTol.
	ErrWeightsDontSumToOne = errors.New("pareto: weights don't sum to one")

	// ErrVertexOutOfRange indicates an edge endpoint, source, target,
	// primary objective index, or priority objective index outside its
	// valid range.
	ErrVertexOutOfRange = errors.New("pareto: vertex out of range")

	// ErrNonFiniteWeight indicates a weight-vector coordinate that is
	// NaN, infinite, or negative (multi-objective weights are costs or
	// maximization scores and must be finite and non-negative).
	ErrNonFiniteWeight = errors.New("pareto: non-finite weight")

	// ErrInvalidSense indicates an objective_sense entry that is
	// neither SenseMin nor SenseMax.
	ErrInvalidSense = errors.New("pareto: invalid objective sense")
)
