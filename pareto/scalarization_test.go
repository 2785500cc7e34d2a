package pareto_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/dmypath/pareto"
)

// allMinGraph: three axes, all :min, diamond shape with distinct
// per-axis tradeoffs between the two middle vertices.
func allMinGraph(t *testing.T) *pareto.MultiObjectiveGraph {
	t.Helper()
	edges := []pareto.MultiObjectiveEdge{
		{Source: 1, Target: 2, Weights: []float64{1, 5, 2}, EdgeID: 1},
		{Source: 1, Target: 3, Weights: []float64{4, 1, 3}, EdgeID: 2},
		{Source: 2, Target: 4, Weights: []float64{1, 1, 1}, EdgeID: 3},
		{Source: 3, Target: 4, Weights: []float64{1, 1, 1}, EdgeID: 4},
	}
	sense := []pareto.Sense{pareto.SenseMin, pareto.SenseMin, pareto.SenseMin}
	g, err := pareto.NewGraph(4, 3, edges, nil, sense)
	require.NoError(t, err)
	return g
}

func TestWeightedSum_ScalarCostMatchesSSSP(t *testing.T) {
	g := allMinGraph(t)

	weights := []float64{0.5, 0.3, 0.2}
	sol, err := pareto.WeightedSum(g, 1, 4, weights)
	require.NoError(t, err)

	// 1->2->4: 0.5*1+0.3*5+0.2*2 + 0.5*1+0.3*1+0.2*1 = (0.5+1.5+0.4)+(0.5+0.3+0.2) = 2.4+1.0 = 3.4
	// 1->3->4: 0.5*4+0.3*1+0.2*3 + 1.0 = (2.0+0.3+0.6)+1.0 = 2.9+1.0 = 3.9
	// so path via 2 should win.
	require.Equal(t, []int{1, 2, 4}, sol.Path)
	require.InDeltaSlice(t, []float64{2, 6, 3}, sol.Objectives, 1e-9)
}

func TestWeightedSum_RejectsBadWeights(t *testing.T) {
	g := allMinGraph(t)
	_, err := pareto.WeightedSum(g, 1, 4, []float64{0.5, 0.5})
	require.ErrorIs(t, err, pareto.ErrDimensionMismatch)

	_, err = pareto.WeightedSum(g, 1, 4, []float64{0.1, 0.1, 0.1})
	require.ErrorIs(t, err, pareto.ErrWeightsDontSumToOne)
}

func TestWeightedSum_RejectsMixedSense(t *testing.T) {
	g := s5Graph(t)
	_, err := pareto.WeightedSum(g, 1, 5, []float64{1.0 / 3, 1.0 / 3, 1.0 / 3})
	require.ErrorIs(t, err, pareto.ErrMixedObjectiveSense)
}

func TestEpsilonConstraint_SelectsBestSurvivor(t *testing.T) {
	g := s5Graph(t)

	// primary = axis 1 (max); no constraint on axis 1 (ignored), bound
	// axis 2 (min) loosely, axis 3 (min) tightly enough to exclude the
	// higher-cost survivor.
	constraints := []float64{math.Inf(1), 1.0, 200.0}
	sol, err := pareto.EpsilonConstraint(g, 1, 5, 1, constraints)
	require.NoError(t, err)
	require.Equal(t, []int{1, 2, 5}, sol.Path)
}

func TestEpsilonConstraint_Infeasible(t *testing.T) {
	g := s5Graph(t)
	constraints := []float64{math.Inf(1), 0.0, 0.0} // impossible to satisfy
	sol, err := pareto.EpsilonConstraint(g, 1, 5, 1, constraints)
	require.NoError(t, err)
	for _, o := range sol.Objectives {
		require.True(t, math.IsInf(o, 1))
	}
	require.Empty(t, sol.Path)
}

func TestLexicographic_PicksPathMinimizingFirstPriority(t *testing.T) {
	g := allMinGraph(t)
	sol, err := pareto.Lexicographic(g, 1, 4, []int{2, 1, 3}) // axis 2 first
	require.NoError(t, err)
	require.Equal(t, []int{1, 3, 4}, sol.Path) // axis-2 cost via 3 is 1+1=2 vs via 2: 5+1=6
}

func TestLexicographic_RejectsMixedSense(t *testing.T) {
	g := s5Graph(t)
	_, err := pareto.Lexicographic(g, 1, 5, []int{2, 3})
	require.ErrorIs(t, err, pareto.ErrMixedObjectiveSense)
}

func TestLexicographic_Unreachable(t *testing.T) {
	edges := []pareto.MultiObjectiveEdge{
		{Source: 1, Target: 2, Weights: []float64{1, 1}},
	}
	g, err := pareto.NewGraph(3, 2, edges, nil, []pareto.Sense{pareto.SenseMin, pareto.SenseMin})
	require.NoError(t, err)

	sol, err := pareto.Lexicographic(g, 1, 3, []int{1, 2})
	require.NoError(t, err)
	for _, o := range sol.Objectives {
		require.True(t, math.IsInf(o, 1))
	}
}
