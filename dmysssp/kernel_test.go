package dmysssp_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/dmypath/dmysssp"
	"github.com/katalvlaran/dmypath/graph"
)

func mustGraph(t *testing.T, n int, edges []graph.Edge, weights []float64) *graph.Graph {
	t.Helper()
	g, err := graph.New(n, edges, weights)
	require.NoError(t, err)
	return g
}

// S1 — four-vertex diamond.
func TestSSSP_Diamond(t *testing.T) {
	g := mustGraph(t, 4, []graph.Edge{
		{Source: 1, Target: 2, Index: 0},
		{Source: 1, Target: 3, Index: 1},
		{Source: 2, Target: 4, Index: 2},
		{Source: 3, Target: 4, Index: 3},
	}, []float64{1.0, 2.0, 1.5, 0.5})

	dist, err := dmysssp.SSSP(g, 1)
	require.NoError(t, err)
	require.InDeltaSlice(t, []float64{dmysssp.Inf, 0, 1, 2, 2.5}, dist, 1e-10)

	d, path, err := dmysssp.FindShortestPath(g, 1, 4)
	require.NoError(t, err)
	require.InDelta(t, 2.5, d, 1e-10)
	require.Equal(t, []int{1, 2, 4}, path)
}

// S2 — chain graph.
func TestSSSP_Chain(t *testing.T) {
	g := mustGraph(t, 4, []graph.Edge{
		{Source: 1, Target: 2, Index: 0},
		{Source: 2, Target: 3, Index: 1},
		{Source: 1, Target: 3, Index: 2},
		{Source: 3, Target: 4, Index: 3},
	}, []float64{1, 1, 3, 2})

	dist, parent, err := dmysssp.SSSPWithParents(g, 1)
	require.NoError(t, err)
	require.InDeltaSlice(t, []float64{dmysssp.Inf, 0, 1, 2, 4}, dist, 1e-10)

	path := dmysssp.ReconstructPath(parent, 1, 4)
	require.Equal(t, []int{1, 2, 3, 4}, path)
}

// S3 — bounded search on the chain graph.
func TestSSSP_Bounded(t *testing.T) {
	g := mustGraph(t, 4, []graph.Edge{
		{Source: 1, Target: 2, Index: 0},
		{Source: 2, Target: 3, Index: 1},
		{Source: 1, Target: 3, Index: 2},
		{Source: 3, Target: 4, Index: 3},
	}, []float64{1, 1, 3, 2})

	dist, err := dmysssp.SSSPBounded(g, 1, 2.5)
	require.NoError(t, err)
	require.InDelta(t, 0, dist[1], 1e-10)
	require.InDelta(t, 1, dist[2], 1e-10)
	require.InDelta(t, 2, dist[3], 1e-10)
	require.True(t, math.IsInf(dist[4], 1))
}

// S4 — distance-ratio selectivity.
func TestCalculateDistanceRatio(t *testing.T) {
	g := mustGraph(t, 3, []graph.Edge{
		{Source: 1, Target: 2, Index: 0},
		{Source: 1, Target: 3, Index: 1},
	}, []float64{1.0, 2.0})

	ratio, err := dmysssp.CalculateDistanceRatio(g, 1, 2, 3)
	require.NoError(t, err)
	require.InDelta(t, 0.5, ratio, 1e-10)

	ratio, err = dmysssp.CalculateDistanceRatio(g, 1, 3, 2)
	require.NoError(t, err)
	require.InDelta(t, 2.0, ratio, 1e-10)
}

func TestCalculateDistanceRatio_UnreachableCases(t *testing.T) {
	g := mustGraph(t, 3, []graph.Edge{
		{Source: 1, Target: 2, Index: 0},
	}, []float64{1.0})

	// t1=3 unreachable, t2=2 reachable -> 0.0
	ratio, err := dmysssp.CalculateDistanceRatio(g, 1, 3, 2)
	require.NoError(t, err)
	require.Equal(t, 0.0, ratio)

	// t1=2 reachable, t2=3 unreachable -> +Inf
	ratio, err = dmysssp.CalculateDistanceRatio(g, 1, 2, 3)
	require.NoError(t, err)
	require.True(t, math.IsInf(ratio, 1))

	// both unreachable from 3 looking at 2,3 from vertex 3 itself (3 can't reach 2 nor itself via edges)
	g2 := mustGraph(t, 3, []graph.Edge{}, []float64{})
	ratio, err = dmysssp.CalculateDistanceRatio(g2, 1, 2, 3)
	require.NoError(t, err)
	require.Equal(t, 1.0, ratio)
}

func TestSSSP_SourceOutOfRange(t *testing.T) {
	g := mustGraph(t, 2, []graph.Edge{{Source: 1, Target: 2, Index: 0}}, []float64{1})
	_, err := dmysssp.SSSP(g, 0)
	require.Error(t, err)
	_, err = dmysssp.SSSP(g, 3)
	require.Error(t, err)
}

func TestSSSP_SourceIdentity(t *testing.T) {
	g := mustGraph(t, 3, []graph.Edge{
		{Source: 1, Target: 2, Index: 0},
		{Source: 2, Target: 3, Index: 1},
	}, []float64{1, 1})
	dist, parent, err := dmysssp.SSSPWithParents(g, 1)
	require.NoError(t, err)
	require.Equal(t, 0.0, dist[1])
	require.Equal(t, 0, parent[1])
}

func TestSSSP_NonNegativity(t *testing.T) {
	g := mustGraph(t, 3, []graph.Edge{
		{Source: 1, Target: 2, Index: 0},
		{Source: 2, Target: 3, Index: 1},
	}, []float64{1, 1})
	dist, err := dmysssp.SSSP(g, 1)
	require.NoError(t, err)
	for _, d := range dist[1:] {
		require.True(t, d >= 0 || math.IsInf(d, 1))
	}
}

func TestSSSP_TriangleInequality(t *testing.T) {
	g := mustGraph(t, 5, []graph.Edge{
		{Source: 1, Target: 2, Index: 0},
		{Source: 1, Target: 3, Index: 1},
		{Source: 2, Target: 4, Index: 2},
		{Source: 3, Target: 4, Index: 3},
		{Source: 4, Target: 5, Index: 4},
	}, []float64{2, 5, 1, 1, 3})

	dist, err := dmysssp.SSSP(g, 1)
	require.NoError(t, err)
	for i := 0; i < g.M(); i++ {
		e := g.EdgeAt(i)
		if dist[e.Source] < math.Inf(1) {
			require.LessOrEqual(t, dist[e.Target], dist[e.Source]+g.WeightAt(i)+1e-10)
		}
	}
}

func TestSSSP_BoundedEquivalence(t *testing.T) {
	g := mustGraph(t, 5, []graph.Edge{
		{Source: 1, Target: 2, Index: 0},
		{Source: 1, Target: 3, Index: 1},
		{Source: 2, Target: 4, Index: 2},
		{Source: 3, Target: 4, Index: 3},
		{Source: 4, Target: 5, Index: 4},
	}, []float64{2, 5, 1, 1, 3})

	full, err := dmysssp.SSSP(g, 1)
	require.NoError(t, err)

	for _, bound := range []float64{0, 1, 2.5, 3, 4, 100} {
		bounded, err := dmysssp.SSSPBounded(g, 1, bound)
		require.NoError(t, err)
		for v := 1; v <= g.N(); v++ {
			if full[v] <= bound {
				require.InDelta(t, full[v], bounded[v], 1e-9)
			} else {
				require.True(t, math.IsInf(bounded[v], 1))
			}
		}
	}
}

// Regression: a bucket-ordered base case that finalizes a vertex on
// first extraction would report dist[4]=1.95 here instead of 1.90,
// since 2 (dist 0.95) and 3 (dist 0.90) land in the same bucket and
// FIFO order pops 2 before 3 improves it via 1->3->2.
func TestSSSP_BaseCase_ReextractsOnImprovedDistance(t *testing.T) {
	g := mustGraph(t, 4, []graph.Edge{
		{Source: 1, Target: 2, Index: 0},
		{Source: 1, Target: 3, Index: 1},
		{Source: 3, Target: 2, Index: 2},
		{Source: 2, Target: 4, Index: 3},
	}, []float64{0.95, 0.90, 0.0, 1.0})

	dist, err := dmysssp.SSSP(g, 1)
	require.NoError(t, err)
	require.InDeltaSlice(t, []float64{dmysssp.Inf, 0, 0.90, 0.90, 1.90}, dist, 1e-10)

	want, _, err := dmysssp.ReferenceDijkstra(g, 1)
	require.NoError(t, err)
	require.InDeltaSlice(t, want, dist, 1e-10)
}

func TestSSSP_AgreesWithReference_SmallGraphs(t *testing.T) {
	cases := []struct {
		n       int
		edges   []graph.Edge
		weights []float64
	}{
		{4, []graph.Edge{
			{Source: 1, Target: 2, Index: 0},
			{Source: 1, Target: 3, Index: 1},
			{Source: 2, Target: 4, Index: 2},
			{Source: 3, Target: 4, Index: 3},
		}, []float64{1.0, 2.0, 1.5, 0.5}},
		{6, []graph.Edge{
			{Source: 1, Target: 2, Index: 0},
			{Source: 2, Target: 3, Index: 1},
			{Source: 3, Target: 4, Index: 2},
			{Source: 4, Target: 5, Index: 3},
			{Source: 5, Target: 6, Index: 4},
			{Source: 1, Target: 6, Index: 5},
			{Source: 2, Target: 5, Index: 6},
		}, []float64{1, 1, 1, 1, 1, 10, 2}},
	}
	for _, c := range cases {
		g := mustGraph(t, c.n, c.edges, c.weights)
		for s := 1; s <= c.n; s++ {
			got, err := dmysssp.SSSP(g, s)
			require.NoError(t, err)
			want, _, err := dmysssp.ReferenceDijkstra(g, s)
			require.NoError(t, err)
			require.InDeltaSlice(t, want, got, 1e-10)
		}
	}
}

func TestReconstructPath_NoPath(t *testing.T) {
	parent := []int{0, 0, 0}
	require.Nil(t, dmysssp.ReconstructPath(parent, 1, 2))
}

func TestPathLength_BrokenPath(t *testing.T) {
	g := mustGraph(t, 3, []graph.Edge{{Source: 1, Target: 2, Index: 0}}, []float64{1})
	l := dmysssp.PathLength([]int{1, 2, 3}, g)
	require.True(t, math.IsInf(l, 1))
}

func TestPathLength_SoundnessAgainstDist(t *testing.T) {
	g := mustGraph(t, 5, []graph.Edge{
		{Source: 1, Target: 2, Index: 0},
		{Source: 1, Target: 3, Index: 1},
		{Source: 2, Target: 4, Index: 2},
		{Source: 3, Target: 4, Index: 3},
		{Source: 4, Target: 5, Index: 4},
	}, []float64{2, 5, 1, 1, 3})

	dist, parent, err := dmysssp.SSSPWithParents(g, 1)
	require.NoError(t, err)
	for v := 1; v <= g.N(); v++ {
		if dist[v] >= dmysssp.Inf {
			continue
		}
		path := dmysssp.ReconstructPath(parent, 1, v)
		require.InDelta(t, dist[v], dmysssp.PathLength(path, g), 1e-9)
	}
}
