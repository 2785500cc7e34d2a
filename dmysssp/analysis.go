package dmysssp

import (
	"fmt"
	"math"

	"github.com/katalvlaran/dmypath/graph"
)

// FindShortestPath returns the distance and vertex path from s to t.
// If t is unreachable, the distance is Inf and the path is nil.
func FindShortestPath(g *graph.Graph, s, t int) (float64, []int, error) {
	dist, parent, err := SSSPWithParents(g, s)
	if err != nil {
		return 0, nil, err
	}
	if t < 1 || t > g.N() {
		return 0, nil, fmt.Errorf("%w: target=%d not in [1,%d]", ErrVertexOutOfRange, t, g.N())
	}
	return dist[t], ReconstructPath(parent, s, t), nil
}

// FindReachableVertices returns, sorted ascending, every vertex v with
// dist[v] <= maxDist from s (including s itself).
func FindReachableVertices(g *graph.Graph, s int, maxDist float64) ([]int, error) {
	dist, err := SSSPBounded(g, s, maxDist)
	if err != nil {
		return nil, err
	}
	out := make([]int, 0)
	for v := 1; v <= g.N(); v++ {
		if dist[v] <= maxDist {
			out = append(out, v)
		}
	}
	return out, nil
}

// ConnectivitySummary reports how much of a graph a source can reach.
type ConnectivitySummary struct {
	ReachableCount    int
	UnreachableCount  int
	ConnectivityRatio float64
	AvgDistance       float64
	MinDistance       float64
	MaxDistance       float64
}

// AnalyzeConnectivity summarizes the reach of source s: how many
// vertices it reaches, and the average/min/max finite distance among
// reachable vertices (excluding s itself, whose distance is always 0).
func AnalyzeConnectivity(g *graph.Graph, s int) (ConnectivitySummary, error) {
	dist, err := SSSP(g, s)
	if err != nil {
		return ConnectivitySummary{}, err
	}

	var summary ConnectivitySummary
	var sum, minD, maxD float64
	first := true
	for v := 1; v <= g.N(); v++ {
		if v == s {
			continue
		}
		if dist[v] >= Inf {
			summary.UnreachableCount++
			continue
		}
		summary.ReachableCount++
		sum += dist[v]
		if first || dist[v] < minD {
			minD = dist[v]
		}
		if first || dist[v] > maxD {
			maxD = dist[v]
		}
		first = false
	}
	total := summary.ReachableCount + summary.UnreachableCount
	if total > 0 {
		summary.ConnectivityRatio = float64(summary.ReachableCount) / float64(total)
	}
	if summary.ReachableCount > 0 {
		summary.AvgDistance = sum / float64(summary.ReachableCount)
		summary.MinDistance = minD
		summary.MaxDistance = maxD
	}
	return summary, nil
}

// CompareSources returns, for each vertex in sources, its distance to
// target.
func CompareSources(g *graph.Graph, sources []int, target int) (map[int]float64, error) {
	out := make(map[int]float64, len(sources))
	for _, s := range sources {
		dist, err := SSSP(g, s)
		if err != nil {
			return nil, err
		}
		if target < 1 || target > g.N() {
			return nil, fmt.Errorf("%w: target=%d not in [1,%d]", ErrVertexOutOfRange, target, g.N())
		}
		out[s] = dist[target]
	}
	return out, nil
}

// CalculateDistanceRatio returns dist(s,t1)/dist(s,t2), with robust
// handling of Inf per spec.md §4.3.7: both unreachable -> 1.0; only t2
// unreachable -> +Inf; only t1 unreachable -> 0.0; dist(s,t2) == 0 ->
// 0.0; otherwise the ratio.
func CalculateDistanceRatio(g *graph.Graph, s, t1, t2 int) (float64, error) {
	dist, err := SSSP(g, s)
	if err != nil {
		return 0, err
	}
	for _, v := range []int{t1, t2} {
		if v < 1 || v > g.N() {
			return 0, fmt.Errorf("%w: vertex=%d not in [1,%d]", ErrVertexOutOfRange, v, g.N())
		}
	}

	d1, d2 := dist[t1], dist[t2]
	u1, u2 := d1 >= Inf, d2 >= Inf

	switch {
	case u1 && u2:
		return 1.0, nil
	case u2:
		return math.Inf(1), nil
	case u1:
		return 0.0, nil
	case d2 == 0:
		return 0.0, nil
	default:
		return d1 / d2, nil
	}
}

// CalculatePathPreference is CalculateDistanceRatio(s, alt, preferred):
// values > 1 mean the alternative is costlier than the preferred
// target, i.e. the preference is justified.
func CalculatePathPreference(g *graph.Graph, s, preferred, alt int) (float64, error) {
	return CalculateDistanceRatio(g, s, alt, preferred)
}
