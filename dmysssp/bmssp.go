package dmysssp

import (
	"sort"

	"github.com/katalvlaran/dmypath/graph"
)

// BMSSPStats reports the behavior of a single bmssp call, for
// diagnostics and tests.
type BMSSPStats struct {
	InitialFrontierSize int
	RoundsPerformed     int
	TotalRelaxations    int
	VerticesUpdated     int
	EarlyTermination    bool
	FinalFrontierSize   int
}

// bmssp performs up to k rounds of Bellman-Ford-style edge relaxation
// starting from frontier (spec.md §4.3.3). Each round iterates the
// current frontier in ascending vertex-id order (the caller must pass
// frontier pre-sorted and deduplicated) and relaxes every outgoing
// edge whose source has a finite distance <= bound. An update
// dist[v] := dist[u]+w(u,v) happens iff the candidate is strictly less
// than dist[v] and <= bound; strict inequality is what gives
// "first writer wins" tie-breaking for parent, since a later,
// equal-valued relaxation in the same or a later round never
// overwrites an already-set parent. A round that performs zero updates
// ends the call early. Returns the frontier produced by the final
// executed round (possibly empty), and statistics accumulated over
// every round of the call.
func bmssp(g *graph.Graph, dist []float64, parent []int, frontier []int, bound float64, k int) ([]int, BMSSPStats) {
	stats := BMSSPStats{InitialFrontierSize: len(frontier)}

	current := frontier
	for round := 0; round < k; round++ {
		updated := make(map[int]struct{})
		for _, u := range current {
			if dist[u] >= Inf || dist[u] > bound {
				continue
			}
			for _, ei := range g.OutgoingEdges(u) {
				e := g.EdgeAt(ei)
				v := e.Target
				stats.TotalRelaxations++
				newDist := dist[u] + g.WeightAt(ei)
				if newDist < dist[v] && newDist <= bound {
					dist[v] = newDist
					parent[v] = u
					updated[v] = struct{}{}
				}
			}
		}
		stats.RoundsPerformed++
		if len(updated) == 0 {
			stats.EarlyTermination = true
			current = nil
			break
		}
		stats.VerticesUpdated += len(updated)
		next := make([]int, 0, len(updated))
		for v := range updated {
			next = append(next, v)
		}
		sort.Ints(next)
		current = next
	}
	stats.FinalFrontierSize = len(current)
	return current, stats
}

// BMSSP is the public entry point for bounded multi-source relaxation,
// returning only the resulting frontier. dist and parent are mutated
// in place; frontier must be sorted ascending and deduplicated.
func BMSSP(g *graph.Graph, dist []float64, parent []int, frontier []int, bound float64, k int) []int {
	next, _ := bmssp(g, dist, parent, frontier, bound, k)
	return next
}

// BMSSPWithStatistics is BMSSP plus instrumentation.
func BMSSPWithStatistics(g *graph.Graph, dist []float64, parent []int, frontier []int, bound float64, k int) ([]int, BMSSPStats) {
	return bmssp(g, dist, parent, frontier, bound, k)
}
