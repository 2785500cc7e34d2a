package dmysssp

import (
	"time"

	"github.com/katalvlaran/dmypath/graph"
)

// Statistics runs SSSP from source and reports the shape of the run:
// vertex/edge counts, the top-level k/t recursion parameters, wall
// clock time, and distance-distribution summaries. It does not claim
// to measure or validate the kernel's asymptotic complexity — only the
// observed cost and outcome of this one run.
func Statistics(g *graph.Graph, source int) (Stats, error) {
	if g == nil || source < 1 || source > g.N() {
		_, err := SSSP(g, source)
		return Stats{}, err
	}

	k, t := computeKT(g.N())

	start := time.Now()
	dist, err := SSSP(g, source)
	elapsed := time.Since(start)
	if err != nil {
		return Stats{}, err
	}

	stats := Stats{
		NVertices:          g.N(),
		MEdges:             g.M(),
		Source:             source,
		PivotThreshold:     k,
		PartitionParameter: t,
		RuntimeSeconds:     elapsed.Seconds(),
	}

	var sum, maxD float64
	for v := 1; v <= g.N(); v++ {
		if dist[v] >= Inf {
			stats.Unreachable++
			continue
		}
		stats.DistancesComputed++
		sum += dist[v]
		if dist[v] > maxD {
			maxD = dist[v]
		}
	}
	if stats.DistancesComputed > 0 {
		stats.AvgDistance = sum / float64(stats.DistancesComputed)
		stats.MaxDistance = maxD
	}
	return stats, nil
}
