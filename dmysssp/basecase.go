package dmysssp

import (
	"github.com/katalvlaran/dmypath/dmysssp/internal/bucketqueue"
	"github.com/katalvlaran/dmypath/graph"
)

// baseCaseRelax runs a plain bounded relaxation from frontier to a
// fixed point within the vertex set U, using a Δ-stepping bucket queue
// (internal/bucketqueue) instead of a comparison-sort heap — this is
// recursiveLayer's base case (spec.md §4.3.2 step 1), invoked once |U|
// drops to baseCaseThreshold or below.
//
// A vertex is never permanently finalized on extraction: edge weights
// are non-negative, so a vertex sitting in bucket i can only ever be
// relaxed from another vertex whose own bucket is <= i, and relaxing
// from a vertex in bucket j can only push a neighbor into bucket j or
// later (newDist >= dist[u] >= j*delta). Buckets below the current
// minimum can therefore never receive a new member once emptied, so
// re-extracting and re-relaxing a vertex whenever DecreaseKey lowers
// its distance — rather than finalizing it on first pop — still
// terminates and converges to the true shortest distances.
func baseCaseRelax(g *graph.Graph, dist []float64, parent []int, inU []bool, frontier []int, bound float64) {
	q := bucketqueue.New(1.0)
	inQueue := make(map[int]bool, len(frontier))
	for _, v := range frontier {
		if dist[v] <= bound {
			q.Insert(v, dist[v])
			inQueue[v] = true
		}
	}

	for {
		u, ok := q.ExtractMin()
		if !ok {
			break
		}
		delete(inQueue, u)
		if dist[u] > bound {
			continue
		}
		for _, ei := range g.OutgoingEdges(u) {
			e := g.EdgeAt(ei)
			v := e.Target
			if !inU[v] {
				continue
			}
			newDist := dist[u] + g.WeightAt(ei)
			if newDist < dist[v] && newDist <= bound {
				dist[v] = newDist
				parent[v] = u
				if inQueue[v] {
					q.DecreaseKey(v, newDist)
				} else {
					q.Insert(v, newDist)
					inQueue[v] = true
				}
			}
		}
	}
}
