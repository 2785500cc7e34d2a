package dmysssp

import (
	"fmt"
	"math"
	"sort"

	"github.com/katalvlaran/dmypath/graph"
)

type frame struct {
	U     []int
	S     []int
	Bound float64
}

// computeKT derives the pivot threshold k and partition parameter t
// for a vertex set of the given size, per spec.md §4.3.1/§4.3.2:
// k = max(1, ceil(size^(1/3))), t = max(1, ceil((log max(size,2))^(1/3))).
func computeKT(size int) (k, t int) {
	k = int(math.Ceil(math.Cbrt(float64(size))))
	if k < 1 {
		k = 1
	}
	logN := math.Log(math.Max(float64(size), 2))
	t = int(math.Ceil(math.Cbrt(logN)))
	if t < 1 {
		t = 1
	}
	return k, t
}

func sortedDedup(vs []int) []int {
	if len(vs) == 0 {
		return nil
	}
	out := append([]int(nil), vs...)
	sort.Ints(out)
	dedup := out[:1]
	for _, v := range out[1:] {
		if v != dedup[len(dedup)-1] {
			dedup = append(dedup, v)
		}
	}
	return dedup
}

// recursiveLayer propagates correct distances to every vertex in U
// whose shortest-path value is <= bound, starting from frontier S,
// per spec.md §4.3.2. It is expressed as an explicit work stack of
// (U, S, bound) frames (spec.md §9 Design Notes: "prefer the explicit
// stack to avoid call-stack limits") rather than true recursion.
func recursiveLayer(g *graph.Graph, dist []float64, parent []int, U, S []int, bound float64, cfg Options) {
	stack := []frame{{U: U, S: S, Bound: bound}}

	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if len(f.U) <= baseCaseThreshold {
			inU := make([]bool, g.N()+1)
			for _, v := range f.U {
				inU[v] = true
			}
			baseCaseRelax(g, dist, parent, inU, sortedDedup(f.S), f.Bound)
			continue
		}

		k, t := computeKT(len(f.U))

		sSorted := sortedDedup(f.S)
		bmssp(g, dist, parent, sSorted, f.Bound, k)

		inS := make(map[int]bool, len(f.S))
		for _, v := range f.S {
			inS[v] = true
		}

		candidates := make([]int, 0, len(f.U))
		for _, v := range f.U {
			if inS[v] {
				continue
			}
			if dist[v] < f.Bound {
				candidates = append(candidates, v)
			}
		}
		if len(candidates) == 0 {
			continue
		}

		pivots := SelectPivots(g, candidates, dist, k, cfg.PivotScorer)
		inCandidates := make(map[int]bool, len(candidates))
		for _, v := range candidates {
			inCandidates[v] = true
		}
		for _, p := range pivots {
			debugAssert(inCandidates[p], "recursiveLayer: pivot not in Ũ")
		}
		// P ⊆ Ũ always (SelectPivots only ever returns a subset of its
		// candidates argument), so Ũ ∪ P == Ũ: partition directly over
		// candidates instead of computing that union.
		blocks := PartitionBlocks(candidates, dist, t, f.Bound)
		for _, b := range blocks {
			debugAssert(len(b.Vertices) < len(f.U), "recursiveLayer: block did not shrink U")
			stack = append(stack, frame{U: b.Vertices, S: b.Frontier, Bound: b.UpperBound})
		}
	}
}

func debugAssert(cond bool, msg string) {
	if !cond {
		panic("dmysssp: internal invariant violated: " + msg)
	}
}

// SSSP computes shortest distances from source to every vertex in g.
// dist[source] == 0; unreachable vertices hold Inf.
func SSSP(g *graph.Graph, source int, opts ...Option) ([]float64, error) {
	dist, _, err := ssspCore(g, source, Inf, opts)
	return dist, err
}

// SSSPWithParents is SSSP plus the predecessor vector needed for path
// reconstruction. parent[v] is the vertex preceding v on the recorded
// shortest path; parent[source] == 0 (sentinel), as does parent[v] for
// every unreachable v.
func SSSPWithParents(g *graph.Graph, source int, opts ...Option) ([]float64, []int, error) {
	return ssspCore(g, source, Inf, opts)
}

// SSSPBounded is SSSP restricted to a maximum distance: any vertex
// whose true shortest distance exceeds maxDistance is left at Inf.
func SSSPBounded(g *graph.Graph, source int, maxDistance float64, opts ...Option) ([]float64, error) {
	dist, _, err := ssspCore(g, source, maxDistance, opts)
	return dist, err
}

func ssspCore(g *graph.Graph, source int, bound float64, opts []Option) ([]float64, []int, error) {
	if g == nil {
		return nil, nil, fmt.Errorf("%w: nil graph", ErrVertexOutOfRange)
	}
	if source < 1 || source > g.N() {
		return nil, nil, fmt.Errorf("%w: source=%d not in [1,%d]", ErrVertexOutOfRange, source, g.N())
	}

	cfg := resolveOptions(opts)

	dist := make([]float64, g.N()+1)
	parent := make([]int, g.N()+1)
	for v := range dist {
		dist[v] = Inf
	}
	dist[source] = 0

	U := make([]int, g.N())
	for v := 1; v <= g.N(); v++ {
		U[v-1] = v
	}

	recursiveLayer(g, dist, parent, U, []int{source}, bound, cfg)

	return dist, parent, nil
}
