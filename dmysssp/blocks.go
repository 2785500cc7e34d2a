package dmysssp

import "sort"

// Block is a contiguous (by distance) slice of vertices processed as a
// recursive sub-problem, per spec.md §3.
type Block struct {
	Vertices   []int
	Frontier   []int // singleton: the block's minimum-distance vertex
	UpperBound float64
}

// PartitionBlocks implements spec.md §4.3.5's adaptive variant: sort U
// ascending by dist (stable, so ties preserve U's input order),
// split into min(2^t, |U|) blocks, and distribute the |U| mod
// numBlocks remainder across the first that-many blocks so sizes
// differ by at most 1. Each block's frontier is its minimum-distance
// vertex (the first element of its chunk, since U is sorted); each
// block's UpperBound is min(maxDistInBlock+EpsilonBlockBound, bound).
//
// Postconditions (spec.md §8 item 8): blocks partition U exactly (no
// overlap, full coverage); each block's size is <=
// ceil(|U|/min(2^t,|U|)); each block's frontier is its single
// minimum-distance vertex.
func PartitionBlocks(U []int, dist []float64, t int, bound float64) []Block {
	if len(U) == 0 {
		return nil
	}

	sorted := append([]int(nil), U...)
	sort.SliceStable(sorted, func(i, j int) bool { return dist[sorted[i]] < dist[sorted[j]] })

	numBlocks := 1 << uint(t)
	if numBlocks > len(sorted) {
		numBlocks = len(sorted)
	}
	if numBlocks < 1 {
		numBlocks = 1
	}

	base := len(sorted) / numBlocks
	remainder := len(sorted) % numBlocks

	blocks := make([]Block, 0, numBlocks)
	pos := 0
	for b := 0; b < numBlocks && pos < len(sorted); b++ {
		size := base
		if b < remainder {
			size++
		}
		if size == 0 {
			continue
		}
		chunk := sorted[pos : pos+size]
		pos += size

		maxDist := dist[chunk[0]]
		for _, v := range chunk {
			if dist[v] > maxDist {
				maxDist = dist[v]
			}
		}
		upper := maxDist + EpsilonBlockBound
		if upper > bound {
			upper = bound
		}

		blocks = append(blocks, Block{
			Vertices:   append([]int(nil), chunk...),
			Frontier:   []int{chunk[0]},
			UpperBound: upper,
		})
	}
	return blocks
}
