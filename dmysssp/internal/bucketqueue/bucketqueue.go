// Package bucketqueue implements a Δ-stepping-style bucket priority
// structure: vertices are kept in buckets indexed by floor(dist/delta),
// giving O(1) insert, decrease-key linear in the size of the vertex's
// old bucket, and bucket-by-bucket extraction order without the
// log-factor of a binary heap. It backs the DMY kernel's base case, which must relax a small
// vertex set to a fixed point rather than run k bounded rounds.
//
// Adapted from the bucket queue in mfreeman451/bmssp-go's Δ-stepping
// subroutine, generalized to operate over int vertex ids supplied by
// the caller instead of a package-level NodeID type.
package bucketqueue

// Queue is a Δ-stepping bucket queue keyed by vertex id.
type Queue struct {
	buckets [][]int
	delta   float64
	minIdx  int
	pos     map[int]int // vertex -> bucket index, for decrease-key/removal
}

// New creates a bucket queue with bucket width delta. delta must be > 0.
func New(delta float64) *Queue {
	if delta <= 0 {
		delta = 1
	}
	return &Queue{
		buckets: make([][]int, 0),
		delta:   delta,
		pos:     make(map[int]int),
	}
}

func (q *Queue) bucketIndex(dist float64) int {
	idx := int(dist / q.delta)
	if idx < 0 {
		idx = 0
	}
	return idx
}

// Insert adds v at the bucket for dist. If v is already queued, use
// DecreaseKey instead.
func (q *Queue) Insert(v int, dist float64) {
	idx := q.bucketIndex(dist)
	for idx >= len(q.buckets) {
		q.buckets = append(q.buckets, nil)
	}
	q.buckets[idx] = append(q.buckets[idx], v)
	q.pos[v] = idx
	if idx < q.minIdx {
		q.minIdx = idx
	}
}

// DecreaseKey moves v to the bucket for newDist, removing it from its
// old bucket first.
func (q *Queue) DecreaseKey(v int, newDist float64) {
	if oldIdx, ok := q.pos[v]; ok {
		bucket := q.buckets[oldIdx]
		for i, u := range bucket {
			if u == v {
				q.buckets[oldIdx] = append(bucket[:i], bucket[i+1:]...)
				break
			}
		}
	}
	q.Insert(v, newDist)
}

// ExtractMin removes and returns the vertex in the lowest non-empty
// bucket. The second return is false once the queue is empty.
// Ties within a bucket break by insertion order (FIFO), keeping
// extraction deterministic for a fixed sequence of Insert/DecreaseKey
// calls.
func (q *Queue) ExtractMin() (int, bool) {
	for q.minIdx < len(q.buckets) && len(q.buckets[q.minIdx]) == 0 {
		q.minIdx++
	}
	if q.minIdx >= len(q.buckets) {
		return 0, false
	}
	v := q.buckets[q.minIdx][0]
	q.buckets[q.minIdx] = q.buckets[q.minIdx][1:]
	delete(q.pos, v)
	return v, true
}

// Empty reports whether the queue holds no vertices.
func (q *Queue) Empty() bool {
	for idx := q.minIdx; idx < len(q.buckets); idx++ {
		if len(q.buckets[idx]) > 0 {
			return false
		}
	}
	return true
}
