package pareto

// queueItem is one (vertex, label index) pair awaiting propagation.
type queueItem struct {
	vertex   int
	labelIdx int
}

// ComputeParetoFront enumerates non-dominated source-to-target paths
// via FIFO label propagation with dominance pruning, per spec.md
// §4.4.2. It stops once the queue drains or maxSolutions solutions
// have been found, whichever comes first; Pareto-set size is bounded
// by maxSolutions, never by an internal heuristic.
func ComputeParetoFront(g *MultiObjectiveGraph, source, target, maxSolutions int) ([]ParetoSolution, error) {
	if source < 1 || source > g.N() {
		return nil, errVertexOutOfRangef("source", source, g.N())
	}
	if target < 1 || target > g.N() {
		return nil, errVertexOutOfRangef("target", target, g.N())
	}
	if maxSolutions <= 0 {
		return nil, nil
	}

	sense := sensesOf(g)
	labels := make([][]label, g.N()+1)

	seed := label{obj: make([]float64, g.D())}
	labels[source] = []label{seed}

	queue := []queueItem{{vertex: source, labelIdx: 0}}
	processed := make(map[queueItem]bool)

	var solutions []ParetoSolution

	for len(queue) > 0 && len(solutions) < maxSolutions {
		item := queue[0]
		queue = queue[1:]
		if processed[item] {
			continue
		}
		processed[item] = true

		u, idx := item.vertex, item.labelIdx
		if u == target {
			solutions = append(solutions, reconstructSolution(g, labels, u, idx))
			continue
		}

		cur := labels[u][idx]
		for _, ei := range g.OutgoingEdgeIndices(u) {
			e := g.EdgeAt(ei)
			newObj := addVec(cur.obj, e.Weights)

			dominated := false
			for _, existing := range labels[e.Target] {
				if Dominates(existing.obj, newObj, sense, AbsoluteTol) {
					dominated = true
					break
				}
			}
			if dominated {
				continue
			}

			kept := labels[e.Target][:0]
			for _, existing := range labels[e.Target] {
				if !Dominates(newObj, existing.obj, sense, AbsoluteTol) {
					kept = append(kept, existing)
				}
			}
			labels[e.Target] = append(kept, label{
				obj:            newObj,
				parentVertex:   u,
				parentLabelIdx: idx,
			})

			newIdx := len(labels[e.Target]) - 1
			nextItem := queueItem{vertex: e.Target, labelIdx: newIdx}
			if !processed[nextItem] {
				queue = append(queue, nextItem)
			}
		}
	}

	return solutions, nil
}

func addVec(a, b []float64) []float64 {
	out := make([]float64, len(a))
	for i := range a {
		out[i] = a[i] + b[i]
	}
	return out
}

// reconstructSolution walks the (parentVertex, parentLabelIndex) chain
// from labels[target][idx] back to the seed label at source, building
// the path and a dense parent vector.
func reconstructSolution(g *MultiObjectiveGraph, labels [][]label, target, idx int) ParetoSolution {
	parent := make([]int, g.N()+1)
	var path []int

	v, i := target, idx
	for {
		path = append([]int{v}, path...)
		cur := labels[v][i]
		if cur.parentVertex == 0 {
			break // seed label: v is the source
		}
		parent[v] = cur.parentVertex
		v, i = cur.parentVertex, cur.parentLabelIdx
	}

	return ParetoSolution{
		Objectives: append([]float64(nil), labels[target][idx].obj...),
		Path:       path,
		Parent:     parent,
	}
}
