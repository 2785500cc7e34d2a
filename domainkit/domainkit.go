package domainkit

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/dmypath/dmysssp"
	"github.com/katalvlaran/dmypath/graph"
)

// ErrUnknownVertex indicates a NamedEdge or a lookup referenced a
// domain name that was never declared via the names passed to Build.
var ErrUnknownVertex = errors.New("domainkit: unknown vertex name")

// NamedEdge is a domain-facing edge: its Source/Target are caller
// vocabulary (city names, peer IDs, part numbers), not graph.Graph's
// 1-based vertex indices.
type NamedEdge struct {
	Source string
	Target string
	Weight float64
}

// NamedGraph is the capability interface a domain wrapper exposes: the
// underlying validated graph, and name<->index translation in both
// directions. Any type satisfying this can be handed to SSSPByName.
type NamedGraph interface {
	UnderlyingGraph() *graph.Graph
	VertexIndex(name string) (int, bool)
	VertexName(idx int) (string, bool)
}

// Graph is the one illustrative NamedGraph implementation: a
// graph.Graph plus the two lookup tables Build populates.
type Graph struct {
	g         *graph.Graph
	nameToIdx map[string]int
	idxToName []string // idxToName[i] is the name of vertex i (1-based); slot 0 unused
}

var _ NamedGraph = (*Graph)(nil)

func (ng *Graph) UnderlyingGraph() *graph.Graph { return ng.g }

func (ng *Graph) VertexIndex(name string) (int, bool) {
	idx, ok := ng.nameToIdx[name]
	return idx, ok
}

func (ng *Graph) VertexName(idx int) (string, bool) {
	if idx < 1 || idx >= len(ng.idxToName) {
		return "", false
	}
	return ng.idxToName[idx], true
}

// Build maps domain names to 1-based vertex indices in declaration
// order, then constructs the underlying graph.Graph from edges
// expressed in that vocabulary.
func Build(names []string, edges []NamedEdge) (*Graph, error) {
	nameToIdx := make(map[string]int, len(names))
	idxToName := make([]string, len(names)+1)
	for i, name := range names {
		idx := i + 1
		nameToIdx[name] = idx
		idxToName[idx] = name
	}

	gEdges := make([]graph.Edge, len(edges))
	weights := make([]float64, len(edges))
	for i, e := range edges {
		u, ok := nameToIdx[e.Source]
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownVertex, e.Source)
		}
		v, ok := nameToIdx[e.Target]
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownVertex, e.Target)
		}
		gEdges[i] = graph.Edge{Source: u, Target: v, Index: i}
		weights[i] = e.Weight
	}

	g, err := graph.New(len(names), gEdges, weights)
	if err != nil {
		return nil, err
	}
	return &Graph{g: g, nameToIdx: nameToIdx, idxToName: idxToName}, nil
}

// SSSPByName runs the SSSP kernel from a named source vertex and
// returns distances keyed by domain name rather than index, dropping
// any index VertexName cannot translate back.
func SSSPByName(ng NamedGraph, source string) (map[string]float64, error) {
	s, ok := ng.VertexIndex(source)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownVertex, source)
	}

	dist, err := dmysssp.SSSP(ng.UnderlyingGraph(), s)
	if err != nil {
		return nil, err
	}

	out := make(map[string]float64, len(dist))
	for idx := 1; idx < len(dist); idx++ {
		if name, ok := ng.VertexName(idx); ok {
			out[name] = dist[idx]
		}
	}
	return out, nil
}
