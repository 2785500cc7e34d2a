package dmysssp

// PivotScorer scores a candidate pivot vertex v for select_pivots;
// lower scores sort earlier (are preferred as pivots). The default
// scorer (used when Options.PivotScorer is nil) is distance-only:
// score(v) = dist[v].
type PivotScorer func(v int, dist float64, outDegree int) float64

// Options configures optional behavior of the DMY kernel. The zero
// value runs the base algorithm described in spec.md §4.3.4 exactly.
type Options struct {
	// PivotScorer, if non-nil, overrides the distance-only pivot
	// ordering used by select_pivots.
	PivotScorer PivotScorer
}

// Option is a functional option over Options, following the same
// pattern as dijkstra.Option in the sibling packages this module was
// grown from.
type Option func(*Options)

// WithPivotScorer overrides the pivot scoring function used by
// select_pivots.
func WithPivotScorer(fn PivotScorer) Option {
	return func(o *Options) { o.PivotScorer = fn }
}

// AdvancedPivotScorer selects pivots by
// score(v) = dist[v] - DefaultPivotDegreeWeight*outDegree(v),
// biasing toward low-distance, high-out-degree vertices, per the
// "optional advanced variant" in spec.md §4.3.4.
func AdvancedPivotScorer() Option {
	return WithPivotScorer(func(_ int, dist float64, outDegree int) float64 {
		return dist - DefaultPivotDegreeWeight*float64(outDegree)
	})
}

func defaultOptions() Options {
	return Options{
		PivotScorer: func(_ int, dist float64, _ int) float64 { return dist },
	}
}

func resolveOptions(opts []Option) Options {
	cfg := defaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.PivotScorer == nil {
		cfg.PivotScorer = defaultOptions().PivotScorer
	}
	return cfg
}

// Stats reports the shape and cost of a single SSSP run, as produced
// by Statistics.
type Stats struct {
	NVertices            int
	MEdges               int
	Source               int
	PivotThreshold        int // k at the top level
	PartitionParameter    int // t at the top level
	RuntimeSeconds        float64
	DistancesComputed     int // number of reachable vertices (including source)
	Unreachable           int
	MaxDistance           float64
	AvgDistance           float64
}
