// Package dijkstra type declarations: options, verdicts, results, and
// sentinel errors for the between-sets shortest-path search.
package dijkstra

import (
	"errors"

	"github.com/charmbracelet/log"

	"github.com/afbarnard/digraph/graph"
)

// Sentinel errors for the search.
var (
	// ErrNilGraph indicates a nil *graph.Graph was passed.
	ErrNilGraph = errors.New("dijkstra: graph is nil")

	// ErrExclusion indicates the exclusion set removed every begin node or
	// every end node. This is a usage error, distinct from the normal
	// "no path" nil result.
	ErrExclusion = errors.New("dijkstra: exclusions removed all begin or all end nodes")
)

// Verdict classifies a candidate goal distance.
type Verdict int

const (
	// TooShort means keep searching; the popped node is not a valid goal
	// yet even if it is an end node.
	TooShort Verdict = -1

	// Accept means the distance is acceptable as a goal distance.
	Accept Verdict = 0

	// TooLong terminates the entire search immediately with no result:
	// frontier distances only increase, so no better answer can follow.
	TooLong Verdict = 1
)

// DistanceFunc computes the distance contributed by traversing the edge
// from→to. It is consulted once per edge expansion; distances must be
// non-negative for the search to be correct.
type DistanceFunc[N comparable] func(g *graph.Graph[N], from, to N) float64

// DistanceCheck judges a candidate distance. The default accepts
// everything.
type DistanceCheck func(distance float64) Verdict

// Result is one found path: the node sequence from a begin node to an
// end node and its total distance (sum of per-edge distances).
type Result[N comparable] struct {
	Path     []N
	Distance float64
}

// Options configures one search invocation.
type Options[N comparable] struct {
	// Distance computes per-edge distances. Default: UnitDistance.
	Distance DistanceFunc[N]

	// ExcludedNodes are treated as absent for this search.
	ExcludedNodes map[N]struct{}

	// ExcludedEdges are directed (from, to) pairs treated as absent for
	// this search.
	ExcludedEdges map[[2]N]struct{}

	// Check judges every popped frontier distance. Default: always Accept.
	Check DistanceCheck

	// Logger receives the non-fatal warning emitted when exclusions
	// overlap some (but not all) begin or end nodes. Default: log.Default().
	Logger *log.Logger
}

// Option configures the search via functional arguments.
type Option[N comparable] func(*Options[N])

// DefaultOptions returns Options with unit distances, no exclusions, an
// always-Accept check, and the process-default logger.
func DefaultOptions[N comparable]() Options[N] {
	return Options[N]{
		Distance: UnitDistance[N],
		Check:    func(float64) Verdict { return Accept },
		Logger:   log.Default(),
	}
}

// UnitDistance charges 1 per edge, making path distance the hop count.
func UnitDistance[N comparable](*graph.Graph[N], N, N) float64 { return 1 }

// EdgeWeight returns a DistanceFunc reading the graph's edge weight,
// with fallback filling in for edges that carry neither an explicit
// weight nor a store-wide default.
func EdgeWeight[N comparable](fallback float64) DistanceFunc[N] {
	return func(g *graph.Graph[N], from, to N) float64 {
		return g.Weight(from, to, fallback)
	}
}

// WithDistanceFunc sets the per-edge distance function.
func WithDistanceFunc[N comparable](fn DistanceFunc[N]) Option[N] {
	return func(o *Options[N]) {
		if fn != nil {
			o.Distance = fn
		}
	}
}

// WithExcludedNodes marks nodes as absent for this search.
func WithExcludedNodes[N comparable](nodes ...N) Option[N] {
	return func(o *Options[N]) {
		if o.ExcludedNodes == nil {
			o.ExcludedNodes = make(map[N]struct{}, len(nodes))
		}
		for _, n := range nodes {
			o.ExcludedNodes[n] = struct{}{}
		}
	}
}

// WithExcludedEdges marks directed (from, to) pairs as absent for this
// search. Undirected connections need both orientations excluded.
func WithExcludedEdges[N comparable](edges ...[2]N) Option[N] {
	return func(o *Options[N]) {
		if o.ExcludedEdges == nil {
			o.ExcludedEdges = make(map[[2]N]struct{}, len(edges))
		}
		for _, e := range edges {
			o.ExcludedEdges[e] = struct{}{}
		}
	}
}

// WithDistanceCheck sets the acceptance-window callback.
func WithDistanceCheck[N comparable](fn DistanceCheck) Option[N] {
	return func(o *Options[N]) {
		if fn != nil {
			o.Check = fn
		}
	}
}

// WithDistanceWindow is a DistanceCheck accepting distances in [lo, hi]:
// below lo is TooShort, above hi is TooLong.
func WithDistanceWindow[N comparable](lo, hi float64) Option[N] {
	return WithDistanceCheck[N](func(d float64) Verdict {
		switch {
		case d < lo:
			return TooShort
		case d > hi:
			return TooLong
		default:
			return Accept
		}
	})
}

// WithLogger overrides the logger used for non-fatal warnings.
func WithLogger[N comparable](l *log.Logger) Option[N] {
	return func(o *Options[N]) {
		if l != nil {
			o.Logger = l
		}
	}
}
