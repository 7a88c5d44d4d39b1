// Package graph type declarations: store interfaces, sentinel errors,
// and construction-time options for the Graph facade.
package graph

import (
	"errors"
	"iter"
)

// Sentinel errors for graph operations.
var (
	// ErrNodeNotFound indicates a delete referenced a non-existent node.
	ErrNodeNotFound = errors.New("graph: node not found")

	// ErrEdgeNotFound indicates a delete referenced a non-existent edge.
	ErrEdgeNotFound = errors.New("graph: edge not found")

	// ErrPropertyNotFound indicates a delete referenced an unset weight.
	ErrPropertyNotFound = errors.New("graph: property not found")

	// ErrMalformedItem indicates a construction item that is neither a
	// node (length 1) nor an edge (length 2).
	ErrMalformedItem = errors.New("graph: item is not a node or an edge")
)

// DefaultWeightKey is the property key under which edge weights are stored
// unless overridden with WithWeightKey.
const DefaultWeightKey = "weight"

// NodeStore tracks node existence and enumeration.
//
// AddNode is idempotent; DelNode fails with ErrNodeNotFound when the node
// is absent (callers needing idempotent delete must check first).
// Nodes returns a fresh, finite iterator on every call.
type NodeStore[N comparable] interface {
	HasNode(n N) bool
	NNodes() int
	Nodes() iter.Seq[N]
	AddNode(n N)
	DelNode(n N) error
}

// EdgeStore tracks directed adjacency between nodes.
//
// AddEdge is idempotent and does not register nodes — endpoint
// registration is the Graph facade's job. DelEdge fails with
// ErrEdgeNotFound when the edge is absent. Edges, OutNeighbors, and
// InNeighbors return fresh, finite iterators on every call.
//
// Implementations are expected to store adjacency in the forward
// direction only; InNeighbors and InDegree may cost O(total adjacency).
type EdgeStore[N comparable] interface {
	HasEdge(from, to N) bool
	NEdges() int
	Edges() iter.Seq2[N, N]
	AddEdge(from, to N)
	DelEdge(from, to N) error
	OutDegree(n N) int
	InDegree(n N) int
	OutNeighbors(n N) iter.Seq[N]
	InNeighbors(n N) iter.Seq[N]
}

// NodeEdgeStore is a combined store backing both the node and edge roles
// with one underlying structure (node existence may be implied by the
// presence of an adjacency entry, including an empty one).
type NodeEdgeStore[N comparable] interface {
	NodeStore[N]
	EdgeStore[N]
}

// PropertyStore holds values keyed by (property key, node tuple). A tuple
// of length 1 addresses a node property, length 2 an edge property; longer
// tuples are permitted. Each property key may additionally carry a
// store-wide default value, reported separately from specific values.
//
// Presence is always explicit: Property and PropertyDefault return a
// (value, ok) pair, so a stored nil is distinguishable from "unset".
// DelProperty and DelPropertyDefault are no-ops when nothing is set.
type PropertyStore[N comparable] interface {
	HasProperty(key string, nodes ...N) bool
	Property(key string, nodes ...N) (any, bool)
	SetProperty(key string, value any, nodes ...N)
	DelProperty(key string, nodes ...N)

	HasPropertyDefault(key string) bool
	PropertyDefault(key string) (any, bool)
	SetPropertyDefault(key string, value any)
	DelPropertyDefault(key string)
}

// Option configures a Graph before creation.
type Option[N comparable] func(*config[N])

// config collects construction-time choices applied by New.
type config[N comparable] struct {
	nodes         NodeStore[N]
	edges         EdgeStore[N]
	props         PropertyStore[N]
	weightKey     string
	defaultWeight float64
	hasDefault    bool
}

// WithNodeStore installs a custom NodeStore implementation.
func WithNodeStore[N comparable](s NodeStore[N]) Option[N] {
	return func(c *config[N]) { c.nodes = s }
}

// WithEdgeStore installs a custom EdgeStore implementation.
func WithEdgeStore[N comparable](s EdgeStore[N]) Option[N] {
	return func(c *config[N]) { c.edges = s }
}

// WithStore installs one combined store for both the node and edge roles.
func WithStore[N comparable](s NodeEdgeStore[N]) Option[N] {
	return func(c *config[N]) {
		c.nodes = s
		c.edges = s
	}
}

// WithPropertyStore installs a custom PropertyStore implementation.
func WithPropertyStore[N comparable](s PropertyStore[N]) Option[N] {
	return func(c *config[N]) { c.props = s }
}

// WithWeightKey overrides the property key under which edge weights live.
func WithWeightKey[N comparable](key string) Option[N] {
	return func(c *config[N]) { c.weightKey = key }
}

// WithDefaultWeight installs w as the weight key's store-wide default, so
// Weight falls back to it for edges that carry no explicit weight.
func WithDefaultWeight[N comparable](w float64) Option[N] {
	return func(c *config[N]) {
		c.defaultWeight = w
		c.hasDefault = true
	}
}
