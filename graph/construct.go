// Bulk construction from node/edge items and lazy serialization back to
// them, with optional globally sorted order for deterministic output.
package graph

import (
	"fmt"
	"iter"
	"slices"
)

// Element is one serialized graph item: a node (Nodes of length 1) or an
// edge (length 2), optionally carrying the edge's effective weight.
// HasWeight distinguishes a real weight from the zero value.
type Element[N comparable] struct {
	Nodes     []N
	Weight    float64
	HasWeight bool
}

// FromNodesEdges builds a Graph from items where length 1 means a node
// and length 2 means an edge (endpoints are registered automatically).
// Any other length fails with ErrMalformedItem. Options are passed
// through to New.
func FromNodesEdges[N comparable](items [][]N, opts ...Option[N]) (*Graph[N], error) {
	g := New(opts...)
	for i, item := range items {
		switch len(item) {
		case 1:
			g.AddNode(item[0])
		case 2:
			g.AddEdge(item[0], item[1])
		default:
			return nil, fmt.Errorf("%w: item %d has %d nodes", ErrMalformedItem, i, len(item))
		}
	}

	return g, nil
}

// FromNodesEdgesWeights builds a Graph from Elements, setting each
// weighted edge's weight. Element arity is validated like FromNodesEdges.
func FromNodesEdgesWeights[N comparable](items []Element[N], opts ...Option[N]) (*Graph[N], error) {
	g := New(opts...)
	for i, item := range items {
		switch len(item.Nodes) {
		case 1:
			g.AddNode(item.Nodes[0])
		case 2:
			if item.HasWeight {
				g.AddEdge(item.Nodes[0], item.Nodes[1], item.Weight)
			} else {
				g.AddEdge(item.Nodes[0], item.Nodes[1])
			}
		default:
			return nil, fmt.Errorf("%w: item %d has %d nodes", ErrMalformedItem, i, len(item.Nodes))
		}
	}

	return g, nil
}

// ToNodesEdges returns a lazy, finite, restartable sequence of all nodes
// (length-1 items) followed by all edges (length-2 items), in store
// order. Feeding the collected sequence back through FromNodesEdges
// reconstructs a graph with identical node and edge sets.
func (g *Graph[N]) ToNodesEdges() iter.Seq[[]N] {
	return func(yield func([]N) bool) {
		for n := range g.nodes.Nodes() {
			if !yield([]N{n}) {
				return
			}
		}
		for from, to := range g.edges.Edges() {
			if !yield([]N{from, to}) {
				return
			}
		}
	}
}

// ToNodesEdgesSorted is ToNodesEdges with nodes and edges each globally
// sorted by cmp (edges lexicographically by endpoints). Sorting
// materializes the node and edge sets on each restart, reflecting the
// graph's state at that time.
func (g *Graph[N]) ToNodesEdgesSorted(cmp func(a, b N) int) iter.Seq[[]N] {
	return func(yield func([]N) bool) {
		for _, n := range g.sortedNodes(cmp) {
			if !yield([]N{n}) {
				return
			}
		}
		for _, e := range g.sortedEdges(cmp) {
			if !yield([]N{e[0], e[1]}) {
				return
			}
		}
	}
}

// ToNodesEdgesWeights returns a lazy, finite, restartable sequence of all
// nodes then all edges as Elements, each edge carrying its effective
// weight (explicit value or store-wide default) when one exists.
func (g *Graph[N]) ToNodesEdgesWeights() iter.Seq[Element[N]] {
	return func(yield func(Element[N]) bool) {
		for n := range g.nodes.Nodes() {
			if !yield(Element[N]{Nodes: []N{n}}) {
				return
			}
		}
		for from, to := range g.edges.Edges() {
			if !yield(g.edgeElement(from, to)) {
				return
			}
		}
	}
}

// ToNodesEdgesWeightsSorted is ToNodesEdgesWeights with nodes and edges
// each globally sorted by cmp.
func (g *Graph[N]) ToNodesEdgesWeightsSorted(cmp func(a, b N) int) iter.Seq[Element[N]] {
	return func(yield func(Element[N]) bool) {
		for _, n := range g.sortedNodes(cmp) {
			if !yield(Element[N]{Nodes: []N{n}}) {
				return
			}
		}
		for _, e := range g.sortedEdges(cmp) {
			if !yield(g.edgeElement(e[0], e[1])) {
				return
			}
		}
	}
}

// EdgesWeights returns a fresh iterator over all edges as Elements with
// their effective weights.
func (g *Graph[N]) EdgesWeights() iter.Seq[Element[N]] {
	return func(yield func(Element[N]) bool) {
		for from, to := range g.edges.Edges() {
			if !yield(g.edgeElement(from, to)) {
				return
			}
		}
	}
}

// edgeElement packages one edge with its effective weight, if any.
func (g *Graph[N]) edgeElement(from, to N) Element[N] {
	e := Element[N]{Nodes: []N{from, to}}
	if w, ok := g.weightOK(from, to); ok {
		e.Weight = w
		e.HasWeight = true
	}

	return e
}

// sortedNodes materializes the node set sorted by cmp.
func (g *Graph[N]) sortedNodes(cmp func(a, b N) int) []N {
	nodes := slices.Collect(g.nodes.Nodes())
	slices.SortFunc(nodes, cmp)

	return nodes
}

// sortedEdges materializes the edge set sorted lexicographically by cmp
// over (from, to).
func (g *Graph[N]) sortedEdges(cmp func(a, b N) int) [][2]N {
	var edges [][2]N
	for from, to := range g.edges.Edges() {
		edges = append(edges, [2]N{from, to})
	}
	slices.SortFunc(edges, func(a, b [2]N) int {
		if c := cmp(a[0], b[0]); c != 0 {
			return c
		}

		return cmp(a[1], b[1])
	})

	return edges
}
