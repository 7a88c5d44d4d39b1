// Map-backed store implementations: SetNodeStore, MapEdgeStore, and the
// combined MapStore used as the default Graph backing.
package graph

import "iter"

// SetNodeStore is a NodeStore over a plain membership map.
type SetNodeStore[N comparable] struct {
	nodes map[N]struct{}
}

// NewSetNodeStore returns an empty SetNodeStore.
func NewSetNodeStore[N comparable]() *SetNodeStore[N] {
	return &SetNodeStore[N]{nodes: make(map[N]struct{})}
}

// HasNode reports whether n is registered. O(1).
func (s *SetNodeStore[N]) HasNode(n N) bool {
	_, ok := s.nodes[n]
	return ok
}

// NNodes returns the number of registered nodes. O(1).
func (s *SetNodeStore[N]) NNodes() int { return len(s.nodes) }

// Nodes returns a fresh iterator over all nodes in no particular order.
func (s *SetNodeStore[N]) Nodes() iter.Seq[N] {
	return func(yield func(N) bool) {
		for n := range s.nodes {
			if !yield(n) {
				return
			}
		}
	}
}

// AddNode registers n. Idempotent. O(1).
func (s *SetNodeStore[N]) AddNode(n N) { s.nodes[n] = struct{}{} }

// DelNode removes n, failing with ErrNodeNotFound when absent. O(1).
func (s *SetNodeStore[N]) DelNode(n N) error {
	if _, ok := s.nodes[n]; !ok {
		return ErrNodeNotFound
	}
	delete(s.nodes, n)

	return nil
}

// MapEdgeStore is an EdgeStore over a forward adjacency map
// (from → set of to). Reverse adjacency is not indexed, so InNeighbors
// and InDegree scan every adjacency list: O(V+E) per call.
type MapEdgeStore[N comparable] struct {
	adjacency map[N]map[N]struct{}
}

// NewMapEdgeStore returns an empty MapEdgeStore.
func NewMapEdgeStore[N comparable]() *MapEdgeStore[N] {
	return &MapEdgeStore[N]{adjacency: make(map[N]map[N]struct{})}
}

// HasEdge reports whether the directed edge from→to exists. O(1).
func (s *MapEdgeStore[N]) HasEdge(from, to N) bool {
	children, ok := s.adjacency[from]
	if !ok {
		return false
	}
	_, ok = children[to]

	return ok
}

// NEdges returns the total number of edges. O(V).
func (s *MapEdgeStore[N]) NEdges() int {
	n := 0
	for _, children := range s.adjacency {
		n += len(children)
	}

	return n
}

// Edges returns a fresh iterator over all (from, to) pairs.
func (s *MapEdgeStore[N]) Edges() iter.Seq2[N, N] {
	return func(yield func(N, N) bool) {
		for from, children := range s.adjacency {
			for to := range children {
				if !yield(from, to) {
					return
				}
			}
		}
	}
}

// AddEdge inserts the directed edge from→to. Idempotent. Creates the
// adjacency bucket for from as needed; neither endpoint is registered as
// a node (the Graph facade does that). O(1).
func (s *MapEdgeStore[N]) AddEdge(from, to N) {
	children, ok := s.adjacency[from]
	if !ok {
		children = make(map[N]struct{})
		s.adjacency[from] = children
	}
	children[to] = struct{}{}
}

// DelEdge removes the edge from→to, failing with ErrEdgeNotFound when
// absent. O(1).
func (s *MapEdgeStore[N]) DelEdge(from, to N) error {
	children, ok := s.adjacency[from]
	if !ok {
		return ErrEdgeNotFound
	}
	if _, ok = children[to]; !ok {
		return ErrEdgeNotFound
	}
	delete(children, to)

	return nil
}

// OutDegree returns the number of out-neighbors of n (0 when unknown). O(1).
func (s *MapEdgeStore[N]) OutDegree(n N) int { return len(s.adjacency[n]) }

// InDegree returns the number of in-neighbors of n. O(V+E): scans all
// adjacency lists.
func (s *MapEdgeStore[N]) InDegree(n N) int {
	return scanInDegree(s.adjacency, n)
}

// OutNeighbors returns a fresh iterator over the out-neighbors of n.
func (s *MapEdgeStore[N]) OutNeighbors(n N) iter.Seq[N] {
	return setSeq(s.adjacency[n])
}

// InNeighbors returns a fresh iterator over the in-neighbors of n.
// O(V+E) per full iteration: scans all adjacency lists.
func (s *MapEdgeStore[N]) InNeighbors(n N) iter.Seq[N] {
	return scanInNeighbors(s.adjacency, n)
}

// MapStore is a combined node+edge store over a single adjacency map:
// node existence is the presence of an adjacency entry (possibly empty).
// It is the default backing for Graph. Like MapEdgeStore it indexes only
// forward adjacency, so InNeighbors and InDegree cost O(V+E).
type MapStore[N comparable] struct {
	adjacency map[N]map[N]struct{}
}

// NewMapStore returns an empty MapStore.
func NewMapStore[N comparable]() *MapStore[N] {
	return &MapStore[N]{adjacency: make(map[N]map[N]struct{})}
}

// HasNode reports whether n is registered. O(1).
func (s *MapStore[N]) HasNode(n N) bool {
	_, ok := s.adjacency[n]
	return ok
}

// NNodes returns the number of registered nodes. O(1).
func (s *MapStore[N]) NNodes() int { return len(s.adjacency) }

// Nodes returns a fresh iterator over all nodes in no particular order.
func (s *MapStore[N]) Nodes() iter.Seq[N] {
	return func(yield func(N) bool) {
		for n := range s.adjacency {
			if !yield(n) {
				return
			}
		}
	}
}

// AddNode registers n with an empty adjacency bucket. Idempotent. O(1).
func (s *MapStore[N]) AddNode(n N) {
	if _, ok := s.adjacency[n]; !ok {
		s.adjacency[n] = make(map[N]struct{})
	}
}

// DelNode removes n and its outgoing adjacency, failing with
// ErrNodeNotFound when absent. Incoming edges are not touched here; the
// Graph facade cascades over them before calling DelNode. O(1).
func (s *MapStore[N]) DelNode(n N) error {
	if _, ok := s.adjacency[n]; !ok {
		return ErrNodeNotFound
	}
	delete(s.adjacency, n)

	return nil
}

// HasEdge reports whether the directed edge from→to exists. O(1).
func (s *MapStore[N]) HasEdge(from, to N) bool {
	children, ok := s.adjacency[from]
	if !ok {
		return false
	}
	_, ok = children[to]

	return ok
}

// NEdges returns the total number of edges. O(V).
func (s *MapStore[N]) NEdges() int {
	n := 0
	for _, children := range s.adjacency {
		n += len(children)
	}

	return n
}

// Edges returns a fresh iterator over all (from, to) pairs.
func (s *MapStore[N]) Edges() iter.Seq2[N, N] {
	return func(yield func(N, N) bool) {
		for from, children := range s.adjacency {
			for to := range children {
				if !yield(from, to) {
					return
				}
			}
		}
	}
}

// AddEdge inserts the directed edge from→to. Idempotent. The bucket for
// from is created as needed (which registers from as a node, a side
// effect of sharing one map); to is not registered. O(1).
func (s *MapStore[N]) AddEdge(from, to N) {
	children, ok := s.adjacency[from]
	if !ok {
		children = make(map[N]struct{})
		s.adjacency[from] = children
	}
	children[to] = struct{}{}
}

// DelEdge removes the edge from→to, failing with ErrEdgeNotFound when
// absent. O(1).
func (s *MapStore[N]) DelEdge(from, to N) error {
	children, ok := s.adjacency[from]
	if !ok {
		return ErrEdgeNotFound
	}
	if _, ok = children[to]; !ok {
		return ErrEdgeNotFound
	}
	delete(children, to)

	return nil
}

// OutDegree returns the number of out-neighbors of n (0 when unknown). O(1).
func (s *MapStore[N]) OutDegree(n N) int { return len(s.adjacency[n]) }

// InDegree returns the number of in-neighbors of n. O(V+E).
func (s *MapStore[N]) InDegree(n N) int {
	return scanInDegree(s.adjacency, n)
}

// OutNeighbors returns a fresh iterator over the out-neighbors of n.
func (s *MapStore[N]) OutNeighbors(n N) iter.Seq[N] {
	return setSeq(s.adjacency[n])
}

// InNeighbors returns a fresh iterator over the in-neighbors of n.
// O(V+E) per full iteration.
func (s *MapStore[N]) InNeighbors(n N) iter.Seq[N] {
	return scanInNeighbors(s.adjacency, n)
}

// setSeq adapts a membership map (possibly nil) to a restartable iterator.
func setSeq[N comparable](set map[N]struct{}) iter.Seq[N] {
	return func(yield func(N) bool) {
		for n := range set {
			if !yield(n) {
				return
			}
		}
	}
}

// scanInDegree counts adjacency lists containing n.
func scanInDegree[N comparable](adjacency map[N]map[N]struct{}, n N) int {
	d := 0
	for _, children := range adjacency {
		if _, ok := children[n]; ok {
			d++
		}
	}

	return d
}

// scanInNeighbors yields every parent whose adjacency list contains n.
func scanInNeighbors[N comparable](adjacency map[N]map[N]struct{}, n N) iter.Seq[N] {
	return func(yield func(N) bool) {
		for parent, children := range adjacency {
			if _, ok := children[n]; ok {
				if !yield(parent) {
					return
				}
			}
		}
	}
}

// Interface conformance checks.
var (
	_ NodeStore[int]     = (*SetNodeStore[int])(nil)
	_ EdgeStore[int]     = (*MapEdgeStore[int])(nil)
	_ NodeEdgeStore[int] = (*MapStore[int])(nil)
)
