// OrderedStore: a combined node+edge store over B-trees, enumerating
// nodes, edges, and neighbors in key order for deterministic output.
package graph

import (
	"iter"

	"github.com/tidwall/btree"
)

// OrderedStore is a NodeEdgeStore whose enumeration order follows a
// caller-supplied ordering of N instead of map iteration order. Nodes(),
// Edges(), and the neighbor iterators are all sorted ascending, so
// ToNodesEdges over a Graph backed by an OrderedStore is deterministic
// without a post-hoc sort.
//
// Adjacency is still forward-only: InNeighbors and InDegree scan every
// adjacency tree, O(V log V + E) per call.
type OrderedStore[N comparable] struct {
	less  func(a, b N) bool
	nodes *btree.BTreeG[orderedEntry[N]]
}

// orderedEntry is one node with its out-adjacency tree.
type orderedEntry[N comparable] struct {
	node     N
	children *btree.BTreeG[N]
}

// NewOrderedStore returns an empty OrderedStore ordered by less, which
// must define a strict total order over node values.
func NewOrderedStore[N comparable](less func(a, b N) bool) *OrderedStore[N] {
	s := &OrderedStore[N]{less: less}
	s.nodes = btree.NewBTreeG(func(a, b orderedEntry[N]) bool {
		return less(a.node, b.node)
	})

	return s
}

// entry looks up the adjacency entry for n.
func (s *OrderedStore[N]) entry(n N) (orderedEntry[N], bool) {
	return s.nodes.Get(orderedEntry[N]{node: n})
}

// ensure returns n's adjacency entry, creating it when missing.
func (s *OrderedStore[N]) ensure(n N) orderedEntry[N] {
	if e, ok := s.entry(n); ok {
		return e
	}
	e := orderedEntry[N]{node: n, children: btree.NewBTreeG(s.less)}
	s.nodes.Set(e)

	return e
}

// Node API

// HasNode reports whether n is registered. O(log V).
func (s *OrderedStore[N]) HasNode(n N) bool {
	_, ok := s.entry(n)
	return ok
}

// NNodes returns the number of registered nodes. O(1).
func (s *OrderedStore[N]) NNodes() int { return s.nodes.Len() }

// Nodes returns a fresh iterator over all nodes in ascending order.
func (s *OrderedStore[N]) Nodes() iter.Seq[N] {
	return func(yield func(N) bool) {
		s.nodes.Scan(func(e orderedEntry[N]) bool {
			return yield(e.node)
		})
	}
}

// AddNode registers n. Idempotent. O(log V).
func (s *OrderedStore[N]) AddNode(n N) { s.ensure(n) }

// DelNode removes n and its outgoing adjacency, failing with
// ErrNodeNotFound when absent. O(log V).
func (s *OrderedStore[N]) DelNode(n N) error {
	if _, ok := s.nodes.Delete(orderedEntry[N]{node: n}); !ok {
		return ErrNodeNotFound
	}

	return nil
}

// Edge API

// HasEdge reports whether the directed edge from→to exists. O(log V + log E).
func (s *OrderedStore[N]) HasEdge(from, to N) bool {
	e, ok := s.entry(from)
	if !ok {
		return false
	}
	_, ok = e.children.Get(to)

	return ok
}

// NEdges returns the total number of edges. O(V).
func (s *OrderedStore[N]) NEdges() int {
	n := 0
	s.nodes.Scan(func(e orderedEntry[N]) bool {
		n += e.children.Len()
		return true
	})

	return n
}

// Edges returns a fresh iterator over all (from, to) pairs, ascending by
// from then to.
func (s *OrderedStore[N]) Edges() iter.Seq2[N, N] {
	return func(yield func(N, N) bool) {
		s.nodes.Scan(func(e orderedEntry[N]) bool {
			more := true
			e.children.Scan(func(to N) bool {
				more = yield(e.node, to)
				return more
			})

			return more
		})
	}
}

// AddEdge inserts the directed edge from→to. Idempotent. The entry for
// from is created as needed (registering from, a side effect of the
// shared structure); to is not registered. O(log V + log E).
func (s *OrderedStore[N]) AddEdge(from, to N) {
	s.ensure(from).children.Set(to)
}

// DelEdge removes the edge from→to, failing with ErrEdgeNotFound when
// absent. O(log V + log E).
func (s *OrderedStore[N]) DelEdge(from, to N) error {
	e, ok := s.entry(from)
	if !ok {
		return ErrEdgeNotFound
	}
	if _, ok = e.children.Delete(to); !ok {
		return ErrEdgeNotFound
	}

	return nil
}

// OutDegree returns the number of out-neighbors of n (0 when unknown).
func (s *OrderedStore[N]) OutDegree(n N) int {
	e, ok := s.entry(n)
	if !ok {
		return 0
	}

	return e.children.Len()
}

// InDegree returns the number of in-neighbors of n. Scans all adjacency
// trees.
func (s *OrderedStore[N]) InDegree(n N) int {
	d := 0
	s.nodes.Scan(func(e orderedEntry[N]) bool {
		if _, ok := e.children.Get(n); ok {
			d++
		}

		return true
	})

	return d
}

// OutNeighbors returns a fresh iterator over the out-neighbors of n in
// ascending order.
func (s *OrderedStore[N]) OutNeighbors(n N) iter.Seq[N] {
	return func(yield func(N) bool) {
		e, ok := s.entry(n)
		if !ok {
			return
		}
		e.children.Scan(yield)
	}
}

// InNeighbors returns a fresh iterator over the in-neighbors of n in
// ascending order. Scans all adjacency trees per full iteration.
func (s *OrderedStore[N]) InNeighbors(n N) iter.Seq[N] {
	return func(yield func(N) bool) {
		s.nodes.Scan(func(e orderedEntry[N]) bool {
			if _, ok := e.children.Get(n); ok {
				return yield(e.node)
			}

			return true
		})
	}
}

var _ NodeEdgeStore[int] = (*OrderedStore[int])(nil)
