// Package graph provides a directed graph assembled from three pluggable
// stores — node existence, adjacency, and keyed properties — behind a thin
// Graph facade.
//
// What
//
//   - NodeStore: existence and enumeration of nodes.
//   - EdgeStore: directed adjacency (out-neighbors, in-neighbors, degrees).
//   - PropertyStore: values keyed by (property key, node tuple); a tuple of
//     length 1 addresses a node, length 2 an edge, and longer tuples are
//     allowed. Each property key may carry a store-wide default.
//   - Graph: composes one NodeStore, one EdgeStore, and one PropertyStore,
//     and designates one property key (default "weight") as edge weight.
//   - FromNodesEdges / ToNodesEdges: structural construction and
//     serialization as a sequence of nodes then edges.
//
// Nodes are any comparable type. Edges are ordered pairs; at most one edge
// exists per ordered pair, and undirected connections are modeled as two
// directed edges. Stores are chosen at construction; the default backing is
// MapStore, a combined node+edge store over a single adjacency map.
//
// Invariants
//
//   - An edge's endpoints are always registered nodes: AddEdge registers
//     both endpoints before inserting the edge.
//   - DelNode cascades: every incident in- and out-edge is deleted (each
//     through DelEdge, which drops the edge weight first) before the node
//     itself is removed.
//   - Adds are idempotent; deletes of absent nodes, edges, or weights fail
//     with ErrNodeNotFound, ErrEdgeNotFound, or ErrPropertyNotFound.
//
// Performance
//
//	Adjacency is stored in the forward direction only. InNeighbors and
//	InDegree therefore scan all adjacency lists — O(V+E) per call. This is
//	an accepted simplicity/memory trade-off, not a defect; keep it in mind
//	when cascading deletes over high-degree graphs.
//
// Concurrency
//
//	Entirely single-threaded and synchronous: all operations are pure
//	computation over in-memory maps. Mutating a Graph while iterating or
//	searching over it is unsupported.
//
// Usage
//
//	g := graph.New(graph.WithDefaultWeight[string](1))
//	g.AddEdge("A", "B", 2)
//	g.AddEdge("B", "C")          // weight omitted: falls back to default
//	w := g.Weight("B", "C", 0)   // 1 (the installed default)
//
//	for item := range g.ToNodesEdges() {
//	    // len(item) == 1: node; len(item) == 2: edge
//	}
package graph
