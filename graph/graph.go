// The Graph facade: composes one NodeStore, one EdgeStore, and one
// PropertyStore behind a uniform query/mutation API, and designates one
// property key as edge weight.
package graph

import "iter"

// Graph is a directed graph over nodes of any comparable type N.
//
// Endpoints of an edge are always registered nodes, and deletes cascade:
// DelNode removes every incident edge (each through DelEdge, which drops
// the edge's weight first) before removing the node itself.
//
// Weights are float64 values stored in the property store under the
// graph's weight key; any other property travels the same store under
// its own key.
type Graph[N comparable] struct {
	nodes     NodeStore[N]
	edges     EdgeStore[N]
	props     PropertyStore[N]
	weightKey string
}

// New creates a Graph with the given options. When neither a node store
// nor an edge store is supplied, both roles are backed by one shared
// MapStore; a missing property store defaults to MapPropertyStore. A
// default weight installed with WithDefaultWeight becomes the weight
// key's store-wide default.
func New[N comparable](opts ...Option[N]) *Graph[N] {
	cfg := config[N]{weightKey: DefaultWeightKey}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.nodes == nil && cfg.edges == nil {
		shared := NewMapStore[N]()
		cfg.nodes = shared
		cfg.edges = shared
	}
	if cfg.nodes == nil {
		cfg.nodes = NewSetNodeStore[N]()
	}
	if cfg.edges == nil {
		cfg.edges = NewMapEdgeStore[N]()
	}
	if cfg.props == nil {
		cfg.props = NewMapPropertyStore[N]()
	}

	g := &Graph[N]{
		nodes:     cfg.nodes,
		edges:     cfg.edges,
		props:     cfg.props,
		weightKey: cfg.weightKey,
	}
	if cfg.hasDefault {
		g.props.SetPropertyDefault(g.weightKey, cfg.defaultWeight)
	}

	return g
}

// WeightKey returns the property key under which edge weights are stored.
func (g *Graph[N]) WeightKey() string { return g.weightKey }

// Node API

// HasNode reports whether n is registered.
func (g *Graph[N]) HasNode(n N) bool { return g.nodes.HasNode(n) }

// NNodes returns the number of registered nodes.
func (g *Graph[N]) NNodes() int { return g.nodes.NNodes() }

// Nodes returns a fresh iterator over all nodes.
func (g *Graph[N]) Nodes() iter.Seq[N] { return g.nodes.Nodes() }

// AddNode registers n. Idempotent.
func (g *Graph[N]) AddNode(n N) { g.nodes.AddNode(n) }

// AddNodes registers every given node.
func (g *Graph[N]) AddNodes(ns ...N) {
	for _, n := range ns {
		g.nodes.AddNode(n)
	}
}

// DelNode deletes n after cascading over its incident edges: every
// in-edge and out-edge is removed through DelEdge (dropping edge weights
// first), then the node itself. Fails with ErrNodeNotFound when n is
// absent. Costs O(V+E) through the in-neighbor scan.
func (g *Graph[N]) DelNode(n N) error {
	// Materialize neighbor sets before mutating the adjacency under them.
	var ins, outs []N
	for parent := range g.edges.InNeighbors(n) {
		ins = append(ins, parent)
	}
	for child := range g.edges.OutNeighbors(n) {
		outs = append(outs, child)
	}
	for _, parent := range ins {
		// A self-edge appears among both the ins and the outs; the out
		// loop deletes it exactly once.
		if parent == n {
			continue
		}
		if err := g.DelEdge(parent, n); err != nil {
			return err
		}
	}
	for _, child := range outs {
		if err := g.DelEdge(n, child); err != nil {
			return err
		}
	}

	return g.nodes.DelNode(n)
}

// DelNodes deletes every given node, stopping at the first failure.
func (g *Graph[N]) DelNodes(ns ...N) error {
	for _, n := range ns {
		if err := g.DelNode(n); err != nil {
			return err
		}
	}

	return nil
}

// Edge API

// HasEdge reports whether the directed edge from→to exists.
func (g *Graph[N]) HasEdge(from, to N) bool { return g.edges.HasEdge(from, to) }

// NEdges returns the total number of edges.
func (g *Graph[N]) NEdges() int { return g.edges.NEdges() }

// Edges returns a fresh iterator over all (from, to) pairs.
func (g *Graph[N]) Edges() iter.Seq2[N, N] { return g.edges.Edges() }

// AddEdge registers both endpoints, then inserts the edge from→to.
// Idempotent. A weight is set only when explicitly supplied (at most one
// value is honored); omitting it leaves any existing weight untouched.
func (g *Graph[N]) AddEdge(from, to N, weight ...float64) {
	g.nodes.AddNode(from)
	g.nodes.AddNode(to)
	g.edges.AddEdge(from, to)
	if len(weight) > 0 {
		g.props.SetProperty(g.weightKey, weight[0], from, to)
	}
}

// AddEdges inserts every given (from, to) pair.
func (g *Graph[N]) AddEdges(pairs ...[2]N) {
	for _, p := range pairs {
		g.AddEdge(p[0], p[1])
	}
}

// DelEdge removes the edge from→to, deleting its weight first. Fails
// with ErrEdgeNotFound when the edge is absent.
func (g *Graph[N]) DelEdge(from, to N) error {
	if g.HasWeight(from, to) {
		g.props.DelProperty(g.weightKey, from, to)
	}

	return g.edges.DelEdge(from, to)
}

// DelEdges removes every given (from, to) pair, stopping at the first
// failure.
func (g *Graph[N]) DelEdges(pairs ...[2]N) error {
	for _, p := range pairs {
		if err := g.DelEdge(p[0], p[1]); err != nil {
			return err
		}
	}

	return nil
}

// Adjacency API

// OutDegree returns the number of out-neighbors of n.
func (g *Graph[N]) OutDegree(n N) int { return g.edges.OutDegree(n) }

// InDegree returns the number of in-neighbors of n. O(V+E) with the
// default stores (forward-only adjacency).
func (g *Graph[N]) InDegree(n N) int { return g.edges.InDegree(n) }

// OutNeighbors returns a fresh iterator over the out-neighbors of n.
func (g *Graph[N]) OutNeighbors(n N) iter.Seq[N] { return g.edges.OutNeighbors(n) }

// InNeighbors returns a fresh iterator over the in-neighbors of n.
// O(V+E) per full iteration with the default stores.
func (g *Graph[N]) InNeighbors(n N) iter.Seq[N] { return g.edges.InNeighbors(n) }

// OutNeighborsWeights returns a fresh iterator over (neighbor, weight)
// pairs for the out-edges of n, with def filling in for unweighted edges.
func (g *Graph[N]) OutNeighborsWeights(n N, def float64) iter.Seq2[N, float64] {
	return func(yield func(N, float64) bool) {
		for nbr := range g.edges.OutNeighbors(n) {
			if !yield(nbr, g.Weight(n, nbr, def)) {
				return
			}
		}
	}
}

// InNeighborsWeights returns a fresh iterator over (neighbor, weight)
// pairs for the in-edges of n, with def filling in for unweighted edges.
func (g *Graph[N]) InNeighborsWeights(n N, def float64) iter.Seq2[N, float64] {
	return func(yield func(N, float64) bool) {
		for nbr := range g.edges.InNeighbors(n) {
			if !yield(nbr, g.Weight(nbr, n, def)) {
				return
			}
		}
	}
}

// Weight API

// HasWeight reports whether the edge from→to carries an explicit weight
// (the store-wide default does not count).
func (g *Graph[N]) HasWeight(from, to N) bool {
	return g.props.HasProperty(g.weightKey, from, to)
}

// Weight returns the weight of the edge from→to: the explicit value if
// set, else the weight key's store-wide default, else def.
func (g *Graph[N]) Weight(from, to N, def float64) float64 {
	if w, ok := g.weightOK(from, to); ok {
		return w
	}

	return def
}

// weightOK resolves the effective weight of from→to through the explicit
// value then the store-wide default, reporting presence.
func (g *Graph[N]) weightOK(from, to N) (float64, bool) {
	v, ok := g.props.Property(g.weightKey, from, to)
	if !ok {
		v, ok = g.props.PropertyDefault(g.weightKey)
	}
	if !ok {
		return 0, false
	}
	w, ok := v.(float64)

	return w, ok
}

// SetWeight sets the weight of the edge from→to, inserting the edge
// first (and registering its endpoints) when it does not exist yet.
func (g *Graph[N]) SetWeight(from, to N, w float64) {
	if !g.HasEdge(from, to) {
		g.AddEdge(from, to)
	}
	g.props.SetProperty(g.weightKey, w, from, to)
}

// DelWeight removes the explicit weight of the edge from→to, failing
// with ErrPropertyNotFound when none is set.
func (g *Graph[N]) DelWeight(from, to N) error {
	if !g.HasWeight(from, to) {
		return ErrPropertyNotFound
	}
	g.props.DelProperty(g.weightKey, from, to)

	return nil
}

// Property API

// HasProperty reports whether a specific value is set for (key, nodes).
func (g *Graph[N]) HasProperty(key string, nodes ...N) bool {
	return g.props.HasProperty(key, nodes...)
}

// Property returns the value for (key, nodes): the specific value if
// set, else key's store-wide default if one is set, else def.
func (g *Graph[N]) Property(key string, def any, nodes ...N) any {
	if v, ok := g.props.Property(key, nodes...); ok {
		return v
	}
	if v, ok := g.props.PropertyDefault(key); ok {
		return v
	}

	return def
}

// SetProperty sets the value for (key, nodes).
func (g *Graph[N]) SetProperty(key string, value any, nodes ...N) {
	g.props.SetProperty(key, value, nodes...)
}

// DelProperty clears the value for (key, nodes). No-op when absent.
func (g *Graph[N]) DelProperty(key string, nodes ...N) {
	g.props.DelProperty(key, nodes...)
}

// HasPropertyDefault reports whether key carries a store-wide default.
func (g *Graph[N]) HasPropertyDefault(key string) bool {
	return g.props.HasPropertyDefault(key)
}

// PropertyDefault returns key's store-wide default, if one is set.
func (g *Graph[N]) PropertyDefault(key string) (any, bool) {
	return g.props.PropertyDefault(key)
}

// SetPropertyDefault installs value as key's store-wide default.
func (g *Graph[N]) SetPropertyDefault(key string, value any) {
	g.props.SetPropertyDefault(key, value)
}

// DelPropertyDefault clears key's store-wide default. No-op when absent.
func (g *Graph[N]) DelPropertyDefault(key string) {
	g.props.DelPropertyDefault(key)
}

// Path API

// HasPath reports whether nodes form a path in the graph: the first node
// exists and every consecutive pair is an edge. The empty sequence is a
// path in every graph. With closed, the edge from the last node back to
// the first must exist as well.
func (g *Graph[N]) HasPath(nodes []N, closed bool) bool {
	if len(nodes) == 0 {
		return true
	}
	if !g.HasNode(nodes[0]) {
		return false
	}
	for i := 1; i < len(nodes); i++ {
		if !g.HasEdge(nodes[i-1], nodes[i]) {
			return false
		}
	}
	if closed {
		return g.HasEdge(nodes[len(nodes)-1], nodes[0])
	}

	return true
}

// HasCycle reports whether nodes form a closed path in the graph.
func (g *Graph[N]) HasCycle(nodes []N) bool { return g.HasPath(nodes, true) }

// AddPath inserts an edge between every consecutive pair of nodes. With
// closed, an edge from the last node back to the first is added as well
// (for a single node this is a self-edge).
func (g *Graph[N]) AddPath(nodes []N, closed bool) {
	if len(nodes) == 0 {
		return
	}
	for i := 1; i < len(nodes); i++ {
		g.AddEdge(nodes[i-1], nodes[i])
	}
	if closed {
		g.AddEdge(nodes[len(nodes)-1], nodes[0])
	}
}

// DelPath deletes every node on the path (cascading over incident edges
// as DelNode does), stopping at the first failure.
func (g *Graph[N]) DelPath(nodes []N) error { return g.DelNodes(nodes...) }
