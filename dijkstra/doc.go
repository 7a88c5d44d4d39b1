// Package dijkstra finds shortest paths in a weighted directed graph,
// generalized from the classic single-pair formulation to sets of begin
// and end nodes, node/edge exclusion sets, and an early-termination
// acceptance window.
//
// What
//
//   - BetweenSets(g, begins, ends, opts...) finds a minimum-distance path
//     from any begin node to any end node, pulling neighbors and distances
//     from the Graph on demand; the graph is never mutated.
//   - Between(g, a, b, opts...) is the single-pair convenience wrapper.
//   - Exclusion sets make nodes or directed edges invisible for the
//     duration of one search.
//   - A DistanceCheck callback classifies each candidate distance as
//     TooShort (keep searching, not a valid goal yet), Accept, or TooLong
//     (terminate the whole search immediately — distances only increase,
//     so no better answer can follow).
//
// Results
//
//	A found path is returned as a Result (node sequence plus total
//	distance, the sum of per-edge distances). "No path" is not an error:
//	it is a nil Result with a nil error. Errors are reserved for usage
//	mistakes (nil graph, exclusions that remove every begin or end node).
//
// Algorithm
//
//	Lazy-decrease-key Dijkstra over a min-heap frontier of
//	(distance, node, predecessor) entries, seeded with every begin node at
//	distance 0. Settled nodes form a shortest-path spanning tree mapping
//	node → (distance, predecessor); excluded nodes are pre-settled with no
//	predecessor so they can never be expanded or serve as a goal. Frontier
//	ties are broken by a monotonically increasing insertion counter, never
//	by comparing node values, so nodes need no ordering.
//
// A path here always has at least one edge. A zero-hop path from a node
// to itself is not findable by this formulation: the source is settled at
// distance 0 and never re-expanded. To find a shortest cycle through X,
// search from X to X while excluding the direct edge X→X (if any) — or,
// more generally, run the search from each out-neighbor Y of X to X while
// excluding the edge X→Y.
//
// Complexity (V = |nodes|, E = |edges|)
//
//   - Time:  O((V + E) log V)
//   - Space: O(V + E) (spanning tree plus worst-case frontier)
//
// Usage
//
//	res, err := dijkstra.BetweenSets(g, []string{"A"}, []string{"Z"},
//	    dijkstra.WithDistanceFunc(dijkstra.EdgeWeight[string](1)),
//	    dijkstra.WithExcludedNodes("K"),
//	    dijkstra.WithDistanceWindow(0, 40),
//	)
//	if err != nil {
//	    // ErrNilGraph or ErrExclusion
//	}
//	if res == nil {
//	    // no acceptable path
//	}
package dijkstra
