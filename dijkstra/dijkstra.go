// Between-sets shortest-path search: lazy-decrease-key Dijkstra over a
// min-heap frontier, generalized to multiple begins/ends, exclusion
// sets, and an acceptance window.
package dijkstra

import (
	"container/heap"
	"fmt"
	"slices"

	"github.com/afbarnard/digraph/graph"
)

// Between finds a shortest path from begin to end. It is shorthand for
// BetweenSets with singleton sets; see BetweenSets for the contract.
//
// Between(g, x, x) returns nil: a path has at least one edge, and the
// source is settled at distance 0 before any cycle can return to it. See
// the package documentation for the shortest-cycle workaround.
func Between[N comparable](g *graph.Graph[N], begin, end N, opts ...Option[N]) (*Result[N], error) {
	return BetweenSets(g, []N{begin}, []N{end}, opts...)
}

// BetweenSets finds a minimum-distance path from any begin node to any
// end node.
//
// Begin/end nodes not present in the graph are silently dropped; if
// either set then becomes empty the result is nil immediately. If the
// excluded-node set removes every remaining begin node or every
// remaining end node, BetweenSets fails with ErrExclusion (a usage
// error, not a normal "no path"); a partial overlap only produces a
// warning on the configured logger and the search proceeds.
//
// Returns (nil, nil) when no acceptable path exists: the frontier was
// exhausted, or the distance check answered TooLong (after which no
// better answer can follow). The graph is only queried, never mutated;
// mutating it concurrently is unsupported.
//
// Complexity: O((V + E) log V) time, O(V + E) space.
func BetweenSets[N comparable](g *graph.Graph[N], begins, ends []N, opts ...Option[N]) (*Result[N], error) {
	// 1) Build options.
	cfg := DefaultOptions[N]()
	for _, opt := range opts {
		opt(&cfg)
	}

	// 2) Validate the graph.
	if g == nil {
		return nil, ErrNilGraph
	}

	// 3) Silently drop begin/end nodes absent from the graph. Either set
	//    becoming empty means no path can exist.
	begins = keepMembers(g, begins)
	ends = keepMembers(g, ends)
	if len(begins) == 0 || len(ends) == 0 {
		return nil, nil
	}

	// 4) Validate the exclusions: removing every begin or every end node
	//    is a caller mistake and fails fast; removing only some is
	//    legitimate and worth a warning.
	if err := checkExcluded(&cfg, "begin", begins); err != nil {
		return nil, err
	}
	if err := checkExcluded(&cfg, "end", ends); err != nil {
		return nil, err
	}

	// 5) Run the search.
	r := &runner[N]{
		g:    g,
		cfg:  &cfg,
		ends: make(map[N]struct{}, len(ends)),
		spst: make(map[N]treeEntry[N]),
	}
	for _, n := range ends {
		r.ends[n] = struct{}{}
	}
	r.init(begins)

	return r.run(), nil
}

// keepMembers filters nodes down to those present in the graph.
func keepMembers[N comparable](g *graph.Graph[N], nodes []N) []N {
	kept := make([]N, 0, len(nodes))
	for _, n := range nodes {
		if g.HasNode(n) {
			kept = append(kept, n)
		}
	}

	return kept
}

// checkExcluded fails with ErrExclusion when the exclusion set covers all
// of nodes, and warns when it covers some of them.
func checkExcluded[N comparable](cfg *Options[N], role string, nodes []N) error {
	if len(cfg.ExcludedNodes) == 0 {
		return nil
	}
	excluded := 0
	for _, n := range nodes {
		if _, ok := cfg.ExcludedNodes[n]; ok {
			excluded++
		}
	}
	if excluded == len(nodes) {
		return fmt.Errorf("%w: every %s node is excluded", ErrExclusion, role)
	}
	if excluded > 0 {
		cfg.Logger.Warn("shortest-path exclusions overlap search terminals",
			"set", role, "excluded", excluded, "total", len(nodes))
	}

	return nil
}

// treeEntry is one settled node in the shortest-path spanning tree:
// its final distance and its predecessor, when it has one. Excluded
// nodes are pre-settled with no predecessor so they are discarded when
// popped and never expanded into.
type treeEntry[N comparable] struct {
	dist    float64
	prev    N
	hasPrev bool
}

// runner holds the mutable state of one search.
type runner[N comparable] struct {
	g    *graph.Graph[N]
	cfg  *Options[N]
	ends map[N]struct{}
	spst map[N]treeEntry[N]
	pq   frontier[N]
	seq  uint64
}

// init pre-settles the excluded nodes and seeds the frontier with every
// begin node at distance 0 and no predecessor.
func (r *runner[N]) init(begins []N) {
	for n := range r.cfg.ExcludedNodes {
		r.spst[n] = treeEntry[N]{}
	}
	heap.Init(&r.pq)
	for _, b := range begins {
		r.push(frontierItem[N]{dist: 0, node: b})
	}
}

// push assigns the next insertion sequence number and pushes the item.
// The sequence number breaks distance ties deterministically without
// ever comparing node values.
func (r *runner[N]) push(it frontierItem[N]) {
	it.seq = r.seq
	r.seq++
	heap.Push(&r.pq, it)
}

// run is the core loop. Each iteration pops the minimum-distance entry,
// judges its distance, settles it, and either returns it as a goal or
// expands its out-neighbors.
func (r *runner[N]) run() *Result[N] {
	var it frontierItem[N]
	for r.pq.Len() > 0 {
		// 1) Pop the minimum-distance entry.
		it = heap.Pop(&r.pq).(frontierItem[N])

		// 2) Judge the distance. TooLong ends the entire search: frontier
		//    distances are non-decreasing, so nothing acceptable remains.
		verdict := r.cfg.Check(it.dist)
		if verdict == TooLong {
			return nil
		}

		// 3) A settled node means this is a stale lazy-decrease-key entry.
		if _, settled := r.spst[it.node]; settled {
			continue
		}

		// 4) Settle: the distance to it.node is now final.
		r.spst[it.node] = treeEntry[N]{dist: it.dist, prev: it.prev, hasPrev: it.hasPrev}

		// 5) Goal test. The entry must have a predecessor: a path has at
		//    least one edge, so a begin node popped at distance 0 is not
		//    its own goal.
		if _, isEnd := r.ends[it.node]; isEnd && verdict == Accept && it.hasPrev {
			return r.reconstruct(it.node, it.dist)
		}

		// 6) Expand out-neighbors that are not settled and whose edge is
		//    not excluded.
		for m := range r.g.OutNeighbors(it.node) {
			if _, settled := r.spst[m]; settled {
				continue
			}
			if _, cut := r.cfg.ExcludedEdges[[2]N{it.node, m}]; cut {
				continue
			}
			r.push(frontierItem[N]{
				dist:    it.dist + r.cfg.Distance(r.g, it.node, m),
				node:    m,
				prev:    it.node,
				hasPrev: true,
			})
		}
	}

	// Frontier exhausted without reaching an acceptable end node.
	return nil
}

// reconstruct walks the spanning tree's predecessor chain from goal back
// to a begin node and returns the reversed path.
func (r *runner[N]) reconstruct(goal N, dist float64) *Result[N] {
	path := []N{goal}
	cur := goal
	for {
		e := r.spst[cur]
		if !e.hasPrev {
			break
		}
		cur = e.prev
		path = append(path, cur)
	}
	slices.Reverse(path)

	return &Result[N]{Path: path, Distance: dist}
}

// frontierItem is one frontier candidate: a node, its tentative distance,
// its predecessor (when any), and the insertion sequence number used as a
// tie-break.
type frontierItem[N comparable] struct {
	dist    float64
	seq     uint64
	node    N
	prev    N
	hasPrev bool
}

// frontier is a min-heap of frontierItem ordered by distance, then by
// insertion sequence. The lazy-decrease-key pattern pushes duplicates and
// discards stale entries when popped.
type frontier[N comparable] []frontierItem[N]

func (f frontier[N]) Len() int { return len(f) }

func (f frontier[N]) Less(i, j int) bool {
	if f[i].dist != f[j].dist {
		return f[i].dist < f[j].dist
	}

	return f[i].seq < f[j].seq
}

func (f frontier[N]) Swap(i, j int) { f[i], f[j] = f[j], f[i] }

func (f *frontier[N]) Push(x any) { *f = append(*f, x.(frontierItem[N])) }

func (f *frontier[N]) Pop() any {
	old := *f
	n := len(old)
	it := old[n-1]
	*f = old[:n-1]

	return it
}
