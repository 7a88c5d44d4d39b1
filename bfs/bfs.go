// Package bfs provides breadth-first reachability iteration over a
// graph.Graph.
//
// Visit generates every node reachable from a start node in
// breadth-first order. The queue is seeded with the start node's
// out-neighbors, so the start itself is yielded only when it is
// reachable from itself (through a cycle or a self-edge).
//
// Complexity: O(V + E) time, O(V) space per full iteration.
package bfs

import (
	"iter"

	"github.com/afbarnard/digraph/graph"
)

// Visit returns a lazy, restartable sequence of the nodes reachable from
// start, in breadth-first order. Each restart walks the graph afresh;
// mutating the graph mid-iteration is unsupported.
func Visit[N comparable](g *graph.Graph[N], start N) iter.Seq[N] {
	return func(yield func(N) bool) {
		// Seed with the neighbors of start so start is only yielded when
		// it is reachable from itself.
		var queue []N
		for nbr := range g.OutNeighbors(start) {
			queue = append(queue, nbr)
		}
		visited := make(map[N]struct{})
		for len(queue) > 0 {
			node := queue[0]
			queue = queue[1:]
			if _, seen := visited[node]; seen {
				continue
			}
			if !yield(node) {
				return
			}
			visited[node] = struct{}{}
			for nbr := range g.OutNeighbors(node) {
				if _, seen := visited[nbr]; !seen {
					queue = append(queue, nbr)
				}
			}
		}
	}
}
