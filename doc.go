// Package digraph is an in-memory directed-graph library built around
// pluggable storage and a generalized shortest-path search.
//
// 🚀 What is digraph?
//
//	A small, generic, single-process library that brings together:
//		• Pluggable storage: node existence, adjacency, and keyed properties
//		  (including edge weight) can be swapped independently
//		• A Graph facade composing the stores behind one query/mutation API
//		• Shortest paths: a Dijkstra variant generalized to multiple
//		  sources/sinks, node/edge exclusion sets, and an early-termination
//		  acceptance window
//		• Breadth-first reachability iteration
//
// ✨ Why choose digraph?
//
//   - Generic – nodes are any comparable type; no string-ID ceremony
//   - Minimal API – stores are small interfaces, the facade stays thin
//   - Pure computation – no I/O, no goroutines, no hidden deps in hot paths
//   - Deterministic on demand – ordered store backend and sorted serialization
//
// Everything is organized under three subpackages:
//
//	graph/    — NodeStore, EdgeStore, PropertyStore, the Graph facade,
//	            and construction/serialization helpers
//	dijkstra/ — shortest path between node sets with exclusions and
//	            an acceptance window
//	bfs/      — breadth-first reachability visit
//
// Quick ASCII example:
//
//	    A──▶B
//	    │   │
//	    ▼   ▼
//	    C──▶D
//
//	represents four nodes and four directed edges.
//
//	go get github.com/afbarnard/digraph
package digraph
