// Package bfs provides breadth-first search over an adjlist.Graph,
// returning hop counts (unweighted shortest-path lengths), parent links, and
// visit order.
//
// What
//
//   - Explore vertices in non-decreasing hop count from a start vertex.
//   - Arc weights are ignored: every arc counts as one hop.
//   - Returns a Result containing Order, Depth and Parent.
//   - Honors MaxDepth (d>0) or explicit "no limit" (d==0).
//   - Honors context cancellation between dequeues.
//
// Determinism
//
//	Arcs are scanned in adjacency order, so the visit sequence is fully
//	reproducible for a given graph value.
//
// Relation to dijkstra
//
//	On a graph whose weights are all 1, dijkstra.Compute and Result.Depth
//	agree vertex for vertex; the dijkstra tests rely on this.
//
// Complexity
//
//	Time O(V + E), Space O(V).
package bfs
