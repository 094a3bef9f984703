// Package dijkstra computes single-source shortest distances over an
// adjlist.Graph with non-negative arc weights.
//
// Overview:
//
//   - Compute returns the distance table: every vertex reachable from the
//     source mapped to its minimum total arc weight. The source maps to zero.
//     Unreachable vertices are absent from the table, never mapped to a
//     finite sentinel.
//   - Run performs the same search and returns a *Result that additionally
//     carries the finalisation order and, with WithReturnPath, predecessor
//     links for path reconstruction (Result.PathTo).
//   - Vertex identifiers are any comparable type; weights are any integer or
//     floating-point type (adjlist.Weight).
//
// Algorithm:
//
//  1. dist[source] = 0; all other vertices are implicitly +∞.
//  2. The frontier (a binary min-heap) starts with (0, source).
//  3. Pop the smallest entry. If its vertex is already visited the entry is
//     stale and is dropped (lazy deletion, no decrease-key).
//  4. Mark the vertex visited; its distance is final.
//  5. Relax every outgoing arc (v, w): if dist[u]+w < dist[v], update
//     dist[v] and push (dist[v], v).
//  6. Stop when the frontier is empty.
//
// Each vertex moves unseen → frontier → visited exactly once and never back.
// Ties between equal distances pop in heap order; distances do not depend on
// it, reconstructed paths may.
//
// Key features:
//
//   - WithReturnPath: record predecessors.
//   - WithMaxDistance: do not finalise vertices farther than a cap.
//   - WithInfEdgeThreshold: arcs with weight ≥ threshold are impassable.
//   - WithOnVisit: observe every finalised vertex.
//   - WithLogger: debug trace of finalised vertices.
//
// Errors (sentinel):
//
//   - ErrNilGraph:          the graph is nil.
//   - ErrUnknownVertex:     the source is not a key of the graph.
//   - ErrInvalidWeight:     a negative or NaN weight was met during relaxation.
//   - ErrDistanceOverflow:  a reachable vertex has no path whose length fits W.
//   - ErrNoPath:            PathTo on an unreachable vertex.
//   - ErrPathsNotRecorded:  PathTo without WithReturnPath.
//
// All errors are fatal to the call: no partial table is returned.
//
// Complexity:
//
//   - Time:  O((V + E) log E), one heap push per successful relaxation.
//   - Space: O(V + E), the heap may hold one entry per relaxation.
//
// Thread safety:
//
//	Every call owns its distance table, frontier and visited set. The graph is
//	only read, so concurrent calls over the same graph are safe as long as
//	nobody mutates it.
package dijkstra
