// Package builder generates deterministic fixture graphs for tests,
// benchmarks and examples of the lvlpath algorithms.
//
// Every constructor produces an adjlist.Graph[string, int64]:
//
//   - Path(n):            v0-v1-…-v(n-1)
//   - Cycle(n):           Path(n) plus the closing edge v(n-1)-v0
//   - Complete(n):        every unordered pair connected
//   - Grid(rows, cols):   4-neighborhood lattice with IDs "r,c"
//   - RandomSparse(n, p): each ordered pair (i≠j) becomes an arc with probability p
//
// Topologies are undirected (mirrored arcs) unless WithDirected is given;
// RandomSparse is always directed.
//
// Determinism:
//
//	Vertices are added in index order and edges in a fixed trial order, so a
//	fixed seed (WithSeed) reproduces the same graph, weight for weight.
//
// Errors:
//
//	ErrTooFewVertices, ErrInvalidProbability, ErrNeedRandSource. Option
//	constructors panic on meaningless values, constructors never panic.
package builder
