// Package lvlpath is a small, generic single-source shortest-path toolkit.
//
// Under the hood, everything is organized under a few subpackages:
//
//	adjlist/      generic adjacency-list Graph[V, W], YAML fixtures, weight validation
//	dijkstra/     Dijkstra's algorithm: distance tables, predecessors, limits
//	bfs/          hop counts, the unit-weight baseline for dijkstra
//	builder/      deterministic fixture topologies (path, cycle, grid, random)
//	osmgraph/     road graphs from OpenStreetMap XML
//	cmd/lvlpath/  command-line front end
//
// Quick example:
//
//	g := adjlist.Graph[string, int]{
//	    "A": {{To: "B", Weight: 4}, {To: "C", Weight: 2}},
//	    "B": {{To: "D", Weight: 3}},
//	    "C": {{To: "D", Weight: 1}},
//	}
//	dist, err := dijkstra.Compute(g, "A") // map[A:0 B:4 C:2 D:3]
//
//	go install github.com/katalvlaran/lvlpath/cmd/lvlpath@latest
package lvlpath
