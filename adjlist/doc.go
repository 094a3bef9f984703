// Package adjlist provides the generic adjacency-list graph model consumed by
// the lvlpath algorithms.
//
// A Graph is a plain map from vertex to its ordered slice of outgoing arcs:
//
//	g := adjlist.Graph[string, int64]{
//	    "A": {{To: "B", Weight: 4}, {To: "C", Weight: 2}},
//	    "B": {{To: "D", Weight: 3}},
//	    "C": {{To: "D", Weight: 1}},
//	    "D": nil,
//	}
//
// Because Graph is a map, literal graphs built by callers are first-class
// values; the helper methods (AddVertex, AddArc, AddEdge) are conveniences,
// not a required construction path.
//
// Model rules:
//
//   - Vertex identifiers are any comparable type (string, int, osm.NodeID, …).
//   - Weights are any integer or floating-point type (see Weight).
//   - Multi-arcs between the same pair are kept as separate entries, in order.
//   - Self-loops are allowed.
//   - A neighbor that is not a key of the map is a vertex with no outgoing arcs.
//
// Fixtures:
//
//	Decode and Encode read and write string-keyed float64 graphs as YAML
//	documents (gopkg.in/yaml.v3). See yaml.go for the document shape.
//
// Thread safety:
//
//	Graph carries no lock. It is safe for any number of concurrent readers;
//	mutation must be synchronized by the caller.
package adjlist
