// SPDX-License-Identifier: MIT

package adjlist

import (
	"errors"

	"golang.org/x/exp/constraints"
)

// Sentinel errors for adjlist operations.
var (
	// ErrNegativeWeight indicates an arc carries a negative (or NaN) weight.
	ErrNegativeWeight = errors.New("adjlist: negative edge weight")

	// ErrEmptyVertexID indicates a fixture edge or vertex with an empty ID.
	ErrEmptyVertexID = errors.New("adjlist: vertex ID is empty")

	// ErrMalformedDocument indicates the fixture could not be parsed as YAML.
	ErrMalformedDocument = errors.New("adjlist: malformed graph document")
)

// Weight is the set of numeric types usable as arc weights.
type Weight interface {
	constraints.Integer | constraints.Float
}

// Arc is a single outgoing adjacency entry: the neighbor and the cost of
// reaching it.
type Arc[V comparable, W Weight] struct {
	// To is the neighbor vertex.
	To V

	// Weight is the cost of traversing the arc.
	Weight W
}

// Graph maps every vertex to the ordered slice of its outgoing arcs.
type Graph[V comparable, W Weight] map[V][]Arc[V, W]

// New returns an empty graph.
func New[V comparable, W Weight]() Graph[V, W] {
	return make(Graph[V, W])
}
