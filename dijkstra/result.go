// SPDX-License-Identifier: MIT

package dijkstra

import (
	"fmt"

	"github.com/katalvlaran/lvlpath/adjlist"
)

// Result is the outcome of Run.
//
//   - Dist:  reachable vertex → shortest distance from Source.
//   - Prev:  reachable vertex → its predecessor on one shortest path.
//     The source has no entry. Nil unless WithReturnPath was given.
//   - Order: vertices in the order their distances became final
//     (non-decreasing distance).
type Result[V comparable, W adjlist.Weight] struct {
	Source V
	Dist   map[V]W
	Prev   map[V]V
	Order  []V
}

// Reachable reports whether v has a finite distance from the source.
func (r *Result[V, W]) Reachable(v V) bool {
	_, ok := r.Dist[v]

	return ok
}

// DistanceTo returns the shortest distance to v and whether v is reachable.
func (r *Result[V, W]) DistanceTo(v V) (W, bool) {
	d, ok := r.Dist[v]

	return d, ok
}

// PathTo reconstructs the vertex sequence Source…dest of one shortest path.
// Returns ErrPathsNotRecorded if the Result was computed without
// WithReturnPath, ErrNoPath if dest is unreachable.
// Complexity: O(path length).
func (r *Result[V, W]) PathTo(dest V) ([]V, error) {
	if r.Prev == nil {
		return nil, ErrPathsNotRecorded
	}
	if !r.Reachable(dest) {
		return nil, fmt.Errorf("%w: %v", ErrNoPath, dest)
	}

	var path []V
	for v := dest; ; {
		path = append(path, v)
		if v == r.Source {
			break
		}
		p, ok := r.Prev[v]
		if !ok {
			return nil, fmt.Errorf("%w: broken predecessor chain at %v", ErrNoPath, v)
		}
		v = p
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, nil
}
