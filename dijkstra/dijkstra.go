// SPDX-License-Identifier: MIT

package dijkstra

import (
	"container/heap"
	"context"
	"fmt"
	"log/slog"

	"github.com/katalvlaran/lvlpath/adjlist"
)

// Compute returns the shortest distance from source to every vertex
// reachable from it in g. Vertices that cannot be reached are absent.
//
// Preconditions and validation (in order):
//  1. g must be non-nil (ErrNilGraph).
//  2. source must be a key of g (ErrUnknownVertex).
//  3. every arc relaxed must carry a non-negative, non-NaN weight
//     (ErrInvalidWeight). Arcs never relaxed are not inspected;
//     use adjlist.Validate for a full pre-scan.
//
// Compute is deterministic: the same graph and source yield the same table.
func Compute[V comparable, W adjlist.Weight](g adjlist.Graph[V, W], source V, opts ...Option[V, W]) (map[V]W, error) {
	res, err := Run(g, source, opts...)
	if err != nil {
		return nil, err
	}

	return res.Dist, nil
}

// Run performs the search described on Compute and returns the full Result.
func Run[V comparable, W adjlist.Weight](g adjlist.Graph[V, W], source V, opts ...Option[V, W]) (*Result[V, W], error) {
	// 1) Build options
	cfg := DefaultOptions[V, W]()
	for _, opt := range opts {
		opt(&cfg)
	}

	// 2) Validate inputs
	if g == nil {
		return nil, ErrNilGraph
	}
	if !g.HasVertex(source) {
		return nil, fmt.Errorf("%w: %v", ErrUnknownVertex, source)
	}

	// 3) Prepare per-call state
	r := &runner[V, W]{
		g:       g,
		options: cfg,
		log:     cfg.Logger,
		dist:    make(map[V]W),
		visited: make(map[V]struct{}),
		pq:      make(frontier[V, W], 0, len(g)),
	}
	if cfg.ReturnPath {
		r.prev = make(map[V]V)
	}

	// 4) Seed and drain the frontier
	r.init(source)
	if err := r.process(); err != nil {
		return nil, err
	}
	if err := r.checkOverflow(); err != nil {
		return nil, err
	}

	return &Result[V, W]{
		Source: source,
		Dist:   r.dist,
		Prev:   r.prev,
		Order:  r.order,
	}, nil
}

// runner holds the mutable state of one search.
type runner[V comparable, W adjlist.Weight] struct {
	g       adjlist.Graph[V, W] // read-only
	options Options[V, W]
	log     *slog.Logger
	dist    map[V]W        // best known distance; final once the vertex is visited
	prev    map[V]V        // predecessor on a shortest path, nil unless ReturnPath
	visited map[V]struct{} // finalised vertices
	order   []V            // finalisation order
	pq      frontier[V, W]

	overflowed []overflow[V, W] // relaxations whose candidate wrapped
}

// overflow records a relaxation d + weight that exceeded the range of W.
type overflow[V comparable, W adjlist.Weight] struct {
	from, to V
	dist     W
	weight   W
}

// checkOverflow reports the first wrapped relaxation whose target was never
// reached another way. Targets reached by a cheaper route are fine.
func (r *runner[V, W]) checkOverflow() error {
	for _, o := range r.overflowed {
		if _, ok := r.dist[o.to]; !ok {
			return fmt.Errorf("%w: %v + %v via edge %v→%v", ErrDistanceOverflow, o.dist, o.weight, o.from, o.to)
		}
	}

	return nil
}

// init records the source at distance zero and pushes it onto the frontier.
func (r *runner[V, W]) init(source V) {
	var zero W
	r.dist[source] = zero
	heap.Init(&r.pq)
	heap.Push(&r.pq, entry[V, W]{id: source, dist: zero})
}

// process pops entries until the frontier drains.
func (r *runner[V, W]) process() error {
	debug := r.log.Enabled(context.Background(), slog.LevelDebug)
	for r.pq.Len() > 0 {
		item := heap.Pop(&r.pq).(entry[V, W])
		u, d := item.id, item.dist

		// Stale entry: u already finalised with a smaller or equal distance.
		if _, done := r.visited[u]; done {
			continue
		}

		r.visited[u] = struct{}{}
		r.order = append(r.order, u)
		if debug {
			r.log.Debug("dijkstra: finalised", "vertex", u, "dist", d)
		}
		if r.options.OnVisit != nil {
			r.options.OnVisit(u, d)
		}

		if err := r.relax(u, d); err != nil {
			return err
		}
	}

	return nil
}

// relax tries to improve every neighbor of u through u, whose final
// distance is d.
func (r *runner[V, W]) relax(u V, d W) error {
	for _, a := range r.g[u] {
		v, w := a.To, a.Weight

		if adjlist.IsInvalidWeight(w) {
			return fmt.Errorf("%w: edge %v→%v weight=%v", ErrInvalidWeight, u, v, w)
		}
		if r.options.HasInfThreshold && w >= r.options.InfEdgeThreshold {
			continue
		}

		if _, done := r.visited[v]; done {
			continue
		}

		cand := d + w
		if cand < d {
			// Wrapped: not an improvement. Fatal only if v ends up unreached.
			// Under a cap the true length is beyond it anyway.
			if !r.options.HasMaxDistance {
				r.overflowed = append(r.overflowed, overflow[V, W]{from: u, to: v, dist: d, weight: w})
			}
			continue
		}
		// Beyond the cap: never entered in the table, so never reported.
		if r.options.HasMaxDistance && cand > r.options.MaxDistance {
			continue
		}
		if cur, seen := r.dist[v]; seen && cand >= cur {
			continue
		}

		r.dist[v] = cand
		if r.prev != nil {
			r.prev[v] = u
		}
		heap.Push(&r.pq, entry[V, W]{id: v, dist: cand})
	}

	return nil
}
