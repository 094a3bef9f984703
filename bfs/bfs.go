// SPDX-License-Identifier: MIT

package bfs

import (
	"context"

	"github.com/katalvlaran/lvlpath/adjlist"
)

// queueItem pairs a vertex with its BFS depth.
type queueItem[V comparable] struct {
	id    V
	depth int
}

// walker encapsulates mutable BFS state.
type walker[V comparable, W adjlist.Weight] struct {
	graph adjlist.Graph[V, W]
	opts  Options
	ctx   context.Context
	queue []queueItem[V]
	res   *Result[V]
}

// BFS runs breadth-first search on g starting from start.
// Returns ErrGraphNil or ErrStartVertexNotFound for invalid input,
// ErrOptionViolation for bad options, or the context error on cancellation.
func BFS[V comparable, W adjlist.Weight](g adjlist.Graph[V, W], start V, opts ...Option) (*Result[V], error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if !g.HasVertex(start) {
		return nil, ErrStartVertexNotFound
	}

	n := len(g)
	w := &walker[V, W]{
		graph: g,
		opts:  o,
		ctx:   o.Ctx,
		queue: make([]queueItem[V], 0, n),
		res: &Result[V]{
			Start:  start,
			Order:  make([]V, 0, n),
			Depth:  make(map[V]int, n),
			Parent: make(map[V]V, n),
		},
	}
	w.res.Depth[start] = 0
	w.queue = append(w.queue, queueItem[V]{id: start})

	if err := w.loop(); err != nil {
		return nil, err
	}

	return w.res, nil
}

// Hops is a shorthand returning only the hop-count table of BFS.
func Hops[V comparable, W adjlist.Weight](g adjlist.Graph[V, W], start V) (map[V]int, error) {
	res, err := BFS(g, start)
	if err != nil {
		return nil, err
	}

	return res.Depth, nil
}

// loop processes the queue until empty or cancellation.
func (w *walker[V, W]) loop() error {
	for len(w.queue) > 0 {
		select {
		case <-w.ctx.Done():
			return w.ctx.Err()
		default:
		}

		item := w.queue[0]
		w.queue = w.queue[1:]
		w.res.Order = append(w.res.Order, item.id)

		next := item.depth + 1
		if w.opts.MaxDepth > 0 && next > w.opts.MaxDepth {
			continue
		}
		for _, a := range w.graph[item.id] {
			if _, seen := w.res.Depth[a.To]; seen {
				continue
			}
			w.res.Depth[a.To] = next
			w.res.Parent[a.To] = item.id
			w.queue = append(w.queue, queueItem[V]{id: a.To, depth: next})
		}
	}

	return nil
}
