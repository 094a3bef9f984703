// SPDX-License-Identifier: MIT

package builder

import (
	"fmt"

	"github.com/katalvlaran/lvlpath/adjlist"
)

// Constructor adds a topology to g using the resolved config.
type Constructor func(g adjlist.Graph[string, int64], cfg config) error

// Build creates an empty graph and applies every constructor in order.
// Constructors share the graph, so Build(opts, Path(3), Cycle(3)) overlays
// both topologies on the same vertex IDs.
func Build(opts []Option, cons ...Constructor) (adjlist.Graph[string, int64], error) {
	cfg := newConfig(opts...)
	if cfg.random && cfg.rng == nil {
		return nil, fmt.Errorf("Build: random weights: %w", ErrNeedRandSource)
	}

	g := adjlist.New[string, int64]()
	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("Build: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(g, cfg); err != nil {
			return nil, fmt.Errorf("Build: %w", err)
		}
	}

	return g, nil
}

// link adds u→v, mirrored unless the config is directed.
func link(g adjlist.Graph[string, int64], cfg config, u, v string) {
	w := cfg.weightFn(cfg.rng)
	if cfg.directed {
		g.AddArc(u, v, w)
		return
	}
	g.AddEdge(u, v, w)
}
