// SPDX-License-Identifier: MIT

package builder

import (
	"fmt"

	"github.com/katalvlaran/lvlpath/adjlist"
)

// Method tags and minima.
const (
	methodPath         = "Path"
	methodCycle        = "Cycle"
	methodComplete     = "Complete"
	methodGrid         = "Grid"
	methodRandomSparse = "RandomSparse"
	methodStar         = "Star"
	methodWheel        = "Wheel"

	minPathVertices  = 1
	minCycleVertices = 3
	minGridDim       = 1
	minStarVertices  = 2
	minWheelVertices = 4 // rim is a cycle of n-1 ≥ 3

	// centerVertexID is the hub of Star and Wheel, outside the ID scheme.
	centerVertexID = "Center"

	gridIDFmt = "%d,%d"
)

// Path returns a Constructor for the chain v0-v1-…-v(n-1). Requires n ≥ 1.
func Path(n int) Constructor {
	return func(g adjlist.Graph[string, int64], cfg config) error {
		if n < minPathVertices {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodPath, n, minPathVertices, ErrTooFewVertices)
		}
		g.AddVertex(cfg.idFn(0))
		for i := 1; i < n; i++ {
			link(g, cfg, cfg.idFn(i-1), cfg.idFn(i))
		}

		return nil
	}
}

// Cycle returns a Constructor for the ring of n vertices. Requires n ≥ 3.
func Cycle(n int) Constructor {
	return func(g adjlist.Graph[string, int64], cfg config) error {
		if n < minCycleVertices {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodCycle, n, minCycleVertices, ErrTooFewVertices)
		}
		for i := 0; i < n; i++ {
			link(g, cfg, cfg.idFn(i), cfg.idFn((i+1)%n))
		}

		return nil
	}
}

// Complete returns a Constructor connecting every pair i<j. Requires n ≥ 1.
func Complete(n int) Constructor {
	return func(g adjlist.Graph[string, int64], cfg config) error {
		if n < minPathVertices {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodComplete, n, minPathVertices, ErrTooFewVertices)
		}
		for i := 0; i < n; i++ {
			g.AddVertex(cfg.idFn(i))
		}
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				link(g, cfg, cfg.idFn(i), cfg.idFn(j))
			}
		}

		return nil
	}
}

// Grid returns a Constructor for a rows×cols lattice. Vertex IDs use the
// fixed "r,c" scheme; the ID scheme option is ignored. Each cell links to its
// right and bottom neighbors.
func Grid(rows, cols int) Constructor {
	return func(g adjlist.Graph[string, int64], cfg config) error {
		if rows < minGridDim || cols < minGridDim {
			return fmt.Errorf("%s: rows=%d, cols=%d (each must be ≥ %d): %w",
				methodGrid, rows, cols, minGridDim, ErrTooFewVertices)
		}
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				id := fmt.Sprintf(gridIDFmt, r, c)
				g.AddVertex(id)
				if c+1 < cols {
					link(g, cfg, id, fmt.Sprintf(gridIDFmt, r, c+1))
				}
				if r+1 < rows {
					link(g, cfg, id, fmt.Sprintf(gridIDFmt, r+1, c))
				}
			}
		}

		return nil
	}
}

// RandomSparse returns a Constructor sampling each ordered pair (i, j), i≠j,
// as a directed arc with probability p. Requires n ≥ 1, 0 ≤ p ≤ 1, and an
// RNG unless p is 0 or 1.
func RandomSparse(n int, p float64) Constructor {
	return func(g adjlist.Graph[string, int64], cfg config) error {
		if n < minPathVertices {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodRandomSparse, n, minPathVertices, ErrTooFewVertices)
		}
		if p < 0 || p > 1 || p != p {
			return fmt.Errorf("%s: p=%.6f not in [0,1]: %w", methodRandomSparse, p, ErrInvalidProbability)
		}
		if cfg.rng == nil && p > 0 && p < 1 {
			return fmt.Errorf("%s: %w", methodRandomSparse, ErrNeedRandSource)
		}

		for i := 0; i < n; i++ {
			g.AddVertex(cfg.idFn(i))
		}
		for i := 0; i < n; i++ {
			for j := 0; j < n; j++ {
				if i == j {
					continue
				}
				if p < 1 && (p == 0 || cfg.rng.Float64() >= p) {
					continue
				}
				g.AddArc(cfg.idFn(i), cfg.idFn(j), cfg.weightFn(cfg.rng))
			}
		}

		return nil
	}
}

// Star returns a Constructor for a hub "Center" linked to the leaves
// idFn(1)…idFn(n-1). Requires n ≥ 2. Directed stars point outward.
func Star(n int) Constructor {
	return func(g adjlist.Graph[string, int64], cfg config) error {
		if n < minStarVertices {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodStar, n, minStarVertices, ErrTooFewVertices)
		}
		g.AddVertex(centerVertexID)
		for i := 1; i < n; i++ {
			link(g, cfg, centerVertexID, cfg.idFn(i))
		}

		return nil
	}
}

// Wheel returns a Constructor for the rim Cycle(n-1) over idFn(0)…idFn(n-2)
// plus a spoke from "Center" to every rim vertex. Requires n ≥ 4.
func Wheel(n int) Constructor {
	return func(g adjlist.Graph[string, int64], cfg config) error {
		if n < minWheelVertices {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodWheel, n, minWheelVertices, ErrTooFewVertices)
		}
		if err := Cycle(n-1)(g, cfg); err != nil {
			return fmt.Errorf("%s: rim: %w", methodWheel, err)
		}
		g.AddVertex(centerVertexID)
		for i := 0; i < n-1; i++ {
			link(g, cfg, centerVertexID, cfg.idFn(i))
		}

		return nil
	}
}
