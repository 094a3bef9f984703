// SPDX-License-Identifier: MIT

package builder

import (
	"fmt"
	"math/rand"
	"strconv"
)

// defaultConstWeight is the weight of every edge unless a weight
// function is configured.
const defaultConstWeight = int64(1)

// config aggregates all knobs used by constructors.
// It is passed by value to constructors.
type config struct {
	idFn     func(int) string
	rng      *rand.Rand
	weightFn func(*rand.Rand) int64
	random   bool // weightFn consumes rng
	directed bool
}

// Option customizes a constructor by mutating its config before
// construction begins.
type Option func(*config)

func newConfig(opts ...Option) config {
	cfg := config{
		idFn:     vertexID,
		weightFn: func(*rand.Rand) int64 { return defaultConstWeight },
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// vertexID renders an index as "v0", "v1", ….
func vertexID(i int) string {
	return "v" + strconv.Itoa(i)
}

// WithIDScheme sets the vertex ID generator. Panics on nil.
func WithIDScheme(fn func(int) string) Option {
	if fn == nil {
		panic("builder: WithIDScheme(nil)")
	}

	return func(c *config) { c.idFn = fn }
}

// WithRand provides an explicit RNG. Panics on nil.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("builder: WithRand(nil)")
	}

	return func(c *config) { c.rng = r }
}

// WithSeed creates a new deterministic RNG from seed.
func WithSeed(seed int64) Option {
	return func(c *config) { c.rng = rand.New(rand.NewSource(seed)) }
}

// WithDirected emits one arc per edge (low index → high index; for grids
// right and down) instead of mirrored pairs.
func WithDirected() Option {
	return func(c *config) { c.directed = true }
}

// WithConstantWeight gives every edge weight w. Panics if w < 0.
func WithConstantWeight(w int64) Option {
	if w < 0 {
		panic(fmt.Sprintf("builder: WithConstantWeight(%d): weight must be non-negative", w))
	}

	return func(c *config) {
		c.weightFn = func(*rand.Rand) int64 { return w }
		c.random = false
	}
}

// WithRandomWeights draws each edge weight uniformly from [min, max].
// Requires an RNG (WithSeed / WithRand). Panics if min < 0 or max < min.
func WithRandomWeights(min, max int64) Option {
	if min < 0 || max < min {
		panic(fmt.Sprintf("builder: WithRandomWeights: require 0 ≤ min ≤ max, got min=%d, max=%d", min, max))
	}

	return func(c *config) {
		c.weightFn = func(rng *rand.Rand) int64 { return min + rng.Int63n(max-min+1) }
		c.random = true
	}
}

// WithWeightFn draws each edge weight from fn. Requires an RNG
// (WithSeed / WithRand). Panics on nil.
func WithWeightFn(fn func(*rand.Rand) int64) Option {
	if fn == nil {
		panic("builder: WithWeightFn(nil)")
	}

	return func(c *config) {
		c.weightFn = fn
		c.random = true
	}
}
