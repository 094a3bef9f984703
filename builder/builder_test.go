// SPDX-License-Identifier: MIT

package builder_test

import (
	"math/rand"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlpath/builder"
)

func TestPath(t *testing.T) {
	g, err := builder.Build(nil, builder.Path(3))
	require.NoError(t, err)
	assert.Equal(t, 3, g.Order())
	assert.Equal(t, 4, g.Size())
	assert.Len(t, g.Arcs("v1"), 2)

	single, err := builder.Build(nil, builder.Path(1))
	require.NoError(t, err)
	assert.True(t, single.HasVertex("v0"))
}

func TestCycle_Directed(t *testing.T) {
	g, err := builder.Build([]builder.Option{builder.WithDirected()}, builder.Cycle(4))
	require.NoError(t, err)
	assert.Equal(t, 4, g.Size())
	assert.Equal(t, "v0", g.Arcs("v3")[0].To)
}

func TestComplete(t *testing.T) {
	g, err := builder.Build([]builder.Option{builder.WithConstantWeight(7)}, builder.Complete(4))
	require.NoError(t, err)
	assert.Equal(t, 12, g.Size())
	for _, a := range g.Arcs("v0") {
		assert.Equal(t, int64(7), a.Weight)
	}
}

func TestGrid(t *testing.T) {
	g, err := builder.Build(nil, builder.Grid(2, 3))
	require.NoError(t, err)
	assert.Equal(t, 6, g.Order())
	// 2 rows × 2 horizontal + 3 vertical = 7 edges, mirrored.
	assert.Equal(t, 14, g.Size())
	assert.True(t, g.HasVertex("1,2"))
}

func TestStar(t *testing.T) {
	g, err := builder.Build(nil, builder.Star(5))
	require.NoError(t, err)
	assert.Equal(t, 5, g.Order())
	assert.Len(t, g.Arcs("Center"), 4)
	assert.Equal(t, 8, g.Size())

	d, err := builder.Build([]builder.Option{builder.WithDirected()}, builder.Star(3))
	require.NoError(t, err)
	assert.Len(t, d.Arcs("Center"), 2)
	assert.Empty(t, d.Arcs("v1"), "directed spokes point outward")

	_, err = builder.Build(nil, builder.Star(1))
	assert.ErrorIs(t, err, builder.ErrTooFewVertices)
}

func TestWheel(t *testing.T) {
	g, err := builder.Build(nil, builder.Wheel(5))
	require.NoError(t, err)
	assert.Equal(t, 5, g.Order())
	assert.Len(t, g.Arcs("Center"), 4)
	assert.Equal(t, 16, g.Size(), "4 rim edges and 4 spokes, mirrored")
	for _, v := range []string{"v0", "v1", "v2", "v3"} {
		assert.Len(t, g.Arcs(v), 3, v)
	}

	_, err = builder.Build(nil, builder.Wheel(3))
	assert.ErrorIs(t, err, builder.ErrTooFewVertices)
}

func TestRandomSparse_Deterministic(t *testing.T) {
	opts := []builder.Option{builder.WithSeed(42), builder.WithRandomWeights(1, 9)}
	a, err := builder.Build(opts, builder.RandomSparse(12, 0.3))
	require.NoError(t, err)
	b, err := builder.Build([]builder.Option{builder.WithSeed(42), builder.WithRandomWeights(1, 9)}, builder.RandomSparse(12, 0.3))
	require.NoError(t, err)

	if diff := cmp.Diff(a, b); diff != "" {
		t.Errorf("same seed produced different graphs (-a +b):\n%s", diff)
	}
	for v, arcs := range a {
		for _, arc := range arcs {
			assert.NotEqual(t, v, arc.To, "RandomSparse must not emit loops")
			assert.GreaterOrEqual(t, arc.Weight, int64(1))
			assert.LessOrEqual(t, arc.Weight, int64(9))
		}
	}
}

func TestRandomSparse_ExtremeProbabilities(t *testing.T) {
	empty, err := builder.Build(nil, builder.RandomSparse(5, 0))
	require.NoError(t, err)
	assert.Equal(t, 0, empty.Size())

	full, err := builder.Build(nil, builder.RandomSparse(5, 1))
	require.NoError(t, err)
	assert.Equal(t, 20, full.Size())
}

func TestBuild_Errors(t *testing.T) {
	_, err := builder.Build(nil, builder.Path(0))
	assert.ErrorIs(t, err, builder.ErrTooFewVertices)

	_, err = builder.Build(nil, builder.Cycle(2))
	assert.ErrorIs(t, err, builder.ErrTooFewVertices)

	_, err = builder.Build(nil, builder.Grid(0, 3))
	assert.ErrorIs(t, err, builder.ErrTooFewVertices)

	_, err = builder.Build(nil, builder.RandomSparse(3, 1.5))
	assert.ErrorIs(t, err, builder.ErrInvalidProbability)

	_, err = builder.Build(nil, builder.RandomSparse(3, 0.5))
	assert.ErrorIs(t, err, builder.ErrNeedRandSource)

	_, err = builder.Build([]builder.Option{builder.WithRandomWeights(1, 2)}, builder.Path(2))
	assert.ErrorIs(t, err, builder.ErrNeedRandSource)

	_, err = builder.Build(nil, nil)
	assert.ErrorIs(t, err, builder.ErrConstructFailed)
}

func TestOptions_Panic(t *testing.T) {
	assert.Panics(t, func() { builder.WithIDScheme(nil) })
	assert.Panics(t, func() { builder.WithRand(nil) })
	assert.Panics(t, func() { builder.WithConstantWeight(-1) })
	assert.Panics(t, func() { builder.WithRandomWeights(5, 1) })
	assert.Panics(t, func() { builder.WithWeightFn(nil) })
}

func TestWithWeightFn(t *testing.T) {
	even := func(r *rand.Rand) int64 { return 2 * r.Int63n(5) }

	_, err := builder.Build([]builder.Option{builder.WithWeightFn(even)}, builder.Path(3))
	require.ErrorIs(t, err, builder.ErrNeedRandSource)

	g, err := builder.Build([]builder.Option{builder.WithSeed(1), builder.WithWeightFn(even)}, builder.Complete(5))
	require.NoError(t, err)
	for _, arcs := range g {
		for _, a := range arcs {
			assert.Zero(t, a.Weight%2)
			assert.Less(t, a.Weight, int64(10))
		}
	}
}

func TestWithIDScheme(t *testing.T) {
	letters := func(i int) string { return string(rune('A' + i)) }
	g, err := builder.Build([]builder.Option{builder.WithIDScheme(letters)}, builder.Path(3))
	require.NoError(t, err)
	assert.True(t, g.HasVertex("C"))
}
