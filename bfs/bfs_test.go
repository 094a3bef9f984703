// SPDX-License-Identifier: MIT

package bfs_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlpath/adjlist"
	"github.com/katalvlaran/lvlpath/bfs"
)

func TestBFS_Errors(t *testing.T) {
	_, err := bfs.BFS[string, int](nil, "A")
	assert.ErrorIs(t, err, bfs.ErrGraphNil)

	g := adjlist.Graph[string, int]{"A": nil}
	_, err = bfs.BFS(g, "missing")
	assert.ErrorIs(t, err, bfs.ErrStartVertexNotFound)

	_, err = bfs.BFS(g, "A", bfs.WithMaxDepth(-1))
	assert.ErrorIs(t, err, bfs.ErrOptionViolation)
}

func TestBFS_HopsIgnoreWeights(t *testing.T) {
	// A→B(100)→D, A→C(1)→E(1)→D: D is two hops away whatever the weights.
	g := adjlist.New[string, int]()
	g.AddArc("A", "B", 100)
	g.AddArc("B", "D", 100)
	g.AddArc("A", "C", 1)
	g.AddArc("C", "E", 1)
	g.AddArc("E", "D", 1)
	g.AddVertex("Z")

	hops, err := bfs.Hops(g, "A")
	require.NoError(t, err)
	assert.Equal(t, map[string]int{"A": 0, "B": 1, "C": 1, "D": 2, "E": 2}, hops)
}

func TestBFS_OrderAndPath(t *testing.T) {
	g := adjlist.New[int, int]()
	g.AddEdge(0, 1, 1)
	g.AddEdge(1, 2, 1)
	g.AddEdge(2, 3, 1)

	res, err := bfs.BFS(g, 0)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2, 3}, res.Order)

	path, err := res.PathTo(3)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2, 3}, path)

	_, err = res.PathTo(9)
	assert.Error(t, err)
}

func TestBFS_MaxDepth(t *testing.T) {
	g := adjlist.New[int, int]()
	g.AddArc(0, 1, 1)
	g.AddArc(1, 2, 1)
	g.AddArc(2, 3, 1)

	res, err := bfs.BFS(g, 0, bfs.WithMaxDepth(2))
	require.NoError(t, err)
	assert.Equal(t, map[int]int{0: 0, 1: 1, 2: 2}, res.Depth)
}

func TestBFS_ContextCancelled(t *testing.T) {
	g := adjlist.Graph[string, int]{"A": nil}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := bfs.BFS(g, "A", bfs.WithContext(ctx))
	assert.ErrorIs(t, err, context.Canceled)
}
