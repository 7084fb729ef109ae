// SPDX-License-Identifier: MIT

package bfs_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/dispagp/bfs"
	"github.com/katalvlaran/dispagp/core"
)

// path0123 builds 0-1-2-3 plus an isolated vertex 4.
func path0123(t *testing.T) *core.Graph {
	t.Helper()
	g := core.NewGraph(5)
	require.NoError(t, g.AddEdge(0, 1, 7))
	require.NoError(t, g.AddEdge(1, 2, 7))
	require.NoError(t, g.AddEdge(2, 3, 7))

	return g
}

func TestBFS_Errors(t *testing.T) {
	_, err := bfs.BFS(nil, 0)
	require.ErrorIs(t, err, bfs.ErrGraphNil)

	g := core.NewGraph(2)
	_, err = bfs.BFS(g, 2)
	require.ErrorIs(t, err, bfs.ErrStartVertexNotFound)

	_, err = bfs.Connected(nil)
	require.ErrorIs(t, err, bfs.ErrGraphNil)
}

func TestBFS_DepthsAndParents(t *testing.T) {
	res, err := bfs.BFS(path0123(t), 0)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2, 3}, res.Order)
	assert.Equal(t, []int{0, 1, 2, 3, -1}, res.Depth)
	assert.Equal(t, []int{-1, 0, 1, 2, -1}, res.Parent)
}

func TestBFS_Cancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := bfs.BFS(path0123(t), 0, bfs.WithContext(ctx))
	require.ErrorIs(t, err, context.Canceled)

	_, err = bfs.Connected(path0123(t), bfs.WithContext(ctx))
	require.ErrorIs(t, err, context.Canceled)
}

func TestComponents(t *testing.T) {
	label, count, err := bfs.Components(path0123(t))
	require.NoError(t, err)
	assert.Equal(t, 2, count)
	assert.Equal(t, []int{0, 0, 0, 0, 1}, label)

	ok, err := bfs.Connected(path0123(t))
	require.NoError(t, err)
	assert.False(t, ok)

	ok, err = bfs.Connected(core.NewGraph(1))
	require.NoError(t, err)
	assert.True(t, ok)

	g := path0123(t)
	require.NoError(t, g.AddEdge(3, 4, 1))
	ok, err = bfs.Connected(g)
	require.NoError(t, err)
	assert.True(t, ok)
}
