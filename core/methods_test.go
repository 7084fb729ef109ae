// SPDX-License-Identifier: MIT
// Package core_test verifies core.Graph method-level contracts.

package core_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/dispagp/core"
)

func TestGraph_AddEdgeValidation(t *testing.T) {
	g := core.NewGraph(3)
	require.ErrorIs(t, g.AddEdge(0, 3, 1), core.ErrVertexOutOfRange)
	require.ErrorIs(t, g.AddEdge(-1, 0, 1), core.ErrVertexOutOfRange)
	require.ErrorIs(t, g.AddEdge(1, 1, 1), core.ErrLoopNotAllowed)
	require.ErrorIs(t, g.AddEdge(0, 1, -2), core.ErrNegativeWeight)
	assert.Equal(t, 0, g.NumEdges())
}

func TestGraph_UndirectedMirrorAndMinWeight(t *testing.T) {
	g := core.NewGraph(3, core.WithEdgeCapacity(2))
	require.NoError(t, g.AddEdge(0, 1, 5))
	require.NoError(t, g.AddEdge(1, 0, 3)) // lowers weight
	require.NoError(t, g.AddEdge(0, 1, 9)) // ignored

	w, ok := g.Weight(1, 0)
	require.True(t, ok)
	assert.Equal(t, int64(3), w)
	assert.True(t, g.HasEdge(0, 1))
	assert.False(t, g.HasEdge(0, 2))
	assert.False(t, g.HasEdge(0, 7))
	assert.Equal(t, 1, g.NumEdges())
}

func TestGraph_NeighborsAndEdgesSorted(t *testing.T) {
	g := core.NewGraph(4)
	require.NoError(t, g.AddEdge(2, 3, 1))
	require.NoError(t, g.AddEdge(2, 0, 4))
	require.NoError(t, g.AddEdge(1, 2, 2))

	nbrs, err := g.Neighbors(2)
	require.NoError(t, err)
	assert.Equal(t, []core.Edge{{From: 2, To: 0, Weight: 4}, {From: 2, To: 1, Weight: 2}, {From: 2, To: 3, Weight: 1}}, nbrs)

	assert.Equal(t, []core.Edge{{From: 0, To: 2, Weight: 4}, {From: 1, To: 2, Weight: 2}, {From: 2, To: 3, Weight: 1}}, g.Edges())

	d, err := g.Degree(2)
	require.NoError(t, err)
	assert.Equal(t, 3, d)

	_, err = g.Neighbors(4)
	require.ErrorIs(t, err, core.ErrVertexOutOfRange)
}

func TestGraph_ConcurrentAddEdge(t *testing.T) {
	const n = 50
	g := core.NewGraph(n)
	var wg sync.WaitGroup
	for u := 0; u < n; u++ {
		wg.Add(1)
		go func(u int) {
			defer wg.Done()
			for v := u + 1; v < n; v++ {
				_ = g.AddEdge(u, v, int64(v-u))
			}
		}(u)
	}
	wg.Wait()
	assert.Equal(t, n*(n-1)/2, g.NumEdges())
}
