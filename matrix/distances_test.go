// SPDX-License-Identifier: MIT

package matrix_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/dispagp/core"
	"github.com/katalvlaran/dispagp/dijkstra"
	"github.com/katalvlaran/dispagp/matrix"
)

func TestDistances_SetAndBounds(t *testing.T) {
	_, err := matrix.NewDistances(-1)
	require.ErrorIs(t, err, matrix.ErrBadShape)

	d, err := matrix.NewDistances(3)
	require.NoError(t, err)
	require.NoError(t, d.Set(0, 2, 4))
	assert.Equal(t, int64(4), d.Get(2, 0))
	assert.Equal(t, matrix.Inf, d.Get(0, 1))

	require.ErrorIs(t, d.Set(1, 1, 3), matrix.ErrNonZeroDiagonal)
	require.ErrorIs(t, d.Set(0, 1, -3), matrix.ErrNegative)
	require.ErrorIs(t, d.Set(0, 3, 1), matrix.ErrOutOfRange)

	_, err = matrix.FromGraph(nil)
	require.ErrorIs(t, err, matrix.ErrGraphNil)
}

func TestFloydWarshall_MatchesDijkstra(t *testing.T) {
	// 0—1(1), 1—2(2), 0—2(5), 2—3(1), 4 isolated
	g := core.NewGraph(5)
	require.NoError(t, g.AddEdge(0, 1, 1))
	require.NoError(t, g.AddEdge(1, 2, 2))
	require.NoError(t, g.AddEdge(0, 2, 5))
	require.NoError(t, g.AddEdge(2, 3, 1))

	d, err := matrix.FromGraph(g)
	require.NoError(t, err)
	matrix.FloydWarshall(d)

	for s := 0; s < g.NumVertices(); s++ {
		want, _, err := dijkstra.Dijkstra(g, dijkstra.Source(s))
		require.NoError(t, err)
		for v, w := range want {
			assert.Equal(t, w, d.Get(s, v), "d(%d,%d)", s, v)
		}
	}
	assert.Equal(t, int64(4), d.Get(0, 3))
	assert.Equal(t, matrix.Inf, d.Get(0, 4))
}

func TestDistances_SetRow(t *testing.T) {
	d, err := matrix.NewDistances(3)
	require.NoError(t, err)
	require.NoError(t, d.SetRow(1, []int64{2, 0, 5}))
	assert.Equal(t, int64(2), d.Get(0, 1))
	assert.Equal(t, int64(5), d.Get(2, 1))
	require.Error(t, d.SetRow(1, []int64{0}))
}
