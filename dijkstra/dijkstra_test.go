// SPDX-License-Identifier: MIT

package dijkstra_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/dispagp/core"
	"github.com/katalvlaran/dispagp/dijkstra"
)

// triangle: 0—1(1), 1—2(2), 0—2(5), plus isolated 3.
func triangle(t *testing.T) *core.Graph {
	t.Helper()
	g := core.NewGraph(4)
	require.NoError(t, g.AddEdge(0, 1, 1))
	require.NoError(t, g.AddEdge(1, 2, 2))
	require.NoError(t, g.AddEdge(0, 2, 5))

	return g
}

func TestDijkstra_Validation(t *testing.T) {
	_, _, err := dijkstra.Dijkstra(nil)
	require.ErrorIs(t, err, dijkstra.ErrNoSource)

	_, _, err = dijkstra.Dijkstra(nil, dijkstra.Source(0))
	require.ErrorIs(t, err, dijkstra.ErrNilGraph)

	_, _, err = dijkstra.Dijkstra(triangle(t), dijkstra.Source(4))
	require.ErrorIs(t, err, dijkstra.ErrVertexNotFound)
}

func TestDijkstra_Triangle(t *testing.T) {
	dist, prev, err := dijkstra.Dijkstra(triangle(t), dijkstra.Source(0))
	require.NoError(t, err)
	assert.Nil(t, prev)
	assert.Equal(t, []int64{0, 1, 3, dijkstra.Unreachable}, dist)

	dist, prev, err = dijkstra.Dijkstra(triangle(t), dijkstra.Source(0), dijkstra.WithReturnPath())
	require.NoError(t, err)
	assert.Equal(t, []int{-1, 0, 1, -1}, prev)
	assert.Equal(t, []int{0, 1, 2}, dijkstra.PathTo(prev, dist, 2))
	assert.Nil(t, dijkstra.PathTo(prev, dist, 3))
}
