// SPDX-License-Identifier: MIT

package builder_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/dispagp/builder"
	"github.com/katalvlaran/dispagp/polygon"
)

func TestRectangle(t *testing.T) {
	inst, err := builder.Rectangle(4, 3)
	require.NoError(t, err)
	assert.Equal(t, 4, inst.NumPositions())
	assert.Equal(t, 12.0, inst.Area())

	_, err = builder.Rectangle(0, 3)
	require.ErrorIs(t, err, builder.ErrTooSmall)
}

func TestLShape(t *testing.T) {
	inst, err := builder.LShape(4, 4, 2)
	require.NoError(t, err)
	assert.Equal(t, 6, inst.NumPositions())
	assert.Equal(t, 12.0, inst.Area())

	_, err = builder.LShape(2, 4, 2)
	require.ErrorIs(t, err, builder.ErrTooSmall)
}

func TestComb(t *testing.T) {
	inst, err := builder.Comb(3, 2, 4, 1)
	require.NoError(t, err)
	assert.Equal(t, 12, inst.NumPositions())
	// spine 8×2 plus three 2×4 teeth
	assert.Equal(t, 16.0+24.0, inst.Area())

	one, err := builder.Comb(1, 2, 2, 1)
	require.NoError(t, err)
	assert.Equal(t, 4, one.NumPositions())

	_, err = builder.Comb(2, 1, 1, 0)
	require.ErrorIs(t, err, builder.ErrTooSmall)
}

func TestFrame(t *testing.T) {
	inst, err := builder.Frame(6, 6, 2)
	require.NoError(t, err)
	assert.Equal(t, 8, inst.NumPositions())
	assert.Equal(t, 1, inst.NumHoles())
	assert.Equal(t, 32.0, inst.Area())

	_, err = builder.Frame(4, 6, 2)
	require.ErrorIs(t, err, builder.ErrTooSmall)
}

func TestRoomChain(t *testing.T) {
	inst, err := builder.RoomChain(3, 4, 2)
	require.NoError(t, err)
	// 4 corners per room, 4 extra per corridor
	assert.Equal(t, 3*4+2*4, inst.NumPositions())
	assert.Equal(t, 3*16.0+2*4.0, inst.Area())

	single, err := builder.RoomChain(1, 3, 1)
	require.NoError(t, err)
	assert.Equal(t, 4, single.NumPositions())

	_, err = builder.RoomChain(2, 3, 2)
	require.ErrorIs(t, err, builder.ErrTooSmall)
}

func TestStar(t *testing.T) {
	inst, err := builder.Star(5, 40, 100)
	require.NoError(t, err)
	assert.Equal(t, 10, inst.NumPositions())
	assert.Equal(t, polygon.Position{X: 200, Y: 100}, inst.Position(0))
	assert.Equal(t, polygon.Position{X: 132, Y: 124}, inst.Position(1))
	assert.Less(t, inst.Area(), 100*100*3.15)

	_, err = builder.Star(2, 40, 100)
	require.ErrorIs(t, err, builder.ErrTooSmall)
	_, err = builder.Star(5, 40, 40)
	require.ErrorIs(t, err, builder.ErrTooSmall)
}

func TestOptions(t *testing.T) {
	inst, err := builder.Rectangle(1, 2, builder.WithScale(3), builder.WithOrigin(-1, 5))
	require.NoError(t, err)
	assert.Equal(t, []polygon.Position{{X: -1, Y: 5}, {X: 2, Y: 5}, {X: 2, Y: 11}, {X: -1, Y: 11}}, inst.Positions())

	assert.Panics(t, func() { builder.WithScale(0) })
}
