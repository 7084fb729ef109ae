// SPDX-License-Identifier: MIT
package polygon_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/dispagp/polygon"
)

func unitSquare() []polygon.Position {
	return []polygon.Position{{0, 0}, {1, 0}, {1, 1}, {0, 1}}
}

func TestNew_NormalisesOrientation(t *testing.T) {
	// Clockwise boundary is reversed once at construction.
	inst, err := polygon.New(unitSquare(), []int{3, 2, 1, 0}, nil)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2, 3}, inst.Boundary())
	assert.Greater(t, inst.Region().Outer.SignedArea(), 0.0)
	assert.Equal(t, 4, inst.NumPositions())
	assert.Equal(t, 1.0, inst.Area())
}

func TestNew_HoleIsClockwise(t *testing.T) {
	pos := []polygon.Position{
		{0, 0}, {6, 0}, {6, 6}, {0, 6},
		{2, 2}, {4, 2}, {4, 4}, {2, 4}, // CCW on input
	}
	inst, err := polygon.New(pos, []int{0, 1, 2, 3}, [][]int{{4, 5, 6, 7}})
	require.NoError(t, err)
	require.Equal(t, 1, inst.NumHoles())
	assert.Less(t, inst.Region().Holes[0].SignedArea(), 0.0)
	assert.Equal(t, []int{7, 6, 5, 4}, inst.Holes()[0])
	assert.Equal(t, 32.0, inst.Area())
}

func TestNew_InvalidInput(t *testing.T) {
	tests := []struct {
		name     string
		pos      []polygon.Position
		boundary []int
		holes    [][]int
		want     error
	}{
		{"too few", unitSquare()[:2], []int{0, 1}, nil, polygon.ErrTooFewVertices},
		{"out of range", unitSquare(), []int{0, 1, 2, 4}, nil, polygon.ErrInvalidIndex},
		{"repeated", unitSquare(), []int{0, 1, 2, 2}, nil, polygon.ErrInvalidIndex},
		{"unused position", unitSquare(), []int{0, 1, 2}, nil, polygon.ErrInvalidIndex},
		{"zero area", []polygon.Position{{0, 0}, {1, 0}, {2, 0}}, []int{0, 1, 2}, nil, polygon.ErrDegenerate},
		{"bowtie", []polygon.Position{{0, 0}, {4, 4}, {4, 0}, {0, 2}}, []int{0, 1, 2, 3}, nil, polygon.ErrNotSimple},
		{
			"hole outside",
			[]polygon.Position{{0, 0}, {2, 0}, {2, 2}, {0, 2}, {5, 5}, {6, 5}, {6, 6}},
			[]int{0, 1, 2, 3}, [][]int{{4, 5, 6}},
			polygon.ErrInvalidHole,
		},
		{
			"hole touching boundary",
			[]polygon.Position{{0, 0}, {4, 0}, {4, 4}, {0, 4}, {0, 1}, {1, 1}, {1, 2}},
			[]int{0, 1, 2, 3}, [][]int{{4, 5, 6}},
			polygon.ErrNotSimple,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := polygon.New(tt.pos, tt.boundary, tt.holes)
			require.ErrorIs(t, err, tt.want)
		})
	}
}

func TestNew_CopiesInput(t *testing.T) {
	pos := unitSquare()
	boundary := []int{0, 1, 2, 3}
	inst, err := polygon.New(pos, boundary, nil)
	require.NoError(t, err)

	pos[0] = polygon.Position{X: 100, Y: 100}
	boundary[0] = 3
	assert.Equal(t, polygon.Position{}, inst.Position(0))
	assert.Equal(t, []int{0, 1, 2, 3}, inst.Boundary())
}

func TestPosition_Manhattan(t *testing.T) {
	assert.Equal(t, int64(7), polygon.Position{X: 1, Y: -2}.Manhattan(polygon.Position{X: -1, Y: 3}))
}

func TestLoad_RoundTripThroughYAML(t *testing.T) {
	src := `
positions: [[0, 0], [6, 0], [6, 6], [0, 6], [2, 2], [2, 4], [4, 4], [4, 2]]
boundary: [0, 1, 2, 3]
holes: [[4, 5, 6, 7]]
`
	inst, err := polygon.Load(strings.NewReader(src))
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, polygon.Write(&buf, inst))
	again, err := polygon.Load(&buf)
	require.NoError(t, err)
	assert.Equal(t, inst.Positions(), again.Positions())
	assert.Equal(t, inst.Boundary(), again.Boundary())
	assert.Equal(t, inst.Holes(), again.Holes())
}

func TestLoad_JSONAndErrors(t *testing.T) {
	inst, err := polygon.Load(strings.NewReader(`{"positions": [[0,0],[3,0],[0,3]], "boundary": [0,1,2]}`))
	require.NoError(t, err)
	assert.Equal(t, 3, inst.NumPositions())

	_, err = polygon.Load(strings.NewReader(`positions: [[0, 0, 1]]`))
	require.ErrorIs(t, err, polygon.ErrMalformedDocument)

	_, err = polygon.Load(strings.NewReader(`positions: {`))
	require.ErrorIs(t, err, polygon.ErrMalformedDocument)
}
