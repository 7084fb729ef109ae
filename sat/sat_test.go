// SPDX-License-Identifier: MIT

package sat_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/dispagp/sat"
)

func eachBackend(t *testing.T, fn func(t *testing.T, b sat.Backend)) {
	t.Helper()
	for _, name := range sat.Names() {
		t.Run(name, func(t *testing.T) {
			b, err := sat.New(name)
			require.NoError(t, err)
			require.Equal(t, name, b.Name())
			fn(t, b)
		})
	}
}

func TestNew_Registry(t *testing.T) {
	assert.Equal(t, []string{"gini", "gophersat"}, sat.Names())

	b, err := sat.New("")
	require.NoError(t, err)
	assert.Equal(t, sat.DefaultBackend, b.Name())

	_, err = sat.New("minisat")
	require.ErrorIs(t, err, sat.ErrUnknownBackend)
}

func TestBackend_SatisfiableModel(t *testing.T) {
	eachBackend(t, func(t *testing.T, b sat.Backend) {
		x, y, z := b.NewVar(), b.NewVar(), b.NewVar()
		require.NoError(t, b.AddClause(x, y))
		require.NoError(t, b.AddClause(x.Not(), z))
		require.NoError(t, b.AddClause(y.Not()))

		out, err := b.Solve(context.Background())
		require.NoError(t, err)
		require.Equal(t, sat.Satisfiable, out)
		assert.True(t, b.Value(x))
		assert.False(t, b.Value(y))
		assert.True(t, b.Value(y.Not()))
		assert.True(t, b.Value(z))
		assert.Equal(t, 3, b.NumVars())
		assert.Equal(t, 3, b.NumClauses())
	})
}

func TestBackend_Unsatisfiable(t *testing.T) {
	eachBackend(t, func(t *testing.T, b sat.Backend) {
		x := b.NewVar()
		require.NoError(t, b.AddClause(x))
		require.NoError(t, b.AddClause(x.Not()))

		out, err := b.Solve(context.Background())
		require.NoError(t, err)
		assert.Equal(t, sat.Unsatisfiable, out)
	})
}

func TestBackend_AssumptionsAreTemporary(t *testing.T) {
	eachBackend(t, func(t *testing.T, b sat.Backend) {
		x, y := b.NewVar(), b.NewVar()
		require.NoError(t, b.AddClause(x.Not(), y.Not()))

		out, err := b.Solve(context.Background(), x, y)
		require.NoError(t, err)
		assert.Equal(t, sat.Unsatisfiable, out)

		out, err = b.Solve(context.Background(), x)
		require.NoError(t, err)
		require.Equal(t, sat.Satisfiable, out)
		assert.True(t, b.Value(x))
		assert.False(t, b.Value(y))

		// incremental: a permanent clause added after solving
		require.NoError(t, b.AddClause(x.Not()))
		out, err = b.Solve(context.Background(), x)
		require.NoError(t, err)
		assert.Equal(t, sat.Unsatisfiable, out)

		out, err = b.Solve(context.Background())
		require.NoError(t, err)
		assert.Equal(t, sat.Satisfiable, out)
	})
}

func TestBackend_CancelledContext(t *testing.T) {
	eachBackend(t, func(t *testing.T, b sat.Backend) {
		x := b.NewVar()
		require.NoError(t, b.AddClause(x))

		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		out, err := b.Solve(ctx)
		require.NoError(t, err)
		assert.Equal(t, sat.Unknown, out)

		out, err = b.Solve(context.Background())
		require.NoError(t, err)
		assert.Equal(t, sat.Satisfiable, out)
	})
}

func TestBackend_InvalidLiterals(t *testing.T) {
	eachBackend(t, func(t *testing.T, b sat.Backend) {
		x := b.NewVar()
		require.ErrorIs(t, b.AddClause(), sat.ErrEmptyClause)
		require.ErrorIs(t, b.AddClause(x, 0), sat.ErrInvalidLiteral)
		require.ErrorIs(t, b.AddClause(sat.Lit(2)), sat.ErrInvalidLiteral)
		require.ErrorIs(t, b.AddClause(sat.Lit(-5)), sat.ErrInvalidLiteral)
		assert.Equal(t, 0, b.NumClauses())

		_, err := b.Solve(context.Background(), sat.Lit(9))
		require.ErrorIs(t, err, sat.ErrInvalidLiteral)
		assert.False(t, b.Value(sat.Lit(9)))
	})
}

func TestBackend_PigeonHole(t *testing.T) {
	// 4 pigeons, 3 holes.
	eachBackend(t, func(t *testing.T, b sat.Backend) {
		const pigeons, holes = 4, 3
		var p [pigeons][holes]sat.Lit
		for i := range p {
			for j := range p[i] {
				p[i][j] = b.NewVar()
			}
		}
		for i := 0; i < pigeons; i++ {
			require.NoError(t, b.AddClause(p[i][:]...))
		}
		for j := 0; j < holes; j++ {
			for i := 0; i < pigeons; i++ {
				for k := i + 1; k < pigeons; k++ {
					require.NoError(t, b.AddClause(p[i][j].Not(), p[k][j].Not()))
				}
			}
		}
		out, err := b.Solve(context.Background())
		require.NoError(t, err)
		assert.Equal(t, sat.Unsatisfiable, out)
	})
}

func TestOutcome_String(t *testing.T) {
	assert.Equal(t, "sat", sat.Satisfiable.String())
	assert.Equal(t, "unsat", sat.Unsatisfiable.String())
	assert.Equal(t, "unknown", sat.Unknown.String())
}
