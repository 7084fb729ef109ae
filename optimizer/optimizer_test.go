// SPDX-License-Identifier: MIT

package optimizer_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/dispagp/builder"
	"github.com/katalvlaran/dispagp/coverage"
	"github.com/katalvlaran/dispagp/guardgraph"
	"github.com/katalvlaran/dispagp/optimizer"
	"github.com/katalvlaran/dispagp/polygon"
	"github.com/katalvlaran/dispagp/sat"
	"github.com/katalvlaran/dispagp/witness"
)

type fixture struct {
	dists     *guardgraph.Graph
	witnesses []witness.Witness
}

func build(t *testing.T, inst *polygon.Instance, prov witness.Provider) fixture {
	t.Helper()
	ctx := context.Background()
	o, err := coverage.NewOracle(ctx, inst)
	require.NoError(t, err)
	g, err := guardgraph.New(inst, o)
	require.NoError(t, err)
	if prov == nil {
		prov = witness.NewShadowProvider(o)
	}
	ws, err := prov.Witnesses(ctx)
	require.NoError(t, err)

	return fixture{dists: g, witnesses: ws}
}

// square: 0(0,0) 1(2,0) 2(2,2) 3(0,2); witnesses force one guard on each side.
func square(t *testing.T, ws ...witness.Witness) fixture {
	t.Helper()
	inst, err := builder.Rectangle(2, 2)
	require.NoError(t, err)
	if len(ws) == 0 {
		ws = []witness.Witness{{Guards: []int{0, 1}}, {Guards: []int{2, 3}}}
	}

	return build(t, inst, witness.Static(ws...))
}

func frame(t *testing.T) fixture {
	t.Helper()
	inst, err := builder.Frame(6, 6, 2)
	require.NoError(t, err)

	return build(t, inst, nil)
}

func newOptimizer(t *testing.T, fx fixture, backend string, opts ...optimizer.Option) *optimizer.Optimizer {
	t.Helper()
	b, err := sat.New(backend)
	require.NoError(t, err)
	o, err := optimizer.New(fx.dists, b, opts...)
	require.NoError(t, err)
	for _, w := range fx.witnesses {
		require.NoError(t, o.AddCoverageConstraint(w.Guards...))
	}

	return o
}

func eachConfig(t *testing.T, fn func(t *testing.T, backend string, s optimizer.Strategy)) {
	t.Helper()
	for _, b := range sat.Names() {
		for _, s := range []optimizer.Strategy{optimizer.Binary, optimizer.Linear} {
			t.Run(b+"/"+s.String(), func(t *testing.T) { fn(t, b, s) })
		}
	}
}

func requireCovers(t *testing.T, ws []witness.Witness, guards []int) {
	t.Helper()
	in := make(map[int]bool, len(guards))
	for _, g := range guards {
		in[g] = true
	}
	for _, w := range ws {
		hit := false
		for _, g := range w.Guards {
			hit = hit || in[g]
		}
		require.True(t, hit, "witness %d %v uncovered by %v", w.ID, w.Guards, guards)
	}
}

func TestSolve_SquareOppositeCorners(t *testing.T) {
	eachConfig(t, func(t *testing.T, backend string, s optimizer.Strategy) {
		fx := square(t)
		o := newOptimizer(t, fx, backend)
		require.NoError(t, o.Solve(context.Background(), s, 0))

		lb, ub := o.Bounds()
		assert.Equal(t, int64(4), lb)
		assert.Equal(t, int64(4), ub)
		assert.True(t, o.Proven())
		assert.Zero(t, o.Gap())

		sol := o.Solution()
		require.Len(t, sol, 2)
		assert.Contains(t, [][]int{{0, 2}, {1, 3}}, sol)
		requireCovers(t, fx.witnesses, sol)

		probes := o.Stats().Probes
		require.Len(t, probes, 2)
		assert.Equal(t, optimizer.Infinity, probes[0].Threshold)
		assert.Equal(t, sat.Unsatisfiable, probes[0].Outcome)
		assert.Equal(t, sat.Satisfiable, probes[1].Outcome)
	})
}

func TestSolve_SingleGuardSufficient(t *testing.T) {
	eachConfig(t, func(t *testing.T, backend string, s optimizer.Strategy) {
		fx := square(t, witness.Witness{Guards: []int{0, 1, 2, 3}})
		o := newOptimizer(t, fx, backend)
		require.NoError(t, o.Solve(context.Background(), s, 0))

		assert.Equal(t, optimizer.Infinity, o.Objective())
		assert.Equal(t, optimizer.Infinity, o.UpperBound())
		assert.Len(t, o.Solution(), 1)
		assert.Len(t, o.Stats().Probes, 1)
	})
}

func TestSolve_FrameStrategiesAgree(t *testing.T) {
	fx := frame(t)
	eachConfig(t, func(t *testing.T, backend string, s optimizer.Strategy) {
		o := newOptimizer(t, fx, backend)
		require.NoError(t, o.Solve(context.Background(), s, 0))

		assert.Equal(t, int64(12), o.Objective())
		assert.Equal(t, int64(12), o.UpperBound())
		sol := o.Solution()
		got, err := fx.dists.MinDistanceOf(sol)
		require.NoError(t, err)
		assert.Equal(t, o.Objective(), got)
		requireCovers(t, fx.witnesses, sol)
	})
}

func TestSolve_BoundsMonotone(t *testing.T) {
	fx := frame(t)
	eachConfig(t, func(t *testing.T, backend string, s optimizer.Strategy) {
		o := newOptimizer(t, fx, backend)
		require.NoError(t, o.Solve(context.Background(), s, 0))

		probes := o.Stats().Probes
		require.NotEmpty(t, probes)
		for i, p := range probes {
			assert.LessOrEqual(t, p.Lower, p.Upper, "probe %d", i)
			if i == 0 {
				continue
			}
			assert.GreaterOrEqual(t, p.Lower, probes[i-1].Lower, "probe %d", i)
			assert.LessOrEqual(t, p.Upper, probes[i-1].Upper, "probe %d", i)
			assert.GreaterOrEqual(t, p.Clauses, probes[i-1].Clauses, "probe %d", i)
		}
	})
}

func TestSolve_Timeout(t *testing.T) {
	for _, b := range sat.Names() {
		t.Run(b, func(t *testing.T) {
			fx := square(t)
			o := newOptimizer(t, fx, b)
			ctx, cancel := context.WithCancel(context.Background())
			cancel()

			err := o.Solve(ctx, optimizer.Binary, 0)
			require.ErrorIs(t, err, optimizer.ErrTimeout)
			lb, ub := o.Bounds()
			assert.Equal(t, int64(2), lb)
			assert.Equal(t, optimizer.Infinity, ub)
			assert.Equal(t, []int{0, 1, 2, 3}, o.Solution())
			assert.Empty(t, o.Stats().Probes)
			assert.False(t, o.Proven())
		})
	}
}

func TestSolve_Tolerance(t *testing.T) {
	fx := square(t)
	o := newOptimizer(t, fx, sat.DefaultBackend)
	require.NoError(t, o.Solve(context.Background(), optimizer.Binary, 1.0))

	lb, ub := o.Bounds()
	assert.Equal(t, int64(2), lb)
	assert.Equal(t, int64(4), ub)
	assert.InDelta(t, 1.0, o.Gap(), 1e-12)
	assert.Len(t, o.Stats().Probes, 1)
}

func TestAddUpperBound(t *testing.T) {
	fx := square(t)
	o := newOptimizer(t, fx, sat.DefaultBackend)

	require.NoError(t, o.AddUpperBound(optimizer.Infinity))
	assert.Equal(t, optimizer.Infinity, o.UpperBound())

	require.NoError(t, o.AddUpperBound(5)) // snapped to the ladder
	assert.Equal(t, int64(4), o.UpperBound())
	require.NoError(t, o.AddUpperBound(9)) // looser, ignored
	assert.Equal(t, int64(4), o.UpperBound())
	require.ErrorIs(t, o.AddUpperBound(1), optimizer.ErrInconsistentModel)

	require.NoError(t, o.Solve(context.Background(), optimizer.Linear, 0))
	assert.Equal(t, int64(4), o.Objective())
	assert.Len(t, o.Stats().Probes, 1) // +∞ probe skipped
}

func TestAddCoverageConstraint_Errors(t *testing.T) {
	fx := square(t)
	o := newOptimizer(t, fx, sat.DefaultBackend)
	require.ErrorIs(t, o.AddCoverageConstraint(), optimizer.ErrUncoverable)
	require.ErrorIs(t, o.AddCoverageConstraint(0, 4), optimizer.ErrGuardOutOfRange)
	assert.Equal(t, 2, o.Stats().Witnesses)

	_, err := optimizer.New(nil, nil)
	require.ErrorIs(t, err, optimizer.ErrNilArgument)
}

type countingObserver struct {
	calls int
	total time.Duration
}

func (c *countingObserver) ObserveProbe(_ sat.Outcome, d time.Duration) {
	c.calls++
	c.total += d
}

func TestObserverAndStats(t *testing.T) {
	fx := square(t)
	obs := &countingObserver{}
	o := newOptimizer(t, fx, sat.DefaultBackend, optimizer.WithObserver(obs))
	require.NoError(t, o.Solve(context.Background(), optimizer.Binary, 0))
	require.NoError(t, o.Solve(context.Background(), optimizer.Binary, 0)) // already proven

	st := o.Stats()
	assert.Equal(t, len(st.Probes), obs.calls)
	assert.Equal(t, 2, st.SolveCalls)
	assert.Equal(t, 2, st.Witnesses)
	assert.Positive(t, st.Vars)
	assert.Positive(t, st.Clauses)
}

func TestParseStrategy(t *testing.T) {
	s, err := optimizer.ParseStrategy("Linear")
	require.NoError(t, err)
	assert.Equal(t, optimizer.Linear, s)
	s, err = optimizer.ParseStrategy("")
	require.NoError(t, err)
	assert.Equal(t, optimizer.Binary, s)
	_, err = optimizer.ParseStrategy("golden")
	require.ErrorIs(t, err, optimizer.ErrUnknownStrategy)

	assert.Equal(t, "inf", optimizer.FormatDistance(optimizer.Infinity))
	assert.Equal(t, "7", optimizer.FormatDistance(7))
}
