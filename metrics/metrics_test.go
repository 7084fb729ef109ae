// SPDX-License-Identifier: MIT

package metrics

import (
	"math"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/dispagp/sat"
)

func TestRecorder(t *testing.T) {
	reg := prometheus.NewPedanticRegistry()
	r := New(reg, "gini")

	r.ObserveProbe(sat.Satisfiable, 3*time.Millisecond)
	r.ObserveProbe(sat.Unsatisfiable, time.Millisecond)
	r.ObserveProbe(sat.Satisfiable, time.Millisecond)
	r.ObservePhase("visibility", time.Second)
	r.ObserveSolve("OPTIMAL", 8, 8, 3)
	r.ObserveSolve("FEASIBLE", 4, math.MaxInt64, 5)

	n, err := testutil.GatherAndCount(reg, "dagp_probes_total")
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	assert.Equal(t, 2.0, testutil.ToFloat64(r.probes.WithLabelValues("gini", "sat")))
	assert.Equal(t, 1.0, testutil.ToFloat64(r.probes.WithLabelValues("gini", "unsat")))
	assert.Equal(t, 1.0, testutil.ToFloat64(r.solves.WithLabelValues("OPTIMAL")))
	assert.Equal(t, 4.0, testutil.ToFloat64(r.objective))
	assert.True(t, math.IsInf(testutil.ToFloat64(r.upperBound), 1))
	assert.Equal(t, 5.0, testutil.ToFloat64(r.witnesses))
}

func TestRecorder_NilSafe(t *testing.T) {
	var r *Recorder
	assert.NotPanics(t, func() {
		r.ObserveProbe(sat.Unknown, time.Second)
		r.ObservePhase("witnesses", time.Second)
		r.ObserveSolve("UNKNOWN", 0, 0, 0)
	})
}

func TestNew_DuplicateRegistrationPanics(t *testing.T) {
	reg := prometheus.NewRegistry()
	New(reg, "gini")
	assert.Panics(t, func() { New(reg, "gophersat") })
}
