// SPDX-License-Identifier: MIT

// Package metrics exposes solver activity as Prometheus collectors.
//
// Collectors are registered on the Registerer passed to New, never on the
// global default registry. A nil *Recorder is valid and records nothing.
package metrics

import (
	"math"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/katalvlaran/dispagp/sat"
)

const namespace = "dagp"

// Recorder holds the solver collectors.
type Recorder struct {
	backend string

	probes        *prometheus.CounterVec
	probeDuration *prometheus.HistogramVec
	solves        *prometheus.CounterVec
	objective     prometheus.Gauge
	upperBound    prometheus.Gauge
	witnesses     prometheus.Gauge
	phase         *prometheus.HistogramVec
}

// New registers the collectors on reg. Probe series carry the backend label.
func New(reg prometheus.Registerer, backend string) *Recorder {
	f := promauto.With(reg)

	return &Recorder{
		backend: backend,
		// probes counts discrete-solver calls.
		// Labels: backend, outcome (sat, unsat, unknown)
		probes: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "probes_total",
			Help:      "Threshold probes by outcome",
		}, []string{"backend", "outcome"}),
		probeDuration: f.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "probe_duration_seconds",
			Help:      "Wall time of one threshold probe",
			Buckets:   prometheus.ExponentialBuckets(0.001, 4, 10),
		}, []string{"backend"}),
		// solves counts finished solves.
		// Labels: status (OPTIMAL, FEASIBLE, UNKNOWN, ERROR)
		solves: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "solves_total",
			Help:      "Finished solves by status",
		}, []string{"status"}),
		objective: f.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "objective",
			Help:      "Objective of the last solve (+Inf when one guard suffices)",
		}),
		upperBound: f.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "upper_bound",
			Help:      "Proven upper bound of the last solve",
		}),
		witnesses: f.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "witnesses",
			Help:      "Witness count of the last solve",
		}),
		phase: f.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "phase_duration_seconds",
			Help:      "Wall time of precomputation phases",
			Buckets:   prometheus.ExponentialBuckets(0.001, 4, 10),
		}, []string{"phase"}),
	}
}

// ObserveProbe records one probe.
func (r *Recorder) ObserveProbe(outcome sat.Outcome, d time.Duration) {
	if r == nil {
		return
	}
	r.probes.WithLabelValues(r.backend, outcome.String()).Inc()
	r.probeDuration.WithLabelValues(r.backend).Observe(d.Seconds())
}

// ObservePhase records a precomputation phase such as "visibility".
func (r *Recorder) ObservePhase(name string, d time.Duration) {
	if r == nil {
		return
	}
	r.phase.WithLabelValues(name).Observe(d.Seconds())
}

// ObserveSolve records the outcome of a finished solve. Distances equal to
// math.MaxInt64 are exported as +Inf.
func (r *Recorder) ObserveSolve(status string, objective, upper int64, witnesses int) {
	if r == nil {
		return
	}
	r.solves.WithLabelValues(status).Inc()
	r.objective.Set(gaugeValue(objective))
	r.upperBound.Set(gaugeValue(upper))
	r.witnesses.Set(float64(witnesses))
}

func gaugeValue(d int64) float64 {
	if d == math.MaxInt64 {
		return math.Inf(1)
	}

	return float64(d)
}
