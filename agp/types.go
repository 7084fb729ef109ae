// SPDX-License-Identifier: MIT

package agp

import (
	"encoding/json"
	"errors"
	"math"
	"strconv"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/dispagp/guardgraph"
	"github.com/katalvlaran/dispagp/logging"
	"github.com/katalvlaran/dispagp/metrics"
	"github.com/katalvlaran/dispagp/witness"
)

// Infinity is the objective of a single-guard selection.
const Infinity = guardgraph.Infinity

// ErrNilInstance indicates a nil polygon instance.
var ErrNilInstance = errors.New("agp: nil instance")

// Status classifies a result.
type Status int

const (
	// StatusUnknown means no witness set was available before the deadline.
	StatusUnknown Status = iota
	// StatusFeasible means a covering selection exists but is not proven optimal.
	StatusFeasible
	// StatusOptimal means the objective matches the upper bound (within tolerance).
	StatusOptimal
)

// String returns "UNKNOWN", "FEASIBLE" or "OPTIMAL".
func (s Status) String() string {
	switch s {
	case StatusFeasible:
		return "FEASIBLE"
	case StatusOptimal:
		return "OPTIMAL"
	default:
		return "UNKNOWN"
	}
}

// MarshalText implements encoding.TextMarshaler.
func (s Status) MarshalText() ([]byte, error) { return []byte(s.String()), nil }

// Result is the outcome of one solve.
type Result struct {
	RunID      uuid.UUID
	Status     Status
	Guards     []int
	Objective  int64
	UpperBound int64
	Gap        float64
	Stats      map[string]any
}

// MarshalJSON renders infinite distances and gaps as "inf".
func (r *Result) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		RunID      uuid.UUID       `json:"run_id"`
		Status     Status          `json:"status"`
		Guards     []int           `json:"guards"`
		Objective  json.RawMessage `json:"objective"`
		UpperBound json.RawMessage `json:"upper_bound"`
		Gap        json.RawMessage `json:"gap"`
		Stats      map[string]any  `json:"stats,omitempty"`
	}{
		RunID:      r.RunID,
		Status:     r.Status,
		Guards:     r.Guards,
		Objective:  distanceJSON(r.Objective),
		UpperBound: distanceJSON(r.UpperBound),
		Gap:        gapJSON(r.Gap),
		Stats:      r.Stats,
	})
}

func distanceJSON(d int64) json.RawMessage {
	if d == Infinity {
		return json.RawMessage(`"inf"`)
	}

	return json.RawMessage(strconv.FormatInt(d, 10))
}

func gapJSON(g float64) json.RawMessage {
	if math.IsInf(g, 1) || math.IsNaN(g) {
		return json.RawMessage(`"inf"`)
	}

	return json.RawMessage(strconv.FormatFloat(g, 'g', -1, 64))
}

// Options configures NewSolver.
type Options struct {
	Logger    logrus.FieldLogger
	Metrics   *metrics.Recorder
	Witnesses witness.Provider
}

// Option is a functional option for NewSolver.
type Option func(*Options)

// WithLogger sets the logger.
func WithLogger(l logrus.FieldLogger) Option {
	return func(o *Options) { o.Logger = logging.OrDiscard(l) }
}

// WithMetrics records probes, phases and results on rec.
func WithMetrics(rec *metrics.Recorder) Option {
	return func(o *Options) { o.Metrics = rec }
}

// WithWitnesses replaces shadow witnesses with p.
func WithWitnesses(p witness.Provider) Option {
	return func(o *Options) { o.Witnesses = p }
}

// DefaultOptions returns a discarding logger, no metrics and shadow witnesses.
func DefaultOptions() Options {
	return Options{Logger: logging.Discard()}
}
