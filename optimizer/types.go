// SPDX-License-Identifier: MIT

package optimizer

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/dispagp/guardgraph"
	"github.com/katalvlaran/dispagp/logging"
	"github.com/katalvlaran/dispagp/sat"
)

// Infinity is the objective of a selection with fewer than two guards.
const Infinity = guardgraph.Infinity

// Sentinel errors.
var (
	// ErrTimeout signals that the context ended before the bounds met.
	ErrTimeout = errors.New("optimizer: time limit reached")

	// ErrUncoverable indicates a witness no guard can cover.
	ErrUncoverable = errors.New("optimizer: witness set cannot be covered")

	// ErrInconsistentModel indicates a solver answer or bound contradicting
	// the known bounds.
	ErrInconsistentModel = errors.New("optimizer: inconsistent model")

	// ErrGuardOutOfRange indicates a coverage constraint naming an unknown guard.
	ErrGuardOutOfRange = errors.New("optimizer: guard index out of range")

	// ErrNilArgument indicates a nil distance oracle or backend.
	ErrNilArgument = errors.New("optimizer: nil distances or backend")

	// ErrUnknownStrategy indicates an unrecognised strategy name.
	ErrUnknownStrategy = errors.New("optimizer: unknown strategy")
)

// Distances is the read-only distance oracle the model is built over.
// *guardgraph.Graph satisfies it.
type Distances interface {
	NumGuards() int
	Ladder() []int64
	Pairs() []guardgraph.Pair
	MinDistanceOf(guards []int) (int64, error)
}

// Strategy chooses the next probe level.
type Strategy int

const (
	// Binary bisects the open level range.
	Binary Strategy = iota
	// Linear walks upwards from the lower bound.
	Linear
)

// String returns "binary" or "linear".
func (s Strategy) String() string {
	switch s {
	case Binary:
		return "binary"
	case Linear:
		return "linear"
	default:
		return fmt.Sprintf("Strategy(%d)", int(s))
	}
}

// ParseStrategy converts a name into a Strategy (case-insensitive).
func ParseStrategy(name string) (Strategy, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "binary", "":
		return Binary, nil
	case "linear":
		return Linear, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownStrategy, name)
	}
}

// Observer receives one call per finished probe.
type Observer interface {
	ObserveProbe(outcome sat.Outcome, d time.Duration)
}

// Options configures New.
type Options struct {
	Logger   logrus.FieldLogger
	Observer Observer
}

// Option is a functional option for New.
type Option func(*Options)

// WithLogger sets the logger.
func WithLogger(l logrus.FieldLogger) Option {
	return func(o *Options) { o.Logger = logging.OrDiscard(l) }
}

// WithObserver installs a probe observer (nil disables).
func WithObserver(obs Observer) Option {
	return func(o *Options) { o.Observer = obs }
}

// DefaultOptions returns a discarding logger and no observer.
func DefaultOptions() Options {
	return Options{Logger: logging.Discard()}
}

// Probe is one entry of the append-only probe log.
type Probe struct {
	Threshold int64
	Outcome   sat.Outcome
	Duration  time.Duration
	Clauses   int
	Lower     int64
	Upper     int64
}

// Stats summarises the model and the probes run so far.
type Stats struct {
	Build          time.Duration
	SolveCalls     int
	Vars           int
	Clauses        int
	Witnesses      int
	ForbiddenPairs int
	Probes         []Probe
}

// FormatDistance renders d, with Infinity as "inf".
func FormatDistance(d int64) string {
	if d == Infinity {
		return "inf"
	}

	return fmt.Sprintf("%d", d)
}
