// SPDX-License-Identifier: MIT

package guardgraph

import (
	"context"
	"errors"
	"math"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/dispagp/logging"
)

// Infinity is the distance value standing for +∞.
const Infinity int64 = math.MaxInt64

// Sentinel errors.
var (
	// ErrNilInstance indicates a nil instance or visibility oracle.
	ErrNilInstance = errors.New("guardgraph: instance or visibility is nil")

	// ErrDisconnected indicates a visibility graph with more than one component.
	ErrDisconnected = errors.New("guardgraph: visibility graph is disconnected")

	// ErrEmptyGuardSet indicates a distance query on an empty guard set.
	ErrEmptyGuardSet = errors.New("guardgraph: empty guard set")

	// ErrGuardOutOfRange indicates a guard index outside [0, N).
	ErrGuardOutOfRange = errors.New("guardgraph: guard index out of range")
)

// Visibility answers mutual visibility of two guard candidates.
type Visibility interface {
	MutuallyVisible(a, b int) bool
}

// APSP selects the all-pairs method.
type APSP int

const (
	// APSPDijkstra runs one Dijkstra per source (O(N·(N+E) log N)).
	APSPDijkstra APSP = iota
	// APSPFloydWarshall runs the dense O(N³) closure.
	APSPFloydWarshall
)

// String returns the method name.
func (m APSP) String() string {
	switch m {
	case APSPDijkstra:
		return "dijkstra"
	case APSPFloydWarshall:
		return "floyd-warshall"
	default:
		return "unknown"
	}
}

// Options configures New.
type Options struct {
	APSP   APSP
	Logger logrus.FieldLogger
	Ctx    context.Context
}

// Option is a functional option for New.
type Option func(*Options)

// WithAPSP selects the all-pairs method.
func WithAPSP(m APSP) Option {
	return func(o *Options) { o.APSP = m }
}

// WithLogger sets the logger.
func WithLogger(l logrus.FieldLogger) Option {
	return func(o *Options) { o.Logger = logging.OrDiscard(l) }
}

// WithContext bounds the connectivity check; a nil ctx is ignored.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// DefaultOptions uses repeated Dijkstra, a discarding logger and a background context.
func DefaultOptions() Options {
	return Options{APSP: APSPDijkstra, Logger: logging.Discard(), Ctx: context.Background()}
}

// Pair is an unordered guard pair (I < J) with its distance.
type Pair struct {
	I, J int
	D    int64
}

// Stats reports construction and distance computation costs.
type Stats struct {
	BuildGraph       time.Duration
	ComputeDistances time.Duration
	Edges            int
	LadderSize       int
}
