// SPDX-License-Identifier: MIT

package dijkstra

import (
	"errors"
	"math"
)

// Sentinel errors returned by the Dijkstra implementation.
var (
	// ErrNoSource indicates that no source vertex was configured.
	ErrNoSource = errors.New("dijkstra: source vertex not set")

	// ErrNilGraph indicates that a nil *core.Graph was passed to Dijkstra.
	ErrNilGraph = errors.New("dijkstra: graph is nil")

	// ErrVertexNotFound indicates that the source index is outside the graph.
	ErrVertexNotFound = errors.New("dijkstra: source vertex not found in graph")
)

// Unreachable is the distance reported for vertices not reached.
const Unreachable int64 = math.MaxInt64

// Options configures the behavior of the Dijkstra algorithm.
type Options struct {
	Source     int  // starting vertex; -1 means unset
	ReturnPath bool // whether to return the predecessor slice
}

// Option represents a functional option for configuring Dijkstra.
type Option func(*Options)

// Source sets the starting vertex.
func Source(v int) Option {
	return func(o *Options) {
		o.Source = v
	}
}

// WithReturnPath enables generation of the predecessor slice in the result.
func WithReturnPath() Option {
	return func(o *Options) {
		o.ReturnPath = true
	}
}

// DefaultOptions returns an unset source and no predecessors.
func DefaultOptions() Options {
	return Options{
		Source:     -1,
		ReturnPath: false,
	}
}
