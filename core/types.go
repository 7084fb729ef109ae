// SPDX-License-Identifier: MIT

package core

import (
	"errors"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrVertexOutOfRange indicates an operation referenced an index outside [0, n).
	ErrVertexOutOfRange = errors.New("core: vertex index out of range")

	// ErrNegativeWeight indicates a negative edge weight.
	ErrNegativeWeight = errors.New("core: negative edge weight")

	// ErrLoopNotAllowed indicates a self-loop was attempted.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")
)

// Edge is one undirected connection as seen from From.
type Edge struct {
	From   int
	To     int
	Weight int64
}

// GraphOption configures a Graph before creation.
type GraphOption func(g *Graph)

// WithEdgeCapacity pre-sizes every adjacency map for roughly c neighbours.
func WithEdgeCapacity(c int) GraphOption {
	return func(g *Graph) {
		if c > 0 {
			g.hint = c
		}
	}
}

// Graph is an undirected weighted graph over vertices 0..n-1.
type Graph struct {
	mu    sync.RWMutex
	n     int
	hint  int
	edges int

	// adj[u][v] = weight; mirrored for undirected storage.
	adj []map[int]int64
}

// NewGraph creates an edgeless graph on n vertices. Negative n is treated as 0.
// Complexity: O(n)
func NewGraph(n int, opts ...GraphOption) *Graph {
	if n < 0 {
		n = 0
	}
	g := &Graph{n: n}
	for _, opt := range opts {
		opt(g)
	}
	g.adj = make([]map[int]int64, n)
	for i := range g.adj {
		g.adj[i] = make(map[int]int64, g.hint)
	}

	return g
}
