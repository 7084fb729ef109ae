// Package core provides a thread-safe, integer-indexed, undirected weighted
// graph used as the substrate for guard distance computations.
//
// Vertices are the dense range [0, n) fixed at construction; edges carry a
// non-negative int64 weight. The graph is simple: no self-loops and at most
// one edge per unordered pair (a second AddEdge on the same pair keeps the
// smaller weight).
//
// Core Methods:
//
//	NewGraph(n int, opts ...GraphOption) *Graph  // O(n)
//	AddEdge(u, v int, w int64) error             // O(1) amortized
//	HasEdge(u, v int) bool                       // O(1)
//	Weight(u, v int) (int64, bool)               // O(1)
//	Neighbors(u int) ([]Edge, error)             // O(d·log d), sorted by To
//	Edges() []Edge                               // O(E·log E), u < v, sorted
//	Degree(u int) (int, error)                   // O(1)
//	NumVertices() int, NumEdges() int            // O(1)
//
// Errors:
//
//	ErrVertexOutOfRange – vertex index not in [0, n)
//	ErrNegativeWeight   – weight < 0
//	ErrLoopNotAllowed   – u == v
//
// Concurrency: a single sync.RWMutex guards the adjacency; all queries take
// the read lock and return copies.
package core
