// Package bfs provides breadth-first search over a core.Graph, returning
// hop distances, parent links and visit order, plus connected-component
// labelling built on the same walker.
//
// Edge weights are ignored: depth counts edges. The only option is
// WithContext; the context is polled once per dequeued vertex, so a
// cancelled construction stops within one vertex.
//
// Errors:
//
//	ErrGraphNil            – nil graph
//	ErrStartVertexNotFound – start index outside the graph
//	ErrNeighbors           – neighbour iteration failed
//
// Complexity: O(V + E) per traversal; Components and Connected are O(V + E) overall.
package bfs
