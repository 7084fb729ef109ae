// SPDX-License-Identifier: MIT

// Package polygon defines Instance, the immutable geometric input of the
// dispersive art gallery solver: integer vertex positions plus an outer
// boundary and zero or more holes, each given as a cycle of position indices.
//
// Construction validates the input once and normalises orientation once
// (boundary counter-clockwise, holes clockwise); afterwards an Instance is
// never mutated and is safe to share between goroutines.
//
// Errors (sentinel):
//
//	ErrTooFewVertices – a ring has fewer than three indices.
//	ErrInvalidIndex   – an index is out of range, repeated, or a position is unused.
//	ErrDegenerate     – a ring has zero area.
//	ErrNotSimple      – a ring self-intersects or two rings touch.
//	ErrInvalidHole    – a hole is not strictly inside the boundary or lies inside another hole.
//
// Example:
//
//	inst, err := polygon.New(
//	    []polygon.Position{{0, 0}, {1, 0}, {1, 1}, {0, 1}},
//	    []int{0, 1, 2, 3},
//	    nil,
//	)
package polygon
