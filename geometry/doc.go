// SPDX-License-Identifier: MIT

// Package geometry provides the exact planar predicates the solver relies on:
// orientation tests, segment crossing, point location in rings and in
// polygons with holes, and closed segment-visibility inside such polygons.
//
// Numeric model:
//
//	All coordinates are float64. Polygon vertices are integers below 2^24 in
//	magnitude, so every predicate between vertices and their midpoints is
//	computed exactly and no epsilon is used in this package. Window ends
//	(Extend) and crossings (Intersection) are rounded; points sampled inside
//	arrangement faces stay clear of every segment, so predicates on them are
//	decided correctly unless a face is thinner than the rounding error.
//
// Conventions:
//
//   - A Ring is an implicitly closed sequence of vertices (last connects to first).
//   - Positive SignedArea means counter-clockwise orientation.
//   - Containment is closed: points on the boundary are contained.
//   - SegmentInside implements vertex-guard visibility: the closed segment must not
//     leave the closed polygon, but it may run along the boundary or graze a
//     reflex vertex.
//
// Complexity:
//
//   - Ring.Locate and PolygonWithHoles.Contains: O(n) for n boundary vertices.
//   - PolygonWithHoles.SegmentInside: O(n log n) (contacts are sorted along the segment).
//   - PolygonWithHoles.Extend: O(n log n).
//   - Ring.IsSimple: O(n²).
package geometry
