// SPDX-License-Identifier: MIT

package geometry

import "sort"

// PolygonWithHoles is a closed polygonal region: the area bounded by Outer
// minus the open interiors of Holes. Orientation of the rings is irrelevant
// for the predicates here.
type PolygonWithHoles struct {
	Outer Ring
	Holes []Ring
}

// Rings returns the outer ring followed by all holes.
func (pw PolygonWithHoles) Rings() []Ring {
	rings := make([]Ring, 0, 1+len(pw.Holes))
	rings = append(rings, pw.Outer)

	return append(rings, pw.Holes...)
}

// Area returns the enclosed area (outer area minus hole areas).
func (pw PolygonWithHoles) Area() float64 {
	a := abs(pw.Outer.SignedArea())
	for _, h := range pw.Holes {
		a -= abs(h.SignedArea())
	}

	return a
}

// Locate classifies p against the closed region.
func (pw PolygonWithHoles) Locate(p Point) Location {
	loc := pw.Outer.Locate(p)
	if loc != Inside {
		return loc
	}
	for _, h := range pw.Holes {
		switch h.Locate(p) {
		case Boundary:
			return Boundary
		case Inside:
			return Outside
		}
	}

	return Inside
}

// Contains reports whether p lies in the closed region.
func (pw PolygonWithHoles) Contains(p Point) bool {
	return pw.Locate(p) != Outside
}

// SegmentInside reports whether the closed segment [a,b] lies entirely in the
// closed region, which is exactly the visibility relation between a and b.
//
// The segment is cut at every boundary vertex it passes through; between two
// consecutive cuts it cannot touch the boundary unless it runs along an edge,
// so a single midpoint test per piece decides that piece.
//
// Complexity: O(n log n) for n boundary vertices.
func (pw PolygonWithHoles) SegmentInside(a, b Point) bool {
	if !pw.Contains(a) || !pw.Contains(b) {
		return false
	}
	if a == b {
		return true
	}

	cuts := []Point{a, b}
	for _, ring := range pw.Rings() {
		for i := range ring {
			c, d := ring.Edge(i)
			if SegmentsCross(a, b, c, d) {
				return false
			}
			if c != a && c != b && OnSegment(c, a, b) {
				cuts = append(cuts, c)
			}
		}
	}

	dir := b.Sub(a)
	sort.Slice(cuts, func(i, j int) bool {
		return cuts[i].Sub(a).Dot(dir) < cuts[j].Sub(a).Dot(dir)
	})
	for i := 1; i < len(cuts); i++ {
		if cuts[i] == cuts[i-1] {
			continue
		}
		if !pw.Contains(Midpoint(cuts[i-1], cuts[i])) {
			return false
		}
	}

	return true
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}

	return v
}
