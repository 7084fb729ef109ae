// SPDX-License-Identifier: MIT

package geometry

import "fmt"

// Point is a location in the plane.
type Point struct {
	X float64
	Y float64
}

// Pt is shorthand for Point{X: x, Y: y}.
func Pt(x, y float64) Point { return Point{X: x, Y: y} }

// String renders the point as "(x, y)".
func (p Point) String() string { return fmt.Sprintf("(%g, %g)", p.X, p.Y) }

// Sub returns p - q.
func (p Point) Sub(q Point) Point { return Point{X: p.X - q.X, Y: p.Y - q.Y} }

// Dot returns the dot product of p and q seen as vectors.
func (p Point) Dot(q Point) float64 { return p.X*q.X + p.Y*q.Y }

// Midpoint returns the point halfway between p and q.
// Halving is exact in binary floating point, so midpoints of exact points stay exact.
func Midpoint(p, q Point) Point {
	return Point{X: (p.X + q.X) / 2, Y: (p.Y + q.Y) / 2}
}

// Cross returns the z-component of (a-o)×(b-o).
// Positive when o→a→b turns left, negative when it turns right, zero when collinear.
func Cross(o, a, b Point) float64 {
	return (a.X-o.X)*(b.Y-o.Y) - (a.Y-o.Y)*(b.X-o.X)
}

// Orient returns the sign of Cross(a, b, c) as -1, 0 or +1.
func Orient(a, b, c Point) int {
	switch v := Cross(a, b, c); {
	case v > 0:
		return 1
	case v < 0:
		return -1
	default:
		return 0
	}
}

// OnSegment reports whether p lies on the closed segment [a,b].
func OnSegment(p, a, b Point) bool {
	if Orient(a, b, p) != 0 {
		return false
	}

	return min(a.X, b.X) <= p.X && p.X <= max(a.X, b.X) &&
		min(a.Y, b.Y) <= p.Y && p.Y <= max(a.Y, b.Y)
}

// SegmentsCross reports whether the open segments (a,b) and (c,d) cross
// properly, i.e. intersect in exactly one point interior to both.
// Touching at endpoints and collinear overlap are not proper crossings.
func SegmentsCross(a, b, c, d Point) bool {
	o1 := Orient(a, b, c)
	o2 := Orient(a, b, d)
	o3 := Orient(c, d, a)
	o4 := Orient(c, d, b)

	return o1*o2 < 0 && o3*o4 < 0
}

// SegmentsIntersect reports whether the closed segments [a,b] and [c,d]
// share at least one point (including touching and collinear overlap).
func SegmentsIntersect(a, b, c, d Point) bool {
	if SegmentsCross(a, b, c, d) {
		return true
	}

	return OnSegment(c, a, b) || OnSegment(d, a, b) || OnSegment(a, c, d) || OnSegment(b, c, d)
}
