// SPDX-License-Identifier: MIT

package geometry

import "sort"

// Segment is the closed segment [A,B].
type Segment struct {
	A, B Point
}

// Degenerate reports whether the segment is a single point.
func (s Segment) Degenerate() bool { return s.A == s.B }

// Vertical reports whether both endpoints share an x-coordinate.
func (s Segment) Vertical() bool { return s.A.X == s.B.X }

// XRange returns the x-extent of the segment.
func (s Segment) XRange() (lo, hi float64) {
	return min(s.A.X, s.B.X), max(s.A.X, s.B.X)
}

// YAt returns the y-coordinate of the supporting line at x.
// The result is undefined for vertical segments.
func (s Segment) YAt(x float64) float64 {
	if x == s.A.X {
		return s.A.Y
	}
	if x == s.B.X {
		return s.B.Y
	}

	return s.A.Y + (x-s.A.X)*(s.B.Y-s.A.Y)/(s.B.X-s.A.X)
}

// Intersection returns the single crossing point of s and t.
// Parallel or collinear segments report false: their shared points, if any,
// are endpoints of one of them.
func Intersection(s, t Segment) (Point, bool) {
	r := s.B.Sub(s.A)
	q := t.B.Sub(t.A)
	denom := r.X*q.Y - r.Y*q.X
	if denom == 0 {
		return Point{}, false
	}
	w := t.A.Sub(s.A)
	u := (w.X*q.Y - w.Y*q.X) / denom
	v := (w.X*r.Y - w.Y*r.X) / denom
	if u < 0 || u > 1 || v < 0 || v > 1 {
		return Point{}, false
	}

	return Point{X: s.A.X + u*r.X, Y: s.A.Y + u*r.Y}, true
}

// Extend follows the ray from p along dir and returns the far end q of the
// longest segment [p,q] that stays in the closed region. ok is false when
// the ray leaves the region immediately after p.
//
// The ray is cut at every boundary contact; consecutive cuts bound pieces that
// are either wholly inside or wholly outside, so one midpoint test per piece
// decides it, as in SegmentInside.
//
// Complexity: O(n log n) for n boundary vertices.
func (pw PolygonWithHoles) Extend(p, dir Point) (q Point, ok bool) {
	dd := dir.Dot(dir)
	if dd == 0 {
		return p, false
	}

	var ts []float64
	for _, ring := range pw.Rings() {
		for i := range ring {
			c, e := ring.Edge(i)
			s := e.Sub(c)
			w := c.Sub(p)
			denom := dir.X*s.Y - dir.Y*s.X
			if denom == 0 {
				if w.X*dir.Y-w.Y*dir.X != 0 {
					continue
				}
				// Collinear edge: both endpoints are contacts.
				for _, t := range []float64{w.Dot(dir) / dd, e.Sub(p).Dot(dir) / dd} {
					if t > 0 {
						ts = append(ts, t)
					}
				}

				continue
			}
			t := (w.X*s.Y - w.Y*s.X) / denom
			u := (w.X*dir.Y - w.Y*dir.X) / denom
			if t > 0 && u >= 0 && u <= 1 {
				ts = append(ts, t)
			}
		}
	}
	sort.Float64s(ts)

	at := func(t float64) Point { return Point{X: p.X + t*dir.X, Y: p.Y + t*dir.Y} }
	prev := 0.0
	for _, t := range ts {
		if t == prev {
			continue
		}
		if !pw.Contains(at((prev + t) / 2)) {
			break
		}
		prev = t
	}
	if prev == 0 {
		return p, false
	}

	return at(prev), true
}
