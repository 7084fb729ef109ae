// SPDX-License-Identifier: MIT

package geometry

// Location classifies a point relative to a closed region.
type Location int

const (
	// Outside means the point is in the open exterior.
	Outside Location = iota
	// Boundary means the point lies on an edge or vertex.
	Boundary
	// Inside means the point is in the open interior.
	Inside
)

// String returns a lower-case name for the location.
func (l Location) String() string {
	switch l {
	case Outside:
		return "outside"
	case Boundary:
		return "boundary"
	case Inside:
		return "inside"
	default:
		return "unknown"
	}
}

// Ring is an implicitly closed polygonal chain.
type Ring []Point

// Len returns the number of vertices.
func (r Ring) Len() int { return len(r) }

// Edge returns the i-th edge (r[i], r[i+1 mod n]).
func (r Ring) Edge(i int) (Point, Point) {
	return r[i], r[(i+1)%len(r)]
}

// SignedArea returns the shoelace area: positive for counter-clockwise rings.
func (r Ring) SignedArea() float64 {
	n := len(r)
	if n < 3 {
		return 0
	}
	var twice float64
	for i := 0; i < n; i++ {
		a, b := r.Edge(i)
		twice += a.X*b.Y - b.X*a.Y
	}

	return twice / 2
}

// Reverse returns a new ring with the opposite orientation.
func (r Ring) Reverse() Ring {
	out := make(Ring, len(r))
	for i, p := range r {
		out[len(r)-1-i] = p
	}

	return out
}

// Bounds returns the axis-aligned bounding box (lo, hi) of the ring.
func (r Ring) Bounds() (lo, hi Point) {
	if len(r) == 0 {
		return Point{}, Point{}
	}
	lo, hi = r[0], r[0]
	for _, p := range r[1:] {
		lo.X, lo.Y = min(lo.X, p.X), min(lo.Y, p.Y)
		hi.X, hi.Y = max(hi.X, p.X), max(hi.Y, p.Y)
	}

	return lo, hi
}

// Locate classifies p against the closed ring using an exact crossing-number test.
// Complexity: O(n).
func (r Ring) Locate(p Point) Location {
	inside := false
	for i := range r {
		a, b := r.Edge(i)
		if OnSegment(p, a, b) {
			return Boundary
		}
		// Half-open rule on y avoids double counting at vertices.
		if (a.Y > p.Y) != (b.Y > p.Y) {
			c := Cross(a, b, p)
			if (b.Y > a.Y && c > 0) || (b.Y < a.Y && c < 0) {
				inside = !inside
			}
		}
	}
	if inside {
		return Inside
	}

	return Outside
}

// IsSimple reports whether the ring has at least three distinct vertices and
// no two edges meet except consecutive edges at their shared vertex.
// Complexity: O(n²).
func (r Ring) IsSimple() bool {
	n := len(r)
	if n < 3 {
		return false
	}
	for i := 0; i < n; i++ {
		a, b := r.Edge(i)
		if a == b {
			return false
		}
		// Consecutive edge must not fold back over this one.
		_, c := r.Edge((i + 1) % n)
		if Orient(a, b, c) == 0 && a.Sub(b).Dot(c.Sub(b)) > 0 {
			return false
		}
		for j := i + 1; j < n; j++ {
			if j == i+1 || (i == 0 && j == n-1) {
				continue
			}
			c, d := r.Edge(j)
			if SegmentsIntersect(a, b, c, d) {
				return false
			}
		}
	}

	return true
}

// Intersects reports whether any edge of r meets any edge of other.
func (r Ring) Intersects(other Ring) bool {
	for i := range r {
		a, b := r.Edge(i)
		for j := range other {
			c, d := other.Edge(j)
			if SegmentsIntersect(a, b, c, d) {
				return true
			}
		}
	}

	return false
}
