// SPDX-License-Identifier: MIT

package coverage

import "github.com/katalvlaran/dispagp/geometry"

// Region is a closed point set given by its membership predicate.
type Region interface {
	Contains(p geometry.Point) bool
}

// VisibilityRegion is the set of points seen from Apex inside Polygon.
type VisibilityRegion struct {
	Polygon geometry.PolygonWithHoles
	Apex    geometry.Point
}

// Contains reports whether the closed segment Apex→p stays inside the polygon.
func (v VisibilityRegion) Contains(p geometry.Point) bool {
	return v.Polygon.SegmentInside(v.Apex, p)
}

type difference struct {
	a, b Region
}

func (d difference) Contains(p geometry.Point) bool {
	return d.a.Contains(p) && !d.b.Contains(p)
}

// Difference returns the points of a that are not in b.
func Difference(a, b Region) Region {
	return difference{a: a, b: b}
}

// union contains a point if any member does.
type union []Region

func (u union) Contains(p geometry.Point) bool {
	for _, r := range u {
		if r.Contains(p) {
			return true
		}
	}

	return false
}

// Union returns the region covered by any of rs.
func Union(rs ...Region) Region {
	return union(append([]Region(nil), rs...))
}
