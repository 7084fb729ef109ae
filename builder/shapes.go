// SPDX-License-Identifier: MIT

package builder

import (
	"math"

	"github.com/katalvlaran/dispagp/polygon"
)

func pt(x, y int64) polygon.Position { return polygon.Position{X: x, Y: y} }

// Rectangle returns the axis-aligned w×h rectangle with four vertices.
func Rectangle(w, h int64, opts ...Option) (*polygon.Instance, error) {
	if err := validateMin(methodRectangle, "w", w, 1); err != nil {
		return nil, err
	}
	if err := validateMin(methodRectangle, "h", h, 1); err != nil {
		return nil, err
	}
	var s shape
	s.outer(pt(0, 0), pt(w, 0), pt(w, h), pt(0, h))

	return s.build(methodRectangle, resolve(opts))
}

// LShape returns a w×h rectangle with a cut×cut square removed from its
// upper-right corner (six vertices, one reflex).
func LShape(w, h, cut int64, opts ...Option) (*polygon.Instance, error) {
	if err := validateMin(methodLShape, "cut", cut, 1); err != nil {
		return nil, err
	}
	if err := validateMin(methodLShape, "w", w, cut+1); err != nil {
		return nil, err
	}
	if err := validateMin(methodLShape, "h", h, cut+1); err != nil {
		return nil, err
	}
	var s shape
	s.outer(pt(0, 0), pt(w, 0), pt(w, h-cut), pt(w-cut, h-cut), pt(w-cut, h), pt(0, h))

	return s.build(methodLShape, resolve(opts))
}

// Comb returns a spine of height toothWidth with teeth rectangular teeth of
// size toothWidth×toothDepth standing on it, separated by gap.
// A comb with k teeth has 4k vertices and needs k guards for coverage.
func Comb(teeth int, toothWidth, toothDepth, gap int64, opts ...Option) (*polygon.Instance, error) {
	if err := validateMin(methodComb, "teeth", int64(teeth), 1); err != nil {
		return nil, err
	}
	for _, p := range []struct {
		name string
		v    int64
	}{{"toothWidth", toothWidth}, {"toothDepth", toothDepth}, {"gap", gap}} {
		if err := validateMin(methodComb, p.name, p.v, 1); err != nil {
			return nil, err
		}
	}

	spine := toothWidth
	top := spine + toothDepth
	width := int64(teeth)*toothWidth + int64(teeth-1)*gap

	pts := []polygon.Position{pt(0, 0), pt(width, 0)}
	for i := teeth - 1; i >= 0; i-- {
		x0 := int64(i) * (toothWidth + gap)
		x1 := x0 + toothWidth
		pts = append(pts, pt(x1, top), pt(x0, top))
		if i > 0 {
			pts = append(pts, pt(x0, spine), pt(x0-gap, spine))
		}
	}
	var s shape
	s.outer(pts...)

	return s.build(methodComb, resolve(opts))
}

// Frame returns a w×h rectangle with a centred rectangular hole leaving a
// border of the given margin.
func Frame(w, h, margin int64, opts ...Option) (*polygon.Instance, error) {
	if err := validateMin(methodFrame, "margin", margin, 1); err != nil {
		return nil, err
	}
	if err := validateMin(methodFrame, "w", w, 2*margin+1); err != nil {
		return nil, err
	}
	if err := validateMin(methodFrame, "h", h, 2*margin+1); err != nil {
		return nil, err
	}
	var s shape
	s.outer(pt(0, 0), pt(w, 0), pt(w, h), pt(0, h))
	s.hole(pt(margin, margin), pt(margin, h-margin), pt(w-margin, h-margin), pt(w-margin, margin))

	return s.build(methodFrame, resolve(opts))
}

// RoomChain returns rooms square rooms of side size placed left to right and
// joined by corridors of width and length door, centred on the room height.
func RoomChain(rooms int, size, door int64, opts ...Option) (*polygon.Instance, error) {
	if err := validateMin(methodRoomChain, "rooms", int64(rooms), 1); err != nil {
		return nil, err
	}
	if err := validateMin(methodRoomChain, "door", door, 1); err != nil {
		return nil, err
	}
	if err := validateMin(methodRoomChain, "size", size, door+2); err != nil {
		return nil, err
	}

	d0 := (size - door) / 2
	d1 := d0 + door
	step := size + door

	var pts []polygon.Position
	for k := 0; k < rooms; k++ {
		xs := int64(k) * step
		xe := xs + size
		pts = append(pts, pt(xs, 0), pt(xe, 0))
		if k < rooms-1 {
			pts = append(pts, pt(xe, d0), pt(xe+door, d0))
		}
	}
	for k := rooms - 1; k >= 0; k-- {
		xs := int64(k) * step
		xe := xs + size
		pts = append(pts, pt(xe, size), pt(xs, size))
		if k > 0 {
			pts = append(pts, pt(xs, d1), pt(xs-door, d1))
		}
	}
	var s shape
	s.outer(pts...)

	return s.build(methodRoomChain, resolve(opts))
}

// Star returns a star with the given number of spikes: 2·spikes vertices
// alternating between radius outer and radius inner around the centre
// (outer, outer), rounded to integer coordinates. Every inner vertex is reflex
// and no edge is axis-parallel in general, so shadows are bounded by oblique
// windows.
func Star(spikes int, inner, outer int64, opts ...Option) (*polygon.Instance, error) {
	if err := validateMin(methodStar, "spikes", int64(spikes), 3); err != nil {
		return nil, err
	}
	if err := validateMin(methodStar, "inner", inner, 1); err != nil {
		return nil, err
	}
	if err := validateMin(methodStar, "outer", outer, inner+1); err != nil {
		return nil, err
	}

	pts := make([]polygon.Position, 0, 2*spikes)
	for i := 0; i < 2*spikes; i++ {
		r := float64(outer)
		if i%2 == 1 {
			r = float64(inner)
		}
		a := math.Pi * float64(i) / float64(spikes)
		pts = append(pts, pt(outer+int64(math.Round(r*math.Cos(a))), outer+int64(math.Round(r*math.Sin(a)))))
	}
	var s shape
	s.outer(pts...)

	return s.build(methodStar, resolve(opts))
}
