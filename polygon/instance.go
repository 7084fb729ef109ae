// SPDX-License-Identifier: MIT

package polygon

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/dispagp/geometry"
)

// Sentinel errors for instance validation.
var (
	// ErrTooFewVertices indicates a boundary or hole with fewer than three indices.
	ErrTooFewVertices = errors.New("polygon: ring needs at least three vertices")

	// ErrInvalidIndex indicates malformed boundary/hole indexing.
	ErrInvalidIndex = errors.New("polygon: invalid vertex index")

	// ErrDegenerate indicates a ring with zero area.
	ErrDegenerate = errors.New("polygon: ring has zero area")

	// ErrNotSimple indicates self-intersecting rings or rings that touch each other.
	ErrNotSimple = errors.New("polygon: ring is not simple")

	// ErrInvalidHole indicates a hole that is not strictly inside the boundary.
	ErrInvalidHole = errors.New("polygon: hole is not inside the boundary")
)

// Position is an integer vertex coordinate.
type Position struct {
	X int64
	Y int64
}

// Point converts the position to a geometry.Point.
func (p Position) Point() geometry.Point {
	return geometry.Point{X: float64(p.X), Y: float64(p.Y)}
}

// Manhattan returns the L1 distance between p and q.
func (p Position) Manhattan(q Position) int64 {
	return absInt(p.X-q.X) + absInt(p.Y-q.Y)
}

// Instance is a validated polygon with holes whose vertices are the guard candidates.
type Instance struct {
	positions []Position
	boundary  []int
	holes     [][]int
	region    geometry.PolygonWithHoles
}

// New validates and builds an Instance. The input slices are copied.
//
// Implementation:
//   - Stage 1: index checks (range, every position used by exactly one ring exactly once).
//   - Stage 2: orientation normalisation (boundary CCW, holes CW) and area checks.
//   - Stage 3: simplicity of every ring and pairwise disjointness of rings.
//   - Stage 4: every hole strictly inside the boundary and outside the other holes.
//
// Complexity: O(n²) for n = total number of vertices (simplicity checks).
func New(positions []Position, boundary []int, holes [][]int) (*Instance, error) {
	inst := &Instance{
		positions: append([]Position(nil), positions...),
		boundary:  append([]int(nil), boundary...),
		holes:     make([][]int, len(holes)),
	}
	for i, h := range holes {
		inst.holes[i] = append([]int(nil), h...)
	}

	if err := inst.checkIndices(); err != nil {
		return nil, err
	}
	if err := inst.normalize(); err != nil {
		return nil, err
	}
	if err := inst.checkSimple(); err != nil {
		return nil, err
	}
	if err := inst.checkHoles(); err != nil {
		return nil, err
	}

	return inst, nil
}

func (in *Instance) checkIndices() error {
	used := make([]bool, len(in.positions))
	check := func(name string, ring []int) error {
		if len(ring) < 3 {
			return fmt.Errorf("%s has %d vertices: %w", name, len(ring), ErrTooFewVertices)
		}
		for _, idx := range ring {
			if idx < 0 || idx >= len(in.positions) {
				return fmt.Errorf("%s: index %d not in [0,%d): %w", name, idx, len(in.positions), ErrInvalidIndex)
			}
			if used[idx] {
				return fmt.Errorf("%s: index %d used twice: %w", name, idx, ErrInvalidIndex)
			}
			used[idx] = true
		}

		return nil
	}

	if err := check("boundary", in.boundary); err != nil {
		return err
	}
	for i, h := range in.holes {
		if err := check(fmt.Sprintf("hole %d", i), h); err != nil {
			return err
		}
	}
	for idx, ok := range used {
		if !ok {
			return fmt.Errorf("position %d is not on any ring: %w", idx, ErrInvalidIndex)
		}
	}

	return nil
}

// normalize orients the boundary counter-clockwise and every hole clockwise.
func (in *Instance) normalize() error {
	outer := in.ring(in.boundary)
	switch a := outer.SignedArea(); {
	case a == 0:
		return fmt.Errorf("boundary: %w", ErrDegenerate)
	case a < 0:
		reverse(in.boundary)
		outer = outer.Reverse()
	}

	holes := make([]geometry.Ring, len(in.holes))
	for i, h := range in.holes {
		r := in.ring(h)
		switch a := r.SignedArea(); {
		case a == 0:
			return fmt.Errorf("hole %d: %w", i, ErrDegenerate)
		case a > 0:
			reverse(h)
			r = r.Reverse()
		}
		holes[i] = r
	}
	in.region = geometry.PolygonWithHoles{Outer: outer, Holes: holes}

	return nil
}

func (in *Instance) checkSimple() error {
	rings := in.region.Rings()
	for i, r := range rings {
		if !r.IsSimple() {
			return fmt.Errorf("%s: %w", ringName(i), ErrNotSimple)
		}
		for j := i + 1; j < len(rings); j++ {
			if r.Intersects(rings[j]) {
				return fmt.Errorf("%s touches %s: %w", ringName(i), ringName(j), ErrNotSimple)
			}
		}
	}

	return nil
}

// checkHoles assumes rings are pairwise disjoint, so one vertex decides containment.
func (in *Instance) checkHoles() error {
	for i, h := range in.region.Holes {
		if in.region.Outer.Locate(h[0]) != geometry.Inside {
			return fmt.Errorf("hole %d: %w", i, ErrInvalidHole)
		}
		for j, other := range in.region.Holes {
			if i != j && other.Locate(h[0]) == geometry.Inside {
				return fmt.Errorf("hole %d lies inside hole %d: %w", i, j, ErrInvalidHole)
			}
		}
	}

	return nil
}

func (in *Instance) ring(idx []int) geometry.Ring {
	r := make(geometry.Ring, len(idx))
	for i, v := range idx {
		r[i] = in.positions[v].Point()
	}

	return r
}

// NumPositions returns the number of vertices, i.e. guard candidates.
func (in *Instance) NumPositions() int { return len(in.positions) }

// NumHoles returns the number of holes.
func (in *Instance) NumHoles() int { return len(in.holes) }

// Position returns the integer coordinate of vertex i.
func (in *Instance) Position(i int) Position { return in.positions[i] }

// Point returns vertex i as a geometry.Point.
func (in *Instance) Point(i int) geometry.Point { return in.positions[i].Point() }

// Positions returns a copy of all vertex coordinates.
func (in *Instance) Positions() []Position { return append([]Position(nil), in.positions...) }

// Boundary returns a copy of the (counter-clockwise) boundary cycle.
func (in *Instance) Boundary() []int { return append([]int(nil), in.boundary...) }

// Holes returns a copy of the (clockwise) hole cycles.
func (in *Instance) Holes() [][]int {
	out := make([][]int, len(in.holes))
	for i, h := range in.holes {
		out[i] = append([]int(nil), h...)
	}

	return out
}

// Region returns the polygon as a geometry.PolygonWithHoles.
func (in *Instance) Region() geometry.PolygonWithHoles { return in.region }

// Bounds returns the bounding box of the boundary.
func (in *Instance) Bounds() (lo, hi geometry.Point) { return in.region.Outer.Bounds() }

// Area returns the enclosed area.
func (in *Instance) Area() float64 { return in.region.Area() }

func ringName(i int) string {
	if i == 0 {
		return "boundary"
	}

	return fmt.Sprintf("hole %d", i-1)
}

func reverse(s []int) {
	for i, j := 0, len(s)-1; i < j; i, j = i+1, j-1 {
		s[i], s[j] = s[j], s[i]
	}
}

func absInt(v int64) int64 {
	if v < 0 {
		return -v
	}

	return v
}
