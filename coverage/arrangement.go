// SPDX-License-Identifier: MIT

package coverage

import (
	"context"
	"fmt"
	"math"
	"sort"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/dispagp/geometry"
)

// trapezoid is the part of one slab between two consecutive segment groups.
type trapezoid struct {
	lo, hi int // keys of the bounding segments
	p      geometry.Point
}

// facePoints returns at least one point strictly inside every face into which
// the boundary of pw and the extra segments cut the region.
//
// Steps:
//  1. Collect the boundary edges and the non-degenerate extra segments,
//     dropping exact duplicates.
//  2. Event abscissae: every endpoint plus every pairwise crossing.
//  3. In each open slab between consecutive events, order the segments that
//     span it by height on the slab's middle line. Each gap between
//     consecutive heights belongs to exactly one face.
//  4. Keep gaps whose centre is inside the region. A gap continues the gap of
//     the previous slab when both are bounded by the same two segments and no
//     vertical segment separates them on the shared event line; only the
//     first gap of each such run yields a point.
//
// A face is visited by at least one slab, so no face is missed; a face whose
// runs break (around the end of a segment) yields more than one point.
//
// Complexity: O(S² + K·S log S) for S segments and K events; slabs are
// processed by up to workers goroutines.
func facePoints(ctx context.Context, pw geometry.PolygonWithHoles, extra []geometry.Segment, workers int) ([]geometry.Point, error) {
	segs := collectSegments(pw, extra)
	lo, hi := pw.Outer.Bounds()
	tol := 1e-9 * (1 + math.Max(hi.X-lo.X, hi.Y-lo.Y))

	// 2) Events.
	xs := make([]float64, 0, 2*len(segs))
	for _, s := range segs {
		xs = append(xs, s.A.X, s.B.X)
	}
	for i := range segs {
		if i%64 == 0 {
			if err := ctx.Err(); err != nil {
				return nil, fmt.Errorf("coverage: arrangement events: %w", err)
			}
		}
		ai, bi := segs[i].XRange()
		for j := i + 1; j < len(segs); j++ {
			aj, bj := segs[j].XRange()
			if bj < ai || aj > bi {
				continue
			}
			if p, ok := geometry.Intersection(segs[i], segs[j]); ok {
				xs = append(xs, p.X)
			}
		}
	}
	events := dedupe(xs, tol)
	if len(events) < 2 {
		return nil, nil
	}

	// 3) Slabs, in parallel.
	slabs := make([][]trapezoid, len(events)-1)
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	const chunk = 32
	for start := 0; start < len(slabs); start += chunk {
		start := start
		end := min(start+chunk, len(slabs))
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			for k := start; k < end; k++ {
				if events[k+1]-events[k] > tol {
					slabs[k] = slab(pw, segs, events[k], events[k+1], tol)
				}
			}

			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("coverage: arrangement slabs: %w", err)
	}

	// 4) Chain gaps across slabs.
	verticals := make(map[int][]geometry.Segment)
	for _, s := range segs {
		if s.Vertical() {
			k := sort.SearchFloat64s(events, s.A.X-tol)
			verticals[k] = append(verticals[k], s)
		}
	}
	var out []geometry.Point
	prev := map[[2]int]bool{}
	for k, traps := range slabs {
		cur := make(map[[2]int]bool, len(traps))
		for _, t := range traps {
			key := [2]int{t.lo, t.hi}
			cur[key] = true
			if prev[key] && !separated(verticals[k], events[k], segs[t.lo], segs[t.hi], tol) {
				continue
			}
			out = append(out, t.p)
		}
		prev = cur
	}

	return out, nil
}

// slab returns the inside gaps of the open slab (x0, x1).
func slab(pw geometry.PolygonWithHoles, segs []geometry.Segment, x0, x1, tol float64) []trapezoid {
	type crossing struct {
		y   float64
		key int
	}
	xm := (x0 + x1) / 2
	var cs []crossing
	for i, s := range segs {
		if s.Vertical() {
			continue
		}
		a, b := s.XRange()
		if a < xm && xm < b {
			cs = append(cs, crossing{y: s.YAt(xm), key: i})
		}
	}
	sort.Slice(cs, func(i, j int) bool {
		if cs[i].y != cs[j].y {
			return cs[i].y < cs[j].y
		}

		return cs[i].key < cs[j].key
	})

	// Overlapping segments form one group, named by its smallest key.
	var groups []crossing
	for _, c := range cs {
		if n := len(groups); n > 0 && c.y-groups[n-1].y <= tol {
			groups[n-1].key = min(groups[n-1].key, c.key)

			continue
		}
		groups = append(groups, c)
	}

	var out []trapezoid
	for i := 1; i < len(groups); i++ {
		below, above := groups[i-1], groups[i]
		if above.y-below.y <= tol {
			continue
		}
		p := geometry.Pt(xm, (below.y+above.y)/2)
		if pw.Locate(p) == geometry.Inside {
			out = append(out, trapezoid{lo: below.key, hi: above.key, p: p})
		}
	}

	return out
}

// separated reports whether the open interval between lo and hi on the line
// x is empty or cut by a vertical segment.
func separated(verticals []geometry.Segment, x float64, lo, hi geometry.Segment, tol float64) bool {
	ylo, yhi := lo.YAt(x), hi.YAt(x)
	if yhi-ylo <= tol {
		return true
	}
	for _, v := range verticals {
		a, b := min(v.A.Y, v.B.Y), max(v.A.Y, v.B.Y)
		if a < yhi-tol && b > ylo+tol {
			return true
		}
	}

	return false
}

func collectSegments(pw geometry.PolygonWithHoles, extra []geometry.Segment) []geometry.Segment {
	seen := make(map[geometry.Segment]bool)
	var out []geometry.Segment
	add := func(s geometry.Segment) {
		if s.Degenerate() {
			return
		}
		if s.B.X < s.A.X || (s.B.X == s.A.X && s.B.Y < s.A.Y) {
			s.A, s.B = s.B, s.A
		}
		if !seen[s] {
			seen[s] = true
			out = append(out, s)
		}
	}
	for _, ring := range pw.Rings() {
		for i := range ring {
			a, b := ring.Edge(i)
			add(geometry.Segment{A: a, B: b})
		}
	}
	for _, s := range extra {
		add(s)
	}

	return out
}

// dedupe sorts xs and merges values closer than tol.
func dedupe(xs []float64, tol float64) []float64 {
	sort.Float64s(xs)
	out := xs[:0]
	for _, x := range xs {
		if n := len(out); n > 0 && x-out[n-1] <= tol {
			continue
		}
		out = append(out, x)
	}

	return out
}
