// SPDX-License-Identifier: MIT

package coverage

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/dispagp/geometry"
	"github.com/katalvlaran/dispagp/logging"
	"github.com/katalvlaran/dispagp/polygon"
)

var (
	// ErrNilInstance indicates a nil *polygon.Instance.
	ErrNilInstance = errors.New("coverage: instance is nil")

	// ErrBadWorkers is the panic value of WithWorkers for n < 1.
	ErrBadWorkers = errors.New("coverage: workers must be positive")

	// ErrGuardOutOfRange indicates a guard index outside the instance.
	ErrGuardOutOfRange = errors.New("coverage: guard index out of range")
)

// Options configures NewOracle.
type Options struct {
	Workers int
	Logger  logrus.FieldLogger
}

// Option is a functional option for NewOracle.
type Option func(*Options)

// WithWorkers bounds the number of goroutines used for the visibility matrix.
// Panics if n < 1.
func WithWorkers(n int) Option {
	if n < 1 {
		panic(ErrBadWorkers.Error())
	}

	return func(o *Options) { o.Workers = n }
}

// WithLogger sets the logger.
func WithLogger(l logrus.FieldLogger) Option {
	return func(o *Options) { o.Logger = logging.OrDiscard(l) }
}

// DefaultOptions uses four workers and a discarding logger.
func DefaultOptions() Options {
	return Options{Workers: 4, Logger: logging.Discard()}
}

// Stats describes the one-time precomputation.
type Stats struct {
	ComputeVisibility time.Duration
	VisiblePairs      int
	Windows           int
}

// Oracle is the read-only coverage oracle of one instance.
type Oracle struct {
	inst   *polygon.Instance
	region geometry.PolygonWithHoles
	points  []geometry.Point
	n       int
	vis     []bool // n×n, row-major, symmetric
	windows [][]geometry.Segment
	workers int
	stats   Stats
}

// NewOracle precomputes the mutual-visibility matrix of inst and the windows
// of every vertex's visibility region.
//
// Steps:
//  1. Convert vertex positions once.
//  2. Partition rows over Workers goroutines; row i fills pairs (i, j>i) and mirrors them.
//  3. For every guard g and every vertex v it sees, extend the ray g→v past v
//     through the polygon; a non-empty extension is a window of g.
//  4. Abort with ctx.Err() if the context ends before all rows are done.
//
// Complexity: O(N² · n log n) for N vertices and n boundary vertices.
func NewOracle(ctx context.Context, inst *polygon.Instance, opts ...Option) (*Oracle, error) {
	if inst == nil {
		return nil, ErrNilInstance
	}
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	n := inst.NumPositions()
	o := &Oracle{
		inst:   inst,
		region: inst.Region(),
		points:  make([]geometry.Point, n),
		n:       n,
		vis:     make([]bool, n*n),
		windows: make([][]geometry.Segment, n),
		workers: cfg.Workers,
	}
	for i := range o.points {
		o.points[i] = inst.Point(i)
		o.vis[i*n+i] = true
	}

	start := time.Now()
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(cfg.Workers)
	for i := 0; i < n; i++ {
		i := i
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			for j := i + 1; j < n; j++ {
				if o.region.SegmentInside(o.points[i], o.points[j]) {
					o.vis[i*n+j] = true
					o.vis[j*n+i] = true
				}
			}

			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("coverage: visibility matrix: %w", err)
	}

	g, gctx = errgroup.WithContext(ctx)
	g.SetLimit(cfg.Workers)
	for i := 0; i < n; i++ {
		i := i
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			o.windows[i] = o.computeWindows(i)

			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("coverage: windows: %w", err)
	}

	o.stats.ComputeVisibility = time.Since(start)
	for i := 0; i < n; i++ {
		o.stats.Windows += len(o.windows[i])
		for j := i + 1; j < n; j++ {
			if o.vis[i*n+j] {
				o.stats.VisiblePairs++
			}
		}
	}
	cfg.Logger.WithFields(logrus.Fields{
		"vertices":      n,
		"visible_pairs": o.stats.VisiblePairs,
		"windows":       o.stats.Windows,
		"elapsed":       o.stats.ComputeVisibility,
	}).Debug("visibility matrix computed")

	return o, nil
}

// computeWindows returns the windows of guard g: for each visible vertex v,
// the part of the ray g→v beyond v that stays in the polygon. Together with
// the polygon boundary they bound g's visibility region.
func (o *Oracle) computeWindows(g int) []geometry.Segment {
	var out []geometry.Segment
	apex := o.points[g]
	for v := 0; v < o.n; v++ {
		if v == g || !o.vis[g*o.n+v] || o.points[v] == apex {
			continue
		}
		if q, ok := o.region.Extend(o.points[v], o.points[v].Sub(apex)); ok {
			out = append(out, geometry.Segment{A: o.points[v], B: q})
		}
	}

	return out
}

// Instance returns the underlying instance.
func (o *Oracle) Instance() *polygon.Instance { return o.inst }

// NumGuards returns the number of guard candidates.
func (o *Oracle) NumGuards() int { return o.n }

// MutuallyVisible reports whether vertices a and b see each other.
// Out-of-range indices yield false.
func (o *Oracle) MutuallyVisible(a, b int) bool {
	if a < 0 || b < 0 || a >= o.n || b >= o.n {
		return false
	}

	return o.vis[a*o.n+b]
}

// VisibilityRegion returns the closed visibility region of guard g.
func (o *Oracle) VisibilityRegion(g int) (Region, error) {
	if g < 0 || g >= o.n {
		return nil, fmt.Errorf("%w: %d", ErrGuardOutOfRange, g)
	}

	return VisibilityRegion{Polygon: o.region, Apex: o.points[g]}, nil
}

// Windows returns a copy of the window segments of guard g's visibility region.
func (o *Oracle) Windows(g int) ([]geometry.Segment, error) {
	if g < 0 || g >= o.n {
		return nil, fmt.Errorf("%w: %d", ErrGuardOutOfRange, g)
	}

	return append([]geometry.Segment(nil), o.windows[g]...), nil
}

// FacePoints returns at least one point inside every face of the arrangement
// cut by the polygon boundary and the windows of guards; nil guards means all
// of them. The visibility of each of those guards is constant on every face,
// so testing these points decides coverage of the whole polygon exactly.
func (o *Oracle) FacePoints(ctx context.Context, guards []int) ([]geometry.Point, error) {
	if guards == nil {
		guards = make([]int, o.n)
		for g := range guards {
			guards[g] = g
		}
	}
	var segs []geometry.Segment
	for _, g := range guards {
		if g < 0 || g >= o.n {
			return nil, fmt.Errorf("%w: %d", ErrGuardOutOfRange, g)
		}
		segs = append(segs, o.windows[g]...)
	}

	return facePoints(ctx, o.region, segs, o.workers)
}

// UncoveredFaces returns one point of every arrangement face that no guard of
// guards sees. An empty result proves that guards cover the polygon.
func (o *Oracle) UncoveredFaces(ctx context.Context, guards []int) ([]geometry.Point, error) {
	pts, err := o.FacePoints(ctx, guards)
	if err != nil {
		return nil, err
	}

	return o.Uncovered(guards, pts)
}

// Sees reports whether guard g sees p.
func (o *Oracle) Sees(g int, p geometry.Point) bool {
	return o.region.SegmentInside(o.points[g], p)
}

// GuardsSeeing returns, in ascending order, every guard that sees p.
func (o *Oracle) GuardsSeeing(p geometry.Point) []int {
	var out []int
	for g := 0; g < o.n; g++ {
		if o.Sees(g, p) {
			out = append(out, g)
		}
	}

	return out
}

// Difference subtracts b from a. The result is a list for symmetry with
// polygon-clipping libraries; membership-based regions always yield one element.
func (o *Oracle) Difference(a, b Region) []Region {
	return []Region{Difference(a, b)}
}

// UncoveredRegion returns the part of the polygon seen by none of guards.
func (o *Oracle) UncoveredRegion(guards []int) (Region, error) {
	rs := make([]Region, len(guards))
	for i, g := range guards {
		r, err := o.VisibilityRegion(g)
		if err != nil {
			return nil, err
		}
		rs[i] = r
	}

	return Difference(polygonRegion{o.region}, Union(rs...)), nil
}

// Uncovered returns the samples inside the polygon that no guard of guards sees.
func (o *Oracle) Uncovered(guards []int, samples []geometry.Point) ([]geometry.Point, error) {
	r, err := o.UncoveredRegion(guards)
	if err != nil {
		return nil, err
	}
	var out []geometry.Point
	for _, p := range samples {
		if r.Contains(p) {
			out = append(out, p)
		}
	}

	return out, nil
}

// Stats returns precomputation statistics.
func (o *Oracle) Stats() Stats { return o.stats }

type polygonRegion struct {
	pw geometry.PolygonWithHoles
}

func (r polygonRegion) Contains(p geometry.Point) bool { return r.pw.Contains(p) }
