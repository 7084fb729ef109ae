// SPDX-License-Identifier: MIT

package witness

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/dispagp/geometry"
	"github.com/katalvlaran/dispagp/logging"
)

var (
	// ErrBadWorkers is the panic value of WithWorkers for n < 1.
	ErrBadWorkers = errors.New("witness: workers must be positive")

	// ErrNoGuards indicates a source without guard candidates.
	ErrNoGuards = errors.New("witness: no guard candidates")
)

// Source is the visibility information the shadow provider needs.
// *coverage.Oracle satisfies it.
type Source interface {
	NumGuards() int
	Sees(g int, p geometry.Point) bool
	// FacePoints returns a point inside every face of the visibility
	// arrangement of guards (all guards when nil).
	FacePoints(ctx context.Context, guards []int) ([]geometry.Point, error)
}

// ShadowOptions configures NewShadowProvider.
type ShadowOptions struct {
	Workers int
	Logger  logrus.FieldLogger
}

// ShadowOption is a functional option for NewShadowProvider.
type ShadowOption func(*ShadowOptions)

// WithWorkers bounds the goroutines used for leaf visibility. Panics if n < 1.
func WithWorkers(n int) ShadowOption {
	if n < 1 {
		panic(ErrBadWorkers.Error())
	}

	return func(o *ShadowOptions) { o.Workers = n }
}

// WithLogger sets the logger.
func WithLogger(l logrus.FieldLogger) ShadowOption {
	return func(o *ShadowOptions) { o.Logger = logging.OrDiscard(l) }
}

// ShadowStats describes one computation.
type ShadowStats struct {
	Duration  time.Duration
	Points    int
	Faces     int
	Dominated int
	Witnesses int
}

// ShadowProvider computes shadow witnesses over the visibility arrangement.
type ShadowProvider struct {
	src  Source
	opts ShadowOptions

	mu     sync.Mutex
	done   bool
	points []geometry.Point
	result []Witness
	stats  ShadowStats
}

// NewShadowProvider returns a lazy, memoising provider over src.
func NewShadowProvider(src Source, opts ...ShadowOption) *ShadowProvider {
	cfg := ShadowOptions{
		Workers: 4,
		Logger:  logging.Discard(),
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return &ShadowProvider{src: src, opts: cfg}
}

// Witnesses computes the witness set on first call and returns copies of it afterwards.
// A cancelled computation is not memoised.
func (sp *ShadowProvider) Witnesses(ctx context.Context) ([]Witness, error) {
	sp.mu.Lock()
	defer sp.mu.Unlock()
	if sp.done {
		return clone(sp.result), nil
	}

	start := time.Now()
	n := sp.src.NumGuards()
	if n == 0 {
		return nil, ErrNoGuards
	}
	points, err := sp.src.FacePoints(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("witness: arrangement: %w", err)
	}

	// 1) Leaf visibility per guard, in parallel.
	seen := make([][]bool, n)
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(sp.opts.Workers)
	for gi := 0; gi < n; gi++ {
		gi := gi
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			row := make([]bool, len(points))
			for s, p := range points {
				row[s] = sp.src.Sees(gi, p)
			}
			seen[gi] = row

			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("witness: leaf visibility: %w", err)
	}

	// 2) Balanced overlay over [0, n).
	arr, err := overlay(ctx, seen, 0, n)
	if err != nil {
		return nil, err
	}

	// 3) Faces → witnesses.
	ws, faces, err := extract(arr, points)
	if err != nil {
		return nil, err
	}
	kept := removeDominated(ws, n)

	sp.points = points
	sp.result = kept
	sp.stats = ShadowStats{
		Duration:  time.Since(start),
		Points:    len(points),
		Faces:     faces,
		Dominated: len(ws) - len(kept),
		Witnesses: len(kept),
	}
	sp.done = true
	sp.opts.Logger.WithFields(logrus.Fields{
		"points":    sp.stats.Points,
		"faces":     sp.stats.Faces,
		"dominated": sp.stats.Dominated,
		"witnesses": sp.stats.Witnesses,
		"elapsed":   sp.stats.Duration,
	}).Debug("shadow witnesses computed")

	return clone(kept), nil
}

// Points returns the face points of the last successful computation.
func (sp *ShadowProvider) Points() []geometry.Point {
	sp.mu.Lock()
	defer sp.mu.Unlock()

	return append([]geometry.Point(nil), sp.points...)
}

// Stats returns statistics of the last successful computation.
func (sp *ShadowProvider) Stats() ShadowStats {
	sp.mu.Lock()
	defer sp.mu.Unlock()

	return sp.stats
}

// arrangement partitions face points into classes of equal visibility signature
// restricted to a guard range.
type arrangement struct {
	faceOf []int32 // point → class
	faces  [][]int // face → sorted guards seeing it
}

func leaf(g int, seen []bool) *arrangement {
	a := &arrangement{
		faceOf: make([]int32, len(seen)),
		faces:  [][]int{nil, {g}},
	}
	for s, ok := range seen {
		if ok {
			a.faceOf[s] = 1
		}
	}

	return a
}

// overlay merges the leaves of guards [lo, hi).
func overlay(ctx context.Context, seen [][]bool, lo, hi int) (*arrangement, error) {
	if hi-lo == 1 {
		return leaf(lo, seen[lo]), nil
	}
	mid := lo + (hi-lo)/2
	left, err := overlay(ctx, seen, lo, mid)
	if err != nil {
		return nil, err
	}
	right, err := overlay(ctx, seen, mid, hi)
	if err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("witness: overlay [%d,%d): %w", lo, hi, err)
	}

	return merge(left, right), nil
}

// merge consumes a and b. Guards of a precede guards of b, so face unions stay sorted.
func merge(a, b *arrangement) *arrangement {
	m := &arrangement{faceOf: a.faceOf}
	nb := int64(len(b.faces))
	ids := make(map[int64]int32)
	for s, fa := range a.faceOf {
		fb := b.faceOf[s]
		key := int64(fa)*nb + int64(fb)
		id, ok := ids[key]
		if !ok {
			id = int32(len(m.faces))
			ids[key] = id
			guards := make([]int, 0, len(a.faces[fa])+len(b.faces[fb]))
			guards = append(guards, a.faces[fa]...)
			guards = append(guards, b.faces[fb]...)
			m.faces = append(m.faces, guards)
		}
		m.faceOf[s] = id
	}

	return m
}

// extract turns populated faces into witnesses ordered by (size, guards).
func extract(arr *arrangement, points []geometry.Point) ([]Witness, int, error) {
	first := make([]int, len(arr.faces))
	for i := range first {
		first[i] = -1
	}
	for s, f := range arr.faceOf {
		if first[f] < 0 {
			first[f] = s
		}
	}

	var ws []Witness
	for f, guards := range arr.faces {
		if first[f] < 0 {
			continue
		}
		if len(guards) == 0 {
			return nil, 0, fmt.Errorf("%w: point %v", ErrEmptyWitness, points[first[f]])
		}
		ws = append(ws, Witness{Guards: guards})
	}
	sort.Slice(ws, func(i, j int) bool { return lessGuards(ws[i].Guards, ws[j].Guards) })

	return ws, len(ws), nil
}

func lessGuards(a, b []int) bool {
	if len(a) != len(b) {
		return len(a) < len(b)
	}
	for i := range a {
		if a[i] != b[i] {
			return a[i] < b[i]
		}
	}

	return false
}

// removeDominated drops every witness whose guard set contains another
// witness's guard set. ws must be sorted by size; IDs are renumbered.
func removeDominated(ws []Witness, n int) []Witness {
	var (
		kept []Witness
		sets []bitset
	)
	for _, w := range ws {
		bs := newBitset(n, w.Guards)
		dominated := false
		for _, k := range sets {
			if k.subsetOf(bs) {
				dominated = true

				break
			}
		}
		if dominated {
			continue
		}
		sets = append(sets, bs)
		kept = append(kept, Witness{ID: len(kept), Guards: w.Guards})
	}

	return kept
}

type bitset []uint64

func newBitset(n int, members []int) bitset {
	b := make(bitset, (n+63)/64)
	for _, m := range members {
		b[m/64] |= 1 << (uint(m) % 64)
	}

	return b
}

func (b bitset) subsetOf(o bitset) bool {
	for i := range b {
		if b[i]&^o[i] != 0 {
			return false
		}
	}

	return true
}
