// SPDX-License-Identifier: MIT

package optimizer

import (
	"context"
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/dispagp/guardgraph"
	"github.com/katalvlaran/dispagp/sat"
)

// Optimizer owns one incremental model over a fixed witness set.
type Optimizer struct {
	dists   Distances
	backend sat.Backend
	log     logrus.FieldLogger
	obs     Observer

	n      int
	levels []int64   // ladder followed by Infinity
	x      []sat.Lit // guard selection
	act    []sat.Lit // level activation, len(levels)

	pairs     []guardgraph.Pair
	cursor    int // pairs[:cursor] have their exclusion clause
	committed int // highest level asserted as a unit clause

	cover [][]int // coverage constraints, for model verification

	incumbent []int
	objective int64
	lbLevel   int
	ubLevel   int

	stats Stats
}

// New builds the guard variables, the level chain and the +∞ encoding.
// The initial incumbent selects every guard.
func New(dists Distances, backend sat.Backend, opts ...Option) (*Optimizer, error) {
	if dists == nil || backend == nil {
		return nil, ErrNilArgument
	}
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	start := time.Now()

	n := dists.NumGuards()
	if n < 1 {
		return nil, fmt.Errorf("%w: no guards", ErrUncoverable)
	}
	ladder := dists.Ladder()
	o := &Optimizer{
		dists:   dists,
		backend: backend,
		log:     cfg.Logger.WithField("component", "optimizer"),
		obs:     cfg.Observer,
		n:       n,
		levels:  append(append(make([]int64, 0, len(ladder)+1), ladder...), Infinity),
		pairs:   dists.Pairs(),
	}

	// 1) variables
	o.x = make([]sat.Lit, n)
	for g := range o.x {
		o.x[g] = backend.NewVar()
	}
	o.act = make([]sat.Lit, len(o.levels))
	for k := range o.act {
		o.act[k] = backend.NewVar()
	}

	// 2) level chain a_k → a_{k-1}
	for k := 1; k < len(o.act); k++ {
		if err := backend.AddClause(o.act[k].Not(), o.act[k-1]); err != nil {
			return nil, fmt.Errorf("optimizer: level chain: %w", err)
		}
	}

	// 3) +∞ level: at most one guard
	if err := o.atMostOne(o.act[len(o.act)-1]); err != nil {
		return nil, fmt.Errorf("optimizer: at-most-one: %w", err)
	}

	// 4) incumbent: all guards
	o.incumbent = make([]int, n)
	for g := range o.incumbent {
		o.incumbent[g] = g
	}
	obj, err := dists.MinDistanceOf(o.incumbent)
	if err != nil {
		return nil, fmt.Errorf("optimizer: initial incumbent: %w", err)
	}
	o.objective = obj
	o.lbLevel = o.levelOf(obj)
	o.ubLevel = len(o.levels) - 1

	o.stats.Build = time.Since(start)
	o.log.WithFields(logrus.Fields{
		"guards": n,
		"levels": len(o.levels),
		"pairs":  len(o.pairs),
	}).Debug("model built")

	return o, nil
}

// atMostOne adds the sequential at-most-one encoding over x, each clause
// disabled unless guard is true.
func (o *Optimizer) atMostOne(guard sat.Lit) error {
	if o.n < 2 {
		return nil
	}
	off := guard.Not()
	s := make([]sat.Lit, o.n-1)
	for i := range s {
		s[i] = o.backend.NewVar()
	}
	add := o.backend.AddClause
	if err := add(off, o.x[0].Not(), s[0]); err != nil {
		return err
	}
	for i := 1; i < o.n-1; i++ {
		if err := add(off, o.x[i].Not(), s[i]); err != nil {
			return err
		}
		if err := add(off, s[i-1].Not(), s[i]); err != nil {
			return err
		}
		if err := add(off, o.x[i].Not(), s[i-1].Not()); err != nil {
			return err
		}
	}

	return add(off, o.x[o.n-1].Not(), s[o.n-2].Not())
}

// AddCoverageConstraint requires at least one of guards to be selected.
func (o *Optimizer) AddCoverageConstraint(guards ...int) error {
	if len(guards) == 0 {
		return ErrUncoverable
	}
	lits := make([]sat.Lit, len(guards))
	for i, g := range guards {
		if g < 0 || g >= o.n {
			return fmt.Errorf("%w: %d not in [0,%d)", ErrGuardOutOfRange, g, o.n)
		}
		lits[i] = o.x[g]
	}
	if err := o.backend.AddClause(lits...); err != nil {
		return fmt.Errorf("optimizer: coverage: %w", err)
	}
	o.cover = append(o.cover, append([]int(nil), guards...))
	o.stats.Witnesses++

	return nil
}

// AddUpperBound seeds a known upper bound on the objective. It is snapped to
// the largest ladder value not above d and ignored unless tighter.
func (o *Optimizer) AddUpperBound(d int64) error {
	if d >= o.levels[o.ubLevel] {
		return nil
	}
	k := sort.Search(len(o.levels), func(i int) bool { return o.levels[i] > d }) - 1
	if k < o.lbLevel {
		return fmt.Errorf("%w: upper bound %d below objective %s",
			ErrInconsistentModel, d, FormatDistance(o.objective))
	}
	o.ubLevel = k
	o.log.WithField("upper", FormatDistance(o.levels[k])).Debug("upper bound seeded")

	return nil
}

// Solve probes until the bounds meet, the relative gap is at most tol, or ctx
// ends. Timeouts return ErrTimeout with the bounds reached so far intact.
func (o *Optimizer) Solve(ctx context.Context, strategy Strategy, tol float64) error {
	if strategy != Binary && strategy != Linear {
		return fmt.Errorf("%w: %s", ErrUnknownStrategy, strategy)
	}
	if tol < 0 || math.IsNaN(tol) {
		tol = 0
	}
	o.stats.SolveCalls++

	for o.lbLevel < o.ubLevel {
		if o.Gap() <= tol {
			o.log.WithField("gap", o.Gap()).Debug("within tolerance")
			return nil
		}
		if err := ctx.Err(); err != nil {
			return fmt.Errorf("%w: %v", ErrTimeout, err)
		}
		if err := o.probe(ctx, o.next(strategy)); err != nil {
			return err
		}
	}

	return nil
}

// next returns the level to probe; lbLevel < ubLevel holds on entry.
func (o *Optimizer) next(strategy Strategy) int {
	top := len(o.levels) - 1
	if o.ubLevel == top {
		return top
	}
	if strategy == Linear {
		return o.lbLevel + 1
	}

	return o.lbLevel + (o.ubLevel-o.lbLevel+1)/2
}

func (o *Optimizer) probe(ctx context.Context, k int) error {
	if k < len(o.levels)-1 {
		if err := o.forbidBelow(o.levels[k]); err != nil {
			return err
		}
	}

	start := time.Now()
	out, err := o.backend.Solve(ctx, o.act[k])
	dur := time.Since(start)
	if err != nil {
		return fmt.Errorf("optimizer: probe at %s: %w", FormatDistance(o.levels[k]), err)
	}

	switch out {
	case sat.Satisfiable:
		if err = o.accept(k); err != nil {
			return err
		}
	case sat.Unsatisfiable:
		o.ubLevel = k - 1
	}

	rec := Probe{
		Threshold: o.levels[k],
		Outcome:   out,
		Duration:  dur,
		Clauses:   o.backend.NumClauses(),
		Lower:     o.objective,
		Upper:     o.UpperBound(),
	}
	o.stats.Probes = append(o.stats.Probes, rec)
	if o.obs != nil {
		o.obs.ObserveProbe(out, dur)
	}
	o.log.WithFields(logrus.Fields{
		"threshold": FormatDistance(rec.Threshold),
		"outcome":   out.String(),
		"lower":     FormatDistance(rec.Lower),
		"upper":     FormatDistance(rec.Upper),
		"clauses":   rec.Clauses,
		"seconds":   dur.Seconds(),
	}).Debug("probe")

	if out == sat.Unknown {
		return fmt.Errorf("%w: probe at %s interrupted", ErrTimeout, FormatDistance(rec.Threshold))
	}

	return nil
}

// accept reads the model of a SAT probe at level k into the incumbent.
func (o *Optimizer) accept(k int) error {
	sel := make([]int, 0, o.n)
	for g, l := range o.x {
		if o.backend.Value(l) {
			sel = append(sel, g)
		}
	}
	for _, c := range o.cover {
		if !intersects(c, sel) {
			return fmt.Errorf("%w: model misses coverage constraint %v", ErrInconsistentModel, c)
		}
	}
	if len(sel) == 0 {
		// nothing to cover: any single guard will do
		sel = append(sel, 0)
	}
	v, err := o.dists.MinDistanceOf(sel)
	if err != nil {
		return fmt.Errorf("optimizer: model distance: %w", err)
	}
	if v < o.levels[k] {
		return fmt.Errorf("%w: model distance %s below threshold %s",
			ErrInconsistentModel, FormatDistance(v), FormatDistance(o.levels[k]))
	}

	o.incumbent = sel
	o.objective = v
	o.lbLevel = o.levelOf(v)
	if o.lbLevel > o.ubLevel {
		return fmt.Errorf("%w: lower bound %s above upper bound %s",
			ErrInconsistentModel, FormatDistance(v), FormatDistance(o.UpperBound()))
	}

	return o.commit(o.lbLevel)
}

// commit asserts level k permanently.
func (o *Optimizer) commit(k int) error {
	if k <= o.committed || k == len(o.levels)-1 {
		return nil
	}
	if err := o.backend.AddClause(o.act[k]); err != nil {
		return fmt.Errorf("optimizer: commit level: %w", err)
	}
	o.committed = k

	return nil
}

// forbidBelow adds the exclusion clause of every pair closer than d, a finite
// ladder value; the +∞ level relies on at-most-one instead.
func (o *Optimizer) forbidBelow(d int64) error {
	for ; o.cursor < len(o.pairs) && o.pairs[o.cursor].D < d; o.cursor++ {
		p := o.pairs[o.cursor]
		j := o.levelOf(p.D)
		if err := o.backend.AddClause(o.x[p.I].Not(), o.x[p.J].Not(), o.act[j+1].Not()); err != nil {
			return fmt.Errorf("optimizer: exclusion %d-%d: %w", p.I, p.J, err)
		}
		o.stats.ForbiddenPairs++
	}

	return nil
}

func (o *Optimizer) levelOf(d int64) int {
	return sort.Search(len(o.levels), func(i int) bool { return o.levels[i] >= d })
}

// Objective returns the minimum pairwise distance of the incumbent.
func (o *Optimizer) Objective() int64 { return o.objective }

// UpperBound returns the proven upper bound.
func (o *Optimizer) UpperBound() int64 { return o.levels[o.ubLevel] }

// Bounds returns (lower, upper).
func (o *Optimizer) Bounds() (int64, int64) { return o.objective, o.UpperBound() }

// Proven reports whether the bounds have met.
func (o *Optimizer) Proven() bool { return o.lbLevel >= o.ubLevel }

// Gap returns (upper − objective) / objective, or +Inf while the objective is
// zero or the upper bound is still infinite.
func (o *Optimizer) Gap() float64 {
	lb, ub := o.Bounds()
	switch {
	case lb == ub:
		return 0
	case lb == 0, ub == Infinity:
		return math.Inf(1)
	default:
		return float64(ub-lb) / float64(lb)
	}
}

// Solution returns a copy of the incumbent guard selection (ascending).
func (o *Optimizer) Solution() []int {
	return append([]int(nil), o.incumbent...)
}

// Stats returns a snapshot of the model statistics and the probe log.
func (o *Optimizer) Stats() Stats {
	s := o.stats
	s.Vars = o.backend.NumVars()
	s.Clauses = o.backend.NumClauses()
	s.Probes = append([]Probe(nil), o.stats.Probes...)

	return s
}

func intersects(a, b []int) bool {
	for _, x := range a {
		for _, y := range b {
			if x == y {
				return true
			}
		}
	}

	return false
}
