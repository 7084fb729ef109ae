// SPDX-License-Identifier: MIT

package agp

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/dispagp/config"
	"github.com/katalvlaran/dispagp/coverage"
	"github.com/katalvlaran/dispagp/guardgraph"
	"github.com/katalvlaran/dispagp/optimizer"
	"github.com/katalvlaran/dispagp/polygon"
	"github.com/katalvlaran/dispagp/sat"
	"github.com/katalvlaran/dispagp/witness"
)

// Solver holds the precomputation for one instance.
type Solver struct {
	inst   *polygon.Instance
	cfg    config.Config
	opts   Options
	oracle *coverage.Oracle
	dists  *guardgraph.Graph
	wp     witness.Provider
	shadow *witness.ShadowProvider // nil for stored witnesses
	upper  int64
}

// NewSolver validates cfg and builds the coverage oracle and distance graph.
func NewSolver(ctx context.Context, inst *polygon.Instance, cfg config.Config, opts ...Option) (*Solver, error) {
	if inst == nil {
		return nil, ErrNilInstance
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	oracle, err := coverage.NewOracle(ctx, inst,
		coverage.WithWorkers(cfg.Workers),
		coverage.WithLogger(o.Logger))
	if err != nil {
		return nil, fmt.Errorf("agp: coverage: %w", err)
	}
	o.Metrics.ObservePhase("visibility", oracle.Stats().ComputeVisibility)

	apsp := guardgraph.APSPDijkstra
	if cfg.APSP == guardgraph.APSPFloydWarshall.String() {
		apsp = guardgraph.APSPFloydWarshall
	}
	dists, err := guardgraph.New(inst, oracle,
		guardgraph.WithAPSP(apsp),
		guardgraph.WithLogger(o.Logger),
		guardgraph.WithContext(ctx))
	if err != nil {
		return nil, fmt.Errorf("agp: distance graph: %w", err)
	}

	s := &Solver{inst: inst, cfg: cfg, opts: o, oracle: oracle, dists: dists, upper: Infinity}
	switch {
	case o.Witnesses != nil:
		s.wp = o.Witnesses
	case cfg.Witness.File != "":
		if s.wp, err = witness.LoadFile(cfg.Witness.File); err != nil {
			return nil, fmt.Errorf("agp: %w", err)
		}
	default:
		s.shadow = witness.NewShadowProvider(oracle,
			witness.WithWorkers(cfg.Workers),
			witness.WithLogger(o.Logger))
		s.wp = s.shadow
	}

	return s, nil
}

// AddUpperBound records a known upper bound on the objective, passed to the
// optimizer on the next Solve. Only the tightest bound is kept.
func (s *Solver) AddUpperBound(d int64) {
	if d < s.upper {
		s.upper = d
	}
}

// Oracle exposes the coverage oracle.
func (s *Solver) Oracle() *coverage.Oracle { return s.oracle }

// Distances exposes the guard distance graph.
func (s *Solver) Distances() *guardgraph.Graph { return s.dists }

// Solve runs witness computation and the threshold search under the
// configured time limit. Only invalid witnesses and backend failures are
// returned as errors; a timeout degrades the status instead.
//
// Steps:
//  1. Obtain the witness set.
//  2. Run the optimizer over it (search strategy in the first round,
//     iteration strategy afterwards).
//  3. Check the selection exactly against the arrangement of its own
//     visibility windows; this runs under ctx, not the time limit.
//  4. If faces remain unseen, add one witness per missed face and go back
//     to 2 with the last upper bound; after maxRounds, or once the time
//     limit has passed, fall back to every guard.
func (s *Solver) Solve(ctx context.Context) (*Result, error) {
	parent := ctx
	start := time.Now()
	runID := uuid.New()
	log := s.opts.Logger.WithFields(logrus.Fields{
		"run_id":  runID.String(),
		"backend": s.cfg.Backend,
	})
	ctx, cancel := context.WithTimeout(ctx, s.cfg.TimeLimit)
	defer cancel()

	res := &Result{
		RunID:      runID,
		Status:     StatusUnknown,
		Guards:     allGuards(s.dists.NumGuards()),
		UpperBound: Infinity,
		Stats:      make(map[string]any),
	}
	s.baseStats(res.Stats)
	allMin, err := s.dists.MinDistanceOf(res.Guards)
	if err != nil {
		return nil, fmt.Errorf("agp: %w", err)
	}
	res.Objective = allMin

	// 1) witnesses
	ws, err := s.witnesses(ctx)
	if err != nil {
		if !isDeadline(err) {
			return nil, err
		}
		log.Info("time limit reached before witnesses were available")

		return s.finish(log, res, nil, start), nil
	}
	res.Stats["num_witnesses"] = len(ws)

	// 2) optimizer rounds, 3) exact coverage check
	search, err := optimizer.ParseStrategy(s.cfg.SearchStrategy)
	if err != nil {
		return nil, fmt.Errorf("agp: %w", err)
	}
	iterate := search
	if s.cfg.IterationStrategy != "" {
		if iterate, err = optimizer.ParseStrategy(s.cfg.IterationStrategy); err != nil {
			return nil, fmt.Errorf("agp: %w", err)
		}
	}
	res.Stats["search_strategy"] = search.String()
	res.Stats["iteration_strategy"] = iterate.String()
	upper := s.upper
	for round := 1; ; round++ {
		strategy := search
		if round > 1 {
			strategy = iterate
		}
		opt, err := s.round(ctx, log, res, ws, upper, strategy)
		if err != nil {
			return nil, err
		}
		res.Stats["num_rounds"] = round
		if len(res.Guards) == s.dists.NumGuards() {
			res.Stats["coverage_verified"] = true

			break
		}

		missed, err := s.oracle.UncoveredFaces(parent, res.Guards)
		if err != nil {
			if !isDeadline(err) {
				return nil, fmt.Errorf("agp: coverage check: %w", err)
			}
			log.Info("coverage check cancelled")
			res.Stats["coverage_verified"] = false
			res.Status = StatusFeasible

			break
		}
		res.Stats["uncovered_faces"] = len(missed)
		if len(missed) == 0 {
			res.Stats["coverage_verified"] = true

			break
		}

		// The witness set was incomplete: every missed face becomes a witness.
		added := 0
		for _, p := range missed {
			if gs := s.oracle.GuardsSeeing(p); len(gs) > 0 {
				ws = append(ws, witness.Witness{ID: len(ws), Guards: gs})
				added++
			}
		}
		log.WithFields(logrus.Fields{
			"round":           round,
			"uncovered_faces": len(missed),
			"added":           added,
		}).Warn("selection leaves faces unseen, refining witnesses")
		if added == 0 || round == maxRounds || ctx.Err() != nil {
			s.fallback(res, opt)

			break
		}
		res.Stats["num_witnesses"] = len(ws)
		// Adding witnesses only lowers the optimum, so the last bound stays valid.
		upper = min(upper, res.UpperBound)
	}

	return s.finish(log, res, ws, start), nil
}

// maxRounds bounds witness refinement.
const maxRounds = 8

// round builds a fresh optimizer over ws, runs it with strategy and copies
// its outcome into res.
func (s *Solver) round(ctx context.Context, log logrus.FieldLogger, res *Result, ws []witness.Witness,
	upper int64, strategy optimizer.Strategy) (*optimizer.Optimizer, error) {
	backend, err := sat.New(s.cfg.Backend)
	if err != nil {
		return nil, fmt.Errorf("agp: %w", err)
	}
	opt, err := optimizer.New(s.dists, backend,
		optimizer.WithLogger(log),
		optimizer.WithObserver(s.opts.Metrics))
	if err != nil {
		return nil, fmt.Errorf("agp: %w", err)
	}
	for _, w := range ws {
		if err = opt.AddCoverageConstraint(w.Guards...); err != nil {
			return nil, fmt.Errorf("agp: witness %d: %w", w.ID, err)
		}
	}
	if err = opt.AddUpperBound(upper); err != nil {
		return nil, fmt.Errorf("agp: %w", err)
	}

	err = opt.Solve(ctx, strategy, s.cfg.OptTolerance)
	switch {
	case err == nil:
		res.Status = StatusOptimal
	case errors.Is(err, optimizer.ErrTimeout):
		log.Info("time limit reached")
		res.Status = StatusFeasible
		if opt.Proven() {
			res.Status = StatusOptimal
		}
	default:
		return nil, fmt.Errorf("agp: %w", err)
	}
	res.Guards = opt.Solution()
	res.Objective, res.UpperBound = opt.Bounds()
	s.optimizerStats(res.Stats, opt.Stats(), opt.Proven())

	return opt, nil
}

// fallback replaces an unverified selection with every guard, which always
// covers the polygon. The upper bound is kept.
func (s *Solver) fallback(res *Result, opt *optimizer.Optimizer) {
	res.Guards = allGuards(s.dists.NumGuards())
	if d, err := s.dists.MinDistanceOf(res.Guards); err == nil {
		res.Objective = d
	}
	res.Status = StatusFeasible
	res.Stats["coverage_verified"] = true
	s.opts.Logger.WithField("proven_optimal", opt.Proven()).Warn("falling back to every guard")
}

// witnesses fails fast on an expired context so that stored witness lists
// behave like shadow computation under a zero time limit.
func (s *Solver) witnesses(ctx context.Context) ([]witness.Witness, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	ws, err := s.wp.Witnesses(ctx)
	if err != nil {
		return nil, fmt.Errorf("agp: witnesses: %w", err)
	}
	if s.shadow != nil {
		st := s.shadow.Stats()
		s.opts.Metrics.ObservePhase("witnesses", st.Duration)
	}

	return ws, nil
}

func (s *Solver) finish(log logrus.FieldLogger, res *Result, ws []witness.Witness, start time.Time) *Result {
	res.Gap = gap(res.Objective, res.UpperBound)
	res.Stats["status"] = res.Status.String()
	res.Stats["time_total"] = time.Since(start).Seconds()
	if s.shadow != nil && ws != nil {
		st := s.shadow.Stats()
		res.Stats["time_compute_shadow_witnesses"] = st.Duration.Seconds()
		res.Stats["num_face_points"] = st.Points
		res.Stats["num_faces"] = st.Faces
		res.Stats["num_dominated_witnesses"] = st.Dominated
	}
	gs := s.dists.Stats()
	res.Stats["time_compute_distances_from_graph"] = gs.ComputeDistances.Seconds()
	s.opts.Metrics.ObservePhase("distances", gs.ComputeDistances)
	s.opts.Metrics.ObserveSolve(res.Status.String(), res.Objective, res.UpperBound, len(ws))

	log.WithFields(logrus.Fields{
		"status":    res.Status.String(),
		"objective": optimizer.FormatDistance(res.Objective),
		"upper":     optimizer.FormatDistance(res.UpperBound),
		"guards":    len(res.Guards),
	}).Info("solve finished")

	return res
}

func (s *Solver) baseStats(m map[string]any) {
	cs := s.oracle.Stats()
	gs := s.dists.Stats()
	m["backend"] = s.cfg.Backend
	m["num_vertices"] = s.inst.NumPositions()
	m["num_holes"] = s.inst.NumHoles()
	m["time_compute_vispolys"] = cs.ComputeVisibility.Seconds()
	m["num_visible_pairs"] = cs.VisiblePairs
	m["time_build_distance_graph"] = gs.BuildGraph.Seconds()
	m["apsp"] = s.cfg.APSP
}

func (s *Solver) optimizerStats(m map[string]any, st optimizer.Stats, proven bool) {
	m["time_build_model"] = st.Build.Seconds()
	m["num_probes"] = len(st.Probes)
	m["num_vars"] = st.Vars
	m["num_clauses"] = st.Clauses
	m["num_forbidden_pairs"] = st.ForbiddenPairs
	m["proven_optimal"] = proven
	var probeTime float64
	probes := make([]map[string]any, len(st.Probes))
	for i, p := range st.Probes {
		probeTime += p.Duration.Seconds()
		probes[i] = map[string]any{
			"threshold": optimizer.FormatDistance(p.Threshold),
			"outcome":   p.Outcome.String(),
			"seconds":   p.Duration.Seconds(),
			"clauses":   p.Clauses,
			"lower":     optimizer.FormatDistance(p.Lower),
			"upper":     optimizer.FormatDistance(p.Upper),
		}
	}
	m["time_probes"] = probeTime
	m["probes"] = probes
}

// Solve builds a Solver for inst and runs it once.
func Solve(ctx context.Context, inst *polygon.Instance, cfg config.Config, opts ...Option) (*Result, error) {
	s, err := NewSolver(ctx, inst, cfg, opts...)
	if err != nil {
		return nil, err
	}

	return s.Solve(ctx)
}

func allGuards(n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = i
	}

	return out
}

func isDeadline(err error) bool {
	return errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled)
}

// gap is (upper − objective) / objective, +Inf while unbounded.
func gap(obj, ub int64) float64 {
	switch {
	case obj == ub:
		return 0
	case obj == 0, ub == Infinity:
		return math.Inf(1)
	default:
		return float64(ub-obj) / float64(obj)
	}
}
