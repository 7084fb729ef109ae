// SPDX-License-Identifier: MIT

package guardgraph

import (
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/dispagp/bfs"
	"github.com/katalvlaran/dispagp/core"
	"github.com/katalvlaran/dispagp/dijkstra"
	"github.com/katalvlaran/dispagp/matrix"
	"github.com/katalvlaran/dispagp/polygon"
)

// Graph is the guard distance oracle of one instance.
type Graph struct {
	n    int
	g    *core.Graph
	opts Options

	mu     sync.Mutex
	rows   [][]int64 // single-source rows computed on demand
	all    *matrix.Distances
	ladder []int64
	pairs  []Pair
	stats  Stats
}

// New builds the visibility graph of inst.
//
// Steps:
//  1. For every pair i < j visible under vis, add edge {i, j} with Manhattan weight.
//  2. Run one BFS from guard 0 under the configured context.
//  3. If it misses a guard, label all components for the error message and
//     return ErrDisconnected.
//
// Complexity: O(N²) visibility queries plus O(N + E) for the connectivity check.
func New(inst *polygon.Instance, vis Visibility, opts ...Option) (*Graph, error) {
	if inst == nil || vis == nil {
		return nil, ErrNilInstance
	}
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	start := time.Now()
	n := inst.NumPositions()
	g := core.NewGraph(n)
	for i := 0; i < n; i++ {
		pi := inst.Position(i)
		for j := i + 1; j < n; j++ {
			if !vis.MutuallyVisible(i, j) {
				continue
			}
			if err := g.AddEdge(i, j, pi.Manhattan(inst.Position(j))); err != nil {
				return nil, fmt.Errorf("guardgraph: edge {%d,%d}: %w", i, j, err)
			}
		}
	}

	connected, err := bfs.Connected(g, bfs.WithContext(cfg.Ctx))
	if err != nil {
		return nil, fmt.Errorf("guardgraph: connectivity: %w", err)
	}
	if !connected {
		_, count, err := bfs.Components(g, bfs.WithContext(cfg.Ctx))
		if err != nil {
			return nil, fmt.Errorf("guardgraph: components: %w", err)
		}
		return nil, fmt.Errorf("%w: %d components", ErrDisconnected, count)
	}

	gg := &Graph{
		n:    n,
		g:    g,
		opts: cfg,
		rows: make([][]int64, n),
	}
	gg.stats.BuildGraph = time.Since(start)
	gg.stats.Edges = g.NumEdges()
	cfg.Logger.WithFields(logrus.Fields{
		"guards":  n,
		"edges":   gg.stats.Edges,
		"elapsed": gg.stats.BuildGraph,
	}).Debug("guard distance graph built")

	return gg, nil
}

// NumGuards returns N.
func (gg *Graph) NumGuards() int { return gg.n }

// Distance returns the shortest-path distance between guards i and j.
// Before ComputeAllDistances it runs (and caches) a single-source search from i.
func (gg *Graph) Distance(i, j int) (int64, error) {
	if err := gg.check(i); err != nil {
		return 0, err
	}
	if err := gg.check(j); err != nil {
		return 0, err
	}
	gg.mu.Lock()
	defer gg.mu.Unlock()
	if gg.all != nil {
		return gg.all.Get(i, j), nil
	}

	return gg.row(i)[j], nil
}

// ComputeAllDistances fills the all-pairs table, the ladder and the pair list.
// Only the first call does work.
func (gg *Graph) ComputeAllDistances() {
	gg.mu.Lock()
	defer gg.mu.Unlock()
	gg.computeAll()
}

// computeAll requires gg.mu.
func (gg *Graph) computeAll() {
	if gg.all != nil {
		return
	}
	start := time.Now()

	var all *matrix.Distances
	switch gg.opts.APSP {
	case APSPFloydWarshall:
		d, err := matrix.FromGraph(gg.g)
		if err != nil {
			panic(fmt.Sprintf("guardgraph: seed distance table: %v", err))
		}
		matrix.FloydWarshall(d)
		all = d
	default:
		d, err := matrix.NewDistances(gg.n)
		if err != nil {
			panic(fmt.Sprintf("guardgraph: allocate distance table: %v", err))
		}
		for i := 0; i < gg.n; i++ {
			if err := d.SetRow(i, gg.row(i)); err != nil {
				panic(fmt.Sprintf("guardgraph: store row %d: %v", i, err))
			}
		}
		all = d
	}

	pairs := make([]Pair, 0, gg.n*(gg.n-1)/2)
	for i := 0; i < gg.n; i++ {
		for j := i + 1; j < gg.n; j++ {
			pairs = append(pairs, Pair{I: i, J: j, D: all.Get(i, j)})
		}
	}
	sort.Slice(pairs, func(a, b int) bool {
		if pairs[a].D != pairs[b].D {
			return pairs[a].D < pairs[b].D
		}
		if pairs[a].I != pairs[b].I {
			return pairs[a].I < pairs[b].I
		}

		return pairs[a].J < pairs[b].J
	})
	var ladder []int64
	for _, p := range pairs {
		if len(ladder) == 0 || ladder[len(ladder)-1] != p.D {
			ladder = append(ladder, p.D)
		}
	}

	gg.all, gg.pairs, gg.ladder = all, pairs, ladder
	gg.rows = nil
	gg.stats.ComputeDistances = time.Since(start)
	gg.stats.LadderSize = len(ladder)
	gg.opts.Logger.WithFields(logrus.Fields{
		"method":  gg.opts.APSP.String(),
		"ladder":  len(ladder),
		"elapsed": gg.stats.ComputeDistances,
	}).Debug("all guard distances computed")
}

// row returns the single-source distances from i; requires gg.mu and gg.all == nil.
func (gg *Graph) row(i int) []int64 {
	if gg.rows[i] == nil {
		dist, _, err := dijkstra.Dijkstra(gg.g, dijkstra.Source(i))
		if err != nil {
			panic(fmt.Sprintf("guardgraph: dijkstra from %d: %v", i, err))
		}
		gg.rows[i] = dist
	}

	return gg.rows[i]
}

// Ladder returns the ascending distinct pairwise distances.
func (gg *Graph) Ladder() []int64 {
	gg.mu.Lock()
	defer gg.mu.Unlock()
	gg.computeAll()

	return append([]int64(nil), gg.ladder...)
}

// Pairs returns all guard pairs sorted by (D, I, J).
func (gg *Graph) Pairs() []Pair {
	gg.mu.Lock()
	defer gg.mu.Unlock()
	gg.computeAll()

	return append([]Pair(nil), gg.pairs...)
}

// NextHigherDistance returns the smallest ladder value strictly greater than d,
// or Infinity if none exists.
func (gg *Graph) NextHigherDistance(d int64) int64 {
	gg.mu.Lock()
	defer gg.mu.Unlock()
	gg.computeAll()
	k := sort.Search(len(gg.ladder), func(i int) bool { return gg.ladder[i] > d })
	if k == len(gg.ladder) {
		return Infinity
	}

	return gg.ladder[k]
}

// NextLowerDistance returns the largest ladder value strictly less than d,
// or 0 if none exists.
func (gg *Graph) NextLowerDistance(d int64) int64 {
	gg.mu.Lock()
	defer gg.mu.Unlock()
	gg.computeAll()
	k := sort.Search(len(gg.ladder), func(i int) bool { return gg.ladder[i] >= d })
	if k == 0 {
		return 0
	}

	return gg.ladder[k-1]
}

// MaxDistance returns the largest ladder value, or 0 for fewer than two guards.
func (gg *Graph) MaxDistance() int64 {
	gg.mu.Lock()
	defer gg.mu.Unlock()
	gg.computeAll()
	if len(gg.ladder) == 0 {
		return 0
	}

	return gg.ladder[len(gg.ladder)-1]
}

// MinDistanceOf returns the minimum pairwise distance among guards.
// Duplicates are ignored; a single distinct guard yields Infinity.
func (gg *Graph) MinDistanceOf(guards []int) (int64, error) {
	if len(guards) == 0 {
		return 0, ErrEmptyGuardSet
	}
	uniq := make([]int, 0, len(guards))
	seen := make(map[int]bool, len(guards))
	for _, g := range guards {
		if err := gg.check(g); err != nil {
			return 0, err
		}
		if !seen[g] {
			seen[g] = true
			uniq = append(uniq, g)
		}
	}

	gg.mu.Lock()
	defer gg.mu.Unlock()
	gg.computeAll()
	best := Infinity
	for a := 0; a < len(uniq); a++ {
		for b := a + 1; b < len(uniq); b++ {
			if d := gg.all.Get(uniq[a], uniq[b]); d < best {
				best = d
			}
		}
	}

	return best, nil
}

// ShortestPath returns one shortest guard sequence from i to j.
func (gg *Graph) ShortestPath(i, j int) ([]int, error) {
	if err := gg.check(i); err != nil {
		return nil, err
	}
	if err := gg.check(j); err != nil {
		return nil, err
	}
	dist, prev, err := dijkstra.Dijkstra(gg.g, dijkstra.Source(i), dijkstra.WithReturnPath())
	if err != nil {
		return nil, fmt.Errorf("guardgraph: shortest path %d→%d: %w", i, j, err)
	}

	return dijkstra.PathTo(prev, dist, j), nil
}

// Stats returns timing and size statistics.
func (gg *Graph) Stats() Stats {
	gg.mu.Lock()
	defer gg.mu.Unlock()

	return gg.stats
}

func (gg *Graph) check(g int) error {
	if g < 0 || g >= gg.n {
		return fmt.Errorf("%w: %d not in [0,%d)", ErrGuardOutOfRange, g, gg.n)
	}

	return nil
}
