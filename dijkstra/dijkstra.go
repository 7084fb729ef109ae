// SPDX-License-Identifier: MIT

// Package dijkstra implements Dijkstra's shortest-path algorithm on the guard
// distance graph.
//
// Dijkstra computes the minimum-cost path from a single source vertex to all
// other reachable vertices in a graph with non-negative edge weights. It
// processes vertices in order of increasing distance using a min-heap priority
// queue, relaxing edges and updating distances accordingly.
//
// Algorithm:
//
//  1. Set dist[source] = 0 and every other distance to Unreachable.
//  2. Push the source onto the heap.
//  3. Pop the closest entry; skip it if its vertex is already finalised.
//  4. Finalise the vertex and relax each incident edge: when dist[u] + w
//     improves dist[v], store it, record u as v's predecessor and push v.
//  5. Repeat from 3 until the heap is empty.
//
// Complexity:
//
//   - Time:  O((V + E) log V)
//   - Each vertex is finalised at most once: V effective extractions.
//   - Each relaxation may push a new entry: up to E pushes.
//   - Each heap operation costs O(log N) with N ≤ V + E, simplified to O(log V).
//   - Space: O(V + E)
//   - O(V) for the distance, predecessor and visited slices.
//   - O(E) worst case for heap entries under lazy decrease-key.
//
// Notes on implementation choices:
//
//   - Negative weights are rejected by core.Graph on insertion, so there is no
//     upfront edge scan.
//   - Vertices are dense integers, so state lives in slices rather than maps.
//   - Decrease-key is lazy: duplicates are pushed and stale entries skipped.
//   - guardgraph calls this once per source, so N runs build the all-pairs
//     table in O(N·(N + E) log N); on sparse visibility graphs that beats
//     the O(N³) Floyd–Warshall closure.
package dijkstra

import (
	"container/heap"
	"fmt"

	"github.com/katalvlaran/dispagp/core"
)

// Dijkstra computes shortest distances from Options.Source to every vertex of g.
//
// Returns:
//
//   - dist: dist[v] is the minimum distance, Unreachable if not reached.
//   - prev: predecessor slice if ReturnPath is set (nil otherwise); -1 for the
//     source and unreached vertices.
//
// Preconditions and validation (in order):
//  1. Source must be set (ErrNoSource).
//  2. g must be non-nil (ErrNilGraph).
//  3. Source must be a vertex of g (ErrVertexNotFound).
//
// core.Graph rejects negative weights on insertion, so no pre-scan is needed.
//
// Complexity: O((V + E) log V) time, O(V + E) space.
func Dijkstra(g *core.Graph, opts ...Option) ([]int64, []int, error) {
	// 1) Build options.
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	// 2) Validate.
	if cfg.Source < 0 {
		return nil, nil, ErrNoSource
	}
	if g == nil {
		return nil, nil, ErrNilGraph
	}
	n := g.NumVertices()
	if cfg.Source >= n {
		return nil, nil, fmt.Errorf("%w: %d", ErrVertexNotFound, cfg.Source)
	}

	// 3) Run.
	r := &runner{
		g:       g,
		options: cfg,
		dist:    make([]int64, n),
		prev:    make([]int, n),
		visited: make([]bool, n),
		pq:      make(nodePQ, 0, n),
	}
	r.init()
	if err := r.process(); err != nil {
		return nil, nil, err
	}
	if !cfg.ReturnPath {
		return r.dist, nil, nil
	}

	return r.dist, r.prev, nil
}

// runner holds the mutable state for a single Dijkstra execution.
type runner struct {
	g       *core.Graph
	options Options
	dist    []int64
	prev    []int
	visited []bool
	pq      nodePQ
}

func (r *runner) init() {
	for v := range r.dist {
		r.dist[v] = Unreachable
		r.prev[v] = -1
	}
	r.dist[r.options.Source] = 0
	heap.Init(&r.pq)
	heap.Push(&r.pq, &nodeItem{id: r.options.Source, dist: 0})
}

// process pops the closest unfinalised vertex until the heap drains.
func (r *runner) process() error {
	for r.pq.Len() > 0 {
		item := heap.Pop(&r.pq).(*nodeItem)
		if r.visited[item.id] {
			continue
		}
		r.visited[item.id] = true
		if err := r.relax(item.id); err != nil {
			return err
		}
	}

	return nil
}

func (r *runner) relax(u int) error {
	neighbors, err := r.g.Neighbors(u)
	if err != nil {
		return fmt.Errorf("dijkstra: failed to get neighbors of %d: %w", u, err)
	}
	for _, e := range neighbors {
		nd := r.dist[u] + e.Weight
		if nd >= r.dist[e.To] {
			continue
		}
		r.dist[e.To] = nd
		r.prev[e.To] = u
		heap.Push(&r.pq, &nodeItem{id: e.To, dist: nd})
	}

	return nil
}

// PathTo rebuilds the source→dest path from a predecessor slice.
// Returns nil if dest was not reached.
func PathTo(prev []int, dist []int64, dest int) []int {
	if dest < 0 || dest >= len(dist) || dist[dest] == Unreachable {
		return nil
	}
	var path []int
	for v := dest; v >= 0; v = prev[v] {
		path = append(path, v)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path
}

type nodeItem struct {
	id   int
	dist int64
}

// nodePQ is a min-heap of *nodeItem ordered by dist.
type nodePQ []*nodeItem

func (pq nodePQ) Len() int            { return len(pq) }
func (pq nodePQ) Less(i, j int) bool  { return pq[i].dist < pq[j].dist }
func (pq nodePQ) Swap(i, j int)       { pq[i], pq[j] = pq[j], pq[i] }
func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(*nodeItem)) }
func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
