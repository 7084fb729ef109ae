// SPDX-License-Identifier: MIT

package core

import (
	"fmt"
	"sort"
)

// AddEdge inserts the undirected edge {u, v} with weight w.
// Re-adding an existing pair keeps the smaller of the two weights.
//
// Steps:
//  1. Validate indices, loop and weight.
//  2. Under the write lock, insert or lower the weight in both directions.
//
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(u, v int, w int64) error {
	if err := g.check(u); err != nil {
		return err
	}
	if err := g.check(v); err != nil {
		return err
	}
	if u == v {
		return fmt.Errorf("%w: %d", ErrLoopNotAllowed, u)
	}
	if w < 0 {
		return fmt.Errorf("%w: {%d,%d} weight=%d", ErrNegativeWeight, u, v, w)
	}

	g.mu.Lock()
	defer g.mu.Unlock()
	if old, ok := g.adj[u][v]; ok {
		if w < old {
			g.adj[u][v], g.adj[v][u] = w, w
		}

		return nil
	}
	g.adj[u][v], g.adj[v][u] = w, w
	g.edges++

	return nil
}

// HasEdge reports whether {u, v} is an edge. Out-of-range indices yield false.
func (g *Graph) HasEdge(u, v int) bool {
	_, ok := g.Weight(u, v)

	return ok
}

// Weight returns the weight of {u, v} and whether the edge exists.
func (g *Graph) Weight(u, v int) (int64, bool) {
	if g.check(u) != nil || g.check(v) != nil {
		return 0, false
	}
	g.mu.RLock()
	defer g.mu.RUnlock()
	w, ok := g.adj[u][v]

	return w, ok
}

// Neighbors returns the edges incident to u, sorted by To.
// Complexity: O(d·log d).
func (g *Graph) Neighbors(u int) ([]Edge, error) {
	if err := g.check(u); err != nil {
		return nil, err
	}
	g.mu.RLock()
	out := make([]Edge, 0, len(g.adj[u]))
	for v, w := range g.adj[u] {
		out = append(out, Edge{From: u, To: v, Weight: w})
	}
	g.mu.RUnlock()
	sort.Slice(out, func(i, j int) bool { return out[i].To < out[j].To })

	return out, nil
}

// Degree returns the number of neighbours of u.
func (g *Graph) Degree(u int) (int, error) {
	if err := g.check(u); err != nil {
		return 0, err
	}
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.adj[u]), nil
}

// Edges returns every edge once with From < To, ordered by (From, To).
// Complexity: O(E·log E).
func (g *Graph) Edges() []Edge {
	g.mu.RLock()
	out := make([]Edge, 0, g.edges)
	for u, row := range g.adj {
		for v, w := range row {
			if u < v {
				out = append(out, Edge{From: u, To: v, Weight: w})
			}
		}
	}
	g.mu.RUnlock()
	sort.Slice(out, func(i, j int) bool {
		if out[i].From != out[j].From {
			return out[i].From < out[j].From
		}

		return out[i].To < out[j].To
	})

	return out
}

// NumVertices returns n.
func (g *Graph) NumVertices() int { return g.n }

// NumEdges returns the number of undirected edges.
func (g *Graph) NumEdges() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.edges
}

func (g *Graph) check(u int) error {
	if u < 0 || u >= g.n {
		return fmt.Errorf("%w: %d not in [0,%d)", ErrVertexOutOfRange, u, g.n)
	}

	return nil
}
