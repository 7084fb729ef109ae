// SPDX-License-Identifier: MIT

package bfs

import "github.com/katalvlaran/dispagp/core"

// Components labels every vertex with its connected component.
// Labels are dense, assigned in order of the smallest vertex of each component.
// Returns the label slice and the number of components.
// Complexity: O(V + E).
func Components(g *core.Graph, opts ...Option) ([]int, int, error) {
	if g == nil {
		return nil, 0, ErrGraphNil
	}
	n := g.NumVertices()
	label := make([]int, n)
	for i := range label {
		label[i] = -1
	}
	count := 0
	for s := 0; s < n; s++ {
		if label[s] >= 0 {
			continue
		}
		res, err := BFS(g, s, opts...)
		if err != nil {
			return nil, 0, err
		}
		for _, v := range res.Order {
			label[v] = count
		}
		count++
	}

	return label, count, nil
}

// Connected reports whether g has at most one component.
// A single search from vertex 0 decides it in O(V + E).
func Connected(g *core.Graph, opts ...Option) (bool, error) {
	if g == nil {
		return false, ErrGraphNil
	}
	n := g.NumVertices()
	if n <= 1 {
		return true, nil
	}
	res, err := BFS(g, 0, opts...)
	if err != nil {
		return false, err
	}

	return len(res.Order) == n, nil
}
