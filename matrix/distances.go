// SPDX-License-Identifier: MIT

package matrix

import (
	"fmt"
	"math"

	"github.com/katalvlaran/dispagp/core"
)

// Inf denotes "no path".
const Inf int64 = math.MaxInt64

// Distances is a dense symmetric n×n table of non-negative int64 distances.
type Distances struct {
	n    int
	data []int64 // row-major, both triangles kept in sync
}

// NewDistances returns an n×n table with a zero diagonal and Inf elsewhere.
// Complexity: O(n²).
func NewDistances(n int) (*Distances, error) {
	if n < 0 {
		return nil, fmt.Errorf("NewDistances(%d): %w", n, ErrBadShape)
	}
	d := &Distances{n: n, data: make([]int64, n*n)}
	for i := 0; i < n; i++ {
		base := i * n
		for j := 0; j < n; j++ {
			if i != j {
				d.data[base+j] = Inf
			}
		}
	}

	return d, nil
}

// FromGraph seeds a table with the edge weights of g.
// Complexity: O(n² + E).
func FromGraph(g *core.Graph) (*Distances, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	d, err := NewDistances(g.NumVertices())
	if err != nil {
		return nil, err
	}
	for _, e := range g.Edges() {
		if e.Weight < d.data[e.From*d.n+e.To] {
			d.data[e.From*d.n+e.To] = e.Weight
			d.data[e.To*d.n+e.From] = e.Weight
		}
	}

	return d, nil
}

// N returns the order of the table.
func (d *Distances) N() int { return d.n }

// Get returns the distance between i and j; callers guarantee indices are valid.
func (d *Distances) Get(i, j int) int64 { return d.data[i*d.n+j] }

// Set stores v at (i, j) and (j, i).
func (d *Distances) Set(i, j int, v int64) error {
	if err := d.check(i, j); err != nil {
		return err
	}
	if v < 0 {
		return fmt.Errorf("Set(%d,%d,%d): %w", i, j, v, ErrNegative)
	}
	if i == j {
		if v != 0 {
			return fmt.Errorf("Set(%d,%d,%d): %w", i, j, v, ErrNonZeroDiagonal)
		}

		return nil
	}
	d.data[i*d.n+j] = v
	d.data[j*d.n+i] = v

	return nil
}

// SetRow overwrites row i (and the mirrored column) from src.
func (d *Distances) SetRow(i int, src []int64) error {
	if err := d.check(i, i); err != nil {
		return err
	}
	if len(src) != d.n {
		return fmt.Errorf("SetRow(%d): len %d != %d: %w", i, len(src), d.n, ErrOutOfRange)
	}
	for j, v := range src {
		if err := d.Set(i, j, v); err != nil {
			return err
		}
	}

	return nil
}

func (d *Distances) check(i, j int) error {
	if i < 0 || i >= d.n || j < 0 || j >= d.n {
		return fmt.Errorf("(%d,%d) in %dx%d: %w", i, j, d.n, d.n, ErrOutOfRange)
	}

	return nil
}
