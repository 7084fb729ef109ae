// SPDX-License-Identifier: MIT

package builder

import "github.com/katalvlaran/dispagp/polygon"

// Option mutates the builder configuration.
type Option func(*config)

type config struct {
	scale  int64
	origin polygon.Position
}

func defaultConfig() config {
	return config{scale: 1}
}

// WithScale multiplies every coordinate by s. Panics if s < 1.
func WithScale(s int64) Option {
	if s < 1 {
		panic(ErrBadScale.Error())
	}

	return func(c *config) { c.scale = s }
}

// WithOrigin moves the lower-left corner of the shape to (x, y).
func WithOrigin(x, y int64) Option {
	return func(c *config) { c.origin = polygon.Position{X: x, Y: y} }
}

func resolve(opts []Option) config {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// shape accumulates rings in unscaled coordinates.
type shape struct {
	positions []polygon.Position
	boundary  []int
	holes     [][]int
}

func (s *shape) ring(pts ...polygon.Position) []int {
	idx := make([]int, len(pts))
	for i, p := range pts {
		idx[i] = len(s.positions)
		s.positions = append(s.positions, p)
	}

	return idx
}

func (s *shape) outer(pts ...polygon.Position) { s.boundary = s.ring(pts...) }

func (s *shape) hole(pts ...polygon.Position) { s.holes = append(s.holes, s.ring(pts...)) }

func (s *shape) build(method string, cfg config) (*polygon.Instance, error) {
	pos := make([]polygon.Position, len(s.positions))
	for i, p := range s.positions {
		pos[i] = polygon.Position{
			X: cfg.origin.X + p.X*cfg.scale,
			Y: cfg.origin.Y + p.Y*cfg.scale,
		}
	}
	inst, err := polygon.New(pos, s.boundary, s.holes)
	if err != nil {
		return nil, wrapf(method, err)
	}

	return inst, nil
}
