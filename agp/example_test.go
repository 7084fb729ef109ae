// SPDX-License-Identifier: MIT

package agp_test

import (
	"context"
	"fmt"

	"github.com/katalvlaran/dispagp/agp"
	"github.com/katalvlaran/dispagp/builder"
	"github.com/katalvlaran/dispagp/config"
)

// An L-shaped room is seen entirely from its reflex vertex, so one guard
// suffices and the dispersion objective is unbounded.
func ExampleSolve() {
	inst, err := builder.LShape(4, 4, 2)
	if err != nil {
		panic(err)
	}
	res, err := agp.Solve(context.Background(), inst, config.Default())
	if err != nil {
		panic(err)
	}
	fmt.Println(res.Status, len(res.Guards), res.Objective == agp.Infinity)
	// Output: OPTIMAL 1 true
}

// The frame's dispersive optimum places two guards on opposite outer corners.
func ExampleSolver_Solve() {
	inst, _ := builder.Frame(6, 6, 2)
	cfg := config.Default()
	cfg.SearchStrategy = "linear"
	s, err := agp.NewSolver(context.Background(), inst, cfg)
	if err != nil {
		panic(err)
	}
	res, err := s.Solve(context.Background())
	if err != nil {
		panic(err)
	}
	fmt.Println(res.Status, res.Objective, res.UpperBound)
	// Output: OPTIMAL 12 12
}
