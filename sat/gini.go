// SPDX-License-Identifier: MIT

package sat

import (
	"context"
	"time"

	"github.com/go-air/gini"
	"github.com/go-air/gini/z"
)

// pollInterval is how often a running gini solve checks the context.
const pollInterval = 2 * time.Millisecond

type giniBackend struct {
	g        *gini.Gini
	nvars    int
	nclauses int
	maxSeen  int // largest variable handed to gini
}

func newGini() *giniBackend {
	return &giniBackend{g: gini.New()}
}

func (b *giniBackend) Name() string { return "gini" }

func (b *giniBackend) NewVar() Lit {
	b.nvars++

	return Lit(b.nvars)
}

func (b *giniBackend) AddClause(lits ...Lit) error {
	if err := checkClause(b.nvars, lits); err != nil {
		return err
	}
	for _, l := range lits {
		b.g.Add(b.lit(l))
	}
	b.g.Add(z.LitNull)
	b.nclauses++

	return nil
}

// Solve runs gini in the background and stops it when ctx ends.
func (b *giniBackend) Solve(ctx context.Context, assumptions ...Lit) (out Outcome, err error) {
	defer recoverFailure(b.Name(), &out, &err)

	if ctx.Err() != nil {
		return Unknown, nil
	}
	for _, a := range assumptions {
		if a == 0 || a.Var() > b.nvars {
			return Unknown, checkClause(b.nvars, []Lit{a})
		}
	}
	for _, a := range assumptions {
		b.g.Assume(b.lit(a))
	}

	s := b.g.GoSolve()
	ticker := time.NewTicker(pollInterval)
	defer ticker.Stop()
	for {
		if res, done := s.Test(); done {
			return outcome(res), nil
		}
		select {
		case <-ctx.Done():
			return outcome(s.Stop()), nil
		case <-ticker.C:
		}
	}
}

func (b *giniBackend) Value(l Lit) bool {
	if l == 0 || l.Var() > b.maxSeen {
		return false
	}

	return b.g.Value(z.Dimacs2Lit(int(l)))
}

func (b *giniBackend) NumVars() int    { return b.nvars }
func (b *giniBackend) NumClauses() int { return b.nclauses }

func (b *giniBackend) lit(l Lit) z.Lit {
	if v := l.Var(); v > b.maxSeen {
		b.maxSeen = v
	}

	return z.Dimacs2Lit(int(l))
}

// outcome maps gini's 1 / -1 / 0 convention.
func outcome(res int) Outcome {
	switch res {
	case 1:
		return Satisfiable
	case -1:
		return Unsatisfiable
	default:
		return Unknown
	}
}
