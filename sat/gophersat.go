// SPDX-License-Identifier: MIT

package sat

import (
	"context"

	"github.com/crillab/gophersat/solver"
)

type gophersatBackend struct {
	clauses [][]int
	nvars   int
	model   []bool
}

func newGophersat() *gophersatBackend {
	return &gophersatBackend{}
}

func (b *gophersatBackend) Name() string { return "gophersat" }

func (b *gophersatBackend) NewVar() Lit {
	b.nvars++

	return Lit(b.nvars)
}

func (b *gophersatBackend) AddClause(lits ...Lit) error {
	if err := checkClause(b.nvars, lits); err != nil {
		return err
	}
	c := make([]int, len(lits))
	for i, l := range lits {
		c[i] = int(l)
	}
	b.clauses = append(b.clauses, c)

	return nil
}

// Solve rebuilds the problem with assumptions as unit clauses. Once started,
// the call runs to completion regardless of ctx.
func (b *gophersatBackend) Solve(ctx context.Context, assumptions ...Lit) (out Outcome, err error) {
	defer recoverFailure(b.Name(), &out, &err)

	if ctx.Err() != nil {
		return Unknown, nil
	}
	cnf := make([][]int, 0, len(b.clauses)+len(assumptions))
	cnf = append(cnf, b.clauses...)
	for _, a := range assumptions {
		if err := checkClause(b.nvars, []Lit{a}); err != nil {
			return Unknown, err
		}
		cnf = append(cnf, []int{int(a)})
	}
	b.model = nil
	if len(cnf) == 0 {
		return Satisfiable, nil
	}

	s := solver.New(solver.ParseSlice(cnf))
	switch s.Solve() {
	case solver.Sat:
		b.model = s.Model()

		return Satisfiable, nil
	case solver.Unsat:
		return Unsatisfiable, nil
	default:
		return Unknown, nil
	}
}

// Value reads the last model; variables absent from every clause are false.
func (b *gophersatBackend) Value(l Lit) bool {
	v := l.Var()
	if l == 0 || v > len(b.model) {
		return false
	}
	val := b.model[v-1]
	if l < 0 {
		return !val
	}

	return val
}

func (b *gophersatBackend) NumVars() int    { return b.nvars }
func (b *gophersatBackend) NumClauses() int { return len(b.clauses) }
