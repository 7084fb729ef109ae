// SPDX-License-Identifier: MIT

package sat

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
)

// DefaultBackend is the engine used when none is configured.
const DefaultBackend = "gini"

var (
	// ErrUnknownBackend indicates an unregistered engine name.
	ErrUnknownBackend = errors.New("sat: unknown backend")

	// ErrBackendFailure indicates an engine crash or resource exhaustion.
	ErrBackendFailure = errors.New("sat: backend failure")

	// ErrInvalidLiteral indicates literal 0 or a variable not created by NewVar.
	ErrInvalidLiteral = errors.New("sat: invalid literal")

	// ErrEmptyClause indicates an attempt to add a clause without literals.
	ErrEmptyClause = errors.New("sat: empty clause")
)

// Lit is a DIMACS literal.
type Lit int

// Not returns the negation of l.
func (l Lit) Not() Lit { return -l }

// Var returns the variable of l.
func (l Lit) Var() int {
	if l < 0 {
		return int(-l)
	}

	return int(l)
}

// Outcome is the result of one Solve call.
type Outcome int

const (
	// Unknown means the call was interrupted before a verdict.
	Unknown Outcome = iota
	// Satisfiable means a model was found; Value reads it.
	Satisfiable
	// Unsatisfiable means no model exists under the given assumptions.
	Unsatisfiable
)

// String returns "unknown", "sat" or "unsat".
func (o Outcome) String() string {
	switch o {
	case Satisfiable:
		return "sat"
	case Unsatisfiable:
		return "unsat"
	default:
		return "unknown"
	}
}

// Backend is an incremental CNF solver.
type Backend interface {
	// Name returns the registry name of the engine.
	Name() string
	// NewVar allocates a fresh variable and returns its positive literal.
	NewVar() Lit
	// AddClause adds the disjunction of lits permanently.
	AddClause(lits ...Lit) error
	// Solve decides the clause set under the given assumptions.
	//
	// Engines differ on deadlines. gini is preemptive: when ctx ends it
	// stops the search mid-flight and returns Unknown. gophersat cannot be
	// interrupted: ctx is checked only before the call starts, so a call
	// already running finishes and returns its real outcome even after the
	// deadline. Callers that need a hard bound on wall time should use gini.
	Solve(ctx context.Context, assumptions ...Lit) (Outcome, error)
	// Value reports the truth value of l in the last model.
	Value(l Lit) bool
	// NumVars returns the number of allocated variables.
	NumVars() int
	// NumClauses returns the number of added clauses.
	NumClauses() int
}

var registry = map[string]func() Backend{
	"gini":      func() Backend { return newGini() },
	"gophersat": func() Backend { return newGophersat() },
}

// New returns a fresh engine by name ("" selects DefaultBackend).
func New(name string) (Backend, error) {
	if name == "" {
		name = DefaultBackend
	}
	mk, ok := registry[strings.ToLower(name)]
	if !ok {
		return nil, fmt.Errorf("%w: %q (have %s)", ErrUnknownBackend, name, strings.Join(Names(), ", "))
	}

	return mk(), nil
}

// Names lists the registered engines in sorted order.
func Names() []string {
	out := make([]string, 0, len(registry))
	for n := range registry {
		out = append(out, n)
	}
	sort.Strings(out)

	return out
}

// checkClause validates literals against nvars.
func checkClause(nvars int, lits []Lit) error {
	if len(lits) == 0 {
		return ErrEmptyClause
	}
	for _, l := range lits {
		if l == 0 || l.Var() > nvars {
			return fmt.Errorf("%w: %d (vars=%d)", ErrInvalidLiteral, l, nvars)
		}
	}

	return nil
}

// recoverFailure converts an engine panic into ErrBackendFailure.
func recoverFailure(name string, out *Outcome, err *error) {
	if r := recover(); r != nil {
		*out = Unknown
		*err = fmt.Errorf("%w: %s: %v", ErrBackendFailure, name, r)
	}
}
