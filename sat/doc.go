// Package sat wraps incremental CNF solvers behind a minimal interface.
// Two engines are registered:
//
//   - gini (default): clauses are added to one long-lived github.com/go-air/gini
//     solver; assumptions are passed per call; the solve runs asynchronously
//     and is stopped when the context ends, yielding Unknown.
//   - gophersat: github.com/crillab/gophersat rebuilt from the stored clause
//     list on every call, assumptions added as unit clauses. The engine is not
//     preemptible: a call that has started runs to completion, and only a
//     context that is already done on entry yields Unknown.
//
// Literals use DIMACS numbering: variable v ≥ 1 is Lit(v), its negation Lit(-v).
// Panics raised inside an engine are recovered into ErrBackendFailure.
package sat
