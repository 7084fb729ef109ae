// Package agp drives a complete dispersive art gallery solve.
//
// NewSolver performs the one-time geometric precomputation: the coverage
// oracle (mutual visibility) and the guard distance graph. Invalid input,
// including a disconnected visibility graph, fails here.
//
// Solve then, within the configured time limit,
//
//  1. computes the initial witness set (shadow witnesses or a stored list),
//  2. builds an optimizer over it and drives it to completion or timeout,
//  3. checks the returned guards against every face of the arrangement cut
//     by their own windows; a face they all miss becomes a new witness and
//     the next round re-solves with the iteration strategy,
//  4. after eight rounds without a covering answer, returns all vertices.
//
// A selection passing step 3 sees the whole polygon, so OPTIMAL is only ever
// reported for covering guard sets (stat coverage_verified).
//
// The result always carries a guard selection: all vertices when the time
// limit expires before witnesses exist (StatusUnknown), otherwise the best
// selection found (StatusOptimal when the bounds meet or the gap is within
// tolerance, StatusFeasible otherwise).
package agp
