// Package optimizer searches for the guard selection that maximises the
// minimum pairwise geodesic distance subject to witness coverage.
//
// The model, built once over a fixed witness set:
//
//   - x_g: guard g is selected (one variable per guard);
//   - a_k: "every selected pair is at distance ≥ L[k]" for each level k of the
//     ascending distance ladder L, plus a final level for +∞ (at most one
//     guard). Levels are chained, a_k → a_{k-1};
//   - one coverage clause per witness: OR of its x_g;
//   - for a pair at distance L[j], the exclusion ¬x_g ∨ ¬x_g' ∨ ¬a_{j+1}.
//     Exclusions are added lazily, once, the first time a probe threshold
//     exceeds their distance, and are never removed;
//   - the +∞ level is a sequential at-most-one encoding guarded by its
//     activation literal.
//
// A probe at level k solves under the assumption a_k. SAT raises the lower
// bound to the model's true minimum distance, which is then committed as a
// unit clause; UNSAT lowers the upper bound to L[k-1]. The first probe is
// always +∞, so a polygon seen entirely from one vertex is settled in one probe.
//
// Solve loop:
//
//  1. If the lower and upper level coincide, or the relative gap is within
//     tolerance, stop.
//  2. Pick the next level k from the strategy (always +∞ first while the
//     upper bound is still +∞).
//  3. For finite k, add every pair exclusion with distance below L[k] that
//     the pair cursor has not emitted yet.
//  4. Solve under the assumption a_k.
//  5. SAT: read the selection, check coverage and recompute its minimum
//     distance, keep it as the incumbent, raise the lower bound to that
//     level and commit a_lb as a unit clause.
//  6. UNSAT: lower the upper bound to L[k-1].
//  7. Unknown (deadline): return ErrTimeout with the bounds intact.
//
// Strategies:
//
//   - Binary: probe the upper midpoint of the open level range.
//   - Linear: probe the level just above the lower bound.
//
// Both converge to the same objective. Binary needs O(log |L|) probes, Linear
// up to |L|, but Linear probes are typically easier because each one lies just
// above a satisfiable level.
//
// Complexity:
//
//   - Variables: N guards + |L| + 1 activations + N auxiliaries for the
//     at-most-one encoding.
//   - Clauses: one per witness, |L| chain clauses, O(N) at-most-one clauses,
//     and up to N(N-1)/2 exclusions added over the whole search.
//   - Each probe is one incremental SAT call; its cost is the engine's.
//
// The loop stops when the bounds meet, when the relative gap is within
// tolerance, or when the context ends (ErrTimeout, bounds remain readable).
//
// The search is single-threaded; an Optimizer must not be shared.
package optimizer
