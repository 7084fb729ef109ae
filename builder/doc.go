// Package builder generates deterministic rectilinear polygon instances for
// experiments and tests: rectangles, L-shapes, combs, frames (one hole) and
// chains of rooms joined by door corridors.
//
// Every constructor validates its numeric parameters up front and returns
// ErrTooSmall (wrapped with the method name and offending value) before any
// geometry is produced. The resulting vertex lists are then validated again by
// polygon.New, so a builder can never hand out an invalid instance.
//
// Options:
//
//   - WithScale(s): multiply every coordinate by s (s ≥ 1, panics otherwise).
//   - WithOrigin(x, y): translate the shape so its lower-left corner is (x, y).
//
// Complexity: O(n) for n emitted vertices, plus polygon.New validation.
package builder
