// Package witness produces coverage witnesses: finite sets of guard indices
// such that choosing at least one guard from every set covers the polygon.
//
// Two providers are available:
//
//   - Static / LoadFile: an explicit, externally supplied list.
//   - ShadowProvider: shadow witnesses from the exact visibility arrangement.
//     The source supplies one point inside every face of the arrangement cut
//     by the polygon boundary and all guards' windows, so each guard sees a
//     point exactly when it sees the whole face. Each guard's visibility over
//     those points forms a two-face leaf arrangement, and the
//     leaves are combined by a balanced recursive overlay over the guard index
//     range. Every merge owns its two inputs and yields one new arrangement
//     whose faces are the non-empty intersections of input faces. Faces of the
//     final arrangement are the distinct visibility signatures; a signature that
//     contains another one is implied by it and dropped.
//
// Witness sets are computed once and memoised: repeated calls return the same
// slice contents without recomputation.
package witness
