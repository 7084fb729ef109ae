// Package coverage answers visibility questions about a polygon instance:
// the closed visibility region of every vertex, pairwise mutual visibility,
// which vertices see a point, and what a guard set leaves uncovered.
//
// A visibility region is the set of points p such that the closed segment
// from its apex to p lies in the closed polygon. Membership is an exact
// predicate; the region's shape is carried by its windows, the segments that
// continue a ray from the apex through a visible vertex until it leaves the
// polygon. The boundary of a vertex's visibility region is made of polygon
// edges and its windows, so the region is a union of faces of the arrangement
// those segments cut the polygon into.
//
// FacePoints samples that arrangement with a vertical slab decomposition:
// one point per gap between consecutive segments on each slab's middle line,
// merged across slabs where a gap simply continues. Evaluating visibility at
// those points is exact coverage reasoning: a guard sees a face entirely or
// not at all. UncoveredFaces uses it to prove or refute that a selection
// covers the polygon.
//
// The N×N mutual-visibility matrix and the windows are computed once by
// NewOracle, in parallel over rows with an errgroup, and are read-only
// afterwards; the Oracle is therefore safe for concurrent use.
//
// Complexity:
//
//   - NewOracle: O(N² · n log n) for N vertices and n boundary vertices.
//   - FacePoints: O(S² + K·S log S) for S segments (edges plus windows) and
//     K slab events, which is at most S + S²/2.
//   - Sees, GuardsSeeing: O(n log n) and O(N · n log n).
package coverage
