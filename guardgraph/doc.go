// Package guardgraph is the geodesic distance oracle over guard candidates.
//
// Nodes are the polygon vertices; an edge joins every mutually visible pair
// with weight equal to the Manhattan distance of their integer coordinates.
// Shortest paths in this graph are the guard-to-guard distances used by the
// dispersion objective.
//
// Construction:
//
//  1. Enumerate the N(N-1)/2 candidate pairs and add an edge for each
//     mutually visible one.
//  2. Run one BFS from guard 0; a graph it does not span is rejected with
//     ErrDisconnected, naming the component count.
//
// Construction costs O(N²) visibility queries plus O(N + E) for the check. Distances are computed
// lazily: Distance runs a single-source search on first use of a source, and
// ComputeAllDistances fills the full table once (repeated Dijkstra by
// default, Floyd–Warshall on request). The sorted distance ladder and the
// sorted pair list are derived from that table and cached for the lifetime of
// the Graph; every ladder query triggers the all-pairs computation if it has
// not happened yet.
//
// Complexity:
//
//   - Distance on a fresh source: O((N + E) log N), one Dijkstra run.
//   - ComputeAllDistances: O(N·(N + E) log N) with APSPDijkstra, O(N³) with
//     APSPFloydWarshall, plus O(N² log N) to sort the pair list.
//   - Ladder, Pairs: O(|L|) and O(N²) copies after the first computation.
//   - NextHigherDistance, NextLowerDistance: O(log |L|) binary search.
//   - MinDistanceOf: O(k²) table lookups for k guards.
//
// Infinity (math.MaxInt64) stands for "no pair", e.g. the minimum distance of
// a single guard.
package guardgraph
