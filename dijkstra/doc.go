// Package dijkstra implements Dijkstra's single-source shortest-path algorithm
// on a core.Graph with non-negative integer weights.
//
// It processes vertices in order of increasing distance using a min-heap with
// lazy decrease-key: improved distances are pushed as new entries and stale
// entries are skipped when popped.
//
// Complexity:
//
//   - Time:  O((V + E) log V)
//   - Space: O(V + E) (heap may hold one entry per relaxation)
//
// Options:
//
//   - Source(int):      required start vertex.
//   - WithReturnPath(): also return the predecessor slice.
//
// Unreached vertices have distance math.MaxInt64 and predecessor -1.
package dijkstra
