// Package matrix provides a dense, symmetric int64 distance table and the
// Floyd–Warshall all-pairs closure over it.
//
// Distances stores the upper triangle implicitly mirrored: Set(i, j, d) also
// sets (j, i). Inf (math.MaxInt64) means "no path"; the diagonal is always 0.
// The table is best for the small, dense vertex sets typical of guard graphs
// where O(n²) memory is acceptable.
package matrix
