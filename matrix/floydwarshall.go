// SPDX-License-Identifier: MIT

package matrix

// FloydWarshall closes d in place under shortest paths.
//
// Loop order is fixed (k → i → j). Inf entries are skipped, so sums never
// overflow as long as finite distances stay below Inf/2.
//
// Complexity: Time O(n³), extra space O(1).
func FloydWarshall(d *Distances) {
	n := d.n
	data := d.data

	var (
		k, i, j      int
		baseK, baseI int
		ik, kj, cand int64
	)
	for k = 0; k < n; k++ {
		baseK = k * n
		for i = 0; i < n; i++ {
			ik = data[i*n+k]
			if ik == Inf {
				continue
			}
			baseI = i * n
			for j = 0; j < n; j++ {
				kj = data[baseK+j]
				if kj == Inf {
					continue
				}
				cand = ik + kj
				if cand < data[baseI+j] {
					data[baseI+j] = cand
				}
			}
		}
	}
}
