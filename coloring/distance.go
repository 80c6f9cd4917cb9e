package coloring

// sameColorCounts returns m[ca][cb] = |{v : a(v)=ca, b(v)=cb}| over vertices
// colored in both, sized to the larger slot count.
func sameColorCounts(a, b *Coloring) [][]int {
	k := max(a.Slots(), b.Slots())
	m := make([][]int, k)
	for i := range m {
		m[i] = make([]int, k)
	}
	for v, ca := range a.colors {
		cb := b.colors[v]
		if ca != Uncolored && cb != Uncolored {
			m[ca][cb]++
		}
	}
	return m
}

// DistanceApprox bounds the partition distance between a and b from below:
// every class of a is matched to its most overlapping class of b (classes of
// b may be reused), and the result is V minus the matched overlap. Both
// colorings must share a graph.
//
// Complexity: O(V + k²).
func DistanceApprox(a, b *Coloring) int {
	m := sameColorCounts(a, b)
	var matched int
	for _, row := range m {
		var best int
		for _, x := range row {
			best = max(best, x)
		}
		matched += best
	}
	return len(a.colors) - matched
}

// DistanceAccurate computes the partition distance with a greedy one-to-one
// matching: repeatedly pair the two classes with the largest overlap and
// retire both. The result is V minus the total matched overlap, i.e. the
// number of vertices that must change class to turn a into b (up to
// renaming).
//
// Complexity: O(V + k³).
func DistanceAccurate(a, b *Coloring) int {
	m := sameColorCounts(a, b)
	k := len(m)
	var matched, round int
	for round = 0; round < k; round++ {
		bestVal, bi, bj := -1, -1, -1
		for i := range m {
			for j, x := range m[i] {
				if x > bestVal {
					bestVal, bi, bj = x, i, j
				}
			}
		}
		if bestVal <= 0 {
			break
		}
		matched += bestVal
		for j := range m[bi] {
			m[bi][j] = -1
		}
		for i := range m {
			m[i][bj] = -1
		}
	}
	return len(a.colors) - matched
}

// RecordDistance stores the accurate distance between c and other in both
// colorings' Distances maps and returns it.
func (c *Coloring) RecordDistance(other *Coloring) int {
	d := DistanceAccurate(c, other)
	c.Distances[other.id] = d
	other.Distances[c.id] = d
	return d
}
