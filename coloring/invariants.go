package coloring

import (
	"fmt"
	"slices"

	"github.com/katalvlaran/gcol/ordset"
)

// CheckInvariants recomputes every maintained field from the color vector and
// the graph and returns an ErrInvariant-wrapped description of the first
// mismatch, or nil.
//
// Checked:
//  1. conflicts[c][v] equals the number of neighbors of v in c, for all c, v.
//  2. penalty equals Σ conflicts[color(v)][v] over colored v, halved.
//  3. uncolored and conflicting match their defining predicates.
//  4. colorSize and numColors match the color vector.
//  5. Enabled derived indices match their definitions.
//
// Complexity: O(V·k + E).
func (c *Coloring) CheckInvariants() error {
	n := len(c.colors)
	k := len(c.colorSize)

	// 1) Colors in range, sizes, counts.
	size := make([]int, k)
	for v, col := range c.colors {
		if col < Uncolored || col >= k {
			return violation("vertex %d has color %d outside %d slots", v, col, k)
		}
		if col != Uncolored {
			size[col]++
		}
	}
	var used int
	for col := range size {
		if size[col] != c.colorSize[col] {
			return violation("colorSize[%d]=%d, want %d", col, c.colorSize[col], size[col])
		}
		if size[col] > 0 {
			used++
		}
	}
	if used != c.numColors {
		return violation("numColors=%d, want %d", c.numColors, used)
	}

	// 2) Conflict matrix.
	if len(c.conflicts) != k {
		return violation("conflict rows=%d, want %d", len(c.conflicts), k)
	}
	want := make([][]int, k)
	for col := range want {
		want[col] = make([]int, n)
	}
	var v int
	for v = 0; v < n; v++ {
		for _, u := range c.g.Neighbors(v) {
			if cu := c.colors[u]; cu != Uncolored {
				want[cu][v]++
			}
		}
	}
	for col := range want {
		if len(c.conflicts[col]) != n {
			return violation("conflicts[%d] has %d entries, want %d", col, len(c.conflicts[col]), n)
		}
		if i := firstDiff(want[col], c.conflicts[col]); i >= 0 {
			return violation("conflicts[%d][%d]=%d, want %d", col, i, c.conflicts[col][i], want[col][i])
		}
	}

	// 3) Penalty and vertex sets.
	var twice int
	unc, conf := ordset.New(0), ordset.New(0)
	for v = 0; v < n; v++ {
		col := c.colors[v]
		if col == Uncolored {
			unc.Insert(v)
			continue
		}
		twice += want[col][v]
		if want[col][v] > 0 {
			conf.Insert(v)
		}
	}
	if twice%2 != 0 || twice/2 != c.penalty {
		return violation("penalty=%d, want %d/2", c.penalty, twice)
	}
	if !unc.Equal(c.uncolored) {
		return violation("uncolored=%v, want %v", c.uncolored.Items(), unc.Items())
	}
	if !conf.Equal(c.conflicting) {
		return violation("conflicting=%v, want %v", c.conflicting.Items(), conf.Items())
	}

	// 4) Derived indices.
	if c.deltas != nil {
		if err := c.checkDeltas(); err != nil {
			return err
		}
	}
	if c.legal != nil {
		for v = 0; v < n; v++ {
			if free := c.FreeColors(v); !slices.Equal(free, c.legal[v].Items()) {
				return violation("legalColors[%d]=%v, want %v", v, c.legal[v].Items(), free)
			}
		}
	}
	return nil
}

func (c *Coloring) checkDeltas() error {
	n := len(c.colors)
	k := len(c.colorSize)
	if len(c.deltas) != k {
		return violation("delta rows=%d, want %d", len(c.deltas), k)
	}
	var v int
	for v = 0; v < n; v++ {
		own := c.OwnConflicts(v)
		best := n
		var bestSet []int
		var col int
		for col = 0; col < k; col++ {
			d := c.conflicts[col][v] - own
			if c.deltas[col][v] != d {
				return violation("delta[%d][%d]=%d, want %d", col, v, c.deltas[col][v], d)
			}
			switch {
			case d < best:
				best = d
				bestSet = append(bestSet[:0], col)
			case d == best:
				bestSet = append(bestSet, col)
			}
		}
		if c.bestDelta[v] != best {
			return violation("bestDelta[%d]=%d, want %d", v, c.bestDelta[v], best)
		}
		if !slices.Equal(bestSet, c.bestColors[v].Items()) {
			return violation("bestColors[%d]=%v, want %v", v, c.bestColors[v].Items(), bestSet)
		}
	}
	return nil
}

func violation(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrInvariant, fmt.Sprintf(format, args...))
}

// firstDiff returns the first index where equal-length a and b differ, or -1.
func firstDiff(a, b []int) int {
	for i := range a {
		if a[i] != b[i] {
			return i
		}
	}
	return -1
}
