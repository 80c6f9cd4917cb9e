package coloring

import (
	"fmt"
	"math/rand"
	"slices"

	"github.com/katalvlaran/gcol/rnd"
)

// largestGroups returns the members of the k largest non-empty slots,
// largest first; equal sizes keep slot order.
func (c *Coloring) largestGroups(k int) [][]int {
	bySlot := make([][]int, len(c.colorSize))
	for v, col := range c.colors {
		if col != Uncolored {
			bySlot[col] = append(bySlot[col], v)
		}
	}
	slices.SortStableFunc(bySlot, func(a, b []int) int { return len(b) - len(a) })
	out := make([][]int, 0, k)
	for _, grp := range bySlot {
		if len(out) == k || len(grp) == 0 {
			break
		}
		out = append(out, grp)
	}
	return out
}

// ReduceKeepLegal returns a new coloring that keeps the k largest color
// classes (pre-removal sizes, ties by slot id), then gives every freed vertex,
// in ascending order, the first slot where it has no conflict. Vertices with
// no such slot stay uncolored. The result never has a higher penalty than
// the kept classes, so a partial-legal input yields a partial-legal result.
//
// Errors: ErrInvalidTarget if k < 1.
// Complexity: O(V·k + E).
func (c *Coloring) ReduceKeepLegal(k int) (*Coloring, error) {
	if k < 1 {
		return nil, fmt.Errorf("ReduceKeepLegal: k=%d: %w", k, ErrInvalidTarget)
	}
	out, err := FromGroups(c.g, c.largestGroups(k))
	if err != nil {
		return nil, fmt.Errorf("ReduceKeepLegal: %w", err)
	}

	// Iterate over a copy: Assign shrinks the uncolored set.
	for _, v := range slices.Clone(out.Uncolored()) {
		var col int
		for col = 0; col < out.Slots(); col++ {
			if out.conflicts[col][v] == 0 {
				if _, err = out.Assign(v, col); err != nil {
					return nil, fmt.Errorf("ReduceKeepLegal: %w", err)
				}
				break
			}
		}
	}
	return out, nil
}

// ReduceAllowConflicts returns a new coloring that keeps the k largest color
// classes and forces every other vertex, in ascending order, into a uniformly
// chosen fewest-conflict surviving slot. The penalty may rise above 0.
//
// Errors: ErrInvalidTarget if k < 1.
// Complexity: O(V·k + E).
func (c *Coloring) ReduceAllowConflicts(k int, rng *rand.Rand) (*Coloring, error) {
	if k < 1 {
		return nil, fmt.Errorf("ReduceAllowConflicts: k=%d: %w", k, ErrInvalidTarget)
	}
	out, err := FromGroups(c.g, c.largestGroups(k))
	if err != nil {
		return nil, fmt.Errorf("ReduceAllowConflicts: %w", err)
	}
	if out.Slots() == 0 {
		// Only reachable when c has no colored vertex at all.
		out.allocSlot()
	}
	for _, v := range slices.Clone(out.Uncolored()) {
		if _, err = out.Assign(v, rnd.Pick(out.BestPossibleColors(v), rng)); err != nil {
			return nil, fmt.Errorf("ReduceAllowConflicts: %w", err)
		}
	}
	return out, nil
}

// RemovePenalty uncolors conflicting vertices, smallest id first, until the
// coloring is partial-legal. It returns the number of vertices uncolored.
func (c *Coloring) RemovePenalty() int {
	var removed int
	for !c.conflicting.Empty() {
		// Unassign cannot fail on a conflicting (hence colored) vertex.
		_, _ = c.Unassign(c.conflicting.At(0))
		removed++
	}
	return removed
}

// ColorUncolored assigns every uncolored vertex, smallest id first, to a
// uniformly chosen fewest-conflict slot. With useTarget set, a vertex that
// would create conflicts opens a new color instead while NumColors < target.
// A coloring without slots always opens one.
func (c *Coloring) ColorUncolored(rng *rand.Rand, target int, useTarget bool) error {
	for !c.uncolored.Empty() {
		v := c.uncolored.At(0)
		col := NewColor
		if best := c.BestPossibleColors(v); len(best) > 0 {
			col = rnd.Pick(best, rng)
			if useTarget && c.numColors < target && c.conflicts[col][v] != 0 {
				col = NewColor
			}
		}
		if _, err := c.Assign(v, col); err != nil {
			return fmt.Errorf("ColorUncolored: %w", err)
		}
	}
	return nil
}

// ToLegal removes every conflict: the highest conflicting vertex is uncolored
// and reassigned to a uniformly chosen conflict-free slot, or to a new color
// when none exists, until no conflict remains. Uncolored vertices are left
// untouched.
func (c *Coloring) ToLegal(rng *rand.Rand) error {
	for !c.conflicting.Empty() {
		v := c.conflicting.At(c.conflicting.Len() - 1)
		if _, err := c.Unassign(v); err != nil {
			return fmt.Errorf("ToLegal: %w", err)
		}
		col := NewColor
		if free := c.FreeColors(v); len(free) > 0 {
			col = rnd.Pick(free, rng)
		}
		if _, err := c.Assign(v, col); err != nil {
			return fmt.Errorf("ToLegal: %w", err)
		}
	}
	return nil
}
