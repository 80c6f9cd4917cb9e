package ubqp

import (
	"fmt"
	"math/rand"
	"slices"

	"github.com/soniakeys/bits"

	"github.com/katalvlaran/gcol/coloring"
	"github.com/katalvlaran/gcol/rnd"
)

// Encode activates every arc whose endpoints share a color and whose head is
// the smallest vertex of that color. Uncolored vertices activate nothing.
//
// Errors: ErrGraphMismatch.
func (q *Graph) Encode(c *coloring.Coloring) (bits.Bits, error) {
	if c.Graph() != q.source {
		return bits.Bits{}, fmt.Errorf("Encode: %w", ErrGraphMismatch)
	}
	minOf := make([]int, c.Slots())
	for i := range minOf {
		minOf[i] = -1
	}
	colors := c.Colors()
	for v, col := range colors {
		if col != coloring.Uncolored && minOf[col] == -1 {
			minOf[col] = v
		}
	}

	x := bits.New(len(q.arcs))
	for a, arc := range q.arcs {
		col := colors[arc.Tail]
		if col != coloring.Uncolored && col == colors[arc.Head] && minOf[col] == arc.Head {
			x.SetBit(a, 1)
		}
	}
	return x, nil
}

// Score returns xᵀQx with each unordered pair counted once.
func (q *Graph) Score(x bits.Bits) int {
	return 2*q.Penalty(x) - x.OnesCount()
}

// Penalty returns the number of linked pairs with both arcs active.
func (q *Graph) Penalty(x bits.Bits) int {
	var twice int
	x.IterateOnes(func(a int) bool {
		for _, b := range q.links[a] {
			twice += x.Bit(b)
		}
		return true
	})
	return twice / 2
}

// Decode turns x into a complete coloring.
//
// Active arcs are visited in index order, skipping any arc that has an
// active linked arc of larger index. An arc whose endpoints are both free
// starts a group led by its tail; an arc with one grouped endpoint pulls the
// other endpoint into that group. Groups become colors, largest first, and
// every vertex left over takes a uniformly chosen conflict-free color, or a
// new one. The result may have conflicts when x has a positive penalty.
//
// Errors: ErrLengthMismatch.
func (q *Graph) Decode(x bits.Bits, rng *rand.Rand) (*coloring.Coloring, error) {
	if x.Num != len(q.arcs) {
		return nil, fmt.Errorf("Decode: %d bits, %d arcs: %w", x.Num, len(q.arcs), ErrLengthMismatch)
	}
	n := q.source.Order()

	// 1) Group endpoints of the dominant active arcs.
	group := make([]int, n) // group index of v, -1 if free
	for i := range group {
		group[i] = -1
	}
	var groups [][]int
	x.IterateOnes(func(a int) bool {
		for _, b := range q.links[a] {
			if b > a && x.Bit(b) == 1 {
				return true
			}
		}
		arc := q.arcs[a]
		gt, gh := group[arc.Tail], group[arc.Head]
		switch {
		case gt == -1 && gh == -1:
			group[arc.Tail], group[arc.Head] = len(groups), len(groups)
			groups = append(groups, []int{arc.Tail, arc.Head})
		case gt == -1:
			group[arc.Tail] = gh
			groups[gh] = append(groups[gh], arc.Tail)
		case gh == -1:
			group[arc.Head] = gt
			groups[gt] = append(groups[gt], arc.Head)
		}
		return true
	})

	// 2) Largest groups take the lowest colors.
	slices.SortStableFunc(groups, func(a, b []int) int { return len(b) - len(a) })
	c, err := coloring.FromGroups(q.source, groups)
	if err != nil {
		return nil, fmt.Errorf("Decode: %w", err)
	}

	// 3) Leftovers, smallest id first.
	for c.NumUncolored() > 0 {
		v := c.Uncolored()[0]
		col := coloring.NewColor
		if free := c.FreeColors(v); len(free) > 0 {
			col = rnd.Pick(free, rng)
		}
		if _, err = c.Assign(v, col); err != nil {
			return nil, fmt.Errorf("Decode: %w", err)
		}
	}
	return c, nil
}
