package coloring

import (
	"fmt"
	"slices"
	"sync/atomic"

	"github.com/katalvlaran/gcol/graph"
	"github.com/katalvlaran/gcol/ordset"
)

var lastID atomic.Uint64

// Coloring is the incremental coloring state. See the package doc for the
// maintained fields and their invariants.
type Coloring struct {
	g  *graph.Graph
	id uint64

	// Age and Distances are bookkeeping for population-style callers.
	Age       int
	Distances map[uint64]int

	colors      []int
	colorSize   []int
	numColors   int
	uncolored   ordset.Set
	penalty     int
	conflicting ordset.Set
	conflicts   [][]int // [slot][vertex]

	// derived, nil unless enabled
	deltas     [][]int // [slot][vertex]
	bestDelta  []int
	bestColors []ordset.Set
	legal      []ordset.Set
}

// New returns an empty coloring of g: every vertex uncolored, no slots.
func New(g *graph.Graph) *Coloring {
	n := g.Order()
	c := &Coloring{
		g:         g,
		id:        lastID.Add(1),
		Distances: make(map[uint64]int),
		colors:    make([]int, n),
		uncolored: ordset.Range(n),
	}
	var v int
	for v = 0; v < n; v++ {
		c.colors[v] = Uncolored
	}
	return c
}

// FromColors builds a coloring from a color vector (Uncolored allowed).
// Slots 0..max(colors) are allocated; vertices are assigned in ascending order.
//
// Errors: ErrLengthMismatch, ErrColorOutOfRange for ids below Uncolored.
func FromColors(g *graph.Graph, colors []int) (*Coloring, error) {
	if len(colors) != g.Order() {
		return nil, fmt.Errorf("FromColors: len=%d, V=%d: %w", len(colors), g.Order(), ErrLengthMismatch)
	}
	c := New(g)
	top := Uncolored
	for v, col := range colors {
		if col < Uncolored {
			return nil, fmt.Errorf("FromColors: vertex %d color %d: %w", v, col, ErrColorOutOfRange)
		}
		top = max(top, col)
	}
	c.ensureSlots(top + 1)
	for v, col := range colors {
		if col == Uncolored {
			continue
		}
		if _, err := c.Assign(v, col); err != nil {
			return nil, fmt.Errorf("FromColors: %w", err)
		}
	}
	return c, nil
}

// FromGroups builds a coloring where groups[i] becomes slot i. Vertices not
// listed stay uncolored.
//
// Errors: ErrVertexOutOfRange, ErrVertexColored (vertex listed twice).
func FromGroups(g *graph.Graph, groups [][]int) (*Coloring, error) {
	c := New(g)
	c.ensureSlots(len(groups))
	for slot, group := range groups {
		for _, v := range group {
			if _, err := c.Assign(v, slot); err != nil {
				return nil, fmt.Errorf("FromGroups: group %d: %w", slot, err)
			}
		}
	}
	return c, nil
}

// Graph returns the underlying graph.
func (c *Coloring) Graph() *graph.Graph { return c.g }

// ID returns the process-unique identifier of this coloring.
func (c *Coloring) ID() uint64 { return c.id }

// Color returns the slot of v, or Uncolored.
func (c *Coloring) Color(v int) int { return c.colors[v] }

// Colors returns a copy of the color vector.
func (c *Coloring) Colors() []int { return slices.Clone(c.colors) }

// NumColors returns the number of non-empty color slots.
func (c *Coloring) NumColors() int { return c.numColors }

// Slots returns the number of allocated color slots (empty ones included).
func (c *Coloring) Slots() int { return len(c.colorSize) }

// ColorSize returns the number of vertices in slot col.
func (c *Coloring) ColorSize(col int) int { return c.colorSize[col] }

// Uncolored returns the ascending uncolored vertices (read-only view, valid
// until the next mutation).
func (c *Coloring) Uncolored() []int { return c.uncolored.Items() }

// NumUncolored returns the number of uncolored vertices.
func (c *Coloring) NumUncolored() int { return c.uncolored.Len() }

// Conflicting returns the ascending conflicting vertices (read-only view,
// valid until the next mutation).
func (c *Coloring) Conflicting() []int { return c.conflicting.Items() }

// NumConflicting returns the number of conflicting vertices.
func (c *Coloring) NumConflicting() int { return c.conflicting.Len() }

// Penalty returns the number of monochromatic edges.
func (c *Coloring) Penalty() int { return c.penalty }

// Conflicts returns the number of neighbors of v in slot col.
func (c *Coloring) Conflicts(v, col int) int { return c.conflicts[col][v] }

// OwnConflicts returns the number of neighbors of v sharing its color
// (0 when v is uncolored).
func (c *Coloring) OwnConflicts(v int) int {
	col := c.colors[v]
	if col == Uncolored {
		return 0
	}
	return c.conflicts[col][v]
}

// DeltaOf returns the penalty change of moving v to col, computed from the
// conflict matrix (no derived index needed).
func (c *Coloring) DeltaOf(v, col int) int {
	return c.conflicts[col][v] - c.OwnConflicts(v)
}

// IsLegal reports a complete coloring without conflicts.
func (c *Coloring) IsLegal() bool {
	return c.conflicting.Empty() && c.uncolored.Empty() && c.penalty == 0
}

// IsPartialLegal reports a coloring without conflicts (uncolored allowed).
func (c *Coloring) IsPartialLegal() bool { return c.penalty == 0 }

// Groups returns the members of every non-empty slot in slot order, each
// group ascending.
func (c *Coloring) Groups() [][]int {
	bySlot := make([][]int, len(c.colorSize))
	for v, col := range c.colors {
		if col != Uncolored {
			bySlot[col] = append(bySlot[col], v)
		}
	}
	out := bySlot[:0]
	for _, grp := range bySlot {
		if len(grp) > 0 {
			out = append(out, grp)
		}
	}
	return out
}

// BestPossibleColors returns the slots with the fewest conflicts for v, in
// ascending order (empty when no slot is allocated).
func (c *Coloring) BestPossibleColors(v int) []int {
	var best []int
	least := c.g.Order() + 1
	var col int
	for col = 0; col < len(c.colorSize); col++ {
		n := c.conflicts[col][v]
		if n > least {
			continue
		}
		if n < least {
			least = n
			best = best[:0]
		}
		best = append(best, col)
	}
	return best
}

// FreeColors returns the slots other than v's own with zero conflicts for v,
// ascending. It does not need the legal-color index.
func (c *Coloring) FreeColors(v int) []int {
	var out []int
	var col int
	for col = 0; col < len(c.colorSize); col++ {
		if col != c.colors[v] && c.conflicts[col][v] == 0 {
			out = append(out, col)
		}
	}
	return out
}

// Clone returns a deep copy with a fresh id, derived indices included.
func (c *Coloring) Clone() *Coloring {
	out := c.Snapshot()
	if c.deltas != nil {
		out.deltas = cloneMatrix(c.deltas)
		out.bestDelta = slices.Clone(c.bestDelta)
		out.bestColors = cloneSets(c.bestColors)
	}
	if c.legal != nil {
		out.legal = cloneSets(c.legal)
	}
	return out
}

// Snapshot returns a deep copy with a fresh id and no derived indices. It is
// the cheap form used to remember best-so-far states.
func (c *Coloring) Snapshot() *Coloring {
	return &Coloring{
		g:           c.g,
		id:          lastID.Add(1),
		Age:         c.Age,
		Distances:   make(map[uint64]int),
		colors:      slices.Clone(c.colors),
		colorSize:   slices.Clone(c.colorSize),
		numColors:   c.numColors,
		uncolored:   c.uncolored.Clone(),
		penalty:     c.penalty,
		conflicting: c.conflicting.Clone(),
		conflicts:   cloneMatrix(c.conflicts),
	}
}

// ensureSlots allocates slots until Slots() >= n.
func (c *Coloring) ensureSlots(n int) {
	for len(c.colorSize) < n {
		c.allocSlot()
	}
}

// allocSlot appends an empty slot, extending every maintained index.
func (c *Coloring) allocSlot() int {
	slot := len(c.colorSize)
	n := len(c.colors)
	c.colorSize = append(c.colorSize, 0)
	c.conflicts = append(c.conflicts, make([]int, n))

	if c.deltas != nil {
		row := make([]int, n)
		var v int
		for v = 0; v < n; v++ {
			d := -c.OwnConflicts(v)
			row[v] = d
			switch {
			case d < c.bestDelta[v]:
				c.bestDelta[v] = d
				c.bestColors[v].Clear()
				c.bestColors[v].Insert(slot)
			case d == c.bestDelta[v]:
				c.bestColors[v].Insert(slot)
			}
		}
		c.deltas = append(c.deltas, row)
	}
	if c.legal != nil {
		var v int
		for v = 0; v < n; v++ {
			c.legal[v].Insert(slot)
		}
	}
	return slot
}

func (c *Coloring) checkVertex(op string, v int) error {
	if v < 0 || v >= len(c.colors) {
		return fmt.Errorf("%s: vertex %d, V=%d: %w", op, v, len(c.colors), ErrVertexOutOfRange)
	}
	return nil
}

func (c *Coloring) checkColor(op string, col int) error {
	if col < 0 || col >= len(c.colorSize) {
		return fmt.Errorf("%s: color %d, slots=%d: %w", op, col, len(c.colorSize), ErrColorOutOfRange)
	}
	return nil
}

func cloneMatrix(m [][]int) [][]int {
	out := make([][]int, len(m))
	for i := range m {
		out[i] = slices.Clone(m[i])
	}
	return out
}

func cloneSets(s []ordset.Set) []ordset.Set {
	out := make([]ordset.Set, len(s))
	for i := range s {
		out[i] = s[i].Clone()
	}
	return out
}
