package coloring

import (
	"fmt"
	"math/rand"

	"github.com/katalvlaran/gcol/rnd"
)

// Assign colors the uncolored vertex v with col, or with a freshly allocated
// slot when col == NewColor. It returns the slot used.
//
// Complexity: O(deg(v)), plus O(k) per same-color neighbor and O(k) for v
// when deltas are maintained.
// Errors: ErrVertexOutOfRange, ErrVertexColored, ErrColorOutOfRange.
func (c *Coloring) Assign(v, col int) (int, error) {
	// 1) Validate.
	if err := c.checkVertex("Assign", v); err != nil {
		return Uncolored, err
	}
	if c.colors[v] != Uncolored {
		return Uncolored, fmt.Errorf("Assign: vertex %d has color %d: %w", v, c.colors[v], ErrVertexColored)
	}
	if col == NewColor {
		col = c.allocSlot()
	} else if err := c.checkColor("Assign", col); err != nil {
		return Uncolored, err
	}

	// 2) The vertex itself.
	own := c.conflicts[col][v]
	c.penalty += own
	if own > 0 {
		c.conflicting.Insert(v)
	}
	c.uncolored.Erase(v)
	c.colors[v] = col
	if c.colorSize[col] == 0 {
		c.numColors++
	}
	c.colorSize[col]++
	c.ownChanged(v, Uncolored, col)

	// 3) Its neighbors.
	for _, u := range c.g.Neighbors(v) {
		c.bump(col, u, +1)
		if c.colors[u] == col && c.conflicts[col][u] == 1 {
			c.conflicting.Insert(u)
		}
	}
	return col, nil
}

// Unassign uncolors v and returns its former slot. It is the exact inverse of
// Assign; an emptied slot stays allocated.
//
// Errors: ErrVertexOutOfRange, ErrVertexUncolored.
func (c *Coloring) Unassign(v int) (int, error) {
	if err := c.checkVertex("Unassign", v); err != nil {
		return Uncolored, err
	}
	col := c.colors[v]
	if col == Uncolored {
		return Uncolored, fmt.Errorf("Unassign: vertex %d: %w", v, ErrVertexUncolored)
	}

	own := c.conflicts[col][v]
	c.penalty -= own
	if own > 0 {
		c.conflicting.Erase(v)
	}
	c.uncolored.Insert(v)
	c.colors[v] = Uncolored
	c.colorSize[col]--
	if c.colorSize[col] == 0 {
		c.numColors--
	}
	c.ownChanged(v, col, Uncolored)

	for _, u := range c.g.Neighbors(v) {
		c.bump(col, u, -1)
		if c.colors[u] == col && c.conflicts[col][u] == 0 {
			c.conflicting.Erase(u)
		}
	}
	return col, nil
}

// Recolor moves the colored vertex v to slot to and returns the vacated slot.
// The penalty changes by conflicts[to][v] - conflicts[from][v]; no rescan.
// Recoloring to the current color is a no-op. to may be an allocated slot
// that is currently empty; it then counts as a color again.
//
// Errors: ErrVertexOutOfRange, ErrVertexUncolored, ErrColorOutOfRange (to is
// not an allocated slot; an empty allocated slot is accepted).
func (c *Coloring) Recolor(v, to int) (int, error) {
	if err := c.checkVertex("Recolor", v); err != nil {
		return Uncolored, err
	}
	from := c.colors[v]
	if from == Uncolored {
		return Uncolored, fmt.Errorf("Recolor: vertex %d: %w", v, ErrVertexUncolored)
	}
	if err := c.checkColor("Recolor", to); err != nil {
		return Uncolored, err
	}
	if to == from {
		return from, nil
	}

	// 1) The vertex: penalty and conflicting membership from the two counts.
	before, after := c.conflicts[from][v], c.conflicts[to][v]
	c.penalty += after - before
	switch {
	case before > 0 && after == 0:
		c.conflicting.Erase(v)
	case before == 0 && after > 0:
		c.conflicting.Insert(v)
	}
	c.colors[v] = to
	c.colorSize[from]--
	if c.colorSize[from] == 0 {
		c.numColors--
	}
	if c.colorSize[to] == 0 {
		c.numColors++
	}
	c.colorSize[to]++
	c.ownChanged(v, from, to)

	// 2) Neighbors lose one in from and gain one in to.
	for _, u := range c.g.Neighbors(v) {
		c.bump(from, u, -1)
		if c.colors[u] == from && c.conflicts[from][u] == 0 {
			c.conflicting.Erase(u)
		}
		c.bump(to, u, +1)
		if c.colors[u] == to && c.conflicts[to][u] == 1 {
			c.conflicting.Insert(u)
		}
	}
	return from, nil
}

// GrenadeMove forces the uncolored vertex v into col; every neighbor already
// in col is uncolored first. It returns the number of evicted neighbors.
// Evicted vertices are not recolored.
//
// Errors: as Assign.
func (c *Coloring) GrenadeMove(v, col int) (int, error) {
	if err := c.checkVertex("GrenadeMove", v); err != nil {
		return 0, err
	}
	if c.colors[v] != Uncolored {
		return 0, fmt.Errorf("GrenadeMove: vertex %d: %w", v, ErrVertexColored)
	}
	if err := c.checkColor("GrenadeMove", col); err != nil {
		return 0, err
	}

	var evicted int
	for _, u := range c.g.Neighbors(v) {
		if c.colors[u] != col {
			continue
		}
		if _, err := c.Unassign(u); err != nil {
			return evicted, err
		}
		evicted++
	}
	_, err := c.Assign(v, col)
	return evicted, err
}

// GrenadeLegal moves v (colored or not) into col while keeping the legal-color
// index exact. Each neighbor found in col moves to a uniformly chosen legal
// color of its own when it has one, and is uncolored otherwise. It returns
// the number of neighbors left uncolored.
//
// Errors: ErrIndexDisabled unless EnableLegalColors was called; as Assign
// and Recolor otherwise.
func (c *Coloring) GrenadeLegal(v, col int, rng *rand.Rand) (int, error) {
	if c.legal == nil {
		return 0, fmt.Errorf("GrenadeLegal: %w", ErrIndexDisabled)
	}
	if err := c.checkVertex("GrenadeLegal", v); err != nil {
		return 0, err
	}

	// 1) Move v.
	var err error
	switch c.colors[v] {
	case Uncolored:
		_, err = c.Assign(v, col)
	default:
		_, err = c.Recolor(v, col)
	}
	if err != nil {
		return 0, err
	}

	// 2) Relocate or evict the neighbors now in conflict with v.
	var evicted int
	for _, u := range c.g.Neighbors(v) {
		if c.colors[u] != col {
			continue
		}
		if free := c.legal[u].Items(); len(free) > 0 {
			_, err = c.Recolor(u, rnd.Pick(free, rng))
		} else {
			_, err = c.Unassign(u)
			evicted++
		}
		if err != nil {
			return evicted, err
		}
	}
	return evicted, nil
}
