package coloring

import "github.com/katalvlaran/gcol/ordset"

// EnableDeltas (re)builds delta, bestDelta and bestColors from scratch and
// keeps them exact under every later mutation.
//
// Complexity: O(V·k).
func (c *Coloring) EnableDeltas() {
	n := len(c.colors)
	k := len(c.colorSize)
	c.deltas = make([][]int, k)
	var col int
	for col = 0; col < k; col++ {
		c.deltas[col] = make([]int, n)
	}
	c.bestDelta = make([]int, n)
	c.bestColors = make([]ordset.Set, n)
	var v int
	for v = 0; v < n; v++ {
		c.bestColors[v] = ordset.New(2)
		c.refreshDeltas(v)
	}
}

// EnableLegalColors (re)builds legalColors from scratch and keeps it exact
// under every later mutation.
//
// Complexity: O(V·k).
func (c *Coloring) EnableLegalColors() {
	n := len(c.colors)
	c.legal = make([]ordset.Set, n)
	var v int
	for v = 0; v < n; v++ {
		c.legal[v] = ordset.Of(c.FreeColors(v)...)
	}
}

// HasDeltas reports whether the delta indices are maintained.
func (c *Coloring) HasDeltas() bool { return c.deltas != nil }

// HasLegalColors reports whether the legal-color index is maintained.
func (c *Coloring) HasLegalColors() bool { return c.legal != nil }

// Delta returns the maintained delta[col][v]. Requires EnableDeltas.
func (c *Coloring) Delta(v, col int) int { return c.deltas[col][v] }

// BestDelta returns the smallest delta of v over all slots. Requires EnableDeltas.
func (c *Coloring) BestDelta(v int) int { return c.bestDelta[v] }

// BestColors returns the slots achieving BestDelta(v), ascending. The view is
// valid until the next mutation. Requires EnableDeltas.
func (c *Coloring) BestColors(v int) []int { return c.bestColors[v].Items() }

// LegalColors returns the conflict-free slots of v other than its own,
// ascending. The view is valid until the next mutation. Requires
// EnableLegalColors.
func (c *Coloring) LegalColors(v int) []int { return c.legal[v].Items() }

// bump adds d (±1) to conflicts[col][u] and patches the derived entries of u.
func (c *Coloring) bump(col, u, d int) {
	c.conflicts[col][u] += d
	own := c.colors[u]

	if c.deltas != nil {
		if own == col {
			// The reference term moved: every delta of u shifts.
			c.refreshDeltas(u)
		} else {
			c.deltas[col][u] += d
			nd := c.deltas[col][u]
			if d < 0 {
				switch {
				case nd < c.bestDelta[u]:
					c.bestDelta[u] = nd
					c.bestColors[u].Clear()
					c.bestColors[u].Insert(col)
				case nd == c.bestDelta[u]:
					c.bestColors[u].Insert(col)
				}
			} else if nd-1 == c.bestDelta[u] {
				if c.bestColors[u].Len() > 1 {
					c.bestColors[u].Erase(col)
				} else {
					c.refreshDeltas(u)
				}
			}
		}
	}

	if c.legal != nil && own != col {
		switch {
		case d > 0 && c.conflicts[col][u] == 1:
			c.legal[u].Erase(col)
		case d < 0 && c.conflicts[col][u] == 0:
			c.legal[u].Insert(col)
		}
	}
}

// ownChanged patches the derived entries of v after colors[v] went from
// from to to (either may be Uncolored).
func (c *Coloring) ownChanged(v, from, to int) {
	if c.deltas != nil {
		c.refreshDeltas(v)
	}
	if c.legal != nil {
		if from != Uncolored && c.conflicts[from][v] == 0 {
			c.legal[v].Insert(from)
		}
		if to != Uncolored {
			c.legal[v].Erase(to)
		}
	}
}

// refreshDeltas recomputes the delta column, bestDelta and bestColors of v.
//
// Complexity: O(k).
func (c *Coloring) refreshDeltas(v int) {
	own := c.OwnConflicts(v)
	best := len(c.colors)
	set := &c.bestColors[v]
	set.Clear()
	var col int
	for col = 0; col < len(c.colorSize); col++ {
		d := c.conflicts[col][v] - own
		c.deltas[col][v] = d
		switch {
		case d < best:
			best = d
			set.Clear()
			set.Insert(col)
		case d == best:
			set.Insert(col)
		}
	}
	c.bestDelta[v] = best
}
