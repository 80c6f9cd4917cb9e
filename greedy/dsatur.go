package greedy

import (
	"math/rand"

	"github.com/emirpasic/gods/trees/redblacktree"

	"github.com/katalvlaran/gcol/coloring"
	"github.com/katalvlaran/gcol/ordset"
)

type dsaturStrategy struct{}

func (dsaturStrategy) Name() string { return DSatur }

// satItem is a queue key; the tree's leftmost key is the next vertex.
type satItem struct {
	sat int // distinct colors among neighbors
	deg int // uncolored neighbors
	v   int
}

func bySaturation(a, b interface{}) int {
	x, y := a.(satItem), b.(satItem)
	switch {
	case x.sat != y.sat:
		return y.sat - x.sat
	case x.deg != y.deg:
		return y.deg - x.deg
	default:
		return y.v - x.v
	}
}

// Color runs DSatur over the uncolored vertices. Each pick takes the first
// conflict-free color, or a new one.
//
// Complexity: O((V + E) log V + V·k).
func (dsaturStrategy) Color(c *coloring.Coloring, _ *rand.Rand) error {
	g := c.Graph()
	n := g.Order()
	deg := g.Degrees()
	seen := make([]ordset.Set, n)

	// 1) Account for vertices colored before the call.
	var v int
	for v = 0; v < n; v++ {
		col := c.Color(v)
		if col == coloring.Uncolored {
			continue
		}
		for _, u := range g.Neighbors(v) {
			if c.Color(u) == coloring.Uncolored {
				seen[u].Insert(col)
				deg[u]--
			}
		}
	}

	queue := redblacktree.NewWith(bySaturation)
	for _, u := range c.Uncolored() {
		queue.Put(satItem{sat: seen[u].Len(), deg: deg[u], v: u}, nil)
	}

	// 2) Most saturated first.
	for !queue.Empty() {
		item := queue.Left().Key.(satItem)
		queue.Remove(item)
		col, err := c.Assign(item.v, firstFree(c, item.v))
		if err != nil {
			return err
		}
		for _, u := range g.Neighbors(item.v) {
			if c.Color(u) != coloring.Uncolored {
				continue
			}
			queue.Remove(satItem{sat: seen[u].Len(), deg: deg[u], v: u})
			seen[u].Insert(col)
			deg[u]--
			queue.Put(satItem{sat: seen[u].Len(), deg: deg[u], v: u}, nil)
		}
	}
	return nil
}
