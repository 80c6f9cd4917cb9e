package greedy

import (
	"math/rand"
	"slices"

	"github.com/katalvlaran/gcol/coloring"
	"github.com/katalvlaran/gcol/rnd"
)

type randomStrategy struct{}

func (randomStrategy) Name() string { return Random }

// Color gives the smallest uncolored vertex a uniform pick among its free
// colors and a fresh one, until every vertex is colored.
func (randomStrategy) Color(c *coloring.Coloring, rng *rand.Rand) error {
	for c.NumUncolored() > 0 {
		v := c.Uncolored()[0]
		choices := append(c.FreeColors(v), coloring.NewColor)
		if _, err := c.Assign(v, rnd.Pick(choices, rng)); err != nil {
			return err
		}
	}
	return nil
}

type constrainedStrategy struct{}

func (constrainedStrategy) Name() string { return Constrained }

// Color opens a new color only when the vertex has no free one.
func (constrainedStrategy) Color(c *coloring.Coloring, rng *rand.Rand) error {
	for c.NumUncolored() > 0 {
		v := c.Uncolored()[0]
		col := coloring.NewColor
		if free := c.FreeColors(v); len(free) > 0 {
			col = rnd.Pick(free, rng)
		}
		if _, err := c.Assign(v, col); err != nil {
			return err
		}
	}
	return nil
}

type deterministicStrategy struct{}

func (deterministicStrategy) Name() string { return Deterministic }

func (deterministicStrategy) Color(c *coloring.Coloring, _ *rand.Rand) error {
	for c.NumUncolored() > 0 {
		v := c.Uncolored()[0]
		if _, err := c.Assign(v, firstFree(c, v)); err != nil {
			return err
		}
	}
	return nil
}

// firstFree returns the lowest conflict-free slot of v, or NewColor.
func firstFree(c *coloring.Coloring, v int) int {
	var col int
	for col = 0; col < c.Slots(); col++ {
		if c.Conflicts(v, col) == 0 {
			return col
		}
	}
	return coloring.NewColor
}

// byDegree fills one color at a time, visiting the uncolored vertices by
// decreasing degree. With adaptive set the degrees count only uncolored
// neighbors and the order is refreshed after every color.
type byDegree struct {
	name     string
	adaptive bool
}

func (s byDegree) Name() string { return s.name }

func (s byDegree) Color(c *coloring.Coloring, _ *rand.Rand) error {
	deg := c.Graph().Degrees()
	order := slices.Clone(c.Uncolored())
	sortByDegree(order, deg)

	// 1) Existing colors first.
	var err error
	var col int
	for col = 0; col < c.Slots() && len(order) > 0; col++ {
		if order, err = s.fill(c, order, col, deg); err != nil {
			return err
		}
	}

	// 2) One new color per round, seeded by the highest-degree vertex left.
	for len(order) > 0 {
		v := order[0]
		if col, err = c.Assign(v, coloring.NewColor); err != nil {
			return err
		}
		s.colored(c, v, deg)
		if order, err = s.fill(c, order[1:], col, deg); err != nil {
			return err
		}
	}
	return nil
}

// fill puts every vertex of order that fits into col and returns the rest.
func (s byDegree) fill(c *coloring.Coloring, order []int, col int, deg []int) ([]int, error) {
	rest := order[:0]
	for _, v := range order {
		if c.Conflicts(v, col) != 0 {
			rest = append(rest, v)
			continue
		}
		if _, err := c.Assign(v, col); err != nil {
			return nil, err
		}
		s.colored(c, v, deg)
	}
	if s.adaptive {
		sortByDegree(rest, deg)
	}
	return rest, nil
}

func (s byDegree) colored(c *coloring.Coloring, v int, deg []int) {
	if !s.adaptive {
		return
	}
	for _, u := range c.Graph().Neighbors(v) {
		deg[u]--
	}
}

func sortByDegree(vs, deg []int) {
	slices.SortStableFunc(vs, func(a, b int) int { return deg[b] - deg[a] })
}
