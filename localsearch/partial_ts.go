package localsearch

import (
	"context"

	"github.com/katalvlaran/gcol/coloring"
	"github.com/katalvlaran/gcol/rnd"
)

// partialTS works on partial-legal colorings with per-vertex tabu and tries
// six move kinds per turn in a fixed priority order (see step).
type partialTS struct{ p Params }

func (e partialTS) Name() string   { return e.p.DisplayName() }
func (e partialTS) Params() Params { return e.p }

// Run searches from start; see the package doc for the loop structure.
func (e partialTS) Run(ctx context.Context, start *coloring.Coloring, sc *SearchContext) (*Result, error) {
	r, err := newRunner(ctx, e.p, sc)
	if err != nil {
		return nil, err
	}
	return r.twoLevel(start, true, e.inner)
}

// tsTurn is the scratch state of one partial_ts inner loop.
type tsTurn struct {
	r         *runner
	sol       *coloring.Coloring
	tabu      []int64 // tabu[v] >= turn: v is tabu
	order     []int
	relocated []int
	costs     []int
	oneLost   []coloring.Coloration
}

func (e partialTS) inner(r *runner, sol *coloring.Coloring, best **coloring.Coloring) (bool, error) {
	n := sol.Graph().Order()
	if sol.Slots() == 0 {
		return true, nil
	}
	sol.EnableLegalColors()
	ts := &tsTurn{
		r:         r,
		sol:       sol,
		tabu:      make([]int64, n),
		order:     rnd.Perm(n, r.sc.Rng),
		relocated: make([]int, sol.Slots()),
		costs:     make([]int, sol.Slots()),
	}

	bestFound := (*best).NumUncolored()
	var turn int64
	for turn = 1; (*best).NumUncolored() > 0; turn++ {
		if r.stopped() {
			return false, nil
		}
		if r.exhausted(turn) {
			return true, nil
		}
		r.res.Turns++

		rnd.Shuffle(ts.order, r.sc.Rng)
		moved, err := ts.step(turn)
		if err != nil {
			return false, err
		}
		if !moved {
			continue
		}
		if err = r.check(sol); err != nil {
			return false, err
		}
		if sol.NumUncolored() < bestFound {
			bestFound = sol.NumUncolored()
			*best = sol.Snapshot()
			if err = r.improved(turn, sol); err != nil {
				return false, err
			}
		}
	}
	return false, nil
}

// step applies the first move kind that has a candidate:
//
//	M1  an uncolored vertex with a free color takes it;
//	M2  an uncolored vertex enters a color whose occupants among its
//	    neighbors can all move to free colors of their own;
//	M3  as M2, except exactly one occupant has no free color, is not tabu
//	    and gets uncolored; the entering vertex becomes tabu;
//	M4  up to NumColors non-tabu colored vertices move to a free color;
//	M5  a tabu vertex without free colors enters a color whose occupants
//	    among its neighbors can all move to free colors;
//	M6  a random uncolored vertex enters the color that uncolors the fewest
//	    neighbors, and every tabu is lifted.
//
// It reports whether a move was made.
func (ts *tsTurn) step(turn int64) (bool, error) {
	sol, rng := ts.sol, ts.r.sc.Rng
	k := sol.Slots()
	tenure := turn + int64(sol.NumColors())

	// M1, M2 and the M3 candidates, one uncolored vertex at a time.
	ts.oneLost = ts.oneLost[:0]
	for _, v := range ts.order {
		if sol.Color(v) != coloring.Uncolored {
			continue
		}
		if free := sol.LegalColors(v); len(free) > 0 {
			_, err := sol.GrenadeLegal(v, rnd.Pick(free, rng), rng)
			return true, err
		}
		ts.countRelocations(v, turn, false)
		var col int
		for col = 0; col < k; col++ {
			if ts.relocated[col] != sol.Conflicts(v, col) {
				continue
			}
			switch ts.costs[col] {
			case 0:
				_, err := sol.GrenadeLegal(v, col, rng)
				return true, err
			case 1:
				ts.oneLost = append(ts.oneLost, coloring.Coloration{Vertex: v, Color: col})
			}
		}
	}
	if len(ts.oneLost) > 0 {
		mv := ts.oneLost[rng.Intn(len(ts.oneLost))]
		ts.tabu[mv.Vertex] = tenure
		_, err := sol.GrenadeLegal(mv.Vertex, mv.Color, rng)
		return true, err
	}

	// M4.
	var counter int
	for _, v := range ts.order {
		if counter == sol.NumColors() {
			break
		}
		if sol.Color(v) == coloring.Uncolored || ts.tabu[v] >= turn {
			continue
		}
		free := sol.LegalColors(v)
		if len(free) == 0 {
			continue
		}
		ts.tabu[v] = tenure
		if _, err := sol.GrenadeLegal(v, rnd.Pick(free, rng), rng); err != nil {
			return true, err
		}
		counter++
	}
	if counter > 0 {
		return true, nil
	}

	// M5.
	for _, v := range ts.order {
		own := sol.Color(v)
		if own == coloring.Uncolored || ts.tabu[v] < turn || len(sol.LegalColors(v)) > 0 {
			continue
		}
		ts.countRelocations(v, turn, true)
		var col int
		for col = 0; col < k; col++ {
			if col == own || sol.Conflicts(v, col) == 0 || ts.relocated[col] != sol.Conflicts(v, col) {
				continue
			}
			ts.tabu[v] = tenure
			_, err := sol.GrenadeLegal(v, col, rng)
			return true, err
		}
	}

	// M6.
	if sol.NumUncolored() == 0 {
		return false, nil
	}
	v := rnd.Pick(sol.Uncolored(), rng)
	clear(ts.relocated)
	clear(ts.costs)
	for _, u := range sol.Graph().Neighbors(v) {
		cu := sol.Color(u)
		if cu == coloring.Uncolored {
			continue
		}
		ts.relocated[cu]++
		if len(sol.LegalColors(u)) == 0 {
			ts.costs[cu]++
		}
	}
	least := sol.Graph().Order()
	var cheapest []int
	var col int
	for col = 0; col < k; col++ {
		if ts.relocated[col] != sol.Conflicts(v, col) {
			continue
		}
		switch c := ts.costs[col]; {
		case c < least:
			least = c
			cheapest = append(cheapest[:0], col)
		case c == least:
			cheapest = append(cheapest, col)
		}
	}
	if len(cheapest) == 0 {
		return false, nil
	}
	clear(ts.tabu)
	ts.tabu[v] = tenure
	_, err := sol.GrenadeLegal(v, rnd.Pick(cheapest, rng), rng)
	return true, err
}

// countRelocations fills relocated[c] with the neighbors of v in c that can
// leave c, and costs[c] with those among them that would be uncolored. With
// freeOnly set, only neighbors with a free color count.
func (ts *tsTurn) countRelocations(v int, turn int64, freeOnly bool) {
	sol := ts.sol
	clear(ts.relocated)
	clear(ts.costs)
	for _, u := range sol.Graph().Neighbors(v) {
		cu := sol.Color(u)
		if cu == coloring.Uncolored {
			continue
		}
		switch {
		case len(sol.LegalColors(u)) > 0:
			ts.relocated[cu]++
		case !freeOnly && ts.tabu[u] < turn:
			ts.relocated[cu]++
			ts.costs[cu]++
		}
	}
}
