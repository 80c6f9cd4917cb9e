package localsearch

import (
	"context"

	"github.com/katalvlaran/gcol/coloring"
	"github.com/katalvlaran/gcol/rnd"
)

// partialCol is PartialCol: the coloring never has conflicts, a move puts an
// uncolored vertex into a color and uncolors its neighbors there, and the
// score is the number of uncolored vertices.
type partialCol struct {
	p         Params
	optimized bool
}

func (e partialCol) Name() string   { return e.p.DisplayName() }
func (e partialCol) Params() Params { return e.p }

// Run searches from start; see the package doc for the loop structure.
func (e partialCol) Run(ctx context.Context, start *coloring.Coloring, sc *SearchContext) (*Result, error) {
	r, err := newRunner(ctx, e.p, sc)
	if err != nil {
		return nil, err
	}
	return r.twoLevel(start, true, e.inner)
}

// candidates collects the admissible moves of minimum conflict count.
type candidates struct {
	least int
	moves []coloring.Coloration
}

func (cs *candidates) reset(worst int) {
	cs.least = worst
	cs.moves = cs.moves[:0]
}

// offer adds (v, col) at score s unless a strictly better move is known.
func (cs *candidates) offer(v, col, s int) {
	if s > cs.least {
		return
	}
	if s < cs.least {
		cs.least = s
		cs.moves = cs.moves[:0]
	}
	cs.moves = append(cs.moves, coloring.Coloration{Vertex: v, Color: col})
}

func (e partialCol) inner(r *runner, sol *coloring.Coloring, best **coloring.Coloring) (bool, error) {
	n := sol.Graph().Order()
	k := sol.Slots()
	if k == 0 {
		// Nothing can be colored; let the outer loop end.
		return true, nil
	}
	if e.optimized {
		sol.EnableDeltas()
	}

	// tabu[v][c] >= turn forbids putting v back into c.
	tabu := make([][]int64, n)
	for v := range tabu {
		tabu[v] = make([]int64, k)
	}

	bestFound := (*best).NumUncolored()
	var cs candidates
	var turn int64
	for turn = 1; (*best).NumUncolored() > 0; turn++ {
		if r.stopped() {
			return false, nil
		}
		if r.exhausted(turn) {
			return true, nil
		}
		r.res.Turns++

		// 1) Scan.
		cs.reset(n + 1)
		improving := sol.NumUncolored() <= bestFound
		admit := func(v, col, conf int) bool {
			if tabu[v][col] >= turn && !(conf == 0 && improving) {
				return false
			}
			if conf > cs.least {
				return false
			}
			cs.offer(v, col, conf)
			return true
		}
		for _, v := range sol.Uncolored() {
			if e.optimized {
				// Uncolored vertices have delta == conflicts.
				if sol.BestDelta(v) > cs.least {
					continue
				}
				var added bool
				for _, col := range sol.BestColors(v) {
					if admit(v, col, sol.Delta(v, col)) {
						added = true
					}
				}
				if added {
					continue
				}
			}
			var col int
			for col = 0; col < k; col++ {
				admit(v, col, sol.Conflicts(v, col))
			}
		}

		// 2) Select; diversify when every move is tabu.
		var mv coloring.Coloration
		if len(cs.moves) > 0 {
			mv = cs.moves[r.sc.Rng.Intn(len(cs.moves))]
		} else {
			mv = coloring.Coloration{Vertex: rnd.Pick(sol.Uncolored(), r.sc.Rng), Color: r.sc.Rng.Intn(k)}
		}

		// 3) Apply and forbid the evicted neighbors from returning.
		if _, err := sol.GrenadeMove(mv.Vertex, mv.Color); err != nil {
			return false, err
		}
		until := turn + r.tenure(sol.NumUncolored())
		for _, u := range sol.Graph().Neighbors(mv.Vertex) {
			tabu[u][mv.Color] = until
		}
		if err := r.check(sol); err != nil {
			return false, err
		}

		// 4) Track.
		if sol.NumUncolored() < bestFound {
			bestFound = sol.NumUncolored()
			*best = sol.Snapshot()
			if err := r.improved(turn, sol); err != nil {
				return false, err
			}
		}
	}
	return false, nil
}
