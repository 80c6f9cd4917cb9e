package localsearch

import (
	"context"

	"github.com/katalvlaran/gcol/coloring"
	"github.com/katalvlaran/gcol/rnd"
)

// tabuCol is TabuCol: every vertex stays colored, a move recolors one
// conflicting vertex, and the score is the penalty.
type tabuCol struct {
	p         Params
	optimized bool
}

func (e tabuCol) Name() string   { return e.p.DisplayName() }
func (e tabuCol) Params() Params { return e.p }

// Run searches from start; see the package doc for the loop structure.
func (e tabuCol) Run(ctx context.Context, start *coloring.Coloring, sc *SearchContext) (*Result, error) {
	r, err := newRunner(ctx, e.p, sc)
	if err != nil {
		return nil, err
	}
	return r.twoLevel(start, false, e.inner)
}

func (e tabuCol) inner(r *runner, sol *coloring.Coloring, best **coloring.Coloring) (bool, error) {
	n := sol.Graph().Order()
	k := sol.Slots()
	if e.optimized {
		sol.EnableDeltas()
	}

	// tabu[v][c] >= turn forbids moving v back to c.
	tabu := make([][]int64, n)
	for v := range tabu {
		tabu[v] = make([]int64, k)
	}

	bestFound := (*best).Penalty()
	var cs candidates
	var turn int64
	for turn = 1; (*best).Penalty() > 0; turn++ {
		if r.stopped() {
			return false, nil
		}
		if r.exhausted(turn) {
			return true, nil
		}
		r.res.Turns++

		// 1) Scan conflicting vertices.
		cs.reset(n + 1)
		pen := sol.Penalty()
		admit := func(v, col, d int) bool {
			if tabu[v][col] >= turn && pen+d >= bestFound {
				return false
			}
			if d > cs.least {
				return false
			}
			cs.offer(v, col, d)
			return true
		}
		scan := func(v int) {
			own := sol.Color(v)
			if e.optimized {
				var added bool
				for _, col := range sol.BestColors(v) {
					if col != own && admit(v, col, sol.Delta(v, col)) {
						added = true
					}
				}
				if added {
					return
				}
			}
			var col int
			for col = 0; col < k; col++ {
				if col != own {
					admit(v, col, sol.DeltaOf(v, col))
				}
			}
		}
		if e.optimized {
			for _, v := range sol.Conflicting() {
				scan(v)
			}
		} else {
			var v int
			for v = 0; v < n; v++ {
				if sol.OwnConflicts(v) > 0 {
					scan(v)
				}
			}
		}

		// 2) Select; diversify when every move is tabu.
		var mv coloring.Coloration
		switch {
		case len(cs.moves) > 0:
			mv = cs.moves[r.sc.Rng.Intn(len(cs.moves))]
		case k > 1:
			v := rnd.Pick(sol.Conflicting(), r.sc.Rng)
			col := r.sc.Rng.Intn(k - 1)
			if col >= sol.Color(v) {
				col++
			}
			mv = coloring.Coloration{Vertex: v, Color: col}
		default:
			continue
		}

		// 3) Apply and forbid the vacated color.
		old, err := sol.Recolor(mv.Vertex, mv.Color)
		if err != nil {
			return false, err
		}
		tabu[mv.Vertex][old] = turn + r.tenure(sol.NumConflicting())
		if err = r.check(sol); err != nil {
			return false, err
		}

		// 4) Track.
		if sol.Penalty() < bestFound {
			bestFound = sol.Penalty()
			*best = sol.Snapshot()
			if err = r.improved(turn, sol); err != nil {
				return false, err
			}
		}
	}
	return false, nil
}
