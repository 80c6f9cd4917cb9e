package localsearch

import (
	"context"
	"fmt"
	"time"

	"github.com/katalvlaran/gcol/coloring"
	"github.com/katalvlaran/gcol/graph"
	"github.com/katalvlaran/gcol/progress"
	"github.com/katalvlaran/gcol/rnd"
)

// runner holds the per-call state shared by the inner loops of one Run.
type runner struct {
	ctx      context.Context
	p        Params
	sc       *SearchContext
	deadline time.Time
	res      *Result
}

// newRunner fills the context defaults and fixes the call deadline.
//
// Errors: ErrInvalidParams for a target mode with Target < 1.
func newRunner(ctx context.Context, p Params, sc *SearchContext) (*runner, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	sc = sc.withDefaults()
	if err := sc.validate(); err != nil {
		return nil, fmt.Errorf("Run: %w", err)
	}
	return &runner{
		ctx:      ctx,
		p:        p,
		sc:       sc,
		deadline: sc.Clock.SubDeadline(p.MaxTime),
		res:      &Result{},
	}, nil
}

// stopped reports cancellation, a stopped clock or an expired deadline.
func (r *runner) stopped() bool {
	return r.ctx.Err() != nil || r.sc.Clock.SubDeadlineReached(r.deadline)
}

// exhausted reports that turn is past the inner-loop ceiling.
func (r *runner) exhausted(turn int64) bool {
	return r.p.MaxIterations > 0 && turn > r.p.MaxIterations
}

// tenure draws Alpha·load + uniform[TabuMin, TabuMax].
func (r *runner) tenure(load int) int64 {
	return int64(rnd.Between(r.p.TabuMin, r.p.TabuMax, r.sc.Rng)) + int64(r.p.Alpha*float64(load))
}

// improved stamps the result and emits one progress record.
func (r *runner) improved(turn int64, c *coloring.Coloring) error {
	return r.emit(progress.FromColoring(turn, r.sc.Clock.Elapsed(), c))
}

func (r *runner) emit(rec progress.Record) error {
	r.res.BestTurn = rec.Turn
	r.res.BestTime = rec.Elapsed
	if err := r.sc.Recorder.Record(rec); err != nil {
		return fmt.Errorf("record turn %d: %w", rec.Turn, err)
	}
	return nil
}

// offerLegal keeps c as BestLegal when it is legal and uses no more colors
// than the current one.
func (r *runner) offerLegal(c *coloring.Coloring) {
	if !c.IsLegal() {
		return
	}
	if r.res.BestLegal == nil || c.NumColors() <= r.res.BestLegal.NumColors() {
		r.res.BestLegal = c.Snapshot()
	}
}

// check runs CheckInvariants in paranoid mode.
func (r *runner) check(c *coloring.Coloring) error {
	if !r.sc.Paranoid {
		return nil
	}
	return c.CheckInvariants()
}

func (r *runner) finish() *Result {
	r.res.Elapsed = r.sc.Clock.Elapsed()
	return r.res
}

// innerLoop runs one inner loop on sol and keeps *best current. It returns
// true when the turn ceiling ended the loop.
type innerLoop func(r *runner, sol *coloring.Coloring, best **coloring.Coloring) (bool, error)

// twoLevel is the outer loop shared by the coloring engines.
//
// Contract:
//   - partial engines start from a partial-legal copy of start (conflicting
//     vertices uncolored), tabu engines from a complete copy;
//   - in target mode the copy is first cut down to Target colors;
//   - in minimizing mode every legal coloring is cut by one color and the
//     inner loop restarts on it, with fresh tabu memory;
//   - Result.BestLegal only ever shrinks.
func (r *runner) twoLevel(start *coloring.Coloring, partial bool, inner innerLoop) (*Result, error) {
	sc := r.sc

	// 1) Legal input already counts.
	r.offerLegal(start)

	// 2) Bring the copy into the engine's domain.
	sol := start.Snapshot()
	if partial {
		if sol.NumColors() == 0 && sol.NumUncolored() > 0 {
			if err := sol.ColorUncolored(sc.Rng, sc.Target, sc.UseTarget); err != nil {
				return nil, fmt.Errorf("Run: %w", err)
			}
		}
		sol.RemovePenalty()
	} else if err := sol.ColorUncolored(sc.Rng, sc.Target, sc.UseTarget); err != nil {
		return nil, fmt.Errorf("Run: %w", err)
	}
	if sc.UseTarget && sol.NumColors() > sc.Target {
		var err error
		if sol, err = r.reduce(sol, sc.Target, partial); err != nil {
			return nil, fmt.Errorf("Run: %w", err)
		}
	}
	best := sol.Snapshot()
	if err := r.improved(0, best); err != nil {
		return nil, fmt.Errorf("Run: %w", err)
	}

	// 3) Outer loop.
	for !r.stopped() && !r.targetReached(best) {
		if sol.IsLegal() && !sc.UseTarget {
			if sol.NumColors() <= floor(sol.Graph()) {
				break
			}
			var err error
			if sol, err = r.reduce(sol, sol.NumColors()-1, partial); err != nil {
				return nil, fmt.Errorf("Run: %w", err)
			}
			best = sol.Snapshot()
		}

		exhausted, err := inner(r, sol, &best)
		if err != nil {
			return nil, fmt.Errorf("Run: %w", err)
		}
		if best.IsLegal() {
			sol = best.Snapshot()
			r.offerLegal(sol)
		}
		if exhausted {
			break
		}
	}

	// 4) Partial engines hand back a complete coloring.
	if partial && best.NumUncolored() > 0 {
		best = best.Snapshot()
		if err := best.ColorUncolored(sc.Rng, sc.Target, sc.UseTarget); err != nil {
			return nil, fmt.Errorf("Run: %w", err)
		}
		r.offerLegal(best)
	}
	r.res.Best = best
	return r.finish(), nil
}

// targetReached reports a legal best with Target colors or fewer (target
// mode) or at the floor of the graph (both modes).
func (r *runner) targetReached(best *coloring.Coloring) bool {
	if !best.IsLegal() {
		return false
	}
	if best.NumColors() <= floor(best.Graph()) {
		return true
	}
	return r.sc.UseTarget && best.NumColors() <= r.sc.Target
}

// floor is the fewest colors a legal coloring of g can use once g has a
// vertex: two with an edge, one without.
func floor(g *graph.Graph) int {
	if g.Size() > 0 {
		return 2
	}
	return 1
}

func (r *runner) reduce(c *coloring.Coloring, k int, partial bool) (*coloring.Coloring, error) {
	if partial {
		return c.ReduceKeepLegal(k)
	}
	return c.ReduceAllowConflicts(k, r.sc.Rng)
}
