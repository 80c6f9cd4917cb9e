package localsearch

import (
	"context"
	"fmt"

	"github.com/katalvlaran/gcol/coloring"
	"github.com/katalvlaran/gcol/progress"
	"github.com/katalvlaran/gcol/ubqp"
)

// tabuBucket searches the UBQP vector of the coloring, one arc flip per
// turn, choosing arcs from the lowest delta bucket.
type tabuBucket struct{ p Params }

func (e tabuBucket) Name() string   { return e.p.DisplayName() }
func (e tabuBucket) Params() Params { return e.p }

// Run encodes the completed start coloring, searches the vector and decodes
// the best vector seen. Decoding completes and legalizes it, so the result
// always has a BestLegal.
//
// Per turn, buckets are visited in ascending delta order; inside a bucket
// the scan starts at a random arc and wraps. The first arc that is not tabu,
// or whose flip would beat the best score (aspiration), is flipped and stays
// tabu for Alpha·arcs + uniform[TabuMin, TabuMax] turns. A turn without such
// an arc is a no-op.
//
// Progress records carry the vector's counters and an empty Solution: the
// coloring is only rebuilt at the end.
func (e tabuBucket) Run(ctx context.Context, start *coloring.Coloring, sc *SearchContext) (*Result, error) {
	r, err := newRunner(ctx, e.p, sc)
	if err != nil {
		return nil, err
	}
	g := start.Graph()
	var q *ubqp.Graph
	if sc != nil {
		q = sc.ubqpGraph(g)
	} else {
		q = ubqp.New(g)
	}
	rng := r.sc.Rng

	// 1) Complete copy.
	r.offerLegal(start)
	sol := start.Snapshot()
	if err = sol.ColorUncolored(rng, r.sc.Target, r.sc.UseTarget); err != nil {
		return nil, fmt.Errorf("Run: %w", err)
	}

	// A complete graph has no arcs: nothing to search.
	if q.NumArcs() == 0 {
		if err = sol.ToLegal(rng); err != nil {
			return nil, fmt.Errorf("Run: %w", err)
		}
		r.offerLegal(sol)
		r.res.Best = sol
		return r.finish(), nil
	}

	// 2) Encode.
	x, err := q.Encode(sol)
	if err != nil {
		return nil, fmt.Errorf("Run: %w", err)
	}
	st, err := ubqp.NewState(q, x)
	if err != nil {
		return nil, fmt.Errorf("Run: %w", err)
	}
	best, bestScore := st.Vector(), st.Score()
	baseTenure := int64(float64(q.NumArcs()) * e.p.Alpha)
	tabu := make([]int64, q.NumArcs())

	// 3) Search.
	var turn int64
	for turn = 1; !e.done(r, st, turn); turn++ {
		r.res.Turns++

		a, ok := selectArc(st, tabu, turn, bestScore, r)
		if !ok {
			continue
		}
		st.Flip(a)
		tabu[a] = turn + baseTenure + r.tenure(0)
		if r.sc.Paranoid {
			if err = st.CheckInvariants(); err != nil {
				return nil, fmt.Errorf("Run: %w", err)
			}
		}
		if st.Score() < bestScore {
			best, bestScore = st.Vector(), st.Score()
			rec := progress.Record{
				Turn:    turn,
				Elapsed: r.sc.Clock.Elapsed(),
				Penalty: st.Penalty(),
				Colors:  st.Colors(),
			}
			if err = r.emit(rec); err != nil {
				return nil, fmt.Errorf("Run: %w", err)
			}
		}
	}

	// 4) Decode.
	out, err := q.Decode(best, rng)
	if err != nil {
		return nil, fmt.Errorf("Run: %w", err)
	}
	if err = out.ToLegal(rng); err != nil {
		return nil, fmt.Errorf("Run: %w", err)
	}
	r.offerLegal(out)
	r.res.Best = out
	return r.finish(), nil
}

// done reports the end of the search: budget, turn ceiling, target reached,
// or a penalty-free vector standing for as few colors as the graph allows.
func (e tabuBucket) done(r *runner, st *ubqp.State, turn int64) bool {
	if r.stopped() || r.exhausted(turn) {
		return true
	}
	if st.Penalty() != 0 {
		return false
	}
	if st.Colors() <= floor(st.Graph().Source()) {
		return true
	}
	return r.sc.UseTarget && st.Colors() <= r.sc.Target
}

// selectArc returns the first admissible arc in ascending delta order.
func selectArc(st *ubqp.State, tabu []int64, turn int64, bestScore int, r *runner) (int, bool) {
	chosen := -1
	st.Buckets(func(delta int, arcs []int) bool {
		aspire := st.Score()+delta < bestScore
		off := r.sc.Rng.Intn(len(arcs))
		for i := range arcs {
			a := arcs[(off+i)%len(arcs)]
			if tabu[a] <= turn || aspire {
				chosen = a
				return false
			}
		}
		return true
	})
	return chosen, chosen >= 0
}
