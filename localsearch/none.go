package localsearch

import (
	"context"

	"github.com/katalvlaran/gcol/coloring"
)

// noneEngine leaves the coloring as the initializer built it.
type noneEngine struct{ p Params }

func (e noneEngine) Name() string   { return e.p.DisplayName() }
func (e noneEngine) Params() Params { return e.p }

// Run returns a snapshot of start; it is also BestLegal when legal.
func (e noneEngine) Run(ctx context.Context, start *coloring.Coloring, sc *SearchContext) (*Result, error) {
	r, err := newRunner(ctx, e.p, sc)
	if err != nil {
		return nil, err
	}
	r.res.Best = start.Snapshot()
	r.offerLegal(r.res.Best)
	if err = r.improved(0, r.res.Best); err != nil {
		return nil, err
	}
	return r.finish(), nil
}
