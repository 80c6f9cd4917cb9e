package localsearch

import (
	"fmt"
	"math/rand"

	"github.com/katalvlaran/gcol/budget"
	"github.com/katalvlaran/gcol/graph"
	"github.com/katalvlaran/gcol/progress"
	"github.com/katalvlaran/gcol/rnd"
	"github.com/katalvlaran/gcol/ubqp"
)

// SearchContext carries what a run needs besides the coloring. One context
// belongs to one trajectory; only Clock and UBQP may be shared.
type SearchContext struct {
	Clock *budget.Clock

	// Target is the color count to reach when UseTarget is set. Otherwise the
	// engines keep removing colors until the budget runs out or one is left.
	Target    int
	UseTarget bool

	Rng      *rand.Rand
	Recorder progress.Recorder

	// UBQP is built on first use by tabu_bucket when nil or foreign.
	UBQP *ubqp.Graph

	// Paranoid runs CheckInvariants after every move.
	Paranoid bool
}

// withDefaults fills nil collaborators: an unlimited clock, the default
// seed and a discarding recorder.
func (sc *SearchContext) withDefaults() *SearchContext {
	out := &SearchContext{}
	if sc != nil {
		*out = *sc
	}
	if out.Clock == nil {
		out.Clock = budget.New(0)
	}
	if out.Rng == nil {
		out.Rng = rnd.FromSeed(rnd.DefaultSeed)
	}
	if out.Recorder == nil {
		out.Recorder = progress.Discard
	}
	return out
}

// ubqpGraph returns the UBQP structure of g, building and caching it in the
// caller's context when needed.
func (sc *SearchContext) ubqpGraph(g *graph.Graph) *ubqp.Graph {
	if sc.UBQP == nil || sc.UBQP.Source() != g {
		sc.UBQP = ubqp.New(g)
	}
	return sc.UBQP
}

// validate rejects a target mode without a usable target.
func (sc *SearchContext) validate() error {
	if sc.UseTarget && sc.Target < 1 {
		return fmt.Errorf("target=%d: %w", sc.Target, ErrInvalidParams)
	}
	return nil
}
