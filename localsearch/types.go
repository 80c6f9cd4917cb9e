package localsearch

import (
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/katalvlaran/gcol/coloring"
)

// ErrUnknownEngine is returned for a name missing from the registry.
var ErrUnknownEngine = errors.New("localsearch: unknown engine")

// ErrInvalidParams is returned by Params.Validate.
var ErrInvalidParams = errors.New("localsearch: invalid parameters")

// Engine names.
const (
	None                = "none"
	PartialCol          = "partial_col"
	PartialColOptimized = "partial_col_optimized"
	PartialTS           = "partial_ts"
	TabuCol             = "tabu_col"
	TabuColOptimized    = "tabu_col_optimized"
	TabuBucket          = "tabu_bucket"
)

// Params configures one engine.
type Params struct {
	// Name selects the engine; Pseudo is the display alias (defaults to Name).
	Name   string
	Pseudo string

	// Tabu tenure = Alpha·load + uniform[TabuMin, TabuMax]. The load is the
	// uncolored count (partial_col), the conflicting count (tabu_col) or the
	// arc count (tabu_bucket).
	Alpha   float64
	TabuMin int
	TabuMax int

	// MaxTime bounds one Run call (0: only the clock's global deadline).
	// MaxIterations bounds the turns of one inner loop (0: unlimited).
	MaxTime       time.Duration
	MaxIterations int64
}

// DefaultParams returns tabu_col with alpha 0.6 and tenure noise [0, 10].
func DefaultParams() Params {
	return Params{
		Name:    TabuCol,
		Pseudo:  TabuCol,
		Alpha:   0.6,
		TabuMin: 0,
		TabuMax: 10,
	}
}

// Validate checks ranges; it does not look the name up.
func (p Params) Validate() error {
	switch {
	case p.Alpha < 0 || math.IsNaN(p.Alpha) || math.IsInf(p.Alpha, 0):
		return fmt.Errorf("Validate: alpha=%v: %w", p.Alpha, ErrInvalidParams)
	case p.TabuMin < 0 || p.TabuMax < p.TabuMin:
		return fmt.Errorf("Validate: tabu range [%d,%d]: %w", p.TabuMin, p.TabuMax, ErrInvalidParams)
	case p.MaxTime < 0:
		return fmt.Errorf("Validate: max time %v: %w", p.MaxTime, ErrInvalidParams)
	case p.MaxIterations < 0:
		return fmt.Errorf("Validate: max iterations %d: %w", p.MaxIterations, ErrInvalidParams)
	}
	return nil
}

// DisplayName returns Pseudo, or Name when Pseudo is empty.
func (p Params) DisplayName() string {
	if p.Pseudo != "" {
		return p.Pseudo
	}
	return p.Name
}

// Result is the outcome of one Run.
type Result struct {
	// BestLegal is the legal coloring with the fewest colors seen, or nil.
	BestLegal *coloring.Coloring

	// Best is the engine's final best-so-far state, completed: partial
	// engines color their leftover vertices, tabu_bucket decodes its vector.
	// It may have conflicts.
	Best *coloring.Coloring

	Turns    int64         // turns across all inner loops, no-op turns included
	BestTurn int64         // inner-loop turn of the last improvement
	BestTime time.Duration // clock time of the last improvement
	Elapsed  time.Duration // clock time at return
}

// Found reports whether a legal coloring was found.
func (r *Result) Found() bool { return r.BestLegal != nil }
