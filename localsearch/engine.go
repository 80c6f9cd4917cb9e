package localsearch

import (
	"context"
	"fmt"
	"slices"

	"github.com/katalvlaran/gcol/coloring"
)

// Engine improves a coloring. Run never mutates start.
type Engine interface {
	Name() string
	Params() Params
	Run(ctx context.Context, start *coloring.Coloring, sc *SearchContext) (*Result, error)
}

type factory func(p Params) Engine

var registry = map[string]factory{
	None:                func(p Params) Engine { return noneEngine{p: p} },
	PartialCol:          func(p Params) Engine { return partialCol{p: p} },
	PartialColOptimized: func(p Params) Engine { return partialCol{p: p, optimized: true} },
	PartialTS:           func(p Params) Engine { return partialTS{p: p} },
	TabuCol:             func(p Params) Engine { return tabuCol{p: p} },
	TabuColOptimized:    func(p Params) Engine { return tabuCol{p: p, optimized: true} },
	TabuBucket:          func(p Params) Engine { return tabuBucket{p: p} },
}

// New validates p and returns the engine named p.Name.
//
// Errors: ErrUnknownEngine, ErrInvalidParams.
func New(p Params) (Engine, error) {
	f, ok := registry[p.Name]
	if !ok {
		return nil, fmt.Errorf("New: %q: %w", p.Name, ErrUnknownEngine)
	}
	if err := p.Validate(); err != nil {
		return nil, fmt.Errorf("New: %w", err)
	}
	if p.Pseudo == "" {
		p.Pseudo = p.Name
	}
	return f(p), nil
}

// Names returns the registered engine names, sorted.
func Names() []string {
	out := make([]string, 0, len(registry))
	for name := range registry {
		out = append(out, name)
	}
	slices.Sort(out)
	return out
}

// Partial reports whether the named engine keeps colorings free of conflicts
// (and therefore may leave vertices uncolored).
func Partial(name string) bool {
	switch name {
	case PartialCol, PartialColOptimized, PartialTS:
		return true
	}
	return false
}
