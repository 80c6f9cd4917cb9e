package greedy

import (
	"errors"
	"math/rand"
	"slices"

	"github.com/katalvlaran/gcol/coloring"
)

// ErrUnknownStrategy is returned for a name missing from the registry.
var ErrUnknownStrategy = errors.New("greedy: unknown strategy")

// Strategy completes c. rng is only consulted by randomized strategies.
type Strategy interface {
	Name() string
	Color(c *coloring.Coloring, rng *rand.Rand) error
}

// Registry names.
const (
	Random         = "random"
	Constrained    = "constrained"
	Deterministic  = "deterministic"
	Deterministic2 = "deterministic_2"
	Adaptive       = "adaptive"
	DSatur         = "dsatur"
)

var registry = map[string]Strategy{
	Random:         randomStrategy{},
	Constrained:    constrainedStrategy{},
	Deterministic:  deterministicStrategy{},
	Deterministic2: byDegree{name: Deterministic2},
	Adaptive:       byDegree{name: Adaptive, adaptive: true},
	DSatur:         dsaturStrategy{},
}

// Names returns the registered strategy names, sorted.
func Names() []string {
	out := make([]string, 0, len(registry))
	for name := range registry {
		out = append(out, name)
	}
	slices.Sort(out)
	return out
}
