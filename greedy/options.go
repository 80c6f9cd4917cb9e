package greedy

import (
	"fmt"
	"math/rand"

	"github.com/katalvlaran/gcol/coloring"
	"github.com/katalvlaran/gcol/rnd"
)

// Option customizes a Color call.
type Option func(*options)

type options struct {
	rng *rand.Rand
}

// WithRand sets the random source. Panics on nil.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("greedy: WithRand(nil)")
	}
	return func(o *options) { o.rng = r }
}

// WithSeed sets a fresh deterministic random source.
func WithSeed(seed int64) Option {
	return func(o *options) { o.rng = rnd.FromSeed(seed) }
}

// New returns the registered strategy called name.
//
// Errors: ErrUnknownStrategy.
func New(name string) (Strategy, error) {
	s, ok := registry[name]
	if !ok {
		return nil, fmt.Errorf("New: %q: %w", name, ErrUnknownStrategy)
	}
	return s, nil
}

// Color completes c with the strategy called name. Without WithRand or
// WithSeed the default seed is used.
func Color(c *coloring.Coloring, name string, opts ...Option) error {
	s, err := New(name)
	if err != nil {
		return fmt.Errorf("Color: %w", err)
	}
	o := options{}
	for _, opt := range opts {
		opt(&o)
	}
	if o.rng == nil {
		o.rng = rnd.FromSeed(rnd.DefaultSeed)
	}
	if err = s.Color(c, o.rng); err != nil {
		return fmt.Errorf("Color: %s: %w", name, err)
	}
	return nil
}
