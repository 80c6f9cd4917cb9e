package builder

import (
	"fmt"

	"github.com/katalvlaran/gcol/graph"
)

// Constructor describes one block of a generated instance: how many vertices
// it owns and how to emit its edges relative to a base offset.
type Constructor struct {
	method string
	order  int
	err    error // parameter validation failure, reported by BuildGraph
	emit   func(b *graph.Builder, base int, cfg builderConfig) error
}

// Order returns the number of vertices the constructor contributes (0 when
// its parameters were rejected).
func (c Constructor) Order() int { return c.order }

// BuildGraph resolves opts, lays the constructors out as a disjoint union and
// returns the frozen graph.
//
// Errors: the first constructor error, wrapped as "BuildGraph: %w"; callers
// branch with errors.Is against the package sentinels.
// Complexity: O(V + E) plus each constructor's own cost.
func BuildGraph(name string, opts []BuilderOption, cons ...Constructor) (*graph.Graph, error) {
	// 1) Validate every constructor before allocating anything.
	var total int
	for i, c := range cons {
		if c.emit == nil && c.err == nil {
			return nil, fmt.Errorf("BuildGraph: zero constructor at index %d: %w", i, ErrConstructFailed)
		}
		if c.err != nil {
			return nil, fmt.Errorf("BuildGraph: %w", c.err)
		}
		total += c.order
	}

	// 2) Allocate the union and emit each block at its offset.
	cfg := newBuilderConfig(opts...)
	b, err := graph.NewBuilder(name, total)
	if err != nil {
		return nil, fmt.Errorf("BuildGraph: %w", err)
	}
	var base int
	for _, c := range cons {
		if err = c.emit(b, base, cfg); err != nil {
			return nil, fmt.Errorf("BuildGraph: %w", err)
		}
		base += c.order
	}

	return b.Build(), nil
}

// failed returns a Constructor that reports err from BuildGraph.
func failed(method string, err error) Constructor {
	return Constructor{method: method, err: err}
}

// addEdge adds {base+u, base+v}, attaching the method to any failure.
func addEdge(b *graph.Builder, method string, base, u, v int) error {
	if _, err := b.AddEdge(base+u, base+v); err != nil {
		return fmt.Errorf("%s: %w", method, err)
	}
	return nil
}
