package builder

import "github.com/katalvlaran/gcol/graph"

const (
	methodCycle   = "Cycle"
	methodPath    = "Path"
	minCycleNodes = 3
	minPathNodes  = 2
)

// Cycle returns a Constructor for the simple cycle C_n (n ≥ 3).
// Edges are emitted i to (i+1)%n for i ascending.
func Cycle(n int) Constructor {
	if n < minCycleNodes {
		return failed(methodCycle, builderErrorf(methodCycle, ErrTooFewVertices, "n=%d < min=%d", n, minCycleNodes))
	}
	return Constructor{
		method: methodCycle,
		order:  n,
		emit: func(b *graph.Builder, base int, _ builderConfig) error {
			var i int
			for i = 0; i < n; i++ {
				if err := addEdge(b, methodCycle, base, i, (i+1)%n); err != nil {
					return err
				}
			}
			return nil
		},
	}
}

// Path returns a Constructor for the simple path P_n (n ≥ 2).
func Path(n int) Constructor {
	if n < minPathNodes {
		return failed(methodPath, builderErrorf(methodPath, ErrTooFewVertices, "n=%d < min=%d", n, minPathNodes))
	}
	return Constructor{
		method: methodPath,
		order:  n,
		emit: func(b *graph.Builder, base int, _ builderConfig) error {
			var i int
			for i = 0; i+1 < n; i++ {
				if err := addEdge(b, methodPath, base, i, i+1); err != nil {
					return err
				}
			}
			return nil
		},
	}
}
