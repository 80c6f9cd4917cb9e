package builder

import "github.com/katalvlaran/gcol/graph"

const (
	methodStar    = "Star"
	methodWheel   = "Wheel"
	minStarNodes  = 2
	minWheelNodes = 4
)

// Star returns a Constructor for K_{1,n-1}: vertex 0 is the center (n ≥ 2).
func Star(n int) Constructor {
	if n < minStarNodes {
		return failed(methodStar, builderErrorf(methodStar, ErrTooFewVertices, "n=%d < min=%d", n, minStarNodes))
	}
	return Constructor{
		method: methodStar,
		order:  n,
		emit: func(b *graph.Builder, base int, _ builderConfig) error {
			var i int
			for i = 1; i < n; i++ {
				if err := addEdge(b, methodStar, base, 0, i); err != nil {
					return err
				}
			}
			return nil
		},
	}
}

// Wheel returns a Constructor for W_n: a rim cycle on vertices 0..n-2 and a
// hub n-1 joined to every rim vertex (n ≥ 4).
func Wheel(n int) Constructor {
	if n < minWheelNodes {
		return failed(methodWheel, builderErrorf(methodWheel, ErrTooFewVertices, "n=%d < min=%d", n, minWheelNodes))
	}
	return Constructor{
		method: methodWheel,
		order:  n,
		emit: func(b *graph.Builder, base int, _ builderConfig) error {
			rim := n - 1
			var i int
			for i = 0; i < rim; i++ {
				if err := addEdge(b, methodWheel, base, i, (i+1)%rim); err != nil {
					return err
				}
				if err := addEdge(b, methodWheel, base, i, rim); err != nil {
					return err
				}
			}
			return nil
		},
	}
}
