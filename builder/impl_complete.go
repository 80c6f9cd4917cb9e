package builder

import "github.com/katalvlaran/gcol/graph"

const (
	methodComplete          = "Complete"
	methodCompleteBipartite = "CompleteBipartite"
	methodCrown             = "Crown"
	minCompleteNodes        = 1
	minPartition            = 1
	minCrownSide            = 2
)

// Complete returns a Constructor for K_n (n ≥ 1).
func Complete(n int) Constructor {
	if n < minCompleteNodes {
		return failed(methodComplete, builderErrorf(methodComplete, ErrTooFewVertices, "n=%d < min=%d", n, minCompleteNodes))
	}
	return Constructor{
		method: methodComplete,
		order:  n,
		emit: func(b *graph.Builder, base int, _ builderConfig) error {
			var i, j int
			for i = 0; i < n; i++ {
				for j = i + 1; j < n; j++ {
					if err := addEdge(b, methodComplete, base, i, j); err != nil {
						return err
					}
				}
			}
			return nil
		},
	}
}

// CompleteBipartite returns a Constructor for K_{n1,n2}: left side
// 0..n1-1, right side n1..n1+n2-1.
func CompleteBipartite(n1, n2 int) Constructor {
	if n1 < minPartition || n2 < minPartition {
		return failed(methodCompleteBipartite, builderErrorf(methodCompleteBipartite, ErrTooFewVertices,
			"partition sizes must be ≥ %d, got %d and %d", minPartition, n1, n2))
	}
	return Constructor{
		method: methodCompleteBipartite,
		order:  n1 + n2,
		emit: func(b *graph.Builder, base int, _ builderConfig) error {
			var i, j int
			for i = 0; i < n1; i++ {
				for j = 0; j < n2; j++ {
					if err := addEdge(b, methodCompleteBipartite, base, i, n1+j); err != nil {
						return err
					}
				}
			}
			return nil
		},
	}
}

// Crown returns a Constructor for the crown graph S_n^0: K_{n,n} without the
// matching {i, n+i}. Ordering vertices as 0, n, 1, n+1, ... makes first-fit
// greedy use n colors although the graph is bipartite.
func Crown(n int) Constructor {
	if n < minCrownSide {
		return failed(methodCrown, builderErrorf(methodCrown, ErrTooFewVertices, "n=%d < min=%d", n, minCrownSide))
	}
	return Constructor{
		method: methodCrown,
		order:  2 * n,
		emit: func(b *graph.Builder, base int, _ builderConfig) error {
			var i, j int
			for i = 0; i < n; i++ {
				for j = 0; j < n; j++ {
					if i == j {
						continue
					}
					if err := addEdge(b, methodCrown, base, i, n+j); err != nil {
						return err
					}
				}
			}
			return nil
		},
	}
}
