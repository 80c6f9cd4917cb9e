package builder

import "github.com/katalvlaran/gcol/graph"

const (
	methodRandomSparse      = "RandomSparse"
	minRandomSparseVertices = 1
	probMin                 = 0.0
	probMax                 = 1.0
)

// RandomSparse returns a Constructor that samples G(n,p): each unordered pair
// {i,j}, i<j, is included independently with probability p.
//
// Contract:
//   - n ≥ 1 (else ErrTooFewVertices), 0 ≤ p ≤ 1 (else ErrInvalidProbability).
//   - An RNG is required when 0 < p < 1 (else ErrNeedRandSource).
//   - Trials run in (i asc, j asc) order, so a fixed seed fixes the graph.
func RandomSparse(n int, p float64) Constructor {
	if n < minRandomSparseVertices {
		return failed(methodRandomSparse, builderErrorf(methodRandomSparse, ErrTooFewVertices,
			"n=%d < min=%d", n, minRandomSparseVertices))
	}
	if p < probMin || p > probMax {
		return failed(methodRandomSparse, builderErrorf(methodRandomSparse, ErrInvalidProbability,
			"p=%.6f not in [%.1f,%.1f]", p, probMin, probMax))
	}
	return Constructor{
		method: methodRandomSparse,
		order:  n,
		emit: func(b *graph.Builder, base int, cfg builderConfig) error {
			rng := cfg.rng
			if rng == nil && p > probMin && p < probMax {
				return builderErrorf(methodRandomSparse, ErrNeedRandSource, "p=%.6f", p)
			}

			var i, j int
			for i = 0; i < n; i++ {
				for j = i + 1; j < n; j++ {
					if p == probMin {
						continue
					}
					if p < probMax && rng.Float64() >= p {
						continue
					}
					if err := addEdge(b, methodRandomSparse, base, i, j); err != nil {
						return err
					}
				}
			}
			return nil
		},
	}
}
