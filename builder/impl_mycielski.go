package builder

import "github.com/katalvlaran/gcol/graph"

const (
	methodMycielski = "Mycielski"
	minMycielskiK   = 2
	maxMycielskiK   = 16
)

// Mycielski returns a Constructor for the Mycielski graph M_k
// (2 ≤ k ≤ 16): M_2 = K_2, and M_{k+1} is built from M_k with vertices
// v_0..v_{n-1} by adding shadows u_i adjacent to N(v_i) plus a root w adjacent
// to every shadow. M_k is triangle-free with chromatic number k and has
// 3·2^(k-2) - 1 vertices. The DIMACS "mycielN" instances are M_{N+1}.
func Mycielski(k int) Constructor {
	if k < minMycielskiK || k > maxMycielskiK {
		return failed(methodMycielski, builderErrorf(methodMycielski, ErrTooFewVertices,
			"k=%d not in [%d,%d]", k, minMycielskiK, maxMycielskiK))
	}

	// 1) Grow the edge list level by level.
	edges := []graph.Edge{{U: 0, V: 1}}
	n := 2
	var level int
	for level = 2; level < k; level++ {
		next := make([]graph.Edge, 0, 3*len(edges)+n)
		next = append(next, edges...)
		for _, e := range edges {
			next = append(next, graph.Edge{U: e.U, V: n + e.V}, graph.Edge{U: e.V, V: n + e.U})
		}
		var i int
		for i = 0; i < n; i++ {
			next = append(next, graph.Edge{U: n + i, V: 2 * n})
		}
		edges = next
		n = 2*n + 1
	}

	// 2) Emit at the requested offset.
	return Constructor{
		method: methodMycielski,
		order:  n,
		emit: func(b *graph.Builder, base int, _ builderConfig) error {
			for _, e := range edges {
				if err := addEdge(b, methodMycielski, base, e.U, e.V); err != nil {
					return err
				}
			}
			return nil
		},
	}
}
