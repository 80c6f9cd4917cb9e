package ubqp

import (
	"slices"

	"github.com/katalvlaran/gcol/graph"
)

// Graph is the linked-arc structure of the oriented complement of a graph.
// It is immutable and safe to share between trajectories.
type Graph struct {
	source *graph.Graph
	arcs   []Arc
	links  [][]int // sorted
	nLinks int
}

// New builds the UBQP structure of g.
//
// Complexity: O(V² + Σ_v (in(v)+out(v))²) time, O(V² + links) memory.
func New(g *graph.Graph) *Graph {
	n := g.Order()

	// 1) Complement degrees.
	deg := make([]int, n)
	var v int
	for v = 0; v < n; v++ {
		deg[v] = n - 1 - g.Degree(v)
	}

	// 2) Orient every complement edge; index[tail*n+head] = arc id.
	q := &Graph{source: g}
	index := make([]int, n*n)
	ins := make([][]int, n)  // tails of arcs entering v
	outs := make([][]int, n) // heads of arcs leaving v
	var u, w int
	for u = 0; u < n; u++ {
		for w = u + 1; w < n; w++ {
			if g.Adjacent(u, w) {
				continue
			}
			tail, head := w, u
			if deg[u] > deg[w] {
				tail, head = u, w
			}
			index[tail*n+head] = len(q.arcs)
			q.arcs = append(q.arcs, Arc{Tail: tail, Head: head})
			ins[head] = append(ins[head], tail)
			outs[tail] = append(outs[tail], head)
		}
	}
	for v = 0; v < n; v++ {
		slices.Sort(ins[v])
		slices.Sort(outs[v])
	}

	// 3) Links around every vertex.
	q.links = make([][]int, len(q.arcs))
	link := func(a, b int) {
		q.links[a] = append(q.links[a], b)
		q.links[b] = append(q.links[b], a)
		q.nLinks++
	}
	var i, j int
	for v = 0; v < n; v++ {
		out, in := outs[v], ins[v]
		// shared tail v
		for i = 0; i < len(out); i++ {
			for j = i + 1; j < len(out); j++ {
				link(index[v*n+out[i]], index[v*n+out[j]])
			}
		}
		// shared head v, kept only when the tails are adjacent in g
		for i = 0; i < len(in); i++ {
			for j = i + 1; j < len(in); j++ {
				if g.Adjacent(in[i], in[j]) {
					link(index[in[i]*n+v], index[in[j]*n+v])
				}
			}
		}
		// chains in[i]→v→out[j]
		for _, x := range in {
			for _, y := range out {
				link(index[x*n+v], index[v*n+y])
			}
		}
	}
	for i = range q.links {
		slices.Sort(q.links[i])
	}
	return q
}

// Source returns the colored graph.
func (q *Graph) Source() *graph.Graph { return q.source }

// NumArcs returns the number of arcs (complement edges).
func (q *Graph) NumArcs() int { return len(q.arcs) }

// NumLinks returns the number of linked arc pairs.
func (q *Graph) NumLinks() int { return q.nLinks }

// Arc returns arc a.
func (q *Graph) Arc(a int) Arc { return q.arcs[a] }

// Links returns the arcs linked to a, ascending. The slice must not be modified.
func (q *Graph) Links(a int) []int { return q.links[a] }

// Linked reports whether arcs a and b are linked.
func (q *Graph) Linked(a, b int) bool {
	_, found := slices.BinarySearch(q.links[a], b)
	return found
}

// Q returns the cost matrix entry for arcs a and b.
func (q *Graph) Q(a, b int) int {
	switch {
	case a == b:
		return -1
	case q.Linked(a, b):
		return 2
	default:
		return 0
	}
}
