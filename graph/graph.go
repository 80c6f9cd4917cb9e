package graph

import (
	"fmt"
	"slices"

	"github.com/soniakeys/bits"
)

// Graph is an immutable simple undirected graph over vertices 0..Order()-1.
type Graph struct {
	name      string
	order     int
	size      int
	neighbors [][]int
	adjacency []bits.Bits
	degrees   []int
}

// Builder accumulates edges for a Graph. It is not safe for concurrent use.
type Builder struct {
	name      string
	order     int
	size      int
	neighbors [][]int
	adjacency []bits.Bits
}

// NewBuilder returns a Builder for a graph named name with n isolated vertices.
//
// Errors: ErrNegativeOrder if n < 0.
func NewBuilder(name string, n int) (*Builder, error) {
	if n < 0 {
		return nil, fmt.Errorf("NewBuilder: n=%d: %w", n, ErrNegativeOrder)
	}
	b := &Builder{
		name:      name,
		order:     n,
		neighbors: make([][]int, n),
		adjacency: make([]bits.Bits, n),
	}
	var v int
	for v = 0; v < n; v++ {
		b.adjacency[v] = bits.New(n)
	}
	return b, nil
}

// Order returns the number of vertices the builder was created with.
func (b *Builder) Order() int { return b.order }

// AddEdge inserts the undirected edge {u,v} (0-indexed) and reports whether it
// was new. Duplicate edges are ignored.
//
// Errors: ErrVertexOutOfRange, ErrSelfLoop.
// Complexity: O(1) amortized.
func (b *Builder) AddEdge(u, v int) (bool, error) {
	if u < 0 || u >= b.order || v < 0 || v >= b.order {
		return false, fmt.Errorf("AddEdge(%d,%d): order=%d: %w", u, v, b.order, ErrVertexOutOfRange)
	}
	if u == v {
		return false, fmt.Errorf("AddEdge(%d,%d): %w", u, v, ErrSelfLoop)
	}
	if b.adjacency[u].Bit(v) == 1 {
		return false, nil
	}
	b.adjacency[u].SetBit(v, 1)
	b.adjacency[v].SetBit(u, 1)
	b.neighbors[u] = append(b.neighbors[u], v)
	b.neighbors[v] = append(b.neighbors[v], u)
	b.size++
	return true, nil
}

// Build freezes the builder into a Graph. The builder must not be used afterwards.
//
// Complexity: O(V + E log Δ) for sorting neighbor lists.
func (b *Builder) Build() *Graph {
	g := &Graph{
		name:      b.name,
		order:     b.order,
		size:      b.size,
		neighbors: b.neighbors,
		adjacency: b.adjacency,
		degrees:   make([]int, b.order),
	}
	var v int
	for v = 0; v < g.order; v++ {
		slices.Sort(g.neighbors[v])
		g.degrees[v] = len(g.neighbors[v])
	}
	b.neighbors, b.adjacency = nil, nil
	return g
}

// New builds a Graph from a 0-indexed edge list. Duplicate edges collapse.
func New(name string, n int, edges []Edge) (*Graph, error) {
	b, err := NewBuilder(name, n)
	if err != nil {
		return nil, err
	}
	for _, e := range edges {
		if _, err = b.AddEdge(e.U, e.V); err != nil {
			return nil, err
		}
	}
	return b.Build(), nil
}

// MustNew is New for fixtures whose edge lists are known to be valid.
// It panics on error.
func MustNew(name string, n int, edges []Edge) *Graph {
	g, err := New(name, n, edges)
	if err != nil {
		panic(err)
	}
	return g
}

// Name returns the instance name (file stem for loaded graphs).
func (g *Graph) Name() string { return g.name }

// Order returns the number of vertices V.
func (g *Graph) Order() int { return g.order }

// Size returns the number of edges.
func (g *Graph) Size() int { return g.size }

// Neighbors returns the ascending neighbor list of v. The slice is shared and
// must not be modified.
func (g *Graph) Neighbors(v int) []int { return g.neighbors[v] }

// Adjacent reports whether u and v share an edge. O(1).
func (g *Graph) Adjacent(u, v int) bool { return g.adjacency[u].Bit(v) == 1 }

// Degree returns the number of neighbors of v.
func (g *Graph) Degree(v int) int { return g.degrees[v] }

// Degrees returns a copy of the degree vector.
func (g *Graph) Degrees() []int { return slices.Clone(g.degrees) }

// MaxDegree returns Δ(G), or 0 for an empty graph.
func (g *Graph) MaxDegree() int {
	var best int
	for _, d := range g.degrees {
		best = max(best, d)
	}
	return best
}

// Density returns 2E / (V(V-1)), or 0 when V < 2.
func (g *Graph) Density() float64 {
	if g.order < 2 {
		return 0
	}
	return 2 * float64(g.size) / (float64(g.order) * float64(g.order-1))
}

// Edges returns every edge once, ordered by (U, V) ascending.
//
// Complexity: O(V + E).
func (g *Graph) Edges() []Edge {
	out := make([]Edge, 0, g.size)
	var u int
	for u = 0; u < g.order; u++ {
		for _, v := range g.neighbors[u] {
			if u < v {
				out = append(out, Edge{U: u, V: v})
			}
		}
	}
	return out
}

// String renders a short summary such as "myciel3(V=11,E=20)".
func (g *Graph) String() string {
	return fmt.Sprintf("%s(V=%d,E=%d)", g.name, g.order, g.size)
}
