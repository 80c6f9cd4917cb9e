package graph

import "errors"

// ErrNegativeOrder is returned when a builder is asked for a negative vertex count.
var ErrNegativeOrder = errors.New("graph: negative vertex count")

// ErrVertexOutOfRange is returned when an edge endpoint is outside 0..n-1
// (or 1..n in DIMACS input).
var ErrVertexOutOfRange = errors.New("graph: vertex out of range")

// ErrSelfLoop is returned when an edge joins a vertex to itself.
var ErrSelfLoop = errors.New("graph: self-loop not allowed")

// ErrNoProblemLine is returned when DIMACS input has no "p" line before its edges.
var ErrNoProblemLine = errors.New("graph: missing problem line")

// ErrDuplicateProblemLine is returned when DIMACS input has more than one "p" line.
var ErrDuplicateProblemLine = errors.New("graph: duplicate problem line")

// Edge is an undirected edge normalized so that U < V.
type Edge struct {
	U, V int
}
