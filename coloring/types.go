package coloring

import "errors"

const (
	// Uncolored marks a vertex without a color.
	Uncolored = -1

	// NewColor asks Assign to allocate a fresh color slot.
	NewColor = -1
)

// HeaderCSV names the fields produced by Format.
const HeaderCSV = "nb_uncolored,penalty,nb_colors,solution"

// ErrVertexOutOfRange is returned for vertex ids outside 0..V-1.
var ErrVertexOutOfRange = errors.New("coloring: vertex out of range")

// ErrColorOutOfRange is returned for color ids outside the allocated slots.
var ErrColorOutOfRange = errors.New("coloring: color out of range")

// ErrVertexColored is returned when an operation needs an uncolored vertex.
var ErrVertexColored = errors.New("coloring: vertex already colored")

// ErrVertexUncolored is returned when an operation needs a colored vertex.
var ErrVertexUncolored = errors.New("coloring: vertex is uncolored")

// ErrLengthMismatch is returned when a color vector does not cover every vertex.
var ErrLengthMismatch = errors.New("coloring: color vector length mismatch")

// ErrIndexDisabled is returned when an operation needs a derived index that
// was not enabled.
var ErrIndexDisabled = errors.New("coloring: derived index not enabled")

// ErrInvalidTarget is returned by reductions asked for fewer than one color.
var ErrInvalidTarget = errors.New("coloring: invalid target color count")

// ErrInvariant is the root of every CheckInvariants failure.
var ErrInvariant = errors.New("coloring: invariant violated")

// Coloration is a move descriptor: put Vertex into Color.
type Coloration struct {
	Vertex int
	Color  int
}
