package ubqp

import "errors"

// ErrLengthMismatch is returned when a vector does not have one bit per arc.
var ErrLengthMismatch = errors.New("ubqp: vector length mismatch")

// ErrGraphMismatch is returned when a coloring belongs to another graph.
var ErrGraphMismatch = errors.New("ubqp: coloring graph mismatch")

// ErrInvariant is the root of every State.CheckInvariants failure.
var ErrInvariant = errors.New("ubqp: invariant violated")

// Arc is an oriented complement edge Tail→Head.
type Arc struct {
	Tail int
	Head int
}
