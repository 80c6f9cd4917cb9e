package ubqp_test

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/soniakeys/bits"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gcol/builder"
	"github.com/katalvlaran/gcol/coloring"
	"github.com/katalvlaran/gcol/graph"
	"github.com/katalvlaran/gcol/ubqp"
)

// threeIsolated has no edges: its complement is a triangle.
func threeIsolated() *graph.Graph { return graph.MustNew("e3", 3, nil) }

func TestNew_EmptyGraphOrientation(t *testing.T) {
	q := ubqp.New(threeIsolated())
	require.Equal(t, 3, q.NumArcs())

	// All complement degrees tie, so the larger id is the tail.
	assert.Equal(t, ubqp.Arc{Tail: 1, Head: 0}, q.Arc(0))
	assert.Equal(t, ubqp.Arc{Tail: 2, Head: 0}, q.Arc(1))
	assert.Equal(t, ubqp.Arc{Tail: 2, Head: 1}, q.Arc(2))

	// 2→0 and 2→1 share a tail; 2→1, 1→0 chain; 1→0 and 2→0 share a head
	// whose tails are not adjacent in the graph.
	assert.Equal(t, []int{2}, q.Links(0))
	assert.Equal(t, []int{2}, q.Links(1))
	assert.Equal(t, []int{0, 1}, q.Links(2))
	assert.Equal(t, 2, q.NumLinks())
	assert.True(t, q.Linked(2, 0))
	assert.False(t, q.Linked(0, 1))

	assert.Equal(t, -1, q.Q(1, 1))
	assert.Equal(t, 2, q.Q(0, 2))
	assert.Equal(t, 0, q.Q(0, 1))
	assert.Same(t, q.Source(), q.Source())
}

func TestNew_HigherComplementDegreeIsTail(t *testing.T) {
	// Path 0-1-2-3: complement edges 0-2, 0-3, 1-3; complement degrees 2,1,1,2.
	g, err := builder.BuildGraph("p4", nil, builder.Path(4))
	require.NoError(t, err)
	q := ubqp.New(g)
	require.Equal(t, 3, q.NumArcs())
	assert.Equal(t, ubqp.Arc{Tail: 0, Head: 2}, q.Arc(0))
	assert.Equal(t, ubqp.Arc{Tail: 3, Head: 0}, q.Arc(1), "tie: larger id is the tail")
	assert.Equal(t, ubqp.Arc{Tail: 3, Head: 1}, q.Arc(2))

	// 3→0, 0→2 chain; 3→0, 3→1 shared tail.
	assert.Equal(t, []int{1}, q.Links(0))
	assert.Equal(t, []int{0, 2}, q.Links(1))
	assert.Equal(t, []int{1}, q.Links(2))
}

func TestNew_CompleteGraphHasNoArcs(t *testing.T) {
	g, err := builder.BuildGraph("k4", nil, builder.Complete(4))
	require.NoError(t, err)
	q := ubqp.New(g)
	assert.Equal(t, 0, q.NumArcs())

	c, err := q.Decode(bits.New(0), rand.New(rand.NewSource(1)))
	require.NoError(t, err)
	assert.True(t, c.IsLegal())
	assert.Equal(t, 4, c.NumColors())
}

func TestEncodeScoreDecode(t *testing.T) {
	g := threeIsolated()
	q := ubqp.New(g)
	c, err := coloring.FromColors(g, []int{0, 0, 0})
	require.NoError(t, err)

	x, err := q.Encode(c)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1}, x.Slice(), "arcs into vertex 0, the smallest of its color")
	assert.Equal(t, -2, q.Score(x))
	assert.Equal(t, 0, q.Penalty(x))

	back, err := q.Decode(x, rand.New(rand.NewSource(1)))
	require.NoError(t, err)
	assert.Equal(t, 1, back.NumColors())
	assert.True(t, back.IsLegal())
	require.NoError(t, back.CheckInvariants())
}

func TestEncode_Errors(t *testing.T) {
	q := ubqp.New(threeIsolated())
	other := coloring.New(threeIsolated())
	_, err := q.Encode(other)
	assert.True(t, errors.Is(err, ubqp.ErrGraphMismatch))

	_, err = q.Decode(bits.New(2), rand.New(rand.NewSource(1)))
	assert.True(t, errors.Is(err, ubqp.ErrLengthMismatch))
	_, err = ubqp.NewState(q, bits.New(5))
	assert.True(t, errors.Is(err, ubqp.ErrLengthMismatch))
}

func TestDecode_AlwaysComplete(t *testing.T) {
	g, err := builder.BuildGraph("rnd", []builder.BuilderOption{builder.WithSeed(3)}, builder.RandomSparse(25, 0.4))
	require.NoError(t, err)
	q := ubqp.New(g)
	rng := rand.New(rand.NewSource(3))
	x := bits.New(q.NumArcs())
	var trial, a int
	for trial = 0; trial < 20; trial++ {
		for a = 0; a < q.NumArcs(); a++ {
			x.SetBit(a, rng.Intn(2))
		}
		c, err := q.Decode(x, rng)
		require.NoError(t, err)
		assert.Equal(t, 0, c.NumUncolored())
		require.NoError(t, c.CheckInvariants())
		require.NoError(t, c.ToLegal(rng))
		assert.True(t, c.IsLegal())
	}
}

func TestState_FlipKeepsInvariants(t *testing.T) {
	g, err := builder.BuildGraph("rnd", []builder.BuilderOption{builder.WithSeed(9)}, builder.RandomSparse(20, 0.5))
	require.NoError(t, err)
	q := ubqp.New(g)
	require.Positive(t, q.NumArcs())

	rng := rand.New(rand.NewSource(9))
	c := coloring.New(g)
	require.NoError(t, c.ColorUncolored(rng, 0, false))
	x, err := q.Encode(c)
	require.NoError(t, err)

	s, err := ubqp.NewState(q, x)
	require.NoError(t, err)
	require.NoError(t, s.CheckInvariants())
	assert.Equal(t, q.Score(x), s.Score())

	var step int
	for step = 0; step < 500; step++ {
		a := rng.Intn(q.NumArcs())
		before, d := s.Score(), s.Delta(a)
		wasActive := s.Active(a)
		s.Flip(a)
		assert.Equal(t, before+d, s.Score())
		assert.Equal(t, -d, s.Delta(a))
		assert.NotEqual(t, wasActive, s.Active(a))
		require.NoError(t, s.CheckInvariants(), "step %d", step)
	}
	assert.Equal(t, g.Order()+s.Score(), s.Colors())

	// Buckets come in ascending delta order.
	var last = -1 << 30
	var total int
	s.Buckets(func(delta int, arcs []int) bool {
		assert.Greater(t, delta, last)
		last = delta
		total += len(arcs)
		return true
	})
	assert.Equal(t, q.NumArcs(), total)
	assert.Positive(t, s.NumBuckets())

	// Vector is a copy.
	v := s.Vector()
	v.SetBit(0, 1-v.Bit(0))
	assert.NotEqual(t, v.Bit(0) == 1, s.Active(0))
}
