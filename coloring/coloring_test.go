package coloring_test

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/gcol/builder"
	"github.com/katalvlaran/gcol/coloring"
	"github.com/katalvlaran/gcol/graph"
)

// triangle is K3 with vertices 0,1,2.
func triangle() *graph.Graph {
	return graph.MustNew("triangle", 3, []graph.Edge{{U: 0, V: 1}, {U: 1, V: 2}, {U: 0, V: 2}})
}

func randomGraph(t testing.TB, n int, p float64, seed int64) *graph.Graph {
	t.Helper()
	g, err := builder.BuildGraph("random", []builder.BuilderOption{builder.WithSeed(seed)}, builder.RandomSparse(n, p))
	require.NoError(t, err)
	return g
}

// requireSameState compares every externally observable field.
func requireSameState(t testing.TB, want, got *coloring.Coloring) {
	t.Helper()
	require.Equal(t, want.Colors(), got.Colors(), "colors")
	require.Equal(t, want.Penalty(), got.Penalty(), "penalty")
	require.Equal(t, want.NumColors(), got.NumColors(), "numColors")
	require.Equal(t, want.Slots(), got.Slots(), "slots")
	require.Equal(t, want.Uncolored(), got.Uncolored(), "uncolored")
	require.Equal(t, want.Conflicting(), got.Conflicting(), "conflicting")
	n := want.Graph().Order()
	for col := 0; col < want.Slots(); col++ {
		require.Equal(t, want.ColorSize(col), got.ColorSize(col), "colorSize[%d]", col)
		for v := 0; v < n; v++ {
			require.Equal(t, want.Conflicts(v, col), got.Conflicts(v, col), "conflicts[%d][%d]", col, v)
		}
	}
}

type ColoringSuite struct {
	suite.Suite
}

func TestColoringSuite(t *testing.T) {
	suite.Run(t, new(ColoringSuite))
}

func (s *ColoringSuite) TestTriangleForcedIntoTwoColors() {
	c := coloring.New(triangle())
	s.Equal(0, c.Slots())

	col, err := c.Assign(0, coloring.NewColor)
	s.Require().NoError(err)
	s.Equal(0, col)
	_, err = c.Assign(1, 0)
	s.Require().NoError(err)

	s.Equal(1, c.Conflicts(1, 0))
	s.Equal(1, c.Penalty())
	s.Equal([]int{0, 1}, c.Conflicting())
	s.False(c.IsLegal())
	s.Require().NoError(c.CheckInvariants())

	col, err = c.Assign(2, coloring.NewColor)
	s.Require().NoError(err)
	s.Equal(1, col)
	s.Equal(2, c.NumColors())
	s.Equal(1, c.Penalty(), "vertex 2 alone in its color; 0-1 still conflict")

	_, err = c.Recolor(1, 1)
	s.Require().NoError(err)
	s.Equal(1, c.Penalty(), "1 and 2 now share color 1")

	_, err = c.Assign(0, 0)
	s.True(errors.Is(err, coloring.ErrVertexColored))

	_, err = c.Unassign(1)
	s.Require().NoError(err)
	_, err = c.Assign(1, coloring.NewColor)
	s.Require().NoError(err)
	s.True(c.IsLegal())
	s.Equal(3, c.NumColors())
	s.Equal(0, c.Penalty())
	s.Require().NoError(c.CheckInvariants())
}

func (s *ColoringSuite) TestTriangleLegalWithNewColor() {
	c := coloring.New(triangle())
	_, _ = c.Assign(0, coloring.NewColor)
	_, _ = c.Assign(1, coloring.NewColor)
	_, err := c.Assign(2, coloring.NewColor)
	s.Require().NoError(err)
	s.True(c.IsLegal())
	s.Equal(3, c.NumColors())
	s.Equal("0,0,3,0:1:2", c.Format())
}

func (s *ColoringSuite) TestPreconditionErrors() {
	c := coloring.New(triangle())
	_, err := c.Assign(3, coloring.NewColor)
	s.True(errors.Is(err, coloring.ErrVertexOutOfRange))
	_, err = c.Assign(0, 4)
	s.True(errors.Is(err, coloring.ErrColorOutOfRange))
	_, err = c.Unassign(0)
	s.True(errors.Is(err, coloring.ErrVertexUncolored))
	_, err = c.Recolor(0, 0)
	s.True(errors.Is(err, coloring.ErrVertexUncolored))
	_, err = c.GrenadeLegal(0, 0, rand.New(rand.NewSource(1)))
	s.True(errors.Is(err, coloring.ErrIndexDisabled))

	_, err = coloring.FromColors(triangle(), []int{0, 1})
	s.True(errors.Is(err, coloring.ErrLengthMismatch))
	_, err = coloring.FromColors(triangle(), []int{0, -2, 1})
	s.True(errors.Is(err, coloring.ErrColorOutOfRange))
	_, err = coloring.FromGroups(triangle(), [][]int{{0, 1}, {1}})
	s.True(errors.Is(err, coloring.ErrVertexColored))
}

func (s *ColoringSuite) TestAssignUnassignInverse() {
	g := randomGraph(s.T(), 30, 0.2, 5)
	rng := rand.New(rand.NewSource(5))
	c := coloring.New(g)
	for v := 0; v < g.Order(); v++ {
		if v%4 == 0 {
			continue
		}
		_, err := c.Assign(v, v%5)
		if errors.Is(err, coloring.ErrColorOutOfRange) {
			_, err = c.Assign(v, coloring.NewColor)
		}
		s.Require().NoError(err)
	}
	_ = c.RemovePenalty()
	s.Require().True(c.IsPartialLegal())

	for trial := 0; trial < 200; trial++ {
		unc := c.Uncolored()
		if len(unc) == 0 {
			break
		}
		v := unc[rng.Intn(len(unc))]
		free := c.FreeColors(v)
		if len(free) == 0 {
			continue
		}
		before := c.Snapshot()
		_, err := c.Assign(v, free[rng.Intn(len(free))])
		s.Require().NoError(err)
		_, err = c.Unassign(v)
		s.Require().NoError(err)
		requireSameState(s.T(), before, c)
	}
}

func (s *ColoringSuite) TestRecolorMatchesUnassignAssign() {
	for _, seed := range []int64{1, 2, 3} {
		g := randomGraph(s.T(), 40, 0.25, seed)
		rng := rand.New(rand.NewSource(seed))
		direct := coloring.New(g)
		for v := 0; v < g.Order(); v++ {
			_, err := direct.Assign(v, coloring.NewColor)
			s.Require().NoError(err)
			if direct.Slots() == 6 {
				break
			}
		}
		s.Require().NoError(direct.ColorUncolored(rng, 0, false))
		direct.EnableDeltas()
		direct.EnableLegalColors()
		twoStep := direct.Clone()

		for step := 0; step < 300; step++ {
			v := rng.Intn(g.Order())
			to := rng.Intn(direct.Slots())
			from, err := direct.Recolor(v, to)
			s.Require().NoError(err)
			s.Equal(from, twoStep.Color(v))

			if from != to {
				_, err = twoStep.Unassign(v)
				s.Require().NoError(err)
				_, err = twoStep.Assign(v, to)
				s.Require().NoError(err)
			}
			requireSameState(s.T(), twoStep, direct)
			s.Require().NoError(direct.CheckInvariants(), "seed %d step %d", seed, step)
		}
		s.Require().NoError(twoStep.CheckInvariants())
	}
}

func (s *ColoringSuite) TestRandomMovesKeepInvariants() {
	g := randomGraph(s.T(), 35, 0.3, 17)
	rng := rand.New(rand.NewSource(17))
	c := coloring.New(g)
	for i := 0; i < 5; i++ {
		_, err := c.Assign(i, coloring.NewColor)
		s.Require().NoError(err)
	}
	c.EnableDeltas()
	c.EnableLegalColors()

	for step := 0; step < 1500; step++ {
		v := rng.Intn(g.Order())
		var err error
		switch op := rng.Intn(5); {
		case c.Color(v) == coloring.Uncolored && op < 2:
			_, err = c.GrenadeMove(v, rng.Intn(c.Slots()))
		case c.Color(v) == coloring.Uncolored && op < 4:
			_, err = c.Assign(v, rng.Intn(c.Slots()))
		case c.Color(v) == coloring.Uncolored:
			var evicted int
			evicted, err = c.GrenadeLegal(v, rng.Intn(c.Slots()), rng)
			s.GreaterOrEqual(evicted, 0)
		case op == 0:
			_, err = c.Unassign(v)
		case op == 1:
			_, err = c.GrenadeLegal(v, rng.Intn(c.Slots()), rng)
		default:
			_, err = c.Recolor(v, rng.Intn(c.Slots()))
		}
		s.Require().NoError(err)
		s.Require().NoError(c.CheckInvariants(), "step %d", step)
	}
}

func (s *ColoringSuite) TestGrenadeMoveEvictsSameColorNeighbors() {
	// Star with center 0 and leaves 1..4.
	g, err := builder.BuildGraph("star", nil, builder.Star(5))
	s.Require().NoError(err)
	c, err := coloring.FromColors(g, []int{-1, 0, 0, 1, 0})
	s.Require().NoError(err)

	evicted, err := c.GrenadeMove(0, 0)
	s.Require().NoError(err)
	s.Equal(3, evicted)
	s.Equal([]int{1, 2, 4}, c.Uncolored())
	s.True(c.IsPartialLegal())
	s.Require().NoError(c.CheckInvariants())
}

func (s *ColoringSuite) TestGrenadeLegalRelocates() {
	// Path 0-1-2-3 colored [-, 0, 1, 2]: vertex 1 may move to color 2.
	g, err := builder.BuildGraph("path", nil, builder.Path(4))
	s.Require().NoError(err)
	c, err := coloring.FromColors(g, []int{-1, 0, 1, 2})
	s.Require().NoError(err)
	c.EnableLegalColors()
	s.Equal([]int{2}, c.LegalColors(1))

	evicted, err := c.GrenadeLegal(0, 0, rand.New(rand.NewSource(1)))
	s.Require().NoError(err)
	s.Equal(0, evicted)
	s.Equal(2, c.Color(1))
	s.True(c.IsLegal())
	s.Require().NoError(c.CheckInvariants())
}

func (s *ColoringSuite) TestGrenadeLegalEvicts() {
	// Path 0-1-2 colored [-, 0, 1]: vertex 1 has nowhere to go.
	g, err := builder.BuildGraph("path", nil, builder.Path(3))
	s.Require().NoError(err)
	c, err := coloring.FromColors(g, []int{-1, 0, 1})
	s.Require().NoError(err)
	c.EnableLegalColors()
	s.Empty(c.LegalColors(1))

	evicted, err := c.GrenadeLegal(0, 0, rand.New(rand.NewSource(1)))
	s.Require().NoError(err)
	s.Equal(1, evicted)
	s.Equal([]int{1}, c.Uncolored())
	s.True(c.IsPartialLegal())
	s.Require().NoError(c.CheckInvariants())
}

func (s *ColoringSuite) TestDeltasAndBestColors() {
	// 4-cycle 0-1-2-3-0 colored [0,0,1,1].
	g, err := builder.BuildGraph("c4", nil, builder.Cycle(4))
	s.Require().NoError(err)
	c, err := coloring.FromColors(g, []int{0, 0, 1, 1})
	s.Require().NoError(err)
	s.Equal(2, c.Penalty())
	s.Equal([]int{0, 1, 2, 3}, c.Conflicting())

	c.EnableDeltas()
	s.Equal(0, c.Delta(1, 0))
	s.Equal(0, c.Delta(1, 1), "vertex 1 has one neighbor in each color")
	s.Equal(0, c.BestDelta(1))
	s.Equal([]int{0, 1}, c.BestColors(1))
	s.Equal(c.DeltaOf(1, 1), c.Delta(1, 1))

	_, err = c.Recolor(1, 1)
	s.Require().NoError(err)
	s.Equal(2, c.Penalty())
	_, err = c.Recolor(2, 0)
	s.Require().NoError(err)
	s.True(c.IsLegal())
	s.Require().NoError(c.CheckInvariants())
}

func (s *ColoringSuite) TestReduceKeepLegal() {
	// Path 0-1-2, three singleton colors.
	g, err := builder.BuildGraph("p3", nil, builder.Path(3))
	s.Require().NoError(err)
	c, err := coloring.FromColors(g, []int{0, 1, 2})
	s.Require().NoError(err)

	r, err := c.ReduceKeepLegal(2)
	s.Require().NoError(err)
	s.Equal(0, r.Penalty())
	s.Equal(2, r.Slots())
	s.True(r.IsLegal(), "vertex 2 fits back into color 0")
	s.Equal([]int{0, 1, 0}, r.Colors())
	s.Require().NoError(r.CheckInvariants())

	// Triangle cannot fit in two colors: one vertex stays uncolored.
	t, err := coloring.FromColors(triangle(), []int{0, 1, 2})
	s.Require().NoError(err)
	r, err = t.ReduceKeepLegal(2)
	s.Require().NoError(err)
	s.Equal(0, r.Penalty())
	s.Equal([]int{2}, r.Uncolored())

	_, err = t.ReduceKeepLegal(0)
	s.True(errors.Is(err, coloring.ErrInvalidTarget))
}

func (s *ColoringSuite) TestReduceKeepsLargestClasses() {
	g := graph.MustNew("empty", 6, nil)
	c, err := coloring.FromColors(g, []int{0, 1, 1, 2, 2, 2})
	s.Require().NoError(err)
	r, err := c.ReduceKeepLegal(1)
	s.Require().NoError(err)
	s.True(r.IsLegal())
	s.Equal(1, r.NumColors())

	r, err = c.ReduceAllowConflicts(2, rand.New(rand.NewSource(2)))
	s.Require().NoError(err)
	s.Equal([]int{1, 0, 0, 0}, r.Colors()[2:], "class {3,4,5} becomes slot 0, class {1,2} slot 1")
}

func (s *ColoringSuite) TestReduceAllowConflicts() {
	c, err := coloring.FromColors(triangle(), []int{0, 1, 2})
	s.Require().NoError(err)
	r, err := c.ReduceAllowConflicts(2, rand.New(rand.NewSource(3)))
	s.Require().NoError(err)
	s.Equal(0, r.NumUncolored())
	s.Equal(1, r.Penalty())
	s.Equal(2, r.NumColors())
	s.Require().NoError(r.CheckInvariants())
}

func (s *ColoringSuite) TestRemovePenaltyColorUncoloredToLegal() {
	g := randomGraph(s.T(), 30, 0.3, 8)
	rng := rand.New(rand.NewSource(8))
	c, err := coloring.FromColors(g, make([]int, g.Order()))
	s.Require().NoError(err)
	s.Positive(c.Penalty())

	removed := c.RemovePenalty()
	s.Positive(removed)
	s.True(c.IsPartialLegal())
	s.Require().NoError(c.CheckInvariants())

	s.Require().NoError(c.ColorUncolored(rng, 4, true))
	s.Equal(0, c.NumUncolored())
	s.LessOrEqual(c.NumColors(), 4)
	s.Require().NoError(c.CheckInvariants())

	s.Require().NoError(c.ToLegal(rng))
	s.True(c.IsLegal())
	s.Require().NoError(c.CheckInvariants())
}

func (s *ColoringSuite) TestEncodeDecode() {
	c, err := coloring.FromColors(triangle(), []int{1, -1, 0})
	s.Require().NoError(err)
	s.Equal("1:-1:0", c.Encode())
	s.Equal("1,0,2,1:-1:0", c.String())

	colors, err := coloring.DecodeColors(c.Encode())
	s.Require().NoError(err)
	s.Equal([]int{1, -1, 0}, colors)

	_, err = coloring.DecodeColors("0:x")
	s.Error(err)
	_, err = coloring.DecodeColors("0:-3")
	s.True(errors.Is(err, coloring.ErrColorOutOfRange))
	empty, err := coloring.DecodeColors(" ")
	s.NoError(err)
	s.Nil(empty)
}

func (s *ColoringSuite) TestRecolorIntoEmptySlot() {
	c, err := coloring.FromColors(triangle(), []int{0, 1, 2})
	s.Require().NoError(err)
	_, err = c.Recolor(2, 0)
	s.Require().NoError(err)
	s.Equal(3, c.Slots())
	s.Equal(2, c.NumColors())
	s.Zero(c.ColorSize(2))

	from, err := c.Recolor(0, 2)
	s.Require().NoError(err)
	s.Equal(0, from)
	s.Equal(3, c.NumColors())
	s.Equal(0, c.Penalty())
	s.Require().NoError(c.CheckInvariants())

	_, err = c.Recolor(0, c.Slots())
	s.True(errors.Is(err, coloring.ErrColorOutOfRange))
}

func (s *ColoringSuite) TestCloneSnapshot() {
	c, err := coloring.FromColors(triangle(), []int{0, 0, 1})
	s.Require().NoError(err)
	c.EnableDeltas()

	cl := c.Clone()
	s.NotEqual(c.ID(), cl.ID())
	s.True(cl.HasDeltas())
	sn := c.Snapshot()
	s.False(sn.HasDeltas())

	_, err = cl.Recolor(1, 1)
	s.Require().NoError(err)
	s.Equal(0, c.Color(1), "clone must not alias")
	s.Require().NoError(cl.CheckInvariants())
	s.NotEqual(c.ID(), sn.ID())
	s.False(sn.HasLegalColors())
}

func (s *ColoringSuite) TestGroupsAndBestPossibleColors() {
	c, err := coloring.FromColors(triangle(), []int{2, -1, 0})
	s.Require().NoError(err)
	s.Equal([][]int{{2}, {0}}, c.Groups())
	s.Equal([]int{1}, c.BestPossibleColors(1), "slot 1 is allocated and empty")
	s.Equal([]int{1}, c.FreeColors(1))
	s.Equal(2, c.NumColors())
	s.Equal(3, c.Slots())
}

func (s *ColoringSuite) TestCheckInvariantsDetectsNothingOnFreshStates() {
	g := randomGraph(s.T(), 20, 0.5, 4)
	c := coloring.New(g)
	s.NoError(c.CheckInvariants())
	c.EnableDeltas()
	c.EnableLegalColors()
	s.NoError(c.CheckInvariants())
}

func TestDistances(t *testing.T) {
	g := graph.MustNew("empty", 6, nil)
	a, err := coloring.FromColors(g, []int{0, 0, 1, 1, 2, 2})
	require.NoError(t, err)
	renamed, err := coloring.FromColors(g, []int{2, 2, 0, 0, 1, 1})
	require.NoError(t, err)
	assert.Equal(t, 0, coloring.DistanceAccurate(a, renamed))
	assert.Equal(t, 0, coloring.DistanceApprox(a, renamed))

	moved, err := coloring.FromColors(g, []int{0, 1, 1, 1, 2, 2})
	require.NoError(t, err)
	assert.Equal(t, 1, coloring.DistanceAccurate(a, moved))
	assert.LessOrEqual(t, coloring.DistanceApprox(a, moved), coloring.DistanceAccurate(a, moved))

	d := a.RecordDistance(moved)
	assert.Equal(t, 1, d)
	assert.Equal(t, 1, a.Distances[moved.ID()])
	assert.Equal(t, 1, moved.Distances[a.ID()])
}
