package builder_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gcol/builder"
)

func TestBuildGraph_Classics(t *testing.T) {
	cases := []struct {
		name     string
		con      builder.Constructor
		order    int
		size     int
		maxDeg   int
		probeU   int
		probeV   int
		adjacent bool
	}{
		{"cycle5", builder.Cycle(5), 5, 5, 2, 4, 0, true},
		{"path4", builder.Path(4), 4, 3, 2, 0, 3, false},
		{"star6", builder.Star(6), 6, 5, 5, 0, 5, true},
		{"wheel6", builder.Wheel(6), 6, 10, 5, 2, 5, true},
		{"k5", builder.Complete(5), 5, 10, 4, 1, 3, true},
		{"k23", builder.CompleteBipartite(2, 3), 5, 6, 3, 0, 1, false},
		{"crown4", builder.Crown(4), 8, 12, 3, 0, 4, false},
		{"myciel3", builder.Mycielski(3), 5, 5, 2, 0, 1, true},
		{"myciel4", builder.Mycielski(4), 11, 20, 5, 0, 2, false},
		{"queen3", builder.Queen(3, 3), 9, 28, 8, 0, 8, true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			g, err := builder.BuildGraph(tc.name, nil, tc.con)
			require.NoError(t, err)
			assert.Equal(t, tc.order, g.Order())
			assert.Equal(t, tc.size, g.Size())
			assert.Equal(t, tc.maxDeg, g.MaxDegree())
			assert.Equal(t, tc.adjacent, g.Adjacent(tc.probeU, tc.probeV))
			assert.Equal(t, tc.name, g.Name())
		})
	}
}

func TestBuildGraph_DisjointUnion(t *testing.T) {
	g, err := builder.BuildGraph("c3+k4", nil, builder.Cycle(3), builder.Complete(4))
	require.NoError(t, err)
	assert.Equal(t, 7, g.Order())
	assert.Equal(t, 3+6, g.Size())
	assert.True(t, g.Adjacent(3, 6), "K4 block starts at offset 3")
	assert.False(t, g.Adjacent(2, 3), "blocks are disjoint")
}

func TestRandomSparse_Determinism(t *testing.T) {
	a, err := builder.BuildGraph("r", []builder.BuilderOption{builder.WithSeed(11)}, builder.RandomSparse(40, 0.3))
	require.NoError(t, err)
	b, err := builder.BuildGraph("r", []builder.BuilderOption{builder.WithSeed(11)}, builder.RandomSparse(40, 0.3))
	require.NoError(t, err)
	assert.Equal(t, a.Edges(), b.Edges())

	full, err := builder.BuildGraph("k", nil, builder.RandomSparse(6, 1))
	require.NoError(t, err)
	assert.Equal(t, 15, full.Size(), "p=1 needs no rng")
}

func TestBuildGraph_Errors(t *testing.T) {
	cases := map[string]struct {
		con  builder.Constructor
		want error
	}{
		"cycle2":     {builder.Cycle(2), builder.ErrTooFewVertices},
		"path1":      {builder.Path(1), builder.ErrTooFewVertices},
		"wheel3":     {builder.Wheel(3), builder.ErrTooFewVertices},
		"bipartite0": {builder.CompleteBipartite(0, 2), builder.ErrTooFewVertices},
		"myciel1":    {builder.Mycielski(1), builder.ErrTooFewVertices},
		"prob":       {builder.RandomSparse(4, 1.5), builder.ErrInvalidProbability},
		"norng":      {builder.RandomSparse(4, 0.5), builder.ErrNeedRandSource},
		"zero":       {builder.Constructor{}, builder.ErrConstructFailed},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := builder.BuildGraph(name, nil, tc.con)
			require.Error(t, err)
			assert.True(t, errors.Is(err, tc.want), "got %v", err)
		})
	}
	assert.Panics(t, func() { builder.WithRand(nil) })
}
