package metrics_test

import (
	"io"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gcol/coloring"
	"github.com/katalvlaran/gcol/graph"
	"github.com/katalvlaran/gcol/localsearch"
	"github.com/katalvlaran/gcol/metrics"
)

func legalPath(t *testing.T) *coloring.Coloring {
	t.Helper()
	g := graph.MustNew("p3", 3, []graph.Edge{{U: 0, V: 1}, {U: 1, V: 2}})
	c, err := coloring.FromColors(g, []int{0, 1, 0})
	require.NoError(t, err)
	return c
}

func TestObserveRun(t *testing.T) {
	m := metrics.New(nil)

	m.ObserveRun("p3", "tabucol", &localsearch.Result{
		BestLegal: legalPath(t),
		Turns:     40,
		Elapsed:   1500 * time.Millisecond,
	})
	m.ObserveRun("p3", "tabucol", &localsearch.Result{Turns: 2})

	assert.Equal(t, 1.0, testutil.ToFloat64(m.RunsTotal.WithLabelValues("tabucol", metrics.OutcomeFound)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.RunsTotal.WithLabelValues("tabucol", metrics.OutcomeNotFound)))
	assert.Equal(t, 42.0, testutil.ToFloat64(m.TurnsTotal.WithLabelValues("tabucol")))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.BestColors.WithLabelValues("p3", "tabucol")))
	assert.Equal(t, 1, testutil.CollectAndCount(m.RunDuration))
}

func TestHandler(t *testing.T) {
	m := metrics.New(nil)
	m.ObserveRun("p3", "partialcol", &localsearch.Result{BestLegal: legalPath(t), Turns: 3})

	srv := httptest.NewServer(m.Handler())
	defer srv.Close()

	resp, err := srv.Client().Get(srv.URL)
	require.NoError(t, err)
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	assert.Contains(t, string(body), `gcol_runs_total{engine="partialcol",outcome="found"} 1`)
	assert.Contains(t, string(body), `gcol_best_colors{engine="partialcol",instance="p3"} 2`)
}
