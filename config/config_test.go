package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gcol/config"
	"github.com/katalvlaran/gcol/localsearch"
)

const tabuCol = `
method: local_search
initialization: dsatur
name: tabu_col
pseudo: tabucol
tabu_iter:
  alpha: 0.6
  random: {min: 0, max: 10}
time:
  relative: 0.1
`

func TestParseResolve(t *testing.T) {
	m, err := config.Parse([]byte(tabuCol))
	require.NoError(t, err)
	assert.Equal(t, config.MethodLocalSearch, m.Method)
	assert.Equal(t, localsearch.TabuCol, m.Engine())

	p := m.Resolve(250, time.Hour, 0)
	assert.Equal(t, localsearch.Params{
		Name:    localsearch.TabuCol,
		Pseudo:  "tabucol",
		Alpha:   0.6,
		TabuMin: 0,
		TabuMax: 10,
		MaxTime: 25 * time.Second,
	}, p)
	require.NoError(t, p.Validate())
}

func TestParseJSON(t *testing.T) {
	doc := `{"method": "local_search", "initialization": "DSatur", "name": "partial_col", ` +
		`"pseudo": "partialcol", "tabu_iter": {"alpha": 0.6, "random": {"min": 0, "max": 10}}, ` +
		`"time": {"iterations": 5000}}`
	m, err := config.Parse([]byte(doc))
	require.NoError(t, err)
	assert.Equal(t, "dsatur", m.Initialization)

	p := m.Resolve(100, time.Minute, 0)
	assert.Equal(t, int64(5000), p.MaxIterations)
	assert.Equal(t, time.Minute, p.MaxTime)
}

func TestResolveTimeKinds(t *testing.T) {
	m, err := config.Parse([]byte("method: local_search\ninitialization: random\nname: tabu_bucket\ntime: {fixed: 2.5}\n"))
	require.NoError(t, err)
	p := m.Resolve(10, time.Hour, 7)
	assert.Equal(t, 2500*time.Millisecond, p.MaxTime)
	assert.Equal(t, int64(7), p.MaxIterations)
	assert.Equal(t, localsearch.TabuBucket, p.Pseudo)
	assert.Zero(t, p.Alpha)

	m, err = config.Parse([]byte("method: local_search\ninitialization: random\nname: tabu_col\ntime: {relative: 0.001}\n"))
	require.NoError(t, err)
	assert.Equal(t, time.Second, m.Resolve(10, 0, 0).MaxTime)
}

func TestGreedyMethod(t *testing.T) {
	m, err := config.Parse([]byte("method: greedy\ninitialization: deterministic_2\n"))
	require.NoError(t, err)
	assert.Equal(t, localsearch.None, m.Engine())
	assert.Equal(t, localsearch.None, m.Resolve(5, 0, 0).Name)
}

func TestInvalid(t *testing.T) {
	cases := map[string]string{
		"empty":               "",
		"no method":           "initialization: random\n",
		"unknown method":      "method: memetic\ninitialization: random\n",
		"unknown init":        "method: greedy\ninitialization: rlf\n",
		"unknown engine":      "method: local_search\ninitialization: random\nname: annealing\n",
		"two time kinds":      "method: local_search\ninitialization: random\nname: tabu_col\ntime: {fixed: 1, iterations: 5}\n",
		"empty time":          "method: local_search\ninitialization: random\nname: tabu_col\ntime: {}\n",
		"negative time":       "method: local_search\ninitialization: random\nname: tabu_col\ntime: {fixed: -1}\n",
		"inverted tabu range": "method: local_search\ninitialization: random\nname: tabu_col\ntabu_iter: {alpha: 1, random: {min: 9, max: 1}}\n",
		"negative alpha":      "method: local_search\ninitialization: random\nname: tabu_col\ntabu_iter: {alpha: -1, random: {min: 0, max: 1}}\n",
	}
	for name, doc := range cases {
		_, err := config.Parse([]byte(doc))
		assert.ErrorIs(t, err, config.ErrInvalid, name)
	}

	_, err := config.Parse([]byte("method: greedy\ninitialization: random\ncrossover: gpx\n"))
	assert.Error(t, err, "unknown keys are rejected")
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "tabucol.yaml")
	require.NoError(t, os.WriteFile(path, []byte(tabuCol), 0o600))

	m, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, "tabucol", m.Pseudo)

	_, err = config.Load(filepath.Join(dir, "missing.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing.yaml")
}
