// Package metrics exposes Prometheus instrumentation of search runs.
//
// Engines do not touch metrics; drivers call ObserveRun once per finished
// run. Counters are labeled by engine display name, the best-colors gauge by
// instance and engine.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/katalvlaran/gcol/localsearch"
)

const namespace = "gcol"

// Outcome labels.
const (
	OutcomeFound    = "found"
	OutcomeNotFound = "not_found"
)

// Metrics holds the collectors of one registry.
type Metrics struct {
	RunsTotal   *prometheus.CounterVec
	TurnsTotal  *prometheus.CounterVec
	RunDuration *prometheus.HistogramVec
	BestColors  *prometheus.GaugeVec

	gatherer prometheus.Gatherer
}

// New registers the collectors with reg. A nil reg uses a fresh private
// registry.
func New(reg *prometheus.Registry) *Metrics {
	if reg == nil {
		reg = prometheus.NewRegistry()
	}
	f := promauto.With(reg)
	return &Metrics{
		RunsTotal: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "runs_total",
			Help:      "Finished search runs by engine and outcome",
		}, []string{"engine", "outcome"}),
		TurnsTotal: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "turns_total",
			Help:      "Search turns by engine",
		}, []string{"engine"}),
		RunDuration: f.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "run_duration_seconds",
			Help:      "Search run duration in seconds",
			Buckets:   prometheus.ExponentialBuckets(0.01, 4, 10), // 10ms to ~43min
		}, []string{"engine"}),
		BestColors: f.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "best_colors",
			Help:      "Colors of the best legal coloring found",
		}, []string{"instance", "engine"}),
		gatherer: reg,
	}
}

// ObserveRun records one finished run. The best-colors gauge only moves
// when a legal coloring was found.
func (m *Metrics) ObserveRun(instance, engine string, res *localsearch.Result) {
	outcome := OutcomeNotFound
	if res.Found() {
		outcome = OutcomeFound
		m.BestColors.WithLabelValues(instance, engine).Set(float64(res.BestLegal.NumColors()))
	}
	m.RunsTotal.WithLabelValues(engine, outcome).Inc()
	m.TurnsTotal.WithLabelValues(engine).Add(float64(res.Turns))
	m.RunDuration.WithLabelValues(engine).Observe(res.Elapsed.Seconds())
}

// Handler serves the registry in the Prometheus text format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.gatherer, promhttp.HandlerOpts{})
}
