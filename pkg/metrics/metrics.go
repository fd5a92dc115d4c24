// Package metrics defines the Prometheus metric collectors used across the
// engine and exposes an HTTP handler for scraping.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds all Prometheus collectors for the engine.
type Metrics struct {
	MatchOpsTotal     *prometheus.CounterVec
	TokensMaskedTotal prometheus.Counter
	CompactionsTotal  prometheus.Counter
	KwicQueriesTotal  prometheus.Counter
	GlueRunsTotal     prometheus.Counter
	CompoundsExpanded prometheus.Counter
	DocsFilteredTotal prometheus.Counter
	FilterDuration    *prometheus.HistogramVec
}

// New creates and registers all Prometheus metrics.
func New() *Metrics {
	m := &Metrics{
		MatchOpsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "corpus_match_ops_total",
				Help: "Total pattern match operations by match mode.",
			},
			[]string{"mode"},
		),
		TokensMaskedTotal: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "corpus_tokens_masked_total",
				Help: "Total tokens hidden by filter operations.",
			},
		),
		CompactionsTotal: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "corpus_compactions_total",
				Help: "Total document compactions.",
			},
		),
		KwicQueriesTotal: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "corpus_kwic_queries_total",
				Help: "Total keyword-in-context queries.",
			},
		),
		GlueRunsTotal: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "corpus_glue_runs_total",
				Help: "Total subsequent-token runs merged into single tokens.",
			},
		),
		CompoundsExpanded: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "corpus_compounds_expanded_total",
				Help: "Total compound tokens split into multiple parts.",
			},
		),
		DocsFilteredTotal: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "corpus_documents_filtered_total",
				Help: "Total documents dropped by document-level filters.",
			},
		),
		FilterDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "corpus_filter_duration_seconds",
				Help:    "Filter operation latency in seconds.",
				Buckets: []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1},
			},
			[]string{"filter"},
		),
	}

	prometheus.MustRegister(
		m.MatchOpsTotal,
		m.TokensMaskedTotal,
		m.CompactionsTotal,
		m.KwicQueriesTotal,
		m.GlueRunsTotal,
		m.CompoundsExpanded,
		m.DocsFilteredTotal,
		m.FilterDuration,
	)

	return m
}

// Handler returns the Prometheus scrape HTTP handler.
func Handler() http.Handler {
	return promhttp.Handler()
}
