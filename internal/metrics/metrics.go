// Package metrics exposes Prometheus instrumentation for the API server.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// Simulations counts simulation requests by outcome.
	Simulations = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "simulacredit_simulations_total",
			Help: "Total number of simulation requests",
		},
		[]string{"status"},
	)

	// SimulationDuration observes end-to-end simulation latency.
	SimulationDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "simulacredit_simulation_duration_seconds",
			Help:    "Time spent computing one simulation",
			Buckets: prometheus.DefBuckets,
		},
	)

	// SolverExhaustions counts best-effort solver returns, by series.
	SolverExhaustions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "simulacredit_solver_exhaustions_total",
			Help: "Rate discoveries that hit the iteration budget without converging",
		},
		[]string{"series"},
	)

	// CacheHits counts repository cache hits and misses.
	CacheHits = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "simulacredit_cache_requests_total",
			Help: "Simulation cache lookups by result",
		},
		[]string{"result"},
	)
)
