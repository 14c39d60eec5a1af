package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

func (r *Registry) initRunMetrics() {
	r.RunsTotal = promauto.With(r.registry).NewCounterVec(
		prometheus.CounterOpts{
			Name: "graphsampler_runs_total",
			Help: "Total number of expansion runs executed",
		},
		[]string{"strategy", "status"},
	)

	r.RunDuration = promauto.With(r.registry).NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "graphsampler_run_duration_seconds",
			Help:    "Expansion run duration in seconds",
			Buckets: []float64{0.001, 0.01, 0.05, 0.1, 0.5, 1.0, 5.0, 10.0, 60.0},
		},
		[]string{"strategy"},
	)

	r.NodesExpanded = promauto.With(r.registry).NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "graphsampler_run_nodes_expanded",
			Help:    "Number of nodes expanded per run",
			Buckets: []float64{10, 100, 1000, 10000, 100000},
		},
		[]string{"strategy"},
	)

	r.EdgesTraversed = promauto.With(r.registry).NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "graphsampler_run_edges_traversed",
			Help:    "Number of edges traversed per run",
			Buckets: []float64{10, 100, 1000, 10000, 100000, 1000000},
		},
		[]string{"strategy"},
	)

	r.PathsFound = promauto.With(r.registry).NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "graphsampler_run_paths_found",
			Help:    "Number of seed-to-seed paths discovered per run",
			Buckets: []float64{1, 2, 5, 10, 50, 100},
		},
		[]string{"strategy"},
	)

	r.NodesExpandedSum = promauto.With(r.registry).NewCounterVec(
		prometheus.CounterOpts{
			Name: "graphsampler_nodes_expanded_total",
			Help: "Total nodes expanded across all runs",
		},
		[]string{"strategy"},
	)

	r.EdgesTraversedSum = promauto.With(r.registry).NewCounterVec(
		prometheus.CounterOpts{
			Name: "graphsampler_edges_traversed_total",
			Help: "Total edges traversed across all runs",
		},
		[]string{"strategy"},
	)

	r.PathsFoundSum = promauto.With(r.registry).NewCounterVec(
		prometheus.CounterOpts{
			Name: "graphsampler_paths_found_total",
			Help: "Total paths discovered across all runs",
		},
		[]string{"strategy"},
	)
}
