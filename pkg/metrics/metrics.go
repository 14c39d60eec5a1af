package metrics

import (
	"time"
)

// RecordRun records the outcome of one expansion run
func (r *Registry) RecordRun(strategy, status string, duration time.Duration, nodesExpanded, edgesTraversed, pathsFound int) {
	r.RunsTotal.WithLabelValues(strategy, status).Inc()
	r.RunDuration.WithLabelValues(strategy).Observe(duration.Seconds())
	r.NodesExpanded.WithLabelValues(strategy).Observe(float64(nodesExpanded))
	r.EdgesTraversed.WithLabelValues(strategy).Observe(float64(edgesTraversed))
	r.PathsFound.WithLabelValues(strategy).Observe(float64(pathsFound))
	r.NodesExpandedSum.WithLabelValues(strategy).Add(float64(nodesExpanded))
	r.EdgesTraversedSum.WithLabelValues(strategy).Add(float64(edgesTraversed))
	r.PathsFoundSum.WithLabelValues(strategy).Add(float64(pathsFound))
}
