package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// HTTPRequestDuration tracks handler latency by method, route and status.
var HTTPRequestDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: "skillmap",
		Subsystem: "http",
		Name:      "request_duration_seconds",
		Help:      "HTTP request duration in seconds.",
		Buckets:   prometheus.DefBuckets,
	},
	[]string{"method", "route", "status"},
)

// AutoAssignRuns counts planner executions by scope (project or global).
var AutoAssignRuns = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: "skillmap",
		Subsystem: "allocation",
		Name:      "auto_assign_runs_total",
		Help:      "Number of auto-assignment runs.",
	},
	[]string{"scope"},
)

// AutoAssignCreated counts assignments persisted by the planners.
var AutoAssignCreated = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: "skillmap",
		Subsystem: "allocation",
		Name:      "auto_assign_created_total",
		Help:      "Number of assignments created by auto-assignment.",
	},
	[]string{"scope"},
)
