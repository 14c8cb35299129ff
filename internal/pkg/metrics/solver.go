// Package metrics provides Prometheus metrics recording for internal packages.
// This package exists to avoid import cycles between the service and
// middleware packages.
package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	puzzlesCreated = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "gridtrace_puzzles_created_total",
			Help: "Total number of puzzles created",
		},
	)

	solveRunsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "gridtrace_solve_runs_total",
			Help: "Total number of completed solve runs",
		},
		[]string{"solved"},
	)

	solveDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "gridtrace_solve_duration_seconds",
			Help:    "Solver execution time in seconds",
			Buckets: []float64{.0001, .0005, .001, .005, .01, .05, .1, .5, 1, 5},
		},
	)

	solveSteps = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "gridtrace_solve_trace_events",
			Help:    "Number of trace events recorded per solve run",
			Buckets: []float64{10, 50, 100, 500, 1000, 5000, 10000, 50000},
		},
	)
)

// RecordPuzzleCreated records a puzzle creation
func RecordPuzzleCreated() {
	puzzlesCreated.Inc()
}

// RecordSolveRun records the outcome of a completed solve run
func RecordSolveRun(solved bool, steps int, duration time.Duration) {
	solveRunsTotal.WithLabelValues(strconv.FormatBool(solved)).Inc()
	solveDuration.Observe(duration.Seconds())
	solveSteps.Observe(float64(steps))
}
