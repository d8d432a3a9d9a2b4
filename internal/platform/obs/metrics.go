package obs

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

var (
	// Registry is the dedicated Prometheus registry of the planner.
	Registry = prometheus.NewRegistry()

	// HTTPRequests counts requests by method, path, and status.
	HTTPRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{Name: "http_requests_total", Help: "Total HTTP requests."},
		[]string{"method", "path", "status"},
	)
	// HTTPDuration records request durations in seconds.
	HTTPDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{Name: "http_request_duration_seconds", Help: "HTTP request duration in seconds.", Buckets: prometheus.DefBuckets},
		[]string{"method", "path"},
	)

	// CellEvaluations counts grid cells by outcome: feasible, over_deadline, degenerate, failed.
	CellEvaluations = prometheus.NewCounterVec(
		prometheus.CounterOpts{Name: "planner_grid_cells_total", Help: "Grid cells evaluated by the parameter search, by outcome."},
		[]string{"outcome"},
	)
	// PlanRuns counts planning runs by mode and result: ok, infeasible, invalid, error.
	PlanRuns = prometheus.NewCounterVec(
		prometheus.CounterOpts{Name: "planner_runs_total", Help: "Planning runs by mode and result."},
		[]string{"mode", "result"},
	)
	// PlanDuration records planning wall-clock time per mode.
	PlanDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{Name: "planner_run_duration_seconds", Help: "Planning run duration in seconds.", Buckets: []float64{0.005, 0.01, 0.05, 0.1, 0.5, 1, 2, 5, 10, 30}},
		[]string{"mode"},
	)
	// PlansPublished counts publication attempts by mode and status.
	PlansPublished = prometheus.NewCounterVec(
		prometheus.CounterOpts{Name: "planner_plans_published_total", Help: "Plans handed to the result channel, by mode and status."},
		[]string{"mode", "status"},
	)
)

var regOnce sync.Once

// RegisterDefault registers the planner collectors on Registry once.
func RegisterDefault() {
	regOnce.Do(func() {
		Registry.MustRegister(HTTPRequests)
		Registry.MustRegister(HTTPDuration)
		Registry.MustRegister(CellEvaluations)
		Registry.MustRegister(PlanRuns)
		Registry.MustRegister(PlanDuration)
		Registry.MustRegister(PlansPublished)
		Registry.MustRegister(collectors.NewGoCollector())
		Registry.MustRegister(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	})
}
