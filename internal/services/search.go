package services

import (
	"context"
	"errors"
	"fmt"
	"mobile-depot-planner/internal/domain"
	"mobile-depot-planner/internal/platform/obs"
	"runtime"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

// Search grid bounds.
const (
	GridMinClusters = 2
	GridMaxClusters = 10
	GridMinCouriers = 3
	GridRadiusSteps = 46 // 0.5 .. 5.0 by 0.1
)

// DefaultSearchSeed seeds clustering when the caller does not choose one.
const DefaultSearchSeed int64 = 42

// SearchOptions controls how the parameter search runs, not what it scores.
type SearchOptions struct {
	// Seed drives every clustering call of the run.
	Seed int64
	// Workers caps concurrently evaluated cells; <= 0 means GOMAXPROCS.
	Workers int
}

func (o SearchOptions) workers() int {
	if o.Workers > 0 {
		return o.Workers
	}
	return runtime.GOMAXPROCS(0)
}

// GridCell is one (cluster count, courier count, radius) configuration.
// Index is its position in grid order and breaks cost ties.
type GridCell struct {
	Index        int
	ClusterCount int
	CourierCount int
	Radius       float64
}

// SearchGrid enumerates the cells for a fleet of at most maxCouriers couriers,
// ordered by cluster count, then courier count, then radius.
// The grid is empty when maxCouriers is below GridMinCouriers.
func SearchGrid(maxCouriers int) []GridCell {
	if maxCouriers < GridMinCouriers {
		return nil
	}

	cells := make([]GridCell, 0, (GridMaxClusters-GridMinClusters+1)*(maxCouriers-GridMinCouriers+1)*GridRadiusSteps)
	for k := GridMinClusters; k <= GridMaxClusters; k++ {
		for c := GridMinCouriers; c <= maxCouriers; c++ {
			for r := 0; r < GridRadiusSteps; r++ {
				cells = append(cells, GridCell{
					Index:        len(cells),
					ClusterCount: k,
					CourierCount: c,
					// Integer steps avoid accumulating 0.1 increments.
					Radius: float64(5+r) / 10,
				})
			}
		}
	}
	return cells
}

// EvaluateCell runs one grid configuration end to end: cluster the delivery
// points, route the depot over the centroids, balance every cluster across
// the cell's couriers and score the result.
func EvaluateCell(depot domain.Point, deliveries []domain.Point, cell GridCell, p domain.Parameters, seed int64) (*domain.PlanResult, error) {
	clusters, err := ClusterPoints(deliveries, cell.ClusterCount, cell.Radius, seed)
	if err != nil {
		return nil, fmt.Errorf("evaluate cell %d: %w", cell.Index, err)
	}

	centroids := make([]domain.Point, 0, len(clusters))
	routes := make([]domain.CourierRoute, 0, len(clusters)*cell.CourierCount)
	depotStops := 0

	for i, c := range clusters {
		centroids = append(centroids, c.Centroid)
		// Members on the centroid get no courier leg; the depot serves them.
		depotStops += c.DepotStops()
		routes = append(routes, AssignCluster(c, i, cell.CourierCount)...)
	}

	depotTour := BuildTour(depot, centroids)
	ev := EvaluateDynamic(depotTour, routes, depotStops, p)

	return &domain.PlanResult{
		Mode:          domain.ModeDynamic,
		DepotTour:     depotTour,
		CourierRoutes: routes,
		TotalCost:     ev.Cost,
		TotalTime:     ev.Time,
		CourierCount:  cell.CourierCount,
		ClusterCount:  len(clusters),
		Radius:        cell.Radius,
	}, nil
}

// CellOutcome is the result of evaluating one grid cell.
type CellOutcome struct {
	Cell GridCell
	Plan *domain.PlanResult
	Err  error
}

type searchStats struct {
	Feasible     int
	OverDeadline int
	Degenerate   int
	Failed       int
}

// Search finds the cheapest dynamic plan that meets the deadline.
//
// points[0] is the depot and the rest are delivery points. Every grid cell is
// evaluated independently and concurrently; each goroutine owns its clusters,
// couriers and tours and writes only its own outcome slot. After all cells
// finish, cells over params.MaxTime are discarded and the minimum-cost
// survivor wins, lower grid index first on ties. A cell whose clustering
// degenerates is excluded without failing the run. The context is checked
// before each cell starts; cells already running are not interrupted.
func Search(ctx context.Context, points []domain.Point, params domain.Parameters, opts SearchOptions) (_ *domain.PlanResult, err error) {
	defer obs.Time(ctx, "search")(&err)

	if len(points) == 0 {
		return nil, fmt.Errorf("search: at least the depot point is required: %w", domain.ErrInvalidInput)
	}
	if err := params.Validate(); err != nil {
		return nil, fmt.Errorf("search: %w", err)
	}
	if err := domain.ValidatePoints(points); err != nil {
		return nil, fmt.Errorf("search: %w", err)
	}

	cells := SearchGrid(params.MaxCourierCount)
	if len(cells) == 0 {
		return nil, fmt.Errorf(
			"search: maxCountCouriers=%d is below the grid minimum %d: %w",
			params.MaxCourierCount, GridMinCouriers, domain.ErrInfeasible,
		)
	}

	outcomes, err := evaluateGrid(ctx, points[0], points[1:], cells, params, opts)
	if err != nil {
		return nil, fmt.Errorf("search: %w", err)
	}

	best, stats := selectBest(outcomes, params.MaxTime)
	recordCellStats(stats)

	obs.Logger(ctx).WithFields(logrus.Fields{
		"cells":         len(cells),
		"feasible":      stats.Feasible,
		"over_deadline": stats.OverDeadline,
		"degenerate":    stats.Degenerate,
	}).Info("parameter search finished")

	if best == nil {
		return nil, fmt.Errorf(
			"search: none of %d cells finishes within %.2fh: %w",
			len(cells), params.MaxTime, domain.ErrInfeasible,
		)
	}

	plan := *best
	plan.ID = uuid.NewString()
	return &plan, nil
}

// evaluateGrid fans cells out over a bounded errgroup and joins them all.
func evaluateGrid(
	ctx context.Context,
	depot domain.Point,
	deliveries []domain.Point,
	cells []GridCell,
	params domain.Parameters,
	opts SearchOptions,
) ([]CellOutcome, error) {
	outcomes := make([]CellOutcome, len(cells))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(opts.workers())

	for i, cell := range cells {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			plan, err := EvaluateCell(depot, deliveries, cell, params, opts.Seed)
			outcomes[i] = CellOutcome{Cell: cell, Plan: plan, Err: err}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return outcomes, nil
}

// selectBest filters outcomes by deadline and returns the cheapest survivor.
// Outcomes are scanned in grid order so the first minimum wins.
func selectBest(outcomes []CellOutcome, maxTime float64) (*domain.PlanResult, searchStats) {
	var (
		best  *domain.PlanResult
		stats searchStats
	)

	for _, o := range outcomes {
		switch {
		case errors.Is(o.Err, domain.ErrDegenerateGeometry):
			stats.Degenerate++
			logrus.WithFields(logrus.Fields{
				"cell":     o.Cell.Index,
				"clusters": o.Cell.ClusterCount,
				"couriers": o.Cell.CourierCount,
				"radius":   o.Cell.Radius,
			}).WithError(o.Err).Warn("grid cell excluded")
			continue
		case o.Err != nil || o.Plan == nil:
			stats.Failed++
			continue
		case o.Plan.TotalTime > maxTime:
			stats.OverDeadline++
			continue
		}

		stats.Feasible++
		if best == nil || o.Plan.TotalCost < best.TotalCost {
			best = o.Plan
		}
	}

	return best, stats
}

func recordCellStats(s searchStats) {
	obs.CellEvaluations.WithLabelValues("feasible").Add(float64(s.Feasible))
	obs.CellEvaluations.WithLabelValues("over_deadline").Add(float64(s.OverDeadline))
	obs.CellEvaluations.WithLabelValues("degenerate").Add(float64(s.Degenerate))
	obs.CellEvaluations.WithLabelValues("failed").Add(float64(s.Failed))
}

// searchTimer reports how long a planning mode took.
func searchTimer(mode domain.Mode) func() {
	start := time.Now()
	return func() {
		obs.PlanDuration.WithLabelValues(string(mode)).Observe(time.Since(start).Seconds())
	}
}
