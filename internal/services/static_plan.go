package services

import (
	"context"
	"fmt"
	"mobile-depot-planner/internal/domain"
	"mobile-depot-planner/internal/platform/obs"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// PlanStatic packs known orders onto capacity-limited couriers leaving the
// depot and scores the resulting fleet once.
//
// points[0] is the depot; orders bind positionally to points[1:]. Any order
// larger than MaxDeliveryCapacity fails the whole run, as does a plan slower
// than MaxTime.
func PlanStatic(ctx context.Context, points []domain.Point, orders []domain.Order, params domain.Parameters) (_ *domain.PlanResult, err error) {
	defer obs.Time(ctx, "plan.static")(&err)

	if len(points) == 0 {
		return nil, fmt.Errorf("plan static: at least the depot point is required: %w", domain.ErrInvalidInput)
	}
	if err := params.Validate(); err != nil {
		return nil, fmt.Errorf("plan static: %w", err)
	}
	if err := domain.ValidatePoints(points); err != nil {
		return nil, fmt.Errorf("plan static: %w", err)
	}

	depot := points[0]
	bound, err := domain.BindOrders(orders, points[1:])
	if err != nil {
		return nil, fmt.Errorf("plan static: %w", err)
	}

	for _, o := range bound {
		if o.Volume > params.MaxDeliveryCapacity {
			return nil, fmt.Errorf(
				"plan static: order %d volume %.2f exceeds delivery capacity %.2f: %w",
				o.ID, o.Volume, params.MaxDeliveryCapacity, domain.ErrInvalidInput,
			)
		}
	}

	packed, err := PackOrders(depot, bound, params.MaxCourierCount, params.MaxCourierCarCapacity)
	if err != nil {
		return nil, fmt.Errorf("plan static: %w", err)
	}
	if len(packed.Unassigned) > 0 {
		obs.Logger(ctx).WithFields(logrus.Fields{
			"unassigned": packed.Unassigned,
			"capacity":   params.MaxCourierCarCapacity,
		}).Warn("orders left without a courier")
	}

	ev := EvaluateStatic(packed.Routes, params)
	if ev.Time > params.MaxTime {
		return nil, fmt.Errorf(
			"plan static: total time %.2fh exceeds %.2fh: %w",
			ev.Time, params.MaxTime, domain.ErrInfeasible,
		)
	}

	return &domain.PlanResult{
		ID:            uuid.NewString(),
		Mode:          domain.ModeStatic,
		CourierRoutes: packed.Routes,
		TotalCost:     ev.Cost,
		TotalTime:     ev.Time,
		CourierCount:  params.MaxCourierCount,
		Unassigned:    packed.Unassigned,
	}, nil
}
