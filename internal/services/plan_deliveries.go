package services

import (
	"context"
	"errors"
	"fmt"
	"mobile-depot-planner/internal/domain"
	"mobile-depot-planner/internal/platform/obs"
	"mobile-depot-planner/internal/ports"
	"strings"

	"golang.org/x/sync/errgroup"
)

// Requested planning modes.
const (
	RunAuto    = ""
	RunDynamic = "dynamic"
	RunStatic  = "static"
	RunBoth    = "both"
)

type PlanDeliveriesRequest struct {
	// Points lists the depot first, then the delivery points.
	Points []domain.Point
	// Orders bind positionally to Points[1:]; required for static runs.
	Orders []domain.Order
	Params domain.Parameters
	// Run is one of RunAuto, RunDynamic, RunStatic or RunBoth. RunAuto runs the
	// dynamic search and adds the static plan when orders are supplied.
	Run    string
	Search SearchOptions

	// RequestData is the raw client request, echoed with every published plan.
	RequestData []byte
}

// PlanSet holds the plans produced by one request. A mode that was not
// requested is nil.
type PlanSet struct {
	Dynamic *domain.PlanResult
	Static  *domain.PlanResult
}

// resolveRun returns which modes a request asks for.
func resolveRun(req PlanDeliveriesRequest) (dynamic, static bool, err error) {
	switch strings.ToLower(strings.TrimSpace(req.Run)) {
	case RunAuto:
		return true, len(req.Orders) > 0, nil
	case RunDynamic:
		return true, false, nil
	case RunStatic:
		return false, true, nil
	case RunBoth:
		return true, true, nil
	default:
		return false, false, fmt.Errorf("unknown mode %q: %w", req.Run, domain.ErrInvalidInput)
	}
}

// PlanDeliveries runs the requested planning modes and publishes every
// accepted plan.
//
// Modes run concurrently. If any requested mode fails, the request fails and
// nothing is published; there is no partial result.
func PlanDeliveries(ctx context.Context, req PlanDeliveriesRequest, pub ports.PlanPublisher) (*PlanSet, error) {
	runDynamic, runStatic, err := resolveRun(req)
	if err != nil {
		return nil, fmt.Errorf("plan deliveries: %w", err)
	}
	if runStatic && len(req.Orders) == 0 {
		return nil, fmt.Errorf("plan deliveries: static mode needs orders: %w", domain.ErrInvalidInput)
	}

	set := &PlanSet{}
	g, gctx := errgroup.WithContext(ctx)

	if runDynamic {
		g.Go(func() error {
			defer searchTimer(domain.ModeDynamic)()
			plan, err := Search(gctx, req.Points, req.Params, req.Search)
			recordRun(domain.ModeDynamic, err)
			if err != nil {
				return fmt.Errorf("dynamic: %w", err)
			}
			set.Dynamic = plan
			return nil
		})
	}

	if runStatic {
		g.Go(func() error {
			defer searchTimer(domain.ModeStatic)()
			plan, err := PlanStatic(gctx, req.Points, req.Orders, req.Params)
			recordRun(domain.ModeStatic, err)
			if err != nil {
				return fmt.Errorf("static: %w", err)
			}
			set.Static = plan
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("plan deliveries: %w", err)
	}

	if pub != nil {
		for _, plan := range []*domain.PlanResult{set.Dynamic, set.Static} {
			if plan == nil {
				continue
			}
			if err := pub.Publish(ctx, ports.Publication{Plan: plan, RequestData: req.RequestData}); err != nil {
				obs.PlansPublished.WithLabelValues(string(plan.Mode), "error").Inc()
				return nil, fmt.Errorf("plan deliveries: publish %s plan %s: %w", plan.Mode, plan.ID, err)
			}
			obs.PlansPublished.WithLabelValues(string(plan.Mode), "ok").Inc()
		}
	}

	return set, nil
}

func recordRun(mode domain.Mode, err error) {
	result := "ok"
	switch {
	case err == nil:
	case errors.Is(err, domain.ErrInvalidInput):
		result = "invalid"
	case errors.Is(err, domain.ErrInfeasible):
		result = "infeasible"
	default:
		result = "error"
	}
	obs.PlanRuns.WithLabelValues(string(mode), result).Inc()
}
