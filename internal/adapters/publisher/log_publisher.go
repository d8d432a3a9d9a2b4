package publisher

import (
	"context"
	"mobile-depot-planner/internal/platform/obs"
	"mobile-depot-planner/internal/ports"

	"github.com/sirupsen/logrus"
)

// LogPublisher only logs plan summaries. It is used when no stream is
// configured.
type LogPublisher struct{}

func (LogPublisher) Publish(ctx context.Context, pub ports.Publication) error {
	plan := pub.Plan
	obs.Logger(ctx).WithFields(logrus.Fields{
		"plan_id":       plan.ID,
		"mode":          plan.Mode,
		"cost":          plan.TotalCost,
		"hours":         plan.TotalTime,
		"couriers":      len(plan.CourierRoutes),
		"request_bytes": len(pub.RequestData),
	}).Info("plan accepted")
	return nil
}
