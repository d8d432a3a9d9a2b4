package services

import (
	"mobile-depot-planner/internal/domain"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEvaluateDynamicDepotOnly(t *testing.T) {
	p := domain.DefaultParameters()
	depot := domain.Point{X: 3, Y: 3}

	ev := EvaluateDynamic(domain.Tour{depot, depot}, nil, 0, p)

	assert.Equal(t, p.DriverSalary+p.MobStorageRate, ev.Cost)
	assert.Zero(t, ev.Time)
	assert.Zero(t, ev.DepotDistance)
}

func TestEvaluateDynamic(t *testing.T) {
	p := domain.DefaultParameters()
	depotTour := domain.Tour{{X: 0, Y: 0}, {X: 6, Y: 0}, {X: 0, Y: 0}}
	routes := []domain.CourierRoute{{
		Tour:      domain.Tour{{X: 6, Y: 0}, {X: 15, Y: 0}, {X: 6, Y: 0}},
		StopCount: 1,
	}}

	ev := EvaluateDynamic(depotTour, routes, 0, p)

	// 60 fuel + 3800 + 400, then 2500 + 10*1h + 0.5*6*1h for the courier.
	assert.Equal(t, 6773.0, ev.Cost)
	assert.InDelta(t, 12.0/60+1+0.5, ev.Time, 1e-12)
	assert.InDelta(t, 12.0, ev.DepotDistance, 1e-12)

	withSingletons := EvaluateDynamic(depotTour, routes, 2, p)
	assert.InDelta(t, ev.Time+2*p.OrderProcessingTime, withSingletons.Time, 1e-12)
	assert.Equal(t, ev.Cost, withSingletons.Cost)
}

func TestEvaluateDynamicGrowsWithDistance(t *testing.T) {
	p := domain.DefaultParameters()
	route := func(reach float64) []domain.CourierRoute {
		return []domain.CourierRoute{{Tour: domain.Tour{{X: 0, Y: 0}, {X: reach, Y: 0}, {X: 0, Y: 0}}, StopCount: 1}}
	}

	near := EvaluateDynamic(domain.Tour{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 0, Y: 0}}, route(1), 0, p)
	farDepot := EvaluateDynamic(domain.Tour{{X: 0, Y: 0}, {X: 5, Y: 0}, {X: 0, Y: 0}}, route(1), 0, p)
	farCourier := EvaluateDynamic(domain.Tour{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 0, Y: 0}}, route(5), 0, p)

	assert.Greater(t, farDepot.Cost, near.Cost)
	assert.Greater(t, farDepot.Time, near.Time)
	assert.Greater(t, farCourier.Cost, near.Cost)
	assert.Greater(t, farCourier.Time, near.Time)
}

func TestEvaluateDynamicGrowsWithFuelCost(t *testing.T) {
	p := domain.DefaultParameters()
	depotTour := domain.Tour{{X: 0, Y: 0}, {X: 6, Y: 0}, {X: 0, Y: 0}}
	routes := []domain.CourierRoute{{Tour: domain.Tour{{X: 6, Y: 0}, {X: 9, Y: 0}, {X: 6, Y: 0}}, StopCount: 1}}

	cheap := EvaluateDynamic(depotTour, routes, 1, p)
	p.FuelCost = 80
	dear := EvaluateDynamic(depotTour, routes, 1, p)

	assert.Greater(t, dear.Cost, cheap.Cost)
	assert.Equal(t, cheap.Time, dear.Time)
}

func TestEvaluateStatic(t *testing.T) {
	p := domain.DefaultParameters()
	routes := []domain.CourierRoute{
		{Tour: domain.Tour{{X: 0, Y: 0}, {X: 5, Y: 0}, {X: 0, Y: 0}}, StopCount: 2},
		{Tour: domain.Tour{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 0, Y: 0}}, StopCount: 1},
	}

	ev := EvaluateStatic(routes, p)

	// 0.08*50*30 fuel + 3800*5 salaries + 300 service.
	assert.Equal(t, 19420.0, ev.Cost)
	assert.InDelta(t, 10.0/60+2*0.5, ev.Time, 1e-12)
}

func TestRoundCents(t *testing.T) {
	assert.Equal(t, 0.13, RoundCents(0.125))
	assert.Equal(t, 1.23, RoundCents(1.2349))
	assert.Equal(t, 42.0, RoundCents(42))
}
