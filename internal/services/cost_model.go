package services

import (
	"math"
	"mobile-depot-planner/internal/domain"
)

// Evaluation is the monetary total and elapsed time of one configuration.
type Evaluation struct {
	Cost          float64
	Time          float64
	DepotDistance float64
}

// EvaluateDynamic scores a mobile-depot configuration.
//
// The depot pays fuel for its tour plus the driver salary and its service
// rate. Every courier tour pays a salary, a per-stop service rate over its
// travel time and energy over its travel time. Couriers work in parallel, so
// the plan time is the depot travel time plus the slowest courier. Each
// delivery the depot serves itself at a centroid adds one processing slot.
func EvaluateDynamic(depotTour domain.Tour, routes []domain.CourierRoute, depotStops int, p domain.Parameters) Evaluation {
	depotDistance := depotTour.Length()
	cost := p.FuelRateMobStorage*p.FuelCost*depotDistance + p.DriverSalary + p.MobStorageRate

	slowest := 0.0
	for _, r := range routes {
		travel := r.Tour.Length() / p.CourierScooterSpeed
		stops := float64(r.StopCount)

		cost += p.CourierSalary +
			stops*p.CourierScooterRate*travel +
			p.EnergyConsumption*p.EnergyConsumptionCost*travel
		slowest = math.Max(slowest, travel+stops*p.OrderProcessingTime)
	}

	elapsed := depotDistance/p.MobStorageSpeed + slowest + float64(depotStops)*p.OrderProcessingTime

	return Evaluation{
		Cost:          RoundCents(cost),
		Time:          elapsed,
		DepotDistance: depotDistance,
	}
}

// EvaluateStatic scores a car fleet dispatched straight from the depot.
//
// Cars pay fuel over the fleet distance; every courier of the fleet is paid a
// driver salary and the fleet pays one car service rate. Plan time is the
// slowest car, driving at the depot vehicle speed.
func EvaluateStatic(routes []domain.CourierRoute, p domain.Parameters) Evaluation {
	fleetDistance := 0.0
	slowest := 0.0
	for _, r := range routes {
		d := r.Tour.Length()
		fleetDistance += d
		slowest = math.Max(slowest, d/p.MobStorageSpeed+float64(r.StopCount)*p.OrderProcessingTime)
	}

	cost := p.FuelRateCourierCar*p.FuelCost*fleetDistance +
		p.DriverSalary*float64(p.MaxCourierCount) +
		p.CourierCarRate

	return Evaluation{Cost: RoundCents(cost), Time: slowest}
}

// RoundCents rounds half up to two decimal places.
func RoundCents(v float64) float64 {
	return math.Floor(v*100+0.5) / 100
}
