package domain

// Mode selects the planning strategy.
type Mode string

const (
	ModeDynamic Mode = "dynamic"
	ModeStatic  Mode = "static"
)

// PlanResult is the accepted plan of one run. It is immutable planning data
// produced once per accepted plan.
//
// Dynamic plans carry the mobile depot tour over cluster centroids together
// with the cluster search coordinates that produced it. Static plans have no
// depot tour and may list orders that could not be placed on any courier.
type PlanResult struct {
	ID            string
	Mode          Mode
	DepotTour     Tour
	CourierRoutes []CourierRoute
	TotalCost     float64
	TotalTime     float64
	CourierCount  int
	ClusterCount  int
	Radius        float64
	Unassigned    []int
}

// Return the total time split into hours, minutes and seconds.
func (p *PlanResult) Clock() ClockTime { return ClockFromHours(p.TotalTime) }
