// Package geojson converts between GeoJSON documents and planner types.
package geojson

import (
	"encoding/json"
	"fmt"
	"mobile-depot-planner/internal/domain"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
)

// Feature types and colours of rendered plans.
const (
	DepotRouteType   = "route"
	CourierRouteType = "courier_route"
	DepotRouteColor  = "red"
	CourierColor     = "#000000"
)

// StaticPalette colours static courier routes in turn.
var StaticPalette = []string{"#FF5733", "#33FF57", "#5733FF", "#33FFFF", "#FF33FF"}

// DecodePoints parses a FeatureCollection of Point features. The first
// feature is the depot.
func DecodePoints(data []byte) ([]domain.Point, error) {
	fc, err := geojson.UnmarshalFeatureCollection(data)
	if err != nil {
		return nil, fmt.Errorf("decode points: %v: %w", err, domain.ErrInvalidInput)
	}
	return FromFeatureCollection(fc)
}

// FromFeatureCollection extracts points in feature order.
func FromFeatureCollection(fc *geojson.FeatureCollection) ([]domain.Point, error) {
	if fc == nil || len(fc.Features) == 0 {
		return nil, fmt.Errorf("decode points: feature collection is empty: %w", domain.ErrInvalidInput)
	}

	points := make([]domain.Point, 0, len(fc.Features))
	for i, f := range fc.Features {
		p, ok := f.Geometry.(orb.Point)
		if !ok {
			return nil, fmt.Errorf("decode points: feature %d is %T, want Point: %w", i, f.Geometry, domain.ErrInvalidInput)
		}
		points = append(points, domain.Point{X: p[0], Y: p[1]})
	}

	if err := domain.ValidatePoints(points); err != nil {
		return nil, fmt.Errorf("decode points: %w", err)
	}
	return points, nil
}

func lineFeature(t domain.Tour, kind, color string) *geojson.Feature {
	line := make(orb.LineString, 0, len(t))
	for _, p := range t {
		line = append(line, p.Orb())
	}

	f := geojson.NewFeature(line)
	f.Properties["type"] = kind
	f.Properties["color"] = color
	return f
}

// PlanFeatures renders a plan as line features: the depot tour first (dynamic
// plans only), then every courier tour.
func PlanFeatures(plan *domain.PlanResult) *geojson.FeatureCollection {
	fc := geojson.NewFeatureCollection()

	if plan.Mode == domain.ModeDynamic && len(plan.DepotTour) > 0 {
		fc.Append(lineFeature(plan.DepotTour, DepotRouteType, DepotRouteColor))
	}

	for i, r := range plan.CourierRoutes {
		color := CourierColor
		if plan.Mode == domain.ModeStatic {
			color = StaticPalette[(i+1)%len(StaticPalette)]
		}
		fc.Append(lineFeature(r.Tour, CourierRouteType, color))
	}

	return fc
}

// ModelParameters is the summary published next to each rendered plan.
type ModelParameters struct {
	TotalExpenses float64          `json:"total_expenses"`
	TotalTime     domain.ClockTime `json:"total_time"`
	CouriersCount int              `json:"couriers_count"`
	ClusterCount  int              `json:"cluster_count,omitempty"`
	Radius        float64          `json:"radius,omitempty"`
	Unassigned    []int            `json:"unassigned_orders,omitempty"`
}

func PlanParameters(plan *domain.PlanResult) ModelParameters {
	return ModelParameters{
		TotalExpenses: plan.TotalCost,
		TotalTime:     plan.Clock(),
		CouriersCount: plan.CourierCount,
		ClusterCount:  plan.ClusterCount,
		Radius:        plan.Radius,
		Unassigned:    plan.Unassigned,
	}
}

// MarshalPlan encodes one plan as
// {"<mode>_model": ..., "<mode>_model_parameters": ..., "request_data": ...}.
// requestData is echoed verbatim and omitted when empty.
func MarshalPlan(plan *domain.PlanResult, requestData json.RawMessage) ([]byte, error) {
	doc := map[string]any{
		string(plan.Mode) + "_model":            PlanFeatures(plan),
		string(plan.Mode) + "_model_parameters": PlanParameters(plan),
		"plan_id":                               plan.ID,
	}
	if len(requestData) > 0 {
		doc["request_data"] = requestData
	}

	b, err := json.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("marshal plan %s: %w", plan.ID, err)
	}
	return b, nil
}
