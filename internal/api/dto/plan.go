package dto

import (
	"encoding/json"
	"mobile-depot-planner/internal/adapters/geojson"

	orbjson "github.com/paulmach/orb/geojson"
)

type OrderRequest struct {
	ID     int     `json:"id"`
	Volume float64 `json:"volume"`
}

// PlanRequest is the body of POST /plans.
//
// Parameters may be partial: unset fields come from Profile, or from the
// built-in defaults when no profile is named.
type PlanRequest struct {
	GeoJSON    json.RawMessage `json:"geoJson"`
	Parameters json.RawMessage `json:"parameters,omitempty"`
	Profile    string          `json:"profile,omitempty"`
	Orders     []OrderRequest  `json:"orders,omitempty"`
	Mode       string          `json:"mode,omitempty"`
	Seed       *int64          `json:"seed,omitempty"`
}

type PlanResponse struct {
	DynamicModel           *orbjson.FeatureCollection `json:"dynamic_model,omitempty"`
	DynamicModelParameters *geojson.ModelParameters   `json:"dynamic_model_parameters,omitempty"`
	DynamicPlanID          string                     `json:"dynamic_plan_id,omitempty"`

	StaticModel           *orbjson.FeatureCollection `json:"static_model,omitempty"`
	StaticModelParameters *geojson.ModelParameters   `json:"static_model_parameters,omitempty"`
	StaticPlanID          string                     `json:"static_plan_id,omitempty"`

	RequestData json.RawMessage `json:"request_data,omitempty"`
}
