package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mobile-depot-planner/internal/adapters/geojson"
	"mobile-depot-planner/internal/api/dto"
	"mobile-depot-planner/internal/domain"
	"mobile-depot-planner/internal/ports"
	"mobile-depot-planner/internal/services"
	"net/http"
	"strings"
)

const maxPlanBody = 8 << 20

type PlanHandler struct {
	Profiles  ports.ProfileRepository
	Publisher ports.PlanPublisher
	Search    services.SearchOptions
}

// Plan decodes a planning request, runs the requested models and renders
// each accepted plan as GeoJSON.
func (h *PlanHandler) Plan(w http.ResponseWriter, r *http.Request) {
	if !allow(w, r, http.MethodPost) {
		return
	}

	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxPlanBody))
	defer r.Body.Close()
	if err != nil {
		writeError(w, r, http.StatusRequestEntityTooLarge, "request body too large")
		return
	}

	var req dto.PlanRequest
	dec := json.NewDecoder(bytes.NewReader(body))
	dec.DisallowUnknownFields()

	if err := dec.Decode(&req); err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid json body")
		return
	}
	if err := dec.Decode(&struct{}{}); err != io.EOF {
		writeError(w, r, http.StatusBadRequest, "body must contain only one JSON object")
		return
	}
	if len(req.GeoJSON) == 0 {
		writeError(w, r, http.StatusBadRequest, "geoJson is required")
		return
	}

	points, err := geojson.DecodePoints(req.GeoJSON)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	params, err := h.resolveParameters(r.Context(), req)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	orders := make([]domain.Order, 0, len(req.Orders))
	for _, o := range req.Orders {
		orders = append(orders, domain.Order{ID: o.ID, Volume: o.Volume})
	}

	search := h.Search
	if req.Seed != nil {
		search.Seed = *req.Seed
	}

	set, err := services.PlanDeliveries(r.Context(), services.PlanDeliveriesRequest{
		Points: points,
		Orders: orders,
		Params: params,
		Run:    strings.TrimSpace(req.Mode),
		Search: search,

		RequestData: body,
	}, h.Publisher)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	res := dto.PlanResponse{RequestData: body}
	if p := set.Dynamic; p != nil {
		mp := geojson.PlanParameters(p)
		res.DynamicModel = geojson.PlanFeatures(p)
		res.DynamicModelParameters = &mp
		res.DynamicPlanID = p.ID
	}
	if p := set.Static; p != nil {
		mp := geojson.PlanParameters(p)
		res.StaticModel = geojson.PlanFeatures(p)
		res.StaticModelParameters = &mp
		res.StaticPlanID = p.ID
	}

	writeJSON(w, r, http.StatusOK, res)
}

// resolveParameters layers request parameters over the named profile, or
// over the defaults when no profile is given.
func (h *PlanHandler) resolveParameters(ctx context.Context, req dto.PlanRequest) (domain.Parameters, error) {
	params := domain.DefaultParameters()

	if name := strings.TrimSpace(req.Profile); name != "" {
		if h.Profiles == nil {
			return params, fmt.Errorf("profile %q: no profile store configured: %w", name, domain.ErrInvalidInput)
		}
		p, err := h.Profiles.GetProfile(ctx, name)
		if errors.Is(err, domain.ErrProfileNotFound) {
			return params, fmt.Errorf("%w: %w", domain.ErrInvalidInput, err)
		}
		if err != nil {
			return params, err
		}
		params = p
	}

	if len(req.Parameters) > 0 {
		if err := json.Unmarshal(req.Parameters, &params); err != nil {
			return params, fmt.Errorf("parameters: %v: %w", err, domain.ErrInvalidInput)
		}
	}

	return params, nil
}
