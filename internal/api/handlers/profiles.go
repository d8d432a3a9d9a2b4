package handlers

import (
	"encoding/json"
	"mobile-depot-planner/internal/api/dto"
	"mobile-depot-planner/internal/domain"
	"mobile-depot-planner/internal/ports"
	"net/http"
	"strings"
)

// ProfileHandler exposes parameter profile endpoints.
type ProfileHandler struct {
	Repo ports.ProfileRepository
}

func (h *ProfileHandler) List(w http.ResponseWriter, r *http.Request) {
	if !allow(w, r, http.MethodGet) {
		return
	}

	profiles, err := h.Repo.ListProfiles(r.Context())
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	res := dto.ListProfilesResponse{
		Profiles: make([]dto.ProfileResponse, 0, len(profiles)),
	}
	for _, p := range profiles {
		res.Profiles = append(res.Profiles, dto.ProfileResponse{Name: p.Name, Parameters: p.Params})
	}

	writeJSON(w, r, http.StatusOK, res)
}

// Item serves GET and PUT on /profiles/{name}. A PUT body holds the
// parameters; missing fields take their default values.
func (h *ProfileHandler) Item(w http.ResponseWriter, r *http.Request) {
	if !allow(w, r, http.MethodGet, http.MethodPut) {
		return
	}

	name := strings.Trim(strings.TrimPrefix(r.URL.Path, "/profiles/"), "/")
	if name == "" || strings.Contains(name, "/") {
		writeError(w, r, http.StatusNotFound, "profile not found")
		return
	}

	if r.Method == http.MethodGet {
		p, err := h.Repo.GetProfile(r.Context(), name)
		if err != nil {
			writeServiceError(w, r, err)
			return
		}
		writeJSON(w, r, http.StatusOK, dto.ProfileResponse{Name: name, Parameters: p})
		return
	}

	params := domain.DefaultParameters()
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, 1<<20))
	defer r.Body.Close()
	dec.DisallowUnknownFields()
	if err := dec.Decode(&params); err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid json body")
		return
	}

	if err := h.Repo.SaveProfile(r.Context(), domain.Profile{Name: name, Params: params}); err != nil {
		writeServiceError(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, dto.ProfileResponse{Name: name, Parameters: params})
}
