package dto

import "mobile-depot-planner/internal/domain"

type ProfileResponse struct {
	Name       string            `json:"name"`
	Parameters domain.Parameters `json:"parameters"`
}

type ListProfilesResponse struct {
	Profiles []ProfileResponse `json:"profiles"`
}
