package ports

import (
	"context"
	"mobile-depot-planner/internal/domain"
)

// Port: a boundary for reading and storing named parameter presets.
type ProfileRepository interface {
	// Return the parameters stored under name, or domain.ErrProfileNotFound.
	GetProfile(ctx context.Context, name string) (domain.Parameters, error)
	// Return all stored profiles ordered by name.
	ListProfiles(ctx context.Context) ([]domain.Profile, error)
	// Create or replace a profile.
	SaveProfile(ctx context.Context, profile domain.Profile) error
}
