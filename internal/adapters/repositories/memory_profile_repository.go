package repositories

import (
	"context"
	"fmt"
	"maps"
	"mobile-depot-planner/internal/domain"
	"slices"
	"strings"
	"sync"
)

// MemoryProfileRepository keeps profiles in process memory. It is used when
// no database is configured.
type MemoryProfileRepository struct {
	mu       sync.RWMutex
	profiles map[string]domain.Parameters
}

// NewMemoryProfileRepository returns a store preloaded with the built-in
// "default" profile.
func NewMemoryProfileRepository() *MemoryProfileRepository {
	return &MemoryProfileRepository{
		profiles: map[string]domain.Parameters{"default": domain.DefaultParameters()},
	}
}

func (m *MemoryProfileRepository) GetProfile(_ context.Context, name string) (domain.Parameters, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	p, ok := m.profiles[name]
	if !ok {
		return domain.Parameters{}, fmt.Errorf("get profile %q: %w", name, domain.ErrProfileNotFound)
	}
	return p, nil
}

func (m *MemoryProfileRepository) ListProfiles(_ context.Context) ([]domain.Profile, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]domain.Profile, 0, len(m.profiles))
	for _, name := range slices.Sorted(maps.Keys(m.profiles)) {
		out = append(out, domain.Profile{Name: name, Params: m.profiles[name]})
	}
	return out, nil
}

func (m *MemoryProfileRepository) SaveProfile(_ context.Context, profile domain.Profile) error {
	name := strings.TrimSpace(profile.Name)
	if name == "" {
		return fmt.Errorf("save profile: name must not be empty: %w", domain.ErrInvalidInput)
	}
	if err := profile.Params.Validate(); err != nil {
		return fmt.Errorf("save profile %q: %w", name, err)
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.profiles[name] = profile.Params
	return nil
}
