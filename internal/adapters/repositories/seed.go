package repositories

import (
	"context"
	"fmt"
	"mobile-depot-planner/internal/domain"
	"mobile-depot-planner/internal/ports"
	"os"

	"gopkg.in/yaml.v3"
)

// LoadProfiles reads and validates a YAML profile file.
func LoadProfiles(path string) ([]domain.Profile, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("load profiles: read %q: %w", path, err)
	}
	return ParseProfiles(b)
}

// ParseProfiles decodes a YAML profile document:
//
//	profiles:
//	  - name: city
//	    parameters:
//	      maxCountCouriers: 6
//
// Fields missing from a profile keep their DefaultParameters value.
func ParseProfiles(data []byte) ([]domain.Profile, error) {
	var raw struct {
		Profiles []struct {
			Name   string    `yaml:"name"`
			Params yaml.Node `yaml:"parameters"`
		} `yaml:"profiles"`
	}
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parse profiles: %v: %w", err, domain.ErrInvalidInput)
	}

	out := make([]domain.Profile, 0, len(raw.Profiles))
	for i, item := range raw.Profiles {
		if item.Name == "" {
			return nil, fmt.Errorf("parse profiles: entry %d has no name: %w", i+1, domain.ErrInvalidInput)
		}

		p := domain.DefaultParameters()
		if !item.Params.IsZero() {
			if err := item.Params.Decode(&p); err != nil {
				return nil, fmt.Errorf("parse profiles: %q: %v: %w", item.Name, err, domain.ErrInvalidInput)
			}
		}
		if err := p.Validate(); err != nil {
			return nil, fmt.Errorf("parse profiles: %q: %w", item.Name, err)
		}
		out = append(out, domain.Profile{Name: item.Name, Params: p})
	}

	return out, nil
}

// Populate a profile store from a YAML file and return how many profiles
// were written.
func SeedFromYAML(ctx context.Context, repo ports.ProfileRepository, path string) (int, error) {
	profiles, err := LoadProfiles(path)
	if err != nil {
		return 0, fmt.Errorf("seed profiles: %w", err)
	}

	for _, p := range profiles {
		if err := repo.SaveProfile(ctx, p); err != nil {
			return 0, fmt.Errorf("seed profiles: %w", err)
		}
	}

	return len(profiles), nil
}
