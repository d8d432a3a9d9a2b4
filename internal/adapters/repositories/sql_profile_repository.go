package repositories

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"mobile-depot-planner/internal/domain"
	"mobile-depot-planner/internal/platform/obs"
	"strings"
	"time"
)

// SQLProfileRepository stores parameter profiles as JSON documents in
// parameter_profiles. It serves both SQLite and Postgres.
type SQLProfileRepository struct {
	DB      *sql.DB
	Dialect Dialect
}

func NewSQLProfileRepository(db *sql.DB, dialect Dialect) *SQLProfileRepository {
	return &SQLProfileRepository{DB: db, Dialect: dialect}
}

// rebind rewrites ? placeholders to $n for Postgres.
func (s *SQLProfileRepository) rebind(q string) string {
	if s.Dialect != Postgres {
		return q
	}

	var b strings.Builder
	n := 0
	for _, r := range q {
		if r == '?' {
			n++
			fmt.Fprintf(&b, "$%d", n)
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

func (s *SQLProfileRepository) GetProfile(ctx context.Context, name string) (_ domain.Parameters, err error) {
	defer obs.Time(ctx, "profiles.get")(&err)

	if s.DB == nil {
		return domain.Parameters{}, errors.New("profile repository: DB is nil")
	}

	q := s.rebind(`
	SELECT params
	FROM parameter_profiles
	WHERE name = ?;
	`)

	var raw string
	if err := s.DB.QueryRowContext(ctx, q, name).Scan(&raw); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Parameters{}, fmt.Errorf("get profile %q: %w", name, domain.ErrProfileNotFound)
		}
		return domain.Parameters{}, fmt.Errorf("get profile %q: query: %w", name, err)
	}

	var p domain.Parameters
	if err := json.Unmarshal([]byte(raw), &p); err != nil {
		return domain.Parameters{}, fmt.Errorf("get profile %q: decode params: %w", name, err)
	}
	return p, nil
}

// Return all profiles ordered by name.
func (s *SQLProfileRepository) ListProfiles(ctx context.Context) (_ []domain.Profile, err error) {
	defer obs.Time(ctx, "profiles.list")(&err)

	if s.DB == nil {
		return nil, errors.New("profile repository: DB is nil")
	}

	q := `
	SELECT
		name,
		params
	FROM parameter_profiles
	ORDER BY name;
	`
	rows, err := s.DB.QueryContext(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("list profiles: query parameter_profiles table: %w", err)
	}
	defer rows.Close()

	profiles := make([]domain.Profile, 0, 8)
	for rows.Next() {
		var name, raw string
		if err := rows.Scan(&name, &raw); err != nil {
			return nil, fmt.Errorf("list profiles: scan row: %w", err)
		}

		var p domain.Parameters
		if err := json.Unmarshal([]byte(raw), &p); err != nil {
			return nil, fmt.Errorf("list profiles: decode %q: %w", name, err)
		}
		profiles = append(profiles, domain.Profile{Name: name, Params: p})
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list profiles: row iteration: %w", err)
	}

	return profiles, nil
}

// Insert or replace a profile after validating its parameters.
func (s *SQLProfileRepository) SaveProfile(ctx context.Context, profile domain.Profile) (err error) {
	defer obs.Time(ctx, "profiles.save")(&err)

	if s.DB == nil {
		return errors.New("profile repository: DB is nil")
	}

	name := strings.TrimSpace(profile.Name)
	if name == "" {
		return fmt.Errorf("save profile: name must not be empty: %w", domain.ErrInvalidInput)
	}
	if err := profile.Params.Validate(); err != nil {
		return fmt.Errorf("save profile %q: %w", name, err)
	}

	raw, err := json.Marshal(profile.Params)
	if err != nil {
		return fmt.Errorf("save profile %q: encode params: %w", name, err)
	}

	q := s.rebind(`
	INSERT INTO parameter_profiles (name, params, updated_at)
	VALUES (?, ?, ?)
	ON CONFLICT (name) DO UPDATE SET
		params = excluded.params,
		updated_at = excluded.updated_at;
	`)

	now := time.Now().UTC().Format(time.RFC3339)
	if _, err := s.DB.ExecContext(ctx, q, name, string(raw), now); err != nil {
		return fmt.Errorf("save profile %q: upsert: %w", name, err)
	}

	return nil
}
