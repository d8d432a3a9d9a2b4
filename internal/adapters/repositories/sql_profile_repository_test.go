package repositories

import (
	"context"
	"database/sql"
	"mobile-depot-planner/internal/domain"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"
)

func openTestDB(t *testing.T) *sql.DB {
	t.Helper()

	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	// One connection keeps the in-memory database alive between statements.
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = db.Close() })

	require.NoError(t, InitSchema(context.Background(), db))
	return db
}

func TestSQLProfileRepositoryRoundTrip(t *testing.T) {
	ctx := context.Background()
	repo := NewSQLProfileRepository(openTestDB(t), SQLite)

	city := domain.DefaultParameters()
	city.MaxCourierCount = 8
	require.NoError(t, repo.SaveProfile(ctx, domain.Profile{Name: "city", Params: city}))
	require.NoError(t, repo.SaveProfile(ctx, domain.Profile{Name: "area", Params: domain.DefaultParameters()}))

	got, err := repo.GetProfile(ctx, "city")
	require.NoError(t, err)
	assert.Equal(t, city, got)

	list, err := repo.ListProfiles(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "area", list[0].Name)
	assert.Equal(t, "city", list[1].Name)
}

func TestSQLProfileRepositoryUpsert(t *testing.T) {
	ctx := context.Background()
	repo := NewSQLProfileRepository(openTestDB(t), SQLite)

	p := domain.DefaultParameters()
	require.NoError(t, repo.SaveProfile(ctx, domain.Profile{Name: "x", Params: p}))

	p.FuelCost = 61.5
	require.NoError(t, repo.SaveProfile(ctx, domain.Profile{Name: "x", Params: p}))

	got, err := repo.GetProfile(ctx, "x")
	require.NoError(t, err)
	assert.Equal(t, 61.5, got.FuelCost)

	list, err := repo.ListProfiles(ctx)
	require.NoError(t, err)
	assert.Len(t, list, 1)
}

func TestSQLProfileRepositoryErrors(t *testing.T) {
	ctx := context.Background()
	repo := NewSQLProfileRepository(openTestDB(t), SQLite)

	_, err := repo.GetProfile(ctx, "missing")
	assert.ErrorIs(t, err, domain.ErrProfileNotFound)

	bad := domain.DefaultParameters()
	bad.MaxTime = 0
	assert.ErrorIs(t, repo.SaveProfile(ctx, domain.Profile{Name: "bad", Params: bad}), domain.ErrInvalidInput)
	assert.ErrorIs(t, repo.SaveProfile(ctx, domain.Profile{Name: "  ", Params: domain.DefaultParameters()}), domain.ErrInvalidInput)

	_, err = (&SQLProfileRepository{}).ListProfiles(ctx)
	assert.Error(t, err)
}

func TestRebind(t *testing.T) {
	pg := &SQLProfileRepository{Dialect: Postgres}
	assert.Equal(t, "VALUES ($1, $2, $3)", pg.rebind("VALUES (?, ?, ?)"))

	lite := &SQLProfileRepository{Dialect: SQLite}
	assert.Equal(t, "VALUES (?, ?)", lite.rebind("VALUES (?, ?)"))
}

func TestDialectFor(t *testing.T) {
	d, err := DialectFor("pgx")
	require.NoError(t, err)
	assert.Equal(t, Postgres, d)

	d, err = DialectFor("sqlite")
	require.NoError(t, err)
	assert.Equal(t, SQLite, d)

	_, err = DialectFor("mysql")
	assert.Error(t, err)
}
