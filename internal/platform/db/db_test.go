package db

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpenSQLite(t *testing.T) {
	conn, err := Open(context.Background(), "sqlite", ":memory:")
	require.NoError(t, err)
	defer conn.Close()

	var one int
	require.NoError(t, conn.QueryRow("SELECT 1").Scan(&one))
	assert.Equal(t, 1, one)
}

func TestOpenUnknownBackend(t *testing.T) {
	_, err := Open(context.Background(), "oracle", "")
	assert.Error(t, err)

	name, err := DriverName("postgres")
	require.NoError(t, err)
	assert.Equal(t, "pgx", name)
}
