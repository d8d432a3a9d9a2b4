package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClusterDepotStops(t *testing.T) {
	assert.Equal(t, 1, NewCluster([]Point{{4, 4}}).DepotStops())
	assert.Equal(t, 1, NewCluster([]Point{{-1, 0}, {0, 0}, {1, 0}}).DepotStops())
	assert.Equal(t, 0, NewCluster([]Point{{-1, 0}, {1, 0}}).DepotStops())
	assert.Equal(t, 3, NewCluster([]Point{{2, 2}, {2, 2}, {2, 2}}).DepotStops())
}
