package services

import (
	"mobile-depot-planner/internal/domain"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPackOrdersFirstFitDecreasing(t *testing.T) {
	depot := domain.Point{}
	orders := []domain.Order{
		{ID: 0, Volume: 5, Pickup: domain.Point{X: 1, Y: 0}},
		{ID: 1, Volume: 8, Pickup: domain.Point{X: 2, Y: 0}},
		{ID: 2, Volume: 3, Pickup: domain.Point{X: 3, Y: 0}},
		{ID: 3, Volume: 6, Pickup: domain.Point{X: 4, Y: 0}},
	}

	res, err := PackOrders(depot, orders, 2, 10)
	require.NoError(t, err)

	assert.Equal(t, []int{0}, res.Unassigned)
	require.Len(t, res.Routes, 2)

	assert.Equal(t, 0, res.Routes[0].CourierID)
	assert.Equal(t, 8.0, res.Routes[0].Load)
	assert.Equal(t, 1, res.Routes[0].StopCount)

	assert.Equal(t, 1, res.Routes[1].CourierID)
	assert.Equal(t, 9.0, res.Routes[1].Load)
	assert.Equal(t, 2, res.Routes[1].StopCount)
	assert.Equal(t, domain.Tour{{X: 0, Y: 0}, {X: 3, Y: 0}, {X: 4, Y: 0}, {X: 0, Y: 0}}, res.Routes[1].Tour)

	for _, r := range res.Routes {
		assert.Equal(t, -1, r.Cluster)
		assert.True(t, r.Tour.Closed())
		assert.LessOrEqual(t, r.Load, 10.0)
	}
}

func TestPackOrdersTriesEveryCourier(t *testing.T) {
	orders := []domain.Order{
		{ID: 0, Volume: 7},
		{ID: 1, Volume: 6},
		{ID: 2, Volume: 4},
	}

	// With capacity 9 the last order fits neither courier and is reported.
	res, err := PackOrders(domain.Point{}, orders, 2, 11)
	require.NoError(t, err)
	assert.Empty(t, res.Unassigned)

	res, err = PackOrders(domain.Point{}, orders, 2, 9)
	require.NoError(t, err)
	assert.Equal(t, []int{2}, res.Unassigned)
}

func TestPackOrdersSkipsIdleCouriers(t *testing.T) {
	res, err := PackOrders(domain.Point{}, []domain.Order{{ID: 4, Volume: 1, Pickup: domain.Point{X: 1}}}, 5, 10)
	require.NoError(t, err)
	require.Len(t, res.Routes, 1)
	assert.Equal(t, domain.Tour{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 0, Y: 0}}, res.Routes[0].Tour)
}

func TestPackOrdersRejectsNoCouriers(t *testing.T) {
	_, err := PackOrders(domain.Point{}, nil, 0, 10)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
