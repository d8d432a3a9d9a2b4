package domain

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCourierVisitAccumulatesDistance(t *testing.T) {
	c := NewCourier(2, Point{0, 0})
	c.Deliver(Point{3, 4})
	c.Visit(Point{0, 0})

	assert.Equal(t, 2, c.ID)
	assert.Equal(t, 1, c.Deliveries)
	assert.InDelta(t, 10.0, c.Load, 1e-12)
	assert.Equal(t, Tour{{0, 0}, {3, 4}, {0, 0}}, c.Tour)
	assert.True(t, c.EndsAt(Point{0, 0}))
	assert.False(t, c.EndsAt(Point{3, 4}))
}

func TestCourierCarryRespectsCapacity(t *testing.T) {
	c := NewCourier(0, Point{})

	require.NoError(t, c.Carry(Order{ID: 1, Volume: 6, Pickup: Point{1, 1}}, 10))
	require.NoError(t, c.Carry(Order{ID: 2, Volume: 4, Pickup: Point{2, 2}}, 10))

	err := c.Carry(Order{ID: 3, Volume: 0.5}, 10)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrOverCapacity))

	assert.Equal(t, 10.0, c.Load)
	assert.Equal(t, []Point{{1, 1}, {2, 2}}, c.Pickups())
}

func TestBindOrders(t *testing.T) {
	points := []Point{{1, 0}, {2, 0}, {3, 0}}

	bound, err := BindOrders([]Order{{ID: 10, Volume: 1}, {ID: 11, Volume: 2}}, points)
	require.NoError(t, err)
	assert.Equal(t, Point{1, 0}, bound[0].Pickup)
	assert.Equal(t, Point{2, 0}, bound[1].Pickup)

	_, err = BindOrders(make([]Order, 4), points)
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = BindOrders([]Order{{ID: 1, Volume: -1}}, points)
	assert.ErrorIs(t, err, ErrInvalidInput)
}
