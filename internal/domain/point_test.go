package domain

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDistance(t *testing.T) {
	assert.InDelta(t, 5.0, Distance(Point{0, 0}, Point{3, 4}), 1e-12)
	assert.Equal(t, 0.0, Distance(Point{1.5, -2}, Point{1.5, -2}))
}

func TestNearestSkipsVisitedAndKeepsFirstTie(t *testing.T) {
	candidates := []Point{{2, 0}, {-1, 0}, {1, 0}, {0, 1}}

	idx, d := Nearest(Point{0, 0}, candidates, nil)
	assert.Equal(t, 1, idx, "first of the equidistant candidates wins")
	assert.InDelta(t, 1.0, d, 1e-12)

	idx, _ = Nearest(Point{0, 0}, candidates, []bool{false, true, true, false})
	assert.Equal(t, 3, idx)

	idx, _ = Nearest(Point{0, 0}, candidates, []bool{true, true, true, true})
	assert.Equal(t, -1, idx)
}

func TestCentroid(t *testing.T) {
	c := Centroid([]Point{{0, 0}, {2, 0}, {2, 2}, {0, 2}})
	assert.InDelta(t, 1.0, c.X, 1e-12)
	assert.InDelta(t, 1.0, c.Y, 1e-12)

	assert.Equal(t, Point{}, Centroid(nil))
}

func TestClusterRadiusAndSingleton(t *testing.T) {
	c := NewCluster([]Point{{0, 0}, {4, 0}})
	assert.Equal(t, Point{2, 0}, c.Centroid)
	assert.InDelta(t, 2.0, c.Radius(), 1e-12)
	assert.False(t, c.IsSingleton())

	single := NewCluster([]Point{{7, 7}})
	assert.True(t, single.IsSingleton())
	assert.Equal(t, 0.0, single.Radius())
}

func TestTourLengthAndClosed(t *testing.T) {
	tour := Tour{{0, 0}, {3, 4}, {0, 0}}
	assert.InDelta(t, 10.0, tour.Length(), 1e-12)
	assert.True(t, tour.Closed())

	assert.False(t, Tour{{0, 0}, {1, 1}}.Closed())
	assert.False(t, Tour{}.Closed())
	assert.Equal(t, 0.0, Tour{{5, 5}}.Length())
}

func TestNearestWithOverflowingDistances(t *testing.T) {
	candidates := []Point{{1e308, 0}, {-1e308, 0}}

	idx, _ := Nearest(Point{0, 1e308}, candidates, nil)
	assert.Equal(t, 0, idx)

	idx, _ = Nearest(Point{0, 1e308}, candidates, []bool{true, false})
	assert.Equal(t, 1, idx)
}

func TestValidatePoints(t *testing.T) {
	assert.NoError(t, ValidatePoints([]Point{{0, 0}, {-MaxCoordinate, MaxCoordinate}}))

	for _, p := range []Point{{math.NaN(), 0}, {0, math.Inf(1)}, {1e200, 0}, {0, -MaxCoordinate * 2}} {
		assert.ErrorIs(t, ValidatePoints([]Point{{1, 1}, p}), ErrInvalidInput, "point %v", p)
	}
}
