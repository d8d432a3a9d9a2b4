package domain

import (
	"fmt"
	"math"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/planar"
	"gonum.org/v1/gonum/stat"
)

// Immutable planar coordinates (x, y).
// Equality is an exact coordinate match; no tolerance is applied.
type Point struct {
	X float64
	Y float64
}

// Return coordinates as [x, y] for external format compatibility.
func (p Point) ToList() []float64 { return []float64{p.X, p.Y} }

// Return the point as an orb geometry.
func (p Point) Orb() orb.Point { return orb.Point{p.X, p.Y} }

// Distance returns the planar Euclidean distance between a and b.
func Distance(a, b Point) float64 {
	return planar.Distance(a.Orb(), b.Orb())
}

// Nearest returns the index of the candidate closest to from, skipping the
// indexes marked in visited (visited may be nil). The first minimal candidate
// in slice order wins; when no distance is finite the first unvisited
// candidate is taken. It returns -1 only when no candidate is left.
func Nearest(from Point, candidates []Point, visited []bool) (int, float64) {
	best, first := -1, -1
	bestDistance := math.Inf(1)
	firstDistance := math.Inf(1)

	for i, c := range candidates {
		if visited != nil && visited[i] {
			continue
		}
		d := Distance(from, c)
		if first < 0 {
			first, firstDistance = i, d
		}
		if d < bestDistance {
			best = i
			bestDistance = d
		}
	}

	if best < 0 {
		return first, firstDistance
	}
	return best, bestDistance
}

// MaxCoordinate bounds accepted coordinates so that every squared distance
// stays finite.
const MaxCoordinate = 1e12

// ValidatePoints rejects non-finite coordinates and coordinates beyond
// MaxCoordinate.
func ValidatePoints(points []Point) error {
	for i, p := range points {
		for _, v := range [2]float64{p.X, p.Y} {
			if math.IsNaN(v) || math.IsInf(v, 0) || math.Abs(v) > MaxCoordinate {
				return fmt.Errorf("point %d (%v, %v): coordinates must be finite and within ±%g: %w", i, p.X, p.Y, float64(MaxCoordinate), ErrInvalidInput)
			}
		}
	}
	return nil
}

// Centroid returns the arithmetic mean of the points.
// The centroid of an empty set is the origin.
func Centroid(points []Point) Point {
	if len(points) == 0 {
		return Point{}
	}

	xs := make([]float64, len(points))
	ys := make([]float64, len(points))
	for i, p := range points {
		xs[i] = p.X
		ys[i] = p.Y
	}

	return Point{X: stat.Mean(xs, nil), Y: stat.Mean(ys, nil)}
}
