package services

import (
	"fmt"
	"math"
	"math/rand"
	"mobile-depot-planner/internal/domain"
)

const (
	// MinClusterCount is the smallest partition size the clusterer uses.
	MinClusterCount = 2
	// MaxSplitDepth bounds recursive re-clustering of over-wide clusters.
	MaxSplitDepth = 32

	maxLloydIterations = 1000
	radiusTolerance    = 1e-9
)

// ClusterPoints partitions points into radius-bounded clusters.
//
// The points are split with k-means++ (k = max(2, k)) driven by a generator
// seeded with seed, so identical inputs always give identical partitions.
// Any cluster whose farthest member lies beyond maxRadius from its centroid is
// discarded and its members are re-clustered with the same k and seed, until
// every cluster fits or holds a single point. Fewer points than k yield one
// cluster per point. Exceeding MaxSplitDepth reports ErrDegenerateGeometry.
func ClusterPoints(points []domain.Point, k int, maxRadius float64, seed int64) ([]domain.Cluster, error) {
	if maxRadius <= 0 || math.IsNaN(maxRadius) {
		return nil, fmt.Errorf("cluster points: radius must be positive, got %v: %w", maxRadius, domain.ErrInvalidInput)
	}
	if k < MinClusterCount {
		k = MinClusterCount
	}

	return clusterWithin(points, k, maxRadius, seed, 0)
}

func clusterWithin(points []domain.Point, k int, maxRadius float64, seed int64, depth int) ([]domain.Cluster, error) {
	if depth > MaxSplitDepth {
		return nil, fmt.Errorf(
			"cluster points: %d points still wider than radius %.2f after %d splits: %w",
			len(points), maxRadius, MaxSplitDepth, domain.ErrDegenerateGeometry,
		)
	}

	rng := rand.New(rand.NewSource(seed))
	groups := kMeansPlusPlus(points, k, rng)

	out := make([]domain.Cluster, 0, len(groups))
	for _, members := range groups {
		c := domain.NewCluster(members)
		if len(members) <= 1 || c.Radius() <= maxRadius+radiusTolerance {
			out = append(out, c)
			continue
		}

		sub, err := clusterWithin(members, k, maxRadius, seed, depth+1)
		if err != nil {
			return nil, err
		}
		out = append(out, sub...)
	}

	return out, nil
}

// kMeansPlusPlus returns up to k non-empty groups of points. Group members keep
// their input order and groups are ordered by their center index.
func kMeansPlusPlus(points []domain.Point, k int, rng *rand.Rand) [][]domain.Point {
	n := len(points)
	if n == 0 {
		return nil
	}
	if n <= k {
		groups := make([][]domain.Point, n)
		for i, p := range points {
			groups[i] = []domain.Point{p}
		}
		return groups
	}

	centers := seedCenters(points, k, rng)
	assign := make([]int, n)
	for i := range assign {
		assign[i] = -1
	}

	for iter := 0; iter < maxLloydIterations; iter++ {
		changed := false
		for i, p := range points {
			c, _ := domain.Nearest(p, centers, nil)
			if c != assign[i] {
				assign[i] = c
				changed = true
			}
		}

		if reseedEmpty(points, centers, assign) {
			changed = true
		}
		if !changed {
			break
		}

		recomputeCenters(points, centers, assign)
	}

	groups := make([][]domain.Point, k)
	for i, p := range points {
		groups[assign[i]] = append(groups[assign[i]], p)
	}

	out := groups[:0]
	for _, g := range groups {
		if len(g) > 0 {
			out = append(out, g)
		}
	}
	return out
}

// seedCenters picks k initial centers with D² weighting.
func seedCenters(points []domain.Point, k int, rng *rand.Rand) []domain.Point {
	centers := make([]domain.Point, 0, k)
	centers = append(centers, points[rng.Intn(len(points))])

	d2 := make([]float64, len(points))
	for len(centers) < k {
		sum := 0.0
		for i, p := range points {
			_, d := domain.Nearest(p, centers, nil)
			d2[i] = d * d
			sum += d2[i]
		}

		if sum == 0 {
			centers = append(centers, points[rng.Intn(len(points))])
			continue
		}

		target := rng.Float64() * sum
		pick := len(points) - 1
		for i, w := range d2 {
			target -= w
			if target < 0 {
				pick = i
				break
			}
		}
		centers = append(centers, points[pick])
	}

	return centers
}

// reseedEmpty moves every center that lost all its members onto the point
// lying farthest from its own center. Points sitting exactly on their center
// are never taken, so coincident inputs leave the center empty instead of
// ping-ponging. It reports whether anything moved.
func reseedEmpty(points []domain.Point, centers []domain.Point, assign []int) bool {
	counts := make([]int, len(centers))
	for _, a := range assign {
		counts[a]++
	}

	moved := false
	for c := range centers {
		if counts[c] > 0 {
			continue
		}

		far, farDist := -1, -1.0
		for i, p := range points {
			if counts[assign[i]] <= 1 {
				continue
			}
			if d := domain.Distance(p, centers[assign[i]]); d > farDist {
				far, farDist = i, d
			}
		}
		if far < 0 || farDist == 0 {
			continue
		}

		counts[assign[far]]--
		assign[far] = c
		counts[c] = 1
		centers[c] = points[far]
		moved = true
	}

	return moved
}

func recomputeCenters(points []domain.Point, centers []domain.Point, assign []int) {
	members := make([][]domain.Point, len(centers))
	for i, p := range points {
		members[assign[i]] = append(members[assign[i]], p)
	}
	for c, m := range members {
		if len(m) > 0 {
			centers[c] = domain.Centroid(m)
		}
	}
}
