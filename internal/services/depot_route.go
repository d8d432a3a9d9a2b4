package services

import "mobile-depot-planner/internal/domain"

// Build a closed tour using a greedy nearest-neighbor algorithm.
//
// Starting at start, the tour repeatedly moves to the closest unvisited stop and
// finally returns to start. It does not attempt global optimization; ties keep
// the first candidate in input order, so identical inputs give identical tours.
// With no stops the tour degenerates to [start, start].
func BuildTour(start domain.Point, stops []domain.Point) domain.Tour {
	tour := make(domain.Tour, 0, len(stops)+2)
	tour = append(tour, start)

	visited := make([]bool, len(stops))
	current := start

	for range stops {
		next, _ := domain.Nearest(current, stops, visited)
		if next < 0 {
			break
		}
		visited[next] = true
		current = stops[next]
		tour = append(tour, current)
	}

	return append(tour, start)
}
