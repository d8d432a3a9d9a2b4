package services

import (
	"cmp"
	"fmt"
	"mobile-depot-planner/internal/domain"
	"slices"
)

// PackResult holds the static courier routes and the ids of orders no
// courier could take.
type PackResult struct {
	Routes     []domain.CourierRoute
	Unassigned []int
}

// PackOrders places orders on couriers with a first-fit-decreasing heuristic.
//
// Orders are taken largest volume first. Each one is offered to couriers in
// least-loaded-first order until one has room under capacity; an order that
// fits nobody is reported in Unassigned rather than dropped. Every loaded
// courier then gets a nearest-neighbor tour that starts and ends at the depot.
func PackOrders(depot domain.Point, orders []domain.Order, courierCount int, capacity float64) (PackResult, error) {
	if courierCount < 1 {
		return PackResult{}, fmt.Errorf("pack orders: courier count must be at least 1, got %d: %w", courierCount, domain.ErrInvalidInput)
	}

	// Largest first reduces fragmentation; equal volumes keep id order.
	sorted := slices.Clone(orders)
	slices.SortStableFunc(sorted, func(a, b domain.Order) int {
		if c := cmp.Compare(b.Volume, a.Volume); c != 0 {
			return c
		}
		return cmp.Compare(a.ID, b.ID)
	})

	q := newCourierQueue(courierCount, depot)
	var unassigned []int
	for _, o := range sorted {
		if !placeOrder(q, o, capacity) {
			unassigned = append(unassigned, o.ID)
		}
	}

	routes := make([]domain.CourierRoute, 0, courierCount)
	for _, c := range q.byID() {
		if len(c.Orders) == 0 {
			continue
		}

		routes = append(routes, domain.CourierRoute{
			CourierID: c.ID,
			Cluster:   -1,
			Tour:      BuildTour(depot, c.Pickups()),
			StopCount: len(c.Orders),
			Load:      c.Load,
		})
	}

	return PackResult{Routes: routes, Unassigned: unassigned}, nil
}

// placeOrder offers o to couriers from least to most loaded and reports
// whether one accepted it. All popped couriers are returned to the queue.
func placeOrder(q *courierQueue, o domain.Order, capacity float64) bool {
	rejected := make([]*domain.Courier, 0, q.Len())
	defer func() {
		for _, c := range rejected {
			q.push(c)
		}
	}()

	for q.Len() > 0 {
		c := q.pop()
		if err := c.Carry(o, capacity); err != nil {
			rejected = append(rejected, c)
			continue
		}
		q.push(c)
		return true
	}

	return false
}
