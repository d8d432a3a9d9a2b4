package services

import "mobile-depot-planner/internal/domain"

// AssignCluster distributes the members of one cluster across couriers.
//
// Each member goes to the courier with the smallest travelled distance so far.
// Couriers run out-and-back legs from the centroid: before heading to a new
// point a courier returns to the centroid if it is not already there, which
// yields star tours such as C p1 C p2 C. Members located exactly on the
// centroid are skipped because the depot stops there anyway. Couriers without
// deliveries are dropped, and a singleton cluster produces no tours at all.
func AssignCluster(cluster domain.Cluster, clusterIndex int, courierCount int) []domain.CourierRoute {
	if cluster.IsSingleton() || courierCount < 1 {
		return nil
	}

	anchor := cluster.Centroid
	q := newCourierQueue(courierCount, anchor)

	for _, p := range cluster.Members {
		if p == anchor {
			continue
		}

		c := q.pop()
		if !c.EndsAt(anchor) {
			c.Visit(anchor)
		}
		c.Deliver(p)
		q.push(c)
	}

	routes := make([]domain.CourierRoute, 0, courierCount)
	for _, c := range q.byID() {
		if c.Deliveries == 0 {
			continue
		}
		if !c.EndsAt(anchor) {
			c.Visit(anchor)
		}

		routes = append(routes, domain.CourierRoute{
			CourierID: c.ID,
			Cluster:   clusterIndex,
			Tour:      c.Tour,
			StopCount: c.Deliveries,
			Load:      c.Load,
		})
	}

	return routes
}
