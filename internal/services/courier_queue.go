package services

import (
	"container/heap"
	"mobile-depot-planner/internal/domain"
	"slices"
)

// courierQueue is a least-loaded-first min-heap of couriers.
// Equal loads pop in courier id order.
type courierQueue []*domain.Courier

func (q courierQueue) Len() int { return len(q) }

func (q courierQueue) Less(i, j int) bool {
	if q[i].Load != q[j].Load {
		return q[i].Load < q[j].Load
	}
	return q[i].ID < q[j].ID
}

func (q courierQueue) Swap(i, j int) { q[i], q[j] = q[j], q[i] }

func (q *courierQueue) Push(x any) { *q = append(*q, x.(*domain.Courier)) }

func (q *courierQueue) Pop() any {
	old := *q
	n := len(old)
	c := old[n-1]
	old[n-1] = nil
	*q = old[:n-1]
	return c
}

// newCourierQueue builds a fresh queue of n idle couriers anchored at anchor.
// Every call owns its couriers; queues are never shared between evaluations.
func newCourierQueue(n int, anchor domain.Point) *courierQueue {
	q := make(courierQueue, 0, n)
	for i := 0; i < n; i++ {
		q = append(q, domain.NewCourier(i, anchor))
	}
	heap.Init(&q)
	return &q
}

func (q *courierQueue) pop() *domain.Courier { return heap.Pop(q).(*domain.Courier) }

func (q *courierQueue) push(c *domain.Courier) { heap.Push(q, c) }

// byID returns the queued couriers ordered by id without draining the queue.
func (q courierQueue) byID() []*domain.Courier {
	out := slices.Clone([]*domain.Courier(q))
	slices.SortFunc(out, func(a, b *domain.Courier) int { return a.ID - b.ID })
	return out
}
