package domain

// Tour is an ordered sequence of visited points.
type Tour []Point

// Length returns the sum of consecutive leg distances along the tour.
func (t Tour) Length() float64 {
	total := 0.0
	for i := 1; i < len(t); i++ {
		total += Distance(t[i-1], t[i])
	}
	return total
}

// Closed reports whether the tour starts and ends at the same point.
func (t Tour) Closed() bool {
	return len(t) > 0 && t[0] == t[len(t)-1]
}

// CourierRoute is the planned tour of one courier.
//
// In dynamic plans the tour is anchored at a cluster centroid and Cluster is
// the position of that cluster in the clusterer output. In static plans the
// tour is anchored at the depot and Cluster is -1.
type CourierRoute struct {
	CourierID int
	Cluster   int
	Tour      Tour
	StopCount int
	Load      float64
}
