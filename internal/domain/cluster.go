package domain

// Cluster is a group of delivery points served around a shared centroid.
// Clusters are created per evaluation and never mutated after construction.
type Cluster struct {
	Centroid Point
	Members  []Point
}

// NewCluster builds a cluster whose centroid is the mean of its members.
func NewCluster(members []Point) Cluster {
	return Cluster{Centroid: Centroid(members), Members: members}
}

// Radius returns the largest member distance to the centroid.
func (c Cluster) Radius() float64 {
	r := 0.0
	for _, m := range c.Members {
		if d := Distance(c.Centroid, m); d > r {
			r = d
		}
	}
	return r
}

// IsSingleton reports whether the cluster holds exactly one point.
// Singletons are served by the depot itself, not by a courier.
func (c Cluster) IsSingleton() bool { return len(c.Members) == 1 }

// DepotStops returns how many members the depot serves itself while parked
// at the centroid: the lone member of a singleton, otherwise every member
// lying exactly on the centroid.
func (c Cluster) DepotStops() int {
	if c.IsSingleton() {
		return 1
	}
	n := 0
	for _, m := range c.Members {
		if m == c.Centroid {
			n++
		}
	}
	return n
}
