package domain

import "fmt"

// Courier accumulates a tour and a load while one assignment step owns it.
//
// Load is the distance travelled in dynamic plans and the carried volume in
// static plans. A courier is never shared between evaluations.
type Courier struct {
	ID         int
	Load       float64
	Deliveries int
	Tour       Tour
	Orders     []Order
}

func NewCourier(id int, anchor Point) *Courier {
	return &Courier{
		ID:   id,
		Tour: Tour{anchor},
	}
}

// Move the courier to p, adding the leg distance to its load.
func (c *Courier) Visit(p Point) {
	if n := len(c.Tour); n > 0 {
		c.Load += Distance(c.Tour[n-1], p)
	}
	c.Tour = append(c.Tour, p)
}

// Move the courier to a delivery point and count the stop.
func (c *Courier) Deliver(p Point) {
	c.Visit(p)
	c.Deliveries++
}

// EndsAt reports whether the courier's tour currently ends at p.
func (c *Courier) EndsAt(p Point) bool {
	return len(c.Tour) > 0 && c.Tour[len(c.Tour)-1] == p
}

// Load an order onto the courier if its volume fits under capacity.
func (c *Courier) Carry(o Order, capacity float64) error {
	if c.Load+o.Volume > capacity {
		return fmt.Errorf(
			"carry order: courier %d cannot take order %d (load=%.2f volume=%.2f capacity=%.2f): %w",
			c.ID, o.ID, c.Load, o.Volume, capacity, ErrOverCapacity,
		)
	}
	c.Load += o.Volume
	c.Orders = append(c.Orders, o)
	return nil
}

// Pickups returns the pickup points of the carried orders in load order.
func (c *Courier) Pickups() []Point {
	out := make([]Point, 0, len(c.Orders))
	for _, o := range c.Orders {
		out = append(out, o.Pickup)
	}
	return out
}
