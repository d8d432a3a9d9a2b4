package domain

import "fmt"

// Order is a volume-tagged delivery bound to exactly one pickup point.
type Order struct {
	ID     int
	Volume float64
	Pickup Point
}

// BindOrders attaches each order to the delivery point at the same position.
// Supplying more orders than points is an input error.
func BindOrders(orders []Order, points []Point) ([]Order, error) {
	if len(orders) > len(points) {
		return nil, fmt.Errorf(
			"bind orders: %d orders for %d delivery points: %w",
			len(orders), len(points), ErrInvalidInput,
		)
	}

	out := make([]Order, len(orders))
	for i, o := range orders {
		if o.Volume < 0 {
			return nil, fmt.Errorf("bind orders: order %d has negative volume %.2f: %w", o.ID, o.Volume, ErrInvalidInput)
		}
		o.Pickup = points[i]
		out[i] = o
	}

	return out, nil
}
