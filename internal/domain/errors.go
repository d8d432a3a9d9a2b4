package domain

import "errors"

// Error kinds surfaced by the planner. Callers match them with errors.Is.
var (
	// The request cannot be planned as given (no points, bad parameters,
	// oversized order). The whole run fails with no partial result.
	ErrInvalidInput = errors.New("invalid input")

	// No evaluated configuration satisfies the time deadline.
	ErrInfeasible = errors.New("no feasible plan found")

	// Radius-bounded re-clustering did not settle within its split cap.
	// It aborts the affected evaluation only.
	ErrDegenerateGeometry = errors.New("degenerate geometry")

	ErrOverCapacity    = errors.New("over capacity")
	ErrProfileNotFound = errors.New("profile not found")
)
