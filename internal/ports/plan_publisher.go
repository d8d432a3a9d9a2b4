package ports

import (
	"context"
	"encoding/json"
	"mobile-depot-planner/internal/domain"
)

// Publication is one accepted plan together with the request that produced it.
type Publication struct {
	Plan *domain.PlanResult
	// RequestData is echoed verbatim into the published message; may be empty.
	RequestData json.RawMessage
}

// Port: a boundary for handing accepted plans to an external channel.
type PlanPublisher interface {
	// Publish one accepted plan. Implementations render the wire format.
	Publish(ctx context.Context, pub Publication) error
}
