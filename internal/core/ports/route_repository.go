package ports

import (
	"context"

	"parcels/internal/core/domain/model/kernel"
	"parcels/internal/core/domain/model/route"
)

// RouteRepository defines the persistence contract for route aggregates.
type RouteRepository interface {
	// Add persists a new route aggregate to storage.
	Add(ctx context.Context, aggregate *route.Route) error

	// Update persists changes to an existing route aggregate.
	Update(ctx context.Context, aggregate *route.Route) error

	// Get retrieves a route by its unique identifier. Returns an
	// errs.ObjectNotFoundError if no route exists for the identifier.
	Get(ctx context.Context, id kernel.UUID) (*route.Route, error)

	// GetByParcelID retrieves the route referencing the given parcel.
	// Exactly one route exists per parcel; returns an
	// errs.ObjectNotFoundError if none does.
	GetByParcelID(ctx context.Context, parcelID kernel.UUID) (*route.Route, error)
}
