package queries

import (
	"errors"
	"time"

	"parcels/internal/core/domain/model/kernel"
	"parcels/internal/pkg/guard"
)

var ErrGetAvailableRoutesQueryIsNotConstructed = errors.New(
	"GetAvailableRoutesQuery must be created via NewGetAvailableRoutesQuery constructor",
)

// GetAvailableRoutesQuery retrieves all routes open for claiming.
// Returns unassigned routes so delivery agents can browse the backlog.
//
// Example:
//
//	query := queries.NewGetAvailableRoutesQuery()
//	handler := queries.NewGetAvailableRoutesQueryHandler(db)
//
//	routes, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to get available routes: %w", err)
//	}
//
//	fmt.Printf("%d routes open for claiming\n", len(routes))
type GetAvailableRoutesQuery struct {
	guard guard.ConstructorGuard
}

// NewGetAvailableRoutesQuery creates a query to retrieve claimable routes.
// This is a parameterless query that fetches every unassigned route.
func NewGetAvailableRoutesQuery() GetAvailableRoutesQuery {
	return GetAvailableRoutesQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetAvailableRoutesQueryIsNotConstructed if validation fails.
func (q GetAvailableRoutesQuery) Validate() error {
	return q.guard.Validate(ErrGetAvailableRoutesQueryIsNotConstructed)
}

// GetAvailableRoutesQueryResponse is the read model for a claimable route.
// Carries the destination and delivery window an agent needs to decide
// whether to claim the route.
type GetAvailableRoutesQueryResponse struct {
	ID            kernel.UUID
	ParcelID      kernel.UUID
	Address       string
	Locality      string
	ScheduleFrom  time.Time
	ScheduleUntil time.Time
}
