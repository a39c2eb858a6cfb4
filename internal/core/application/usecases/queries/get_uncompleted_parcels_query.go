package queries

import (
	"errors"

	"parcels/internal/core/domain/model/kernel"
	"parcels/internal/pkg/guard"
)

var ErrGetUncompletedParcelsQueryIsNotConstructed = errors.New(
	"GetUncompletedParcelsQuery must be created via NewGetUncompletedParcelsQuery constructor",
)

// GetUncompletedParcelsQuery retrieves all parcels still moving through the
// delivery lifecycle. Returns every parcel not yet completed, for monitoring
// and backlog reporting.
type GetUncompletedParcelsQuery struct {
	guard guard.ConstructorGuard
}

// NewGetUncompletedParcelsQuery creates a query to retrieve undelivered parcels.
// This is a parameterless query that fetches all non-completed parcels.
func NewGetUncompletedParcelsQuery() GetUncompletedParcelsQuery {
	return GetUncompletedParcelsQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetUncompletedParcelsQueryIsNotConstructed if validation fails.
func (q GetUncompletedParcelsQuery) Validate() error {
	return q.guard.Validate(ErrGetUncompletedParcelsQueryIsNotConstructed)
}

// GetUncompletedParcelsQueryResponse is the read model for an undelivered
// parcel. Status carries the lifecycle stage as its string form.
type GetUncompletedParcelsQueryResponse struct {
	ID       kernel.UUID
	Address  string
	Locality string
	Status   string
}
