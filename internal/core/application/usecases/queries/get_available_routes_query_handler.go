package queries

import (
	"context"

	"parcels/internal/core/domain/model/kernel"
	"parcels/internal/core/domain/model/route"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetAvailableRoutesQueryHandler retrieves claimable routes from the database.
// Uses direct SQL for optimal read performance in the CQRS pattern; the read
// model never passes through the aggregate.
type GetAvailableRoutesQueryHandler struct {
	db *gorm.DB
}

// NewGetAvailableRoutesQueryHandler creates a handler for available route queries.
// Requires a GORM database connection for query execution.
func NewGetAvailableRoutesQueryHandler(db *gorm.DB) GetAvailableRoutesQueryHandler {
	return GetAvailableRoutesQueryHandler{db: db}
}

// Handle executes the query to retrieve all routes open for claiming.
// Results are sorted by the earliest delivery time so the most urgent routes
// come first.
func (h GetAvailableRoutesQueryHandler) Handle(
	ctx context.Context,
	query GetAvailableRoutesQuery,
) ([]GetAvailableRoutesQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	routes := make([]GetAvailableRoutesQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			parcel_id,
			address,
			locality,
			schedule_from,
			schedule_until
		FROM routes
		WHERE status = ?
		ORDER BY schedule_from, id
	`, route.Available).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var routeResp GetAvailableRoutesQueryResponse
		var id, parcelID uuid.UUID

		err = rows.Scan(
			&id,
			&parcelID,
			&routeResp.Address,
			&routeResp.Locality,
			&routeResp.ScheduleFrom,
			&routeResp.ScheduleUntil,
		)
		if err != nil {
			return nil, err
		}

		routeID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		routeResp.ID = routeID

		prcID, idErr := kernel.UUIDFromBytes(parcelID[:])
		if idErr != nil {
			return nil, idErr
		}
		routeResp.ParcelID = prcID

		routes = append(routes, routeResp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return routes, nil
}
