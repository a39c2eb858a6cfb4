package queries

import (
	"context"

	"parcels/internal/core/domain/model/kernel"
	"parcels/internal/core/domain/model/parcel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetUncompletedParcelsQueryHandler retrieves undelivered parcels from the
// database. Filters out completed parcels to give active workload visibility.
type GetUncompletedParcelsQueryHandler struct {
	db *gorm.DB
}

// NewGetUncompletedParcelsQueryHandler creates a handler for undelivered
// parcel queries. Requires a GORM database connection for query execution.
func NewGetUncompletedParcelsQueryHandler(db *gorm.DB) GetUncompletedParcelsQueryHandler {
	return GetUncompletedParcelsQueryHandler{db: db}
}

// Handle executes the query to retrieve all uncompleted parcels.
// Returns parcels in available, pending, or in-transit status, sorted by
// parcel ID for consistent output.
func (h GetUncompletedParcelsQueryHandler) Handle(
	ctx context.Context,
	query GetUncompletedParcelsQuery,
) ([]GetUncompletedParcelsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	parcels := make([]GetUncompletedParcelsQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			address,
			locality,
			status
		FROM parcels
		WHERE status != ?
		ORDER BY id
	`, parcel.Completed).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var parcelResp GetUncompletedParcelsQueryResponse
		var id uuid.UUID
		var status int

		err = rows.Scan(
			&id,
			&parcelResp.Address,
			&parcelResp.Locality,
			&status,
		)
		if err != nil {
			return nil, err
		}

		parcelID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		parcelResp.ID = parcelID
		parcelResp.Status = parcel.Status(status).String()

		parcels = append(parcels, parcelResp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return parcels, nil
}
