// Package parcelrepo provides data transfer objects and mapping functions
// for parcel persistence. It implements the repository pattern for the
// parcel aggregate, converting between domain entities and their relational
// representation.
package parcelrepo

import (
	"time"

	"parcels/internal/core/domain/model/kernel"
	"parcels/internal/core/domain/model/parcel"

	"github.com/google/uuid"
)

// ParcelDTO represents the database structure for persisting parcel
// aggregates. The status column is indexed to serve backlog queries.
type ParcelDTO struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey"`
	Address       string
	Locality      string
	ScheduleFrom  time.Time
	ScheduleUntil time.Time
	CreatedBy     string
	Status        int `gorm:"index"`
}

// TableName specifies the database table name for parcel entities.
func (ParcelDTO) TableName() string {
	return "parcels"
}

// fromDomain converts a parcel domain aggregate to its database
// representation.
func fromDomain(prc *parcel.Parcel) ParcelDTO {
	return ParcelDTO{
		ID:            prc.ID().Bytes(),
		Address:       prc.Destination().Address(),
		Locality:      prc.Destination().Locality(),
		ScheduleFrom:  prc.Schedule().From(),
		ScheduleUntil: prc.Schedule().Until(),
		CreatedBy:     prc.CreatedBy().String(),
		Status:        int(prc.Status()),
	}
}

// toDomain converts a database DTO back to a parcel aggregate, revalidating
// every value object on the way.
func toDomain(dto ParcelDTO) (*parcel.Parcel, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	destination, err := kernel.NewDestination(dto.Address, dto.Locality)
	if err != nil {
		return nil, err
	}

	schedule, err := kernel.NewScheduleWindow(dto.ScheduleFrom, dto.ScheduleUntil)
	if err != nil {
		return nil, err
	}

	createdBy, err := kernel.NewAgentID(dto.CreatedBy)
	if err != nil {
		return nil, err
	}

	return parcel.RestoreParcel(id, destination, schedule, createdBy, parcel.Status(dto.Status))
}
