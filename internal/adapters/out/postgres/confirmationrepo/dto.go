// Package confirmationrepo provides data transfer objects and mapping
// functions for confirmation-code persistence. Codes are immutable once
// written, so the repository exposes no update operation.
package confirmationrepo

import (
	"parcels/internal/core/domain/model/confirmation"
	"parcels/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// CodeDTO represents the database structure for persisting confirmation
// codes. ParcelID is unique since exactly one code exists per parcel.
type CodeDTO struct {
	ID       uuid.UUID `gorm:"type:uuid;primaryKey"`
	ParcelID uuid.UUID `gorm:"type:uuid;uniqueIndex"`
	Value    string
}

// TableName specifies the database table name for confirmation codes.
func (CodeDTO) TableName() string {
	return "confirmation_codes"
}

// fromDomain converts a confirmation code to its database representation.
func fromDomain(code *confirmation.Code) CodeDTO {
	return CodeDTO{
		ID:       code.ID().Bytes(),
		ParcelID: code.ParcelID().Bytes(),
		Value:    code.Value(),
	}
}

// toDomain converts a database DTO back to a confirmation code,
// revalidating the stored value's format.
func toDomain(dto CodeDTO) (*confirmation.Code, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	parcelID, err := kernel.UUIDFromBytes(dto.ParcelID[:])
	if err != nil {
		return nil, err
	}

	return confirmation.RestoreCode(id, parcelID, dto.Value)
}
