package ports

import (
	"context"

	"parcels/internal/core/domain/model/confirmation"
	"parcels/internal/core/domain/model/kernel"
)

// ConfirmationCodeRepository defines the persistence contract for
// confirmation codes. Codes are immutable, so there is no update operation.
type ConfirmationCodeRepository interface {
	// Add persists a new confirmation code to storage.
	Add(ctx context.Context, code *confirmation.Code) error

	// GetByParcelID retrieves the confirmation code for the given parcel.
	// Exactly one code exists per parcel; returns an
	// errs.ObjectNotFoundError if none does.
	GetByParcelID(ctx context.Context, parcelID kernel.UUID) (*confirmation.Code, error)
}
