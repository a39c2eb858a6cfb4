package confirmationrepo

import (
	"context"
	"errors"

	"parcels/internal/core/domain/model/confirmation"
	"parcels/internal/core/domain/model/kernel"
	"parcels/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormConfirmationCodeRepository implements ports.ConfirmationCodeRepository
// using GORM.
type GormConfirmationCodeRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking modified aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormConfirmationCodeRepository creates a new GORM confirmation-code
// repository.
func NewGormConfirmationCodeRepository(db *gorm.DB, tracker aggregateTracker) *GormConfirmationCodeRepository {
	return &GormConfirmationCodeRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new confirmation code to the database.
func (r *GormConfirmationCodeRepository) Add(ctx context.Context, code *confirmation.Code) error {
	if err := code.Validate(); err != nil {
		return err
	}

	dto := fromDomain(code)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(code.ID(), code)
	return nil
}

// GetByParcelID retrieves the confirmation code for the given parcel.
func (r *GormConfirmationCodeRepository) GetByParcelID(
	ctx context.Context,
	parcelID kernel.UUID,
) (*confirmation.Code, error) {
	if err := parcelID.Validate(); err != nil {
		return nil, err
	}

	var dto CodeDTO
	if err := r.db.WithContext(ctx).First(&dto, "parcel_id = ?", parcelID.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("confirmation code for parcel", parcelID.String())
		}
		return nil, err
	}

	return toDomain(dto)
}
