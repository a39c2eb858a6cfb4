package routerepo

import (
	"context"
	"errors"
	"fmt"

	"parcels/internal/core/domain/model/kernel"
	"parcels/internal/core/domain/model/route"
	"parcels/internal/core/ports"
	"parcels/internal/pkg/errs"

	"github.com/lib/pq"
	"gorm.io/gorm"
)

// routeUpdateColumns lists the mutable columns written by Update. Named
// explicitly so a released route's NULL assigned agent is written instead of
// being skipped as a zero value.
var routeUpdateColumns = []string{
	"address", "locality", "schedule_from", "schedule_until", "assigned_agent", "status",
}

// GormRouteRepository implements ports.RouteRepository using GORM.
type GormRouteRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking modified aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormRouteRepository creates a new GORM route repository.
func NewGormRouteRepository(db *gorm.DB, tracker aggregateTracker) *GormRouteRepository {
	return &GormRouteRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new route to the database.
func (r *GormRouteRepository) Add(ctx context.Context, aggregate *route.Route) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return classifyError(err)
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing route. The write is predicated on the status the
// aggregate was loaded with, so a stale snapshot matches zero rows instead of
// overwriting a transition committed in between.
func (r *GormRouteRepository) Update(ctx context.Context, aggregate *route.Route) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&RouteDTO{}).
		Where("id = ? AND status = ?", dto.ID, int(aggregate.PersistedStatus())).
		Select(routeUpdateColumns).
		Updates(&dto)
	if result.Error != nil {
		return classifyError(result.Error)
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("route", aggregate.ID().String())
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a route by ID.
func (r *GormRouteRepository) Get(ctx context.Context, id kernel.UUID) (*route.Route, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto RouteDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("route", id.String())
		}
		return nil, classifyError(err)
	}

	return toDomain(dto)
}

// GetByParcelID retrieves the route referencing the given parcel.
func (r *GormRouteRepository) GetByParcelID(ctx context.Context, parcelID kernel.UUID) (*route.Route, error) {
	if err := parcelID.Validate(); err != nil {
		return nil, err
	}

	var dto RouteDTO
	if err := r.db.WithContext(ctx).First(&dto, "parcel_id = ?", parcelID.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("route for parcel", parcelID.String())
		}
		return nil, classifyError(err)
	}

	return toDomain(dto)
}

// classifyError surfaces a serialization abort (SQLSTATE 40001) as the
// retryable sentinel; other errors pass through unchanged.
func classifyError(err error) error {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code == "40001" {
		return fmt.Errorf("%w: %w", ports.ErrSerializationConflict, err)
	}
	return err
}
