// Package postgres provides the GORM-based implementation of the Unit of
// Work pattern over PostgreSQL.
//
// A unit of work maintains the set of aggregates touched by a business
// transaction and coordinates writing them out atomically. Two transaction
// modes are supported:
//
//   - Begin opens a transaction at the store's default isolation, enough for
//     single-aggregate read-then-update sequences.
//   - BeginSerializable opens a SERIALIZABLE transaction for
//     read-evaluate-write sequences that contend on state fields. PostgreSQL
//     aborts one of two conflicting serializable transactions with SQLSTATE
//     40001; that abort is surfaced as ports.ErrSerializationConflict so the
//     caller can retry the whole unit.
//
// Basic usage:
//
//	factory := postgres.NewGormUnitOfWorkFactory(db)
//	uow := factory.Create()
//
//	if err := uow.Begin(ctx); err != nil {
//	    return err
//	}
//	defer func() { _ = uow.Rollback(ctx) }()
//
//	if err := uow.ParcelRepository().Add(ctx, prc); err != nil {
//	    return err
//	}
//
//	return uow.Commit(ctx)
package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"parcels/internal/adapters/out/postgres/confirmationrepo"
	"parcels/internal/adapters/out/postgres/parcelrepo"
	"parcels/internal/adapters/out/postgres/routerepo"
	"parcels/internal/core/domain/model/kernel"
	"parcels/internal/core/ports"

	"github.com/lib/pq"
	"gorm.io/gorm"
)

// serializationFailureCode is the SQLSTATE PostgreSQL reports when a
// serializable transaction is aborted due to a conflict with a concurrent
// one (class 40001, serialization_failure).
const serializationFailureCode = "40001"

// trackedAggregate records an aggregate modified during the unit of work,
// kept for post-commit processing such as event publication.
type trackedAggregate struct {
	ID        kernel.UUID
	Aggregate any
}

// GormUnitOfWorkFactory creates UnitOfWork instances sharing one GORM
// connection pool. Each business operation gets a fresh instance with its
// own transaction state.
type GormUnitOfWorkFactory struct {
	db *gorm.DB
}

// NewGormUnitOfWorkFactory creates a factory bound to the given database
// connection.
func NewGormUnitOfWorkFactory(db *gorm.DB) *GormUnitOfWorkFactory {
	return &GormUnitOfWorkFactory{db: db}
}

// Create produces a new UnitOfWork ready for transaction management.
func (f *GormUnitOfWorkFactory) Create() ports.UnitOfWork {
	return &GormUnitOfWork{
		db:                f.db,
		trackedAggregates: make([]trackedAggregate, 0),
	}
}

// GormUnitOfWork coordinates a single database transaction across the
// parcel, route, and confirmation-code repositories. Not safe for concurrent
// use; create one instance per operation.
type GormUnitOfWork struct {
	db                *gorm.DB
	tx                *gorm.DB
	trackedAggregates []trackedAggregate
}

// Begin starts a transaction at the store's default isolation level.
// Calling Begin on an instance that already holds a transaction is a no-op.
func (uow *GormUnitOfWork) Begin(ctx context.Context) error {
	if uow.tx != nil {
		return nil
	}

	uow.tx = uow.db.WithContext(ctx).Begin()
	if uow.tx.Error != nil {
		err := uow.tx.Error
		uow.tx = nil
		return err
	}

	return nil
}

// BeginSerializable starts a SERIALIZABLE transaction. Reads performed inside
// it establish predicates that conflicting concurrent writers violate; the
// losing transaction fails with ports.ErrSerializationConflict at statement
// or commit time and should be retried as a whole.
func (uow *GormUnitOfWork) BeginSerializable(ctx context.Context) error {
	if uow.tx != nil {
		return nil
	}

	uow.tx = uow.db.WithContext(ctx).Begin(&sql.TxOptions{Isolation: sql.LevelSerializable})
	if uow.tx.Error != nil {
		err := uow.tx.Error
		uow.tx = nil
		return err
	}

	return nil
}

// Commit finalizes the current transaction. A serializable commit that loses
// a conflict race returns an error wrapping ports.ErrSerializationConflict.
func (uow *GormUnitOfWork) Commit(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Commit().Error
	uow.tx = nil
	return classifyTxError(err)
}

// Rollback discards the current transaction. Returns an error if no
// transaction is active, which makes a deferred Rollback after a successful
// Commit harmless.
func (uow *GormUnitOfWork) Rollback(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Rollback().Error
	uow.tx = nil
	return err
}

// ParcelRepository returns a parcel repository bound to the current
// transaction, or to the main connection if none is active.
func (uow *GormUnitOfWork) ParcelRepository() ports.ParcelRepository {
	return parcelrepo.NewGormParcelRepository(uow.sessionDB(), uow)
}

// RouteRepository returns a route repository bound to the current
// transaction, or to the main connection if none is active.
func (uow *GormUnitOfWork) RouteRepository() ports.RouteRepository {
	return routerepo.NewGormRouteRepository(uow.sessionDB(), uow)
}

// ConfirmationCodeRepository returns a confirmation-code repository bound to
// the current transaction, or to the main connection if none is active.
func (uow *GormUnitOfWork) ConfirmationCodeRepository() ports.ConfirmationCodeRepository {
	return confirmationrepo.NewGormConfirmationCodeRepository(uow.sessionDB(), uow)
}

// TrackAggregate registers an aggregate as modified within this unit of
// work. Called by the repositories on Add and Update.
func (uow *GormUnitOfWork) TrackAggregate(id kernel.UUID, aggregate any) {
	uow.trackedAggregates = append(uow.trackedAggregates, trackedAggregate{
		ID:        id,
		Aggregate: aggregate,
	})
}

func (uow *GormUnitOfWork) sessionDB() *gorm.DB {
	if uow.tx != nil {
		return uow.tx
	}
	return uow.db
}

func classifyTxError(err error) error {
	if err == nil {
		return nil
	}

	var pqErr *pq.Error
	if errors.As(err, &pqErr) && string(pqErr.Code) == serializationFailureCode {
		return fmt.Errorf("%w: %w", ports.ErrSerializationConflict, err)
	}

	return err
}
