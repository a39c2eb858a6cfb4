package ports

import (
	"context"
	"errors"
)

// ErrSerializationConflict indicates a serializable transaction lost a
// conflict race and should be retried as a whole. Store adapters wrap their
// engine-specific conflict errors with this sentinel.
var ErrSerializationConflict = errors.New("serialization conflict")

// UnitOfWorkFactory creates a new UnitOfWork per request/command,
// ensuring isolation between concurrent operations.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork represents a business transaction boundary over the entity
// store. Client code manages the transaction lifecycle explicitly.
//
// Begin opens a regular transaction, sufficient for single-document
// read-then-update sequences. BeginSerializable opens a serializable
// transaction for read-evaluate-write sequences under contention (route
// assignment, delivery confirmation, unassignment); a serializable commit may
// fail with a serialization conflict, in which case the whole unit is retried
// by the store adapter's retry helper.
type UnitOfWork interface {
	// Begin starts a new transaction with the store's default isolation.
	Begin(ctx context.Context) error

	// BeginSerializable starts a new transaction at serializable isolation.
	BeginSerializable(ctx context.Context) error

	// Commit commits the current transaction.
	// Returns an error if no transaction is active or the commit fails.
	Commit(ctx context.Context) error

	// Rollback rolls back the current transaction.
	// Returns an error if no transaction is active or the rollback fails.
	Rollback(ctx context.Context) error

	// ParcelRepository returns a ParcelRepository bound to the current
	// transaction.
	ParcelRepository() ParcelRepository

	// RouteRepository returns a RouteRepository bound to the current
	// transaction.
	RouteRepository() RouteRepository

	// ConfirmationCodeRepository returns a ConfirmationCodeRepository bound
	// to the current transaction.
	ConfirmationCodeRepository() ConfirmationCodeRepository
}
