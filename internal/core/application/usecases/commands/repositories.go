// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS
// architecture. All commands follow a consistent pattern: constructor-guarded
// validation, transaction management, and persistence through a unit of work.
package commands

import (
	"context"

	"parcels/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command
// handlers. Narrow interfaces keep each handler honest about the aggregates
// it touches.
type (
	// TxManager handles store transaction lifecycle, including serializable
	// transactions for operations that contend on state fields.
	TxManager interface {
		Begin(ctx context.Context) error
		BeginSerializable(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// ParcelRepoFactory provides access to the parcel repository within a
	// transaction.
	ParcelRepoFactory interface {
		ParcelRepository() ports.ParcelRepository
	}

	// RouteRepoFactory provides access to the route repository within a
	// transaction.
	RouteRepoFactory interface {
		RouteRepository() ports.RouteRepository
	}

	// ConfirmationCodeRepoFactory provides access to the confirmation-code
	// repository within a transaction.
	ConfirmationCodeRepoFactory interface {
		ConfirmationCodeRepository() ports.ConfirmationCodeRepository
	}

	// ParcelUoW manages transactions for parcel-only operations.
	ParcelUoW interface {
		TxManager
		ParcelRepoFactory
	}

	// ParcelUoWFactory creates new parcel unit of work instances.
	ParcelUoWFactory interface {
		Create() ParcelUoW
	}

	// RouteUoW manages transactions for route-only operations.
	RouteUoW interface {
		TxManager
		RouteRepoFactory
	}

	// RouteUoWFactory creates new route unit of work instances.
	RouteUoWFactory interface {
		Create() RouteUoW
	}

	// UoW manages transactions across all three aggregates. Used by commands
	// that must write parcel, route, and confirmation code as one unit.
	UoW interface {
		TxManager
		ParcelRepoFactory
		RouteRepoFactory
		ConfirmationCodeRepoFactory
	}

	// UoWFactory creates new unit of work instances for cross-aggregate
	// operations.
	UoWFactory interface {
		Create() UoW
	}
)
