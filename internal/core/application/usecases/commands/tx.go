package commands

import (
	"context"
	"errors"

	"parcels/internal/core/ports"
)

// maxSerializableAttempts bounds retries of a serializable unit that keeps
// losing conflict races.
const maxSerializableAttempts = 3

// runSerializable executes fn as a serializable read-evaluate-write unit.
// When the store reports a serialization conflict, either from fn or from the
// commit itself, the whole unit is retried with a fresh unit of work, up to
// maxSerializableAttempts times. Any other error rolls back and propagates.
func runSerializable[T TxManager](
	ctx context.Context,
	factory interface{ Create() T },
	fn func(ctx context.Context, uow T) error,
) error {
	var lastErr error

	for range maxSerializableAttempts {
		uow := factory.Create()
		if err := uow.BeginSerializable(ctx); err != nil {
			return err
		}

		if err := fn(ctx, uow); err != nil {
			_ = uow.Rollback(ctx)
			if errors.Is(err, ports.ErrSerializationConflict) {
				lastErr = err
				continue
			}
			return err
		}

		if err := uow.Commit(ctx); err != nil {
			if errors.Is(err, ports.ErrSerializationConflict) {
				lastErr = err
				continue
			}
			return err
		}

		return nil
	}

	return lastErr
}
