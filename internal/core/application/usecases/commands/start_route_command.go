package commands

import (
	"errors"

	"parcels/internal/core/domain/model/kernel"
	"parcels/internal/pkg/guard"
)

var ErrStartRouteCommandIsNotConstructed = errors.New(
	"StartRouteCommand must be created via NewStartRouteCommand constructor",
)

// StartRouteCommand represents a request to begin the delivery run for a
// claimed parcel, moving it from Pending to InTransit.
type StartRouteCommand struct { //nolint:recvcheck //using for validation
	parcelID kernel.UUID

	guard guard.ConstructorGuard
}

// NewStartRouteCommand creates a command to start delivering the given parcel.
func NewStartRouteCommand(parcelID kernel.UUID) (StartRouteCommand, error) {
	cmd := StartRouteCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setParcelID(parcelID); err != nil {
		return StartRouteCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c StartRouteCommand) Validate() error {
	return c.guard.Validate(ErrStartRouteCommandIsNotConstructed)
}

// ParcelID returns the identifier of the parcel entering transit.
func (c StartRouteCommand) ParcelID() kernel.UUID {
	return c.parcelID
}

func (c *StartRouteCommand) setParcelID(parcelID kernel.UUID) error {
	if err := parcelID.Validate(); err != nil {
		return err
	}
	c.parcelID = parcelID
	return nil
}
