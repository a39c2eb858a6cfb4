package commands

import (
	"errors"

	"parcels/internal/core/domain/model/kernel"
	"parcels/internal/pkg/guard"
)

var ErrModifyDestinationCommandIsNotConstructed = errors.New(
	"ModifyDestinationCommand must be created via NewModifyDestinationCommand constructor",
)

// ModifyDestinationCommand represents a request to change where a parcel is
// delivered. Only allowed while the parcel has not started moving.
type ModifyDestinationCommand struct { //nolint:recvcheck //using for validation
	parcelID       kernel.UUID
	newDestination kernel.Destination

	guard guard.ConstructorGuard
}

// NewModifyDestinationCommand creates a command to edit a parcel's delivery
// destination. Both the parcel reference and the new destination must be valid.
func NewModifyDestinationCommand(
	parcelID kernel.UUID,
	newDestination kernel.Destination,
) (ModifyDestinationCommand, error) {
	cmd := ModifyDestinationCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setParcelID(parcelID),
		cmd.setNewDestination(newDestination),
	); err != nil {
		return ModifyDestinationCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ModifyDestinationCommand) Validate() error {
	return c.guard.Validate(ErrModifyDestinationCommandIsNotConstructed)
}

// ParcelID returns the identifier of the parcel whose destination changes.
func (c ModifyDestinationCommand) ParcelID() kernel.UUID {
	return c.parcelID
}

// NewDestination returns the replacement delivery address.
func (c ModifyDestinationCommand) NewDestination() kernel.Destination {
	return c.newDestination
}

func (c *ModifyDestinationCommand) setParcelID(parcelID kernel.UUID) error {
	if err := parcelID.Validate(); err != nil {
		return err
	}
	c.parcelID = parcelID
	return nil
}

func (c *ModifyDestinationCommand) setNewDestination(destination kernel.Destination) error {
	if err := destination.Validate(); err != nil {
		return err
	}
	c.newDestination = destination
	return nil
}
