package commands

import (
	"errors"

	"parcels/internal/core/domain/model/kernel"
	"parcels/internal/pkg/guard"
)

var ErrCreateParcelCommandIsNotConstructed = errors.New(
	"CreateParcelCommand must be created via NewCreateParcelCommand constructor",
)

// CreateParcelCommand represents a request to register a new parcel together
// with its route and confirmation code.
//
// Example:
//
//	cmd, err := NewCreateParcelCommand(kernel.NewUUID(), dest, window, sender)
//	if err != nil {
//	    return fmt.Errorf("invalid parcel data: %w", err)
//	}
//
//	result, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return fmt.Errorf("failed to create parcel: %w", err)
//	}
//	fmt.Printf("parcel %s created, code %s", result.ParcelID, result.ConfirmationCode)
type CreateParcelCommand struct { //nolint:recvcheck //using for validation
	parcelID    kernel.UUID
	destination kernel.Destination
	schedule    kernel.ScheduleWindow
	createdBy   kernel.AgentID

	guard guard.ConstructorGuard
}

// NewCreateParcelCommand creates a command to register a new parcel.
// All fields are validated; returns an error if any is invalid.
func NewCreateParcelCommand(
	parcelID kernel.UUID,
	destination kernel.Destination,
	schedule kernel.ScheduleWindow,
	createdBy kernel.AgentID,
) (CreateParcelCommand, error) {
	cmd := CreateParcelCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setParcelID(parcelID),
		cmd.setDestination(destination),
		cmd.setSchedule(schedule),
		cmd.setCreatedBy(createdBy),
	); err != nil {
		return CreateParcelCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateParcelCommand) Validate() error {
	return c.guard.Validate(ErrCreateParcelCommandIsNotConstructed)
}

// ParcelID returns the identifier minted for the new parcel.
func (c CreateParcelCommand) ParcelID() kernel.UUID {
	return c.parcelID
}

// Destination returns the delivery address for the new parcel.
func (c CreateParcelCommand) Destination() kernel.Destination {
	return c.destination
}

// Schedule returns the delivery time window for the new parcel.
func (c CreateParcelCommand) Schedule() kernel.ScheduleWindow {
	return c.schedule
}

// CreatedBy returns the identity of the sender creating the parcel.
func (c CreateParcelCommand) CreatedBy() kernel.AgentID {
	return c.createdBy
}

func (c *CreateParcelCommand) setParcelID(parcelID kernel.UUID) error {
	if err := parcelID.Validate(); err != nil {
		return err
	}
	c.parcelID = parcelID
	return nil
}

func (c *CreateParcelCommand) setDestination(destination kernel.Destination) error {
	if err := destination.Validate(); err != nil {
		return err
	}
	c.destination = destination
	return nil
}

func (c *CreateParcelCommand) setSchedule(schedule kernel.ScheduleWindow) error {
	if err := schedule.Validate(); err != nil {
		return err
	}
	c.schedule = schedule
	return nil
}

func (c *CreateParcelCommand) setCreatedBy(createdBy kernel.AgentID) error {
	if err := createdBy.Validate(); err != nil {
		return err
	}
	c.createdBy = createdBy
	return nil
}
