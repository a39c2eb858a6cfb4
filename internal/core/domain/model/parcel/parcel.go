package parcel

import (
	"errors"

	"parcels/internal/core/domain/model/kernel"
)

// ErrParcelIsNotConstructed is returned when a Parcel instance was not created
// through NewParcel or RestoreParcel. This ensures all parcels are validated.
var ErrParcelIsNotConstructed = errors.New("Parcel must be created via NewParcel or RestoreParcel")

// Parcel is the aggregate root for a shippable item. It owns the parcel
// lifecycle from creation through reservation and transit to confirmed
// delivery.
//
// Invariants:
//   - Must have a valid unique identifier, destination, schedule window,
//     and creator identity
//   - Status only ever moves forward: Available -> Pending -> InTransit -> Completed
//   - Can only be created through NewParcel or RestoreParcel
//
// The destination held here is the creation-time snapshot; after creation the
// route's denormalized copy is the one destination edits mutate.
type Parcel struct {
	// id is the unique identifier for the parcel
	id kernel.UUID

	// destination is the delivery address captured at creation
	destination kernel.Destination

	// schedule is the acceptable delivery time window
	schedule kernel.ScheduleWindow

	// createdBy is the identity of the sender who created the parcel
	createdBy kernel.AgentID

	// status is the current state in the parcel lifecycle
	status Status

	// persistedStatus is the status last seen in storage; updates predicate
	// on it so a write from a stale snapshot matches zero rows
	persistedStatus Status

	// isConstructed ensures the parcel was created via a constructor
	isConstructed bool
}

// NewParcel creates a new Parcel in Available status owned by the given
// creator. All parameters are validated; returns an error if any is invalid.
//
// Example:
//
//	dest, _ := kernel.NewDestination("Av. Reforma 222", "CDMX")
//	window, _ := kernel.NewScheduleWindow(from, until)
//	p, err := parcel.NewParcel(kernel.NewUUID(), dest, window, sender)
//	if err != nil {
//	    // Handle validation error
//	}
func NewParcel(
	id kernel.UUID,
	destination kernel.Destination,
	schedule kernel.ScheduleWindow,
	createdBy kernel.AgentID,
) (*Parcel, error) {
	p := &Parcel{
		status:          Available,
		persistedStatus: Available,
		isConstructed:   true,
	}

	if err := errors.Join(
		p.setID(id),
		p.setDestination(destination),
		p.setSchedule(schedule),
		p.setCreatedBy(createdBy),
	); err != nil {
		return nil, err
	}

	return p, nil
}

// RestoreParcel reconstructs a Parcel from persistence with an explicit
// status. The status must be a valid lifecycle state.
func RestoreParcel(
	id kernel.UUID,
	destination kernel.Destination,
	schedule kernel.ScheduleWindow,
	createdBy kernel.AgentID,
	status Status,
) (*Parcel, error) {
	p := &Parcel{
		isConstructed: true,
	}

	if err := errors.Join(
		p.setID(id),
		p.setDestination(destination),
		p.setSchedule(schedule),
		p.setCreatedBy(createdBy),
		p.setStatus(status),
	); err != nil {
		return nil, err
	}

	p.persistedStatus = p.status
	return p, nil
}

// Validate ensures the Parcel instance was properly constructed.
// Call when reconstructing parcels from persistence.
func (p *Parcel) Validate() error {
	if p == nil || !p.isConstructed {
		return ErrParcelIsNotConstructed
	}

	return nil
}

// IsEqual compares two parcels by their unique identifiers.
func (p *Parcel) IsEqual(other *Parcel) bool {
	return other != nil && p.id.IsEqual(other.id)
}

// ID returns the parcel's unique identifier.
func (p *Parcel) ID() kernel.UUID {
	return p.id
}

// Destination returns the delivery address captured at creation.
func (p *Parcel) Destination() kernel.Destination {
	return p.destination
}

// Schedule returns the acceptable delivery time window.
func (p *Parcel) Schedule() kernel.ScheduleWindow {
	return p.schedule
}

// CreatedBy returns the identity of the sender who created the parcel.
func (p *Parcel) CreatedBy() kernel.AgentID {
	return p.createdBy
}

// Status returns the current lifecycle status.
func (p *Parcel) Status() Status {
	return p.status
}

// PersistedStatus returns the status the parcel carried when it was restored
// from storage (the creation status for a new parcel). Transitions applied in
// memory do not move it; repository updates use it as the expected-state
// predicate so a stale snapshot cannot overwrite a newer transition.
func (p *Parcel) PersistedStatus() Status {
	return p.persistedStatus
}

// ValidateModifiable reports whether the parcel's destination may still be
// edited. Returns ErrNotModifiable once the parcel is in transit or completed.
func (p *Parcel) ValidateModifiable() error {
	return p.status.ValidateModifiable()
}

// Reserve moves the parcel from Available to Pending. Invoked when a delivery
// agent claims the parcel's route. Returns ErrNotAvailable if the parcel has
// already advanced past Available.
func (p *Parcel) Reserve() error {
	newStatus, err := p.status.Reserve()
	if err != nil {
		return err
	}

	p.status = newStatus
	return nil
}

// Start moves the parcel from Pending to InTransit.
// Returns ErrNotPending from any other state.
func (p *Parcel) Start() error {
	newStatus, err := p.status.Start()
	if err != nil {
		return err
	}

	p.status = newStatus
	return nil
}

// Complete moves the parcel from InTransit to Completed. The caller checks
// the confirmation code before applying this transition.
// Returns ErrNotInTransit from any other state.
func (p *Parcel) Complete() error {
	newStatus, err := p.status.Complete()
	if err != nil {
		return err
	}

	p.status = newStatus
	return nil
}

func (p *Parcel) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	p.id = id
	return nil
}

func (p *Parcel) setDestination(destination kernel.Destination) error {
	if err := destination.Validate(); err != nil {
		return err
	}
	p.destination = destination
	return nil
}

func (p *Parcel) setSchedule(schedule kernel.ScheduleWindow) error {
	if err := schedule.Validate(); err != nil {
		return err
	}
	p.schedule = schedule
	return nil
}

func (p *Parcel) setCreatedBy(createdBy kernel.AgentID) error {
	if err := createdBy.Validate(); err != nil {
		return err
	}
	p.createdBy = createdBy
	return nil
}

func (p *Parcel) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	p.status = status
	return nil
}
