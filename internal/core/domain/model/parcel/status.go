package parcel

import (
	"fmt"

	"parcels/internal/pkg/errs"
)

// Status represents the lifecycle state of a parcel. It implements a state
// machine whose transitions only ever move forward:
//
//	Available ──> Pending ──> InTransit ──> Completed
//
// There are no backward edges and no skips. Status is a value object that
// validates transitions and provides string representations for persistence
// and display.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Available is the initial status of a freshly created parcel.
	// Its route has not been claimed by any delivery agent yet.
	Available

	// Pending indicates the parcel's route has been claimed by an agent
	// and the parcel awaits pickup.
	Pending

	// InTransit indicates the delivery run has started.
	InTransit

	// Completed indicates delivery was confirmed with the parcel's
	// confirmation code. Final state; no further transitions.
	Completed
)

// Typed declines for parcel state transitions. Handlers classify these with
// errors.Is to produce specific client-facing causes.
var (
	// ErrNotModifiable is returned when a destination edit is requested for
	// a parcel that is already in transit or completed.
	ErrNotModifiable = errs.NewValueIsInvalidError("parcel is not in a modifiable state")

	// ErrNotPending is returned when starting delivery of a parcel whose
	// route has not been claimed yet or that is already moving.
	ErrNotPending = errs.NewValueIsInvalidError("parcel is not in pending state")

	// ErrNotInTransit is returned when confirming delivery of a parcel that
	// is not currently in transit.
	ErrNotInTransit = errs.NewValueIsInvalidError("parcel is not in a deliverable state")

	// ErrNotAvailable is returned when reserving a parcel that has already
	// moved past the Available state.
	ErrNotAvailable = errs.NewValueIsInvalidError("parcel is not in available state")
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:   "Unknown",
		Available: "Available",
		Pending:   "Pending",
		InTransit: "InTransit",
		Completed: "Completed",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Available: "Available",
		Pending:   "Pending",
		InTransit: "InTransit",
		Completed: "Completed",
	}
}

// Validate checks if the Status value is one of the defined lifecycle states.
// Unknown (0) and out-of-range values are invalid. Used when reconstructing
// parcels from persistence or external input.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the human-readable name of the status. Implements
// fmt.Stringer and is safe to call on any value, including invalid ones.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// ValidateModifiable checks whether the parcel's destination may still be
// edited. Edits are only allowed before the delivery run starts, that is
// while the status is Available or Pending.
func (s Status) ValidateModifiable() error {
	if s != Available && s != Pending {
		return ErrNotModifiable
	}
	return nil
}

// Reserve transitions the status to Pending. Triggered when a delivery agent
// claims the parcel's route.
//
// Valid transitions:
//   - Available -> Pending
//
// Returns (0, ErrNotAvailable) from any other state.
func (s Status) Reserve() (Status, error) {
	if s != Available {
		return 0, ErrNotAvailable
	}

	return Pending, nil
}

// Start transitions the status to InTransit. Triggered by the start-route
// operation once the parcel has been claimed.
//
// Valid transitions:
//   - Pending -> InTransit
//
// Returns (0, ErrNotPending) from any other state.
func (s Status) Start() (Status, error) {
	if s != Pending {
		return 0, ErrNotPending
	}

	return InTransit, nil
}

// Complete transitions the status to Completed. Triggered by delivery
// confirmation; the confirmation-code match is checked by the caller before
// this transition is applied.
//
// Valid transitions:
//   - InTransit -> Completed
//
// Returns (0, ErrNotInTransit) from any other state. Completed is final.
func (s Status) Complete() (Status, error) {
	if s != InTransit {
		return 0, ErrNotInTransit
	}

	return Completed, nil
}
