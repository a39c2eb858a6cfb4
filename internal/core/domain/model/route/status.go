package route

import (
	"fmt"

	"parcels/internal/pkg/errs"
)

// Status represents the assignment state of a route. Unlike the parcel
// lifecycle this machine is cyclic: an agent may release a claimed route,
// returning it to the pool.
//
//	Available ──> Pending
//	    ^            │
//	    └────────────┘
//	      (release)
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Available means the route is unclaimed and may be assigned to any
	// delivery agent. An available route has no assigned agent.
	Available

	// Pending means a delivery agent has claimed the route. A pending route
	// always has an assigned agent.
	Pending
)

// Typed declines for route state transitions.
var (
	// ErrNotAvailable is returned when assigning a route that has already
	// been claimed. Under concurrent claims exactly one caller avoids it.
	ErrNotAvailable = errs.NewValueIsInvalidError("route is not available for assignment")

	// ErrNotPending is returned when releasing a route that is not claimed.
	ErrNotPending = errs.NewValueIsInvalidError("route is not in pending state")
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:   "Unknown",
		Available: "Available",
		Pending:   "Pending",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Available: "Available",
		Pending:   "Pending",
	}
}

// Validate checks if the Status value is one of the defined states.
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

// Assign transitions the status to Pending.
//
// Valid transitions:
//   - Available -> Pending
//
// Returns (0, ErrNotAvailable) from any other state.
func (s Status) Assign() (Status, error) {
	if s != Available {
		return 0, ErrNotAvailable
	}

	return Pending, nil
}

// Release transitions the status back to Available. This is the one cyclic
// edge in the system: agents may give a claimed route back to the pool.
//
// Valid transitions:
//   - Pending -> Available
//
// Returns (0, ErrNotPending) from any other state.
func (s Status) Release() (Status, error) {
	if s != Pending {
		return 0, ErrNotPending
	}

	return Available, nil
}
