package route

import (
	"errors"

	"parcels/internal/core/domain/model/kernel"
	"parcels/internal/pkg/errs"
)

var (
	// ErrRouteIsNotConstructed is returned when a Route instance was not
	// created through NewRoute or RestoreRoute.
	ErrRouteIsNotConstructed = errors.New("Route must be created via NewRoute or RestoreRoute")

	// ErrAssignedToOtherAgent is returned when an agent tries to release a
	// route that a different agent claimed. Only the assigned agent may
	// release a route.
	ErrAssignedToOtherAgent = errs.NewNotEntitledError("route", "route is assigned to a different agent")
)

// Route is the aggregate root for the assignment record linking a parcel to
// a delivery agent. It is created together with its parcel and carries a
// denormalized copy of the parcel's destination and schedule; destination
// edits after creation mutate this copy, not the parcel's.
//
// Invariants:
//   - References exactly one parcel, fixed at creation
//   - A Pending route always has a non-nil assigned agent
//   - An Available route never has an assigned agent
//   - Only the assigned agent may release a pending route
type Route struct {
	// id is the unique identifier for the route
	id kernel.UUID

	// parcelID references the parcel this route delivers
	parcelID kernel.UUID

	// destination is the denormalized delivery address, editable while the
	// parcel has not started moving
	destination kernel.Destination

	// schedule is the denormalized delivery time window
	schedule kernel.ScheduleWindow

	// assignedAgent is the claiming agent's identity (nil if unclaimed)
	assignedAgent *kernel.AgentID

	// status is the current assignment state
	status Status

	// persistedStatus is the status last seen in storage; updates predicate
	// on it so a write from a stale snapshot matches zero rows
	persistedStatus Status

	// isConstructed ensures the route was created via a constructor
	isConstructed bool
}

// NewRoute creates a new unclaimed Route for the given parcel, denormalizing
// its destination and schedule. The route starts Available with no agent.
func NewRoute(
	id kernel.UUID,
	parcelID kernel.UUID,
	destination kernel.Destination,
	schedule kernel.ScheduleWindow,
) (*Route, error) {
	r := &Route{
		status:          Available,
		persistedStatus: Available,
		isConstructed:   true,
	}

	if err := errors.Join(
		r.setID(id),
		r.setParcelID(parcelID),
		r.setDestination(destination),
		r.setSchedule(schedule),
	); err != nil {
		return nil, err
	}

	return r, nil
}

// RestoreRoute reconstructs a Route from persistence with an explicit status
// and optional assigned agent. Enforces the status/agent consistency
// invariant: Pending requires an agent, Available forbids one.
func RestoreRoute(
	id kernel.UUID,
	parcelID kernel.UUID,
	destination kernel.Destination,
	schedule kernel.ScheduleWindow,
	status Status,
	assignedAgent *kernel.AgentID,
) (*Route, error) {
	r := &Route{
		isConstructed: true,
	}

	if err := errors.Join(
		r.setID(id),
		r.setParcelID(parcelID),
		r.setDestination(destination),
		r.setSchedule(schedule),
		r.setStatus(status),
	); err != nil {
		return nil, err
	}

	if assignedAgent != nil {
		if err := assignedAgent.Validate(); err != nil {
			return nil, err
		}
		agent := *assignedAgent
		r.assignedAgent = &agent
	}

	if err := r.validateAgentConsistency(); err != nil {
		return nil, err
	}

	r.persistedStatus = r.status
	return r, nil
}

// Validate ensures the Route instance was properly constructed.
func (r *Route) Validate() error {
	if r == nil || !r.isConstructed {
		return ErrRouteIsNotConstructed
	}

	return nil
}

// IsEqual compares two routes by their unique identifiers.
func (r *Route) IsEqual(other *Route) bool {
	return other != nil && r.id.IsEqual(other.id)
}

// ID returns the route's unique identifier.
func (r *Route) ID() kernel.UUID {
	return r.id
}

// ParcelID returns the identifier of the parcel this route delivers.
func (r *Route) ParcelID() kernel.UUID {
	return r.parcelID
}

// Destination returns the denormalized delivery address.
func (r *Route) Destination() kernel.Destination {
	return r.destination
}

// Schedule returns the denormalized delivery time window.
func (r *Route) Schedule() kernel.ScheduleWindow {
	return r.schedule
}

// AssignedAgent returns the claiming agent's identity, or nil if unclaimed.
func (r *Route) AssignedAgent() *kernel.AgentID {
	return r.assignedAgent
}

// Status returns the current assignment state.
func (r *Route) Status() Status {
	return r.status
}

// PersistedStatus returns the status the route carried when it was restored
// from storage (Available for a new route). Repository updates use it as the
// expected-state predicate so a stale snapshot cannot overwrite a newer
// transition.
func (r *Route) PersistedStatus() Status {
	return r.persistedStatus
}

// Assign claims the route for the given agent. The route must be Available;
// returns ErrNotAvailable otherwise. Under concurrent claims the surrounding
// transaction guarantees exactly one caller succeeds.
func (r *Route) Assign(agent kernel.AgentID) error {
	if err := agent.Validate(); err != nil {
		return err
	}

	newStatus, err := r.status.Assign()
	if err != nil {
		return err
	}

	r.status = newStatus
	r.assignedAgent = &agent
	return nil
}

// Unassign releases the route back to the pool. The route must be Pending
// and assigned to the requesting agent: releasing another agent's route
// returns ErrAssignedToOtherAgent regardless of state ordering.
func (r *Route) Unassign(agent kernel.AgentID) error {
	if err := agent.Validate(); err != nil {
		return err
	}

	if r.assignedAgent != nil && !r.assignedAgent.IsEqual(agent) {
		return ErrAssignedToOtherAgent
	}

	newStatus, err := r.status.Release()
	if err != nil {
		return err
	}

	r.status = newStatus
	r.assignedAgent = nil
	return nil
}

// ChangeDestination mutates the denormalized destination. Route destination
// tracks the parcel's edits and may change independently of the route's
// assignment state; the parcel-side state gate is checked by the use case.
func (r *Route) ChangeDestination(destination kernel.Destination) error {
	if err := destination.Validate(); err != nil {
		return err
	}

	r.destination = destination
	return nil
}

func (r *Route) validateAgentConsistency() error {
	if r.status == Pending && r.assignedAgent == nil {
		return errs.NewValueIsRequiredError("assignedAgent")
	}
	if r.status == Available && r.assignedAgent != nil {
		return errs.NewValueIsInvalidError("assignedAgent must be empty for an available route")
	}
	return nil
}

func (r *Route) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	r.id = id
	return nil
}

func (r *Route) setParcelID(parcelID kernel.UUID) error {
	if err := parcelID.Validate(); err != nil {
		return err
	}
	r.parcelID = parcelID
	return nil
}

func (r *Route) setDestination(destination kernel.Destination) error {
	if err := destination.Validate(); err != nil {
		return err
	}
	r.destination = destination
	return nil
}

func (r *Route) setSchedule(schedule kernel.ScheduleWindow) error {
	if err := schedule.Validate(); err != nil {
		return err
	}
	r.schedule = schedule
	return nil
}

func (r *Route) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	r.status = status
	return nil
}
