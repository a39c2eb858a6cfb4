// Package routerepo provides data transfer objects and mapping functions for
// route persistence. It implements the repository pattern for the route
// aggregate, converting between domain entities and their relational
// representation.
package routerepo

import (
	"time"

	"parcels/internal/core/domain/model/kernel"
	"parcels/internal/core/domain/model/route"

	"github.com/google/uuid"
)

// RouteDTO represents the database structure for persisting route
// aggregates. ParcelID is unique since exactly one route exists per parcel;
// the status column is indexed to serve the available-routes query.
type RouteDTO struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey"`
	ParcelID      uuid.UUID `gorm:"type:uuid;uniqueIndex"`
	Address       string
	Locality      string
	ScheduleFrom  time.Time
	ScheduleUntil time.Time
	AssignedAgent *string `gorm:"index"`
	Status        int     `gorm:"index"`
}

// TableName specifies the database table name for route entities.
func (RouteDTO) TableName() string {
	return "routes"
}

// fromDomain converts a route domain aggregate to its database
// representation. An unclaimed route maps to a NULL assigned agent.
func fromDomain(rt *route.Route) RouteDTO {
	var assignedAgent *string
	if agent := rt.AssignedAgent(); agent != nil {
		subject := agent.String()
		assignedAgent = &subject
	}

	return RouteDTO{
		ID:            rt.ID().Bytes(),
		ParcelID:      rt.ParcelID().Bytes(),
		Address:       rt.Destination().Address(),
		Locality:      rt.Destination().Locality(),
		ScheduleFrom:  rt.Schedule().From(),
		ScheduleUntil: rt.Schedule().Until(),
		AssignedAgent: assignedAgent,
		Status:        int(rt.Status()),
	}
}

// toDomain converts a database DTO back to a route aggregate. RestoreRoute
// re-checks the status/agent consistency invariant.
func toDomain(dto RouteDTO) (*route.Route, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	parcelID, err := kernel.UUIDFromBytes(dto.ParcelID[:])
	if err != nil {
		return nil, err
	}

	destination, err := kernel.NewDestination(dto.Address, dto.Locality)
	if err != nil {
		return nil, err
	}

	schedule, err := kernel.NewScheduleWindow(dto.ScheduleFrom, dto.ScheduleUntil)
	if err != nil {
		return nil, err
	}

	var assignedAgent *kernel.AgentID
	if dto.AssignedAgent != nil {
		agent, agentErr := kernel.NewAgentID(*dto.AssignedAgent)
		if agentErr != nil {
			return nil, agentErr
		}
		assignedAgent = &agent
	}

	return route.RestoreRoute(id, parcelID, destination, schedule, route.Status(dto.Status), assignedAgent)
}
