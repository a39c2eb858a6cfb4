package commands

import (
	"errors"

	"parcels/internal/core/domain/model/kernel"
	"parcels/internal/pkg/guard"
)

var ErrAssignRouteCommandIsNotConstructed = errors.New(
	"AssignRouteCommand must be created via NewAssignRouteCommand constructor",
)

// AssignRouteCommand represents a delivery agent's request to claim an
// available route.
type AssignRouteCommand struct { //nolint:recvcheck //using for validation
	routeID kernel.UUID
	agent   kernel.AgentID

	guard guard.ConstructorGuard
}

// NewAssignRouteCommand creates a command for the given agent to claim the
// given route.
func NewAssignRouteCommand(routeID kernel.UUID, agent kernel.AgentID) (AssignRouteCommand, error) {
	cmd := AssignRouteCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setRouteID(routeID),
		cmd.setAgent(agent),
	); err != nil {
		return AssignRouteCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c AssignRouteCommand) Validate() error {
	return c.guard.Validate(ErrAssignRouteCommandIsNotConstructed)
}

// RouteID returns the identifier of the route being claimed.
func (c AssignRouteCommand) RouteID() kernel.UUID {
	return c.routeID
}

// Agent returns the identity of the claiming agent.
func (c AssignRouteCommand) Agent() kernel.AgentID {
	return c.agent
}

func (c *AssignRouteCommand) setRouteID(routeID kernel.UUID) error {
	if err := routeID.Validate(); err != nil {
		return err
	}
	c.routeID = routeID
	return nil
}

func (c *AssignRouteCommand) setAgent(agent kernel.AgentID) error {
	if err := agent.Validate(); err != nil {
		return err
	}
	c.agent = agent
	return nil
}
