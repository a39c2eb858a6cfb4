package commands

import (
	"errors"

	"parcels/internal/core/domain/model/kernel"
	"parcels/internal/pkg/guard"
)

var ErrUnassignRouteCommandIsNotConstructed = errors.New(
	"UnassignRouteCommand must be created via NewUnassignRouteCommand constructor",
)

// UnassignRouteCommand represents a delivery agent's request to release a
// route back to the pool. Only the agent the route is assigned to may
// release it.
type UnassignRouteCommand struct { //nolint:recvcheck //using for validation
	routeID kernel.UUID
	agent   kernel.AgentID

	guard guard.ConstructorGuard
}

// NewUnassignRouteCommand creates a command for the given agent to release
// the given route.
func NewUnassignRouteCommand(routeID kernel.UUID, agent kernel.AgentID) (UnassignRouteCommand, error) {
	cmd := UnassignRouteCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setRouteID(routeID),
		cmd.setAgent(agent),
	); err != nil {
		return UnassignRouteCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c UnassignRouteCommand) Validate() error {
	return c.guard.Validate(ErrUnassignRouteCommandIsNotConstructed)
}

// RouteID returns the identifier of the route being released.
func (c UnassignRouteCommand) RouteID() kernel.UUID {
	return c.routeID
}

// Agent returns the identity of the releasing agent.
func (c UnassignRouteCommand) Agent() kernel.AgentID {
	return c.agent
}

func (c *UnassignRouteCommand) setRouteID(routeID kernel.UUID) error {
	if err := routeID.Validate(); err != nil {
		return err
	}
	c.routeID = routeID
	return nil
}

func (c *UnassignRouteCommand) setAgent(agent kernel.AgentID) error {
	if err := agent.Validate(); err != nil {
		return err
	}
	c.agent = agent
	return nil
}
