package commands

import (
	"context"
)

// UnassignRouteCommandHandler handles route releases. The entitlement rule
// lives on the aggregate: an agent may only release a route assigned to
// themselves, and the route must be pending. The check and the write run
// inside one serializable unit so a concurrent claim cannot slip between
// them.
type UnassignRouteCommandHandler struct {
	uowFactory RouteUoWFactory
}

// NewUnassignRouteCommandHandler creates a handler for route releases.
func NewUnassignRouteCommandHandler(uowFactory RouteUoWFactory) UnassignRouteCommandHandler {
	return UnassignRouteCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the route release. Declines with an object-not-found
// error for a missing route, route.ErrAssignedToOtherAgent when another
// agent holds the route, and route.ErrNotPending when the route is not
// claimed. The parcel is left untouched.
func (h *UnassignRouteCommandHandler) Handle(ctx context.Context, cmd UnassignRouteCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	return runSerializable(ctx, h.uowFactory, func(ctx context.Context, uow RouteUoW) error {
		rt, err := uow.RouteRepository().Get(ctx, cmd.RouteID())
		if err != nil {
			return err
		}

		if err = rt.Unassign(cmd.Agent()); err != nil {
			return err
		}

		return uow.RouteRepository().Update(ctx, rt)
	})
}
