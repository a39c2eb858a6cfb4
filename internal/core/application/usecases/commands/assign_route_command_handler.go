package commands

import (
	"context"

	"parcels/internal/core/domain/model/parcel"
)

// AssignRouteCommandHandler handles route claims by delivery agents.
//
// Concurrency-critical: two agents racing to claim the same available route
// must not both succeed. The claim runs as a serializable read-evaluate-write
// unit; the first commit observes Available and wins, the loser re-reads on
// retry, observes Pending, and is declined with route.ErrNotAvailable.
type AssignRouteCommandHandler struct {
	uowFactory UoWFactory
}

// NewAssignRouteCommandHandler creates a handler for route assignment.
func NewAssignRouteCommandHandler(uowFactory UoWFactory) AssignRouteCommandHandler {
	return AssignRouteCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the route claim. Claiming also moves the parcel from
// Available to Pending within the same transaction, keeping the start-route
// operation reachable. A parcel already past Available (a released route
// being reclaimed) is left untouched.
func (h *AssignRouteCommandHandler) Handle(ctx context.Context, cmd AssignRouteCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	return runSerializable(ctx, h.uowFactory, func(ctx context.Context, uow UoW) error {
		rt, err := uow.RouteRepository().Get(ctx, cmd.RouteID())
		if err != nil {
			return err
		}

		if err = rt.Assign(cmd.Agent()); err != nil {
			return err
		}

		if err = uow.RouteRepository().Update(ctx, rt); err != nil {
			return err
		}

		prc, err := uow.ParcelRepository().Get(ctx, rt.ParcelID())
		if err != nil {
			return err
		}

		if prc.Status() == parcel.Available {
			if err = prc.Reserve(); err != nil {
				return err
			}
			if err = uow.ParcelRepository().Update(ctx, prc); err != nil {
				return err
			}
		}

		return nil
	})
}
