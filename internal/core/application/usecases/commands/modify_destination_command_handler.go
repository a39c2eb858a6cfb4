package commands

import (
	"context"
)

// ModifyDestinationCommandHandler handles destination edits. The parcel gates
// the edit (it must still be Available or Pending) but the mutation lands on
// the route's denormalized destination: after creation the route copy is the
// operational address, while the parcel keeps its creation-time snapshot.
type ModifyDestinationCommandHandler struct {
	uowFactory UoWFactory
}

// NewModifyDestinationCommandHandler creates a handler for destination edits.
func NewModifyDestinationCommandHandler(uowFactory UoWFactory) ModifyDestinationCommandHandler {
	return ModifyDestinationCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the destination edit. Declines with an object-not-found
// error when parcel or route is missing and with parcel.ErrNotModifiable when
// the parcel has already started moving. No mutation is applied on decline.
func (h *ModifyDestinationCommandHandler) Handle(ctx context.Context, cmd ModifyDestinationCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	prc, err := uow.ParcelRepository().Get(ctx, cmd.ParcelID())
	if err != nil {
		return err
	}

	if err = prc.ValidateModifiable(); err != nil {
		return err
	}

	rt, err := uow.RouteRepository().GetByParcelID(ctx, cmd.ParcelID())
	if err != nil {
		return err
	}

	if err = rt.ChangeDestination(cmd.NewDestination()); err != nil {
		return err
	}

	if err = uow.RouteRepository().Update(ctx, rt); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
