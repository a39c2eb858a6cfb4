package commands

import (
	"context"
)

// StartRouteCommandHandler handles the start of a delivery run. The
// precondition and the write target the same single document, so a plain
// read-then-update transaction suffices; the repository's state-predicated
// update still surfaces a lost race as an error. The route's own state is
// deliberately not cross-checked here.
type StartRouteCommandHandler struct {
	uowFactory ParcelUoWFactory
}

// NewStartRouteCommandHandler creates a handler for starting delivery runs.
func NewStartRouteCommandHandler(uowFactory ParcelUoWFactory) StartRouteCommandHandler {
	return StartRouteCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the start request. Declines with an object-not-found
// error for a missing parcel and parcel.ErrNotPending when the parcel has
// not been claimed or is already moving.
func (h *StartRouteCommandHandler) Handle(ctx context.Context, cmd StartRouteCommand) error {
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

	if err = prc.Start(); err != nil {
		return err
	}

	if err = uow.ParcelRepository().Update(ctx, prc); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
