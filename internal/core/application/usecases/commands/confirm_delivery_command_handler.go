package commands

import (
	"context"
)

// ConfirmDeliveryCommandHandler handles recipient confirmation of a parcel
// that is out for delivery.
//
// Concurrency-critical: two concurrent confirmations of the same parcel must
// produce exactly one completion. The check-and-complete runs as a
// serializable read-evaluate-write unit; the loser re-reads a Completed
// parcel on retry and is declined with parcel.ErrNotInTransit.
type ConfirmDeliveryCommandHandler struct {
	uowFactory UoWFactory
}

// NewConfirmDeliveryCommandHandler creates a handler for delivery
// confirmation.
func NewConfirmDeliveryCommandHandler(uowFactory UoWFactory) ConfirmDeliveryCommandHandler {
	return ConfirmDeliveryCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the confirmation. Declines are evaluated in a fixed
// order: missing parcel, parcel not in transit, missing confirmation code
// record, code mismatch. Only an exact match completes the parcel.
func (h *ConfirmDeliveryCommandHandler) Handle(ctx context.Context, cmd ConfirmDeliveryCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	return runSerializable(ctx, h.uowFactory, func(ctx context.Context, uow UoW) error {
		prc, err := uow.ParcelRepository().Get(ctx, cmd.ParcelID())
		if err != nil {
			return err
		}

		if err = prc.Complete(); err != nil {
			return err
		}

		code, err := uow.ConfirmationCodeRepository().GetByParcelID(ctx, cmd.ParcelID())
		if err != nil {
			return err
		}

		if err = code.Verify(cmd.Code()); err != nil {
			return err
		}

		return uow.ParcelRepository().Update(ctx, prc)
	})
}
