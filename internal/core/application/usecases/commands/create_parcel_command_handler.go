package commands

import (
	"context"

	"parcels/internal/core/domain/model/confirmation"
	"parcels/internal/core/domain/model/kernel"
	"parcels/internal/core/domain/model/parcel"
	"parcels/internal/core/domain/model/route"
	"parcels/internal/core/domain/services"
)

// CreateParcelResult carries the outcome of parcel creation back to the
// caller: the parcel identifier and the confirmation code the recipient will
// present on delivery.
type CreateParcelResult struct {
	ParcelID         kernel.UUID
	ConfirmationCode string
}

// CreateParcelCommandHandler handles parcel registration. Creation writes
// three entities as one indivisible unit: the parcel (Available), its route
// (Available, destination and schedule denormalized from the parcel), and the
// freshly generated confirmation code. Readers observe all three or none.
type CreateParcelCommandHandler struct {
	uowFactory    UoWFactory
	codeGenerator services.CodeGenerator
}

// NewCreateParcelCommandHandler creates a handler for parcel creation.
// Requires a UoWFactory for transactional persistence and a CodeGenerator
// for confirmation codes.
func NewCreateParcelCommandHandler(
	uowFactory UoWFactory,
	codeGenerator services.CodeGenerator,
) CreateParcelCommandHandler {
	return CreateParcelCommandHandler{
		uowFactory:    uowFactory,
		codeGenerator: codeGenerator,
	}
}

// Handle processes the parcel creation command. There is no cross-document
// read dependency at creation time, so a plain transaction suffices; the
// transaction still guarantees none of the three writes applies if any fails.
func (h *CreateParcelCommandHandler) Handle(
	ctx context.Context,
	cmd CreateParcelCommand,
) (CreateParcelResult, error) {
	if err := cmd.Validate(); err != nil {
		return CreateParcelResult{}, err
	}

	newParcel, err := parcel.NewParcel(cmd.ParcelID(), cmd.Destination(), cmd.Schedule(), cmd.CreatedBy())
	if err != nil {
		return CreateParcelResult{}, err
	}

	newRoute, err := route.NewRoute(kernel.NewUUID(), newParcel.ID(), cmd.Destination(), cmd.Schedule())
	if err != nil {
		return CreateParcelResult{}, err
	}

	code, err := confirmation.NewCode(kernel.NewUUID(), newParcel.ID(), h.codeGenerator.Generate())
	if err != nil {
		return CreateParcelResult{}, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return CreateParcelResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.ParcelRepository().Add(ctx, newParcel); err != nil {
		return CreateParcelResult{}, err
	}

	if err = uow.RouteRepository().Add(ctx, newRoute); err != nil {
		return CreateParcelResult{}, err
	}

	if err = uow.ConfirmationCodeRepository().Add(ctx, code); err != nil {
		return CreateParcelResult{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return CreateParcelResult{}, err
	}

	return CreateParcelResult{
		ParcelID:         newParcel.ID(),
		ConfirmationCode: code.Value(),
	}, nil
}
