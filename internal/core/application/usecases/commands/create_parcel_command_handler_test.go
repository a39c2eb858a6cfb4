package commands_test

import (
	"errors"
	"testing"

	"parcels/internal/core/application/usecases/commands"
	"parcels/internal/core/domain/model/confirmation"
	"parcels/internal/core/domain/model/kernel"
	"parcels/internal/core/domain/services"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func validCreateParcelCommand(t *testing.T) commands.CreateParcelCommand {
	t.Helper()
	cmd, err := commands.NewCreateParcelCommand(
		kernel.NewUUID(),
		testDestination("Av. Reforma 222", "CDMX"),
		testSchedule(),
		testAgent("sender-1"),
	)
	require.NoError(t, err)
	return cmd
}

func TestCreateParcelCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	cmd := validCreateParcelCommand(t)

	parcelRepo := new(MockParcelRepository)
	routeRepo := new(MockRouteRepository)
	codeRepo := new(MockConfirmationCodeRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ParcelRepository").Return(parcelRepo).Once(),
		parcelRepo.On("Add", mock.Anything, mock.AnythingOfType("*parcel.Parcel")).Return(nil).Once(),
		uow.On("RouteRepository").Return(routeRepo).Once(),
		routeRepo.On("Add", mock.Anything, mock.AnythingOfType("*route.Route")).Return(nil).Once(),
		uow.On("ConfirmationCodeRepository").Return(codeRepo).Once(),
		codeRepo.On("Add", mock.Anything, mock.AnythingOfType("*confirmation.Code")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateParcelCommandHandler(factory, services.NewDefaultCodeGenerator())
	result, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	require.Equal(t, cmd.ParcelID(), result.ParcelID)
	require.NoError(t, confirmation.ValidateFormat(result.ConfirmationCode))

	parcelRepo.AssertExpectations(t)
	routeRepo.AssertExpectations(t)
	codeRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestCreateParcelCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	factory := new(MockUoWFactory)
	h := commands.NewCreateParcelCommandHandler(factory, services.NewDefaultCodeGenerator())

	_, err := h.Handle(ctx, commands.CreateParcelCommand{})
	require.Error(t, err)
	factory.AssertNotCalled(t, "Create")
}

func TestCreateParcelCommandHandler_Handle_RouteAddErrorRollsBack(t *testing.T) {
	ctx := t.Context()
	cmd := validCreateParcelCommand(t)

	parcelRepo := new(MockParcelRepository)
	routeRepo := new(MockRouteRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ParcelRepository").Return(parcelRepo).Once(),
		parcelRepo.On("Add", mock.Anything, mock.AnythingOfType("*parcel.Parcel")).Return(nil).Once(),
		uow.On("RouteRepository").Return(routeRepo).Once(),
		routeRepo.On("Add", mock.Anything, mock.AnythingOfType("*route.Route")).
			Return(errors.New("route insert failed")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateParcelCommandHandler(factory, services.NewDefaultCodeGenerator())
	_, err := h.Handle(ctx, cmd)
	require.Error(t, err)

	uow.AssertNotCalled(t, "Commit", mock.Anything)
	uow.AssertExpectations(t)
}

func TestCreateParcelCommandHandler_Handle_BeginError(t *testing.T) {
	ctx := t.Context()
	cmd := validCreateParcelCommand(t)

	uow := new(MockUoW)
	factory := new(MockUoWFactory)
	mock.InOrder(
		factory.On("Create").Return(uow).Once(),
		uow.On("Begin", ctx).Return(errors.New("begin error")).Once(),
	)

	h := commands.NewCreateParcelCommandHandler(factory, services.NewDefaultCodeGenerator())
	_, err := h.Handle(ctx, cmd)
	require.Error(t, err)
}

func TestCreateParcelCommandHandler_Handle_DistinctCodesPerParcel(t *testing.T) {
	ctx := t.Context()

	codes := make(map[string]bool)
	for range 20 {
		cmd := validCreateParcelCommand(t)

		parcelRepo := new(MockParcelRepository)
		routeRepo := new(MockRouteRepository)
		codeRepo := new(MockConfirmationCodeRepository)
		uow := new(MockUoW)
		uow.On("Begin", ctx).Return(nil)
		uow.On("ParcelRepository").Return(parcelRepo)
		uow.On("RouteRepository").Return(routeRepo)
		uow.On("ConfirmationCodeRepository").Return(codeRepo)
		parcelRepo.On("Add", mock.Anything, mock.Anything).Return(nil)
		routeRepo.On("Add", mock.Anything, mock.Anything).Return(nil)
		codeRepo.On("Add", mock.Anything, mock.Anything).Return(nil)
		uow.On("Commit", ctx).Return(nil)
		uow.On("Rollback", ctx).Return(nil)

		factory := new(MockUoWFactory)
		factory.On("Create").Return(uow)

		h := commands.NewCreateParcelCommandHandler(factory, services.NewDefaultCodeGenerator())
		result, err := h.Handle(ctx, cmd)
		require.NoError(t, err)
		codes[result.ConfirmationCode] = true
	}

	// 36^6 possible codes; 20 draws colliding would point at a broken source.
	require.Greater(t, len(codes), 15)
}
