package commands_test

import (
	"fmt"
	"testing"

	"parcels/internal/core/application/usecases/commands"
	"parcels/internal/core/domain/model/kernel"
	"parcels/internal/core/domain/model/parcel"
	"parcels/internal/core/domain/model/route"
	"parcels/internal/core/ports"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func claimedRoute(t *testing.T, parcelID kernel.UUID, agent kernel.AgentID) *route.Route {
	t.Helper()
	rt, err := route.RestoreRoute(
		kernel.NewUUID(),
		parcelID,
		testDestination("Av. Juarez 50", "CDMX"),
		testSchedule(),
		route.Pending,
		&agent,
	)
	require.NoError(t, err)
	return rt
}

func TestAssignRouteCommandHandler_Handle_SuccessReservesParcel(t *testing.T) {
	ctx := t.Context()
	prc := restoredParcel(t, parcel.Available)
	rt := routeForParcel(t, prc.ID())
	agent := testAgent("agent-7")
	cmd, err := commands.NewAssignRouteCommand(rt.ID(), agent)
	require.NoError(t, err)

	parcelRepo := new(MockParcelRepository)
	routeRepo := new(MockRouteRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("BeginSerializable", ctx).Return(nil).Once(),
		uow.On("RouteRepository").Return(routeRepo).Once(),
		routeRepo.On("Get", mock.Anything, rt.ID()).Return(rt, nil).Once(),
		uow.On("RouteRepository").Return(routeRepo).Once(),
		routeRepo.On("Update", mock.Anything, rt).Return(nil).Once(),
		uow.On("ParcelRepository").Return(parcelRepo).Once(),
		parcelRepo.On("Get", mock.Anything, prc.ID()).Return(prc, nil).Once(),
		uow.On("ParcelRepository").Return(parcelRepo).Once(),
		parcelRepo.On("Update", mock.Anything, prc).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewAssignRouteCommandHandler(factory)
	require.NoError(t, h.Handle(ctx, cmd))

	require.Equal(t, route.Pending, rt.Status())
	require.NotNil(t, rt.AssignedAgent())
	require.True(t, rt.AssignedAgent().IsEqual(agent))
	require.Equal(t, parcel.Pending, prc.Status())
	uow.AssertExpectations(t)
}

func TestAssignRouteCommandHandler_Handle_ParcelAlreadyPendingLeftUntouched(t *testing.T) {
	ctx := t.Context()
	// Reclaim after a release: the parcel stayed Pending while the route
	// went back to Available.
	prc := restoredParcel(t, parcel.Pending)
	rt := routeForParcel(t, prc.ID())
	cmd, err := commands.NewAssignRouteCommand(rt.ID(), testAgent("agent-8"))
	require.NoError(t, err)

	parcelRepo := new(MockParcelRepository)
	routeRepo := new(MockRouteRepository)
	uow := new(MockUoW)
	uow.On("BeginSerializable", ctx).Return(nil)
	uow.On("RouteRepository").Return(routeRepo)
	routeRepo.On("Get", mock.Anything, rt.ID()).Return(rt, nil)
	routeRepo.On("Update", mock.Anything, rt).Return(nil)
	uow.On("ParcelRepository").Return(parcelRepo)
	parcelRepo.On("Get", mock.Anything, prc.ID()).Return(prc, nil)
	uow.On("Commit", ctx).Return(nil)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow)

	h := commands.NewAssignRouteCommandHandler(factory)
	require.NoError(t, h.Handle(ctx, cmd))

	require.Equal(t, parcel.Pending, prc.Status())
	parcelRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestAssignRouteCommandHandler_Handle_DeclinesWhenRouteAlreadyClaimed(t *testing.T) {
	ctx := t.Context()
	parcelID := kernel.NewUUID()
	holder := testAgent("agent-1")
	rt := claimedRoute(t, parcelID, holder)
	cmd, err := commands.NewAssignRouteCommand(rt.ID(), testAgent("agent-2"))
	require.NoError(t, err)

	routeRepo := new(MockRouteRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("BeginSerializable", ctx).Return(nil).Once(),
		uow.On("RouteRepository").Return(routeRepo).Once(),
		routeRepo.On("Get", mock.Anything, rt.ID()).Return(rt, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewAssignRouteCommandHandler(factory)
	err = h.Handle(ctx, cmd)
	require.ErrorIs(t, err, route.ErrNotAvailable)

	// The losing agent must not displace the holder.
	require.True(t, rt.AssignedAgent().IsEqual(holder))
	uow.AssertNotCalled(t, "Commit", mock.Anything)
}

func TestAssignRouteCommandHandler_Handle_RetriesOnSerializationConflict(t *testing.T) {
	ctx := t.Context()
	prc := restoredParcel(t, parcel.Available)
	rt := routeForParcel(t, prc.ID())
	cmd, err := commands.NewAssignRouteCommand(rt.ID(), testAgent("agent-7"))
	require.NoError(t, err)

	// First unit loses the race at commit; the second one runs clean.
	conflictRepo := new(MockRouteRepository)
	conflictUoW := new(MockUoW)
	conflictUoW.On("BeginSerializable", ctx).Return(nil)
	conflictUoW.On("RouteRepository").Return(conflictRepo)
	conflictRepo.On("Get", mock.Anything, rt.ID()).Return(routeForParcel(t, prc.ID()), nil)
	conflictRepo.On("Update", mock.Anything, mock.Anything).Return(nil)
	conflictParcelRepo := new(MockParcelRepository)
	conflictUoW.On("ParcelRepository").Return(conflictParcelRepo)
	conflictParcelRepo.On("Get", mock.Anything, prc.ID()).Return(restoredParcel(t, parcel.Available), nil)
	conflictParcelRepo.On("Update", mock.Anything, mock.Anything).Return(nil)
	conflictUoW.On("Commit", ctx).
		Return(fmt.Errorf("%w: could not serialize access", ports.ErrSerializationConflict))

	cleanParcelRepo := new(MockParcelRepository)
	cleanRouteRepo := new(MockRouteRepository)
	cleanUoW := new(MockUoW)
	cleanUoW.On("BeginSerializable", ctx).Return(nil)
	cleanUoW.On("RouteRepository").Return(cleanRouteRepo)
	cleanRouteRepo.On("Get", mock.Anything, rt.ID()).Return(rt, nil)
	cleanRouteRepo.On("Update", mock.Anything, rt).Return(nil)
	cleanUoW.On("ParcelRepository").Return(cleanParcelRepo)
	cleanParcelRepo.On("Get", mock.Anything, prc.ID()).Return(prc, nil)
	cleanParcelRepo.On("Update", mock.Anything, prc).Return(nil)
	cleanUoW.On("Commit", ctx).Return(nil)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(conflictUoW).Once()
	factory.On("Create").Return(cleanUoW).Once()

	h := commands.NewAssignRouteCommandHandler(factory)
	require.NoError(t, h.Handle(ctx, cmd))
	require.Equal(t, route.Pending, rt.Status())
	factory.AssertExpectations(t)
}

func TestAssignRouteCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	factory := new(MockUoWFactory)
	h := commands.NewAssignRouteCommandHandler(factory)

	err := h.Handle(ctx, commands.AssignRouteCommand{})
	require.Error(t, err)
	factory.AssertNotCalled(t, "Create")
}
