package commands_test

import (
	"testing"

	"parcels/internal/core/application/usecases/commands"
	"parcels/internal/core/domain/model/kernel"
	"parcels/internal/core/domain/model/route"
	"parcels/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestUnassignRouteCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	agent := testAgent("agent-3")
	rt := claimedRoute(t, kernel.NewUUID(), agent)
	cmd, err := commands.NewUnassignRouteCommand(rt.ID(), agent)
	require.NoError(t, err)

	routeRepo := new(MockRouteRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("BeginSerializable", ctx).Return(nil).Once(),
		uow.On("RouteRepository").Return(routeRepo).Once(),
		routeRepo.On("Get", mock.Anything, rt.ID()).Return(rt, nil).Once(),
		uow.On("RouteRepository").Return(routeRepo).Once(),
		routeRepo.On("Update", mock.Anything, rt).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
	)

	factory := new(MockRouteUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewUnassignRouteCommandHandler(factory)
	require.NoError(t, h.Handle(ctx, cmd))

	require.Equal(t, route.Available, rt.Status())
	require.Nil(t, rt.AssignedAgent())
	uow.AssertExpectations(t)
}

func TestUnassignRouteCommandHandler_Handle_DeclinesOtherAgentsRoute(t *testing.T) {
	ctx := t.Context()
	holder := testAgent("agent-1")
	rt := claimedRoute(t, kernel.NewUUID(), holder)
	cmd, err := commands.NewUnassignRouteCommand(rt.ID(), testAgent("agent-2"))
	require.NoError(t, err)

	routeRepo := new(MockRouteRepository)
	uow := new(MockUoW)
	uow.On("BeginSerializable", ctx).Return(nil)
	uow.On("RouteRepository").Return(routeRepo)
	routeRepo.On("Get", mock.Anything, rt.ID()).Return(rt, nil)
	uow.On("Rollback", ctx).Return(nil)

	factory := new(MockRouteUoWFactory)
	factory.On("Create").Return(uow)

	h := commands.NewUnassignRouteCommandHandler(factory)
	err = h.Handle(ctx, cmd)
	require.ErrorIs(t, err, route.ErrAssignedToOtherAgent)
	require.ErrorIs(t, err, errs.ErrNotEntitled)

	// Holder keeps the route.
	require.Equal(t, route.Pending, rt.Status())
	require.True(t, rt.AssignedAgent().IsEqual(holder))
	uow.AssertNotCalled(t, "Commit", mock.Anything)
}

func TestUnassignRouteCommandHandler_Handle_DeclinesUnclaimedRoute(t *testing.T) {
	ctx := t.Context()
	agent := testAgent("agent-3")
	rt := routeForParcel(t, kernel.NewUUID())
	cmd, err := commands.NewUnassignRouteCommand(rt.ID(), agent)
	require.NoError(t, err)

	routeRepo := new(MockRouteRepository)
	uow := new(MockUoW)
	uow.On("BeginSerializable", ctx).Return(nil)
	uow.On("RouteRepository").Return(routeRepo)
	routeRepo.On("Get", mock.Anything, rt.ID()).Return(rt, nil)
	uow.On("Rollback", ctx).Return(nil)

	factory := new(MockRouteUoWFactory)
	factory.On("Create").Return(uow)

	h := commands.NewUnassignRouteCommandHandler(factory)
	require.ErrorIs(t, h.Handle(ctx, cmd), route.ErrNotPending)
}

func TestUnassignRouteCommandHandler_Handle_RouteNotFound(t *testing.T) {
	ctx := t.Context()
	routeID := kernel.NewUUID()
	cmd, err := commands.NewUnassignRouteCommand(routeID, testAgent("agent-3"))
	require.NoError(t, err)

	routeRepo := new(MockRouteRepository)
	uow := new(MockUoW)
	uow.On("BeginSerializable", ctx).Return(nil)
	uow.On("RouteRepository").Return(routeRepo)
	routeRepo.On("Get", mock.Anything, routeID).
		Return(nil, errs.NewObjectNotFoundError("route", routeID.String()))
	uow.On("Rollback", ctx).Return(nil)

	factory := new(MockRouteUoWFactory)
	factory.On("Create").Return(uow)

	h := commands.NewUnassignRouteCommandHandler(factory)
	require.ErrorIs(t, h.Handle(ctx, cmd), errs.ErrObjectNotFound)
}
