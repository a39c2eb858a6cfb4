// Package http provides the inbound HTTP adapter: an Echo server exposing
// the parcel lifecycle operations as a JSON API, with bearer-token
// authentication on every endpoint except the health probe.
package http

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"parcels/internal/core/application/usecases/commands"
	"parcels/internal/core/application/usecases/queries"
	"parcels/internal/core/domain/model/kernel"
	"parcels/internal/core/domain/model/route"
	"parcels/internal/core/ports"
	"parcels/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Server coordinates between HTTP handlers and the application use cases.
type Server struct {
	// Command handlers
	createParcelHandler      commands.CreateParcelCommandHandler
	modifyDestinationHandler commands.ModifyDestinationCommandHandler
	assignRouteHandler       commands.AssignRouteCommandHandler
	unassignRouteHandler     commands.UnassignRouteCommandHandler
	startRouteHandler        commands.StartRouteCommandHandler
	confirmDeliveryHandler   commands.ConfirmDeliveryCommandHandler

	// Query handlers
	availableRoutesHandler    queries.GetAvailableRoutesQueryHandler
	uncompletedParcelsHandler queries.GetUncompletedParcelsQueryHandler

	verifier ports.IdentityVerifier
	log      *slog.Logger
}

// NewServer creates an HTTP server wired to the given command and query
// handlers. The verifier guards every endpoint except the health probe.
func NewServer(
	createParcelHandler commands.CreateParcelCommandHandler,
	modifyDestinationHandler commands.ModifyDestinationCommandHandler,
	assignRouteHandler commands.AssignRouteCommandHandler,
	unassignRouteHandler commands.UnassignRouteCommandHandler,
	startRouteHandler commands.StartRouteCommandHandler,
	confirmDeliveryHandler commands.ConfirmDeliveryCommandHandler,
	availableRoutesHandler queries.GetAvailableRoutesQueryHandler,
	uncompletedParcelsHandler queries.GetUncompletedParcelsQueryHandler,
	verifier ports.IdentityVerifier,
	log *slog.Logger,
) *Server {
	return &Server{
		createParcelHandler:       createParcelHandler,
		modifyDestinationHandler:  modifyDestinationHandler,
		assignRouteHandler:        assignRouteHandler,
		unassignRouteHandler:      unassignRouteHandler,
		startRouteHandler:         startRouteHandler,
		confirmDeliveryHandler:    confirmDeliveryHandler,
		availableRoutesHandler:    availableRoutesHandler,
		uncompletedParcelsHandler: uncompletedParcelsHandler,
		verifier:                  verifier,
		log:                       log,
	}
}

// RegisterRoutes attaches all endpoints to the Echo instance. Everything
// under /api/v1 requires a verified bearer token.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", s.Health)

	api := e.Group("/api/v1", BearerAuth(s.verifier))
	api.POST("/parcels", s.CreateParcel)
	api.POST("/parcels/destination", s.ModifyDestination)
	api.POST("/parcels/start", s.StartRoute)
	api.POST("/parcels/confirm", s.ConfirmDelivery)
	api.GET("/parcels/uncompleted", s.GetUncompletedParcels)
	api.POST("/routes/assign", s.AssignRoute)
	api.POST("/routes/unassign", s.UnassignRoute)
	api.GET("/routes/available", s.GetAvailableRoutes)
}

// Health handles GET /health - liveness probe, no authentication.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, HealthResponse{
		Message:   "parcel service is running",
		Timestamp: time.Now().UTC(),
	})
}

// CreateParcel handles POST /api/v1/parcels - registers a parcel together
// with its route and confirmation code.
func (s *Server) CreateParcel(ctx echo.Context) error {
	agent, ok := agentFromContext(ctx)
	if !ok {
		return s.unauthorized(ctx)
	}

	var req CreateParcelRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	destination, err := kernel.NewDestination(req.Address, req.Locality)
	if err != nil {
		return badRequest(ctx, "Invalid destination: "+err.Error())
	}

	schedule, err := kernel.NewScheduleWindow(req.ScheduleFrom, req.ScheduleUntil)
	if err != nil {
		return badRequest(ctx, "Invalid schedule window: "+err.Error())
	}

	cmd, err := commands.NewCreateParcelCommand(kernel.NewUUID(), destination, schedule, agent)
	if err != nil {
		return badRequest(ctx, "Invalid parcel data: "+err.Error())
	}

	result, err := s.createParcelHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.mapError(ctx, err, "create parcel")
	}

	return ctx.JSON(http.StatusCreated, CreateParcelResponse{
		ParcelID:         result.ParcelID.String(),
		ConfirmationCode: result.ConfirmationCode,
	})
}

// ModifyDestination handles POST /api/v1/parcels/destination - edits the
// delivery address of a parcel that has not started moving.
func (s *Server) ModifyDestination(ctx echo.Context) error {
	var req ModifyDestinationRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	parcelID, err := kernel.UUIDFromString(req.ParcelID)
	if err != nil {
		return badRequest(ctx, "Invalid parcel ID: "+err.Error())
	}

	destination, err := kernel.NewDestination(req.Address, req.Locality)
	if err != nil {
		return badRequest(ctx, "Invalid destination: "+err.Error())
	}

	cmd, err := commands.NewModifyDestinationCommand(parcelID, destination)
	if err != nil {
		return badRequest(ctx, "Invalid destination data: "+err.Error())
	}

	if err = s.modifyDestinationHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.mapError(ctx, err, "modify destination")
	}

	return ctx.JSON(http.StatusOK, SuccessResponse{Success: true})
}

// AssignRoute handles POST /api/v1/routes/assign - claims an available route
// for the authenticated agent. A route that is no longer available yields
// 409 so racing agents can tell the difference from a bad request.
func (s *Server) AssignRoute(ctx echo.Context) error {
	agent, ok := agentFromContext(ctx)
	if !ok {
		return s.unauthorized(ctx)
	}

	var req AssignRouteRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	routeID, err := kernel.UUIDFromString(req.RouteID)
	if err != nil {
		return badRequest(ctx, "Invalid route ID: "+err.Error())
	}

	cmd, err := commands.NewAssignRouteCommand(routeID, agent)
	if err != nil {
		return badRequest(ctx, "Invalid assignment data: "+err.Error())
	}

	if err = s.assignRouteHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		if errors.Is(err, route.ErrNotAvailable) {
			return ctx.JSON(http.StatusConflict, ErrorResponse{
				Code:    http.StatusConflict,
				Message: "Route is not available for assignment",
			})
		}
		return s.mapError(ctx, err, "assign route")
	}

	return ctx.JSON(http.StatusOK, SuccessResponse{Success: true})
}

// UnassignRoute handles POST /api/v1/routes/unassign - releases a claimed
// route back to the pool. Only the assigned agent may release it.
func (s *Server) UnassignRoute(ctx echo.Context) error {
	agent, ok := agentFromContext(ctx)
	if !ok {
		return s.unauthorized(ctx)
	}

	var req UnassignRouteRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	routeID, err := kernel.UUIDFromString(req.RouteID)
	if err != nil {
		return badRequest(ctx, "Invalid route ID: "+err.Error())
	}

	cmd, err := commands.NewUnassignRouteCommand(routeID, agent)
	if err != nil {
		return badRequest(ctx, "Invalid release data: "+err.Error())
	}

	if err = s.unassignRouteHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.mapError(ctx, err, "unassign route")
	}

	return ctx.JSON(http.StatusOK, SuccessResponse{
		Success: true,
		Message: "Route released",
	})
}

// StartRoute handles POST /api/v1/parcels/start - begins the delivery run
// for a claimed parcel.
func (s *Server) StartRoute(ctx echo.Context) error {
	var req StartRouteRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	parcelID, err := kernel.UUIDFromString(req.ParcelID)
	if err != nil {
		return badRequest(ctx, "Invalid parcel ID: "+err.Error())
	}

	cmd, err := commands.NewStartRouteCommand(parcelID)
	if err != nil {
		return badRequest(ctx, "Invalid start data: "+err.Error())
	}

	if err = s.startRouteHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.mapError(ctx, err, "start route")
	}

	return ctx.JSON(http.StatusOK, SuccessResponse{Success: true})
}

// ConfirmDelivery handles POST /api/v1/parcels/confirm - completes a parcel
// using the recipient's confirmation code.
func (s *Server) ConfirmDelivery(ctx echo.Context) error {
	var req ConfirmDeliveryRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	parcelID, err := kernel.UUIDFromString(req.ParcelID)
	if err != nil {
		return badRequest(ctx, "Invalid parcel ID: "+err.Error())
	}

	cmd, err := commands.NewConfirmDeliveryCommand(parcelID, req.Code)
	if err != nil {
		return badRequest(ctx, "Invalid confirmation data: "+err.Error())
	}

	if err = s.confirmDeliveryHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.mapError(ctx, err, "confirm delivery")
	}

	return ctx.JSON(http.StatusOK, SuccessResponse{Success: true})
}

// GetAvailableRoutes handles GET /api/v1/routes/available - lists routes
// open for claiming.
func (s *Server) GetAvailableRoutes(ctx echo.Context) error {
	query := queries.NewGetAvailableRoutesQuery()

	routes, err := s.availableRoutesHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.mapError(ctx, err, "get available routes")
	}

	response := make([]AvailableRoute, len(routes))
	for i, rt := range routes {
		response[i] = AvailableRoute{
			ID:            rt.ID.String(),
			ParcelID:      rt.ParcelID.String(),
			Address:       rt.Address,
			Locality:      rt.Locality,
			ScheduleFrom:  rt.ScheduleFrom,
			ScheduleUntil: rt.ScheduleUntil,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetUncompletedParcels handles GET /api/v1/parcels/uncompleted - lists
// parcels still moving through the lifecycle.
func (s *Server) GetUncompletedParcels(ctx echo.Context) error {
	query := queries.NewGetUncompletedParcelsQuery()

	parcels, err := s.uncompletedParcelsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.mapError(ctx, err, "get uncompleted parcels")
	}

	response := make([]UncompletedParcel, len(parcels))
	for i, prc := range parcels {
		response[i] = UncompletedParcel{
			ID:       prc.ID.String(),
			Address:  prc.Address,
			Locality: prc.Locality,
			Status:   prc.Status,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// mapError converts use-case errors to HTTP responses. Declines carry their
// cause; infrastructure faults are logged and answered with a generic 500.
func (s *Server) mapError(ctx echo.Context, err error, operation string) error {
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return ctx.JSON(http.StatusNotFound, ErrorResponse{
			Code:    http.StatusNotFound,
			Message: err.Error(),
		})
	case errors.Is(err, errs.ErrNotEntitled):
		return ctx.JSON(http.StatusForbidden, ErrorResponse{
			Code:    http.StatusForbidden,
			Message: err.Error(),
		})
	case errors.Is(err, errs.ErrValueIsInvalid), errors.Is(err, errs.ErrValueIsRequired):
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: err.Error(),
		})
	default:
		s.log.Error("request failed", "operation", operation, "error", err)
		return ctx.JSON(http.StatusInternalServerError, ErrorResponse{
			Code:    http.StatusInternalServerError,
			Message: "Internal server error",
		})
	}
}

func (s *Server) unauthorized(ctx echo.Context) error {
	return ctx.JSON(http.StatusUnauthorized, ErrorResponse{
		Code:    http.StatusUnauthorized,
		Message: "Missing caller identity",
	})
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, ErrorResponse{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}
