package cmd

import (
	"log/slog"

	"parcels/internal/adapters/out/identity"
	"parcels/internal/adapters/out/postgres"
	"parcels/internal/core/application/usecases/commands"
	"parcels/internal/core/application/usecases/queries"
	"parcels/internal/core/domain/services"
	"parcels/internal/core/ports"

	"gorm.io/gorm"
)

// CompositionRoot wires adapters into use-case handlers. It is the only
// place that knows concrete implementations.
type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory *postgres.GormUnitOfWorkFactory
	verifier   ports.IdentityVerifier
	logger     *slog.Logger
}

// NewCompositionRoot builds the object graph from the loaded configuration
// and an open database connection.
func NewCompositionRoot(config Config, gormDB *gorm.DB, logger *slog.Logger) (CompositionRoot, error) {
	verifier, err := identity.NewJWTVerifier([]byte(config.JWTSecret))
	if err != nil {
		return CompositionRoot{}, err
	}

	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: postgres.NewGormUnitOfWorkFactory(gormDB),
		verifier:   verifier,
		logger:     logger,
	}, nil
}

// IdentityVerifier exposes the bearer-token verifier for the HTTP layer.
func (c *CompositionRoot) IdentityVerifier() ports.IdentityVerifier {
	return c.verifier
}

// Logger exposes the root structured logger.
func (c *CompositionRoot) Logger() *slog.Logger {
	return c.logger
}

func (c *CompositionRoot) CreateCreateParcelCommandHandler() commands.CreateParcelCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateParcelCommandHandler(f, services.NewDefaultCodeGenerator())
}

func (c *CompositionRoot) CreateModifyDestinationCommandHandler() commands.ModifyDestinationCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewModifyDestinationCommandHandler(f)
}

func (c *CompositionRoot) CreateAssignRouteCommandHandler() commands.AssignRouteCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewAssignRouteCommandHandler(f)
}

func (c *CompositionRoot) CreateUnassignRouteCommandHandler() commands.UnassignRouteCommandHandler {
	var f commands.RouteUoWFactory = FuncRouteUoWFactory(func() commands.RouteUoW {
		return c.uowFactory.Create()
	})
	return commands.NewUnassignRouteCommandHandler(f)
}

func (c *CompositionRoot) CreateStartRouteCommandHandler() commands.StartRouteCommandHandler {
	var f commands.ParcelUoWFactory = FuncParcelUoWFactory(func() commands.ParcelUoW {
		return c.uowFactory.Create()
	})
	return commands.NewStartRouteCommandHandler(f)
}

func (c *CompositionRoot) CreateConfirmDeliveryCommandHandler() commands.ConfirmDeliveryCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewConfirmDeliveryCommandHandler(f)
}

func (c *CompositionRoot) CreateGetAvailableRoutesQueryHandler() queries.GetAvailableRoutesQueryHandler {
	return queries.NewGetAvailableRoutesQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetUncompletedParcelsQueryHandler() queries.GetUncompletedParcelsQueryHandler {
	return queries.NewGetUncompletedParcelsQueryHandler(c.gormDB)
}

// Func adapters narrow the concrete unit-of-work factory to the interface
// each handler declares.

type FuncParcelUoWFactory func() commands.ParcelUoW

func (f FuncParcelUoWFactory) Create() commands.ParcelUoW {
	return f()
}

type FuncRouteUoWFactory func() commands.RouteUoW

func (f FuncRouteUoWFactory) Create() commands.RouteUoW {
	return f()
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}
