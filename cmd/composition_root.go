package cmd

import (
	"context"
	"time"

	"logistics/internal/adapters/out/crypto"
	"logistics/internal/adapters/out/jwtauth"
	"logistics/internal/adapters/out/postgres"
	"logistics/internal/core/application/usecases/commands"
	"logistics/internal/core/application/usecases/queries"
	"logistics/internal/core/domain/model/account"
	"logistics/internal/core/ports"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	hasher     *crypto.BcryptHasher
	signer     *jwtauth.HS256Signer
	tokenTTL   time.Duration
}

func NewCompositionRoot(config Config, gormDB *gorm.DB) CompositionRoot {
	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		hasher:     crypto.NewBcryptHasher(config.BcryptCost),
		signer:     jwtauth.NewHS256Signer([]byte(config.JWTSecret), config.JWTIssuer),
		tokenTTL:   time.Duration(config.JWTTTLMinutes) * time.Minute,
	}
}

func (c *CompositionRoot) TokenSigner() ports.TokenSigner {
	return c.signer
}

func (c *CompositionRoot) CreateCreateShipmentCommandHandler() commands.CreateShipmentCommandHandler {
	return commands.NewCreateShipmentCommandHandler(c.dispatchUoWFactory())
}

func (c *CompositionRoot) CreateUpdateShipmentCommandHandler() commands.UpdateShipmentCommandHandler {
	return commands.NewUpdateShipmentCommandHandler(c.dispatchUoWFactory())
}

func (c *CompositionRoot) CreateTransitionShipmentCommandHandler() commands.TransitionShipmentCommandHandler {
	return commands.NewTransitionShipmentCommandHandler(c.shipmentUoWFactory())
}

func (c *CompositionRoot) CreateAddShipmentEventCommandHandler() commands.AddShipmentEventCommandHandler {
	return commands.NewAddShipmentEventCommandHandler(c.shipmentUoWFactory())
}

func (c *CompositionRoot) CreateDeleteShipmentCommandHandler() commands.DeleteShipmentCommandHandler {
	return commands.NewDeleteShipmentCommandHandler(c.shipmentUoWFactory())
}

func (c *CompositionRoot) CreateRegisterUserCommandHandler() commands.RegisterUserCommandHandler {
	return commands.NewRegisterUserCommandHandler(c.userUoWFactory(), c.hasher)
}

func (c *CompositionRoot) CreateChangeUserPasswordCommandHandler() commands.ChangeUserPasswordCommandHandler {
	return commands.NewChangeUserPasswordCommandHandler(c.userUoWFactory(), c.hasher)
}

func (c *CompositionRoot) CreateUpdateUserProfileCommandHandler() commands.UpdateUserProfileCommandHandler {
	return commands.NewUpdateUserProfileCommandHandler(c.userUoWFactory())
}

func (c *CompositionRoot) CreateChangeUserRoleCommandHandler() commands.ChangeUserRoleCommandHandler {
	return commands.NewChangeUserRoleCommandHandler(c.userUoWFactory())
}

func (c *CompositionRoot) CreateDeactivateUserCommandHandler() commands.DeactivateUserCommandHandler {
	return commands.NewDeactivateUserCommandHandler(c.userUoWFactory())
}

func (c *CompositionRoot) CreateCreateHubCommandHandler() commands.CreateHubCommandHandler {
	return commands.NewCreateHubCommandHandler(c.directoryUoWFactory())
}

func (c *CompositionRoot) CreateCreateRouteCommandHandler() commands.CreateRouteCommandHandler {
	return commands.NewCreateRouteCommandHandler(c.directoryUoWFactory())
}

func (c *CompositionRoot) CreateAuthenticateUserQueryHandler() queries.AuthenticateUserQueryHandler {
	var users queries.UserProvider = FuncUserProvider(func(ctx context.Context, email string) (*account.User, error) {
		return c.uowFactory.Create().UserRepository().GetByEmail(ctx, email)
	})
	return queries.NewAuthenticateUserQueryHandler(users, c.hasher, c.signer, c.tokenTTL)
}

func (c *CompositionRoot) CreateGetShipmentQueryHandler() queries.GetShipmentQueryHandler {
	return queries.NewGetShipmentQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateListShipmentsQueryHandler() queries.ListShipmentsQueryHandler {
	return queries.NewListShipmentsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateListUsersQueryHandler() queries.ListUsersQueryHandler {
	return queries.NewListUsersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetDashboardStatsQueryHandler() queries.GetDashboardStatsQueryHandler {
	return queries.NewGetDashboardStatsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) shipmentUoWFactory() commands.ShipmentUoWFactory {
	return FuncShipmentUoWFactory(func() commands.ShipmentUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) userUoWFactory() commands.UserUoWFactory {
	return FuncUserUoWFactory(func() commands.UserUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) directoryUoWFactory() commands.DirectoryUoWFactory {
	return FuncDirectoryUoWFactory(func() commands.DirectoryUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) dispatchUoWFactory() commands.DispatchUoWFactory {
	return FuncDispatchUoWFactory(func() commands.DispatchUoW {
		return c.uowFactory.Create()
	})
}

type FuncShipmentUoWFactory func() commands.ShipmentUoW

func (f FuncShipmentUoWFactory) Create() commands.ShipmentUoW {
	return f()
}

type FuncUserUoWFactory func() commands.UserUoW

func (f FuncUserUoWFactory) Create() commands.UserUoW {
	return f()
}

type FuncDirectoryUoWFactory func() commands.DirectoryUoW

func (f FuncDirectoryUoWFactory) Create() commands.DirectoryUoW {
	return f()
}

type FuncDispatchUoWFactory func() commands.DispatchUoW

func (f FuncDispatchUoWFactory) Create() commands.DispatchUoW {
	return f()
}

type FuncUserProvider func(ctx context.Context, email string) (*account.User, error)

func (f FuncUserProvider) GetByEmail(ctx context.Context, email string) (*account.User, error) {
	return f(ctx, email)
}
