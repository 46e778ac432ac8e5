package commands

import (
	"context"

	"logistics/internal/core/domain/model/directory"
	"logistics/internal/core/domain/services"
)

// CreateRouteCommandHandler registers routes in the directory.
type CreateRouteCommandHandler struct {
	uowFactory DirectoryUoWFactory
}

// NewCreateRouteCommandHandler creates a handler for route registration.
func NewCreateRouteCommandHandler(uowFactory DirectoryUoWFactory) CreateRouteCommandHandler {
	return CreateRouteCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the route creation command. A hub key that does not name
// an existing hub fails the whole command with UnknownReference.
func (h *CreateRouteCommandHandler) Handle(ctx context.Context, cmd CreateRouteCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	route, err := directory.NewRoute(cmd.RouteID(), cmd.Key(), cmd.Name(), cmd.HubKeys())
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	hubRepo := uow.HubRepository()
	routeRepo := uow.RouteRepository()

	resolver := services.NewDirectoryResolver(hubRepo, routeRepo)
	for _, hubKey := range route.HubKeys() {
		if _, err = resolver.ResolveHub(ctx, hubKey); err != nil {
			return err
		}
	}

	if err = routeRepo.Add(ctx, route); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
