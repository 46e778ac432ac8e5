package commands

import (
	"context"

	"logistics/internal/core/domain/model/directory"
)

// CreateHubCommandHandler registers hubs in the directory.
type CreateHubCommandHandler struct {
	uowFactory DirectoryUoWFactory
}

// NewCreateHubCommandHandler creates a handler for hub registration.
func NewCreateHubCommandHandler(uowFactory DirectoryUoWFactory) CreateHubCommandHandler {
	return CreateHubCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the hub creation command. New hubs start active; a taken
// business key surfaces as DuplicateValue from the repository.
func (h *CreateHubCommandHandler) Handle(ctx context.Context, cmd CreateHubCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	hub, err := directory.NewHub(cmd.HubID(), cmd.Key(), cmd.Name(), cmd.Address(), cmd.Phone(), cmd.Capacity())
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

	if err = uow.HubRepository().Add(ctx, hub); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
