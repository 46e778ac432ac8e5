package commands

import (
	"context"
)

// TransitionShipmentCommandHandler handles shipment status transitions.
// The load-mutate-store cycle runs under optimistic concurrency: the update
// fails with VersionConflict when another writer changed the shipment since
// it was read, and no partial state is persisted.
type TransitionShipmentCommandHandler struct {
	uowFactory ShipmentUoWFactory
}

// NewTransitionShipmentCommandHandler creates a handler for shipment transitions.
func NewTransitionShipmentCommandHandler(uowFactory ShipmentUoWFactory) TransitionShipmentCommandHandler {
	return TransitionShipmentCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the transition command.
// The aggregate decides whether the transition is legal; an illegal one
// fails with InvalidTransition and nothing is written.
func (h *TransitionShipmentCommandHandler) Handle(ctx context.Context, cmd TransitionShipmentCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	shipmentRepo := uow.ShipmentRepository()
	aggregate, err := shipmentRepo.Get(ctx, cmd.TrackingNumber())
	if err != nil {
		return err
	}

	if err = aggregate.TransitionTo(cmd.Target(), cmd.Location(), cmd.Description()); err != nil {
		return err
	}

	if err = shipmentRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
