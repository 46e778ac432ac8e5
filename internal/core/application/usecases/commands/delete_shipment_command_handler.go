package commands

import (
	"context"
)

// DeleteShipmentCommandHandler removes shipments from the active set.
type DeleteShipmentCommandHandler struct {
	uowFactory ShipmentUoWFactory
}

// NewDeleteShipmentCommandHandler creates a handler for shipment deletion.
func NewDeleteShipmentCommandHandler(uowFactory ShipmentUoWFactory) DeleteShipmentCommandHandler {
	return DeleteShipmentCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the deletion command. The shipment must exist; deleting
// an unknown tracking number fails with ObjectNotFound.
func (h *DeleteShipmentCommandHandler) Handle(ctx context.Context, cmd DeleteShipmentCommand) error {
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

	if err := uow.ShipmentRepository().Delete(ctx, cmd.TrackingNumber()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
