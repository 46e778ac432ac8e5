package commands

import (
	"context"
)

// AddShipmentEventCommandHandler appends informational tracking events.
type AddShipmentEventCommandHandler struct {
	uowFactory ShipmentUoWFactory
}

// NewAddShipmentEventCommandHandler creates a handler for tracking event recording.
func NewAddShipmentEventCommandHandler(uowFactory ShipmentUoWFactory) AddShipmentEventCommandHandler {
	return AddShipmentEventCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the event command. The event carries the shipment's
// current status; terminal shipments still accept informational events.
func (h *AddShipmentEventCommandHandler) Handle(ctx context.Context, cmd AddShipmentEventCommand) error {
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

	if err = aggregate.AddEvent(cmd.Location(), cmd.Description()); err != nil {
		return err
	}

	if err = shipmentRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
