package commands

import (
	"context"

	"logistics/internal/core/domain/model/shipment"
	"logistics/internal/core/domain/services"
)

// UpdateShipmentCommandHandler applies descriptive field updates to a
// shipment. Hub and route reassignments resolve against the directory in the
// same transaction, and the write is guarded by optimistic concurrency.
type UpdateShipmentCommandHandler struct {
	uowFactory DispatchUoWFactory
}

// NewUpdateShipmentCommandHandler creates a handler for shipment updates.
func NewUpdateShipmentCommandHandler(uowFactory DispatchUoWFactory) UpdateShipmentCommandHandler {
	return UpdateShipmentCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the update command. All requested changes apply, or none do.
func (h *UpdateShipmentCommandHandler) Handle(ctx context.Context, cmd UpdateShipmentCommand) error {
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

	if err = h.applyChanges(ctx, uow, aggregate, cmd.Changes()); err != nil {
		return err
	}

	if err = shipmentRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

func (h *UpdateShipmentCommandHandler) applyChanges(
	ctx context.Context,
	uow DispatchUoW,
	aggregate *shipment.Shipment,
	changes ShipmentChanges,
) error {
	if changes.Sender != nil {
		if err := aggregate.ChangeSender(*changes.Sender); err != nil {
			return err
		}
	}
	if changes.Receiver != nil {
		if err := aggregate.ChangeReceiver(*changes.Receiver); err != nil {
			return err
		}
	}

	if changes.PackageDetails != nil || changes.Weight != nil || changes.Dimensions != nil {
		details := aggregate.PackageDetails()
		weight := aggregate.Weight()
		dimensions := aggregate.Dimensions()
		if changes.PackageDetails != nil {
			details = *changes.PackageDetails
		}
		if changes.Weight != nil {
			weight = *changes.Weight
		}
		if changes.Dimensions != nil {
			dimensions = *changes.Dimensions
		}
		if err := aggregate.ChangePackage(details, weight, dimensions); err != nil {
			return err
		}
	}

	if changes.ServiceType != nil {
		if err := aggregate.ChangeServiceType(*changes.ServiceType); err != nil {
			return err
		}
	}
	if changes.Cost != nil {
		aggregate.ChangeCost(*changes.Cost)
	}
	if changes.PickupDate != nil {
		if err := aggregate.SchedulePickup(*changes.PickupDate); err != nil {
			return err
		}
	}

	resolver := services.NewDirectoryResolver(uow.HubRepository(), uow.RouteRepository())
	if changes.HubKey != nil {
		if err := resolver.AssignHub(ctx, aggregate, *changes.HubKey); err != nil {
			return err
		}
	}
	if changes.RouteKey != nil {
		if err := resolver.AssignRoute(ctx, aggregate, *changes.RouteKey); err != nil {
			return err
		}
	}

	return nil
}
