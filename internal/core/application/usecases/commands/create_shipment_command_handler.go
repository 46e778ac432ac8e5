package commands

import (
	"context"
	"errors"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/shipment"
	"logistics/internal/core/domain/services"
	"logistics/internal/pkg/errs"
)

// maxTrackingAttempts bounds the generate-reserve loop. Collisions are rare
// in a sparsely used number space, so repeated failures indicate a nearly
// exhausted space rather than bad luck.
const maxTrackingAttempts = 5

// CreateShipmentCommandHandler handles the business logic for shipment creation.
// It generates a tracking number, reserves it together with the first
// persisted copy of the aggregate, and resolves any hub or route references
// inside the same transaction.
//
// A reservation collision rolls the whole transaction back and the handler
// retries with a fresh number, up to maxTrackingAttempts, after which it
// fails with IdentifierExhausted.
type CreateShipmentCommandHandler struct {
	uowFactory DispatchUoWFactory
}

// NewCreateShipmentCommandHandler creates a handler for shipment creation operations.
func NewCreateShipmentCommandHandler(uowFactory DispatchUoWFactory) CreateShipmentCommandHandler {
	return CreateShipmentCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the shipment creation command and returns the tracking
// number assigned to the new shipment.
func (h *CreateShipmentCommandHandler) Handle(
	ctx context.Context,
	cmd CreateShipmentCommand,
) (kernel.TrackingNumber, error) {
	if err := cmd.Validate(); err != nil {
		return kernel.TrackingNumber{}, err
	}

	for attempt := 0; attempt < maxTrackingAttempts; attempt++ {
		trackingNumber := kernel.GenerateTrackingNumber()

		err := h.tryCreate(ctx, cmd, trackingNumber)
		if err == nil {
			return trackingNumber, nil
		}

		var dupErr *errs.DuplicateValueError
		if errors.As(err, &dupErr) && dupErr.ParamName == "trackingNumber" {
			continue
		}

		return kernel.TrackingNumber{}, err
	}

	return kernel.TrackingNumber{}, errs.NewIdentifierExhaustedError("trackingNumber", maxTrackingAttempts)
}

// tryCreate runs one reservation attempt in its own transaction. A unique
// violation aborts the transaction on the database side, so the retry loop
// must start over with a new unit of work.
func (h *CreateShipmentCommandHandler) tryCreate(
	ctx context.Context,
	cmd CreateShipmentCommand,
	trackingNumber kernel.TrackingNumber,
) error {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	aggregate, err := shipment.NewShipment(
		trackingNumber,
		cmd.Sender(),
		cmd.Receiver(),
		cmd.PackageDetails(),
		cmd.Weight(),
		cmd.Dimensions(),
		cmd.ServiceType(),
		cmd.Cost(),
	)
	if err != nil {
		return err
	}

	if pickup := cmd.PickupDate(); pickup != nil {
		if err = aggregate.SchedulePickup(*pickup); err != nil {
			return err
		}
	}

	resolver := services.NewDirectoryResolver(uow.HubRepository(), uow.RouteRepository())
	if cmd.HubKey() != "" {
		if err = resolver.AssignHub(ctx, aggregate, cmd.HubKey()); err != nil {
			return err
		}
	}
	if cmd.RouteKey() != "" {
		if err = resolver.AssignRoute(ctx, aggregate, cmd.RouteKey()); err != nil {
			return err
		}
	}

	if err = uow.ShipmentRepository().Add(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
