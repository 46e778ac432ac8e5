package commands

import (
	"errors"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/guard"
)

var ErrDeleteShipmentCommandIsNotConstructed = errors.New(
	"DeleteShipmentCommand must be created via NewDeleteShipmentCommand constructor",
)

// DeleteShipmentCommand represents a request to remove a shipment and its
// event history. The tracking number reservation is left behind, so a deleted
// shipment's number is never issued again.
type DeleteShipmentCommand struct { //nolint:recvcheck //using for validation
	trackingNumber kernel.TrackingNumber

	guard guard.ConstructorGuard
}

// NewDeleteShipmentCommand creates a command to delete a shipment.
func NewDeleteShipmentCommand(trackingNumber kernel.TrackingNumber) (DeleteShipmentCommand, error) {
	cmd := DeleteShipmentCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setTrackingNumber(trackingNumber); err != nil {
		return DeleteShipmentCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c DeleteShipmentCommand) Validate() error {
	return c.guard.Validate(ErrDeleteShipmentCommandIsNotConstructed)
}

// TrackingNumber returns the shipment's tracking number.
func (c DeleteShipmentCommand) TrackingNumber() kernel.TrackingNumber {
	return c.trackingNumber
}

func (c *DeleteShipmentCommand) setTrackingNumber(trackingNumber kernel.TrackingNumber) error {
	if err := trackingNumber.Validate(); err != nil {
		return err
	}

	c.trackingNumber = trackingNumber
	return nil
}
