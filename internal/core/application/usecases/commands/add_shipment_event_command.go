package commands

import (
	"errors"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/errs"
	"logistics/internal/pkg/guard"
)

var ErrAddShipmentEventCommandIsNotConstructed = errors.New(
	"AddShipmentEventCommand must be created via NewAddShipmentEventCommand constructor",
)

// AddShipmentEventCommand represents a request to append an informational
// tracking event, such as a checkpoint scan, without changing the shipment's
// status.
type AddShipmentEventCommand struct { //nolint:recvcheck //using for validation
	trackingNumber kernel.TrackingNumber
	location       string
	description    string

	guard guard.ConstructorGuard
}

// NewAddShipmentEventCommand creates a command to record a tracking event.
// At least one of location and description must be non-empty; an event with
// neither would carry no information.
func NewAddShipmentEventCommand(
	trackingNumber kernel.TrackingNumber,
	location string,
	description string,
) (AddShipmentEventCommand, error) {
	cmd := AddShipmentEventCommand{
		location:    location,
		description: description,
		guard:       guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setTrackingNumber(trackingNumber),
		cmd.validatePayload(),
	); err != nil {
		return AddShipmentEventCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c AddShipmentEventCommand) Validate() error {
	return c.guard.Validate(ErrAddShipmentEventCommandIsNotConstructed)
}

// TrackingNumber returns the shipment's tracking number.
func (c AddShipmentEventCommand) TrackingNumber() kernel.TrackingNumber {
	return c.trackingNumber
}

// Location returns the event location, possibly empty.
func (c AddShipmentEventCommand) Location() string {
	return c.location
}

// Description returns the event description, possibly empty.
func (c AddShipmentEventCommand) Description() string {
	return c.description
}

func (c *AddShipmentEventCommand) setTrackingNumber(trackingNumber kernel.TrackingNumber) error {
	if err := trackingNumber.Validate(); err != nil {
		return err
	}

	c.trackingNumber = trackingNumber
	return nil
}

func (c *AddShipmentEventCommand) validatePayload() error {
	if c.location == "" && c.description == "" {
		return errs.NewValueIsRequiredError("location or description")
	}
	return nil
}
