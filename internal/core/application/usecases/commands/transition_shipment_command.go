package commands

import (
	"errors"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/shipment"
	"logistics/internal/pkg/guard"
)

var ErrTransitionShipmentCommandIsNotConstructed = errors.New(
	"TransitionShipmentCommand must be created via NewTransitionShipmentCommand constructor",
)

// TransitionShipmentCommand represents a request to move a shipment to a new
// lifecycle status, recording a tracking event in the same step.
//
// Example:
//
//	cmd, err := NewTransitionShipmentCommand(trackingNumber, shipment.InTransit,
//	    "Seattle sort facility", "Departed origin hub")
//	if err != nil {
//	    return fmt.Errorf("invalid transition request: %w", err)
//	}
//
//	handler := NewTransitionShipmentCommandHandler(uowFactory)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("transition failed: %w", err)
//	}
type TransitionShipmentCommand struct { //nolint:recvcheck //using for validation
	trackingNumber kernel.TrackingNumber
	target         shipment.Status
	location       string
	description    string

	guard guard.ConstructorGuard
}

// NewTransitionShipmentCommand creates a command to transition a shipment.
// Location and description are optional annotations on the recorded event.
// Whether the transition itself is legal is decided by the aggregate, not
// here: the command only checks that the target is a defined status.
func NewTransitionShipmentCommand(
	trackingNumber kernel.TrackingNumber,
	target shipment.Status,
	location string,
	description string,
) (TransitionShipmentCommand, error) {
	cmd := TransitionShipmentCommand{
		location:    location,
		description: description,
		guard:       guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setTrackingNumber(trackingNumber),
		cmd.setTarget(target),
	); err != nil {
		return TransitionShipmentCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c TransitionShipmentCommand) Validate() error {
	return c.guard.Validate(ErrTransitionShipmentCommandIsNotConstructed)
}

// TrackingNumber returns the shipment's tracking number.
func (c TransitionShipmentCommand) TrackingNumber() kernel.TrackingNumber {
	return c.trackingNumber
}

// Target returns the requested status.
func (c TransitionShipmentCommand) Target() shipment.Status {
	return c.target
}

// Location returns the optional event location.
func (c TransitionShipmentCommand) Location() string {
	return c.location
}

// Description returns the optional event description.
func (c TransitionShipmentCommand) Description() string {
	return c.description
}

func (c *TransitionShipmentCommand) setTrackingNumber(trackingNumber kernel.TrackingNumber) error {
	if err := trackingNumber.Validate(); err != nil {
		return err
	}

	c.trackingNumber = trackingNumber
	return nil
}

func (c *TransitionShipmentCommand) setTarget(target shipment.Status) error {
	if err := target.Validate(); err != nil {
		return err
	}

	c.target = target
	return nil
}
