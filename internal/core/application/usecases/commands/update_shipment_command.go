package commands

import (
	"errors"
	"time"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/shipment"
	"logistics/internal/pkg/errs"
	"logistics/internal/pkg/guard"
)

var ErrUpdateShipmentCommandIsNotConstructed = errors.New(
	"UpdateShipmentCommand must be created via NewUpdateShipmentCommand constructor",
)

// ShipmentChanges carries the optional field updates of an UpdateShipmentCommand.
// Nil fields are left as they are; the status is never part of an update,
// it only moves through transitions.
type ShipmentChanges struct {
	Sender         *shipment.Party
	Receiver       *shipment.Party
	PackageDetails *string
	Weight         *shipment.Weight
	Dimensions     *shipment.Dimensions
	ServiceType    *shipment.ServiceType
	Cost           *kernel.Money
	PickupDate     *time.Time
	HubKey         *string
	RouteKey       *string
}

func (ch ShipmentChanges) isEmpty() bool {
	return ch.Sender == nil && ch.Receiver == nil && ch.PackageDetails == nil &&
		ch.Weight == nil && ch.Dimensions == nil &&
		ch.ServiceType == nil && ch.Cost == nil && ch.PickupDate == nil &&
		ch.HubKey == nil && ch.RouteKey == nil
}

// UpdateShipmentCommand represents a request to change a shipment's
// descriptive fields. At least one change must be present.
type UpdateShipmentCommand struct { //nolint:recvcheck //using for validation
	trackingNumber kernel.TrackingNumber
	changes        ShipmentChanges

	guard guard.ConstructorGuard
}

// NewUpdateShipmentCommand creates a command to update a shipment.
// Per-field validity is checked here for the fields that carry values; the
// aggregate re-checks on application so an update can never leave it invalid.
func NewUpdateShipmentCommand(
	trackingNumber kernel.TrackingNumber,
	changes ShipmentChanges,
) (UpdateShipmentCommand, error) {
	cmd := UpdateShipmentCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setTrackingNumber(trackingNumber),
		cmd.setChanges(changes),
	); err != nil {
		return UpdateShipmentCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateShipmentCommand) Validate() error {
	return c.guard.Validate(ErrUpdateShipmentCommandIsNotConstructed)
}

// TrackingNumber returns the shipment's tracking number.
func (c UpdateShipmentCommand) TrackingNumber() kernel.TrackingNumber {
	return c.trackingNumber
}

// Changes returns the requested field updates.
func (c UpdateShipmentCommand) Changes() ShipmentChanges {
	return c.changes
}

func (c *UpdateShipmentCommand) setTrackingNumber(trackingNumber kernel.TrackingNumber) error {
	if err := trackingNumber.Validate(); err != nil {
		return err
	}

	c.trackingNumber = trackingNumber
	return nil
}

func (c *UpdateShipmentCommand) setChanges(changes ShipmentChanges) error {
	if changes.isEmpty() {
		return errs.NewValueIsRequiredError("changes")
	}

	var err error
	if changes.Sender != nil {
		err = errors.Join(err, changes.Sender.Validate())
	}
	if changes.Receiver != nil {
		err = errors.Join(err, changes.Receiver.Validate())
	}
	if changes.PackageDetails != nil && *changes.PackageDetails == "" {
		err = errors.Join(err, errs.NewValueIsRequiredError("packageDetails"))
	}
	if changes.ServiceType != nil {
		err = errors.Join(err, changes.ServiceType.Validate())
	}
	if changes.HubKey != nil && *changes.HubKey == "" {
		err = errors.Join(err, errs.NewValueIsRequiredError("hubKey"))
	}
	if changes.RouteKey != nil && *changes.RouteKey == "" {
		err = errors.Join(err, errs.NewValueIsRequiredError("routeKey"))
	}
	if err != nil {
		return err
	}

	if changes.PickupDate != nil {
		d := changes.PickupDate.UTC()
		changes.PickupDate = &d
	}

	c.changes = changes
	return nil
}
