package commands

import (
	"errors"
	"time"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/shipment"
	"logistics/internal/pkg/errs"
	"logistics/internal/pkg/guard"
)

var ErrCreateShipmentCommandIsNotConstructed = errors.New(
	"CreateShipmentCommand must be created via NewCreateShipmentCommand constructor",
)

// CreateShipmentCommand represents a request to register a new shipment.
// The tracking number is not part of the command: the handler generates and
// reserves one, so callers receive it from Handle rather than choosing it.
//
// Example:
//
//	cmd, err := NewCreateShipmentCommand(sender, receiver, "Books", weight, dims,
//	    shipment.ServiceStandard, cost, "HUB-SEA-01", "RT-SEA-PDX", nil)
//	if err != nil {
//	    return fmt.Errorf("invalid shipment data: %w", err)
//	}
//
//	handler := NewCreateShipmentCommandHandler(uowFactory, resolverFor)
//	trackingNumber, err := handler.Handle(ctx, cmd)
type CreateShipmentCommand struct { //nolint:recvcheck //using for validation
	sender         shipment.Party
	receiver       shipment.Party
	packageDetails string
	weight         shipment.Weight
	dimensions     shipment.Dimensions
	serviceType    shipment.ServiceType
	cost           kernel.Money
	hubKey         string
	routeKey       string
	pickupDate     *time.Time

	guard guard.ConstructorGuard
}

// NewCreateShipmentCommand creates a command to register a shipment.
// The hub key, route key and pickup date are optional; empty values mean the
// shipment starts unassigned.
func NewCreateShipmentCommand(
	sender shipment.Party,
	receiver shipment.Party,
	packageDetails string,
	weight shipment.Weight,
	dimensions shipment.Dimensions,
	serviceType shipment.ServiceType,
	cost kernel.Money,
	hubKey string,
	routeKey string,
	pickupDate *time.Time,
) (CreateShipmentCommand, error) {
	cmd := CreateShipmentCommand{
		weight:     weight,
		dimensions: dimensions,
		cost:       cost,
		hubKey:     hubKey,
		routeKey:   routeKey,
		guard:      guard.NewConstructorGuard(),
	}

	if pickupDate != nil {
		d := pickupDate.UTC()
		cmd.pickupDate = &d
	}

	if err := errors.Join(
		cmd.setSender(sender),
		cmd.setReceiver(receiver),
		cmd.setPackageDetails(packageDetails),
		cmd.setServiceType(serviceType),
	); err != nil {
		return CreateShipmentCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateShipmentCommand) Validate() error {
	return c.guard.Validate(ErrCreateShipmentCommandIsNotConstructed)
}

// Sender returns the sending party.
func (c CreateShipmentCommand) Sender() shipment.Party {
	return c.sender
}

// Receiver returns the receiving party.
func (c CreateShipmentCommand) Receiver() shipment.Party {
	return c.receiver
}

// PackageDetails returns the free-form package description.
func (c CreateShipmentCommand) PackageDetails() string {
	return c.packageDetails
}

// Weight returns the package weight.
func (c CreateShipmentCommand) Weight() shipment.Weight {
	return c.weight
}

// Dimensions returns the package dimensions.
func (c CreateShipmentCommand) Dimensions() shipment.Dimensions {
	return c.dimensions
}

// ServiceType returns the requested service level.
func (c CreateShipmentCommand) ServiceType() shipment.ServiceType {
	return c.serviceType
}

// Cost returns the shipping cost.
func (c CreateShipmentCommand) Cost() kernel.Money {
	return c.cost
}

// HubKey returns the optional hub business key, possibly empty.
func (c CreateShipmentCommand) HubKey() string {
	return c.hubKey
}

// RouteKey returns the optional route business key, possibly empty.
func (c CreateShipmentCommand) RouteKey() string {
	return c.routeKey
}

// PickupDate returns the optional scheduled pickup date.
func (c CreateShipmentCommand) PickupDate() *time.Time {
	return c.pickupDate
}

func (c *CreateShipmentCommand) setSender(sender shipment.Party) error {
	if err := sender.Validate(); err != nil {
		return err
	}

	c.sender = sender
	return nil
}

func (c *CreateShipmentCommand) setReceiver(receiver shipment.Party) error {
	if err := receiver.Validate(); err != nil {
		return err
	}

	c.receiver = receiver
	return nil
}

func (c *CreateShipmentCommand) setPackageDetails(packageDetails string) error {
	if packageDetails == "" {
		return errs.NewValueIsRequiredError("packageDetails")
	}

	c.packageDetails = packageDetails
	return nil
}

func (c *CreateShipmentCommand) setServiceType(serviceType shipment.ServiceType) error {
	if err := serviceType.Validate(); err != nil {
		return err
	}

	c.serviceType = serviceType
	return nil
}
