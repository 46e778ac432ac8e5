package commands

import (
	"errors"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/errs"
	"logistics/internal/pkg/guard"
)

var ErrCreateHubCommandIsNotConstructed = errors.New(
	"CreateHubCommand must be created via NewCreateHubCommand constructor",
)

// CreateHubCommand represents a request to add a hub to the directory.
type CreateHubCommand struct { //nolint:recvcheck //using for validation
	hubID    kernel.UUID
	key      string
	name     string
	address  string
	phone    string
	capacity int

	guard guard.ConstructorGuard
}

// NewCreateHubCommand creates a command to register a hub.
func NewCreateHubCommand(
	hubID kernel.UUID,
	key, name, address, phone string,
	capacity int,
) (CreateHubCommand, error) {
	cmd := CreateHubCommand{
		phone:    phone,
		capacity: capacity,
		guard:    guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setHubID(hubID),
		cmd.setKey(key),
		cmd.setName(name),
		cmd.setAddress(address),
	); err != nil {
		return CreateHubCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateHubCommand) Validate() error {
	return c.guard.Validate(ErrCreateHubCommandIsNotConstructed)
}

// HubID returns the identifier for the new hub.
func (c CreateHubCommand) HubID() kernel.UUID {
	return c.hubID
}

// Key returns the hub's business key.
func (c CreateHubCommand) Key() string {
	return c.key
}

// Name returns the hub's display name.
func (c CreateHubCommand) Name() string {
	return c.name
}

// Address returns the hub's street address.
func (c CreateHubCommand) Address() string {
	return c.address
}

// Phone returns the hub's optional contact phone.
func (c CreateHubCommand) Phone() string {
	return c.phone
}

// Capacity returns the hub's shipment capacity.
func (c CreateHubCommand) Capacity() int {
	return c.capacity
}

func (c *CreateHubCommand) setHubID(hubID kernel.UUID) error {
	if err := hubID.Validate(); err != nil {
		return err
	}

	c.hubID = hubID
	return nil
}

func (c *CreateHubCommand) setKey(key string) error {
	if key == "" {
		return errs.NewValueIsRequiredError("key")
	}

	c.key = key
	return nil
}

func (c *CreateHubCommand) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}

	c.name = name
	return nil
}

func (c *CreateHubCommand) setAddress(address string) error {
	if address == "" {
		return errs.NewValueIsRequiredError("address")
	}

	c.address = address
	return nil
}
