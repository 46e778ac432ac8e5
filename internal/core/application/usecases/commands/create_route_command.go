package commands

import (
	"errors"
	"slices"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/errs"
	"logistics/internal/pkg/guard"
)

var ErrCreateRouteCommandIsNotConstructed = errors.New(
	"CreateRouteCommand must be created via NewCreateRouteCommand constructor",
)

// CreateRouteCommand represents a request to add a route to the directory.
// Every hub key on the route must name an existing hub; the handler verifies
// this in the same transaction that stores the route.
type CreateRouteCommand struct { //nolint:recvcheck //using for validation
	routeID kernel.UUID
	key     string
	name    string
	hubKeys []string

	guard guard.ConstructorGuard
}

// NewCreateRouteCommand creates a command to register a route.
func NewCreateRouteCommand(routeID kernel.UUID, key, name string, hubKeys []string) (CreateRouteCommand, error) {
	cmd := CreateRouteCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setRouteID(routeID),
		cmd.setKey(key),
		cmd.setName(name),
		cmd.setHubKeys(hubKeys),
	); err != nil {
		return CreateRouteCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateRouteCommand) Validate() error {
	return c.guard.Validate(ErrCreateRouteCommandIsNotConstructed)
}

// RouteID returns the identifier for the new route.
func (c CreateRouteCommand) RouteID() kernel.UUID {
	return c.routeID
}

// Key returns the route's business key.
func (c CreateRouteCommand) Key() string {
	return c.key
}

// Name returns the route's display name.
func (c CreateRouteCommand) Name() string {
	return c.name
}

// HubKeys returns a copy of the hub keys in travel order.
func (c CreateRouteCommand) HubKeys() []string {
	return slices.Clone(c.hubKeys)
}

func (c *CreateRouteCommand) setRouteID(routeID kernel.UUID) error {
	if err := routeID.Validate(); err != nil {
		return err
	}

	c.routeID = routeID
	return nil
}

func (c *CreateRouteCommand) setKey(key string) error {
	if key == "" {
		return errs.NewValueIsRequiredError("key")
	}

	c.key = key
	return nil
}

func (c *CreateRouteCommand) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}

	c.name = name
	return nil
}

func (c *CreateRouteCommand) setHubKeys(hubKeys []string) error {
	if len(hubKeys) == 0 {
		return errs.NewValueIsRequiredError("hubKeys")
	}

	c.hubKeys = slices.Clone(hubKeys)
	return nil
}
