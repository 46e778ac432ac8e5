package commands

import (
	"errors"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/guard"
)

var ErrDeactivateUserCommandIsNotConstructed = errors.New(
	"DeactivateUserCommand must be created via NewDeactivateUserCommand constructor",
)

// DeactivateUserCommand represents a request to close a user account.
// Accounts are never hard-deleted; a deactivated user simply cannot
// authenticate anymore.
type DeactivateUserCommand struct { //nolint:recvcheck //using for validation
	userID kernel.UUID

	guard guard.ConstructorGuard
}

// NewDeactivateUserCommand creates a command to deactivate a user.
func NewDeactivateUserCommand(userID kernel.UUID) (DeactivateUserCommand, error) {
	cmd := DeactivateUserCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setUserID(userID); err != nil {
		return DeactivateUserCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c DeactivateUserCommand) Validate() error {
	return c.guard.Validate(ErrDeactivateUserCommandIsNotConstructed)
}

// UserID returns the account identifier.
func (c DeactivateUserCommand) UserID() kernel.UUID {
	return c.userID
}

func (c *DeactivateUserCommand) setUserID(userID kernel.UUID) error {
	if err := userID.Validate(); err != nil {
		return err
	}

	c.userID = userID
	return nil
}
