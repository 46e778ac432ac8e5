package commands

import (
	"errors"

	"logistics/internal/core/domain/model/account"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/guard"
)

var ErrChangeUserRoleCommandIsNotConstructed = errors.New(
	"ChangeUserRoleCommand must be created via NewChangeUserRoleCommand constructor",
)

// ChangeUserRoleCommand represents an administrative request to move a user
// to a different permission role.
type ChangeUserRoleCommand struct { //nolint:recvcheck //using for validation
	userID kernel.UUID
	role   account.Role

	guard guard.ConstructorGuard
}

// NewChangeUserRoleCommand creates a command to change a user's role.
func NewChangeUserRoleCommand(userID kernel.UUID, role account.Role) (ChangeUserRoleCommand, error) {
	cmd := ChangeUserRoleCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setUserID(userID),
		cmd.setRole(role),
	); err != nil {
		return ChangeUserRoleCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ChangeUserRoleCommand) Validate() error {
	return c.guard.Validate(ErrChangeUserRoleCommandIsNotConstructed)
}

// UserID returns the account identifier.
func (c ChangeUserRoleCommand) UserID() kernel.UUID {
	return c.userID
}

// Role returns the new permission role.
func (c ChangeUserRoleCommand) Role() account.Role {
	return c.role
}

func (c *ChangeUserRoleCommand) setUserID(userID kernel.UUID) error {
	if err := userID.Validate(); err != nil {
		return err
	}

	c.userID = userID
	return nil
}

func (c *ChangeUserRoleCommand) setRole(role account.Role) error {
	if err := role.Validate(); err != nil {
		return err
	}

	c.role = role
	return nil
}
