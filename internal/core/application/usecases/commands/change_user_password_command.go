package commands

import (
	"errors"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/errs"
	"logistics/internal/pkg/guard"
)

var ErrChangeUserPasswordCommandIsNotConstructed = errors.New(
	"ChangeUserPasswordCommand must be created via NewChangeUserPasswordCommand constructor",
)

// ChangeUserPasswordCommand represents a request to replace a user's
// password. The old credential is discarded; there is no password history.
type ChangeUserPasswordCommand struct { //nolint:recvcheck //using for validation
	userID      kernel.UUID
	newPassword string

	guard guard.ConstructorGuard
}

// NewChangeUserPasswordCommand creates a command to change a password.
func NewChangeUserPasswordCommand(userID kernel.UUID, newPassword string) (ChangeUserPasswordCommand, error) {
	cmd := ChangeUserPasswordCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setUserID(userID),
		cmd.setNewPassword(newPassword),
	); err != nil {
		return ChangeUserPasswordCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ChangeUserPasswordCommand) Validate() error {
	return c.guard.Validate(ErrChangeUserPasswordCommandIsNotConstructed)
}

// UserID returns the account identifier.
func (c ChangeUserPasswordCommand) UserID() kernel.UUID {
	return c.userID
}

// NewPassword returns the plaintext replacement password for one-time hashing.
func (c ChangeUserPasswordCommand) NewPassword() string {
	return c.newPassword
}

func (c *ChangeUserPasswordCommand) setUserID(userID kernel.UUID) error {
	if err := userID.Validate(); err != nil {
		return err
	}

	c.userID = userID
	return nil
}

func (c *ChangeUserPasswordCommand) setNewPassword(newPassword string) error {
	if newPassword == "" {
		return errs.NewValueIsRequiredError("newPassword")
	}

	c.newPassword = newPassword
	return nil
}
