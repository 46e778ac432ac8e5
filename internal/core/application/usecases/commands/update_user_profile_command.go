package commands

import (
	"errors"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/errs"
	"logistics/internal/pkg/guard"
)

var ErrUpdateUserProfileCommandIsNotConstructed = errors.New(
	"UpdateUserProfileCommand must be created via NewUpdateUserProfileCommand constructor",
)

// UpdateUserProfileCommand represents a request to change a user's display
// name and phone. Email, role and password each have their own commands.
type UpdateUserProfileCommand struct { //nolint:recvcheck //using for validation
	userID   kernel.UUID
	fullName string
	phone    string

	guard guard.ConstructorGuard
}

// NewUpdateUserProfileCommand creates a command to update a profile.
func NewUpdateUserProfileCommand(userID kernel.UUID, fullName, phone string) (UpdateUserProfileCommand, error) {
	cmd := UpdateUserProfileCommand{
		phone: phone,
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setUserID(userID),
		cmd.setFullName(fullName),
	); err != nil {
		return UpdateUserProfileCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateUserProfileCommand) Validate() error {
	return c.guard.Validate(ErrUpdateUserProfileCommandIsNotConstructed)
}

// UserID returns the account identifier.
func (c UpdateUserProfileCommand) UserID() kernel.UUID {
	return c.userID
}

// FullName returns the new display name.
func (c UpdateUserProfileCommand) FullName() string {
	return c.fullName
}

// Phone returns the new phone number, possibly empty.
func (c UpdateUserProfileCommand) Phone() string {
	return c.phone
}

func (c *UpdateUserProfileCommand) setUserID(userID kernel.UUID) error {
	if err := userID.Validate(); err != nil {
		return err
	}

	c.userID = userID
	return nil
}

func (c *UpdateUserProfileCommand) setFullName(fullName string) error {
	if fullName == "" {
		return errs.NewValueIsRequiredError("fullName")
	}

	c.fullName = fullName
	return nil
}
