package commands

import (
	"errors"
	"strings"

	"logistics/internal/core/domain/model/account"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/errs"
	"logistics/internal/pkg/guard"
)

var ErrRegisterUserCommandIsNotConstructed = errors.New(
	"RegisterUserCommand must be created via NewRegisterUserCommand constructor",
)

// RegisterUserCommand represents a request to create a user account.
// The password travels as plaintext only up to the handler, which hashes it
// immediately; the command never logs or exposes it.
type RegisterUserCommand struct { //nolint:recvcheck //using for validation
	userID   kernel.UUID
	email    string
	fullName string
	role     account.Role
	phone    string
	password string

	guard guard.ConstructorGuard
}

// NewRegisterUserCommand creates a command to register a user.
// Deep email and name validation belongs to the aggregate; the command only
// rejects obviously unusable input so a bad request fails before any hashing
// work is done.
func NewRegisterUserCommand(
	userID kernel.UUID,
	email string,
	fullName string,
	role account.Role,
	phone string,
	password string,
) (RegisterUserCommand, error) {
	cmd := RegisterUserCommand{
		phone: phone,
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setUserID(userID),
		cmd.setEmail(email),
		cmd.setFullName(fullName),
		cmd.setRole(role),
		cmd.setPassword(password),
	); err != nil {
		return RegisterUserCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c RegisterUserCommand) Validate() error {
	return c.guard.Validate(ErrRegisterUserCommandIsNotConstructed)
}

// UserID returns the identifier for the new account.
func (c RegisterUserCommand) UserID() kernel.UUID {
	return c.userID
}

// Email returns the login email.
func (c RegisterUserCommand) Email() string {
	return c.email
}

// FullName returns the display name.
func (c RegisterUserCommand) FullName() string {
	return c.fullName
}

// Role returns the requested permission role.
func (c RegisterUserCommand) Role() account.Role {
	return c.role
}

// Phone returns the optional phone number.
func (c RegisterUserCommand) Phone() string {
	return c.phone
}

// Password returns the plaintext password for one-time hashing.
func (c RegisterUserCommand) Password() string {
	return c.password
}

func (c *RegisterUserCommand) setUserID(userID kernel.UUID) error {
	if err := userID.Validate(); err != nil {
		return err
	}

	c.userID = userID
	return nil
}

func (c *RegisterUserCommand) setEmail(email string) error {
	if email == "" {
		return errs.NewValueIsRequiredError("email")
	}

	c.email = strings.TrimSpace(email)
	return nil
}

func (c *RegisterUserCommand) setFullName(fullName string) error {
	if fullName == "" {
		return errs.NewValueIsRequiredError("fullName")
	}

	c.fullName = fullName
	return nil
}

func (c *RegisterUserCommand) setRole(role account.Role) error {
	if err := role.Validate(); err != nil {
		return err
	}

	c.role = role
	return nil
}

func (c *RegisterUserCommand) setPassword(password string) error {
	if password == "" {
		return errs.NewValueIsRequiredError("password")
	}

	c.password = password
	return nil
}
