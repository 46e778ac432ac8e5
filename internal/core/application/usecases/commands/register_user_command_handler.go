package commands

import (
	"context"

	"logistics/internal/core/domain/model/account"
	"logistics/internal/core/ports"
)

// RegisterUserCommandHandler handles user account creation.
// The plaintext password is hashed before the transaction opens and is not
// referenced again afterwards.
type RegisterUserCommandHandler struct {
	uowFactory UserUoWFactory
	hasher     ports.PasswordHasher
}

// NewRegisterUserCommandHandler creates a handler for user registration.
func NewRegisterUserCommandHandler(
	uowFactory UserUoWFactory,
	hasher ports.PasswordHasher,
) RegisterUserCommandHandler {
	return RegisterUserCommandHandler{
		uowFactory: uowFactory,
		hasher:     hasher,
	}
}

// Handle processes the registration command.
// A taken email surfaces as DuplicateValue from the repository.
func (h *RegisterUserCommandHandler) Handle(ctx context.Context, cmd RegisterUserCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	hash, err := h.hasher.Hash(cmd.Password())
	if err != nil {
		return err
	}

	credential, err := account.CredentialFromHash(hash)
	if err != nil {
		return err
	}

	user, err := account.NewUser(cmd.UserID(), cmd.Email(), cmd.FullName(), cmd.Role(), cmd.Phone(), credential)
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.UserRepository().Add(ctx, user); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
