package commands

import (
	"context"

	"logistics/internal/core/domain/model/account"
	"logistics/internal/core/ports"
)

// ChangeUserPasswordCommandHandler replaces a user's password credential.
type ChangeUserPasswordCommandHandler struct {
	uowFactory UserUoWFactory
	hasher     ports.PasswordHasher
}

// NewChangeUserPasswordCommandHandler creates a handler for password changes.
func NewChangeUserPasswordCommandHandler(
	uowFactory UserUoWFactory,
	hasher ports.PasswordHasher,
) ChangeUserPasswordCommandHandler {
	return ChangeUserPasswordCommandHandler{
		uowFactory: uowFactory,
		hasher:     hasher,
	}
}

// Handle processes the password change command.
func (h *ChangeUserPasswordCommandHandler) Handle(ctx context.Context, cmd ChangeUserPasswordCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	hash, err := h.hasher.Hash(cmd.NewPassword())
	if err != nil {
		return err
	}

	credential, err := account.CredentialFromHash(hash)
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

	userRepo := uow.UserRepository()
	user, err := userRepo.Get(ctx, cmd.UserID())
	if err != nil {
		return err
	}

	if err = user.ChangeCredential(credential); err != nil {
		return err
	}

	if err = userRepo.Update(ctx, user); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
