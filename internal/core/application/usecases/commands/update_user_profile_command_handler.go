package commands

import (
	"context"
)

// UpdateUserProfileCommandHandler applies profile changes to a user account.
type UpdateUserProfileCommandHandler struct {
	uowFactory UserUoWFactory
}

// NewUpdateUserProfileCommandHandler creates a handler for profile updates.
func NewUpdateUserProfileCommandHandler(uowFactory UserUoWFactory) UpdateUserProfileCommandHandler {
	return UpdateUserProfileCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the profile update command.
func (h *UpdateUserProfileCommandHandler) Handle(ctx context.Context, cmd UpdateUserProfileCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
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

	if err = user.ChangeProfile(cmd.FullName(), cmd.Phone()); err != nil {
		return err
	}

	if err = userRepo.Update(ctx, user); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
