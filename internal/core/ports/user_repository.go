package ports

import (
	"context"

	"logistics/internal/core/domain/model/account"
	"logistics/internal/core/domain/model/kernel"
)

// UserRepository defines the persistence contract for user aggregates.
type UserRepository interface {
	// Add persists a new user. Returns DuplicateValue when the email is
	// already taken.
	Add(ctx context.Context, aggregate *account.User) error

	// Update persists changes to an existing user.
	Update(ctx context.Context, aggregate *account.User) error

	// Get retrieves a user by identifier. Returns ObjectNotFound when no
	// such user exists.
	Get(ctx context.Context, id kernel.UUID) (*account.User, error)

	// GetByEmail retrieves a user by login email, or nil with a nil error
	// when no account matches. Authentication treats the two outcomes
	// identically, so the absence of a user is not an error here.
	GetByEmail(ctx context.Context, email string) (*account.User, error)
}
