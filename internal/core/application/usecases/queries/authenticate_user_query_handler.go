package queries

import (
	"context"
	"time"

	"logistics/internal/core/domain/model/account"
	"logistics/internal/core/ports"
)

// dummyHash is verified against when no account matches the email, so a
// rejected login costs the same whether or not the account exists.
const dummyHash = "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy"

// UserProvider looks user accounts up by login email. A nil user with a nil
// error means no account matches.
type UserProvider interface {
	GetByEmail(ctx context.Context, email string) (*account.User, error)
}

// AuthenticateUserQueryHandler verifies logins and signs tokens.
//
// Every rejection path returns ErrAuthenticationFailed and runs one hash
// verification, so response content and timing reveal nothing about which
// check failed.
type AuthenticateUserQueryHandler struct {
	users  UserProvider
	hasher ports.PasswordHasher
	signer ports.TokenSigner
	ttl    time.Duration
}

// NewAuthenticateUserQueryHandler creates a handler for login queries.
// Issued tokens expire after ttl.
func NewAuthenticateUserQueryHandler(
	users UserProvider,
	hasher ports.PasswordHasher,
	signer ports.TokenSigner,
	ttl time.Duration,
) AuthenticateUserQueryHandler {
	return AuthenticateUserQueryHandler{
		users:  users,
		hasher: hasher,
		signer: signer,
		ttl:    ttl,
	}
}

// Handle processes the login query.
func (h AuthenticateUserQueryHandler) Handle(
	ctx context.Context,
	query AuthenticateUserQuery,
) (AuthenticateUserQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return AuthenticateUserQueryResponse{}, err
	}

	user, err := h.users.GetByEmail(ctx, query.Email())
	if err != nil {
		return AuthenticateUserQueryResponse{}, err
	}

	hash := dummyHash
	if user != nil {
		hash = user.Credential().Hash()
	}

	match, err := h.hasher.Verify(hash, query.Password())
	if err != nil {
		return AuthenticateUserQueryResponse{}, err
	}
	if user == nil || !match || !user.IsActive() {
		return AuthenticateUserQueryResponse{}, ErrAuthenticationFailed
	}

	token, err := h.signer.Sign(user.ID().String(), user.Role().String(), h.ttl)
	if err != nil {
		return AuthenticateUserQueryResponse{}, err
	}

	return AuthenticateUserQueryResponse{
		Token:    token,
		UserID:   user.ID().String(),
		Email:    user.Email(),
		FullName: user.FullName(),
		Role:     user.Role().String(),
	}, nil
}
