package queries

import (
	"errors"
	"strings"

	"logistics/internal/pkg/errs"
	"logistics/internal/pkg/guard"
)

var ErrAuthenticateUserQueryIsNotConstructed = errors.New(
	"AuthenticateUserQuery must be created via NewAuthenticateUserQuery constructor",
)

// ErrAuthenticationFailed is the single failure for every rejected login.
// Unknown email, wrong password and deactivated account are deliberately
// indistinguishable to the caller.
var ErrAuthenticationFailed = errors.New("invalid email or password")

// AuthenticateUserQuery verifies a login and issues a bearer token.
// It lives on the query side because nothing about the account changes.
type AuthenticateUserQuery struct { //nolint:recvcheck //using for validation
	email    string
	password string

	guard guard.ConstructorGuard
}

// NewAuthenticateUserQuery creates a login query.
func NewAuthenticateUserQuery(email, password string) (AuthenticateUserQuery, error) {
	query := AuthenticateUserQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		query.setEmail(email),
		query.setPassword(password),
	); err != nil {
		return AuthenticateUserQuery{}, err
	}

	return query, nil
}

// Validate ensures the query was created through the constructor.
func (q AuthenticateUserQuery) Validate() error {
	return q.guard.Validate(ErrAuthenticateUserQueryIsNotConstructed)
}

// Email returns the login email, lowercased.
func (q AuthenticateUserQuery) Email() string {
	return q.email
}

// Password returns the plaintext candidate password for one-time verification.
func (q AuthenticateUserQuery) Password() string {
	return q.password
}

func (q *AuthenticateUserQuery) setEmail(email string) error {
	if email == "" {
		return errs.NewValueIsRequiredError("email")
	}

	q.email = strings.ToLower(strings.TrimSpace(email))
	return nil
}

func (q *AuthenticateUserQuery) setPassword(password string) error {
	if password == "" {
		return errs.NewValueIsRequiredError("password")
	}

	q.password = password
	return nil
}

// AuthenticateUserQueryResponse carries the issued token and the identity it
// represents.
type AuthenticateUserQueryResponse struct {
	Token    string
	UserID   string
	Email    string
	FullName string
	Role     string
}
