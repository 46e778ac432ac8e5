// Package crypto provides password hashing backed by bcrypt.
package crypto

import (
	"errors"

	"logistics/internal/pkg/errs"

	"golang.org/x/crypto/bcrypt"
)

// bcrypt ignores everything past 72 bytes, so longer inputs are rejected
// instead of silently truncated.
const maxPasswordBytes = 72

// BcryptHasher implements PasswordHasher using bcrypt with a configurable
// work factor.
type BcryptHasher struct {
	cost int
}

// NewBcryptHasher creates a hasher with the given bcrypt cost. Costs outside
// bcrypt's supported range fall back to the library default.
func NewBcryptHasher(cost int) *BcryptHasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	return &BcryptHasher{cost: cost}
}

// Hash derives a bcrypt hash from the plaintext password. The plaintext is
// never stored or logged.
func (h *BcryptHasher) Hash(password string) (string, error) {
	if password == "" {
		return "", errs.NewInvalidCredentialInputError(errors.New("password is empty"))
	}
	if len(password) > maxPasswordBytes {
		return "", errs.NewInvalidCredentialInputError(errors.New("password exceeds 72 bytes"))
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		return "", errs.NewInvalidCredentialInputError(err)
	}
	return string(hashed), nil
}

// Verify compares the candidate password against a stored hash in constant
// time. A mismatch is not an error; only an unreadable hash is, reported as
// CorruptCredential.
func (h *BcryptHasher) Verify(hash, candidate string) (bool, error) {
	if candidate == "" || len(candidate) > maxPasswordBytes {
		return false, errs.NewInvalidCredentialInputError(errors.New("candidate length is out of range"))
	}

	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(candidate))
	if err == nil {
		return true, nil
	}
	if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
		return false, nil
	}
	return false, errs.NewCorruptCredentialError(err)
}
