package account

import (
	"errors"
	"strings"

	"logistics/internal/pkg/errs"
)

// Credential is the salted, one-way-hashed representation of a user's
// password. It wraps an opaque hash string produced by the password hasher
// and is the only form in which a password ever exists inside the system:
// plaintext is hashed at the boundary and discarded.
//
// A credential is never serialized outward. Persistence DTOs store it in a
// dedicated column, read models and HTTP contracts exclude it entirely.
type Credential struct {
	hash string
}

// CredentialFromHash wraps a stored hash. Structurally corrupt values (empty,
// or clearly not a modular-crypt hash) are rejected with CorruptCredential so
// a damaged row surfaces loudly instead of failing every verification quietly.
func CredentialFromHash(hash string) (Credential, error) {
	if hash == "" {
		return Credential{}, errs.NewCorruptCredentialError(errors.New("stored hash is empty"))
	}
	if !strings.HasPrefix(hash, "$") {
		return Credential{}, errs.NewCorruptCredentialError(errors.New("stored hash has no algorithm prefix"))
	}
	return Credential{hash: hash}, nil
}

// Hash returns the opaque hash string for persistence and verification.
func (c Credential) Hash() string {
	return c.hash
}

// Validate checks that the credential was built through CredentialFromHash.
func (c Credential) Validate() error {
	if c.hash == "" {
		return errs.NewValueIsRequiredError("credential must be created via CredentialFromHash")
	}
	return nil
}
