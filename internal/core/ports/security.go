package ports

import "time"

// PasswordHasher turns plaintext passwords into opaque salted hashes and
// verifies candidates against them. Implementations must take the same time
// for matching and non-matching candidates and must never log, persist, or
// echo the plaintext.
type PasswordHasher interface {
	// Hash derives a salted hash from the plaintext. Empty input or input
	// beyond the algorithm's length limit fails with InvalidCredentialInput.
	Hash(plaintext string) (string, error)

	// Verify reports whether the candidate matches the stored hash. A
	// mismatch is (false, nil); only structural problems are errors: empty
	// or over-long candidates fail with InvalidCredentialInput, and a hash
	// the algorithm cannot parse fails with CorruptCredential.
	Verify(hash, candidate string) (bool, error)
}

// TokenSigner issues and parses the bearer tokens returned on login.
type TokenSigner interface {
	// Sign issues a token for the user identified by subject, carrying the
	// given role claim, valid for ttl.
	Sign(subject, role string, ttl time.Duration) (string, error)

	// Parse validates a token's signature and expiry and returns its
	// subject and role claims.
	Parse(token string) (subject, role string, err error)
}
