// Package jwtauth issues and validates the HS256 bearer tokens returned on
// login.
package jwtauth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ErrInvalidToken is returned by Parse for any token that fails signature,
// expiry or claim validation.
var ErrInvalidToken = errors.New("token is invalid")

// Claims carries the authenticated user's role alongside the registered
// claim set.
type Claims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

// HS256Signer implements TokenSigner with a shared-secret HMAC signature.
type HS256Signer struct {
	secret []byte
	issuer string
}

// NewHS256Signer creates a signer over the given shared secret.
func NewHS256Signer(secret []byte, issuer string) *HS256Signer {
	return &HS256Signer{secret: secret, issuer: issuer}
}

// Sign issues a token for the user identified by subject, carrying the given
// role claim, valid for ttl.
func (s *HS256Signer) Sign(subject, role string, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := Claims{
		Role: role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			Issuer:    s.issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

// Parse validates a token's signature and expiry and returns its subject and
// role claims.
func (s *HS256Signer) Parse(tokenStr string) (string, string, error) {
	token, err := jwt.ParseWithClaims(tokenStr, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if token.Method != jwt.SigningMethodHS256 {
			return nil, fmt.Errorf("unexpected signing method %q", token.Method.Alg())
		}
		return s.secret, nil
	}, jwt.WithIssuer(s.issuer), jwt.WithLeeway(30*time.Second))
	if err != nil {
		return "", "", errors.Join(ErrInvalidToken, err)
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid || claims.Subject == "" {
		return "", "", ErrInvalidToken
	}

	return claims.Subject, claims.Role, nil
}
