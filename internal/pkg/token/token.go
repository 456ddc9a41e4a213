package token

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrTokenMalformed = errors.New("token is malformed")
	ErrMissingExpiry  = errors.New("token has no expiry claim")
)

// Claims represents the claims this client reads from an access token.
// The server signs tokens with a secret the client never holds, so the
// claims are decoded without signature verification — validity here means
// "well-formed and not expired", nothing more.
type Claims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

var parser = jwt.NewParser()

// Decode extracts claims from a token without verifying its signature.
// Returns an error for absent, malformed, or expiry-less tokens.
func Decode(raw string) (*Claims, error) {
	if raw == "" {
		return nil, ErrTokenMalformed
	}

	claims := &Claims{}
	if _, _, err := parser.ParseUnverified(raw, claims); err != nil {
		return nil, ErrTokenMalformed
	}

	if claims.ExpiresAt == nil {
		return nil, ErrMissingExpiry
	}

	return claims, nil
}

// IsValidAt reports whether the token's expiry is strictly in the future
// at the given instant. Any decode failure counts as invalid: the check
// fails closed and never returns an error. Expiry is exact-boundary, no
// clock-skew leeway (exp <= now means invalid).
func IsValidAt(raw string, now time.Time) bool {
	claims, err := Decode(raw)
	if err != nil {
		return false
	}
	return claims.ExpiresAt.Time.After(now)
}

// IsValid checks the token against the wall clock
func IsValid(raw string) bool {
	return IsValidAt(raw, time.Now())
}
