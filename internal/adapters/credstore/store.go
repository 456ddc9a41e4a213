// Package credstore persists the access/refresh credential pair between
// process runs. The two slots are always written and cleared together,
// never independently.
package credstore

import "context"

// Credentials is the persisted access/refresh token pair. Empty strings
// mean "no credential stored".
type Credentials struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
}

// IsEmpty reports whether neither slot holds a credential
func (c Credentials) IsEmpty() bool {
	return c.AccessToken == "" && c.RefreshToken == ""
}

// Store is the session repository the guard is injected with
type Store interface {
	// Get returns the stored pair; a store with nothing in it returns
	// zero Credentials, not an error.
	Get(ctx context.Context) (Credentials, error)

	// Set replaces both slots wholesale
	Set(ctx context.Context, creds Credentials) error

	// Clear removes both slots
	Clear(ctx context.Context) error
}
