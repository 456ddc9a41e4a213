// Package session owns recognition of whether the current access
// credential is usable and the login/logout state machine built on it.
package session

import (
	"time"

	"disasterwatch/internal/core/domain"
	"disasterwatch/internal/pkg/token"
)

// State is the guard's authentication state
type State string

const (
	StateAnonymous     State = "ANONYMOUS"
	StateAuthenticated State = "AUTHENTICATED"
)

// Event drives state transitions
type Event string

const (
	EventLoginSucceeded    Event = "LOGIN_SUCCEEDED"
	EventRegisterSucceeded Event = "REGISTER_SUCCEEDED"
	EventLogoutRequested   Event = "LOGOUT_REQUESTED"
	EventExpiryDetected    Event = "EXPIRY_DETECTED"
)

// Reduce maps (state, event) to the next state. Transitions are
// idempotent: events that do not apply leave the state unchanged.
func Reduce(state State, event Event) State {
	switch event {
	case EventLoginSucceeded, EventRegisterSucceeded:
		return StateAuthenticated
	case EventLogoutRequested, EventExpiryDetected:
		return StateAnonymous
	default:
		return state
	}
}

// Session is the derived, ephemeral view over the current credential
type Session struct {
	Authenticated bool        `json:"authenticated"`
	Role          domain.Role `json:"role,omitempty"`
	Subject       string      `json:"subject,omitempty"`
}

// IsAdmin reports whether the session carries the ADMIN role
func (s Session) IsAdmin() bool {
	return s.Authenticated && s.Role == domain.RoleAdmin
}

// Anonymous is the unauthenticated session
func Anonymous() Session {
	return Session{}
}

// Derive builds a Session from a raw access token at the given instant.
// A missing, malformed, or expired token yields the anonymous session —
// decode failures resolve locally, they are never surfaced as errors.
func Derive(raw string, now time.Time) Session {
	if raw == "" || !token.IsValidAt(raw, now) {
		return Anonymous()
	}

	claims, err := token.Decode(raw)
	if err != nil {
		return Anonymous()
	}

	return Session{
		Authenticated: true,
		Role:          domain.Role(claims.Role),
		Subject:       claims.Subject,
	}
}
