package services

import (
	"context"
	"errors"
	"log"
	"strings"

	"disasterwatch/internal/adapters/api"
	"disasterwatch/internal/core/session"
)

// Auth errors
var (
	ErrEmailRequired    = errors.New("email is required")
	ErrPasswordRequired = errors.New("password is required")
	ErrPasswordTooShort = errors.New("password must be at least 8 characters")
)

// AuthService orchestrates the remote auth endpoints and the session
// guard: it persists issued credentials and drives the login/logout
// transitions. Server-side failures pass through as opaque payloads for
// the caller to display.
type AuthService struct {
	authAPI AuthAPI
	guard   *session.Guard
}

// NewAuthService creates a new auth service
func NewAuthService(authAPI AuthAPI, guard *session.Guard) *AuthService {
	return &AuthService{
		authAPI: authAPI,
		guard:   guard,
	}
}

// Register creates an account and logs the session in
func (s *AuthService) Register(ctx context.Context, email, password string) (session.Session, error) {
	email = strings.TrimSpace(email)
	if err := validateCredentials(email, password); err != nil {
		return s.guard.Session(), err
	}
	if len(password) < 8 {
		return s.guard.Session(), ErrPasswordTooShort
	}

	pair, err := s.authAPI.Register(ctx, api.RegisterInput{Email: email, Password: password})
	if err != nil {
		return s.guard.Session(), err
	}

	ses, err := s.guard.HandleLogin(ctx, *pair, session.EventRegisterSucceeded)
	if err != nil {
		return ses, err
	}

	log.Printf("✅ User registered: %s", ses.Subject)
	return ses, nil
}

// Login authenticates and logs the session in
func (s *AuthService) Login(ctx context.Context, email, password string) (session.Session, error) {
	email = strings.TrimSpace(email)
	if err := validateCredentials(email, password); err != nil {
		return s.guard.Session(), err
	}

	pair, err := s.authAPI.Authenticate(ctx, api.LoginInput{Email: email, Password: password})
	if err != nil {
		return s.guard.Session(), err
	}

	ses, err := s.guard.HandleLogin(ctx, *pair, session.EventLoginSucceeded)
	if err != nil {
		return ses, err
	}

	log.Printf("✅ User logged in: %s", ses.Subject)
	return ses, nil
}

// Logout clears persisted credentials and returns to ANONYMOUS
func (s *AuthService) Logout(ctx context.Context) session.Session {
	ses := s.guard.Logout(ctx)
	log.Printf("✅ User logged out")
	return ses
}

func validateCredentials(email, password string) error {
	if email == "" {
		return ErrEmailRequired
	}
	if password == "" {
		return ErrPasswordRequired
	}
	return nil
}
