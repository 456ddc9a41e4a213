package token

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

func signToken(t *testing.T, role, subject string, exp time.Time) string {
	t.Helper()
	claims := jwt.MapClaims{
		"sub":  subject,
		"role": role,
		"exp":  exp.Unix(),
	}
	raw, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("server-side-secret"))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return raw
}

func TestDecode_ReadsClaims(t *testing.T) {
	now := time.Now()
	raw := signToken(t, "ADMIN", "admin@example.com", now.Add(time.Hour))

	claims, err := Decode(raw)
	if err != nil {
		t.Fatalf("Decode returned error: %v", err)
	}
	if claims.Subject != "admin@example.com" {
		t.Errorf("expected subject admin@example.com, got %s", claims.Subject)
	}
	if claims.Role != "ADMIN" {
		t.Errorf("expected role ADMIN, got %s", claims.Role)
	}
}

func TestDecode_Empty(t *testing.T) {
	if _, err := Decode(""); err == nil {
		t.Error("expected error for empty token")
	}
}

func TestDecode_Malformed(t *testing.T) {
	for _, raw := range []string{"not-a-token", "a.b", "a.b.c"} {
		if _, err := Decode(raw); err == nil {
			t.Errorf("expected error for %q", raw)
		}
	}
}

func TestDecode_MissingExpiry(t *testing.T) {
	claims := jwt.MapClaims{"sub": "user@example.com", "role": "USER"}
	raw, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("secret"))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}

	if _, err := Decode(raw); err != ErrMissingExpiry {
		t.Errorf("expected ErrMissingExpiry, got %v", err)
	}
}

func TestIsValidAt_FutureExpiry(t *testing.T) {
	now := time.Now()
	raw := signToken(t, "USER", "user@example.com", now.Add(time.Minute))

	if !IsValidAt(raw, now) {
		t.Error("token expiring in the future should be valid")
	}
}

func TestIsValidAt_PastExpiry(t *testing.T) {
	now := time.Now()
	raw := signToken(t, "USER", "user@example.com", now.Add(-time.Minute))

	if IsValidAt(raw, now) {
		t.Error("expired token should be invalid")
	}
}

func TestIsValidAt_ExactBoundary(t *testing.T) {
	// exp <= now means invalid, no leeway
	exp := time.Now().Truncate(time.Second)
	raw := signToken(t, "USER", "user@example.com", exp)

	if IsValidAt(raw, exp) {
		t.Error("token at its exact expiry instant should be invalid")
	}
}

func TestIsValidAt_FailsClosed(t *testing.T) {
	for _, raw := range []string{"", "garbage", "a.b.c"} {
		if IsValidAt(raw, time.Now()) {
			t.Errorf("IsValidAt(%q) should be false", raw)
		}
	}
}

func TestIsValidAt_DecodesExpiredTokens(t *testing.T) {
	// The decode itself must not reject an expired token: the validity
	// decision is ours, made on the exp claim
	now := time.Now()
	raw := signToken(t, "USER", "user@example.com", now.Add(-time.Hour))

	claims, err := Decode(raw)
	if err != nil {
		t.Fatalf("Decode of expired token returned error: %v", err)
	}
	if !claims.ExpiresAt.Time.Before(now) {
		t.Error("expected expiry in the past")
	}
}
