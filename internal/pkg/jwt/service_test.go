package jwt

import (
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
)

func newTestService() *HMACService {
	return NewHMACService("access-secret", "refresh-secret", 15*time.Minute, 24*time.Hour)
}

func TestAccessTokenRoundTrip(t *testing.T) {
	svc := newTestService()
	userID := uuid.New()

	token, err := svc.GenerateAccessToken(userID, "jane@campus.edu")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	claims, err := svc.ValidateToken(token)
	if err != nil {
		t.Fatalf("validate: %v", err)
	}
	if claims.UserID != userID {
		t.Fatalf("user id mismatch: got %s", claims.UserID)
	}
	if claims.Email != "jane@campus.edu" {
		t.Fatalf("email mismatch: got %q", claims.Email)
	}
	if svc.IsRefreshToken(claims) {
		t.Fatal("access token reported as refresh")
	}
}

func TestRefreshTokenType(t *testing.T) {
	svc := newTestService()

	token, err := svc.GenerateRefreshToken(uuid.New())
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	claims, err := svc.ValidateToken(token)
	if err != nil {
		t.Fatalf("validate: %v", err)
	}
	if !svc.IsRefreshToken(claims) {
		t.Fatal("refresh token not recognized")
	}
}

func TestExpiredTokenRejected(t *testing.T) {
	svc := newTestService()
	issued := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return issued }

	token, err := svc.GenerateAccessToken(uuid.New(), "")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	svc.now = func() time.Time { return issued.Add(16 * time.Minute) }
	if _, err := svc.ValidateToken(token); !errors.Is(err, ErrTokenExpired) {
		t.Fatalf("expected ErrTokenExpired, got %v", err)
	}
}

func TestForeignSignatureRejected(t *testing.T) {
	svc := newTestService()
	other := NewHMACService("other-a", "other-b", time.Minute, time.Minute)

	token, err := other.GenerateAccessToken(uuid.New(), "")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if _, err := svc.ValidateToken(token); !errors.Is(err, ErrTokenInvalid) {
		t.Fatalf("expected ErrTokenInvalid, got %v", err)
	}
}
