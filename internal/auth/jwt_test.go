package auth

import (
	"testing"

	"github.com/lucasvieira94/nola-god-level/internal/models"
)

func TestTokenRoundTrip(t *testing.T) {
	SetSecret("test-secret")

	token, err := GenerateToken(models.User{ID: 42, Username: "alice"})
	if err != nil {
		t.Fatalf("failed to generate token: %v", err)
	}

	userID, err := UserIDFromToken(token)
	if err != nil {
		t.Fatalf("failed to verify token: %v", err)
	}
	if userID != 42 {
		t.Errorf("expected user id 42, got %d", userID)
	}
}

func TestTokenWrongSecret(t *testing.T) {
	SetSecret("test-secret")
	token, err := GenerateToken(models.User{ID: 1, Username: "alice"})
	if err != nil {
		t.Fatalf("failed to generate token: %v", err)
	}

	SetSecret("another-secret")
	defer SetSecret("test-secret")

	if _, err := UserIDFromToken(token); err == nil {
		t.Error("token signed with a different secret must be rejected")
	}
}

func TestGarbageToken(t *testing.T) {
	SetSecret("test-secret")
	if _, err := UserIDFromToken("not-a-token"); err == nil {
		t.Error("expected an error for a malformed token")
	}
}
