package identity

import (
	"context"
	"testing"
	"time"

	"github.com/skillswap-platform/apperrors"
	"github.com/skillswap-platform/models"
	"github.com/skillswap-platform/repositories"
)

func TestLocalSignUpAndVerifyRoundtrip(t *testing.T) {
	store, _ := repositories.NewMemoryStore()
	provider := NewLocalProvider("test-secret", time.Hour, store.Users)
	ctx := context.Background()

	creds, err := provider.SignUp(ctx, "alice@example.com", "password123")
	if err != nil {
		t.Fatalf("sign up failed: %v", err)
	}
	if creds.SubjectID == "" || creds.Token == "" || creds.PasswordHash == "" {
		t.Fatalf("incomplete credentials: %+v", creds)
	}

	verified, err := provider.VerifyToken(ctx, creds.Token)
	if err != nil {
		t.Fatalf("verify failed: %v", err)
	}
	if verified.SubjectID != creds.SubjectID {
		t.Fatalf("subject mismatch: %s != %s", verified.SubjectID, creds.SubjectID)
	}
	if !verified.ExpiresAt.After(time.Now()) {
		t.Fatalf("token should not be expired yet")
	}
}

func TestLocalSignInChecksPassword(t *testing.T) {
	store, _ := repositories.NewMemoryStore()
	provider := NewLocalProvider("test-secret", time.Hour, store.Users)
	ctx := context.Background()

	creds, err := provider.SignUp(ctx, "alice@example.com", "password123")
	if err != nil {
		t.Fatalf("sign up failed: %v", err)
	}
	user := models.User{
		ID:           "user-alice",
		SubjectID:    creds.SubjectID,
		Email:        "alice@example.com",
		Name:         "Alice",
		PasswordHash: creds.PasswordHash,
	}
	if err := store.Users.Create(ctx, &user); err != nil {
		t.Fatalf("failed to create user: %v", err)
	}

	signed, err := provider.SignIn(ctx, "alice@example.com", "password123")
	if err != nil {
		t.Fatalf("sign in failed: %v", err)
	}
	if signed.SubjectID != creds.SubjectID {
		t.Fatalf("subject mismatch after sign in")
	}

	if _, err := provider.SignIn(ctx, "alice@example.com", "wrong-password"); !apperrors.Is(err, apperrors.KindMalformedToken) {
		t.Fatalf("expected auth failure for wrong password, got %v", err)
	}
	if _, err := provider.SignIn(ctx, "nobody@example.com", "password123"); !apperrors.Is(err, apperrors.KindMalformedToken) {
		t.Fatalf("expected auth failure for unknown email, got %v", err)
	}
}

func TestLocalVerifyClassifiesExpiredToken(t *testing.T) {
	store, _ := repositories.NewMemoryStore()
	// Negative TTL mints an already-expired token.
	provider := NewLocalProvider("test-secret", -time.Minute, store.Users)
	ctx := context.Background()

	creds, err := provider.SignUp(ctx, "alice@example.com", "password123")
	if err != nil {
		t.Fatalf("sign up failed: %v", err)
	}

	_, err = provider.VerifyToken(ctx, creds.Token)
	if !apperrors.Is(err, apperrors.KindExpiredToken) {
		t.Fatalf("expected expired token, got %v", err)
	}
}

func TestLocalVerifyClassifiesGarbage(t *testing.T) {
	store, _ := repositories.NewMemoryStore()
	provider := NewLocalProvider("test-secret", time.Hour, store.Users)
	ctx := context.Background()

	if _, err := provider.VerifyToken(ctx, ""); !apperrors.Is(err, apperrors.KindMalformedToken) {
		t.Fatalf("expected malformed for empty token, got %v", err)
	}
	if _, err := provider.VerifyToken(ctx, "not-a-jwt"); !apperrors.Is(err, apperrors.KindMalformedToken) {
		t.Fatalf("expected malformed for garbage token, got %v", err)
	}

	other := NewLocalProvider("other-secret", time.Hour, store.Users)
	creds, err := other.SignUp(ctx, "alice@example.com", "password123")
	if err != nil {
		t.Fatalf("sign up failed: %v", err)
	}
	if _, err := provider.VerifyToken(ctx, creds.Token); !apperrors.Is(err, apperrors.KindMalformedToken) {
		t.Fatalf("expected malformed for wrong signature, got %v", err)
	}
}
