package identity

import (
	"context"
	"time"

	"github.com/skillswap-platform/apperrors"
)

// VerifiedToken is the result of a successful credential check.
type VerifiedToken struct {
	SubjectID string
	IssuedAt  time.Time
	ExpiresAt time.Time
}

// Credentials is the result of a sign-up or sign-in with the provider.
// PasswordHash is only populated by the local provider on sign-up, so the
// auth service can persist it on the profile.
type Credentials struct {
	SubjectID    string
	Token        string
	ExpiresAt    time.Time
	PasswordHash string
}

// Provider is the external identity service. VerifyToken classifies every
// failure as one of the auth error kinds; ServiceUnavailable is the only
// kind callers may retry.
type Provider interface {
	SignUp(ctx context.Context, email, password string) (*Credentials, error)
	SignIn(ctx context.Context, email, password string) (*Credentials, error)
	VerifyToken(ctx context.Context, token string) (*VerifiedToken, error)
}

var (
	errEmptyToken = apperrors.New(apperrors.KindMalformedToken, "missing bearer token")
)
