package identity

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/skillswap-platform/apperrors"
	"github.com/skillswap-platform/models"
	"golang.org/x/crypto/bcrypt"
)

// AccountStore is the slice of user storage the local provider needs to
// check passwords on sign-in.
type AccountStore interface {
	FindByEmail(ctx context.Context, email string) (*models.User, error)
}

// LocalProvider issues and verifies HS256 tokens in-process. It exists for
// development and tests; production deployments use the Firebase provider.
type LocalProvider struct {
	secret   []byte
	tokenTTL time.Duration
	accounts AccountStore
}

type localClaims struct {
	jwt.RegisteredClaims
}

// NewLocalProvider creates an in-process identity provider.
func NewLocalProvider(secret string, tokenTTL time.Duration, accounts AccountStore) *LocalProvider {
	return &LocalProvider{secret: []byte(secret), tokenTTL: tokenTTL, accounts: accounts}
}

// SignUp mints a fresh subject id and a token for it. The returned password
// hash is persisted on the user profile by the auth service.
func (p *LocalProvider) SignUp(ctx context.Context, email, password string) (*Credentials, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, apperrors.Internal(err)
	}

	subjectID := uuid.NewString()
	token, expiresAt, err := p.issue(subjectID)
	if err != nil {
		return nil, err
	}
	return &Credentials{
		SubjectID:    subjectID,
		Token:        token,
		ExpiresAt:    expiresAt,
		PasswordHash: string(hash),
	}, nil
}

// SignIn checks the password against the stored profile and issues a token.
func (p *LocalProvider) SignIn(ctx context.Context, email, password string) (*Credentials, error) {
	user, err := p.accounts.FindByEmail(ctx, email)
	if err != nil {
		return nil, apperrors.New(apperrors.KindMalformedToken, "invalid email or password")
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return nil, apperrors.New(apperrors.KindMalformedToken, "invalid email or password")
	}

	token, expiresAt, err := p.issue(user.SubjectID)
	if err != nil {
		return nil, err
	}
	return &Credentials{SubjectID: user.SubjectID, Token: token, ExpiresAt: expiresAt}, nil
}

// VerifyToken parses and validates a locally issued token.
func (p *LocalProvider) VerifyToken(ctx context.Context, token string) (*VerifiedToken, error) {
	if strings.TrimSpace(token) == "" {
		return nil, errEmptyToken
	}

	parsed, err := jwt.ParseWithClaims(token, &localClaims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return p.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, apperrors.New(apperrors.KindExpiredToken, "token expired")
		}
		return nil, apperrors.Wrap(apperrors.KindMalformedToken, "invalid token", err)
	}

	claims, ok := parsed.Claims.(*localClaims)
	if !ok || !parsed.Valid {
		return nil, apperrors.New(apperrors.KindMalformedToken, "invalid token claims")
	}

	verified := &VerifiedToken{SubjectID: claims.Subject}
	if claims.IssuedAt != nil {
		verified.IssuedAt = claims.IssuedAt.Time
	}
	if claims.ExpiresAt != nil {
		verified.ExpiresAt = claims.ExpiresAt.Time
	}
	return verified, nil
}

func (p *LocalProvider) issue(subjectID string) (string, time.Time, error) {
	now := time.Now()
	expiresAt := now.Add(p.tokenTTL)

	claims := localClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subjectID,
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(p.secret)
	if err != nil {
		return "", time.Time{}, apperrors.Internal(err)
	}
	return token, expiresAt, nil
}
