package services

import (
	"context"
	"errors"
	"log"

	"github.com/skillswap-platform/apperrors"
	"github.com/skillswap-platform/identity"
	"github.com/skillswap-platform/models"
	"github.com/skillswap-platform/repositories"
)

// AuthGate resolves a bearer credential to an application user and enforces
// role requirements. Every protected operation goes through Authorize before
// any mutation runs.
type AuthGate struct {
	provider identity.Provider
	users    repositories.UserRepository
}

// NewAuthGate creates a new auth gate instance
func NewAuthGate(provider identity.Provider, users repositories.UserRepository) *AuthGate {
	return &AuthGate{provider: provider, users: users}
}

// Authorize verifies the credential, resolves the subject to a user record
// and checks the required role. requiredRole == "" accepts any role.
func (g *AuthGate) Authorize(ctx context.Context, credential string, requiredRole models.Role) (*models.User, error) {
	if credential == "" {
		return nil, apperrors.New(apperrors.KindMalformedToken, "missing bearer token")
	}

	verified, err := g.provider.VerifyToken(ctx, credential)
	if apperrors.Is(err, apperrors.KindServiceUnavailable) {
		// One immediate retry; a second failure is terminal for the request.
		log.Println("identity service unavailable, retrying once")
		verified, err = g.provider.VerifyToken(ctx, credential)
	}
	if err != nil {
		return nil, err
	}

	user, err := g.users.FindBySubjectID(ctx, verified.SubjectID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, apperrors.New(apperrors.KindUnregisteredIdentity, "no profile for this account")
		}
		return nil, apperrors.Internal(err)
	}

	if user.IsBanned {
		return nil, apperrors.New(apperrors.KindForbidden, "account is banned")
	}
	if requiredRole == models.RoleAdmin && user.Role != models.RoleAdmin {
		return nil, apperrors.New(apperrors.KindForbidden, "admin privileges required")
	}

	return user, nil
}
