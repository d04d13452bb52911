package services

import (
	"context"
	"errors"

	"github.com/skillswap-platform/apperrors"
	"github.com/skillswap-platform/dto"
	"github.com/skillswap-platform/identity"
	"github.com/skillswap-platform/models"
	"github.com/skillswap-platform/repositories"
)

// AuthService handles registration and login against the identity provider.
type AuthService struct {
	provider identity.Provider
	users    repositories.UserRepository
}

// NewAuthService creates a new auth service instance
func NewAuthService(provider identity.Provider, users repositories.UserRepository) *AuthService {
	return &AuthService{provider: provider, users: users}
}

// Register creates an identity-provider account and the application profile
// for it.
func (s *AuthService) Register(ctx context.Context, req dto.RegisterRequest) (*dto.AuthResponse, error) {
	if _, err := s.users.FindByEmail(ctx, req.Email); err == nil {
		return nil, apperrors.New(apperrors.KindConflict, "email already registered")
	} else if !errors.Is(err, repositories.ErrNotFound) {
		return nil, apperrors.Internal(err)
	}

	creds, err := s.provider.SignUp(ctx, req.Email, req.Password)
	if err != nil {
		return nil, err
	}

	user := models.User{
		SubjectID:    creds.SubjectID,
		Email:        req.Email,
		Name:         req.Name,
		Location:     req.Location,
		PasswordHash: creds.PasswordHash,
		Role:         models.RoleUser,
		Visibility:   models.VisibilityPublic,
		Availability: "weekends",
	}
	if err := s.users.Create(ctx, &user); err != nil {
		return nil, apperrors.Internal(err)
	}

	return &dto.AuthResponse{Token: creds.Token, User: user, ExpiresAt: creds.ExpiresAt}, nil
}

// Login authenticates against the identity provider and resolves the
// application profile.
func (s *AuthService) Login(ctx context.Context, req dto.LoginRequest) (*dto.AuthResponse, error) {
	creds, err := s.provider.SignIn(ctx, req.Email, req.Password)
	if err != nil {
		return nil, err
	}

	user, err := s.users.FindBySubjectID(ctx, creds.SubjectID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, apperrors.New(apperrors.KindUnregisteredIdentity, "no profile for this account")
		}
		return nil, apperrors.Internal(err)
	}

	return &dto.AuthResponse{Token: creds.Token, User: *user, ExpiresAt: creds.ExpiresAt}, nil
}
