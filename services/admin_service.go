package services

import (
	"context"
	"errors"

	"github.com/skillswap-platform/apperrors"
	"github.com/skillswap-platform/models"
	"github.com/skillswap-platform/repositories"
)

// AdminService implements the admin-only views and moderation actions.
type AdminService struct {
	users repositories.UserRepository
}

// NewAdminService creates a new admin service instance
func NewAdminService(users repositories.UserRepository) *AdminService {
	return &AdminService{users: users}
}

// ListUsers returns every profile, banned ones included
func (s *AdminService) ListUsers(ctx context.Context) ([]models.User, error) {
	users, err := s.users.ListAll(ctx)
	if err != nil {
		return nil, apperrors.Internal(err)
	}
	return users, nil
}

// SetBan bans or unbans a user. Admins cannot ban themselves.
func (s *AdminService) SetBan(ctx context.Context, actor *models.User, userID string, banned bool, reason string) (*models.User, error) {
	if actor.ID == userID {
		return nil, apperrors.New(apperrors.KindSelfReference, "cannot ban your own account")
	}

	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, apperrors.New(apperrors.KindNotFound, "user not found")
		}
		return nil, apperrors.Internal(err)
	}

	user.IsBanned = banned
	if banned {
		user.BanReason = reason
	} else {
		user.BanReason = ""
	}
	if err := s.users.Update(ctx, user); err != nil {
		return nil, apperrors.Internal(err)
	}
	return user, nil
}
