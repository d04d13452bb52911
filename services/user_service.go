package services

import (
	"context"
	"errors"

	"github.com/skillswap-platform/apperrors"
	"github.com/skillswap-platform/dto"
	"github.com/skillswap-platform/models"
	"github.com/skillswap-platform/repositories"
)

// UserService handles profile reads and updates plus the user-skill links.
type UserService struct {
	users      repositories.UserRepository
	skills     repositories.SkillRepository
	userSkills repositories.UserSkillRepository
}

// NewUserService creates a new user service instance
func NewUserService(users repositories.UserRepository, skills repositories.SkillRepository, userSkills repositories.UserSkillRepository) *UserService {
	return &UserService{users: users, skills: skills, userSkills: userSkills}
}

// GetProfile retrieves a user profile by id
func (s *UserService) GetProfile(ctx context.Context, id string) (*models.User, error) {
	user, err := s.users.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, apperrors.New(apperrors.KindNotFound, "user not found")
		}
		return nil, apperrors.Internal(err)
	}
	return user, nil
}

// UpdateProfile applies the non-nil fields of the request to the profile
func (s *UserService) UpdateProfile(ctx context.Context, user *models.User, req dto.UpdateProfileRequest) (*models.User, error) {
	if req.Name != nil {
		user.Name = *req.Name
	}
	if req.Location != nil {
		user.Location = *req.Location
	}
	if req.Bio != nil {
		user.Bio = *req.Bio
	}
	if req.Availability != nil {
		user.Availability = *req.Availability
	}
	if req.Visibility != nil {
		user.Visibility = models.Visibility(*req.Visibility)
	}

	if err := s.users.Update(ctx, user); err != nil {
		return nil, apperrors.Internal(err)
	}
	return user, nil
}

// AddSkill links a skill to the user, creating the catalog entry when the
// name is new (the catalog itself stays immutable).
func (s *UserService) AddSkill(ctx context.Context, user *models.User, req dto.AddSkillRequest) (*models.UserSkill, error) {
	skillID := models.SkillID(req.SkillName)
	skill, err := s.skills.FindByID(ctx, skillID)
	if errors.Is(err, repositories.ErrNotFound) {
		skill = &models.Skill{
			ID:          skillID,
			Name:        req.SkillName,
			Category:    "General",
			Description: "User-added skill: " + req.SkillName,
			CreatedBy:   user.ID,
		}
		if err := s.skills.Create(ctx, skill); err != nil {
			return nil, apperrors.Internal(err)
		}
	} else if err != nil {
		return nil, apperrors.Internal(err)
	}

	skillType := models.SkillType(req.SkillType)
	proficiency := req.Proficiency
	if proficiency == "" {
		proficiency = "intermediate"
	}

	link := models.UserSkill{
		ID:          models.UserSkillID(user.ID, skillID, skillType),
		UserID:      user.ID,
		SkillID:     skillID,
		SkillName:   skill.Name,
		Type:        skillType,
		Proficiency: proficiency,
		Description: req.Description,
		IsActive:    true,
	}
	if err := s.userSkills.Upsert(ctx, &link); err != nil {
		return nil, apperrors.Internal(err)
	}
	return &link, nil
}

// RemoveSkill unlinks a skill from the user
func (s *UserService) RemoveSkill(ctx context.Context, user *models.User, req dto.RemoveSkillRequest) error {
	id := models.UserSkillID(user.ID, models.SkillID(req.SkillName), models.SkillType(req.SkillType))
	if err := s.userSkills.Delete(ctx, id); err != nil {
		return apperrors.Internal(err)
	}
	return nil
}

// ListSkills returns a user's active skills, optionally filtered by type
func (s *UserService) ListSkills(ctx context.Context, userID string, skillType models.SkillType) ([]models.UserSkill, error) {
	links, err := s.userSkills.ListByUser(ctx, userID, skillType)
	if err != nil {
		return nil, apperrors.Internal(err)
	}
	return links, nil
}

// ListPublic returns public, non-banned profiles
func (s *UserService) ListPublic(ctx context.Context, limit int) ([]models.User, error) {
	if limit <= 0 || limit > 200 {
		limit = 50
	}
	users, err := s.users.ListPublic(ctx, limit)
	if err != nil {
		return nil, apperrors.Internal(err)
	}
	return users, nil
}
