package services

import (
	"context"

	"github.com/skillswap-platform/apperrors"
	"github.com/skillswap-platform/models"
	"github.com/skillswap-platform/repositories"
)

// SkillService reads the immutable skill catalog.
type SkillService struct {
	skills repositories.SkillRepository
}

// NewSkillService creates a new skill service instance
func NewSkillService(skills repositories.SkillRepository) *SkillService {
	return &SkillService{skills: skills}
}

// ListAll returns the whole catalog
func (s *SkillService) ListAll(ctx context.Context) ([]models.Skill, error) {
	skills, err := s.skills.ListAll(ctx)
	if err != nil {
		return nil, apperrors.Internal(err)
	}
	return skills, nil
}

// Search filters the catalog by name substring and optional category
func (s *SkillService) Search(ctx context.Context, query, category string) ([]models.Skill, error) {
	if query == "" {
		return nil, apperrors.New(apperrors.KindMissingField, "query parameter is required")
	}
	skills, err := s.skills.Search(ctx, query, category)
	if err != nil {
		return nil, apperrors.Internal(err)
	}
	return skills, nil
}
