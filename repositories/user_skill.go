package repositories

import (
	"context"

	"github.com/skillswap-platform/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormUserSkillRepository handles database operations for user-skill links
type GormUserSkillRepository struct {
	db *gorm.DB
}

// NewGormUserSkillRepository creates a new user-skill repository instance
func NewGormUserSkillRepository(db *gorm.DB) *GormUserSkillRepository {
	return &GormUserSkillRepository{db: db}
}

// Upsert inserts or refreshes a user-skill link
func (r *GormUserSkillRepository) Upsert(ctx context.Context, link *models.UserSkill) error {
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		UpdateAll: true,
	}).Create(link).Error
}

// Delete removes a user-skill link
func (r *GormUserSkillRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&models.UserSkill{}, "id = ?", id).Error
}

// ListByUser retrieves a user's active skills, optionally filtered by type
func (r *GormUserSkillRepository) ListByUser(ctx context.Context, userID string, skillType models.SkillType) ([]models.UserSkill, error) {
	db := r.db.WithContext(ctx).Where("user_id = ? AND is_active = ?", userID, true)
	if skillType != "" {
		db = db.Where("type = ?", skillType)
	}

	var links []models.UserSkill
	result := db.Find(&links)
	return links, result.Error
}
