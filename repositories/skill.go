package repositories

import (
	"context"
	"errors"

	"github.com/skillswap-platform/models"
	"gorm.io/gorm"
)

// GormSkillRepository handles database operations for the skill catalog
type GormSkillRepository struct {
	db *gorm.DB
}

// NewGormSkillRepository creates a new skill repository instance
func NewGormSkillRepository(db *gorm.DB) *GormSkillRepository {
	return &GormSkillRepository{db: db}
}

// Create inserts a new catalog entry; existing entries are left untouched
func (r *GormSkillRepository) Create(ctx context.Context, skill *models.Skill) error {
	return r.db.WithContext(ctx).FirstOrCreate(skill, "id = ?", skill.ID).Error
}

// FindByID retrieves a skill by its ID
func (r *GormSkillRepository) FindByID(ctx context.Context, id string) (*models.Skill, error) {
	var skill models.Skill
	result := r.db.WithContext(ctx).First(&skill, "id = ?", id)
	if errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	return &skill, result.Error
}

// ListAll retrieves the whole catalog
func (r *GormSkillRepository) ListAll(ctx context.Context) ([]models.Skill, error) {
	var skills []models.Skill
	result := r.db.WithContext(ctx).Order("name").Find(&skills)
	return skills, result.Error
}

// Search filters the catalog by name substring and optional category
func (r *GormSkillRepository) Search(ctx context.Context, query, category string) ([]models.Skill, error) {
	db := r.db.WithContext(ctx).Where("name ILIKE ?", "%"+query+"%")
	if category != "" {
		db = db.Where("category = ?", category)
	}

	var skills []models.Skill
	result := db.Order("name").Find(&skills)
	return skills, result.Error
}
