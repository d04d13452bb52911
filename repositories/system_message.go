package repositories

import (
	"context"
	"errors"

	"github.com/skillswap-platform/models"
	"gorm.io/gorm"
)

// GormSystemMessageRepository handles database operations for system messages
type GormSystemMessageRepository struct {
	db *gorm.DB
}

// NewGormSystemMessageRepository creates a new system message repository instance
func NewGormSystemMessageRepository(db *gorm.DB) *GormSystemMessageRepository {
	return &GormSystemMessageRepository{db: db}
}

// Create inserts a new system message
func (r *GormSystemMessageRepository) Create(ctx context.Context, message *models.SystemMessage) error {
	return r.db.WithContext(ctx).Create(message).Error
}

// FindByID retrieves a system message by its ID
func (r *GormSystemMessageRepository) FindByID(ctx context.Context, id string) (*models.SystemMessage, error) {
	var message models.SystemMessage
	result := r.db.WithContext(ctx).First(&message, "id = ?", id)
	if errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	return &message, result.Error
}

// Update modifies an existing system message
func (r *GormSystemMessageRepository) Update(ctx context.Context, message *models.SystemMessage) error {
	return r.db.WithContext(ctx).Save(message).Error
}

// ListActive retrieves currently active messages
func (r *GormSystemMessageRepository) ListActive(ctx context.Context) ([]models.SystemMessage, error) {
	var messages []models.SystemMessage
	result := r.db.WithContext(ctx).
		Where("is_active = ?", true).
		Order("created_at DESC").
		Find(&messages)
	return messages, result.Error
}
