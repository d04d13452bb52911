package repositories

import (
	"context"
	"errors"

	"github.com/skillswap-platform/models"
	"gorm.io/gorm"
)

// GormUserRepository handles database operations for users
type GormUserRepository struct {
	db *gorm.DB
}

// NewGormUserRepository creates a new user repository instance
func NewGormUserRepository(db *gorm.DB) *GormUserRepository {
	return &GormUserRepository{db: db}
}

// Create inserts a new user into the database
func (r *GormUserRepository) Create(ctx context.Context, user *models.User) error {
	return r.db.WithContext(ctx).Create(user).Error
}

// FindByID retrieves a user by its ID
func (r *GormUserRepository) FindByID(ctx context.Context, id string) (*models.User, error) {
	var user models.User
	result := r.db.WithContext(ctx).First(&user, "id = ?", id)
	if errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	return &user, result.Error
}

// FindBySubjectID retrieves a user by the identity provider's subject id
func (r *GormUserRepository) FindBySubjectID(ctx context.Context, subjectID string) (*models.User, error) {
	var user models.User
	result := r.db.WithContext(ctx).First(&user, "subject_id = ?", subjectID)
	if errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	return &user, result.Error
}

// FindByEmail retrieves a user by email
func (r *GormUserRepository) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	result := r.db.WithContext(ctx).First(&user, "email = ?", email)
	if errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	return &user, result.Error
}

// Update modifies an existing user
func (r *GormUserRepository) Update(ctx context.Context, user *models.User) error {
	return r.db.WithContext(ctx).Save(user).Error
}

// ListPublic retrieves public, non-banned profiles
func (r *GormUserRepository) ListPublic(ctx context.Context, limit int) ([]models.User, error) {
	var users []models.User
	result := r.db.WithContext(ctx).
		Where("visibility = ? AND is_banned = ?", models.VisibilityPublic, false).
		Limit(limit).
		Find(&users)
	return users, result.Error
}

// ListAll retrieves every user, banned ones included (admin view)
func (r *GormUserRepository) ListAll(ctx context.Context) ([]models.User, error) {
	var users []models.User
	result := r.db.WithContext(ctx).Find(&users)
	return users, result.Error
}
