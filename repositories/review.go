package repositories

import (
	"context"

	"github.com/skillswap-platform/models"
	"gorm.io/gorm"
)

// GormReviewRepository handles database operations for reviews
type GormReviewRepository struct {
	db *gorm.DB
}

// NewGormReviewRepository creates a new review repository instance
func NewGormReviewRepository(db *gorm.DB) *GormReviewRepository {
	return &GormReviewRepository{db: db}
}

// Create inserts a new review
func (r *GormReviewRepository) Create(ctx context.Context, review *models.Review) error {
	return r.db.WithContext(ctx).Create(review).Error
}

// ExistsForAuthor reports whether the author already reviewed the swap request
func (r *GormReviewRepository) ExistsForAuthor(ctx context.Context, authorID, swapRequestID string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.Review{}).
		Where("author_id = ? AND swap_request_id = ?", authorID, swapRequestID).
		Count(&count).Error
	return count > 0, err
}

// ListBySubject retrieves reviews written about a user
func (r *GormReviewRepository) ListBySubject(ctx context.Context, subjectID string) ([]models.Review, error) {
	var reviews []models.Review
	result := r.db.WithContext(ctx).
		Where("subject_id = ?", subjectID).
		Order("created_at DESC").
		Find(&reviews)
	return reviews, result.Error
}

// ListByAuthor retrieves reviews written by a user
func (r *GormReviewRepository) ListByAuthor(ctx context.Context, authorID string) ([]models.Review, error) {
	var reviews []models.Review
	result := r.db.WithContext(ctx).
		Where("author_id = ?", authorID).
		Order("created_at DESC").
		Find(&reviews)
	return reviews, result.Error
}
