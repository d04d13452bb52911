package repositories

import (
	"context"
	"errors"
	"time"

	"github.com/skillswap-platform/models"
	"gorm.io/gorm"
)

// GormSwapRequestRepository handles database operations for swap requests
type GormSwapRequestRepository struct {
	db *gorm.DB
}

// NewGormSwapRequestRepository creates a new swap request repository instance
func NewGormSwapRequestRepository(db *gorm.DB) *GormSwapRequestRepository {
	return &GormSwapRequestRepository{db: db}
}

// Create inserts a new swap request
func (r *GormSwapRequestRepository) Create(ctx context.Context, request *models.SwapRequest) error {
	return r.db.WithContext(ctx).Create(request).Error
}

// FindByID retrieves a swap request by its ID
func (r *GormSwapRequestRepository) FindByID(ctx context.Context, id string) (*models.SwapRequest, error) {
	var request models.SwapRequest
	result := r.db.WithContext(ctx).First(&request, "id = ?", id)
	if errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	return &request, result.Error
}

// ListByUser retrieves requests where the user is requester, recipient or either
func (r *GormSwapRequestRepository) ListByUser(ctx context.Context, userID string, filter SwapListFilter) ([]models.SwapRequest, error) {
	db := r.db.WithContext(ctx)
	switch filter {
	case SwapsSent:
		db = db.Where("requester_id = ?", userID)
	case SwapsReceived:
		db = db.Where("recipient_id = ?", userID)
	default:
		db = db.Where("requester_id = ? OR recipient_id = ?", userID, userID)
	}

	var requests []models.SwapRequest
	result := db.Order("created_at DESC").Find(&requests)
	return requests, result.Error
}

// ListAll retrieves every swap request (admin view)
func (r *GormSwapRequestRepository) ListAll(ctx context.Context) ([]models.SwapRequest, error) {
	var requests []models.SwapRequest
	result := r.db.WithContext(ctx).Order("created_at DESC").Find(&requests)
	return requests, result.Error
}

// UpdateStatus applies a conditional status write keyed on the expected
// prior status. applied=false means the stored status did not match and
// nothing changed.
func (r *GormSwapRequestRepository) UpdateStatus(ctx context.Context, id string, from, to models.SwapStatus, responseMessage string) (bool, error) {
	updates := map[string]interface{}{
		"status":     to,
		"updated_at": time.Now(),
	}
	if responseMessage != "" {
		updates["response_message"] = responseMessage
	}

	result := r.db.WithContext(ctx).
		Model(&models.SwapRequest{}).
		Where("id = ? AND status = ?", id, from).
		Updates(updates)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

// Complete flips accepted -> completed and writes the transaction record in
// one database transaction, so a losing concurrent completion observes
// neither change.
func (r *GormSwapRequestRepository) Complete(ctx context.Context, id string, txn *models.Transaction) (bool, error) {
	applied := false
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&models.SwapRequest{}).
			Where("id = ? AND status = ?", id, models.SwapAccepted).
			Updates(map[string]interface{}{
				"status":     models.SwapCompleted,
				"updated_at": time.Now(),
			})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return nil
		}

		if err := tx.Create(txn).Error; err != nil {
			return err
		}
		applied = true
		return nil
	})
	return applied, err
}
