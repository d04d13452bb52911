package repositories

import (
	"context"
	"errors"

	"github.com/skillswap-platform/models"
	"gorm.io/gorm"
)

// GormTransactionRepository reads the append-only transaction log
type GormTransactionRepository struct {
	db *gorm.DB
}

// NewGormTransactionRepository creates a new transaction repository instance
func NewGormTransactionRepository(db *gorm.DB) *GormTransactionRepository {
	return &GormTransactionRepository{db: db}
}

// FindByID retrieves a transaction by its ID
func (r *GormTransactionRepository) FindByID(ctx context.Context, id string) (*models.Transaction, error) {
	var txn models.Transaction
	result := r.db.WithContext(ctx).First(&txn, "id = ?", id)
	if errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	return &txn, result.Error
}

// FindBySwapRequestID retrieves the transaction created for a swap request
func (r *GormTransactionRepository) FindBySwapRequestID(ctx context.Context, swapRequestID string) (*models.Transaction, error) {
	var txn models.Transaction
	result := r.db.WithContext(ctx).First(&txn, "swap_request_id = ?", swapRequestID)
	if errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	return &txn, result.Error
}

// ListByUser retrieves transactions where the user participated
func (r *GormTransactionRepository) ListByUser(ctx context.Context, userID string) ([]models.Transaction, error) {
	var txns []models.Transaction
	result := r.db.WithContext(ctx).
		Where("requester_id = ? OR recipient_id = ?", userID, userID).
		Order("completed_at DESC").
		Find(&txns)
	return txns, result.Error
}
