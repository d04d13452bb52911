package services

import (
	"context"
	"errors"

	"github.com/skillswap-platform/apperrors"
	"github.com/skillswap-platform/models"
	"github.com/skillswap-platform/repositories"
)

// TransactionService reads the append-only swap transaction log.
type TransactionService struct {
	transactions repositories.TransactionRepository
}

// NewTransactionService creates a new transaction service instance
func NewTransactionService(transactions repositories.TransactionRepository) *TransactionService {
	return &TransactionService{transactions: transactions}
}

// Get retrieves a transaction; only its participants may read it
func (s *TransactionService) Get(ctx context.Context, actor *models.User, id string) (*models.Transaction, error) {
	txn, err := s.transactions.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, apperrors.New(apperrors.KindNotFound, "transaction not found")
		}
		return nil, apperrors.Internal(err)
	}
	if txn.RequesterID != actor.ID && txn.RecipientID != actor.ID && actor.Role != models.RoleAdmin {
		return nil, apperrors.New(apperrors.KindForbidden, "not a participant of this transaction")
	}
	return txn, nil
}

// ListForUser returns the user's transactions
func (s *TransactionService) ListForUser(ctx context.Context, userID string) ([]models.Transaction, error) {
	txns, err := s.transactions.ListByUser(ctx, userID)
	if err != nil {
		return nil, apperrors.Internal(err)
	}
	return txns, nil
}
