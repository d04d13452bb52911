package services

import (
	"context"
	"errors"

	"github.com/skillswap-platform/apperrors"
	"github.com/skillswap-platform/dto"
	"github.com/skillswap-platform/models"
	"github.com/skillswap-platform/repositories"
)

// MessageService handles admin-authored platform broadcasts.
type MessageService struct {
	messages repositories.SystemMessageRepository
}

// NewMessageService creates a new message service instance
func NewMessageService(messages repositories.SystemMessageRepository) *MessageService {
	return &MessageService{messages: messages}
}

// ListActive returns currently active broadcasts (public)
func (s *MessageService) ListActive(ctx context.Context) ([]models.SystemMessage, error) {
	messages, err := s.messages.ListActive(ctx)
	if err != nil {
		return nil, apperrors.Internal(err)
	}
	return messages, nil
}

// Create publishes a new broadcast. The caller must already be gated as
// admin.
func (s *MessageService) Create(ctx context.Context, author *models.User, req dto.CreateMessageRequest) (*models.SystemMessage, error) {
	messageType := req.Type
	if messageType == "" {
		messageType = "announcement"
	}

	message := models.SystemMessage{
		AuthorID: author.ID,
		Title:    req.Title,
		Message:  req.Message,
		Type:     messageType,
		IsActive: true,
	}
	if err := s.messages.Create(ctx, &message); err != nil {
		return nil, apperrors.Internal(err)
	}
	return &message, nil
}

// Toggle flips a broadcast's active flag
func (s *MessageService) Toggle(ctx context.Context, id string, active bool) (*models.SystemMessage, error) {
	message, err := s.messages.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, apperrors.New(apperrors.KindNotFound, "system message not found")
		}
		return nil, apperrors.Internal(err)
	}

	message.IsActive = active
	if err := s.messages.Update(ctx, message); err != nil {
		return nil, apperrors.Internal(err)
	}
	return message, nil
}
