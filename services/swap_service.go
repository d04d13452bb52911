package services

import (
	"context"
	"errors"
	"time"

	"github.com/skillswap-platform/apperrors"
	"github.com/skillswap-platform/dto"
	"github.com/skillswap-platform/models"
	"github.com/skillswap-platform/repositories"
)

// SwapService owns the swap request lifecycle. Transitions are applied
// through conditional writes keyed on the expected prior status, so a
// transition either fully applies (including the transaction record on
// completion) or leaves the request untouched.
type SwapService struct {
	store *repositories.Store
}

// NewSwapService creates a new swap service instance
func NewSwapService(store *repositories.Store) *SwapService {
	return &SwapService{store: store}
}

// Create opens a pending swap request from the authenticated user to a
// recipient.
func (s *SwapService) Create(ctx context.Context, requester *models.User, req dto.CreateSwapRequest) (*models.SwapRequest, error) {
	if req.RecipientID == requester.ID {
		return nil, apperrors.New(apperrors.KindSelfReference, "cannot open a swap request with yourself")
	}

	if _, err := s.store.Users.FindByID(ctx, req.RecipientID); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, apperrors.New(apperrors.KindInvalidReference, "recipient does not exist")
		}
		return nil, apperrors.Internal(err)
	}
	if _, err := s.store.Skills.FindByID(ctx, req.OfferedSkillID); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, apperrors.New(apperrors.KindInvalidReference, "offered skill does not exist")
		}
		return nil, apperrors.Internal(err)
	}
	if _, err := s.store.Skills.FindByID(ctx, req.RequestedSkillID); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, apperrors.New(apperrors.KindInvalidReference, "requested skill does not exist")
		}
		return nil, apperrors.Internal(err)
	}

	request := models.SwapRequest{
		RequesterID:      requester.ID,
		RecipientID:      req.RecipientID,
		OfferedSkillID:   req.OfferedSkillID,
		RequestedSkillID: req.RequestedSkillID,
		Message:          req.Message,
		Status:           models.SwapPending,
	}
	if err := s.store.Swaps.Create(ctx, &request); err != nil {
		return nil, apperrors.Internal(err)
	}
	return &request, nil
}

// Update applies a lifecycle action on behalf of the authenticated user and
// returns the refreshed request.
func (s *SwapService) Update(ctx context.Context, actor *models.User, requestID string, req dto.UpdateSwapRequest) (*models.SwapRequest, error) {
	request, err := s.store.Swaps.FindByID(ctx, requestID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, apperrors.New(apperrors.KindNotFound, "swap request not found")
		}
		return nil, apperrors.Internal(err)
	}

	if !request.Participant(actor.ID) {
		return nil, apperrors.New(apperrors.KindForbidden, "not a participant of this swap request")
	}

	switch req.Action {
	case dto.SwapActionAccept:
		err = s.transition(ctx, request, actor, actorRecipient, models.SwapPending, models.SwapAccepted, req.ResponseMessage)
	case dto.SwapActionReject:
		err = s.transition(ctx, request, actor, actorRecipient, models.SwapPending, models.SwapRejected, req.ResponseMessage)
	case dto.SwapActionCancel:
		err = s.cancel(ctx, request, req.ResponseMessage)
	case dto.SwapActionComplete:
		err = s.complete(ctx, request)
	default:
		err = apperrors.New(apperrors.KindMissingField, "unknown action")
	}
	if err != nil {
		return nil, err
	}

	updated, err := s.store.Swaps.FindByID(ctx, requestID)
	if err != nil {
		return nil, apperrors.Internal(err)
	}
	return updated, nil
}

type actorRule int

const (
	actorRecipient actorRule = iota
	actorEither
)

// transition runs a single conditional status write after checking the actor
// rule. A conditional write that does not apply means the stored status no
// longer matches, wrong-status and lost-race attempts both surface as
// InvalidTransition.
func (s *SwapService) transition(ctx context.Context, request *models.SwapRequest, actor *models.User, rule actorRule, from, to models.SwapStatus, responseMessage string) error {
	if rule == actorRecipient && actor.ID != request.RecipientID {
		return apperrors.New(apperrors.KindInvalidTransition, "only the recipient may respond to a pending request")
	}

	applied, err := s.store.Swaps.UpdateStatus(ctx, request.ID, from, to, responseMessage)
	if err != nil {
		return apperrors.Internal(err)
	}
	if !applied {
		return invalidTransition(request.Status, to)
	}
	return nil
}

// cancel is allowed from pending or accepted, by either participant.
func (s *SwapService) cancel(ctx context.Context, request *models.SwapRequest, responseMessage string) error {
	current := request.Status
	if current != models.SwapPending && current != models.SwapAccepted {
		return invalidTransition(current, models.SwapCancelled)
	}

	applied, err := s.store.Swaps.UpdateStatus(ctx, request.ID, current, models.SwapCancelled, responseMessage)
	if err != nil {
		return apperrors.Internal(err)
	}
	if !applied {
		return invalidTransition(current, models.SwapCancelled)
	}
	return nil
}

// complete flips accepted -> completed and records the transaction
// atomically. Concurrent completions race on the conditional write; exactly
// one creates the transaction.
func (s *SwapService) complete(ctx context.Context, request *models.SwapRequest) error {
	txn := models.Transaction{
		SwapRequestID:    request.ID,
		RequesterID:      request.RequesterID,
		RecipientID:      request.RecipientID,
		OfferedSkillID:   request.OfferedSkillID,
		RequestedSkillID: request.RequestedSkillID,
		CompletedAt:      time.Now(),
	}

	applied, err := s.store.Swaps.Complete(ctx, request.ID, &txn)
	if err != nil {
		return apperrors.Internal(err)
	}
	if !applied {
		return invalidTransition(request.Status, models.SwapCompleted)
	}
	return nil
}

// ListForUser returns the user's swap requests, filtered by side.
func (s *SwapService) ListForUser(ctx context.Context, userID string, filter repositories.SwapListFilter) ([]models.SwapRequest, error) {
	requests, err := s.store.Swaps.ListByUser(ctx, userID, filter)
	if err != nil {
		return nil, apperrors.Internal(err)
	}
	return requests, nil
}

// ListAll returns every swap request (admin view).
func (s *SwapService) ListAll(ctx context.Context) ([]models.SwapRequest, error) {
	requests, err := s.store.Swaps.ListAll(ctx)
	if err != nil {
		return nil, apperrors.Internal(err)
	}
	return requests, nil
}

func invalidTransition(from, to models.SwapStatus) error {
	return apperrors.New(apperrors.KindInvalidTransition,
		"cannot move swap request from "+string(from)+" to "+string(to))
}
