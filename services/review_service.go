package services

import (
	"context"
	"errors"
	"math"

	"github.com/skillswap-platform/apperrors"
	"github.com/skillswap-platform/dto"
	"github.com/skillswap-platform/models"
	"github.com/skillswap-platform/repositories"
)

// ReviewService creates reviews for completed swaps and keeps the subject's
// rating aggregate current.
type ReviewService struct {
	reviews repositories.ReviewRepository
	swaps   repositories.SwapRequestRepository
	users   repositories.UserRepository
}

// NewReviewService creates a new review service instance
func NewReviewService(reviews repositories.ReviewRepository, swaps repositories.SwapRequestRepository, users repositories.UserRepository) *ReviewService {
	return &ReviewService{reviews: reviews, swaps: swaps, users: users}
}

// Create writes a review about the other participant of a completed swap.
// One review per author per swap request.
func (s *ReviewService) Create(ctx context.Context, author *models.User, req dto.CreateReviewRequest) (*models.Review, error) {
	request, err := s.swaps.FindByID(ctx, req.SwapRequestID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, apperrors.New(apperrors.KindNotFound, "swap request not found")
		}
		return nil, apperrors.Internal(err)
	}

	if !request.Participant(author.ID) {
		return nil, apperrors.New(apperrors.KindForbidden, "only participants may review a swap")
	}
	if request.Status != models.SwapCompleted {
		return nil, apperrors.New(apperrors.KindInvalidReference, "swap request is not completed")
	}

	exists, err := s.reviews.ExistsForAuthor(ctx, author.ID, request.ID)
	if err != nil {
		return nil, apperrors.Internal(err)
	}
	if exists {
		return nil, apperrors.New(apperrors.KindConflict, "swap request already reviewed")
	}

	subjectID := request.RequesterID
	if author.ID == request.RequesterID {
		subjectID = request.RecipientID
	}

	review := models.Review{
		AuthorID:      author.ID,
		SubjectID:     subjectID,
		SwapRequestID: request.ID,
		Rating:        req.Rating,
		Title:         req.Title,
		Comment:       req.Comment,
	}
	if err := s.reviews.Create(ctx, &review); err != nil {
		return nil, apperrors.Internal(err)
	}

	if err := s.refreshRating(ctx, subjectID); err != nil {
		return nil, err
	}
	return &review, nil
}

// ListForUser returns reviews about (asSubject) or by a user
func (s *ReviewService) ListForUser(ctx context.Context, userID string, asSubject bool) ([]models.Review, error) {
	var reviews []models.Review
	var err error
	if asSubject {
		reviews, err = s.reviews.ListBySubject(ctx, userID)
	} else {
		reviews, err = s.reviews.ListByAuthor(ctx, userID)
	}
	if err != nil {
		return nil, apperrors.Internal(err)
	}
	return reviews, nil
}

// refreshRating recomputes the subject's average rating from all reviews.
func (s *ReviewService) refreshRating(ctx context.Context, subjectID string) error {
	reviews, err := s.reviews.ListBySubject(ctx, subjectID)
	if err != nil {
		return apperrors.Internal(err)
	}
	if len(reviews) == 0 {
		return nil
	}

	total := 0
	for _, review := range reviews {
		total += review.Rating
	}
	avg := math.Round(float64(total)/float64(len(reviews))*10) / 10

	subject, err := s.users.FindByID(ctx, subjectID)
	if err != nil {
		return apperrors.Internal(err)
	}
	subject.RatingAvg = avg
	subject.RatingCount = len(reviews)
	if err := s.users.Update(ctx, subject); err != nil {
		return apperrors.Internal(err)
	}
	return nil
}
