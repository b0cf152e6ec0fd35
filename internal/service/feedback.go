package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"equiprent-backend/internal/domain"
	"equiprent-backend/internal/repository"
)

// ErrInvalidRating is returned when a review rating falls outside [1,5].
// The star widget is expected to supply a value in range; the service still
// re-checks before anything is persisted.
var ErrInvalidRating = errors.New("rating must be between 1 and 5")

type feedbackService struct {
	reviewRepo repository.ReviewRepository
}

func NewFeedbackService(reviewRepo repository.ReviewRepository) FeedbackService {
	return &feedbackService{
		reviewRepo: reviewRepo,
	}
}

// SubmitReview stamps the review with its creation date and prepends it to
// the persisted list.
func (s *feedbackService) SubmitReview(ctx context.Context, name string, rating int32, comment string) (*domain.Review, error) {
	if rating < 1 || rating > 5 {
		return nil, ErrInvalidRating
	}

	review := &domain.Review{
		Name:    strings.TrimSpace(name),
		Rating:  rating,
		Comment: strings.TrimSpace(comment),
		Date:    time.Now().Format("02/01/2006"),
	}

	if err := s.reviewRepo.Prepend(ctx, review); err != nil {
		return nil, err
	}
	return review, nil
}

func (s *feedbackService) ListReviews(ctx context.Context) ([]domain.Review, error) {
	return s.reviewRepo.List(ctx)
}
