package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"eventscout/internal/domain"
)

type reviewService struct {
	reviewRepo domain.ReviewRepository
}

// NewReviewService creates a ReviewService backed by the given repository.
func NewReviewService(reviewRepo domain.ReviewRepository) domain.ReviewService {
	return &reviewService{reviewRepo: reviewRepo}
}

func (s *reviewService) Submit(ctx context.Context, eventID, userID, userName string, rating int, comment string) (*domain.Review, error) {
	if eventID == "" || userID == "" {
		return nil, fmt.Errorf("%w: event and user are required", domain.ErrInvalidInput)
	}
	if rating < domain.MinRating || rating > domain.MaxRating {
		return nil, fmt.Errorf("%w: rating must be between %d and %d", domain.ErrInvalidInput, domain.MinRating, domain.MaxRating)
	}
	comment = strings.TrimSpace(comment)
	if len(comment) < domain.MinCommentLength {
		return nil, fmt.Errorf("%w: comment must be at least %d characters", domain.ErrInvalidInput, domain.MinCommentLength)
	}

	review := &domain.Review{
		EventID:   eventID,
		UserID:    userID,
		UserName:  userName,
		Rating:    rating,
		Comment:   comment,
		CreatedAt: time.Now(),
	}
	if err := s.reviewRepo.Create(ctx, review); err != nil {
		return nil, fmt.Errorf("failed to store review: %w", err)
	}
	return review, nil
}

func (s *reviewService) ListByEvent(ctx context.Context, eventID string) (*domain.EventReviews, error) {
	reviews, err := s.reviewRepo.ListByEventID(ctx, eventID)
	if err != nil {
		return nil, err
	}
	return &domain.EventReviews{
		Reviews:       reviews,
		AverageRating: averageRating(reviews),
	}, nil
}

func averageRating(reviews []*domain.Review) float64 {
	if len(reviews) == 0 {
		return 0
	}
	sum := 0
	for _, r := range reviews {
		sum += r.Rating
	}
	return float64(sum) / float64(len(reviews))
}
