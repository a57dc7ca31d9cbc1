package domain

import (
	"context"
	"time"
)

// Review constraints checked locally before any write.
const (
	MinRating        = 1
	MaxRating        = 5
	MinCommentLength = 3
)

// Review is a user review for an event. Reviews are append-only: no
// existence check, no update, no dedup per user.
// swagger:model Review
type Review struct {
	ID        string    `json:"id"`
	EventID   string    `json:"event_id"`
	UserID    string    `json:"user_id"`
	UserName  string    `json:"user_name"`
	Rating    int       `json:"rating"`
	Comment   string    `json:"comment"`
	CreatedAt time.Time `json:"created_at"`
}

// ReviewRepository defines storage for event reviews.
type ReviewRepository interface {
	Create(ctx context.Context, review *Review) error
	// ListByEventID returns reviews ordered by created_at descending.
	ListByEventID(ctx context.Context, eventID string) ([]*Review, error)
}

// EventReviews bundles the live review set with its derived average rating.
type EventReviews struct {
	Reviews       []*Review `json:"reviews"`
	AverageRating float64   `json:"average_rating"`
}

// ReviewService defines review submission and listing.
type ReviewService interface {
	// Submit validates rating and comment locally, then appends the review.
	// Validation failure returns ErrInvalidInput and never reaches the store.
	Submit(ctx context.Context, eventID, userID, userName string, rating int, comment string) (*Review, error)
	// ListByEvent returns the reviews for an event with the arithmetic-mean
	// average rating (0 when there are no reviews).
	ListByEvent(ctx context.Context, eventID string) (*EventReviews, error)
}
