package domain

import (
	"context"
	"time"
)

// FavoriteRecord is the stored snapshot of a favorited event. Existence of a
// row implies "favorited"; there is at most one row per (user, event).
type FavoriteRecord struct {
	UserID   string    `json:"user_id"`
	EventID  string    `json:"event_id"`
	Name     string    `json:"name"`
	Date     time.Time `json:"date"`
	Venue    string    `json:"venue,omitempty"`
	ImageURL string    `json:"image_url,omitempty"`
	AddedAt  time.Time `json:"added_at"`
}

// NewFavoriteRecord builds a FavoriteRecord snapshot from a catalog event.
func NewFavoriteRecord(userID string, event *Event, addedAt time.Time) *FavoriteRecord {
	return &FavoriteRecord{
		UserID:   userID,
		EventID:  event.ID,
		Name:     event.Name,
		Date:     event.LocalDate,
		Venue:    event.PrimaryVenueName(),
		ImageURL: event.PrimaryImageURL(),
		AddedAt:  addedAt,
	}
}

// FavoriteRepository defines storage for the favorite toggle relation.
type FavoriteRepository interface {
	Create(ctx context.Context, rec *FavoriteRecord) error
	Delete(ctx context.Context, userID, eventID string) error
	// Exists reports whether the (user, event) relation currently holds.
	Exists(ctx context.Context, userID, eventID string) (bool, error)
	// ListByUserID returns records ordered by added_at descending.
	ListByUserID(ctx context.Context, userID string) ([]*FavoriteRecord, error)
	CountByUserID(ctx context.Context, userID string) (int, error)
}
