package domain

import (
	"context"
	"time"
)

// AttendanceRecord marks a confirmed ticket purchase for an event. Records
// are append-only: they are never updated or deleted by any flow, and no
// uniqueness is enforced per (user, event).
type AttendanceRecord struct {
	ID          string    `json:"id"`
	UserID      string    `json:"user_id"`
	EventID     string    `json:"event_id"`
	Name        string    `json:"name"`
	Date        time.Time `json:"date"`
	Venue       string    `json:"venue,omitempty"`
	ImageURL    string    `json:"image_url,omitempty"`
	PurchasedAt time.Time `json:"purchased_at"`
}

// NewAttendanceRecord builds an AttendanceRecord snapshot from a catalog event.
// ID is set by the repository on create.
func NewAttendanceRecord(userID string, event *Event, purchasedAt time.Time) *AttendanceRecord {
	return &AttendanceRecord{
		UserID:      userID,
		EventID:     event.ID,
		Name:        event.Name,
		Date:        event.LocalDate,
		Venue:       event.PrimaryVenueName(),
		ImageURL:    event.PrimaryImageURL(),
		PurchasedAt: purchasedAt,
	}
}

// AttendanceRepository defines storage for attendance records.
type AttendanceRepository interface {
	Create(ctx context.Context, rec *AttendanceRecord) error
	// ExistsByEvent reports whether any record with the given event ID exists
	// for the user ("attending").
	ExistsByEvent(ctx context.Context, userID, eventID string) (bool, error)
	// ListByUserID returns records ordered by purchased_at descending.
	ListByUserID(ctx context.Context, userID string) ([]*AttendanceRecord, error)
	CountByUserID(ctx context.Context, userID string) (int, error)
}
