package domain

import (
	"context"
	"time"
)

// ReminderLeadTime is how long before the event date a reminder fires.
const ReminderLeadTime = 24 * time.Hour

// ReminderRecord is the stored reminder for a (user, event) pair. Toggle
// semantics match FavoriteRecord: at most one row per pair, existence implies
// "reminder set". ReminderDate is derived once at write time and never
// revalidated against the current date.
type ReminderRecord struct {
	UserID       string     `json:"user_id"`
	EventID      string     `json:"event_id"`
	EventName    string     `json:"event_name"`
	EventDate    time.Time  `json:"event_date"`
	ReminderDate time.Time  `json:"reminder_date"`
	ImageURL     string     `json:"image_url,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
	SentAt       *time.Time `json:"sent_at,omitempty"`
}

// NewReminderRecord builds a ReminderRecord from a catalog event, deriving
// ReminderDate as one day before the event date.
func NewReminderRecord(userID string, event *Event, createdAt time.Time) *ReminderRecord {
	return &ReminderRecord{
		UserID:       userID,
		EventID:      event.ID,
		EventName:    event.Name,
		EventDate:    event.LocalDate,
		ReminderDate: event.LocalDate.Add(-ReminderLeadTime),
		ImageURL:     event.PrimaryImageURL(),
		CreatedAt:    createdAt,
	}
}

// ReminderRepository defines storage for the reminder toggle relation.
type ReminderRepository interface {
	Create(ctx context.Context, rec *ReminderRecord) error
	Delete(ctx context.Context, userID, eventID string) error
	Exists(ctx context.Context, userID, eventID string) (bool, error)
	ListByUserID(ctx context.Context, userID string) ([]*ReminderRecord, error)
	// ListDueUnsent returns reminders whose reminder_date has passed and that
	// have not been dispatched yet.
	ListDueUnsent(ctx context.Context, now time.Time) ([]*ReminderRecord, error)
	MarkSent(ctx context.Context, userID, eventID string, sentAt time.Time) error
}
