package domain

import "context"

// InteractionStatus is the per-(user, event) toggle state. Each relation is a
// presence/absence fact backed by an existence-checked remote record; the
// initial "unknown" state is rendered as absent until a probe resolves.
type InteractionStatus struct {
	Favorited   bool `json:"favorited"`
	Attending   bool `json:"attending"`
	ReminderSet bool `json:"reminder_set"`
}

// InteractionService maintains the favorite/attendance/reminder relations for
// a (user, event) pair. All operations are no-ops (not errors) when the user
// or event ID is empty.
type InteractionService interface {
	// Status probes all three relations. Probe failures are logged and
	// reported as absent; Status never fails.
	Status(ctx context.Context, userID, eventID string) InteractionStatus

	// ToggleFavorite flips the favorite relation: present deletes the record,
	// absent creates one. Returns the new state.
	ToggleFavorite(ctx context.Context, userID, eventID string) (favorited bool, err error)

	// ToggleReminder flips the reminder relation, deriving the reminder date
	// from the event date at write time.
	ToggleReminder(ctx context.Context, userID, eventID string) (set bool, err error)

	// RecordAttendance appends an attendance record for a confirmed purchase
	// and best-effort appends a purchase notification. The two writes are not
	// atomic; a failed notification write is logged, not returned.
	RecordAttendance(ctx context.Context, userID, eventID string) (*AttendanceRecord, error)

	// ListFavoriteEvents resolves the user's favorite records against the
	// catalog, newest first. Records whose event no longer resolves are skipped.
	ListFavoriteEvents(ctx context.Context, userID string) ([]*Event, error)

	// ListAttendedEvents resolves the user's attendance records against the
	// catalog, newest first.
	ListAttendedEvents(ctx context.Context, userID string) ([]*Event, error)

	// ListReminders returns the user's stored reminder records.
	ListReminders(ctx context.Context, userID string) ([]*ReminderRecord, error)
}
