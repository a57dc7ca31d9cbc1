package domain

import (
	"context"
	"time"
)

// NotificationRecord is a per-user notification. Records are appended by the
// system (purchases, reminder dispatch) and individually deletable.
// swagger:model NotificationRecord
type NotificationRecord struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	Title     string    `json:"title"`
	Body      string    `json:"body"`
	Read      bool      `json:"read"`
	CreatedAt time.Time `json:"created_at"`
}

// NotificationSettings is the per-user notification preference document.
type NotificationSettings struct {
	UserID    string    `json:"user_id"`
	Enabled   bool      `json:"enabled"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NotificationRepository defines storage for notification records.
type NotificationRepository interface {
	Create(ctx context.Context, rec *NotificationRecord) error
	// ListByUserID returns a page of records ordered by created_at descending,
	// plus the total count for the user.
	ListByUserID(ctx context.Context, userID string, params PaginationParams) ([]*NotificationRecord, int, error)
	// Delete removes the record only if it belongs to the user.
	Delete(ctx context.Context, userID, notificationID string) error
	MarkRead(ctx context.Context, userID, notificationID string) error
}

// NotificationSettingsRepository stores the single settings row per user.
type NotificationSettingsRepository interface {
	// Get returns ErrNotFound when the user has never saved settings.
	Get(ctx context.Context, userID string) (*NotificationSettings, error)
	Upsert(ctx context.Context, settings *NotificationSettings) error
}

// NotificationService defines notification listing and settings management.
type NotificationService interface {
	List(ctx context.Context, userID string, params PaginationParams) ([]*NotificationRecord, int, error)
	Delete(ctx context.Context, userID, notificationID string) error
	MarkRead(ctx context.Context, userID, notificationID string) error
	// GetSettings returns the saved settings, or the disabled default when
	// the user has never saved any.
	GetSettings(ctx context.Context, userID string) (*NotificationSettings, error)
	UpdateSettings(ctx context.Context, userID string, enabled bool) (*NotificationSettings, error)
}
