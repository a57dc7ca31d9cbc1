package postgres

import (
	"context"
	"database/sql"
	"time"

	"eventscout/internal/domain"
)

type reminderRepository struct {
	DB *sql.DB
}

func NewReminderRepository(db *sql.DB) domain.ReminderRepository {
	return &reminderRepository{DB: db}
}

func (r *reminderRepository) Create(ctx context.Context, rec *domain.ReminderRecord) error {
	query := `
		INSERT INTO reminders (user_id, event_id, event_name, event_date, reminder_date, image_url, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (user_id, event_id) DO NOTHING
	`
	_, err := r.DB.ExecContext(ctx, query, rec.UserID, rec.EventID, rec.EventName, rec.EventDate, rec.ReminderDate, rec.ImageURL, rec.CreatedAt)
	return err
}

func (r *reminderRepository) Delete(ctx context.Context, userID, eventID string) error {
	query := `
		DELETE FROM reminders
		WHERE user_id = $1 AND event_id = $2
	`
	_, err := r.DB.ExecContext(ctx, query, userID, eventID)
	return err
}

func (r *reminderRepository) Exists(ctx context.Context, userID, eventID string) (bool, error) {
	query := `
		SELECT EXISTS (
			SELECT 1 FROM reminders WHERE user_id = $1 AND event_id = $2
		)
	`
	var exists bool
	if err := r.DB.QueryRowContext(ctx, query, userID, eventID).Scan(&exists); err != nil {
		return false, err
	}
	return exists, nil
}

func (r *reminderRepository) ListByUserID(ctx context.Context, userID string) ([]*domain.ReminderRecord, error) {
	query := `
		SELECT user_id, event_id, event_name, event_date, reminder_date, image_url, created_at, sent_at
		FROM reminders
		WHERE user_id = $1
		ORDER BY created_at DESC
	`
	rows, err := r.DB.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanReminders(rows)
}

func (r *reminderRepository) ListDueUnsent(ctx context.Context, now time.Time) ([]*domain.ReminderRecord, error) {
	query := `
		SELECT user_id, event_id, event_name, event_date, reminder_date, image_url, created_at, sent_at
		FROM reminders
		WHERE reminder_date <= $1 AND sent_at IS NULL
		ORDER BY reminder_date ASC
	`
	rows, err := r.DB.QueryContext(ctx, query, now)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanReminders(rows)
}

func (r *reminderRepository) MarkSent(ctx context.Context, userID, eventID string, sentAt time.Time) error {
	query := `
		UPDATE reminders
		SET sent_at = $1
		WHERE user_id = $2 AND event_id = $3
	`
	_, err := r.DB.ExecContext(ctx, query, sentAt, userID, eventID)
	return err
}

func scanReminders(rows *sql.Rows) ([]*domain.ReminderRecord, error) {
	var recs []*domain.ReminderRecord
	for rows.Next() {
		rec := &domain.ReminderRecord{}
		var sentAt sql.NullTime
		if err := rows.Scan(&rec.UserID, &rec.EventID, &rec.EventName, &rec.EventDate, &rec.ReminderDate, &rec.ImageURL, &rec.CreatedAt, &sentAt); err != nil {
			return nil, err
		}
		if sentAt.Valid {
			t := sentAt.Time
			rec.SentAt = &t
		}
		recs = append(recs, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if recs == nil {
		recs = []*domain.ReminderRecord{}
	}
	return recs, nil
}
