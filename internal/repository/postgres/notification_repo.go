package postgres

import (
	"context"
	"database/sql"
	"errors"

	"eventscout/internal/domain"
)

type notificationRepository struct {
	DB *sql.DB
}

func NewNotificationRepository(db *sql.DB) domain.NotificationRepository {
	return &notificationRepository{DB: db}
}

func (r *notificationRepository) Create(ctx context.Context, n *domain.NotificationRecord) error {
	query := `
		INSERT INTO notifications (user_id, title, body, read, created_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`
	return r.DB.QueryRowContext(ctx, query, n.UserID, n.Title, n.Body, n.Read, n.CreatedAt).
		Scan(&n.ID)
}

func (r *notificationRepository) ListByUserID(ctx context.Context, userID string, params domain.PaginationParams) ([]*domain.NotificationRecord, int, error) {
	countQuery := `SELECT COUNT(*) FROM notifications WHERE user_id = $1`
	var total int
	if err := r.DB.QueryRowContext(ctx, countQuery, userID).Scan(&total); err != nil {
		return nil, 0, err
	}

	query := `
		SELECT id, user_id, title, body, read, created_at
		FROM notifications
		WHERE user_id = $1
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3
	`
	rows, err := r.DB.QueryContext(ctx, query, userID, params.PageSize, params.Offset())
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var recs []*domain.NotificationRecord
	for rows.Next() {
		rec := &domain.NotificationRecord{}
		if err := rows.Scan(&rec.ID, &rec.UserID, &rec.Title, &rec.Body, &rec.Read, &rec.CreatedAt); err != nil {
			return nil, 0, err
		}
		recs = append(recs, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}
	if recs == nil {
		recs = []*domain.NotificationRecord{}
	}
	return recs, total, nil
}

func (r *notificationRepository) Delete(ctx context.Context, userID, notificationID string) error {
	// user_id in the predicate keeps one user from deleting another's rows.
	query := `
		DELETE FROM notifications
		WHERE id = $1 AND user_id = $2
	`
	result, err := r.DB.ExecContext(ctx, query, notificationID, userID)
	if err != nil {
		return err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *notificationRepository) MarkRead(ctx context.Context, userID, notificationID string) error {
	query := `
		UPDATE notifications
		SET read = TRUE
		WHERE id = $1 AND user_id = $2
	`
	result, err := r.DB.ExecContext(ctx, query, notificationID, userID)
	if err != nil {
		return err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

type notificationSettingsRepository struct {
	DB *sql.DB
}

func NewNotificationSettingsRepository(db *sql.DB) domain.NotificationSettingsRepository {
	return &notificationSettingsRepository{DB: db}
}

func (r *notificationSettingsRepository) Get(ctx context.Context, userID string) (*domain.NotificationSettings, error) {
	query := `
		SELECT user_id, enabled, updated_at
		FROM notification_settings
		WHERE user_id = $1
	`
	s := &domain.NotificationSettings{}
	err := r.DB.QueryRowContext(ctx, query, userID).Scan(&s.UserID, &s.Enabled, &s.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return s, nil
}

func (r *notificationSettingsRepository) Upsert(ctx context.Context, s *domain.NotificationSettings) error {
	query := `
		INSERT INTO notification_settings (user_id, enabled, updated_at)
		VALUES ($1, $2, $3)
		ON CONFLICT (user_id) DO UPDATE SET enabled = EXCLUDED.enabled, updated_at = EXCLUDED.updated_at
	`
	_, err := r.DB.ExecContext(ctx, query, s.UserID, s.Enabled, s.UpdatedAt)
	return err
}
