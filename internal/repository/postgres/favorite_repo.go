package postgres

import (
	"context"
	"database/sql"

	"eventscout/internal/domain"
)

type favoriteRepository struct {
	DB *sql.DB
}

func NewFavoriteRepository(db *sql.DB) domain.FavoriteRepository {
	return &favoriteRepository{DB: db}
}

func (r *favoriteRepository) Create(ctx context.Context, rec *domain.FavoriteRecord) error {
	// ON CONFLICT keeps the relation a strict presence/absence fact:
	// at most one row per (user, event), even under racing toggles.
	query := `
		INSERT INTO favorites (user_id, event_id, name, date, venue, image_url, added_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (user_id, event_id) DO NOTHING
	`
	_, err := r.DB.ExecContext(ctx, query, rec.UserID, rec.EventID, rec.Name, rec.Date, rec.Venue, rec.ImageURL, rec.AddedAt)
	return err
}

func (r *favoriteRepository) Delete(ctx context.Context, userID, eventID string) error {
	query := `
		DELETE FROM favorites
		WHERE user_id = $1 AND event_id = $2
	`
	_, err := r.DB.ExecContext(ctx, query, userID, eventID)
	return err
}

func (r *favoriteRepository) Exists(ctx context.Context, userID, eventID string) (bool, error) {
	query := `
		SELECT EXISTS (
			SELECT 1 FROM favorites WHERE user_id = $1 AND event_id = $2
		)
	`
	var exists bool
	if err := r.DB.QueryRowContext(ctx, query, userID, eventID).Scan(&exists); err != nil {
		return false, err
	}
	return exists, nil
}

func (r *favoriteRepository) ListByUserID(ctx context.Context, userID string) ([]*domain.FavoriteRecord, error) {
	query := `
		SELECT user_id, event_id, name, date, venue, image_url, added_at
		FROM favorites
		WHERE user_id = $1
		ORDER BY added_at DESC
	`
	rows, err := r.DB.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var recs []*domain.FavoriteRecord
	for rows.Next() {
		rec := &domain.FavoriteRecord{}
		if err := rows.Scan(&rec.UserID, &rec.EventID, &rec.Name, &rec.Date, &rec.Venue, &rec.ImageURL, &rec.AddedAt); err != nil {
			return nil, err
		}
		recs = append(recs, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if recs == nil {
		recs = []*domain.FavoriteRecord{}
	}
	return recs, nil
}

func (r *favoriteRepository) CountByUserID(ctx context.Context, userID string) (int, error) {
	query := `SELECT COUNT(*) FROM favorites WHERE user_id = $1`
	var count int
	if err := r.DB.QueryRowContext(ctx, query, userID).Scan(&count); err != nil {
		return 0, err
	}
	return count, nil
}
