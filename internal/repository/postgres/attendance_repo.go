package postgres

import (
	"context"
	"database/sql"

	"eventscout/internal/domain"
)

type attendanceRepository struct {
	DB *sql.DB
}

func NewAttendanceRepository(db *sql.DB) domain.AttendanceRepository {
	return &attendanceRepository{DB: db}
}

func (r *attendanceRepository) Create(ctx context.Context, rec *domain.AttendanceRecord) error {
	query := `
		INSERT INTO attendances (user_id, event_id, name, date, venue, image_url, purchased_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id
	`
	return r.DB.QueryRowContext(ctx, query, rec.UserID, rec.EventID, rec.Name, rec.Date, rec.Venue, rec.ImageURL, rec.PurchasedAt).
		Scan(&rec.ID)
}

func (r *attendanceRepository) ExistsByEvent(ctx context.Context, userID, eventID string) (bool, error) {
	query := `
		SELECT EXISTS (
			SELECT 1 FROM attendances WHERE user_id = $1 AND event_id = $2
		)
	`
	var exists bool
	if err := r.DB.QueryRowContext(ctx, query, userID, eventID).Scan(&exists); err != nil {
		return false, err
	}
	return exists, nil
}

func (r *attendanceRepository) ListByUserID(ctx context.Context, userID string) ([]*domain.AttendanceRecord, error) {
	query := `
		SELECT id, user_id, event_id, name, date, venue, image_url, purchased_at
		FROM attendances
		WHERE user_id = $1
		ORDER BY purchased_at DESC
	`
	rows, err := r.DB.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var recs []*domain.AttendanceRecord
	for rows.Next() {
		rec := &domain.AttendanceRecord{}
		if err := rows.Scan(&rec.ID, &rec.UserID, &rec.EventID, &rec.Name, &rec.Date, &rec.Venue, &rec.ImageURL, &rec.PurchasedAt); err != nil {
			return nil, err
		}
		recs = append(recs, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if recs == nil {
		recs = []*domain.AttendanceRecord{}
	}
	return recs, nil
}

func (r *attendanceRepository) CountByUserID(ctx context.Context, userID string) (int, error) {
	query := `SELECT COUNT(*) FROM attendances WHERE user_id = $1`
	var count int
	if err := r.DB.QueryRowContext(ctx, query, userID).Scan(&count); err != nil {
		return 0, err
	}
	return count, nil
}
