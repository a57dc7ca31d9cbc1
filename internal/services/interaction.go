package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"eventscout/internal/domain"
)

type interactionService struct {
	favoriteRepo     domain.FavoriteRepository
	attendanceRepo   domain.AttendanceRepository
	reminderRepo     domain.ReminderRepository
	notificationRepo domain.NotificationRepository
	catalog          domain.CatalogClient
	logger           *slog.Logger
}

// NewInteractionService creates an InteractionService over the toggle
// repositories and the catalog client used to snapshot event details.
func NewInteractionService(
	favoriteRepo domain.FavoriteRepository,
	attendanceRepo domain.AttendanceRepository,
	reminderRepo domain.ReminderRepository,
	notificationRepo domain.NotificationRepository,
	catalog domain.CatalogClient,
	logger *slog.Logger,
) domain.InteractionService {
	return &interactionService{
		favoriteRepo:     favoriteRepo,
		attendanceRepo:   attendanceRepo,
		reminderRepo:     reminderRepo,
		notificationRepo: notificationRepo,
		catalog:          catalog,
		logger:           logger,
	}
}

func (s *interactionService) Status(ctx context.Context, userID, eventID string) domain.InteractionStatus {
	var status domain.InteractionStatus
	if userID == "" || eventID == "" {
		return status
	}

	// Each probe failure degrades to "absent" rather than failing the whole
	// status lookup.
	favorited, err := s.favoriteRepo.Exists(ctx, userID, eventID)
	if err != nil {
		s.logger.Error("favorite probe failed", "user_id", userID, "event_id", eventID, "error", err)
	} else {
		status.Favorited = favorited
	}

	attending, err := s.attendanceRepo.ExistsByEvent(ctx, userID, eventID)
	if err != nil {
		s.logger.Error("attendance probe failed", "user_id", userID, "event_id", eventID, "error", err)
	} else {
		status.Attending = attending
	}

	reminderSet, err := s.reminderRepo.Exists(ctx, userID, eventID)
	if err != nil {
		s.logger.Error("reminder probe failed", "user_id", userID, "event_id", eventID, "error", err)
	} else {
		status.ReminderSet = reminderSet
	}

	return status
}

func (s *interactionService) ToggleFavorite(ctx context.Context, userID, eventID string) (bool, error) {
	if userID == "" || eventID == "" {
		return false, nil
	}

	exists, err := s.favoriteRepo.Exists(ctx, userID, eventID)
	if err != nil {
		return false, fmt.Errorf("failed to check favorite: %w", err)
	}
	if exists {
		if err := s.favoriteRepo.Delete(ctx, userID, eventID); err != nil {
			return true, fmt.Errorf("failed to remove favorite: %w", err)
		}
		return false, nil
	}

	event, err := s.catalog.GetEvent(ctx, eventID)
	if err != nil {
		return false, err
	}
	rec := domain.NewFavoriteRecord(userID, event, time.Now())
	if err := s.favoriteRepo.Create(ctx, rec); err != nil {
		return false, fmt.Errorf("failed to store favorite: %w", err)
	}
	return true, nil
}

func (s *interactionService) ToggleReminder(ctx context.Context, userID, eventID string) (bool, error) {
	if userID == "" || eventID == "" {
		return false, nil
	}

	exists, err := s.reminderRepo.Exists(ctx, userID, eventID)
	if err != nil {
		return false, fmt.Errorf("failed to check reminder: %w", err)
	}
	if exists {
		if err := s.reminderRepo.Delete(ctx, userID, eventID); err != nil {
			return true, fmt.Errorf("failed to remove reminder: %w", err)
		}
		return false, nil
	}

	event, err := s.catalog.GetEvent(ctx, eventID)
	if err != nil {
		return false, err
	}
	rec := domain.NewReminderRecord(userID, event, time.Now())
	if err := s.reminderRepo.Create(ctx, rec); err != nil {
		return false, fmt.Errorf("failed to store reminder: %w", err)
	}
	return true, nil
}

func (s *interactionService) RecordAttendance(ctx context.Context, userID, eventID string) (*domain.AttendanceRecord, error) {
	if userID == "" || eventID == "" {
		return nil, nil
	}

	event, err := s.catalog.GetEvent(ctx, eventID)
	if err != nil {
		return nil, err
	}
	rec := domain.NewAttendanceRecord(userID, event, time.Now())
	if err := s.attendanceRepo.Create(ctx, rec); err != nil {
		return nil, fmt.Errorf("failed to store attendance: %w", err)
	}

	// Notification write is best-effort: the purchase already succeeded.
	notification := &domain.NotificationRecord{
		UserID:    userID,
		Title:     "Ticket Purchased",
		Body:      fmt.Sprintf("You are going to %s!", event.Name),
		CreatedAt: time.Now(),
	}
	if err := s.notificationRepo.Create(ctx, notification); err != nil {
		s.logger.Error("purchase notification write failed", "user_id", userID, "event_id", eventID, "error", err)
	}

	return rec, nil
}

func (s *interactionService) ListFavoriteEvents(ctx context.Context, userID string) ([]*domain.Event, error) {
	recs, err := s.favoriteRepo.ListByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	return s.resolveEvents(ctx, eventIDsFromFavorites(recs))
}

func (s *interactionService) ListAttendedEvents(ctx context.Context, userID string) ([]*domain.Event, error) {
	recs, err := s.attendanceRepo.ListByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	ids := make([]string, len(recs))
	for i, rec := range recs {
		ids[i] = rec.EventID
	}
	return s.resolveEvents(ctx, ids)
}

func (s *interactionService) ListReminders(ctx context.Context, userID string) ([]*domain.ReminderRecord, error) {
	return s.reminderRepo.ListByUserID(ctx, userID)
}

// resolveEvents fetches each ID against the catalog in record order, skipping
// events that no longer resolve.
func (s *interactionService) resolveEvents(ctx context.Context, ids []string) ([]*domain.Event, error) {
	events := make([]*domain.Event, 0, len(ids))
	for _, id := range ids {
		event, err := s.catalog.GetEvent(ctx, id)
		if err != nil {
			s.logger.Warn("skipping unresolvable event", "event_id", id, "error", err)
			continue
		}
		events = append(events, event)
	}
	return events, nil
}

func eventIDsFromFavorites(recs []*domain.FavoriteRecord) []string {
	ids := make([]string, len(recs))
	for i, rec := range recs {
		ids[i] = rec.EventID
	}
	return ids
}
