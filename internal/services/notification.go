package services

import (
	"context"
	"errors"
	"time"

	"eventscout/internal/domain"
)

type notificationService struct {
	notificationRepo domain.NotificationRepository
	settingsRepo     domain.NotificationSettingsRepository
}

// NewNotificationService creates a NotificationService backed by the given repositories.
func NewNotificationService(notificationRepo domain.NotificationRepository, settingsRepo domain.NotificationSettingsRepository) domain.NotificationService {
	return &notificationService{
		notificationRepo: notificationRepo,
		settingsRepo:     settingsRepo,
	}
}

func (s *notificationService) List(ctx context.Context, userID string, params domain.PaginationParams) ([]*domain.NotificationRecord, int, error) {
	return s.notificationRepo.ListByUserID(ctx, userID, params)
}

func (s *notificationService) Delete(ctx context.Context, userID, notificationID string) error {
	return s.notificationRepo.Delete(ctx, userID, notificationID)
}

func (s *notificationService) MarkRead(ctx context.Context, userID, notificationID string) error {
	return s.notificationRepo.MarkRead(ctx, userID, notificationID)
}

func (s *notificationService) GetSettings(ctx context.Context, userID string) (*domain.NotificationSettings, error) {
	settings, err := s.settingsRepo.Get(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			// Never-saved users see the disabled default.
			return &domain.NotificationSettings{UserID: userID, Enabled: false}, nil
		}
		return nil, err
	}
	return settings, nil
}

func (s *notificationService) UpdateSettings(ctx context.Context, userID string, enabled bool) (*domain.NotificationSettings, error) {
	settings := &domain.NotificationSettings{
		UserID:    userID,
		Enabled:   enabled,
		UpdatedAt: time.Now(),
	}
	if err := s.settingsRepo.Upsert(ctx, settings); err != nil {
		return nil, err
	}
	return settings, nil
}
