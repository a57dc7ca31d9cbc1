package workers

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"

	"eventscout/internal/domain"
)

// ReminderDispatcher periodically delivers due reminders: each unsent
// reminder whose reminder date has passed gets an in-app notification and,
// when the user has notifications enabled, a reminder email. Dispatch is
// at-least-once per reminder; MarkSent stops repeats.
type ReminderDispatcher struct {
	reminderRepo     domain.ReminderRepository
	notificationRepo domain.NotificationRepository
	settingsRepo     domain.NotificationSettingsRepository
	userRepo         domain.UserRepository
	email            domain.EmailService
	logger           *slog.Logger
	cron             *cron.Cron
}

func NewReminderDispatcher(
	reminderRepo domain.ReminderRepository,
	notificationRepo domain.NotificationRepository,
	settingsRepo domain.NotificationSettingsRepository,
	userRepo domain.UserRepository,
	email domain.EmailService,
	logger *slog.Logger,
) *ReminderDispatcher {
	return &ReminderDispatcher{
		reminderRepo:     reminderRepo,
		notificationRepo: notificationRepo,
		settingsRepo:     settingsRepo,
		userRepo:         userRepo,
		email:            email,
		logger:           logger,
	}
}

// Start schedules dispatch runs with the given cron expression and begins
// running them in the background.
func (d *ReminderDispatcher) Start(schedule string) error {
	c := cron.New()
	if _, err := c.AddFunc(schedule, func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
		defer cancel()
		d.Dispatch(ctx, time.Now())
	}); err != nil {
		return fmt.Errorf("invalid reminder schedule %q: %w", schedule, err)
	}
	c.Start()
	d.cron = c
	d.logger.Info("reminder dispatcher started", "schedule", schedule)
	return nil
}

// Stop halts the schedule and waits for a running dispatch to finish.
func (d *ReminderDispatcher) Stop() {
	if d.cron != nil {
		<-d.cron.Stop().Done()
	}
}

// Dispatch delivers every due unsent reminder. Failures on one reminder are
// logged and do not block the rest of the batch.
func (d *ReminderDispatcher) Dispatch(ctx context.Context, now time.Time) {
	due, err := d.reminderRepo.ListDueUnsent(ctx, now)
	if err != nil {
		d.logger.Error("failed to list due reminders", "error", err)
		return
	}
	if len(due) == 0 {
		return
	}
	d.logger.Info("dispatching reminders", "count", len(due))

	for _, rec := range due {
		if err := d.dispatchOne(ctx, rec, now); err != nil {
			d.logger.Error("reminder dispatch failed",
				"user_id", rec.UserID, "event_id", rec.EventID, "error", err)
		}
	}
}

func (d *ReminderDispatcher) dispatchOne(ctx context.Context, rec *domain.ReminderRecord, now time.Time) error {
	notification := &domain.NotificationRecord{
		UserID:    rec.UserID,
		Title:     "Event Reminder",
		Body:      fmt.Sprintf("%s is tomorrow!", rec.EventName),
		CreatedAt: now,
	}
	if err := d.notificationRepo.Create(ctx, notification); err != nil {
		return fmt.Errorf("failed to store reminder notification: %w", err)
	}

	if d.emailEnabled(ctx, rec.UserID) {
		if err := d.sendEmail(ctx, rec); err != nil {
			// The in-app notification already landed; email failure alone
			// does not hold the reminder open.
			d.logger.Error("reminder email failed",
				"user_id", rec.UserID, "event_id", rec.EventID, "error", err)
		}
	}

	if err := d.reminderRepo.MarkSent(ctx, rec.UserID, rec.EventID, now); err != nil {
		return fmt.Errorf("failed to mark reminder sent: %w", err)
	}
	return nil
}

func (d *ReminderDispatcher) emailEnabled(ctx context.Context, userID string) bool {
	settings, err := d.settingsRepo.Get(ctx, userID)
	if err != nil {
		// Missing settings mean the disabled default.
		return false
	}
	return settings.Enabled
}

func (d *ReminderDispatcher) sendEmail(ctx context.Context, rec *domain.ReminderRecord) error {
	user, err := d.userRepo.GetByID(ctx, rec.UserID)
	if err != nil {
		return fmt.Errorf("failed to load user: %w", err)
	}
	return d.email.SendReminder(ctx, &domain.ReminderEmailData{
		Email:     user.Email,
		FirstName: user.FirstName,
		EventName: rec.EventName,
		EventDate: rec.EventDate.Format("January 2, 2006"),
		ImageURL:  rec.ImageURL,
	})
}
