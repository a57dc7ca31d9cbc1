package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"eventscout/internal/domain"
)

func TestNotificationService_Delete(t *testing.T) {
	ctx := context.Background()
	repo := &fakeNotificationRepo{recs: []*domain.NotificationRecord{
		{ID: "n-1", UserID: "u1", Title: "Ticket Purchased"},
	}}
	svc := NewNotificationService(repo, newFakeSettingsRepo())

	t.Run("other user's record is not found", func(t *testing.T) {
		err := svc.Delete(ctx, "u2", "n-1")
		require.ErrorIs(t, err, domain.ErrNotFound)
	})

	t.Run("owner deletes", func(t *testing.T) {
		require.NoError(t, svc.Delete(ctx, "u1", "n-1"))
		assert.Empty(t, repo.recs)
	})
}

func TestNotificationService_MarkRead(t *testing.T) {
	ctx := context.Background()
	repo := &fakeNotificationRepo{recs: []*domain.NotificationRecord{
		{ID: "n-1", UserID: "u1"},
	}}
	svc := NewNotificationService(repo, newFakeSettingsRepo())

	require.NoError(t, svc.MarkRead(ctx, "u1", "n-1"))
	assert.True(t, repo.recs[0].Read)
}

func TestNotificationService_GetSettings(t *testing.T) {
	ctx := context.Background()

	t.Run("never saved returns disabled default", func(t *testing.T) {
		svc := NewNotificationService(&fakeNotificationRepo{}, newFakeSettingsRepo())
		settings, err := svc.GetSettings(ctx, "u1")
		require.NoError(t, err)
		assert.Equal(t, "u1", settings.UserID)
		assert.False(t, settings.Enabled)
	})

	t.Run("saved settings round-trip", func(t *testing.T) {
		settingsRepo := newFakeSettingsRepo()
		svc := NewNotificationService(&fakeNotificationRepo{}, settingsRepo)

		updated, err := svc.UpdateSettings(ctx, "u1", true)
		require.NoError(t, err)
		assert.True(t, updated.Enabled)

		got, err := svc.GetSettings(ctx, "u1")
		require.NoError(t, err)
		assert.True(t, got.Enabled)
	})

	t.Run("store failure propagates", func(t *testing.T) {
		settingsRepo := newFakeSettingsRepo()
		settingsRepo.getErr = errBoom
		svc := NewNotificationService(&fakeNotificationRepo{}, settingsRepo)
		_, err := svc.GetSettings(ctx, "u1")
		require.Error(t, err)
	})
}
