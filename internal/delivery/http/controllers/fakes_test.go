package controllers

import (
	"context"
	"io"
	"log/slog"

	"eventscout/internal/domain"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelError}))
}

// fakeAuthService implements domain.AuthService for handler tests.
type fakeAuthService struct {
	signUpUser *domain.User
	signUpErr  error
	loginToken string
	loginUser  *domain.User
	loginErr   error
}

func (f *fakeAuthService) SignUp(ctx context.Context, email, password, firstName, lastName string) (*domain.User, error) {
	if f.signUpErr != nil {
		return nil, f.signUpErr
	}
	return f.signUpUser, nil
}

func (f *fakeAuthService) Login(ctx context.Context, email, password string) (string, *domain.User, error) {
	if f.loginErr != nil {
		return "", nil, f.loginErr
	}
	return f.loginToken, f.loginUser, nil
}

// fakeCatalogService implements domain.CatalogService for handler tests.
type fakeCatalogService struct {
	browseEvents []*domain.Event
	browseErr    error
	getEvent     *domain.Event
	getErr       error
	lastFilters  domain.SearchFilters
	lastQuery    string
	lastCategory string
}

func (f *fakeCatalogService) Browse(ctx context.Context, filters domain.SearchFilters, query, category string) ([]*domain.Event, error) {
	f.lastFilters = filters
	f.lastQuery = query
	f.lastCategory = category
	if f.browseErr != nil {
		return nil, f.browseErr
	}
	return f.browseEvents, nil
}

func (f *fakeCatalogService) GetEvent(ctx context.Context, eventID string) (*domain.Event, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	return f.getEvent, nil
}

// fakeReviewService implements domain.ReviewService for handler tests.
type fakeReviewService struct {
	submitted    *domain.Review
	submitErr    error
	listed       *domain.EventReviews
	listErr      error
	lastUserName string
}

func (f *fakeReviewService) Submit(ctx context.Context, eventID, userID, userName string, rating int, comment string) (*domain.Review, error) {
	f.lastUserName = userName
	if f.submitErr != nil {
		return nil, f.submitErr
	}
	return f.submitted, nil
}

func (f *fakeReviewService) ListByEvent(ctx context.Context, eventID string) (*domain.EventReviews, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.listed, nil
}

// fakeInteractionService implements domain.InteractionService for handler tests.
type fakeInteractionService struct {
	status       domain.InteractionStatus
	toggleResult bool
	toggleErr    error
	attendance   *domain.AttendanceRecord
	attendErr    error
	events       []*domain.Event
	reminders    []*domain.ReminderRecord
	listErr      error
}

func (f *fakeInteractionService) Status(ctx context.Context, userID, eventID string) domain.InteractionStatus {
	return f.status
}

func (f *fakeInteractionService) ToggleFavorite(ctx context.Context, userID, eventID string) (bool, error) {
	return f.toggleResult, f.toggleErr
}

func (f *fakeInteractionService) ToggleReminder(ctx context.Context, userID, eventID string) (bool, error) {
	return f.toggleResult, f.toggleErr
}

func (f *fakeInteractionService) RecordAttendance(ctx context.Context, userID, eventID string) (*domain.AttendanceRecord, error) {
	if f.attendErr != nil {
		return nil, f.attendErr
	}
	return f.attendance, nil
}

func (f *fakeInteractionService) ListFavoriteEvents(ctx context.Context, userID string) ([]*domain.Event, error) {
	return f.events, f.listErr
}

func (f *fakeInteractionService) ListAttendedEvents(ctx context.Context, userID string) ([]*domain.Event, error) {
	return f.events, f.listErr
}

func (f *fakeInteractionService) ListReminders(ctx context.Context, userID string) ([]*domain.ReminderRecord, error) {
	return f.reminders, f.listErr
}

// fakeNotificationService implements domain.NotificationService for handler tests.
type fakeNotificationService struct {
	recs        []*domain.NotificationRecord
	total       int
	listErr     error
	deleteErr   error
	markReadErr error
	settings    *domain.NotificationSettings
	settingsErr error
}

func (f *fakeNotificationService) List(ctx context.Context, userID string, params domain.PaginationParams) ([]*domain.NotificationRecord, int, error) {
	if f.listErr != nil {
		return nil, 0, f.listErr
	}
	return f.recs, f.total, nil
}

func (f *fakeNotificationService) Delete(ctx context.Context, userID, notificationID string) error {
	return f.deleteErr
}

func (f *fakeNotificationService) MarkRead(ctx context.Context, userID, notificationID string) error {
	return f.markReadErr
}

func (f *fakeNotificationService) GetSettings(ctx context.Context, userID string) (*domain.NotificationSettings, error) {
	if f.settingsErr != nil {
		return nil, f.settingsErr
	}
	return f.settings, nil
}

func (f *fakeNotificationService) UpdateSettings(ctx context.Context, userID string, enabled bool) (*domain.NotificationSettings, error) {
	if f.settingsErr != nil {
		return nil, f.settingsErr
	}
	return &domain.NotificationSettings{UserID: userID, Enabled: enabled}, nil
}

// fakeUserService implements domain.UserService for handler tests.
type fakeUserService struct {
	profile    *domain.Profile
	profileErr error
	updateErr  error
	lastUpdate *domain.User
}

func (f *fakeUserService) GetProfile(ctx context.Context, userID string) (*domain.Profile, error) {
	if f.profileErr != nil {
		return nil, f.profileErr
	}
	return f.profile, nil
}

func (f *fakeUserService) Update(ctx context.Context, user *domain.User) error {
	f.lastUpdate = user
	return f.updateErr
}

// fakeUserRepo implements domain.UserRepository for handler tests.
type fakeUserRepo struct {
	user   *domain.User
	getErr error
}

func (f *fakeUserRepo) Create(ctx context.Context, u *domain.User) error { return nil }
func (f *fakeUserRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	return f.user, f.getErr
}
func (f *fakeUserRepo) GetByID(ctx context.Context, id string) (*domain.User, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	if f.user == nil {
		return nil, domain.ErrUserNotFound
	}
	cp := *f.user
	return &cp, nil
}
func (f *fakeUserRepo) Update(ctx context.Context, u *domain.User) error { return nil }
