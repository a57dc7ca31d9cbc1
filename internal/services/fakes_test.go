package services

import (
	"context"
	"errors"
	"time"

	"eventscout/internal/domain"
)

// fakeUserRepo implements domain.UserRepository for tests.
type fakeUserRepo struct {
	byID      map[string]*domain.User
	byEmail   map[string]*domain.User
	createErr error
	getErr    error
	updateErr error
	nextID    int
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{
		byID:    make(map[string]*domain.User),
		byEmail: make(map[string]*domain.User),
	}
}

func (f *fakeUserRepo) add(u *domain.User) {
	f.byID[u.ID] = u
	if u.Email != "" {
		f.byEmail[u.Email] = u
	}
}

func (f *fakeUserRepo) Create(ctx context.Context, u *domain.User) error {
	if f.createErr != nil {
		return f.createErr
	}
	if _, ok := f.byEmail[u.Email]; ok {
		return domain.ErrDuplicateEmail
	}
	f.nextID++
	u.ID = "created-1"
	f.add(u)
	return nil
}

func (f *fakeUserRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	if u, ok := f.byEmail[email]; ok {
		cp := *u
		return &cp, nil
	}
	return nil, domain.ErrUserNotFound
}

func (f *fakeUserRepo) GetByID(ctx context.Context, id string) (*domain.User, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	if u, ok := f.byID[id]; ok {
		cp := *u
		return &cp, nil
	}
	return nil, domain.ErrUserNotFound
}

func (f *fakeUserRepo) Update(ctx context.Context, u *domain.User) error {
	if f.updateErr != nil {
		return f.updateErr
	}
	if _, ok := f.byID[u.ID]; !ok {
		return domain.ErrUserNotFound
	}
	if existing, ok := f.byEmail[u.Email]; ok && existing.ID != u.ID {
		return domain.ErrDuplicateEmail
	}
	f.add(u)
	return nil
}

// fakePasswordHasher implements domain.PasswordHasher for tests.
type fakePasswordHasher struct {
	salt       string
	hash       string
	compareErr error
}

func (f *fakePasswordHasher) GenerateSalt() (string, error) { return f.salt, nil }
func (f *fakePasswordHasher) Hash(salt, password string) (string, error) {
	if f.hash != "" {
		return f.hash, nil
	}
	return "hash-" + password, nil
}
func (f *fakePasswordHasher) Compare(hash, salt, password string) error { return f.compareErr }

// fakeTokenIssuer implements domain.TokenIssuer for tests.
type fakeTokenIssuer struct {
	token string
	err   error
}

func (f *fakeTokenIssuer) Issue(userID, email string, expiry time.Duration) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	if f.token != "" {
		return f.token, nil
	}
	return "token-" + userID, nil
}

// fakeCatalog implements domain.CatalogClient for tests.
type fakeCatalog struct {
	events    map[string]*domain.Event
	searched  []*domain.Event
	searchErr error
	getCalls  []string
}

func newFakeCatalog() *fakeCatalog {
	return &fakeCatalog{events: make(map[string]*domain.Event)}
}

func (f *fakeCatalog) GetEvent(ctx context.Context, eventID string) (*domain.Event, error) {
	f.getCalls = append(f.getCalls, eventID)
	if ev, ok := f.events[eventID]; ok {
		return ev, nil
	}
	return nil, domain.ErrNotFound
}

func (f *fakeCatalog) SearchEvents(ctx context.Context, filters domain.SearchFilters) ([]*domain.Event, error) {
	if f.searchErr != nil {
		return nil, f.searchErr
	}
	return f.searched, nil
}

func pairKey(userID, eventID string) string { return userID + "|" + eventID }

// fakeFavoriteRepo implements domain.FavoriteRepository for tests.
type fakeFavoriteRepo struct {
	recs      map[string]*domain.FavoriteRecord
	existsErr error
	createErr error
	deleteErr error
	listErr   error
}

func newFakeFavoriteRepo() *fakeFavoriteRepo {
	return &fakeFavoriteRepo{recs: make(map[string]*domain.FavoriteRecord)}
}

func (f *fakeFavoriteRepo) Create(ctx context.Context, rec *domain.FavoriteRecord) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.recs[pairKey(rec.UserID, rec.EventID)] = rec
	return nil
}

func (f *fakeFavoriteRepo) Delete(ctx context.Context, userID, eventID string) error {
	if f.deleteErr != nil {
		return f.deleteErr
	}
	delete(f.recs, pairKey(userID, eventID))
	return nil
}

func (f *fakeFavoriteRepo) Exists(ctx context.Context, userID, eventID string) (bool, error) {
	if f.existsErr != nil {
		return false, f.existsErr
	}
	_, ok := f.recs[pairKey(userID, eventID)]
	return ok, nil
}

func (f *fakeFavoriteRepo) ListByUserID(ctx context.Context, userID string) ([]*domain.FavoriteRecord, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	var out []*domain.FavoriteRecord
	for _, rec := range f.recs {
		if rec.UserID == userID {
			out = append(out, rec)
		}
	}
	return out, nil
}

func (f *fakeFavoriteRepo) CountByUserID(ctx context.Context, userID string) (int, error) {
	recs, err := f.ListByUserID(ctx, userID)
	return len(recs), err
}

// fakeAttendanceRepo implements domain.AttendanceRepository for tests.
type fakeAttendanceRepo struct {
	recs      []*domain.AttendanceRecord
	existsErr error
	createErr error
	listErr   error
}

func (f *fakeAttendanceRepo) Create(ctx context.Context, rec *domain.AttendanceRecord) error {
	if f.createErr != nil {
		return f.createErr
	}
	rec.ID = "att-1"
	f.recs = append(f.recs, rec)
	return nil
}

func (f *fakeAttendanceRepo) ExistsByEvent(ctx context.Context, userID, eventID string) (bool, error) {
	if f.existsErr != nil {
		return false, f.existsErr
	}
	for _, rec := range f.recs {
		if rec.UserID == userID && rec.EventID == eventID {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeAttendanceRepo) ListByUserID(ctx context.Context, userID string) ([]*domain.AttendanceRecord, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	var out []*domain.AttendanceRecord
	for _, rec := range f.recs {
		if rec.UserID == userID {
			out = append(out, rec)
		}
	}
	return out, nil
}

func (f *fakeAttendanceRepo) CountByUserID(ctx context.Context, userID string) (int, error) {
	recs, err := f.ListByUserID(ctx, userID)
	return len(recs), err
}

// fakeReminderRepo implements domain.ReminderRepository for tests.
type fakeReminderRepo struct {
	recs      map[string]*domain.ReminderRecord
	existsErr error
	createErr error
	deleteErr error
	markedSent []string
}

func newFakeReminderRepo() *fakeReminderRepo {
	return &fakeReminderRepo{recs: make(map[string]*domain.ReminderRecord)}
}

func (f *fakeReminderRepo) Create(ctx context.Context, rec *domain.ReminderRecord) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.recs[pairKey(rec.UserID, rec.EventID)] = rec
	return nil
}

func (f *fakeReminderRepo) Delete(ctx context.Context, userID, eventID string) error {
	if f.deleteErr != nil {
		return f.deleteErr
	}
	delete(f.recs, pairKey(userID, eventID))
	return nil
}

func (f *fakeReminderRepo) Exists(ctx context.Context, userID, eventID string) (bool, error) {
	if f.existsErr != nil {
		return false, f.existsErr
	}
	_, ok := f.recs[pairKey(userID, eventID)]
	return ok, nil
}

func (f *fakeReminderRepo) ListByUserID(ctx context.Context, userID string) ([]*domain.ReminderRecord, error) {
	var out []*domain.ReminderRecord
	for _, rec := range f.recs {
		if rec.UserID == userID {
			out = append(out, rec)
		}
	}
	return out, nil
}

func (f *fakeReminderRepo) ListDueUnsent(ctx context.Context, now time.Time) ([]*domain.ReminderRecord, error) {
	var out []*domain.ReminderRecord
	for _, rec := range f.recs {
		if rec.SentAt == nil && !rec.ReminderDate.After(now) {
			out = append(out, rec)
		}
	}
	return out, nil
}

func (f *fakeReminderRepo) MarkSent(ctx context.Context, userID, eventID string, sentAt time.Time) error {
	if rec, ok := f.recs[pairKey(userID, eventID)]; ok {
		t := sentAt
		rec.SentAt = &t
	}
	f.markedSent = append(f.markedSent, pairKey(userID, eventID))
	return nil
}

// fakeNotificationRepo implements domain.NotificationRepository for tests.
type fakeNotificationRepo struct {
	recs      []*domain.NotificationRecord
	createErr error
	deleteErr error
}

func (f *fakeNotificationRepo) Create(ctx context.Context, rec *domain.NotificationRecord) error {
	if f.createErr != nil {
		return f.createErr
	}
	rec.ID = "n-1"
	f.recs = append(f.recs, rec)
	return nil
}

func (f *fakeNotificationRepo) ListByUserID(ctx context.Context, userID string, params domain.PaginationParams) ([]*domain.NotificationRecord, int, error) {
	var out []*domain.NotificationRecord
	for _, rec := range f.recs {
		if rec.UserID == userID {
			out = append(out, rec)
		}
	}
	return out, len(out), nil
}

func (f *fakeNotificationRepo) Delete(ctx context.Context, userID, notificationID string) error {
	if f.deleteErr != nil {
		return f.deleteErr
	}
	for i, rec := range f.recs {
		if rec.ID == notificationID && rec.UserID == userID {
			f.recs = append(f.recs[:i], f.recs[i+1:]...)
			return nil
		}
	}
	return domain.ErrNotFound
}

func (f *fakeNotificationRepo) MarkRead(ctx context.Context, userID, notificationID string) error {
	for _, rec := range f.recs {
		if rec.ID == notificationID && rec.UserID == userID {
			rec.Read = true
			return nil
		}
	}
	return domain.ErrNotFound
}

// fakeSettingsRepo implements domain.NotificationSettingsRepository for tests.
type fakeSettingsRepo struct {
	byUser    map[string]*domain.NotificationSettings
	getErr    error
	upsertErr error
}

func newFakeSettingsRepo() *fakeSettingsRepo {
	return &fakeSettingsRepo{byUser: make(map[string]*domain.NotificationSettings)}
}

func (f *fakeSettingsRepo) Get(ctx context.Context, userID string) (*domain.NotificationSettings, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	if s, ok := f.byUser[userID]; ok {
		return s, nil
	}
	return nil, domain.ErrNotFound
}

func (f *fakeSettingsRepo) Upsert(ctx context.Context, s *domain.NotificationSettings) error {
	if f.upsertErr != nil {
		return f.upsertErr
	}
	f.byUser[s.UserID] = s
	return nil
}

var errBoom = errors.New("boom")
