package services

import (
	"context"
	"database/sql"
	"sync"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/dmitrijs2005/heritagewatch/internal/common"
	"github.com/dmitrijs2005/heritagewatch/internal/dbx"
	"github.com/dmitrijs2005/heritagewatch/internal/server/config"
	"github.com/dmitrijs2005/heritagewatch/internal/server/models"
	"github.com/dmitrijs2005/heritagewatch/internal/server/repositories/photos"
	"github.com/dmitrijs2005/heritagewatch/internal/server/repositories/reports"
	"github.com/dmitrijs2005/heritagewatch/internal/server/repositories/sessions"
	"github.com/dmitrijs2005/heritagewatch/internal/server/repositories/users"
)

const (
	userUUID    = "5d0f3c2e-6b1a-4f7e-9a55-2f3b8c1d9e01"
	sessionUUID = "9b1e2d4c-3a5f-4e6d-8c7b-1a2b3c4d5e6f"
	reportUUID  = "0c8d7e6f-5a4b-4c3d-9e2f-1a0b9c8d7e6f"
	photoUUID   = "7f6e5d4c-3b2a-4190-8f7e-6d5c4b3a2918"
)

func newSQLMockDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New error: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db, mock
}

func testConfig() *config.Config {
	cfg := &config.Config{}
	cfg.LoadDefaults()
	cfg.SessionValidityDuration = time.Hour
	return cfg
}

type errBoom struct{}

func (errBoom) Error() string { return "boom" }

type fakeUsersRepo struct {
	mu     sync.Mutex
	byMail map[string]*models.User
	err    error
}

func newFakeUsersRepo() *fakeUsersRepo {
	return &fakeUsersRepo{byMail: map[string]*models.User{}}
}

func (f *fakeUsersRepo) Create(_ context.Context, u *models.User) (*models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	if _, ok := f.byMail[u.Email]; ok {
		return nil, common.ErrorAlreadyExists
	}
	u.ID = userUUID
	f.byMail[u.Email] = u
	return u, nil
}

func (f *fakeUsersRepo) GetUserByEmail(_ context.Context, email string) (*models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	u, ok := f.byMail[email]
	if !ok {
		return nil, common.ErrorNotFound
	}
	return u, nil
}

type fakeSessionsRepo struct {
	mu        sync.Mutex
	byID      map[string]*models.Session
	createErr error
	purged    time.Time
}

func newFakeSessionsRepo() *fakeSessionsRepo {
	return &fakeSessionsRepo{byID: map[string]*models.Session{}}
}

func (f *fakeSessionsRepo) Create(_ context.Context, userID string, expires time.Time) (*models.Session, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.createErr != nil {
		return nil, f.createErr
	}
	s := &models.Session{ID: sessionUUID, UserID: userID, Expires: expires}
	f.byID[s.ID] = s
	return s, nil
}

func (f *fakeSessionsRepo) Find(_ context.Context, id string) (*models.Session, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	s, ok := f.byID[id]
	if !ok {
		return nil, common.ErrorNotFound
	}
	return s, nil
}

func (f *fakeSessionsRepo) Delete(_ context.Context, userID, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	s, ok := f.byID[id]
	if !ok || s.UserID != userID {
		return common.ErrorNotFound
	}
	delete(f.byID, id)
	return nil
}

func (f *fakeSessionsRepo) DeleteExpired(_ context.Context, now time.Time) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.purged = now
	var n int64
	for id, s := range f.byID {
		if s.Expired(now) {
			delete(f.byID, id)
			n++
		}
	}
	return n, nil
}

type fakeReportsRepo struct {
	mu      sync.Mutex
	reports []*models.Report
}

func (f *fakeReportsRepo) ListByUser(_ context.Context, userID string) ([]*models.Report, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]*models.Report, 0)
	for _, r := range f.reports {
		if r.UserID == userID {
			out = append(out, r)
		}
	}
	return out, nil
}

func (f *fakeReportsRepo) Create(_ context.Context, r *models.Report) (*models.Report, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	r.ID = reportUUID
	r.CreatedAt = time.Now()
	f.reports = append(f.reports, r)
	return r, nil
}

func (f *fakeReportsRepo) SoftDelete(_ context.Context, userID, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, r := range f.reports {
		if r.ID == id && r.UserID == userID {
			r.Status = common.ObjectStatusDeleted
			return nil
		}
	}
	return common.ErrorNotFound
}

type fakePhotosRepo struct {
	ids          []string
	photos       map[string]*models.Photo
	translations []*models.Translation
	lastOffset   int
}

func (f *fakePhotosRepo) Page(_ context.Context, offset, limit int) ([]string, error) {
	f.lastOffset = offset
	if offset >= len(f.ids) {
		return []string{}, nil
	}
	end := min(offset+limit, len(f.ids))
	return f.ids[offset:end], nil
}

func (f *fakePhotosRepo) Get(_ context.Context, id string) (*models.Photo, error) {
	p, ok := f.photos[id]
	if !ok {
		return nil, common.ErrorNotFound
	}
	return p, nil
}

func (f *fakePhotosRepo) AddTranslation(_ context.Context, t *models.Translation) (*models.Translation, error) {
	t.ID = "t-1"
	f.translations = append(f.translations, t)
	return t, nil
}

type fakeRepoManager struct {
	users    *fakeUsersRepo
	sessions *fakeSessionsRepo
	reports  *fakeReportsRepo
	photos   *fakePhotosRepo
}

func newFakeRepoManager() *fakeRepoManager {
	return &fakeRepoManager{
		users:    newFakeUsersRepo(),
		sessions: newFakeSessionsRepo(),
		reports:  &fakeReportsRepo{},
		photos:   &fakePhotosRepo{photos: map[string]*models.Photo{}},
	}
}

func (m *fakeRepoManager) RunMigrations(context.Context, *sql.DB) error { return nil }
func (m *fakeRepoManager) Users(dbx.DBTX) users.Repository              { return m.users }
func (m *fakeRepoManager) Sessions(dbx.DBTX) sessions.Repository        { return m.sessions }
func (m *fakeRepoManager) Reports(dbx.DBTX) reports.Repository          { return m.reports }
func (m *fakeRepoManager) Photos(dbx.DBTX) photos.Repository            { return m.photos }
