package services

import (
	"context"
	"sync"
	"testing"

	"github.com/dmitrijs2005/heritagewatch/internal/client/client"
	"github.com/dmitrijs2005/heritagewatch/internal/client/models"
	"github.com/dmitrijs2005/heritagewatch/internal/client/repositories/localstore"
	"github.com/dmitrijs2005/heritagewatch/internal/client/repositories/metadata"
	"github.com/dmitrijs2005/heritagewatch/internal/client/session"
	"github.com/dmitrijs2005/heritagewatch/internal/logging"
	"github.com/stretchr/testify/require"
)

// ---- fake client ----

type fakeClient struct {
	mu sync.Mutex

	PingErr     error
	RegisterErr error

	SessionRet *models.Session
	SessionErr error

	DeleteSessionErr error

	Reports    []models.Report
	ReportsErr error

	CreateReportRet *models.Report
	CreateReportErr error

	DeleteReportErr error

	Upload    *models.PhotoUpload
	UploadErr error

	Pages    map[int][]models.PhotoStub
	PageErr  error
	Photos   map[string]models.Photo
	PhotoErr error

	TranslationErr error

	// captured calls
	DeletedSessions []string
	DeletedReports  []string
	RequestedPages  []int
	Translations    []models.Translation
	CreatedReports  []models.NewReport
	Auth            []string
}

var _ client.Client = (*fakeClient)(nil)

func (f *fakeClient) Ping(ctx context.Context) error { return f.PingErr }

func (f *fakeClient) Register(ctx context.Context, email, password string) error { return f.RegisterErr }

func (f *fakeClient) CreateSession(ctx context.Context, email, password string) (*models.Session, error) {
	return f.SessionRet, f.SessionErr
}

func (f *fakeClient) DeleteSession(ctx context.Context, auth, sessionID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.Auth = append(f.Auth, auth)
	f.DeletedSessions = append(f.DeletedSessions, sessionID)
	return f.DeleteSessionErr
}

func (f *fakeClient) ListReports(ctx context.Context, auth string) ([]models.Report, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.Auth = append(f.Auth, auth)
	if f.ReportsErr != nil {
		return nil, f.ReportsErr
	}
	return append([]models.Report(nil), f.Reports...), nil
}

func (f *fakeClient) CreateReport(ctx context.Context, auth string, r *models.NewReport) (*models.Report, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.CreatedReports = append(f.CreatedReports, *r)
	return f.CreateReportRet, f.CreateReportErr
}

func (f *fakeClient) DeleteReport(ctx context.Context, auth, reportID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.Auth = append(f.Auth, auth)
	f.DeletedReports = append(f.DeletedReports, reportID)
	return f.DeleteReportErr
}

func (f *fakeClient) PresignPhotoUpload(ctx context.Context, auth, contentType string) (*models.PhotoUpload, error) {
	return f.Upload, f.UploadErr
}

func (f *fakeClient) PhotoPage(ctx context.Context, page, limit int) ([]models.PhotoStub, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.RequestedPages = append(f.RequestedPages, page)
	if f.PageErr != nil {
		return nil, f.PageErr
	}
	return f.Pages[page], nil
}

func (f *fakeClient) Photo(ctx context.Context, photoID string) (*models.Photo, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.PhotoErr != nil {
		return nil, f.PhotoErr
	}
	p := f.Photos[photoID]
	return &p, nil
}

func (f *fakeClient) SubmitTranslation(ctx context.Context, photoID string, t models.Translation) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.Translations = append(f.Translations, t)
	return f.TranslationErr
}

// ---- recording presenter ----

type recordingPresenter struct {
	mu       sync.Mutex
	states   []session.State
	lists    [][]models.Report
	messages []string
}

func (p *recordingPresenter) SessionChanged(s session.State) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.states = append(p.states, s)
}

func (p *recordingPresenter) ReportsChanged(r []models.Report) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.lists = append(p.lists, r)
}

func (p *recordingPresenter) Alert(msg string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.messages = append(p.messages, msg)
}

func (p *recordingPresenter) lastList() []models.Report {
	p.mu.Lock()
	defer p.mu.Unlock()
	if len(p.lists) == 0 {
		return nil
	}
	return p.lists[len(p.lists)-1]
}

// ---- fixtures ----

type fixture struct {
	client    *fakeClient
	store     *localstore.Store
	repo      *metadata.SQLiteRepository
	presenter *recordingPresenter
	sessions  SessionManager
	reports   ReportService
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	db, err := client.InitDatabase(context.Background(), ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	repo := metadata.NewSQLiteRepository(db)
	store := localstore.New(repo)
	fc := &fakeClient{}
	p := &recordingPresenter{}
	logger := logging.NewNop()

	sm := NewSessionManager(fc, store, p, logger)
	rs := NewReportService(fc, store, sm, p, logger)
	return &fixture{client: fc, store: store, repo: repo, presenter: p, sessions: sm, reports: rs}
}

var testSession = models.Session{ID: "s-1", UserID: "u-1", Email: "ada@example.org", Token: "tok-1"}

// login puts the fixture into the Authenticated state through the normal
// path.
func (f *fixture) login(t *testing.T) {
	t.Helper()
	s := testSession
	f.client.SessionRet = &s
	_, err := f.sessions.Login(context.Background(), s.Email, "pw")
	require.NoError(t, err)
}

func ids(list []models.Report) []string {
	out := make([]string, 0, len(list))
	for _, r := range list {
		out = append(out, r.ID)
	}
	return out
}
