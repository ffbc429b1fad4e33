package cli

import (
	"bufio"
	"context"
	"database/sql"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/dmitrijs2005/heritagewatch/internal/client/client"
	"github.com/dmitrijs2005/heritagewatch/internal/client/config"
	"github.com/dmitrijs2005/heritagewatch/internal/client/models"
	"github.com/dmitrijs2005/heritagewatch/internal/client/repositories/localstore"
	"github.com/dmitrijs2005/heritagewatch/internal/client/repositories/metadata"
	"github.com/dmitrijs2005/heritagewatch/internal/client/services"
	"github.com/dmitrijs2005/heritagewatch/internal/filex"
	"github.com/dmitrijs2005/heritagewatch/internal/logging"
)

type Mode string

const (
	ModeOffline Mode = "offline"
	ModeOnline  Mode = "online"
)

type App struct {
	config *config.Config
	logger logging.Logger
	db     *sql.DB

	sessions services.SessionManager
	reports  services.ReportService
	captions services.CaptionService
	feed     services.FeedService
	drafts   services.DraftService

	reader *bufio.Reader
	out    io.Writer

	mu         sync.Mutex
	Mode       Mode
	userName   string
	loggedIn   bool
	reportRows []models.Report
	photos     []models.Photo
}

// NewApp opens the local database and wires the services with the App as
// their presenter.
func NewApp(ctx context.Context, c *config.Config, logger logging.Logger) (*App, error) {
	if _, err := filex.EnsureDir(filepath.Dir(c.DatabasePath)); err != nil {
		return nil, err
	}

	db, err := client.InitDatabase(ctx, c.DatabasePath)
	if err != nil {
		logger.Error(ctx, "error initializing database", "path", c.DatabasePath, "error", err)
		return nil, err
	}

	api := client.NewHTTPClient(c.APIOrigin, c.APIKey, c.RequestTimeout)
	store := localstore.New(metadata.NewSQLiteRepository(db))

	a := &App{
		config: c,
		logger: logger.With("module", "cli"),
		db:     db,
		reader: bufio.NewReader(os.Stdin),
		out:    os.Stdout,
	}
	a.sessions = services.NewSessionManager(api, store, a, logger)
	a.reports = services.NewReportService(api, store, a.sessions, a, logger)
	a.captions = services.NewCaptionService(api, store, logger)
	a.feed = services.NewFeedService(api, a, c.PageSize, logger)
	a.drafts = services.NewDraftService(api, api.HTTP(), a.sessions, a.reports, logger)

	return a, nil
}

func (a *App) Close() error {
	if a.db == nil {
		return nil
	}
	return a.db.Close()
}

func (a *App) setMode(mode Mode) {
	a.mu.Lock()
	changed := a.Mode != mode
	a.Mode = mode
	a.mu.Unlock()

	if changed {
		a.logger.Info(context.Background(), "connectivity changed", "mode", string(mode))
	}
}

func (a *App) isLoggedIn() bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.loggedIn
}

func (a *App) getStatus() string {
	a.mu.Lock()
	defer a.mu.Unlock()

	s := ""
	if a.userName != "" {
		s = a.userName + " "
	}
	if a.Mode != "" {
		s = s + string(a.Mode)
	}
	if s != "" {
		s = fmt.Sprintf("(%s)", s)
	}
	return s
}

// Run restores the previous session, refreshes the report list when there
// is one and then blocks in the REPL until the user exits.
func (a *App) Run(ctx context.Context) {
	fmt.Fprintln(a.out, "Welcome to HeritageWatch (type 'help' for commands)")

	if state := a.sessions.RestoreSession(ctx); state.IsAuthenticated() {
		a.ReportsChanged(a.reports.Cached(ctx))
		_, _ = a.reports.FetchReportList(ctx)
	} else {
		fmt.Fprintln(a.out, "Please log in or register.")
	}

	go a.StartOnlineStatusWatcher(ctx, a.config.OnlineCheckInterval)

	runREPL(ctx, a, a.getStatus, a.reader)
}

func (a *App) StartOnlineStatusWatcher(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		return
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			pctx, cancel := context.WithTimeout(ctx, 3*time.Second)
			err := a.sessions.Ping(pctx)
			cancel()

			if err != nil {
				a.setMode(ModeOffline)
			} else {
				a.setMode(ModeOnline)
			}

		case <-ctx.Done():
			return
		}
	}
}
