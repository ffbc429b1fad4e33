// Package server initializes and runs the report service: it opens the
// database, applies migrations, starts the HTTP API, and handles graceful
// shutdown.
package server

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/dmitrijs2005/heritagewatch/internal/logging"
	"github.com/dmitrijs2005/heritagewatch/internal/server/config"
	"github.com/dmitrijs2005/heritagewatch/internal/server/httpapi"
	"github.com/dmitrijs2005/heritagewatch/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/heritagewatch/internal/server/services"
)

// sessionPurgeInterval is how often expired sessions are removed.
const sessionPurgeInterval = 10 * time.Minute

type App struct {
	config      *config.Config
	logger      logging.Logger
	db          *sql.DB
	userService *services.UserService
	httpServer  *httpapi.HTTPServer
}

func NewApp(ctx context.Context, cfg *config.Config) (*App, error) {

	logger := logging.NewJSONLogger(os.Stdout, slog.LevelInfo)

	db, err := repomanager.OpenPostgres(ctx, cfg.DatabaseDSN)
	if err != nil {
		return nil, fmt.Errorf("db init error: %w", err)
	}

	rm := repomanager.NewPostgresRepositoryManager()
	if err := rm.RunMigrations(ctx, db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migration error: %w", err)
	}

	us := services.NewUserService(db, rm, cfg)
	rs := services.NewReportService(db, rm, cfg)
	ps := services.NewPhotoService(db, rm)

	hs := httpapi.NewHTTPServer(cfg.EndpointAddr, cfg.APIKey, logger, us, rs, ps)

	return &App{config: cfg, logger: logger, db: db, userService: us, httpServer: hs}, nil
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

func (app *App) startHTTPServer(ctx context.Context, cancelFunc context.CancelFunc) {
	if err := app.httpServer.Run(ctx); err != nil {
		app.logger.Error(ctx, err.Error())
		cancelFunc()
	}
}

func (app *App) purgeSessions(ctx context.Context) {
	ticker := time.NewTicker(sessionPurgeInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			n, err := app.userService.PurgeExpiredSessions(ctx)
			if err != nil {
				app.logger.Warn(ctx, "session purge failed", "error", err)
				continue
			}
			if n > 0 {
				app.logger.Info(ctx, "expired sessions purged", "count", n)
			}
		}
	}
}

// Run blocks until a termination signal arrives or the HTTP server fails.
func (app *App) Run(ctx context.Context) {

	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	app.logger.Info(ctx, "Starting app...")

	app.initSignalHandler(cancelFunc)

	var wg sync.WaitGroup

	wg.Add(2)
	go func() {
		defer wg.Done()
		app.startHTTPServer(ctx, cancelFunc)
	}()
	go func() {
		defer wg.Done()
		app.purgeSessions(ctx)
	}()

	wg.Wait()

	if err := app.db.Close(); err != nil {
		app.logger.Error(ctx, "db close failed", "error", err)
	}
	app.logger.Info(ctx, "Stopped")
}
