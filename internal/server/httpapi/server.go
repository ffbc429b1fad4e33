// Package httpapi exposes the report service over HTTP/JSON. Every route
// except /health requires the project API key; report and session routes
// also require a session token.
package httpapi

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/dmitrijs2005/heritagewatch/internal/logging"
	"github.com/dmitrijs2005/heritagewatch/internal/server/models"
	"github.com/dmitrijs2005/heritagewatch/internal/server/services"
	"github.com/gorilla/mux"
)

const shutdownTimeout = 5 * time.Second

type Users interface {
	Register(ctx context.Context, email, password string) (*models.User, error)
	CreateSession(ctx context.Context, email, password string) (*services.SessionGrant, error)
	AuthenticateSession(ctx context.Context, sessionID string) (*services.Principal, error)
	Authenticate(ctx context.Context, token string) (*services.Principal, error)
	DeleteSession(ctx context.Context, userID, sessionID string) error
}

type Reports interface {
	List(ctx context.Context, userID string) ([]*models.Report, error)
	Create(ctx context.Context, userID string, r *models.Report) (*models.Report, error)
	SoftDelete(ctx context.Context, userID, reportID string) error
	PresignUpload(ctx context.Context, userID, contentType string) (string, string, error)
}

type Photos interface {
	Feed(ctx context.Context, page, limit int) ([]string, error)
	Get(ctx context.Context, photoID string) (*models.Photo, error)
	AddTranslation(ctx context.Context, photoID, lang, caption string) (*models.Translation, error)
}

type HTTPServer struct {
	address string
	apiKey  []byte
	users   Users
	reports Reports
	photos  Photos
	logger  logging.Logger
}

func NewHTTPServer(address, apiKey string, l logging.Logger, us Users, rs Reports, ps Photos) *HTTPServer {
	return &HTTPServer{
		address: address,
		apiKey:  []byte(apiKey),
		users:   us,
		reports: rs,
		photos:  ps,
		logger:  l.With("module", "http_server"),
	}
}

// Router builds the route table.
func (s *HTTPServer) Router() http.Handler {
	r := mux.NewRouter()
	r.Use(s.logRequests)
	r.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		writeError(w, http.StatusNotFound, "not found")
	})
	r.MethodNotAllowedHandler = http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
	})

	r.HandleFunc("/health", s.health).Methods(http.MethodGet)

	api := r.NewRoute().Subrouter()
	api.Use(s.requireAPIKey)

	api.HandleFunc("/account", s.register).Methods(http.MethodPost)
	api.HandleFunc("/account/session", s.createSession).Methods(http.MethodPost)

	api.HandleFunc("/photos", s.photoFeed).Methods(http.MethodGet)
	api.HandleFunc("/photos/{id}", s.photo).Methods(http.MethodGet)
	api.HandleFunc("/photos/{id}/translations", s.addTranslation).Methods(http.MethodPost)

	authed := api.NewRoute().Subrouter()
	authed.Use(s.requireSession)

	authed.HandleFunc("/account/session/{id}", s.deleteSession).Methods(http.MethodDelete)
	authed.HandleFunc("/har/report", s.listReports).Methods(http.MethodGet)
	authed.HandleFunc("/har/report", s.createReport).Methods(http.MethodPost)
	authed.HandleFunc("/har/report/upload", s.presignUpload).Methods(http.MethodPost)
	authed.HandleFunc("/har/report/{id}", s.deleteReport).Methods(http.MethodDelete)

	return r
}

// Run serves until ctx is cancelled, then shuts down gracefully. It returns
// after in-flight requests have finished or the shutdown timeout expired.
func (s *HTTPServer) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.address,
		Handler:           s.Router(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	stopped := make(chan struct{})
	go func() {
		defer close(stopped)
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping HTTP server...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			s.logger.Error(ctx, "shutdown failed", "error", err)
		}
	}()

	s.logger.Info(ctx, "Starting HTTP server", "address", s.address)

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	<-stopped
	return nil
}
