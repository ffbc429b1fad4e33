package client

import (
	"context"

	"github.com/dmitrijs2005/heritagewatch/internal/client/models"
)

// Client is the remote service as seen by the client core. Authenticated
// calls take the session id explicitly; it travels in the
// X-Authentication header.
type Client interface {
	Ping(ctx context.Context) error

	Register(ctx context.Context, email, password string) error
	CreateSession(ctx context.Context, email, password string) (*models.Session, error)
	DeleteSession(ctx context.Context, auth, sessionID string) error

	ListReports(ctx context.Context, auth string) ([]models.Report, error)
	CreateReport(ctx context.Context, auth string, report *models.NewReport) (*models.Report, error)
	DeleteReport(ctx context.Context, auth, reportID string) error
	PresignPhotoUpload(ctx context.Context, auth, contentType string) (*models.PhotoUpload, error)

	PhotoPage(ctx context.Context, page, limit int) ([]models.PhotoStub, error)
	Photo(ctx context.Context, photoID string) (*models.Photo, error)
	SubmitTranslation(ctx context.Context, photoID string, t models.Translation) error
}
