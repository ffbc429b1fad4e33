package reports

import (
	"context"

	"github.com/dmitrijs2005/heritagewatch/internal/server/models"
)

type Repository interface {
	// ListByUser returns every report of the user, soft-deleted ones included.
	ListByUser(ctx context.Context, userID string) ([]*models.Report, error)
	Create(ctx context.Context, report *models.Report) (*models.Report, error)
	SoftDelete(ctx context.Context, userID, id string) error
}
