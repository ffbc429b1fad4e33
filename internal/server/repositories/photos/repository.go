package photos

import (
	"context"

	"github.com/dmitrijs2005/heritagewatch/internal/server/models"
)

type Repository interface {
	Page(ctx context.Context, offset, limit int) ([]string, error)
	Get(ctx context.Context, id string) (*models.Photo, error)
	AddTranslation(ctx context.Context, t *models.Translation) (*models.Translation, error)
}
