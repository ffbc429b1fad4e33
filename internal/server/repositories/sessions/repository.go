package sessions

import (
	"context"
	"time"

	"github.com/dmitrijs2005/heritagewatch/internal/server/models"
)

type Repository interface {
	Create(ctx context.Context, userID string, expires time.Time) (*models.Session, error)
	Find(ctx context.Context, id string) (*models.Session, error)
	Delete(ctx context.Context, userID, id string) error
	DeleteExpired(ctx context.Context, now time.Time) (int64, error)
}
