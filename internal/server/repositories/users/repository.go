package users

import (
	"context"

	"github.com/dmitrijs2005/heritagewatch/internal/server/models"
)

type Repository interface {
	Create(ctx context.Context, user *models.User) (*models.User, error)
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
}
