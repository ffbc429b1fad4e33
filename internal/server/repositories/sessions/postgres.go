package sessions

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/heritagewatch/internal/common"
	"github.com/dmitrijs2005/heritagewatch/internal/dbx"
	"github.com/dmitrijs2005/heritagewatch/internal/server/models"
)

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Create(ctx context.Context, userID string, expires time.Time) (*models.Session, error) {
	query :=
		`INSERT INTO sessions (user_id, expires_at)
		 VALUES ($1, $2)
		 RETURNING id, created_at
		 `

	s := &models.Session{UserID: userID, Expires: expires}
	if err := r.db.QueryRowContext(ctx, query, userID, expires).Scan(&s.ID, &s.CreatedAt); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return s, nil
}

func (r *PostgresRepository) Find(ctx context.Context, id string) (*models.Session, error) {
	query :=
		`SELECT id, user_id, expires_at, created_at FROM sessions
		 WHERE id = $1
		 `

	s := &models.Session{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(&s.ID, &s.UserID, &s.Expires, &s.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return s, nil
}

// Delete removes the session only if it belongs to userID.
func (r *PostgresRepository) Delete(ctx context.Context, userID, id string) error {
	query := `DELETE FROM sessions WHERE id = $1 AND user_id = $2`

	res, err := r.db.ExecContext(ctx, query, id, userID)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	if n == 0 {
		return common.ErrorNotFound
	}
	return nil
}

func (r *PostgresRepository) DeleteExpired(ctx context.Context, now time.Time) (int64, error) {
	res, err := r.db.ExecContext(ctx, `DELETE FROM sessions WHERE expires_at <= $1`, now)
	if err != nil {
		return 0, fmt.Errorf("db error: %w", err)
	}
	return res.RowsAffected()
}
