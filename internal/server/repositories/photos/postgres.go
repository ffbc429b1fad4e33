package photos

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

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

// Page returns photo ids, newest capture first.
func (r *PostgresRepository) Page(ctx context.Context, offset, limit int) ([]string, error) {
	query :=
		`SELECT id FROM photos
		 ORDER BY captured_at DESC, id
		 OFFSET $1 LIMIT $2
		 `

	rows, err := r.db.QueryContext(ctx, query, offset, limit)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	ids := make([]string, 0, limit)
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return ids, nil
}

func (r *PostgresRepository) Get(ctx context.Context, id string) (*models.Photo, error) {
	query :=
		`SELECT id, account_id, account_name, title, caption, location, captured_at, likes, comments, views
		 FROM photos
		 WHERE id = $1
		 `

	p := &models.Photo{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(&p.ID, &p.AccountID, &p.AccountName, &p.Title,
		&p.Caption, &p.Location, &p.CapturedAt, &p.Likes, &p.Comments, &p.Views)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return p, nil
}

func (r *PostgresRepository) AddTranslation(ctx context.Context, t *models.Translation) (*models.Translation, error) {
	query :=
		`INSERT INTO translations (photo_id, language, caption)
		 VALUES ($1, $2, $3)
		 RETURNING id, created_at
		 `

	if err := r.db.QueryRowContext(ctx, query, t.PhotoID, t.Language, t.Caption).Scan(&t.ID, &t.CreatedAt); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return t, nil
}
