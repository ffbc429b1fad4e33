// Package reports stores heritage-at-risk reports in PostgreSQL. Photo keys
// are kept in a JSONB column.
package reports

import (
	"context"
	"encoding/json"
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

func (r *PostgresRepository) ListByUser(ctx context.Context, userID string) ([]*models.Report, error) {
	query :=
		`SELECT id, user_id, place_name, designation, latitude, longitude, photos, object_status, created_at
		 FROM reports
		 WHERE user_id = $1
		 ORDER BY created_at, id
		 `

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	result := make([]*models.Report, 0)
	for rows.Next() {
		var (
			rep    models.Report
			photos []byte
		)
		if err := rows.Scan(&rep.ID, &rep.UserID, &rep.PlaceName, &rep.Designation,
			&rep.Latitude, &rep.Longitude, &photos, &rep.Status, &rep.CreatedAt); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		if err := json.Unmarshal(photos, &rep.Photos); err != nil {
			return nil, fmt.Errorf("decode photos of report %s: %w", rep.ID, err)
		}
		result = append(result, &rep)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return result, nil
}

func (r *PostgresRepository) Create(ctx context.Context, report *models.Report) (*models.Report, error) {
	query :=
		`INSERT INTO reports (user_id, place_name, designation, latitude, longitude, photos, object_status)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)
		 RETURNING id, created_at
		 `

	if report.Photos == nil {
		report.Photos = []string{}
	}
	photos, err := json.Marshal(report.Photos)
	if err != nil {
		return nil, err
	}
	if report.Status == "" {
		report.Status = common.ObjectStatusActive
	}

	err = r.db.QueryRowContext(ctx, query, report.UserID, report.PlaceName, report.Designation,
		report.Latitude, report.Longitude, photos, report.Status).Scan(&report.ID, &report.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return report, nil
}

// SoftDelete marks the report deleted. Deleting an already deleted report
// succeeds; a report of another user is reported as not found.
func (r *PostgresRepository) SoftDelete(ctx context.Context, userID, id string) error {
	query :=
		`UPDATE reports SET object_status = $1
		 WHERE id = $2 AND user_id = $3
		 `

	res, err := r.db.ExecContext(ctx, query, common.ObjectStatusDeleted, id, userID)
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
