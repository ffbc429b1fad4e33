package reports

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/dmitrijs2005/heritagewatch/internal/common"
	"github.com/dmitrijs2005/heritagewatch/internal/server/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var reportColumns = []string{"id", "user_id", "place_name", "designation", "latitude", "longitude", "photos", "object_status", "created_at"}

func newRepoWithMock(t *testing.T) (*PostgresRepository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return NewPostgresRepository(db), mock
}

func TestListByUser_IncludesDeleted(t *testing.T) {
	repo, mock := newRepoWithMock(t)
	ts := time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC)

	mock.ExpectQuery(`(?s)SELECT.+FROM\s+reports\s+WHERE\s+user_id\s*=\s*\$1\s+ORDER\s+BY\s+created_at`).
		WithArgs("u-1").
		WillReturnRows(sqlmock.NewRows(reportColumns).
			AddRow("r-1", "u-1", "Hue citadel", "UNESCO", 16.47, 107.58, []byte(`["k1","k2"]`), "active", ts).
			AddRow("r-2", "u-1", "Old bridge", "", 45.1, 7.6, []byte(`[]`), "deleted", ts.Add(time.Hour)))

	got, err := repo.ListByUser(context.Background(), "u-1")
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, []string{"k1", "k2"}, got[0].Photos)
	assert.False(t, got[0].IsDeleted())
	assert.True(t, got[1].IsDeleted())
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestListByUser_Empty(t *testing.T) {
	repo, mock := newRepoWithMock(t)

	mock.ExpectQuery(`FROM\s+reports`).WithArgs("u-1").WillReturnRows(sqlmock.NewRows(reportColumns))

	got, err := repo.ListByUser(context.Background(), "u-1")
	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestListByUser_BadPhotos(t *testing.T) {
	repo, mock := newRepoWithMock(t)

	mock.ExpectQuery(`FROM\s+reports`).WithArgs("u-1").
		WillReturnRows(sqlmock.NewRows(reportColumns).
			AddRow("r-1", "u-1", "x", "", 0.0, 0.0, []byte(`{`), "active", time.Now()))

	_, err := repo.ListByUser(context.Background(), "u-1")
	assert.ErrorContains(t, err, "decode photos of report r-1")
}

func TestCreate_DefaultsStatusAndPhotos(t *testing.T) {
	repo, mock := newRepoWithMock(t)
	created := time.Now()

	mock.ExpectQuery(`INSERT\s+INTO\s+reports`).
		WithArgs("u-1", "Hue citadel", "UNESCO", 16.47, 107.58, []byte(`[]`), common.ObjectStatusActive).
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at"}).AddRow("r-9", created))

	got, err := repo.Create(context.Background(), &models.Report{
		UserID: "u-1", PlaceName: "Hue citadel", Designation: "UNESCO", Latitude: 16.47, Longitude: 107.58,
	})
	require.NoError(t, err)
	assert.Equal(t, "r-9", got.ID)
	assert.Equal(t, common.ObjectStatusActive, got.Status)
	assert.Equal(t, []string{}, got.Photos)
}

func TestSoftDelete(t *testing.T) {
	const q = `(?s)UPDATE\s+reports\s+SET\s+object_status\s*=\s*\$1\s+WHERE\s+id\s*=\s*\$2\s+AND\s+user_id\s*=\s*\$3`

	t.Run("marks deleted", func(t *testing.T) {
		repo, mock := newRepoWithMock(t)
		mock.ExpectExec(q).WithArgs(common.ObjectStatusDeleted, "r-1", "u-1").WillReturnResult(sqlmock.NewResult(0, 1))

		require.NoError(t, repo.SoftDelete(context.Background(), "u-1", "r-1"))
	})

	t.Run("unknown report", func(t *testing.T) {
		repo, mock := newRepoWithMock(t)
		mock.ExpectExec(q).WithArgs(common.ObjectStatusDeleted, "r-x", "u-1").WillReturnResult(sqlmock.NewResult(0, 0))

		assert.ErrorIs(t, repo.SoftDelete(context.Background(), "u-1", "r-x"), common.ErrorNotFound)
	})

	t.Run("db error", func(t *testing.T) {
		repo, mock := newRepoWithMock(t)
		mock.ExpectExec(q).WillReturnError(errors.New("boom"))

		assert.ErrorContains(t, repo.SoftDelete(context.Background(), "u-1", "r-1"), "db error: boom")
	})
}
