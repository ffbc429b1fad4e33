package photos

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/dmitrijs2005/heritagewatch/internal/common"
	"github.com/dmitrijs2005/heritagewatch/internal/server/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRepoWithMock(t *testing.T) (*PostgresRepository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return NewPostgresRepository(db), mock
}

func TestPage(t *testing.T) {
	repo, mock := newRepoWithMock(t)

	mock.ExpectQuery(`(?s)SELECT\s+id\s+FROM\s+photos.+OFFSET\s+\$1\s+LIMIT\s+\$2`).
		WithArgs(10, 10).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow("p-11").AddRow("p-12"))

	ids, err := repo.Page(context.Background(), 10, 10)
	require.NoError(t, err)
	assert.Equal(t, []string{"p-11", "p-12"}, ids)
}

func TestPage_PastTheEnd(t *testing.T) {
	repo, mock := newRepoWithMock(t)

	mock.ExpectQuery(`FROM\s+photos`).WithArgs(100, 10).WillReturnRows(sqlmock.NewRows([]string{"id"}))

	ids, err := repo.Page(context.Background(), 100, 10)
	require.NoError(t, err)
	assert.NotNil(t, ids)
	assert.Empty(t, ids)
}

func TestGet(t *testing.T) {
	repo, mock := newRepoWithMock(t)
	captured := time.Date(2024, 10, 2, 1, 15, 0, 0, time.UTC)

	mock.ExpectQuery(`(?s)SELECT.+FROM\s+photos\s+WHERE\s+id\s*=\s*\$1`).
		WithArgs("p-1").
		WillReturnRows(sqlmock.NewRows([]string{"id", "account_id", "account_name", "title", "caption", "location", "captured_at", "likes", "comments", "views"}).
			AddRow("p-1", "acc-1", "Linh Tran", "Hue citadel gate", "Cracks", "Hue, Vietnam", captured, 41, 3, 910))

	p, err := repo.Get(context.Background(), "p-1")
	require.NoError(t, err)
	assert.Equal(t, &models.Photo{
		ID: "p-1", AccountID: "acc-1", AccountName: "Linh Tran", Title: "Hue citadel gate",
		Caption: "Cracks", Location: "Hue, Vietnam", CapturedAt: captured, Likes: 41, Comments: 3, Views: 910,
	}, p)
}

func TestGet_NotFound(t *testing.T) {
	repo, mock := newRepoWithMock(t)

	mock.ExpectQuery(`FROM\s+photos`).WithArgs("p-x").WillReturnError(sql.ErrNoRows)

	_, err := repo.Get(context.Background(), "p-x")
	assert.ErrorIs(t, err, common.ErrorNotFound)
}

func TestAddTranslation(t *testing.T) {
	repo, mock := newRepoWithMock(t)

	mock.ExpectQuery(`INSERT\s+INTO\s+translations\s*\(photo_id,\s*language,\s*caption\)`).
		WithArgs("p-1", "fra", "Fissures").
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at"}).AddRow("t-1", time.Now()))

	tr, err := repo.AddTranslation(context.Background(), &models.Translation{PhotoID: "p-1", Language: "fra", Caption: "Fissures"})
	require.NoError(t, err)
	assert.Equal(t, "t-1", tr.ID)
}
