package repomanager

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/dmitrijs2005/heritagewatch/internal/server/migrations"
	"github.com/dmitrijs2005/heritagewatch/internal/server/repositories/photos"
	"github.com/dmitrijs2005/heritagewatch/internal/server/repositories/reports"
	"github.com/dmitrijs2005/heritagewatch/internal/server/repositories/sessions"
	"github.com/dmitrijs2005/heritagewatch/internal/server/repositories/users"
	"github.com/pressly/goose/v3"
)

func newDB(t *testing.T) *sql.DB {
	t.Helper()
	db, _, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New error: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

func TestFactories_ReturnConcreteRepos(t *testing.T) {
	db := newDB(t)
	m := NewPostgresRepositoryManager()

	if _, ok := m.Users(db).(*users.PostgresRepository); !ok {
		t.Fatal("Users() is not a postgres repository")
	}
	if _, ok := m.Sessions(db).(*sessions.PostgresRepository); !ok {
		t.Fatal("Sessions() is not a postgres repository")
	}
	if _, ok := m.Reports(db).(*reports.PostgresRepository); !ok {
		t.Fatal("Reports() is not a postgres repository")
	}
	if _, ok := m.Photos(db).(*photos.PostgresRepository); !ok {
		t.Fatal("Photos() is not a postgres repository")
	}
}

func TestRunMigrations_Success(t *testing.T) {
	db := newDB(t)

	orig := gooseUpContext
	gooseUpContext = func(ctx context.Context, db *sql.DB, dir string, opts ...goose.OptionsFunc) error {
		if dir != "." {
			return errors.New("unexpected dir")
		}
		return nil
	}
	defer func() { gooseUpContext = orig }()

	if err := NewPostgresRepositoryManager().RunMigrations(context.Background(), db); err != nil {
		t.Fatalf("RunMigrations error: %v", err)
	}
}

func TestRunMigrations_Error(t *testing.T) {
	db := newDB(t)

	orig := gooseUpContext
	gooseUpContext = func(ctx context.Context, db *sql.DB, dir string, opts ...goose.OptionsFunc) error {
		return errors.New("boom")
	}
	defer func() { gooseUpContext = orig }()

	if err := NewPostgresRepositoryManager().RunMigrations(context.Background(), db); err == nil || err.Error() != "boom" {
		t.Fatalf("expected boom, got %v", err)
	}
}

func TestMigrationsEmbedded(t *testing.T) {
	for _, name := range []string{"00001_create_users.sql", "00002_create_reports.sql", "00003_create_photos.sql"} {
		if _, err := migrations.Migrations.Open(name); err != nil {
			t.Fatalf("missing migration %s: %v", name, err)
		}
	}
}
