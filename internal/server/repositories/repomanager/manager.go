package repomanager

import (
	"context"
	"database/sql"

	"github.com/dmitrijs2005/heritagewatch/internal/dbx"
	"github.com/dmitrijs2005/heritagewatch/internal/server/repositories/photos"
	"github.com/dmitrijs2005/heritagewatch/internal/server/repositories/reports"
	"github.com/dmitrijs2005/heritagewatch/internal/server/repositories/sessions"
	"github.com/dmitrijs2005/heritagewatch/internal/server/repositories/users"
)

type RepositoryManager interface {
	RunMigrations(context.Context, *sql.DB) error
	Users(db dbx.DBTX) users.Repository
	Sessions(db dbx.DBTX) sessions.Repository
	Reports(db dbx.DBTX) reports.Repository
	Photos(db dbx.DBTX) photos.Repository
}
