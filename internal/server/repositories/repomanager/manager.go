package repomanager

import (
	"context"
	"database/sql"

	"github.com/dmitrijs2005/vibetracker/internal/dbx"
	"github.com/dmitrijs2005/vibetracker/internal/server/repositories/goals"
	"github.com/dmitrijs2005/vibetracker/internal/server/repositories/vibes"
)

type RepositoryManager interface {
	RunMigrations(context.Context, *sql.DB) error
	Vibes(db dbx.DBTX) vibes.Repository
	Goals(db dbx.DBTX) goals.Repository
}
