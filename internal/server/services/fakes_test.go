package services

import (
	"context"
	"database/sql"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/dmitrijs2005/vibetracker/internal/dbx"
	"github.com/dmitrijs2005/vibetracker/internal/server/models"
	"github.com/dmitrijs2005/vibetracker/internal/server/repositories/goals"
	"github.com/dmitrijs2005/vibetracker/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/vibetracker/internal/server/repositories/vibes"
	"github.com/stretchr/testify/require"
)

// -------- test fakes --------

type fakeVibesRepo struct {
	vibes.Repository

	listed  []*models.Vibe
	listErr error

	createErr error
	created   []*models.Vibe

	deleteErr error
	deleted   []string
}

func (f *fakeVibesRepo) List(ctx context.Context) ([]*models.Vibe, error) {
	return f.listed, f.listErr
}

func (f *fakeVibesRepo) Create(ctx context.Context, v *models.Vibe) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.created = append(f.created, v)
	return nil
}

func (f *fakeVibesRepo) DeleteByID(ctx context.Context, id string) error {
	f.deleted = append(f.deleted, id)
	return f.deleteErr
}

type fakeGoalsRepo struct {
	goals.Repository

	listed  []*models.Goal
	listErr error

	createErr error
	created   []*models.Goal

	current   *models.Goal
	getErr    error
	lockCalls int

	updated   *models.Goal
	updateErr error
	setCalls  []bool

	deleteErr error
	deleted   []string
}

func (f *fakeGoalsRepo) List(ctx context.Context) ([]*models.Goal, error) {
	return f.listed, f.listErr
}

func (f *fakeGoalsRepo) Create(ctx context.Context, g *models.Goal) error {
	if f.createErr != nil {
		return f.createErr
	}
	g.Revision = 1
	f.created = append(f.created, g)
	return nil
}

func (f *fakeGoalsRepo) GetForUpdate(ctx context.Context, id string) (*models.Goal, error) {
	f.lockCalls++
	return f.current, f.getErr
}

func (f *fakeGoalsRepo) SetCompleted(ctx context.Context, id string, completed bool) (*models.Goal, error) {
	f.setCalls = append(f.setCalls, completed)
	if f.updateErr != nil {
		return nil, f.updateErr
	}
	return f.updated, nil
}

func (f *fakeGoalsRepo) DeleteByID(ctx context.Context, id string) error {
	f.deleted = append(f.deleted, id)
	return f.deleteErr
}

type fakeRepoManager struct {
	repomanager.RepositoryManager
	v *fakeVibesRepo
	g *fakeGoalsRepo
}

func (m *fakeRepoManager) Vibes(db dbx.DBTX) vibes.Repository { return m.v }
func (m *fakeRepoManager) Goals(db dbx.DBTX) goals.Repository { return m.g }

// -------- helpers --------

func newSQLMockDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db, mock
}

func ptr[T any](v T) *T { return &v }
