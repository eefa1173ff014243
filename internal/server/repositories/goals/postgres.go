// Package goals provides the PostgreSQL-backed repository for goals.
package goals

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/vibetracker/internal/common"
	"github.com/dmitrijs2005/vibetracker/internal/dbx"
	"github.com/dmitrijs2005/vibetracker/internal/server/models"
)

// PostgresRepository implements goal storage over a dbx.DBTX (*sql.DB or *sql.Tx).
type PostgresRepository struct {
	db dbx.DBTX
}

// NewPostgresRepository constructs a repository bound to the given DBTX.
func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// Create inserts goal using its pre-assigned ID and Text. Completed,
// Revision and CreatedAt come back from the column defaults.
func (r *PostgresRepository) Create(ctx context.Context, goal *models.Goal) error {
	query := `
		INSERT INTO goals (id, text)
		VALUES ($1, $2)
		RETURNING completed, revision, created_at
	`
	err := r.db.QueryRowContext(ctx, query, goal.ID, goal.Text).
		Scan(&goal.Completed, &goal.Revision, &goal.CreatedAt)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

// List returns every goal, newest first.
func (r *PostgresRepository) List(ctx context.Context) ([]*models.Goal, error) {
	query := `SELECT id, text, completed, revision, created_at FROM goals
		ORDER BY created_at DESC, id DESC`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to select goals: %w", err)
	}
	defer rows.Close()

	result := make([]*models.Goal, 0)
	for rows.Next() {
		var item models.Goal
		if err := rows.Scan(&item.ID, &item.Text, &item.Completed, &item.Revision, &item.CreatedAt); err != nil {
			return nil, err
		}
		result = append(result, &item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *PostgresRepository) GetForUpdate(ctx context.Context, id string) (*models.Goal, error) {
	query := `SELECT id, text, completed, revision, created_at FROM goals
		WHERE id = $1 FOR UPDATE`

	return scanOne(r.db.QueryRowContext(ctx, query, id))
}

// SetCompleted stores the new completion flag and bumps the revision.
func (r *PostgresRepository) SetCompleted(ctx context.Context, id string, completed bool) (*models.Goal, error) {
	query := `
		UPDATE goals SET completed = $2, revision = revision + 1
		WHERE id = $1
		RETURNING id, text, completed, revision, created_at
	`
	return scanOne(r.db.QueryRowContext(ctx, query, id, completed))
}

// DeleteByID removes the goal permanently. Returns common.ErrorNotFound when
// no row matched.
func (r *PostgresRepository) DeleteByID(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM goals WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return dbx.ExpectOneRow(res, common.ErrorNotFound)
}

func scanOne(row *sql.Row) (*models.Goal, error) {
	var g models.Goal
	err := row.Scan(&g.ID, &g.Text, &g.Completed, &g.Revision, &g.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, common.ErrorNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return &g, nil
}
