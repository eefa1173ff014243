// Package vibes provides the PostgreSQL-backed repository for mood entries.
package vibes

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/vibetracker/internal/common"
	"github.com/dmitrijs2005/vibetracker/internal/dbx"
	"github.com/dmitrijs2005/vibetracker/internal/server/models"
)

// PostgresRepository implements vibe storage over a dbx.DBTX (*sql.DB or *sql.Tx).
type PostgresRepository struct {
	db dbx.DBTX
}

// NewPostgresRepository constructs a repository bound to the given DBTX.
func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// Create inserts vibe using its pre-assigned ID and fills CreatedAt from the
// database clock.
func (r *PostgresRepository) Create(ctx context.Context, vibe *models.Vibe) error {
	query := `
		INSERT INTO vibes (id, mood, note)
		VALUES ($1, $2, $3)
		RETURNING created_at
	`
	err := r.db.QueryRowContext(ctx, query, vibe.ID, vibe.Mood, vibe.Note).Scan(&vibe.CreatedAt)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

// List returns every vibe, newest first.
func (r *PostgresRepository) List(ctx context.Context) ([]*models.Vibe, error) {
	query := `SELECT id, mood, note, created_at FROM vibes
		ORDER BY created_at DESC, id DESC`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to select vibes: %w", err)
	}
	defer rows.Close()

	result := make([]*models.Vibe, 0)
	for rows.Next() {
		var item models.Vibe
		if err := rows.Scan(&item.ID, &item.Mood, &item.Note, &item.CreatedAt); err != nil {
			return nil, err
		}
		result = append(result, &item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

// DeleteByID removes the vibe permanently. Returns common.ErrorNotFound when
// no row matched.
func (r *PostgresRepository) DeleteByID(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM vibes WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return dbx.ExpectOneRow(res, common.ErrorNotFound)
}
