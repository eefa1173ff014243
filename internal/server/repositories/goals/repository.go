package goals

import (
	"context"

	"github.com/dmitrijs2005/vibetracker/internal/server/models"
)

type Repository interface {
	Create(ctx context.Context, goal *models.Goal) error
	List(ctx context.Context) ([]*models.Goal, error)
	// GetForUpdate reads the goal and, inside a transaction, locks its row.
	GetForUpdate(ctx context.Context, id string) (*models.Goal, error)
	SetCompleted(ctx context.Context, id string, completed bool) (*models.Goal, error)
	DeleteByID(ctx context.Context, id string) error
}
