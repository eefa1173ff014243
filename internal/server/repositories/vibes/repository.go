package vibes

import (
	"context"

	"github.com/dmitrijs2005/vibetracker/internal/server/models"
)

type Repository interface {
	Create(ctx context.Context, vibe *models.Vibe) error
	List(ctx context.Context) ([]*models.Vibe, error)
	DeleteByID(ctx context.Context, id string) error
}
