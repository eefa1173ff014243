package client

import (
	"context"

	"github.com/dmitrijs2005/vibetracker/internal/client/models"
)

// ExportResult locates a snapshot written by the server.
type ExportResult struct {
	Key string `json:"key"`
	URL string `json:"url"`
}

type Client interface {
	Ping(ctx context.Context) error

	ListVibes(ctx context.Context) ([]*models.Vibe, error)
	CreateVibe(ctx context.Context, mood string, note *string) (*models.Vibe, error)
	DeleteVibe(ctx context.Context, id string) error

	ListGoals(ctx context.Context) ([]*models.Goal, error)
	CreateGoal(ctx context.Context, text string) (*models.Goal, error)
	UpdateGoal(ctx context.Context, id string, completed bool, revision *int64) (*models.Goal, error)
	DeleteGoal(ctx context.Context, id string) error

	Export(ctx context.Context) (*ExportResult, error)
}
