package services

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/dmitrijs2005/vibetracker/internal/server/models"
	"github.com/dmitrijs2005/vibetracker/internal/server/repositories/repomanager"
	"github.com/google/uuid"
)

// CreateVibeInput is the body of POST /api/vibes.
type CreateVibeInput struct {
	Mood string  `json:"mood" validate:"required"`
	Note *string `json:"note"`
}

type VibeService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	newID       func() string
}

func NewVibeService(db *sql.DB, repomanager repomanager.RepositoryManager) *VibeService {
	return &VibeService{
		db:          db,
		repomanager: repomanager,
		newID:       uuid.NewString,
	}
}

// List returns all vibes, most recent first.
func (s *VibeService) List(ctx context.Context) ([]*models.Vibe, error) {
	items, err := s.repomanager.Vibes(s.db).List(ctx)
	if err != nil {
		return nil, fmt.Errorf("error listing vibes: %w", err)
	}
	return items, nil
}

// Create validates in and persists a new vibe with a server-generated ID.
func (s *VibeService) Create(ctx context.Context, in CreateVibeInput) (*models.Vibe, error) {
	if err := validateInput(in); err != nil {
		return nil, err
	}

	vibe := &models.Vibe{
		ID:   s.newID(),
		Mood: in.Mood,
		Note: in.Note,
	}

	if err := s.repomanager.Vibes(s.db).Create(ctx, vibe); err != nil {
		return nil, fmt.Errorf("error creating vibe: %w", err)
	}
	return vibe, nil
}

// Delete removes the vibe with the given id.
func (s *VibeService) Delete(ctx context.Context, id string) error {
	if err := requireID(id, "vibe"); err != nil {
		return err
	}
	if err := knownID(id); err != nil {
		return err
	}

	if err := s.repomanager.Vibes(s.db).DeleteByID(ctx, id); err != nil {
		return fmt.Errorf("error deleting vibe: %w", err)
	}
	return nil
}
