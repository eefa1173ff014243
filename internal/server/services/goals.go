package services

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/dmitrijs2005/vibetracker/internal/common"
	"github.com/dmitrijs2005/vibetracker/internal/dbx"
	"github.com/dmitrijs2005/vibetracker/internal/server/models"
	"github.com/dmitrijs2005/vibetracker/internal/server/repositories/repomanager"
	"github.com/google/uuid"
)

// CreateGoalInput is the body of POST /api/goals.
type CreateGoalInput struct {
	Text string `json:"text" validate:"required"`
}

// UpdateGoalInput is the body of PATCH /api/goals. Revision is optional;
// when set the update only applies if it matches the stored revision.
type UpdateGoalInput struct {
	Completed *bool  `json:"completed" validate:"required"`
	Revision  *int64 `json:"revision" validate:"omitempty,gt=0"`
}

type GoalService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	newID       func() string
}

func NewGoalService(db *sql.DB, repomanager repomanager.RepositoryManager) *GoalService {
	return &GoalService{
		db:          db,
		repomanager: repomanager,
		newID:       uuid.NewString,
	}
}

// List returns all goals, most recent first.
func (s *GoalService) List(ctx context.Context) ([]*models.Goal, error) {
	items, err := s.repomanager.Goals(s.db).List(ctx)
	if err != nil {
		return nil, fmt.Errorf("error listing goals: %w", err)
	}
	return items, nil
}

// Create validates in and persists a new, not yet completed goal.
func (s *GoalService) Create(ctx context.Context, in CreateGoalInput) (*models.Goal, error) {
	if err := validateInput(in); err != nil {
		return nil, err
	}

	goal := &models.Goal{
		ID:   s.newID(),
		Text: in.Text,
	}

	if err := s.repomanager.Goals(s.db).Create(ctx, goal); err != nil {
		return nil, fmt.Errorf("error creating goal: %w", err)
	}
	return goal, nil
}

// SetCompleted stores the completion flag of goal id and returns the updated
// record. Without in.Revision the last writer wins. With it, the row is
// locked and a stale revision yields common.ErrVersionConflict.
func (s *GoalService) SetCompleted(ctx context.Context, id string, in UpdateGoalInput) (*models.Goal, error) {
	if err := requireID(id, "goal"); err != nil {
		return nil, err
	}
	if err := validateInput(in); err != nil {
		return nil, err
	}
	if err := knownID(id); err != nil {
		return nil, err
	}

	if in.Revision == nil {
		goal, err := s.repomanager.Goals(s.db).SetCompleted(ctx, id, *in.Completed)
		if err != nil {
			return nil, fmt.Errorf("error updating goal: %w", err)
		}
		return goal, nil
	}

	var updated *models.Goal
	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := s.repomanager.Goals(tx)

		current, err := repo.GetForUpdate(ctx, id)
		if err != nil {
			return err
		}
		if current.Revision != *in.Revision {
			return common.ErrVersionConflict
		}

		updated, err = repo.SetCompleted(ctx, id, *in.Completed)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("error updating goal: %w", err)
	}
	return updated, nil
}

// Delete removes the goal with the given id.
func (s *GoalService) Delete(ctx context.Context, id string) error {
	if err := requireID(id, "goal"); err != nil {
		return err
	}
	if err := knownID(id); err != nil {
		return err
	}

	if err := s.repomanager.Goals(s.db).DeleteByID(ctx, id); err != nil {
		return fmt.Errorf("error deleting goal: %w", err)
	}
	return nil
}
