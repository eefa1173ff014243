package services

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/dmitrijs2005/vibetracker/internal/client/client"
	"github.com/dmitrijs2005/vibetracker/internal/client/models"
	"github.com/dmitrijs2005/vibetracker/internal/common"
)

var (
	ErrMoodRequired = errors.New("Please select a mood")
	ErrGoalRequired = errors.New("Please enter a goal")
	ErrNoSuchItem   = errors.New("no item at that position")
	ErrLoadVibes    = errors.New("Failed to load vibes")
	ErrLoadGoals    = errors.New("Failed to load goals")
)

// ConflictError is returned when a goal changed on the server since it was
// loaded. Nothing is applied locally; a reload picks up the new state.
type ConflictError struct {
	Cause error
}

func (e *ConflictError) Error() string {
	return "goal was changed elsewhere, run reload and try again"
}

func (e *ConflictError) Unwrap() error {
	return e.Cause
}

// Board is the client's in-memory copy of both lists. Every mutation goes
// to the server first; local state only changes once the server confirms,
// so a failed call leaves the lists exactly as they were. Errors are kept
// per section (common.SectionVibes, common.SectionGoals) until the next
// success in that section.
//
// Board is safe for concurrent use. No lock is held during network calls.
type Board struct {
	client client.Client

	mu    sync.RWMutex
	vibes []*models.Vibe
	goals []*models.Goal
	errs  map[string]error
}

func NewBoard(c client.Client) *Board {
	return &Board{
		client: c,
		vibes:  []*models.Vibe{},
		goals:  []*models.Goal{},
		errs:   map[string]error{},
	}
}

// Load fetches both lists independently. A failing section keeps its
// previous contents and records a load error; the other section still
// refreshes.
func (b *Board) Load(ctx context.Context) error {
	vibes, verr := b.client.ListVibes(ctx)
	goals, gerr := b.client.ListGoals(ctx)

	b.mu.Lock()
	defer b.mu.Unlock()

	if verr != nil {
		verr = fmt.Errorf("%w: %w", ErrLoadVibes, verr)
		b.errs[common.SectionVibes] = verr
	} else {
		b.vibes = nonNil(vibes)
		delete(b.errs, common.SectionVibes)
	}

	if gerr != nil {
		gerr = fmt.Errorf("%w: %w", ErrLoadGoals, gerr)
		b.errs[common.SectionGoals] = gerr
	} else {
		b.goals = nonNil(goals)
		delete(b.errs, common.SectionGoals)
	}

	return errors.Join(verr, gerr)
}

func nonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}

// Vibes returns a copy of the vibe list, newest first.
func (b *Board) Vibes() []*models.Vibe {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return append([]*models.Vibe(nil), b.vibes...)
}

// Goals returns a copy of the goal list, newest first.
func (b *Board) Goals() []*models.Goal {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return append([]*models.Goal(nil), b.goals...)
}

// Err returns the last unresolved error of a section, or nil.
func (b *Board) Err(section string) error {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.errs[section]
}

func (b *Board) fail(section string, err error) error {
	b.mu.Lock()
	b.errs[section] = err
	b.mu.Unlock()
	return err
}

// VibeAt resolves a 1-based list position.
func (b *Board) VibeAt(pos int) (*models.Vibe, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	if pos < 1 || pos > len(b.vibes) {
		return nil, ErrNoSuchItem
	}
	return b.vibes[pos-1], nil
}

// GoalAt resolves a 1-based list position.
func (b *Board) GoalAt(pos int) (*models.Goal, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	if pos < 1 || pos > len(b.goals) {
		return nil, ErrNoSuchItem
	}
	return b.goals[pos-1], nil
}

// AddVibe creates a vibe and prepends the server's record. An empty mood
// fails locally without a request.
func (b *Board) AddVibe(ctx context.Context, mood string, note *string) (*models.Vibe, error) {
	if mood == "" {
		return nil, b.fail(common.SectionVibes, ErrMoodRequired)
	}

	v, err := b.client.CreateVibe(ctx, mood, note)
	if err != nil {
		return nil, b.fail(common.SectionVibes, err)
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	b.vibes = append([]*models.Vibe{v}, b.vibes...)
	delete(b.errs, common.SectionVibes)
	return v, nil
}

func (b *Board) DeleteVibe(ctx context.Context, id string) error {
	if err := b.client.DeleteVibe(ctx, id); err != nil {
		return b.fail(common.SectionVibes, err)
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	b.vibes = removeByID(b.vibes, id, func(v *models.Vibe) string { return v.ID })
	delete(b.errs, common.SectionVibes)
	return nil
}

// AddGoal creates a goal and prepends the server's record. An empty text
// fails locally without a request.
func (b *Board) AddGoal(ctx context.Context, text string) (*models.Goal, error) {
	if text == "" {
		return nil, b.fail(common.SectionGoals, ErrGoalRequired)
	}

	g, err := b.client.CreateGoal(ctx, text)
	if err != nil {
		return nil, b.fail(common.SectionGoals, err)
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	b.goals = append([]*models.Goal{g}, b.goals...)
	delete(b.errs, common.SectionGoals)
	return g, nil
}

// SetGoalCompleted sends the new flag together with the revision the board
// last saw for that goal, then replaces the goal in place with the server's
// record. A stale revision yields *ConflictError.
func (b *Board) SetGoalCompleted(ctx context.Context, id string, completed bool) (*models.Goal, error) {
	var revision *int64
	b.mu.RLock()
	for _, g := range b.goals {
		if g.ID == id && g.Revision > 0 {
			r := g.Revision
			revision = &r
			break
		}
	}
	b.mu.RUnlock()

	updated, err := b.client.UpdateGoal(ctx, id, completed, revision)
	if err != nil {
		if client.IsConflict(err) {
			err = &ConflictError{Cause: err}
		}
		return nil, b.fail(common.SectionGoals, err)
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	for i, g := range b.goals {
		if g.ID == updated.ID {
			b.goals[i] = updated
			break
		}
	}
	delete(b.errs, common.SectionGoals)
	return updated, nil
}

func (b *Board) DeleteGoal(ctx context.Context, id string) error {
	if err := b.client.DeleteGoal(ctx, id); err != nil {
		return b.fail(common.SectionGoals, err)
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	b.goals = removeByID(b.goals, id, func(g *models.Goal) string { return g.ID })
	delete(b.errs, common.SectionGoals)
	return nil
}

// Export asks the server for a snapshot. It does not touch the lists.
func (b *Board) Export(ctx context.Context) (*client.ExportResult, error) {
	return b.client.Export(ctx)
}

func removeByID[T any](items []T, id string, key func(T) string) []T {
	out := make([]T, 0, len(items))
	for _, it := range items {
		if key(it) != id {
			out = append(out, it)
		}
	}
	return out
}
