package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/vibetracker/internal/common"
)

// Moods offered by addvibe. Free text is accepted as well.
var Moods = []string{"😊 Happy", "😔 Sad", "😠 Angry", "😰 Anxious", "😴 Tired", "😎 Chill"}

func (a *App) ListVibes(ctx context.Context) error {
	if err := a.board.Err(common.SectionVibes); err != nil {
		printlnFn("!", err.Error())
	}

	items := a.board.Vibes()
	if len(items) == 0 {
		printlnFn("No vibes logged yet.")
		return nil
	}
	for i, v := range items {
		printlnFn(fmt.Sprintf("%d. %s", i+1, v.Line()))
	}
	return nil
}

// AddVibe takes the mood from args when given, otherwise offers the mood
// menu. The note is always asked for; an empty answer sends no note.
func (a *App) AddVibe(ctx context.Context, args []string) error {
	mood := strings.Join(args, " ")
	if mood == "" {
		var err error
		if mood, err = GetChoice(a.reader, "How are you feeling today?", Moods, a.out); err != nil {
			return err
		}
	}

	noteText, err := GetSimpleText(a.reader, "Add a note (optional)", a.out)
	if err != nil {
		return err
	}
	var note *string
	if noteText != "" {
		note = &noteText
	}

	v, err := a.board.AddVibe(ctx, mood, note)
	if err != nil {
		return err
	}
	printlnFn("Logged:", v.Line())
	return nil
}

func (a *App) DeleteVibe(ctx context.Context, args []string) error {
	pos, err := GetPosition(args, a.reader, "Vibe number to delete", a.out)
	if err != nil {
		return err
	}
	v, err := a.board.VibeAt(pos)
	if err != nil {
		return err
	}
	if err := a.board.DeleteVibe(ctx, v.ID); err != nil {
		return err
	}
	printlnFn("Vibe deleted")
	return nil
}

func (a *App) ListGoals(ctx context.Context) error {
	if err := a.board.Err(common.SectionGoals); err != nil {
		printlnFn("!", err.Error())
	}

	items := a.board.Goals()
	if len(items) == 0 {
		printlnFn("No goals yet.")
		return nil
	}
	for i, g := range items {
		printlnFn(fmt.Sprintf("%d. %s", i+1, g.Line()))
	}
	return nil
}

func (a *App) AddGoal(ctx context.Context, args []string) error {
	text := strings.Join(args, " ")
	if text == "" {
		var err error
		if text, err = GetSimpleText(a.reader, "What do you want to achieve?", a.out); err != nil {
			return err
		}
	}

	g, err := a.board.AddGoal(ctx, text)
	if err != nil {
		return err
	}
	printlnFn("Added:", g.Line())
	return nil
}

// SetDone marks the goal at the given position completed or not.
func (a *App) SetDone(ctx context.Context, args []string, done bool) error {
	pos, err := GetPosition(args, a.reader, "Goal number", a.out)
	if err != nil {
		return err
	}
	g, err := a.board.GoalAt(pos)
	if err != nil {
		return err
	}

	updated, err := a.board.SetGoalCompleted(ctx, g.ID, done)
	if err != nil {
		return err
	}
	printlnFn(updated.Line())
	return nil
}

func (a *App) DeleteGoal(ctx context.Context, args []string) error {
	pos, err := GetPosition(args, a.reader, "Goal number to delete", a.out)
	if err != nil {
		return err
	}
	g, err := a.board.GoalAt(pos)
	if err != nil {
		return err
	}
	if err := a.board.DeleteGoal(ctx, g.ID); err != nil {
		return err
	}
	printlnFn("Goal deleted")
	return nil
}

// Reload replaces both lists with the server's current state.
func (a *App) Reload(ctx context.Context) error {
	if err := a.board.Load(ctx); err != nil {
		return err
	}
	printlnFn(fmt.Sprintf("Loaded %d vibes and %d goals", len(a.board.Vibes()), len(a.board.Goals())))
	return nil
}

func (a *App) Export(ctx context.Context) error {
	res, err := a.board.Export(ctx)
	if err != nil {
		return err
	}
	printlnFn("Exported to", res.Key)
	printlnFn("Download (valid 15 minutes):", res.URL)
	return nil
}
