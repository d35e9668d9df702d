// Package bulkaction implements destructive actions which apply to the whole game collection.
//
// Actions run in the background. A failure for one game does not stop the action
// and is counted in the report.
package bulkaction

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/ErikKalkoken/emuprefs/internal/app"
	"github.com/ErikKalkoken/emuprefs/internal/app/storage"
	"github.com/ErikKalkoken/emuprefs/internal/humanize"
	"github.com/ErikKalkoken/emuprefs/internal/singleinstance"
)

// ErrAlreadyRunning is returned for an action which is already in flight.
var ErrAlreadyRunning = errors.New("action already running")

// Kind identifies a bulk action.
type Kind uint

const (
	ClearAutoSaveStates Kind = iota
	ResetAllArtwork
)

func (k Kind) String() string {
	switch k {
	case ClearAutoSaveStates:
		return "clear auto save states"
	case ResetAllArtwork:
		return "reset all artwork"
	}
	return "?"
}

// Report summarizes the outcome of a bulk action.
type Report struct {
	Games     int // number of games in the collection
	Processed int // number of games processed without failure
	Deleted   int // number of deleted save states
	Changed   int // number of games with changed artwork
	Failed    int // number of games which failed
	Duration  time.Duration
}

// Summary returns a user friendly summary of the report.
func (r Report) Summary(k Kind) string {
	var s string
	switch k {
	case ClearAutoSaveStates:
		s = fmt.Sprintf("Deleted %s from %s", humanize.Count(r.Deleted, "auto save state"), humanize.Count(r.Games, "game"))
	case ResetAllArtwork:
		s = fmt.Sprintf("Reset artwork for %s", humanize.Count(r.Changed, "game"))
	default:
		s = fmt.Sprintf("Processed %s", humanize.Count(r.Processed, "game"))
	}
	if r.Failed > 0 {
		s += fmt.Sprintf(", %s failed", humanize.Count(r.Failed, "game"))
	}
	return s
}

// Coordinator runs bulk actions against the game collection.
type Coordinator struct {
	sfg *singleinstance.Group
	st  *storage.Storage
}

// New returns a new coordinator.
func New(st *storage.Storage) *Coordinator {
	c := &Coordinator{
		sfg: singleinstance.NewGroup(),
		st:  st,
	}
	return c
}

// IsRunning reports whether an action of this kind is currently in flight.
func (c *Coordinator) IsRunning(k Kind) bool {
	return c.sfg.IsRunning(k.String())
}

// Run executes an action and returns its report.
// Returns [ErrAlreadyRunning] when the same action is already in flight.
func (c *Coordinator) Run(ctx context.Context, k Kind) (Report, error) {
	release, ok := c.sfg.Acquire(k.String())
	if !ok {
		return Report{}, ErrAlreadyRunning
	}
	defer release()
	return c.run(ctx, k)
}

func (c *Coordinator) run(ctx context.Context, k Kind) (Report, error) {
	start := time.Now()
	var r Report
	var err error
	switch k {
	case ClearAutoSaveStates:
		r, err = c.ClearAutoSaveStates(ctx)
	case ResetAllArtwork:
		r, err = c.ResetAllArtwork(ctx)
	default:
		return Report{}, fmt.Errorf("bulk action %d: %w", k, app.ErrInvalid)
	}
	r.Duration = time.Since(start)
	if err != nil {
		slog.Error("Bulk action failed", "action", k, "error", err)
		return r, err
	}
	slog.Info("Bulk action completed", "action", k, "games", r.Games, "failed", r.Failed, "duration", r.Duration)
	return r, nil
}

// Start runs an action in the background and returns its task.
// Starting an action which is already in flight returns a completed task
// with [ErrAlreadyRunning].
func (c *Coordinator) Start(k Kind) *Task {
	t := newTask(k)
	release, ok := c.sfg.Acquire(k.String())
	if !ok {
		slog.Warn("Bulk action already running", "action", k)
		t.finish(Report{}, ErrAlreadyRunning)
		return t
	}
	go func() {
		r, err := c.run(context.Background(), k)
		// the key must be free once Done is closed
		release()
		t.finish(r, err)
	}()
	return t
}

// ClearAutoSaveStates deletes all auto save states of all games.
//
// Each game is processed in its own unit of work.
// A failure for a game leaves that game unchanged.
func (c *Coordinator) ClearAutoSaveStates(ctx context.Context) (Report, error) {
	games, err := c.st.ListGames(ctx)
	if err != nil {
		return Report{}, fmt.Errorf("clear auto save states: %w", err)
	}
	r := Report{Games: len(games)}
	for _, g := range games {
		n, err := c.clearAutoSaveStatesForGame(ctx, g)
		if err != nil {
			slog.Error("Failed to clear auto save states", "gameID", g.ID, "game", g.Name, "error", err)
			r.Failed++
			continue
		}
		r.Processed++
		r.Deleted += n
	}
	return r, nil
}

func (c *Coordinator) clearAutoSaveStatesForGame(ctx context.Context, g *app.Game) (int, error) {
	states, err := c.st.ListSaveStatesForGame(ctx, g.ID, app.SaveStateAuto)
	if err != nil {
		return 0, err
	}
	if len(states) == 0 {
		return 0, nil
	}
	u, err := c.st.Begin(ctx)
	if err != nil {
		return 0, err
	}
	defer u.Rollback()
	for _, s := range states {
		if err := u.DeleteSaveState(s.ID); err != nil {
			return 0, err
		}
	}
	if err := u.Commit(); err != nil {
		return 0, err
	}
	slog.Debug("Cleared auto save states", "gameID", g.ID, "count", len(states))
	return len(states), nil
}

// ResetAllArtwork restores the artwork of all games to the artwork of the games database.
//
// All games are processed in one unit of work.
// A failure for a game skips that game and the other games are still updated.
func (c *Coordinator) ResetAllArtwork(ctx context.Context) (Report, error) {
	games, err := c.st.ListGames(ctx)
	if err != nil {
		return Report{}, fmt.Errorf("reset all artwork: %w", err)
	}
	r := Report{Games: len(games)}
	u, err := c.st.Begin(ctx)
	if err != nil {
		return r, fmt.Errorf("reset all artwork: %w", err)
	}
	defer u.Rollback()
	for _, g := range games {
		changed, err := u.ResetArtwork(g)
		if err != nil {
			slog.Error("Failed to reset artwork", "gameID", g.ID, "game", g.Name, "error", err)
			r.Failed++
			continue
		}
		r.Processed++
		if changed {
			r.Changed++
		}
	}
	if err := u.Commit(); err != nil {
		return r, fmt.Errorf("reset all artwork: %w", err)
	}
	return r, nil
}
