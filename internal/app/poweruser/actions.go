package poweruser

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/ErikKalkoken/emuprefs/internal/app"
	"github.com/ErikKalkoken/emuprefs/internal/app/bulkaction"
	"github.com/ErikKalkoken/emuprefs/internal/humanize"
)

const notifyDuration = 5 * time.Second

// Notifier shows short notifications to the user.
type Notifier interface {
	Notify(text, detail string, d time.Duration)
}

// Clipboard receives copied text.
type Clipboard interface {
	SetContent(content string)
}

// SyncAccountGetter returns the current sync account.
// It returns [app.ErrNotFound] when sync is not enabled.
type SyncAccountGetter interface {
	GetSyncAccount(ctx context.Context) (*app.SyncAccount, error)
}

// BulkStarter starts bulk actions in the background.
type BulkStarter interface {
	Start(k bulkaction.Kind) *bulkaction.Task
}

// IconUpdater syncs the platform icon with the settings.
type IconUpdater interface {
	UpdateAppIcon()
}

// FeatureResetter resets features to their defaults.
type FeatureResetter interface {
	Reset(f app.Feature)
}

// Actions creates the power user actions.
type Actions struct {
	// OnTaskStarted is called after a bulk action was started. Optional.
	OnTaskStarted func(t *bulkaction.Task)

	bulk      BulkStarter
	clipboard Clipboard
	icons     IconUpdater
	notifier  Notifier
	pending   sync.WaitGroup
	settings  FeatureResetter
	sync      SyncAccountGetter
}

type ActionsParams struct {
	Bulk      BulkStarter
	Clipboard Clipboard
	Icons     IconUpdater
	Notifier  Notifier
	Settings  FeatureResetter
	Sync      SyncAccountGetter
}

func NewActions(arg ActionsParams) *Actions {
	a := &Actions{
		bulk:      arg.Bulk,
		clipboard: arg.Clipboard,
		icons:     arg.Icons,
		notifier:  arg.Notifier,
		settings:  arg.Settings,
		sync:      arg.Sync,
	}
	return a
}

func (a *Actions) notify(text, detail string) {
	if a.notifier == nil {
		slog.Info("Notification", "text", text, "detail", detail)
		return
	}
	a.notifier.Notify(text, detail, notifyDuration)
}

// CopySyncToken returns the action for copying the refresh token of the sync account to the clipboard.
func (a *Actions) CopySyncToken() Action {
	return Action{
		Title:             "Copy Refresh Token?",
		Message:           "This token will allow other applications and services to access the files in your Google Drive Sync backup, including games, saves, states, skins, and cheats. Do not give it away to anyone, and only use it if you trust the application that you use it with.",
		RequiresPowerUser: true,
		Run:               a.copySyncToken,
	}
}

func (a *Actions) copySyncToken() {
	acc, err := a.sync.GetSyncAccount(context.Background())
	if errors.Is(err, app.ErrNotFound) {
		a.notify("Failed to copy token", "You must enable Sync and use the Google Drive service.")
		return
	}
	if err != nil {
		slog.Error("Failed to fetch sync account", "error", err)
		a.notify("Failed to copy token", humanize.Error(err))
		return
	}
	if acc.Service != app.SyncServiceGoogleDrive {
		a.notify("Failed to copy token", "You must use the Google Drive service with Sync. The Dropbox service is not supported.")
		return
	}
	if acc.RefreshToken == "" {
		a.notify("Failed to copy token", "You must sign in to the Google Drive service with Sync.")
		return
	}
	a.clipboard.SetContent(acc.RefreshToken)
	a.notify("Successfully copied token", "Paste it in a safe place, and only use it with applications and services you trust.")
}

// ClearAutoSaveStates returns the action for deleting the auto save states of all games.
func (a *Actions) ClearAutoSaveStates() Action {
	return Action{
		Title:             "⚠️ Clear States? ⚠️",
		Message:           "This will delete all auto save states from every game. The auto-load save states feature relies on these auto save states to resume your game where you left off. Deleting them can be useful to reduce the size of your Sync backup.",
		RequiresPowerUser: true,
		Run: func() {
			a.startBulk(bulkaction.ClearAutoSaveStates, "Auto save states cleared")
		},
	}
}

// ResetAllArtwork returns the action for resetting the artwork of all games.
func (a *Actions) ResetAllArtwork() Action {
	return Action{
		Title:             "⚠️ Reset Artwork? ⚠️",
		Message:           "This will reset the artwork for every game to the one provided by the games database. Do not proceed if you do not have backup of your custom artworks.",
		RequiresPowerUser: true,
		Run: func() {
			a.startBulk(bulkaction.ResetAllArtwork, "Artwork reset")
		},
	}
}

func (a *Actions) startBulk(k bulkaction.Kind, successText string) {
	t := a.bulk.Start(k)
	if a.OnTaskStarted != nil {
		a.OnTaskStarted(t)
	}
	a.pending.Add(1)
	go func() {
		defer a.pending.Done()
		r, err := t.Wait()
		if errors.Is(err, bulkaction.ErrAlreadyRunning) {
			a.notify("Please wait", "This action is already running.")
			return
		}
		if err != nil {
			return // logged by the coordinator
		}
		a.notify(successText, r.Summary(k))
	}()
}

// Wait blocks until all started bulk actions have completed and their outcome was reported.
func (a *Actions) Wait() {
	a.pending.Wait()
}

// ResetFeature returns the action for restoring the default settings of a feature.
// Resetting [app.FeatureAll] resets every feature and requires the power user tools.
func (a *Actions) ResetFeature(f app.Feature) Action {
	if f.IsSentinel() {
		return Action{
			Title:             "Reset All Feature Settings?",
			Message:           "This cannot be undone, please only do so if you are absolutely sure your issue cannot be solved by resetting an individual feature, or want to return to a stock experience.",
			RequiresPowerUser: true,
			Run: func() {
				for _, x := range app.Features() {
					a.resetFeature(x)
				}
			},
		}
	}
	return Action{
		Title: "Restore Defaults?",
		Run: func() {
			a.resetFeature(f)
		},
	}
}

func (a *Actions) resetFeature(f app.Feature) {
	a.settings.Reset(f)
	if f.AffectsAppIcon() && a.icons != nil {
		a.icons.UpdateAppIcon()
	}
}
