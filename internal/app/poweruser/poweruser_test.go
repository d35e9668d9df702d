package poweruser_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ErikKalkoken/emuprefs/internal/app"
	"github.com/ErikKalkoken/emuprefs/internal/app/bulkaction"
	"github.com/ErikKalkoken/emuprefs/internal/app/poweruser"
	"github.com/ErikKalkoken/emuprefs/internal/app/settings"
	"github.com/ErikKalkoken/emuprefs/internal/app/settings/settingstest"
	"github.com/ErikKalkoken/emuprefs/internal/app/storage"
	"github.com/ErikKalkoken/emuprefs/internal/app/storage/testutil"
)

type dialog struct {
	title, message, confirm string
}

// fakePresenter answers every confirmation with answer.
type fakePresenter struct {
	answer   bool
	confirms []dialog
	errors   []dialog
}

func (p *fakePresenter) ShowConfirm(title, message, confirm string, callback func(bool)) {
	p.confirms = append(p.confirms, dialog{title, message, confirm})
	callback(p.answer)
}

func (p *fakePresenter) ShowError(title, message string) {
	p.errors = append(p.errors, dialog{title: title, message: message})
}

type notification struct {
	text, detail string
}

type fakeNotifier struct {
	mu            sync.Mutex
	notifications []notification
}

func (n *fakeNotifier) Notify(text, detail string, _ time.Duration) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.notifications = append(n.notifications, notification{text, detail})
}

func (n *fakeNotifier) all() []notification {
	n.mu.Lock()
	defer n.mu.Unlock()
	return append([]notification{}, n.notifications...)
}

type fakeClipboard struct {
	content string
}

func (c *fakeClipboard) SetContent(s string) {
	c.content = s
}

type fakeIcons struct {
	calls int
}

func (x *fakeIcons) UpdateAppIcon() {
	x.calls++
}

func TestGate(t *testing.T) {
	t.Run("should run action after confirmation", func(t *testing.T) {
		// given
		s := settings.New(settingstest.NewPreferences())
		p := &fakePresenter{answer: true}
		g := poweruser.NewGate(s, func() poweruser.Presenter { return p })
		var states []poweruser.State
		g.OnResolved = func(_ poweruser.Action, st poweruser.State) {
			states = append(states, st)
		}
		var runs int
		// when
		err := g.Request(poweruser.Action{Title: "Title", Message: "Message", Run: func() { runs++ }})
		// then
		require.NoError(t, err)
		assert.Equal(t, 1, runs)
		assert.Equal(t, []dialog{{"Title", "Message", "Confirm"}}, p.confirms)
		assert.Equal(t, []poweruser.State{poweruser.Applied}, states)
	})
	t.Run("should not run action when cancelled", func(t *testing.T) {
		s := settings.New(settingstest.NewPreferences())
		p := &fakePresenter{answer: false}
		g := poweruser.NewGate(s, func() poweruser.Presenter { return p })
		var states []poweruser.State
		g.OnResolved = func(_ poweruser.Action, st poweruser.State) {
			states = append(states, st)
		}
		var runs int
		err := g.Request(poweruser.Action{Title: "Title", Run: func() { runs++ }})
		require.NoError(t, err)
		assert.Equal(t, 0, runs)
		assert.Equal(t, []poweruser.State{poweruser.Cancelled}, states)
	})
	t.Run("should do nothing when there is no surface", func(t *testing.T) {
		s := settings.New(settingstest.NewPreferences())
		s.SetPowerUserEnabled(true)
		g := poweruser.NewGate(s, func() poweruser.Presenter { return nil })
		var runs int
		err := g.Request(poweruser.Action{Run: func() { runs++ }})
		assert.ErrorIs(t, err, poweruser.ErrNoSurface)
		assert.Equal(t, 0, runs)
	})
	t.Run("should reject gated action when power user tools are disabled", func(t *testing.T) {
		// given
		s := settings.New(settingstest.NewPreferences())
		p := &fakePresenter{answer: true}
		g := poweruser.NewGate(s, func() poweruser.Presenter { return p })
		var states []poweruser.State
		g.OnResolved = func(_ poweruser.Action, st poweruser.State) {
			states = append(states, st)
		}
		var runs int
		// when
		err := g.Request(poweruser.Action{RequiresPowerUser: true, Run: func() { runs++ }})
		// then
		assert.ErrorIs(t, err, poweruser.ErrPowerUserDisabled)
		assert.Equal(t, 0, runs)
		assert.Empty(t, p.confirms)
		assert.Equal(t, []dialog{{
			title:   "Error",
			message: "You must enable Power User Tools via the toggle on the previous page to use these options.",
		}}, p.errors)
		assert.Equal(t, []poweruser.State{poweruser.Rejected}, states)
	})
	t.Run("should run gated action when power user tools are enabled", func(t *testing.T) {
		s := settings.New(settingstest.NewPreferences())
		s.SetPowerUserEnabled(true)
		p := &fakePresenter{answer: true}
		g := poweruser.NewGate(s, func() poweruser.Presenter { return p })
		var runs int
		err := g.Request(poweruser.Action{RequiresPowerUser: true, ConfirmText: "Delete", Run: func() { runs++ }})
		require.NoError(t, err)
		assert.Equal(t, 1, runs)
		assert.Equal(t, "Delete", p.confirms[0].confirm)
	})
}

func TestStateString(t *testing.T) {
	assert.Equal(t, "applied", poweruser.Applied.String())
	assert.Equal(t, "rejected", poweruser.Rejected.String())
}

type env struct {
	actions   *poweruser.Actions
	clipboard *fakeClipboard
	gate      *poweruser.Gate
	icons     *fakeIcons
	notifier  *fakeNotifier
	presenter *fakePresenter
	prefs     settingstest.Preferences
	settings  *settings.Settings
	tasks     chan *bulkaction.Task
}

func newEnv(st *storage.Storage) env {
	e := env{
		clipboard: &fakeClipboard{},
		icons:     &fakeIcons{},
		notifier:  &fakeNotifier{},
		presenter: &fakePresenter{answer: true},
		prefs:     settingstest.NewPreferences(),
		tasks:     make(chan *bulkaction.Task, 10),
	}
	e.settings = settings.New(e.prefs)
	e.gate = poweruser.NewGate(e.settings, func() poweruser.Presenter { return e.presenter })
	e.actions = poweruser.NewActions(poweruser.ActionsParams{
		Bulk:      bulkaction.New(st),
		Clipboard: e.clipboard,
		Icons:     e.icons,
		Notifier:  e.notifier,
		Settings:  e.settings,
		Sync:      st,
	})
	e.actions.OnTaskStarted = func(t *bulkaction.Task) {
		e.tasks <- t
	}
	return e
}

func TestCopySyncToken(t *testing.T) {
	db, st, factory := testutil.NewDBInMemory()
	defer db.Close()
	t.Run("should copy token of google drive account", func(t *testing.T) {
		// given
		testutil.TruncateTables(db)
		acc := factory.CreateSyncAccount()
		e := newEnv(st)
		e.settings.SetPowerUserEnabled(true)
		// when
		err := e.gate.Request(e.actions.CopySyncToken())
		// then
		require.NoError(t, err)
		assert.Equal(t, acc.RefreshToken, e.clipboard.content)
		assert.Equal(t, []notification{{
			"Successfully copied token",
			"Paste it in a safe place, and only use it with applications and services you trust.",
		}}, e.notifier.all())
	})
	t.Run("should report when sync is disabled", func(t *testing.T) {
		testutil.TruncateTables(db)
		e := newEnv(st)
		e.settings.SetPowerUserEnabled(true)
		err := e.gate.Request(e.actions.CopySyncToken())
		require.NoError(t, err)
		assert.Equal(t, "", e.clipboard.content)
		assert.Equal(t, []notification{{
			"Failed to copy token",
			"You must enable Sync and use the Google Drive service.",
		}}, e.notifier.all())
	})
	t.Run("should report when google drive account has no token", func(t *testing.T) {
		testutil.TruncateTables(db)
		err := st.UpdateOrCreateSyncAccount(context.Background(), storage.UpdateOrCreateSyncAccountParams{
			Service: app.SyncServiceGoogleDrive,
		})
		require.NoError(t, err)
		e := newEnv(st)
		e.settings.SetPowerUserEnabled(true)
		err = e.gate.Request(e.actions.CopySyncToken())
		require.NoError(t, err)
		assert.Equal(t, "", e.clipboard.content)
		assert.Equal(t, []notification{{
			"Failed to copy token",
			"You must sign in to the Google Drive service with Sync.",
		}}, e.notifier.all())
	})
	t.Run("should report when service is not supported", func(t *testing.T) {
		testutil.TruncateTables(db)
		factory.CreateSyncAccount(storage.UpdateOrCreateSyncAccountParams{Service: app.SyncServiceDropbox})
		e := newEnv(st)
		e.settings.SetPowerUserEnabled(true)
		err := e.gate.Request(e.actions.CopySyncToken())
		require.NoError(t, err)
		assert.Equal(t, "", e.clipboard.content)
		assert.Equal(t, []notification{{
			"Failed to copy token",
			"You must use the Google Drive service with Sync. The Dropbox service is not supported.",
		}}, e.notifier.all())
	})
}

func TestBulkActions(t *testing.T) {
	db, st, factory := testutil.NewDBInMemory()
	defer db.Close()
	ctx := context.Background()
	t.Run("should clear auto save states after confirmation", func(t *testing.T) {
		// given
		testutil.TruncateTables(db)
		factory.CreateSaveState(storage.CreateSaveStateParams{Type: app.SaveStateAuto})
		factory.CreateSaveState(storage.CreateSaveStateParams{Type: app.SaveStateQuick})
		e := newEnv(st)
		e.settings.SetPowerUserEnabled(true)
		// when
		err := e.gate.Request(e.actions.ClearAutoSaveStates())
		// then
		require.NoError(t, err)
		task := <-e.tasks
		_, err = task.Wait()
		require.NoError(t, err)
		n, err := st.CountSaveStates(ctx, app.SaveStateAuto)
		require.NoError(t, err)
		assert.Equal(t, 0, n)
		n, err = st.CountSaveStates(ctx, app.SaveStateQuick)
		require.NoError(t, err)
		assert.Equal(t, 1, n)
		e.actions.Wait()
		require.Len(t, e.notifier.all(), 1)
		assert.Equal(t, "Auto save states cleared", e.notifier.all()[0].text)
	})
	t.Run("should reset artwork after confirmation", func(t *testing.T) {
		// given
		testutil.TruncateTables(db)
		m := factory.CreateGameMetadata()
		g := factory.CreateGame(storage.CreateGameParams{Identifier: m.Identifier, ArtworkURL: "https://example.com/x.png"})
		e := newEnv(st)
		e.settings.SetPowerUserEnabled(true)
		// when
		err := e.gate.Request(e.actions.ResetAllArtwork())
		// then
		require.NoError(t, err)
		task := <-e.tasks
		_, err = task.Wait()
		require.NoError(t, err)
		g2, err := st.GetGame(ctx, g.ID)
		require.NoError(t, err)
		assert.Equal(t, m.ArtworkURL, g2.ArtworkURL)
		e.actions.Wait()
		assert.Equal(t, []notification{{"Artwork reset", "Reset artwork for 1 game"}}, e.notifier.all())
	})
	t.Run("should leave everything untouched when power user tools are disabled", func(t *testing.T) {
		// given
		testutil.TruncateTables(db)
		factory.CreateSaveState(storage.CreateSaveStateParams{Type: app.SaveStateAuto})
		m := factory.CreateGameMetadata()
		g := factory.CreateGame(storage.CreateGameParams{Identifier: m.Identifier, ArtworkURL: "https://example.com/x.png"})
		factory.CreateSyncAccount()
		e := newEnv(st)
		require.NoError(t, e.settings.SetFloat(app.FeatureGameAudio, "volume", 0.3))
		before := len(e.prefs.Data)
		// when
		for _, a := range []poweruser.Action{
			e.actions.ClearAutoSaveStates(),
			e.actions.ResetAllArtwork(),
			e.actions.CopySyncToken(),
			e.actions.ResetFeature(app.FeatureAll),
		} {
			err := e.gate.Request(a)
			assert.ErrorIs(t, err, poweruser.ErrPowerUserDisabled)
		}
		// then
		assert.Len(t, e.tasks, 0)
		assert.Len(t, e.presenter.errors, 4)
		assert.Empty(t, e.presenter.confirms)
		assert.Equal(t, "", e.clipboard.content)
		assert.Equal(t, before, len(e.prefs.Data))
		assert.Equal(t, 0.3, e.settings.Float(app.FeatureGameAudio, "volume"))
		n, err := st.CountSaveStates(ctx, app.SaveStateAuto)
		require.NoError(t, err)
		assert.Equal(t, 1, n)
		g2, err := st.GetGame(ctx, g.ID)
		require.NoError(t, err)
		assert.Equal(t, "https://example.com/x.png", g2.ArtworkURL)
	})
}

func TestBulkActionFetchFailure(t *testing.T) {
	db, st, _ := testutil.NewDBInMemory()
	e := newEnv(st)
	e.settings.SetPowerUserEnabled(true)
	db.Close()
	err := e.gate.Request(e.actions.ClearAutoSaveStates())
	require.NoError(t, err)
	task := <-e.tasks
	_, err = task.Wait()
	assert.Error(t, err)
	e.actions.Wait()
	assert.Empty(t, e.notifier.all())
}

func TestResetFeature(t *testing.T) {
	db, st, _ := testutil.NewDBInMemory()
	defer db.Close()
	t.Run("should restore defaults of a feature without power user tools", func(t *testing.T) {
		// given
		e := newEnv(st)
		require.NoError(t, e.settings.SetFloat(app.FeatureGameAudio, "volume", 0.3))
		require.NoError(t, e.settings.SetBool(app.FeatureGameAudio, "respectSilent", false))
		require.NoError(t, e.settings.SetBool(app.FeatureGameAudio, "playOver", false))
		// when
		err := e.gate.Request(e.actions.ResetFeature(app.FeatureGameAudio))
		// then
		require.NoError(t, err)
		assert.Equal(t, "Restore Defaults?", e.presenter.confirms[0].title)
		assert.Equal(t, 1.0, e.settings.Float(app.FeatureGameAudio, "volume"))
		assert.True(t, e.settings.Bool(app.FeatureGameAudio, "respectSilent"))
		assert.True(t, e.settings.Bool(app.FeatureGameAudio, "playOver"))
		assert.Equal(t, 0, e.icons.calls)
	})
	t.Run("should keep values when cancelled", func(t *testing.T) {
		e := newEnv(st)
		e.presenter.answer = false
		require.NoError(t, e.settings.SetFloat(app.FeatureGameAudio, "volume", 0.3))
		err := e.gate.Request(e.actions.ResetFeature(app.FeatureGameAudio))
		require.NoError(t, err)
		assert.Equal(t, 0.3, e.settings.Float(app.FeatureGameAudio, "volume"))
	})
	t.Run("should update app icon when resetting the app icon", func(t *testing.T) {
		e := newEnv(st)
		err := e.gate.Request(e.actions.ResetFeature(app.FeatureAppIcon))
		require.NoError(t, err)
		assert.Equal(t, 1, e.icons.calls)
	})
	t.Run("should update app icon when resetting the theme color", func(t *testing.T) {
		e := newEnv(st)
		err := e.gate.Request(e.actions.ResetFeature(app.FeatureThemeColor))
		require.NoError(t, err)
		assert.Equal(t, 1, e.icons.calls)
	})
	t.Run("should reset all features", func(t *testing.T) {
		// given
		e := newEnv(st)
		e.settings.SetPowerUserEnabled(true)
		var got []app.Feature
		e.settings.Changed.AddListener(func(_ context.Context, f app.Feature) {
			got = append(got, f)
		})
		// when
		err := e.gate.Request(e.actions.ResetFeature(app.FeatureAll))
		// then
		require.NoError(t, err)
		assert.Equal(t, "Reset All Feature Settings?", e.presenter.confirms[0].title)
		assert.Equal(t, app.Features(), got)
		for _, f := range app.Features() {
			assert.Equal(t, settings.Defaults(f), e.settings.Values(f))
		}
		assert.Equal(t, 2, e.icons.calls)
		assert.True(t, e.settings.PowerUserEnabled())
	})
}
