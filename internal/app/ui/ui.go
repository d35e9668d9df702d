// Package ui implements the desktop user interface for the emulator settings.
package ui

import (
	"context"
	"log/slog"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	fynetooltip "github.com/dweymouth/fyne-tooltip"

	"github.com/ErikKalkoken/emuprefs/internal/app"
	"github.com/ErikKalkoken/emuprefs/internal/app/bulkaction"
	"github.com/ErikKalkoken/emuprefs/internal/app/iconselector"
	"github.com/ErikKalkoken/emuprefs/internal/app/poweruser"
	"github.com/ErikKalkoken/emuprefs/internal/app/settings"
	iwidget "github.com/ErikKalkoken/emuprefs/internal/widget"
)

const appName = "Emulator Settings"

// UI is the desktop UI.
type UI struct {
	actions  *poweruser.Actions
	app      fyne.App
	gate     *poweruser.Gate
	icons    *iconselector.Selector
	platform *iconselector.StoredPlatform
	settings *settings.Settings
	snackbar *iwidget.Snackbar
	window   fyne.Window

	advanced *advancedPage
	appIcons *appIconPage
	features *featuresPage
}

type Params struct {
	App      fyne.App
	Bulk     poweruser.BulkStarter
	Platform *iconselector.StoredPlatform
	Settings *settings.Settings
	Sync     poweruser.SyncAccountGetter
}

// New returns a new UI. Call ShowAndRun to run it.
func New(arg Params) *UI {
	u := &UI{
		app:      arg.App,
		platform: arg.Platform,
		settings: arg.Settings,
	}
	u.window = u.app.NewWindow(appName)
	u.snackbar = iwidget.NewSnackbar(u.window)
	u.platform.OnChanged = func(icon app.AppIcon) {
		u.app.SetIcon(appIconResource(icon))
	}
	u.icons = iconselector.New(u.settings, u.platform, u.snackbar)
	u.gate = poweruser.NewGate(u.settings, u.presenter)
	u.actions = poweruser.NewActions(poweruser.ActionsParams{
		Bulk:      arg.Bulk,
		Clipboard: u.app.Clipboard(),
		Icons:     u.icons,
		Notifier:  u.snackbar,
		Settings:  u.settings,
		Sync:      arg.Sync,
	})
	u.actions.OnTaskStarted = func(t *bulkaction.Task) {
		showTaskProgress(t, u.window)
	}

	u.advanced = newAdvancedPage(u)
	u.features = newFeaturesPage(u)
	u.appIcons = newAppIconPage(u)
	u.settings.Changed.AddListener(func(_ context.Context, f app.Feature) {
		fyne.Do(func() {
			u.features.update()
			if f.AffectsAppIcon() {
				u.appIcons.update()
			}
		})
	})

	tabs := container.NewAppTabs(
		container.NewTabItem("Advanced", u.advanced),
		container.NewTabItem("Features", u.features),
		container.NewTabItem("App Icon", u.appIcons),
	)
	tabs.SetTabLocation(container.TabLocationLeading)
	tabs.OnSelected = func(_ *container.TabItem) {
		u.advanced.update()
		u.features.update()
		u.appIcons.update()
	}
	u.window.SetContent(fynetooltip.AddWindowToolTipLayer(tabs, u.window.Canvas()))
	u.window.Resize(fyne.NewSize(800, 600))
	u.window.SetMaster()
	u.window.SetCloseIntercept(func() {
		u.snackbar.Stop()
		fynetooltip.DestroyWindowToolTipLayer(u.window.Canvas())
		u.window.Close()
	})
	u.app.SetIcon(appIconResource(u.platform.Icon()))
	return u
}

// presenter returns the presenter for the main window or nil when the window is not available.
func (u *UI) presenter() poweruser.Presenter {
	if u.window == nil {
		return nil
	}
	return windowPresenter{w: u.window}
}

// request asks the user to confirm an action.
func (u *UI) request(a poweruser.Action) {
	if err := u.gate.Request(a); err != nil {
		slog.Info("Action not applied", "title", a.Title, "error", err)
	}
}

// ShowAndRun shows the main window and runs the app. This method blocks.
func (u *UI) ShowAndRun() {
	u.app.Lifecycle().SetOnStarted(func() {
		slog.Info("App started")
		u.snackbar.Start()
		// Bring platform icon in line with the settings.
		u.icons.UpdateAppIcon()
	})
	u.app.Lifecycle().SetOnStopped(func() {
		slog.Info("App shut down complete")
	})
	u.window.ShowAndRun()
}
