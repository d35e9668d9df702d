package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/widget"

	"github.com/ErikKalkoken/emuprefs/internal/app"
	iwidget "github.com/ErikKalkoken/emuprefs/internal/widget"
)

// advancedPage shows the power user tools.
type advancedPage struct {
	widget.BaseWidget

	list *SettingList
	u    *UI
}

func newAdvancedPage(u *UI) *advancedPage {
	a := &advancedPage{u: u}
	a.ExtendBaseWidget(a)
	a.list = NewSettingList(a.makeItems())
	return a
}

func (a *advancedPage) CreateRenderer() fyne.WidgetRenderer {
	ab := iwidget.NewAppBar("Advanced", a.list)
	ab.SetSubtitle("Use these tools with caution. They can not be undone.")
	return widget.NewSimpleRenderer(ab)
}

func (a *advancedPage) makeItems() []SettingItem {
	s := a.u.settings
	actions := a.u.actions
	items := []SettingItem{
		NewSettingItemHeading("Options"),
		NewSettingItemSwitch(SettingItemSwitch{
			label:     "Power User Tools",
			hint:      "Enables the tools below. Make sure to backup your data before using them.",
			getter:    s.PowerUserEnabled,
			onChanged: s.SetPowerUserEnabled,
		}),
		NewSettingItemSwitch(SettingItemSwitch{
			label:  "Pro",
			hint:   "Unlocks the pro features, e.g. the game and pro app icons",
			getter: s.ProEnabled,
			onChanged: func(on bool) {
				s.SetProEnabled(on)
				a.u.appIcons.update()
			},
		}),
		NewSettingItemSeparator(),
		NewSettingItemHeading("Power User Tools"),
		NewSettingItemCustom(SettingItemCustom{
			label: "Copy Sync Refresh Token",
			hint:  "Copy the refresh token of your Google Drive Sync account to the clipboard",
			onSelected: func(_ SettingItem, _ func()) {
				a.u.request(actions.CopySyncToken())
			},
		}),
		NewSettingItemCustom(SettingItemCustom{
			label: "Clear Auto Save States",
			hint:  "Delete all auto save states from every game",
			onSelected: func(_ SettingItem, _ func()) {
				a.u.request(actions.ClearAutoSaveStates())
			},
		}),
		NewSettingItemCustom(SettingItemCustom{
			label: "Reset All Album Artwork",
			hint:  "Reset the artwork of every game to the one provided by the games database",
			onSelected: func(_ SettingItem, _ func()) {
				a.u.request(actions.ResetAllArtwork())
			},
		}),
		NewSettingItemCustom(SettingItemCustom{
			label: "Reset All Feature Settings",
			hint:  "Restore the default settings for every feature",
			onSelected: func(_ SettingItem, _ func()) {
				a.u.request(actions.ResetFeature(app.FeatureAll))
			},
		}),
	}
	return items
}

func (a *advancedPage) update() {
	a.list.Refresh()
}
