package ui

import (
	"fmt"
	"log/slog"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
	kxdialog "github.com/ErikKalkoken/fyne-kx/dialog"
	ttwidget "github.com/dweymouth/fyne-tooltip/widget"

	"github.com/ErikKalkoken/emuprefs/internal/app"
	"github.com/ErikKalkoken/emuprefs/internal/humanize"
	iwidget "github.com/ErikKalkoken/emuprefs/internal/widget"
)

// featuresPage lists all features and allows restoring their defaults.
type featuresPage struct {
	widget.BaseWidget

	list *SettingList
	u    *UI
}

func newFeaturesPage(u *UI) *featuresPage {
	a := &featuresPage{u: u}
	a.ExtendBaseWidget(a)
	a.list = NewSettingList(a.makeItems())
	return a
}

func (a *featuresPage) CreateRenderer() fyne.WidgetRenderer {
	reset := settingAction{
		Label: "Reset all features",
		Action: func() {
			a.u.request(a.u.actions.ResetFeature(app.FeatureAll))
		},
	}
	copyAll := settingAction{
		Label: "Copy all settings",
		Action: func() {
			a.copySettings()
		},
	}
	ab := iwidget.NewAppBar("Features", a.list, makeIconButtonFromActions([]settingAction{reset, copyAll}))
	ab.SetSubtitle("Select a feature to see its settings")
	return widget.NewSimpleRenderer(ab)
}

func (a *featuresPage) makeItems() []SettingItem {
	var items []SettingItem
	for _, f := range app.Features() {
		items = append(items, NewSettingItemCustom(SettingItemCustom{
			label: f.DisplayName(),
			hint:  humanize.Count(len(a.u.settings.Values(f)), "option"),
			getter: func() any {
				return a.u.settings.IsDefault(f)
			},
			formatter: func(v any) string {
				if v.(bool) {
					return "Default"
				}
				return "Modified"
			},
			onSelected: func(_ SettingItem, refresh func()) {
				a.showFeatureDialog(f, refresh)
			},
		}))
	}
	return items
}

func (a *featuresPage) showFeatureDialog(f app.Feature, refresh func()) {
	form := widget.NewForm()
	for _, x := range a.u.settings.Values(f) {
		v := widget.NewLabel(fmt.Sprint(x.Value))
		v.Truncation = fyne.TextTruncateEllipsis
		form.Append(x.Option, v)
	}
	var d dialog.Dialog
	restore := ttwidget.NewButtonWithIcon("Restore Defaults", theme.HistoryIcon(), func() {
		d.Hide()
		a.u.request(a.u.actions.ResetFeature(f))
	})
	restore.Importance = widget.DangerImportance
	restore.SetToolTip("Restore the default settings of this feature")
	if a.u.settings.IsDefault(f) {
		restore.Disable()
	}
	closeButton := widget.NewButtonWithIcon("Close", theme.CancelIcon(), func() {
		d.Hide()
	})
	c := container.NewBorder(
		nil,
		container.NewHBox(closeButton, restore),
		nil,
		nil,
		container.NewVScroll(form),
	)
	d = dialog.NewCustomWithoutButtons(f.DisplayName(), c, a.u.window)
	kxdialog.AddDialogKeyHandler(d, a.u.window)
	d.SetOnClosed(refresh)
	d.Resize(fyne.NewSize(500, 400))
	d.Show()
}

func (a *featuresPage) copySettings() {
	data, err := a.u.settings.Dump()
	if err != nil {
		slog.Error("Failed to dump settings", "error", err)
		a.u.snackbar.Show("Failed to copy settings: " + humanize.Error(err))
		return
	}
	a.u.app.Clipboard().SetContent(string(data))
	a.u.snackbar.Show("Settings copied to clipboard")
}

func (a *featuresPage) update() {
	a.list.Refresh()
}
