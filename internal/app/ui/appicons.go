package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/ErikKalkoken/emuprefs/internal/app"
	iwidget "github.com/ErikKalkoken/emuprefs/internal/widget"
)

const appIconSize = 48

type appIconEntry struct {
	heading string
	icon    app.AppIcon
}

func (e appIconEntry) isHeading() bool {
	return e.heading != ""
}

// appIconPage allows the user to choose an alternate app icon.
type appIconPage struct {
	widget.BaseWidget

	entries []appIconEntry
	list    *widget.List
	u       *UI
}

func newAppIconPage(u *UI) *appIconPage {
	a := &appIconPage{u: u}
	a.ExtendBaseWidget(a)
	for _, c := range app.AppIconCategories() {
		a.entries = append(a.entries, appIconEntry{heading: c.String()})
		for _, icon := range u.icons.Catalog(c) {
			a.entries = append(a.entries, appIconEntry{icon: icon})
		}
	}
	a.list = a.makeList()
	return a
}

func (a *appIconPage) CreateRenderer() fyne.WidgetRenderer {
	ab := iwidget.NewAppBar("App Icon", a.list)
	ab.SetSubtitle("Choose an alternate app icon")
	return widget.NewSimpleRenderer(ab)
}

func (a *appIconPage) makeList() *widget.List {
	l := widget.NewList(
		func() int {
			return len(a.entries)
		},
		func() fyne.CanvasObject {
			image := canvas.NewImageFromResource(theme.BrokenImageIcon())
			image.FillMode = canvas.ImageFillContain
			image.SetMinSize(fyne.NewSquareSize(appIconSize))
			name := widget.NewLabel("Template")
			name.Truncation = fyne.TextTruncateEllipsis
			author := widget.NewLabel("by Template")
			author.SizeName = theme.SizeNameCaptionText
			pro := widget.NewLabel("Pro")
			pro.Importance = widget.HighImportance
			check := widget.NewIcon(theme.ConfirmIcon())
			return container.NewBorder(
				nil,
				nil,
				image,
				container.NewHBox(pro, check),
				container.New(layout.NewCustomPaddedVBoxLayout(0), layout.NewSpacer(), name, author, layout.NewSpacer()),
			)
		},
		func(id widget.ListItemID, co fyne.CanvasObject) {
			if id >= len(a.entries) {
				return
			}
			e := a.entries[id]
			border := co.(*fyne.Container).Objects
			main := border[0].(*fyne.Container).Objects
			name := main[1].(*widget.Label)
			author := main[2].(*widget.Label)
			image := border[1].(*canvas.Image)
			right := border[2].(*fyne.Container).Objects
			pro := right[0].(*widget.Label)
			check := right[1].(*widget.Icon)
			if e.isHeading() {
				name.Text = e.heading
				name.TextStyle.Bold = true
				name.Refresh()
				author.Hide()
				image.Hide()
				pro.Hide()
				check.Hide()
				return
			}
			name.Text = e.icon.Name
			name.TextStyle.Bold = false
			name.Refresh()
			author.SetText("by " + e.icon.Author)
			author.Show()
			image.Resource = appIconResource(e.icon)
			image.Refresh()
			image.Show()
			if e.icon.IsPaid() {
				pro.Show()
			} else {
				pro.Hide()
			}
			if a.u.icons.Current() == e.icon {
				check.Show()
			} else {
				check.Hide()
			}
		},
	)
	l.OnSelected = func(id widget.ListItemID) {
		defer l.UnselectAll()
		if id >= len(a.entries) {
			return
		}
		e := a.entries[id]
		if e.isHeading() {
			return
		}
		if a.u.icons.Select(e.icon) {
			a.u.snackbar.Show("App icon changed to " + e.icon.Name)
		}
		l.Refresh()
	}
	return l
}

func (a *appIconPage) update() {
	a.list.Refresh()
}
