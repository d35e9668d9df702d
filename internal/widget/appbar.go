package widget

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
)

const colorBarBackground = theme.ColorNameMenuBackground

// An AppBar displays a title and actions at the top of a page.
type AppBar struct {
	widget.BaseWidget

	bg       *canvas.Rectangle
	body     fyne.CanvasObject
	subtitle *widget.Label
	title    *widget.Label
	trailing *fyne.Container
}

// NewAppBar returns a new AppBar with a title and a body.
// It can also have one or several trailing widgets.
func NewAppBar(title string, body fyne.CanvasObject, trailing ...fyne.CanvasObject) *AppBar {
	t2 := container.New(layout.NewCustomPaddedHBoxLayout(theme.IconInlineSize()))
	if len(trailing) > 0 {
		for _, x := range trailing {
			t2.Add(x)
		}
	} else {
		t2.Hide()
	}
	w := &AppBar{
		body:     body,
		trailing: t2,
	}
	w.ExtendBaseWidget(w)
	w.bg = canvas.NewRectangle(theme.Color(colorBarBackground))
	w.bg.SetMinSize(fyne.NewSize(10, 45))
	w.title = widget.NewLabel(title)
	w.title.SizeName = theme.SizeNameSubHeadingText
	w.title.Truncation = fyne.TextTruncateEllipsis
	w.subtitle = widget.NewLabel("")
	w.subtitle.SizeName = theme.SizeNameCaptionText
	w.subtitle.Hide()
	return w
}

func (w *AppBar) SetTitle(text string) {
	w.title.SetText(text)
}

func (w *AppBar) Title() string {
	return w.title.Text
}

// SetSubtitle sets the text shown below the title. An empty text hides the subtitle.
func (w *AppBar) SetSubtitle(text string) {
	w.subtitle.SetText(text)
	if text == "" {
		w.subtitle.Hide()
	} else {
		w.subtitle.Show()
	}
}

func (w *AppBar) Refresh() {
	th := w.Theme()
	v := fyne.CurrentApp().Settings().ThemeVariant()
	w.bg.FillColor = th.Color(colorBarBackground, v)
	w.bg.Refresh()
	w.title.Refresh()
	w.subtitle.Refresh()
	w.body.Refresh()
	w.trailing.Refresh()
	w.BaseWidget.Refresh()
}

func (w *AppBar) CreateRenderer() fyne.WidgetRenderer {
	p := theme.Padding()
	right := container.New(layout.NewCustomPaddedLayout(0, 0, 0, p), w.trailing)
	row := container.NewBorder(
		nil,
		nil,
		nil,
		container.NewVBox(layout.NewSpacer(), right, layout.NewSpacer()),
		container.New(layout.NewCustomPaddedVBoxLayout(0), w.title, w.subtitle),
	)
	top := container.New(
		layout.NewCustomPaddedLayout(-p, -2*p, -p, -p),
		container.NewStack(w.bg, container.NewPadded(row)),
	)
	main := container.New(layout.NewCustomPaddedLayout(2*p, p, 0, 0), w.body)
	c := container.NewBorder(top, nil, nil, nil, main)
	return widget.NewSimpleRenderer(c)
}
