package ui

import (
	"fmt"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
	kxwidget "github.com/ErikKalkoken/fyne-kx/widget"
)

type settingAction struct {
	Label  string
	Action func()
}

func makeIconButtonFromActions(actions []settingAction) *kxwidget.IconButton {
	items := make([]*fyne.MenuItem, 0)
	for _, a := range actions {
		items = append(items, fyne.NewMenuItem(a.Label, a.Action))
	}
	return kxwidget.NewIconButtonWithMenu(
		theme.MoreHorizontalIcon(),
		fyne.NewMenu("", items...),
	)
}

type settingVariant uint

const (
	settingUndefined settingVariant = iota
	settingCustom
	settingHeading
	settingSeparator
	settingSwitch
)

// SettingItem represents an item in a setting list.
type SettingItem struct {
	Hint      string             // optional hint text
	Label     string             // label
	Getter    func() any         // returns the current value for this setting
	Setter    func(v any)        // sets the value for this setting
	Formatter func(v any) string // func to format the value

	onSelected func(it SettingItem, refresh func()) // action called when selected
	variant    settingVariant                       // the setting variant of this item
}

// NewSettingItemHeading creates a heading in a setting list.
func NewSettingItemHeading(label string) SettingItem {
	return SettingItem{Label: label, variant: settingHeading}
}

// NewSettingItemSeparator creates a separator in a setting list.
func NewSettingItemSeparator() SettingItem {
	return SettingItem{variant: settingSeparator}
}

type SettingItemSwitch struct {
	getter    func() bool
	hint      string
	label     string
	onChanged func(bool)
}

// NewSettingItemSwitch creates a switch setting in a setting list.
func NewSettingItemSwitch(arg SettingItemSwitch) SettingItem {
	return SettingItem{
		Label: arg.label,
		Hint:  arg.hint,
		Getter: func() any {
			return arg.getter()
		},
		Setter: func(v any) {
			arg.onChanged(v.(bool))
		},
		onSelected: func(it SettingItem, refresh func()) {
			it.Setter(!it.Getter().(bool))
			refresh()
		},
		variant: settingSwitch,
	}
}

type SettingItemCustom struct {
	label      string
	hint       string
	getter     func() any
	formatter  func(v any) string
	onSelected func(it SettingItem, refresh func())
}

// NewSettingItemCustom creates a custom setting in a setting list.
func NewSettingItemCustom(arg SettingItemCustom) SettingItem {
	return SettingItem{
		Label:      arg.label,
		Hint:       arg.hint,
		Getter:     arg.getter,
		Formatter:  arg.formatter,
		onSelected: arg.onSelected,
		variant:    settingCustom,
	}
}

// SettingList is a custom list widget for settings.
type SettingList struct {
	widget.List

	SelectDelay time.Duration

	items []SettingItem
}

// NewSettingList returns a new SettingList widget.
func NewSettingList(items []SettingItem) *SettingList {
	w := &SettingList{SelectDelay: 200 * time.Millisecond, items: items}
	w.Length = func() int {
		return len(w.items)
	}
	w.CreateItem = func() fyne.CanvasObject {
		label := widget.NewLabel("Template")
		label.Truncation = fyne.TextTruncateClip
		hint := widget.NewLabel("")
		hint.Wrapping = fyne.TextWrapWord
		hint.SizeName = theme.SizeNameCaptionText
		c := container.NewPadded(container.NewBorder(
			nil,
			container.New(layout.NewCustomPaddedLayout(0, 0, 0, 0), widget.NewSeparator()),
			nil,
			container.NewVBox(layout.NewSpacer(), container.NewStack(kxwidget.NewSwitch(nil), widget.NewLabel("")), layout.NewSpacer()),
			container.New(layout.NewCustomPaddedVBoxLayout(0), layout.NewSpacer(), label, hint, layout.NewSpacer()),
		))
		return c
	}
	w.UpdateItem = func(id widget.ListItemID, co fyne.CanvasObject) {
		if id >= len(w.items) {
			return
		}
		it := w.items[id]
		border := co.(*fyne.Container).Objects[0].(*fyne.Container).Objects
		right := border[2].(*fyne.Container).Objects[1].(*fyne.Container).Objects
		sw := right[0].(*kxwidget.Switch)
		value := right[1].(*widget.Label)
		main := border[0].(*fyne.Container).Objects
		hint := main[2].(*widget.Label)
		if it.Hint != "" {
			hint.SetText(it.Hint)
			hint.Show()
		} else {
			hint.Hide()
		}
		label := main[1].(*widget.Label)
		label.Text = it.Label
		label.TextStyle.Bold = false
		switch it.variant {
		case settingHeading:
			label.TextStyle.Bold = true
			value.Hide()
			sw.Hide()
		case settingSwitch:
			value.Hide()
			sw.OnChanged = func(v bool) {
				it.Setter(v)
			}
			sw.On = it.Getter().(bool)
			sw.Show()
			sw.Refresh()
		case settingCustom:
			formatter := it.Formatter
			if formatter == nil {
				formatter = func(v any) string {
					if v == nil {
						return ""
					}
					return fmt.Sprint(v)
				}
			}
			var v any
			if it.Getter != nil {
				v = it.Getter()
			}
			value.SetText(formatter(v))
			value.Show()
			sw.Hide()
		}
		sep := border[1].(*fyne.Container)
		if it.variant == settingSeparator {
			sep.Show()
			value.Hide()
			sw.Hide()
			label.Hide()
		} else {
			sep.Hide()
			label.Show()
			label.Refresh()
		}
		w.SetItemHeight(id, co.(*fyne.Container).MinSize().Height)
	}
	w.OnSelected = func(id widget.ListItemID) {
		if id >= len(w.items) {
			w.UnselectAll()
			return
		}
		it := w.items[id]
		if it.onSelected == nil {
			w.UnselectAll()
			return
		}
		it.onSelected(it, func() {
			w.RefreshItem(id)
		})
		go func() {
			time.Sleep(w.SelectDelay)
			fyne.Do(func() {
				w.UnselectAll()
			})
		}()
	}
	w.HideSeparators = true
	w.ExtendBaseWidget(w)
	return w
}

// SetItems replaces the items of the list.
func (w *SettingList) SetItems(items []SettingItem) {
	w.items = items
	w.Refresh()
}
