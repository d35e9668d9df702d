package ui

import (
	"log/slog"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"
	kxdialog "github.com/ErikKalkoken/fyne-kx/dialog"
	kxmodal "github.com/ErikKalkoken/fyne-kx/modal"

	"github.com/ErikKalkoken/emuprefs/internal/app"
	"github.com/ErikKalkoken/emuprefs/internal/app/bulkaction"
)

// newConfirmDialog returns a new custom confirm dialog.
func newConfirmDialog(title, message, confirm string, callback func(bool), parent fyne.Window) *dialog.ConfirmDialog {
	d := dialog.NewConfirm(title, message, callback, parent)
	d.SetConfirmImportance(widget.DangerImportance)
	d.SetConfirmText(confirm)
	d.SetDismissText("Cancel")
	kxdialog.AddDialogKeyHandler(d, parent)
	return d
}

// newErrorDialog returns a new custom error dialog.
func newErrorDialog(title, message string, parent fyne.Window) dialog.Dialog {
	text := widget.NewLabel(message)
	text.Wrapping = fyne.TextWrapWord
	text.Importance = widget.DangerImportance
	x := container.NewVScroll(text)
	x.SetMinSize(fyne.Size{Width: 400, Height: 100})
	d := dialog.NewCustom(title, "OK", x, parent)
	kxdialog.AddDialogKeyHandler(d, parent)
	return d
}

// showTaskProgress shows a modal with a progress indicator until a bulk task is done.
// Results are reported by the caller.
func showTaskProgress(t *bulkaction.Task, parent fyne.Window) {
	m := kxmodal.NewProgressInfinite(
		"Please wait",
		app.Titler.String(t.Kind.String())+"...",
		func() error {
			_, err := t.Wait()
			return err
		},
		parent,
	)
	m.OnError = func(err error) {
		slog.Warn("Bulk task failed", "kind", t.Kind, "error", err)
	}
	m.Start()
}

// windowPresenter presents the dialogs of the confirmation gate on a window.
type windowPresenter struct {
	w fyne.Window
}

func (p windowPresenter) ShowConfirm(title, message, confirm string, callback func(bool)) {
	newConfirmDialog(title, message, confirm, callback, p.w).Show()
}

func (p windowPresenter) ShowError(title, message string) {
	newErrorDialog(title, message, p.w).Show()
}
