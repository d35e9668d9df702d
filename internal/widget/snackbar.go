// Package widget contains generic Fyne widgets.
package widget

import (
	"log/slog"
	"sync/atomic"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
)

const (
	shadowWidth            = 8 // from Fyne source
	snackbarQueueSize      = 20
	snackbarTimeoutDefault = 3 * time.Second
)

type snackbarMessage struct {
	text    string        // text of the message
	timeout time.Duration // Duration the snackbar is shown before it disappears on its own
}

// Snackbars show short updates about app processes at the bottom of the screen
// and disappear on their own after a short while.
//
// Snackbars are designed to be created once for each window and then re-used. The can be used concurrently.
//
// When a snackbar receives several texts at the same time, it will queue them and display them one after the other.
// Messages are dropped when the queue is full.
type Snackbar struct {
	isRunning atomic.Bool
	popup     *widget.PopUp
	q         chan snackbarMessage
	stopC     chan struct{}
}

// NewSnackbar returns a new snackbar. Call Start() to activate it.
func NewSnackbar(win fyne.Window) *Snackbar {
	l := widget.NewLabel("")
	l.Alignment = fyne.TextAlignCenter
	sb := &Snackbar{
		popup: widget.NewPopUp(l, win.Canvas()),
		q:     make(chan snackbarMessage, snackbarQueueSize),
		stopC: make(chan struct{}),
	}
	return sb
}

// Show displays a SnackBar with a message and the the default timeout.
func (w *Snackbar) Show(text string) {
	w.ShowWithTimeout(text, snackbarTimeoutDefault)
}

// ShowWithTimeout displays a SnackBar with a message and a custom timeout.
func (w *Snackbar) ShowWithTimeout(text string, timeout time.Duration) {
	select {
	case w.q <- snackbarMessage{text: text, timeout: timeout}:
	default:
		slog.Warn("Snackbar queue full. Message dropped", "text", text)
	}
}

// Notify shows a notification with an optional detail text.
func (w *Snackbar) Notify(text, detail string, timeout time.Duration) {
	if detail != "" {
		text += "\n" + detail
	}
	w.ShowWithTimeout(text, timeout)
}

// IsRunning reports whether the snackbar has been started.
func (w *Snackbar) IsRunning() bool {
	return w.isRunning.Load()
}

// Start starts the SnackBar so it can display messages.
// Start should be called after the Fyne app is started.
func (w *Snackbar) Start() {
	isRunning := !w.isRunning.CompareAndSwap(false, true)
	if isRunning {
		slog.Warn("Snackbar already running")
		return
	}
	go func() {
		for {
			select {
			case <-w.stopC:
				slog.Debug("Snackbar stopped")
				return
			case m := <-w.q:
				fyne.Do(func() {
					w.update(m.text)
					w.popup.Show()
				})
				select {
				case <-w.stopC:
					fyne.Do(w.popup.Hide)
					return
				case <-time.After(m.timeout):
				}
				fyne.Do(w.popup.Hide)
			}
		}
	}()
	slog.Debug("Snackbar started")
}

// Stop stops the snackbar. A stopped snackbar can not be started again.
func (w *Snackbar) Stop() {
	if !w.isRunning.CompareAndSwap(true, false) {
		return
	}
	close(w.stopC)
}

func (w *Snackbar) update(text string) {
	w.popup.Content.(*widget.Label).SetText(text)
	_, canvasSize := w.popup.Canvas.InteractiveArea()
	outerSize := w.popup.Content.MinSize().Add(fyne.NewSquareSize(
		theme.Size(theme.SizeNameInnerPadding) + shadowWidth,
	))
	w.popup.Move(fyne.NewPos(
		canvasSize.Width/2-(outerSize.Width)/2,
		canvasSize.Height-outerSize.Height-0.2*outerSize.Height,
	))
}
