package widget_test

import (
	"testing"
	"time"

	"fyne.io/fyne/v2/test"
	"fyne.io/fyne/v2/widget"
	"github.com/stretchr/testify/assert"

	iwidget "github.com/ErikKalkoken/emuprefs/internal/widget"
)

func TestSnackbar(t *testing.T) {
	test.NewTempApp(t)
	t.Run("can start and stop", func(t *testing.T) {
		w := test.NewWindow(widget.NewLabel(""))
		defer w.Close()
		sb := iwidget.NewSnackbar(w)
		sb.Start()
		assert.True(t, sb.IsRunning())
		sb.Show("Dummy")
		sb.Notify("Alpha", "Bravo", 10*time.Millisecond)
		sb.Stop()
		assert.False(t, sb.IsRunning())
	})
	t.Run("stopping a snackbar twice is a no-op", func(t *testing.T) {
		w := test.NewWindow(widget.NewLabel(""))
		defer w.Close()
		sb := iwidget.NewSnackbar(w)
		sb.Start()
		sb.Stop()
		sb.Stop()
		assert.False(t, sb.IsRunning())
	})
	t.Run("should not block when queue is full", func(t *testing.T) {
		w := test.NewWindow(widget.NewLabel(""))
		defer w.Close()
		sb := iwidget.NewSnackbar(w)
		for range 100 {
			sb.Show("Dummy")
		}
	})
}
