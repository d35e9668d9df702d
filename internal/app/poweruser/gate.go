// Package poweruser implements the destructive power user actions
// and the confirmation gate every action must pass before it is applied.
package poweruser

import (
	"errors"
	"log/slog"
)

var (
	ErrNoSurface         = errors.New("no surface to present on")
	ErrPowerUserDisabled = errors.New("power user tools are disabled")
)

const (
	featureDisabledTitle   = "Error"
	featureDisabledMessage = "You must enable Power User Tools via the toggle on the previous page to use these options."
)

// Presenter presents dialogs to the user.
type Presenter interface {
	// ShowConfirm shows a dialog which asks the user to confirm an action.
	// The callback is called with true when the user confirms and false when the user cancels.
	ShowConfirm(title, message, confirm string, callback func(bool))
	// ShowError shows an error message.
	ShowError(title, message string)
}

// Action is a destructive action which requires confirmation by the user.
type Action struct {
	Title             string
	Message           string
	ConfirmText       string
	RequiresPowerUser bool
	Run               func()
}

// State is the state of a request for an action.
type State uint

const (
	Idle State = iota
	Confirming
	Applied
	Cancelled
	Rejected
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Confirming:
		return "confirming"
	case Applied:
		return "applied"
	case Cancelled:
		return "cancelled"
	case Rejected:
		return "rejected"
	}
	return "?"
}

// PowerUserSettings reports whether the power user tools are enabled.
type PowerUserSettings interface {
	PowerUserEnabled() bool
}

// Gate asks the user to confirm actions before they are run.
type Gate struct {
	// OnResolved is called when a request reached its final state. Optional.
	OnResolved func(a Action, s State)

	settings PowerUserSettings
	surface  func() Presenter
}

// NewGate returns a new gate.
// surface returns the presenter for the currently active window or nil when there is none.
func NewGate(s PowerUserSettings, surface func() Presenter) *Gate {
	g := &Gate{settings: s, surface: surface}
	return g
}

// Request asks the user to confirm an action and runs it when confirmed.
//
// Nothing happens and [ErrNoSurface] is returned when there is nothing to present on.
// When the action requires the power user tools and they are disabled,
// an error is shown to the user and [ErrPowerUserDisabled] is returned.
// Otherwise the action's Run is called exactly once after the user confirmed.
func (g *Gate) Request(a Action) error {
	var p Presenter
	if g.surface != nil {
		p = g.surface()
	}
	if p == nil {
		slog.Warn("No surface for action", "title", a.Title)
		return ErrNoSurface
	}
	if a.RequiresPowerUser && !g.settings.PowerUserEnabled() {
		p.ShowError(featureDisabledTitle, featureDisabledMessage)
		g.resolve(a, Rejected)
		return ErrPowerUserDisabled
	}
	confirm := a.ConfirmText
	if confirm == "" {
		confirm = "Confirm"
	}
	slog.Debug("Action requested", "title", a.Title, "state", Confirming)
	var done bool
	p.ShowConfirm(a.Title, a.Message, confirm, func(confirmed bool) {
		if done {
			return
		}
		done = true
		if !confirmed {
			g.resolve(a, Cancelled)
			return
		}
		if a.Run != nil {
			a.Run()
		}
		g.resolve(a, Applied)
	})
	return nil
}

func (g *Gate) resolve(a Action, s State) {
	slog.Info("Action resolved", "title", a.Title, "state", s)
	if g.OnResolved != nil {
		g.OnResolved(a, s)
	}
}
