// Package iconselector implements the selection of alternate app icons.
package iconselector

import (
	"log/slog"
	"time"

	"github.com/ErikKalkoken/emuprefs/internal/app"
)

const notifyDuration = 3 * time.Second

// Platform is the platform API for changing the app icon.
type Platform interface {
	// AlternateIconName returns the asset name of the active alternate icon.
	// Reports false when the default icon is active.
	AlternateIconName() (string, bool)
	// SetAlternateIconName activates an alternate icon. An empty name restores the default icon.
	SetAlternateIconName(name string) error
}

// Notifier shows short notifications to the user.
type Notifier interface {
	Notify(text, detail string, d time.Duration)
}

// Settings is the part of the settings store used by the selector.
type Settings interface {
	AlternateIcon() app.AppIcon
	SetAlternateIcon(icon app.AppIcon)
	ProEnabled() bool
}

// Selector selects the alternate app icon and keeps the platform in sync with it.
type Selector struct {
	notifier Notifier
	platform Platform
	settings Settings
}

// New returns a new selector. A nil notifier disables notifications.
func New(s Settings, p Platform, n Notifier) *Selector {
	x := &Selector{notifier: n, platform: p, settings: s}
	return x
}

// Catalog returns the icons of a category in display order.
func (s *Selector) Catalog(c app.AppIconCategory) []app.AppIcon {
	return app.AppIconsForCategory(c)
}

// Current returns the selected icon.
func (s *Selector) Current() app.AppIcon {
	return s.settings.AlternateIcon()
}

// IsLocked reports whether an icon can not be selected, because it requires pro.
func (s *Selector) IsLocked(icon app.AppIcon) bool {
	return icon.IsPaid() && !s.settings.ProEnabled()
}

// Select makes icon the new app icon and reports whether it was selected.
// Paid icons can only be selected when pro is enabled.
func (s *Selector) Select(icon app.AppIcon) bool {
	if s.IsLocked(icon) {
		slog.Info("App icon requires pro", "icon", icon.ID)
		if s.notifier != nil {
			s.notifier.Notify("Pro is required to use this icon", "", notifyDuration)
		}
		return false
	}
	s.settings.SetAlternateIcon(icon)
	s.UpdateAppIcon()
	return true
}

// UpdateAppIcon updates the platform icon to match the selected icon.
// The platform is only called when its icon differs from the selected one.
func (s *Selector) UpdateAppIcon() {
	current, hasCurrent := s.platform.AlternateIconName()
	icon := s.settings.AlternateIcon()
	var name string
	if icon.IsDefault() {
		if !hasCurrent {
			return
		}
	} else {
		if hasCurrent && current == icon.AssetName {
			return
		}
		name = icon.AssetName
	}
	if err := s.platform.SetAlternateIconName(name); err != nil {
		slog.Error("Failed to change app icon", "icon", icon.ID, "error", err)
		return
	}
	slog.Info("App icon changed", "icon", icon.ID)
}
