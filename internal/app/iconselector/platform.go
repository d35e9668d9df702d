package iconselector

import (
	"fmt"

	"github.com/ErikKalkoken/emuprefs/internal/app"
)

const platformIconKey = "platform.alternateIconName"

// PlatformPreferences is the subset of fyne.Preferences used by [StoredPlatform].
type PlatformPreferences interface {
	StringWithFallback(key string, fallback string) string
	SetString(key string, value string)
	RemoveValue(key string)
}

// StoredPlatform is a platform which keeps the name of the active alternate icon in the preferences.
// Desktop systems have no concept of alternate icons, so this is used instead.
type StoredPlatform struct {
	// OnChanged is called after the active icon has changed. Optional.
	OnChanged func(icon app.AppIcon)

	p PlatformPreferences
}

// NewStoredPlatform returns a new platform which persists to p.
func NewStoredPlatform(p PlatformPreferences) *StoredPlatform {
	x := &StoredPlatform{p: p}
	return x
}

func (sp *StoredPlatform) AlternateIconName() (string, bool) {
	name := sp.p.StringWithFallback(platformIconKey, "")
	return name, name != ""
}

func (sp *StoredPlatform) SetAlternateIconName(name string) error {
	var icon app.AppIcon
	if name == "" {
		icon = app.AppIconDefault
		sp.p.RemoveValue(platformIconKey)
	} else {
		var err error
		icon, err = app.AppIconByAssetName(name)
		if err != nil {
			return fmt.Errorf("set alternate icon %s: %w", name, err)
		}
		sp.p.SetString(platformIconKey, name)
	}
	if sp.OnChanged != nil {
		sp.OnChanged(icon)
	}
	return nil
}

// Icon returns the active icon.
func (sp *StoredPlatform) Icon() app.AppIcon {
	name, ok := sp.AlternateIconName()
	if !ok {
		return app.AppIconDefault
	}
	icon, err := app.AppIconByAssetName(name)
	if err != nil {
		return app.AppIconDefault
	}
	return icon
}
