// Package settings implements the settings store of the emulator.
//
// Every setting belongs to a feature and is addressed by the feature and an option name.
// Settings which have not been set yet return their defaults.
package settings

import (
	"context"
	"fmt"
	"log/slog"
	"reflect"

	"github.com/maniartech/signals"

	"github.com/ErikKalkoken/emuprefs/internal/app"
)

const (
	settingPowerUserEnabled        = "powerUser.isEnabled"
	settingPowerUserEnabledDefault = false
	settingProEnabled              = "pro.isEnabled"
	settingProEnabledDefault       = false
)

// Preferences is the subset of fyne.Preferences used by the settings store.
type Preferences interface {
	BoolWithFallback(key string, fallback bool) bool
	SetBool(key string, value bool)
	FloatWithFallback(key string, fallback float64) float64
	SetFloat(key string, value float64)
	IntWithFallback(key string, fallback int) int
	SetInt(key string, value int)
	StringWithFallback(key string, fallback string) string
	SetString(key string, value string)
	RemoveValue(key string)
}

// Settings is the settings store.
type Settings struct {
	// Changed is emitted after the settings of a feature have been reset.
	Changed signals.Signal[app.Feature]

	p Preferences
}

// New returns a new settings store which persists its values in p.
func New(p Preferences) *Settings {
	s := &Settings{
		Changed: signals.NewSync[app.Feature](),
		p:       p,
	}
	return s
}

// Key returns the preference key for an option of a feature.
func Key(f app.Feature, option string) string {
	return f.Key() + "." + option
}

// Keys returns all preference keys used by the store.
func Keys() []string {
	keys := []string{settingPowerUserEnabled, settingProEnabled}
	for _, f := range app.Features() {
		for _, x := range defaults[f] {
			keys = append(keys, Key(f, x.Option))
		}
	}
	return keys
}

// Reset writes the default value of every option of a feature.
// The previous values are not read. Resetting [app.FeatureAll] writes nothing.
func (s *Settings) Reset(f app.Feature) {
	for _, x := range defaults[f] {
		s.write(Key(f, x.Option), x.Value)
	}
	if f.IsSentinel() {
		return
	}
	slog.Info("Settings reset to defaults", "feature", f.Key())
	s.Changed.Emit(context.Background(), f)
}

// ResetAll resets every feature to its defaults in enumeration order.
func (s *Settings) ResetAll() {
	for _, f := range app.Features() {
		s.Reset(f)
	}
}

// Value returns the current value of an option.
// Unset options return their default.
// Returns [app.ErrInvalid] when the feature has no such option.
func (s *Settings) Value(f app.Feature, option string) (any, error) {
	x, ok := lookupDefault(f, option)
	if !ok {
		return nil, fmt.Errorf("%s: unknown option %s: %w", f.Key(), option, app.ErrInvalid)
	}
	return s.read(Key(f, option), x.Value), nil
}

// SetValue sets the value of an option.
// The value must have the same type as the option's default.
func (s *Settings) SetValue(f app.Feature, option string, v any) error {
	x, ok := lookupDefault(f, option)
	if !ok {
		return fmt.Errorf("%s: unknown option %s: %w", f.Key(), option, app.ErrInvalid)
	}
	if reflect.TypeOf(x.Value) != reflect.TypeOf(v) {
		return fmt.Errorf("%s.%s: want %T, got %T: %w", f.Key(), option, x.Value, v, app.ErrInvalid)
	}
	s.write(Key(f, option), v)
	return nil
}

// Values returns the current values of all options of a feature in default order.
func (s *Settings) Values(f app.Feature) []Default {
	var r []Default
	for _, x := range defaults[f] {
		r = append(r, Default{Option: x.Option, Value: s.read(Key(f, x.Option), x.Value)})
	}
	return r
}

// IsDefault reports whether every option of a feature has its default value.
func (s *Settings) IsDefault(f app.Feature) bool {
	for _, x := range defaults[f] {
		if s.read(Key(f, x.Option), x.Value) != x.Value {
			return false
		}
	}
	return true
}

func (s *Settings) Bool(f app.Feature, option string) bool {
	return typedValue[bool](s, f, option)
}

func (s *Settings) SetBool(f app.Feature, option string, v bool) error {
	return s.SetValue(f, option, v)
}

func (s *Settings) Float(f app.Feature, option string) float64 {
	return typedValue[float64](s, f, option)
}

func (s *Settings) SetFloat(f app.Feature, option string, v float64) error {
	return s.SetValue(f, option, v)
}

func (s *Settings) Int(f app.Feature, option string) int {
	return typedValue[int](s, f, option)
}

func (s *Settings) SetInt(f app.Feature, option string, v int) error {
	return s.SetValue(f, option, v)
}

func (s *Settings) String(f app.Feature, option string) string {
	return typedValue[string](s, f, option)
}

func (s *Settings) SetString(f app.Feature, option string, v string) error {
	return s.SetValue(f, option, v)
}

func (s *Settings) Color(f app.Feature, option string) app.Color {
	return typedValue[app.Color](s, f, option)
}

func (s *Settings) SetColor(f app.Feature, option string, v app.Color) error {
	return s.SetValue(f, option, v)
}

// typedValue returns the value of an option or the zero value when the option does not exist
// or has another type.
func typedValue[T any](s *Settings, f app.Feature, option string) T {
	var z T
	v, err := s.Value(f, option)
	if err != nil {
		slog.Warn("settings: read", "error", err)
		return z
	}
	x, ok := v.(T)
	if !ok {
		slog.Warn("settings: read with wrong type", "feature", f.Key(), "option", option, "want", fmt.Sprintf("%T", z))
		return z
	}
	return x
}

func (s *Settings) read(key string, fallback any) any {
	switch x := fallback.(type) {
	case bool:
		return s.p.BoolWithFallback(key, x)
	case float64:
		return s.p.FloatWithFallback(key, x)
	case int:
		return s.p.IntWithFallback(key, x)
	case string:
		return s.p.StringWithFallback(key, x)
	case app.Color:
		v := s.p.StringWithFallback(key, "")
		if v == "" {
			return x
		}
		c, err := app.ParseColor(v)
		if err != nil {
			slog.Warn("settings: invalid color", "key", key, "value", v)
			return x
		}
		return c
	}
	panic(fmt.Sprintf("settings: unsupported type %T for %s", fallback, key))
}

func (s *Settings) write(key string, v any) {
	switch x := v.(type) {
	case bool:
		s.p.SetBool(key, x)
	case float64:
		s.p.SetFloat(key, x)
	case int:
		s.p.SetInt(key, x)
	case string:
		s.p.SetString(key, x)
	case app.Color:
		s.p.SetString(key, x.Hex())
	default:
		panic(fmt.Sprintf("settings: unsupported type %T for %s", v, key))
	}
}

// PowerUserEnabled reports whether the power user tools are enabled.
func (s *Settings) PowerUserEnabled() bool {
	return s.p.BoolWithFallback(settingPowerUserEnabled, settingPowerUserEnabledDefault)
}

func (s *Settings) SetPowerUserEnabled(v bool) {
	s.p.SetBool(settingPowerUserEnabled, v)
}

// ProEnabled reports whether the user is entitled to paid features.
func (s *Settings) ProEnabled() bool {
	return s.p.BoolWithFallback(settingProEnabled, settingProEnabledDefault)
}

func (s *Settings) SetProEnabled(v bool) {
	s.p.SetBool(settingProEnabled, v)
}

// AlternateIcon returns the selected app icon.
// An unknown icon ID returns the default icon.
func (s *Settings) AlternateIcon() app.AppIcon {
	id := s.String(app.FeatureAppIcon, "alternateIcon")
	icon, err := app.AppIconByID(id)
	if err != nil {
		slog.Warn("settings: unknown app icon", "id", id)
		return app.AppIconDefault
	}
	return icon
}

func (s *Settings) SetAlternateIcon(icon app.AppIcon) {
	s.p.SetString(Key(app.FeatureAppIcon, "alternateIcon"), icon.ID)
}
