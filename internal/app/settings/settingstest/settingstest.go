// Package settingstest provides in-memory preferences for testing the settings store.
package settingstest

// Preferences represents a stub for replacing the persistent preferences in tests.
type Preferences struct {
	Data map[string]any
}

func NewPreferences() Preferences {
	p := Preferences{Data: map[string]any{}}
	return p
}

func (p Preferences) BoolWithFallback(key string, fallback bool) bool {
	return getAnyWithFallback(p, key, fallback)
}

func (p Preferences) SetBool(k string, v bool) {
	setAny(p, k, v)
}

func (p Preferences) FloatWithFallback(key string, fallback float64) float64 {
	return getAnyWithFallback(p, key, fallback)
}

func (p Preferences) SetFloat(k string, v float64) {
	setAny(p, k, v)
}

func (p Preferences) IntWithFallback(key string, fallback int) int {
	return getAnyWithFallback(p, key, fallback)
}

func (p Preferences) SetInt(k string, v int) {
	setAny(p, k, v)
}

func (p Preferences) StringWithFallback(key string, fallback string) string {
	return getAnyWithFallback(p, key, fallback)
}

func (p Preferences) SetString(k string, v string) {
	setAny(p, k, v)
}

func (p Preferences) RemoveValue(k string) {
	delete(p.Data, k)
}

func getAnyWithFallback[T any](p Preferences, key string, fallback T) T {
	x, ok := p.Data[key]
	if !ok {
		return fallback
	}
	v, ok := x.(T)
	if !ok {
		return fallback
	}
	return v
}

func setAny(p Preferences, k string, v any) {
	p.Data[k] = v
}
