// Package dictionary implements persistent preferences on top of the dictionary table of the storage.
//
// The GUI and the command line tool share their settings through it.
package dictionary

import (
	"bytes"
	"context"
	"encoding/gob"
	"log/slog"
)

type DictionaryStorage interface {
	GetDictEntry(context.Context, string) ([]byte, bool, error)
	DeleteDictEntry(context.Context, string) error
	SetDictEntry(context.Context, string, []byte) error
	ListDictKeys(context.Context) ([]string, error)
}

// Preferences is a persistent key/value store with typed access.
//
// Storage errors are logged and reads then return the fallback.
// This mirrors the behavior of fyne's preferences, which do not return errors.
type Preferences struct {
	st DictionaryStorage
}

// New creates and returns new preferences.
func New(st DictionaryStorage) *Preferences {
	p := &Preferences{st: st}
	return p
}

// Keys returns the keys of all stored values.
func (p *Preferences) Keys() []string {
	keys, err := p.st.ListDictKeys(context.Background())
	if err != nil {
		slog.Error("dictionary: list keys", "error", err)
		return nil
	}
	return keys
}

// Exists reports whether a value for key is stored.
func (p *Preferences) Exists(key string) bool {
	_, ok, err := p.st.GetDictEntry(context.Background(), key)
	if err != nil {
		slog.Error("dictionary: get", "key", key, "error", err)
		return false
	}
	return ok
}

// RemoveValue deletes a key. Removing a key which does not exist is not an error.
func (p *Preferences) RemoveValue(key string) {
	if err := p.st.DeleteDictEntry(context.Background(), key); err != nil {
		slog.Error("dictionary: delete", "key", key, "error", err)
	}
}

func (p *Preferences) BoolWithFallback(key string, fallback bool) bool {
	return getWithFallback(p, key, fallback)
}

func (p *Preferences) SetBool(key string, value bool) {
	set(p, key, value)
}

func (p *Preferences) FloatWithFallback(key string, fallback float64) float64 {
	return getWithFallback(p, key, fallback)
}

func (p *Preferences) SetFloat(key string, value float64) {
	set(p, key, value)
}

func (p *Preferences) IntWithFallback(key string, fallback int) int {
	return getWithFallback(p, key, fallback)
}

func (p *Preferences) SetInt(key string, value int) {
	set(p, key, value)
}

func (p *Preferences) StringWithFallback(key string, fallback string) string {
	return getWithFallback(p, key, fallback)
}

func (p *Preferences) SetString(key string, value string) {
	set(p, key, value)
}

func getWithFallback[T any](p *Preferences, key string, fallback T) T {
	data, ok, err := p.st.GetDictEntry(context.Background(), key)
	if err != nil {
		slog.Error("dictionary: get", "key", key, "error", err)
		return fallback
	}
	if !ok {
		return fallback
	}
	v, err := anyFromBytes[T](data)
	if err != nil {
		// A value of another type is stored under this key.
		slog.Warn("dictionary: decode", "key", key, "error", err)
		return fallback
	}
	return v
}

func set[T any](p *Preferences, key string, value T) {
	bb, err := bytesFromAny(value)
	if err != nil {
		slog.Error("dictionary: encode", "key", key, "error", err)
		return
	}
	if err := p.st.SetDictEntry(context.Background(), key, bb); err != nil {
		slog.Error("dictionary: set", "key", key, "error", err)
	}
}

func anyFromBytes[T any](bb []byte) (T, error) {
	var t T
	buf := bytes.NewBuffer(bb)
	dec := gob.NewDecoder(buf)
	if err := dec.Decode(&t); err != nil {
		return t, err
	}
	return t, nil
}

func bytesFromAny[T any](value T) ([]byte, error) {
	var buf bytes.Buffer
	enc := gob.NewEncoder(&buf)
	if err := enc.Encode(value); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
