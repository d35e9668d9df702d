// Package humanize transforms values into more user friendly representations.
package humanize

import (
	"context"
	"errors"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/dustin/go-humanize/english"
	"golang.org/x/exp/constraints"

	"github.com/ErikKalkoken/emuprefs/internal/app"
)

// Comma produces a string form of the given number in base 10
// with commas after every three orders of magnitude.
// This is a variation of Comma from the external humanize package,
// that works with any integer like type.
func Comma[T constraints.Integer](x T) string {
	return humanize.Comma(int64(x))
}

// Count returns a number with a noun in singular or plural form, e.g. "1 game" or "1,234 games".
func Count[T constraints.Integer](x T, singular string) string {
	return Comma(x) + " " + english.PluralWord(int(x), singular, "")
}

// Error returns a user friendly text for an error.
func Error(err error) string {
	if err == nil {
		return "No error"
	}
	switch {
	case errors.Is(err, app.ErrNotFound):
		return "Object not found"
	case errors.Is(err, app.ErrInvalid):
		return "Invalid operation"
	case errors.Is(err, context.Canceled):
		return "Operation canceled"
	case errors.Is(err, context.DeadlineExceeded):
		return "Operation timed out"
	}
	s := err.Error()
	if s == "" {
		return "Unknown error"
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
