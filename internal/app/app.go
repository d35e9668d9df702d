// Package app is the root package of all domain related packages.
//
// All entity types are defined in this package.
package app

import (
	"errors"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Default formats and durations
const (
	DateTimeFormat = "2006.01.02 15:04"
)

var (
	ErrInvalid  = errors.New("invalid operation")
	ErrNotFound = errors.New("object not found")
)

// Titler converts a string into a title for english language.
var Titler = cases.Title(language.English)
