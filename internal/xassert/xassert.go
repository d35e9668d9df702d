// Package xassert provides test helpers on top of testify's assert package.
package xassert

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

// EqualTime asserts that want and got are the same instant, ignoring location.
func EqualTime(t *testing.T, want, got time.Time) bool {
	t.Helper()
	return assert.Truef(t, got.Equal(want), "Times differ:\nwant: %s\ngot : %s", want, got)
}

// ElementsMatchBy asserts that the keys of got match want, ignoring order.
func ElementsMatchBy[T any, K comparable](t *testing.T, want []K, got []T, key func(T) K) bool {
	t.Helper()
	keys := make([]K, 0, len(got))
	for _, x := range got {
		keys = append(keys, key(x))
	}
	return assert.ElementsMatch(t, want, keys)
}
