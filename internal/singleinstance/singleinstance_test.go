package singleinstance_test

import (
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ErikKalkoken/emuprefs/internal/singleinstance"
)

func TestGroup(t *testing.T) {
	t.Run("should allow only one concurrent acquire per key", func(t *testing.T) {
		var acquired atomic.Int64
		g := singleinstance.NewGroup()
		var wg sync.WaitGroup
		for range 10 {
			wg.Go(func() {
				if _, ok := g.Acquire("alpha"); ok {
					acquired.Add(1)
				}
			})
		}
		wg.Wait()
		assert.EqualValues(t, 1, acquired.Load())
	})
	t.Run("can run again after release", func(t *testing.T) {
		g := singleinstance.NewGroup()
		release, ok := g.Acquire("alpha")
		assert.True(t, ok)
		assert.True(t, g.IsRunning("alpha"))
		_, ok = g.Acquire("alpha")
		assert.False(t, ok)
		release()
		release()
		assert.False(t, g.IsRunning("alpha"))
		_, ok = g.Acquire("alpha")
		assert.True(t, ok)
	})
	t.Run("different keys do not block each other", func(t *testing.T) {
		g := singleinstance.NewGroup()
		_, ok1 := g.Acquire("alpha")
		_, ok2 := g.Acquire("bravo")
		assert.True(t, ok1)
		assert.True(t, ok2)
	})
}
