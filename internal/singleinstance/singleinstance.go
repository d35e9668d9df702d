// Package singleinstance provides a mechanism to ensure only one instance of a unit of work runs at a time.
package singleinstance

import "sync"

// Group represents a class of work and forms a namespace in which units of work
// can be executed with duplicate suppression.
type Group struct {
	mu sync.Mutex
	m  map[string]struct{} // holds the keys for currently running work
}

func NewGroup() *Group {
	g := &Group{m: make(map[string]struct{})}
	return g
}

// Acquire marks the work for key as running and returns a function to release it again.
// Reports false when work for key is already running.
// The release function must be called exactly once.
func (g *Group) Acquire(key string) (release func(), ok bool) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if _, found := g.m[key]; found {
		return nil, false
	}
	g.m[key] = struct{}{}
	var once sync.Once
	release = func() {
		once.Do(func() {
			g.mu.Lock()
			delete(g.m, key)
			g.mu.Unlock()
		})
	}
	return release, true
}

// IsRunning reports whether work for key is currently running.
func (g *Group) IsRunning(key string) bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	_, found := g.m[key]
	return found
}
