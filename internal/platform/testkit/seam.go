package testkit

import (
	"sync"
	"testing"
)

var (
	seamsMu sync.Mutex
	seams   = map[string]*sync.Mutex{}
)

// Swap replaces *target for the rest of the test
func Swap[T any](t *testing.T, target *T, v T) {
	t.Helper()
	prev := *target
	*target = v
	t.Cleanup(func() { *target = prev })
}

// Serial holds the lock named key until the test ends
// tests that Swap the same package variable should share a key
func Serial(t *testing.T, key string) {
	t.Helper()
	seamsMu.Lock()
	mu, ok := seams[key]
	if !ok {
		mu = &sync.Mutex{}
		seams[key] = mu
	}
	seamsMu.Unlock()

	mu.Lock()
	t.Cleanup(mu.Unlock)
}
