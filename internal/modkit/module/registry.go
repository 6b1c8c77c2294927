package module

import (
	"slices"
	"sync"
)

// process-wide registry of port sets, filled while the API is composed
var (
	mu  sync.RWMutex
	reg = map[string]any{}
)

// Register stores the port set for a module name; nil ports are skipped
func Register(name string, ports any) {
	if ports == nil {
		return
	}
	mu.Lock()
	reg[name] = ports
	mu.Unlock()
}

// PortsAs fetches the port set for name as T
func PortsAs[T any](name string) (T, bool) {
	mu.RLock()
	v, ok := reg[name]
	mu.RUnlock()
	if !ok {
		var zero T
		return zero, false
	}
	out, ok := v.(T)
	return out, ok
}

// Names lists registered module names in sorted order
func Names() []string {
	mu.RLock()
	out := make([]string, 0, len(reg))
	for k := range reg {
		out = append(out, k)
	}
	mu.RUnlock()
	slices.Sort(out)
	return out
}

// Reset clears the registry; tests only
func Reset() {
	mu.Lock()
	reg = map[string]any{}
	mu.Unlock()
}
