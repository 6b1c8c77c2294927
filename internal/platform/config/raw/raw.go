// Package raw reads environment variables during bootstrap
// it must not import the logger, which is configured from it
package raw

import (
	"os"
	"strconv"
	"strings"
)

// Conf is a prefixed view over the environment, e.g. "LOG_"
type Conf struct{ prefix string }

// New returns an unprefixed view
func New() Conf { return Conf{} }

// Prefix returns a child view with p appended to the prefix
func (c Conf) Prefix(p string) Conf { return Conf{prefix: c.prefix + p} }

// Key returns the full variable name for k
func (c Conf) Key(k string) string { return c.prefix + k }

// Lookup returns the trimmed value and whether it was non-empty
func (c Conf) Lookup(key string) (string, bool) {
	v := strings.TrimSpace(os.Getenv(c.Key(key)))
	return v, v != ""
}

// Get returns the trimmed value or def when empty
func (c Conf) Get(key, def string) string {
	if v, ok := c.Lookup(key); ok {
		return v
	}
	return def
}

// GetBool accepts 1, true and yes (any case) as true
func (c Conf) GetBool(key string, def bool) bool {
	v, ok := c.Lookup(key)
	if !ok {
		return def
	}
	switch strings.ToLower(v) {
	case "1", "true", "yes":
		return true
	default:
		return false
	}
}

// GetInt returns a non-negative integer or def when empty or unparsable
func (c Conf) GetInt(key string, def int) int {
	v, ok := c.Lookup(key)
	if !ok {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil || n < 0 {
		return def
	}
	return n
}
