// Package config reads service configuration from environment variables
package config

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"openship/internal/platform/logger"
)

// Conf is a prefixed view over the environment
// use New() for global keys or Prefix("OPENSHIP_") for a service scope
type Conf struct{ prefix string }

// New creates an unprefixed Conf
func New() Conf { return Conf{} }

// Prefix creates a child Conf with an additional prefix
func (c Conf) Prefix(p string) Conf { return Conf{prefix: c.prefix + p} }

func (c Conf) key(k string) string { return c.prefix + k }

func (c Conf) lookup(k string) string { return strings.TrimSpace(os.Getenv(c.key(k))) }

// MustString panics when key is missing or empty
func (c Conf) MustString(key string) string {
	v := c.lookup(key)
	if v == "" {
		logger.Get().Panic().Str("key", c.key(key)).Msg("missing required env")
	}
	return v
}

// MustPort returns an addr like ":4000"; panics when missing or outside 1..65535
func (c Conf) MustPort(key string) string {
	addr, ok := parsePort(c.MustString(key))
	if !ok {
		logger.Get().Panic().Str("key", c.key(key)).Str("value", c.lookup(key)).Msg("invalid TCP port; expected 1..65535")
	}
	return addr
}

// MayString returns the value or def if missing or empty
func (c Conf) MayString(key, def string) string {
	if v := c.lookup(key); v != "" {
		return v
	}
	return def
}

// MayInt returns the value or def; invalid values log and fall back
func (c Conf) MayInt(key string, def int) int {
	s := c.lookup(key)
	if s == "" {
		return def
	}
	if v, err := strconv.Atoi(s); err == nil {
		return v
	}
	logger.Get().Warn().Str("key", c.key(key)).Str("value", s).Int("default", def).Msg("invalid int; using default")
	return def
}

// MayBool returns the value or def; invalid values log and fall back
func (c Conf) MayBool(key string, def bool) bool {
	s := c.lookup(key)
	if s == "" {
		return def
	}
	if v, err := strconv.ParseBool(s); err == nil {
		return v
	}
	logger.Get().Warn().Str("key", c.key(key)).Str("value", s).Bool("default", def).Msg("invalid bool; using default")
	return def
}

// MayDuration returns the value or def; invalid values log and fall back
func (c Conf) MayDuration(key string, def time.Duration) time.Duration {
	s := c.lookup(key)
	if s == "" {
		return def
	}
	if d, err := time.ParseDuration(s); err == nil {
		return d
	}
	logger.Get().Warn().Str("key", c.key(key)).Str("value", s).Dur("default", def).Msg("invalid duration; using default")
	return def
}

// MayCSV splits a comma separated value, dropping empty items; def if nothing remains
func (c Conf) MayCSV(key string, def []string) []string {
	s := c.lookup(key)
	if s == "" {
		return def
	}
	out := make([]string, 0, strings.Count(s, ",")+1)
	for _, p := range strings.Split(s, ",") {
		if v := strings.TrimSpace(p); v != "" {
			out = append(out, v)
		}
	}
	if len(out) == 0 {
		return def
	}
	return out
}

// MayEnum returns the value when it is one of allowed (case-insensitive), def when empty, panics otherwise
func (c Conf) MayEnum(key, def string, allowed ...string) string {
	v := c.MayString(key, def)
	if v == "" {
		return v
	}
	for _, a := range allowed {
		if strings.EqualFold(v, a) {
			return a
		}
	}
	logger.Get().Panic().Str("key", c.key(key)).Str("value", v).Strs("allowed", allowed).Msg("invalid enum value")
	return ""
}

// MayPort returns a listen addr like ":4000"; accepts "4000" or ":4000"
// invalid values log and fall back to def
func (c Conf) MayPort(key, def string) string {
	s := c.lookup(key)
	if s == "" {
		return def
	}
	if addr, ok := parsePort(s); ok {
		return addr
	}
	logger.Get().Warn().Str("key", c.key(key)).Str("value", s).Str("default", def).Msg("invalid port; using default")
	return def
}

// MayPath returns a cleaned path or def; relative values stay relative
func (c Conf) MayPath(key, def string) string {
	s := c.lookup(key)
	if s == "" {
		return def
	}
	return filepath.Clean(s)
}

func parsePort(s string) (string, bool) {
	s = strings.TrimPrefix(strings.TrimSpace(s), ":")
	p, err := strconv.Atoi(s)
	if err != nil || p < 1 || p > 65535 {
		return "", false
	}
	return ":" + strconv.Itoa(p), true
}
