// Package strings holds small string and slice helpers
package strings

import std "strings"

// IfEmpty returns def when in is empty
func IfEmpty[T any](in []T, def []T) []T {
	if len(in) == 0 {
		return def
	}
	return in
}

// MustPrefix normalizes a mount prefix like /meta: one leading slash, no trailing slash
// panics when nothing but slashes or spaces remain
func MustPrefix(s string) string {
	s = "/" + std.Trim(std.TrimSpace(s), " /")
	if s == "/" {
		panic("root path is required")
	}
	return s
}
