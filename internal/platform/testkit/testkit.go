// Package testkit provides testing helpers
package testkit

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// MustPanic asserts that fn panics
func MustPanic(t *testing.T, fn func()) {
	t.Helper()
	defer func() {
		if r := recover(); r == nil {
			t.Fatalf("expected panic, got none")
		}
	}()
	fn()
}

// MustNotPanic asserts that fn does not panic
func MustNotPanic(t *testing.T, fn func()) {
	t.Helper()
	defer func() {
		if r := recover(); r != nil {
			t.Fatalf("unexpected panic: %v", r)
		}
	}()
	fn()
}

// MustContain asserts that haystack contains needle; on failure the haystack is saved under t.TempDir
func MustContain(t *testing.T, haystack, needle string) {
	t.Helper()
	if !strings.Contains(haystack, needle) {
		out := filepath.Join(t.TempDir(), "haystack.txt")
		_ = os.WriteFile(out, []byte(haystack), 0o600)
		t.Fatalf("expected output to contain %q\n\nfull output written to %s", needle, out)
	}
}

// WriteFile writes content to rel under dir, creating parents, and returns the full path
func WriteFile(t *testing.T, dir, rel, content string) string {
	t.Helper()
	p := filepath.Join(dir, rel)
	if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
		t.Fatalf("mkdir %s: %v", filepath.Dir(p), err)
	}
	if err := os.WriteFile(p, []byte(content), 0o600); err != nil {
		t.Fatalf("write %s: %v", p, err)
	}
	return p
}

// NDJSON joins lines with "\n" and adds a trailing newline
func NDJSON(lines ...string) string {
	if len(lines) == 0 {
		return ""
	}
	return strings.Join(lines, "\n") + "\n"
}
