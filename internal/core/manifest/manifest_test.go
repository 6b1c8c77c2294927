package manifest

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	perr "openship/internal/platform/errors"
)

func writeManifest(t *testing.T, body string) string {
	t.Helper()
	dir := t.TempDir()
	if err := os.WriteFile(Path(dir), []byte(body), 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}
	return Path(dir)
}

func TestLoad_OK(t *testing.T) {
	p := writeManifest(t, `{
		"name": "shop",
		"version": "1.4.0",
		"dependencies": {"next": "14.2.3", "react": "18.2.0"},
		"scripts": {"build": "next build"}
	}`)
	m, err := Load(p)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got := m.Application(); got != (Application{Name: "shop", Version: "1.4.0"}) {
		t.Fatalf("application = %+v", got)
	}
	if got := m.Framework(); got != (Framework{Name: "nextjs", Version: "14.2.3"}) {
		t.Fatalf("framework = %+v", got)
	}
}

func TestFramework_Fallbacks(t *testing.T) {
	dev := Manifest{DevDependencies: map[string]string{"next": "^13.0.0"}}
	if got := dev.Framework(); got.Version != "^13.0.0" {
		t.Fatalf("dev fallback = %+v", got)
	}
	both := Manifest{
		Dependencies:    map[string]string{"next": "14.0.0"},
		DevDependencies: map[string]string{"next": "13.0.0"},
	}
	if got := both.Framework(); got.Version != "14.0.0" {
		t.Fatalf("dependencies should win, got %+v", got)
	}
	if got := (Manifest{}).Framework(); got != (Framework{Name: "nextjs"}) {
		t.Fatalf("no framework = %+v", got)
	}
}

func TestLoad_Errors(t *testing.T) {
	t.Run("missing", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), FileName))
		if !perr.IsCode(err, perr.ErrorCodeNotFound) || !errors.Is(err, fs.ErrNotExist) {
			t.Fatalf("err = %v", err)
		}
	})
	t.Run("bad json", func(t *testing.T) {
		_, err := Load(writeManifest(t, `{"name":`))
		if !perr.IsCode(err, perr.ErrorCodeJSON) {
			t.Fatalf("err = %v", err)
		}
	})
	t.Run("missing version", func(t *testing.T) {
		_, err := Load(writeManifest(t, `{"name":"shop"}`))
		if !perr.IsCode(err, perr.ErrorCodeValidation) {
			t.Fatalf("err = %v", err)
		}
		e, _ := perr.As(err)
		if e.Field() != "version" || e.Op() != "manifest.Load" {
			t.Fatalf("field=%q op=%q", e.Field(), e.Op())
		}
	})
	t.Run("non semver version", func(t *testing.T) {
		_, err := Load(writeManifest(t, `{"name":"shop","version":"next"}`))
		if !perr.IsCode(err, perr.ErrorCodeValidation) {
			t.Fatalf("err = %v", err)
		}
	})
}
