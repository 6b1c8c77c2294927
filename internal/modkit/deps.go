// Package modkit provides module wiring and the shared deps passed to every module
package modkit

import (
	"openship/internal/core/graph"
	"openship/internal/core/manifest"
	"openship/internal/platform/config"
	"openship/internal/platform/logger"
)

// Deps holds the dependencies shared by API modules
type Deps struct {
	Log *logger.Logger
	Cfg config.Conf

	// ProjectDir is the application root holding package.json and .next
	ProjectDir string
	// GraphPath overrides the artifact location; empty means the default under ProjectDir
	GraphPath string
	// MaxLineBytes caps a single artifact line; 0 keeps the reader default
	MaxLineBytes int
}

// ArtifactPath resolves the graph artifact locator
func (d Deps) ArtifactPath() string { return graph.Locate(d.ProjectDir, d.GraphPath) }

// ManifestPath resolves the project manifest
func (d Deps) ManifestPath() string { return manifest.Path(d.dir()) }

// Logger returns Log or a named fallback so zero Deps work in tests
func (d Deps) Logger(component string) *logger.Logger {
	if d.Log == nil {
		return logger.Named(component)
	}
	l := d.Log.With().Str("component", component).Logger()
	return &l
}

func (d Deps) dir() string {
	if d.ProjectDir == "" {
		return "."
	}
	return d.ProjectDir
}

// DepsFromConfig reads the project locators from cfg
// keys (under cfg's prefix): PROJECT_DIR, GRAPH_PATH, GRAPH_MAX_LINE_BYTES
func DepsFromConfig(cfg config.Conf, log *logger.Logger) Deps {
	return Deps{
		Log:          log,
		Cfg:          cfg,
		ProjectDir:   cfg.MayPath("PROJECT_DIR", "."),
		GraphPath:    cfg.MayPath("GRAPH_PATH", ""),
		MaxLineBytes: cfg.MayInt("GRAPH_MAX_LINE_BYTES", 0),
	}
}
