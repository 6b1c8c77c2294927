// Package version provides build and runtime identity of the running service.
package version

import "runtime"

// BuildInfo holds version information about the service build.
type BuildInfo struct {
	Service string `json:"service"`
	Version string `json:"version"`
	Commit  string `json:"commit"`
	Date    string `json:"date"`
}

// RuntimeInfo describes the process runtime.
type RuntimeInfo struct {
	Name    string `json:"name"    example:"go"`
	Version string `json:"version" example:"go1.25.0"`
	OS      string `json:"os"      example:"linux"`
	Arch    string `json:"arch"    example:"amd64"`
	CPUs    int    `json:"cpus"    example:"8"`
}

// Info returns the build information. The version, commit, and date variables
// are intended to be set at build time using -ldflags.
func Info() BuildInfo {
	// Set via -ldflags "-X 'openship/internal/core/version.version=v0.0.1'
	// -X 'openship/internal/core/version.commit=abcd' -X 'openship/internal/core/version.date=2026-10-01'"
	return BuildInfo{
		Service: service,
		Version: version,
		Commit:  commit,
		Date:    date,
	}
}

// Runtime reports the Go runtime the process is running on.
func Runtime() RuntimeInfo {
	return RuntimeInfo{
		Name:    "go",
		Version: runtime.Version(),
		OS:      runtime.GOOS,
		Arch:    runtime.GOARCH,
		CPUs:    runtime.NumCPU(),
	}
}

var (
	service = "openship-api"
	version = "dev"
	commit  = "none"
	date    = "unknown"
)
