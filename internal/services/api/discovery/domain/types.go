// Package domain holds the discovery payloads and ports
package domain

import (
	"openship/internal/core/graph"
	"openship/internal/core/manifest"
	"openship/internal/core/version"
)

// Graph is the deduplicated artifact with its read counters
// Nodes are embedded exactly as they appear in the artifact
type Graph struct {
	Nodes []graph.Record `json:"nodes"`
	Stats graph.Stats    `json:"stats"`
}

// Response is the full discovery document
// Application is omitted when package.json is missing or invalid
type Response struct {
	Application *manifest.Application `json:"application,omitempty"`
	Framework   manifest.Framework    `json:"framework"`
	Runtime     version.RuntimeInfo   `json:"runtime"`
	Build       version.BuildInfo     `json:"build"`
	Graph       Graph                 `json:"graph"`
}

// GraphQuery narrows the nodes returned by the graph endpoint; stats always cover the whole artifact
type GraphQuery struct {
	Scope string `json:"scope" validate:"omitempty,max=64,printascii" example:"app"`
	// Dep keeps only nodes whose d lists this mangled key
	Dep string `json:"dep" validate:"omitempty,max=1024,printascii" example:"dep::react"`
}
