package graph

import "path/filepath"

// DefaultRelPath is where the build plugin writes the artifact, relative to the project root
var DefaultRelPath = filepath.Join(".next", "openship", "graph")

// Locate returns override when set, else the default artifact path under projectDir
func Locate(projectDir, override string) string {
	if override != "" {
		return override
	}
	if projectDir == "" {
		projectDir = "."
	}
	return filepath.Join(projectDir, DefaultRelPath)
}
