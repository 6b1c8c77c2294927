package modkit

import (
	phttp "openship/internal/platform/net/http"
)

// Module is the surface every API module exposes to the service composer
type Module interface {
	// MountRoutes mounts HTTP routes under the provided router seam
	MountRoutes(r phttp.Router)
	// Ports returns the module's port set for cross wiring, or nil
	Ports() any
	// Name returns the module name used in logs and the registry
	Name() string
}

