// Package module holds the module contract and port lookup helpers
// it sits beside modkit so modules that export port types avoid import knots
package module

import (
	phttp "openship/internal/platform/net/http"
)

// Module is the contract shared with modkit.Module
type Module interface {
	MountRoutes(r phttp.Router)
	Ports() any
	Name() string
}
