package module

import (
	"openship/internal/services/api/discovery/domain"
	discsvc "openship/internal/services/api/discovery/service"
)

// Ports is the discovery port set
// Service is also accepted through modkit.WithPorts to swap the implementation
type Ports struct {
	Service discsvc.Service
	Probe   domain.ProbePort
}

// Ports returns the module ports
func (m *Module) Ports() any { return m.ports }
