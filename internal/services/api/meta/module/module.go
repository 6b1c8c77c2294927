// Package module wires meta endpoints into the API using a tiny module
package module

import (
	"time"

	"openship/internal/core/version"
	"openship/internal/modkit"
	"openship/internal/modkit/httpkit"
	metahttp "openship/internal/services/api/meta/http"

	"github.com/google/uuid"
)

// Ports are the ports meta consumes; inject them with modkit.WithPorts
type Ports struct {
	Probe metahttp.Probe
}

// Module implements the modkit.Module interface
type Module struct {
	deps  modkit.Deps
	built modkit.Built
	in    Ports

	serviceName string
	instanceID  string
	startedAt   time.Time
}

// New constructs a meta module with the provided dependencies and options
// the service name comes from SERVICE_NAME under deps.Cfg, else the build info
func New(deps modkit.Deps, opts ...modkit.Option) modkit.Module {
	b := modkit.Build(append([]modkit.Option{
		modkit.WithName("meta"),
		modkit.WithPrefix("/meta"),
	}, opts...)...)

	in, _ := b.Ports.(Ports)
	return &Module{
		deps:        deps,
		built:       b,
		in:          in,
		serviceName: deps.Cfg.MayString("SERVICE_NAME", version.Info().Service),
		instanceID:  uuid.NewString(),
		startedAt:   time.Now(),
	}
}

// MountRoutes implements the modkit.Module interface
func (m *Module) MountRoutes(r httpkit.Router) {
	m.built.Mount(r, func(rr httpkit.Router) {
		metahttp.Register(rr, metahttp.Deps{
			ServiceName: m.serviceName,
			InstanceID:  m.instanceID,
			StartedAt:   m.startedAt,
			Probe:       m.in.Probe,
		})
	})
}

// Name implements the modkit.Module interface
func (m *Module) Name() string { return m.built.Name }

// Ports implements the modkit.Module interface; meta exports nothing
func (m *Module) Ports() any { return nil }

// InstanceID returns the per-process id reported by /service
func (m *Module) InstanceID() string { return m.instanceID }
