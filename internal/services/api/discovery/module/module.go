// Package module wires discovery into the API using modkit
package module

import (
	"openship/internal/modkit"
	"openship/internal/modkit/httpkit"
	dischttp "openship/internal/services/api/discovery/http"
	discsvc "openship/internal/services/api/discovery/service"
)

// Module implements the discovery module
type Module struct {
	deps  modkit.Deps
	built modkit.Built
	ports Ports

	svc discsvc.Service
}

// New constructs the discovery module; WithPorts may inject a prebuilt Ports.Service for tests
func New(deps modkit.Deps, opts ...modkit.Option) modkit.Module {
	b := modkit.Build(append([]modkit.Option{
		modkit.WithName("discovery"),
		modkit.WithPrefix("/discovery"),
	}, opts...)...)

	var s discsvc.Service
	if p, ok := b.Ports.(Ports); ok && p.Service != nil {
		s = p.Service
	} else {
		log := deps.Logger("discovery")
		s = discsvc.New(discsvc.Config{
			GraphPath:    deps.ArtifactPath(),
			ManifestPath: deps.ManifestPath(),
			MaxLineBytes: deps.MaxLineBytes,
		}, nil, nil, log)
	}

	return &Module{
		deps:  deps,
		built: b,
		svc:   s,
		ports: Ports{Service: s, Probe: s},
	}
}

// MountRoutes mounts /discovery and its subroutes
func (m *Module) MountRoutes(r httpkit.Router) {
	m.built.Mount(r, func(rr httpkit.Router) {
		dischttp.Register(rr, m.svc)
	})
}

// MountAlias mounts the root alias; the caller supplies the middleware scope
func (m *Module) MountAlias(r httpkit.Router) {
	dischttp.RegisterAlias(r, m.svc)
}

// Name returns the module name
func (m *Module) Name() string { return m.built.Name }
