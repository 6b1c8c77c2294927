// Package api composes the HTTP API for the application
package api

import (
	"openship/internal/modkit"
	"openship/internal/modkit/httpkit"
	"openship/internal/modkit/module"
	"openship/internal/modkit/swaggerkit"
	phttp "openship/internal/platform/net/http"
	"openship/internal/platform/net/middleware"

	discdomain "openship/internal/services/api/discovery/domain"
	discmod "openship/internal/services/api/discovery/module"
	metamod "openship/internal/services/api/meta/module"
)

// Options are the API options
type Options struct {
	Deps           modkit.Deps
	Stack          httpkit.StackOptions
	EnableSwagger  bool
	EnableProfiler bool
	// ProfilerUsers gates /debug with basic auth when set
	ProfilerUsers map[string]string
}

// HeartbeatPath answers 200 before routing, for load balancers
const HeartbeatPath = "/ping"

// Mount mounts the API service onto the given router
// it must run before anything else is registered on r
func Mount(r phttp.Router, opt Options) {
	deps := opt.Deps
	r.Use(middleware.Heartbeat(HeartbeatPath))

	// discovery owns the probe port that meta readiness consumes
	discovery := discmod.New(deps).(*discmod.Module)
	probe := module.MustPortsOf[discdomain.ProbePort](discovery)

	mods := []module.Module{
		metamod.New(deps, modkit.WithPorts(metamod.Ports{Probe: probe})),
		discovery,
	}

	// orchestrator probes would drown the access log at info
	if opt.Stack.QuietPaths == nil {
		opt.Stack.QuietPaths = []string{
			httpkit.APIV1Prefix + "/meta/health",
			httpkit.APIV1Prefix + "/meta/ready",
		}
	}
	stack := httpkit.CommonStack(opt.Stack)

	// versioned API with a common middleware stack
	httpkit.MountAPIV1(r, stack, func(api httpkit.Router) {
		for _, m := range mods {
			// register each module's ports under its own name (for cross-module lookups)
			module.Register(m.Name(), m.Ports())

			// mount module routes under its prefix
			m.MountRoutes(api)
		}
	})

	// unversioned alias the build plugin advertises
	httpkit.MountUnder(r, "", stack, discovery.MountAlias)

	swaggerkit.Mount(r, opt.EnableSwagger)
	phttp.MountProfiler(r, phttp.ProfilerOptions{Enabled: opt.EnableProfiler, Users: opt.ProfilerUsers})

	r.NotFound(phttp.NotFound)
	r.MethodNotAllowed(phttp.MethodNotAllowed)

	deps.Logger("api").Info().
		Strs("modules", module.Names()).
		Bool("swagger", opt.EnableSwagger).
		Bool("profiler", opt.EnableProfiler).
		Msg("api mounted")
}
