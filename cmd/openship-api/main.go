// @title         openship API
// @version       1.0
// @description   Application discovery: framework and runtime identity plus the build-time dependency graph

package main

import (
	"context"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"openship/internal/modkit"
	"openship/internal/modkit/httpkit"
	"openship/internal/platform/config"
	"openship/internal/platform/logger"
	phttp "openship/internal/platform/net/http"

	"openship/internal/services/api"
)

func main() {
	// service-scoped config (OPENSHIP_*)
	cfg := config.New().Prefix("OPENSHIP_")

	// bring up logging early
	l := logger.Get()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// shared module deps (OPENSHIP_PROJECT_DIR / OPENSHIP_GRAPH_PATH)
	deps := modkit.DepsFromConfig(cfg, l)
	l.Info().
		Str("project", deps.ProjectDir).
		Str("artifact", deps.ArtifactPath()).
		Msg("openship api starting")

	// http server (reads OPENSHIP_API_PORT and timeouts)
	srv := phttp.NewServer(cfg)

	// mount our API
	api.Mount(
		srv.Router(),
		api.Options{
			Deps: deps,
			Stack: httpkit.StackOptions{
				CORSOrigins: cfg.MayCSV("CORS_ORIGINS", []string{"*"}),
				SlowRequest: cfg.MayDuration("SLOW_REQUEST", 0),
				Timeout:     cfg.MayDuration("REQUEST_TIMEOUT", 0),
			},
			EnableSwagger:  cfg.MayBool("SWAGGER", true),
			EnableProfiler: cfg.MayBool("PROFILER", false),
			ProfilerUsers:  profilerUsers(cfg.MayCSV("PROFILER_USERS", nil)),
		},
	)

	// run until SIGINT/SIGTERM
	if err := srv.Run(ctx); err != nil {
		l.Fatal().Err(err).Msg("http server stopped")
	}
	l.Info().Msg("openship api stopped")
}

// profilerUsers parses user:password pairs; malformed entries are dropped
func profilerUsers(pairs []string) map[string]string {
	if len(pairs) == 0 {
		return nil
	}
	out := make(map[string]string, len(pairs))
	for _, p := range pairs {
		if u, pw, ok := strings.Cut(p, ":"); ok && u != "" {
			out[u] = pw
		}
	}
	return out
}
