package httpkit

import (
	"compress/flate"
	"net/http"
	"time"

	"openship/internal/platform/net/middleware"
)

// StackOptions tunes CommonStack
type StackOptions struct {
	// CORSOrigins defaults to "*"
	CORSOrigins []string
	// SlowRequest marks access log lines at warn; 0 uses 500ms
	SlowRequest time.Duration
	// Timeout bounds each request; 0 uses 30s
	Timeout time.Duration
	// QuietPaths are access logged at debug
	QuietPaths []string
}

// CommonStack is the per-API middleware slice
func CommonStack(o StackOptions) []func(http.Handler) http.Handler {
	if o.SlowRequest <= 0 {
		o.SlowRequest = 500 * time.Millisecond
	}
	if o.Timeout <= 0 {
		o.Timeout = 30 * time.Second
	}
	return []func(http.Handler) http.Handler{
		// correlation
		middleware.RequestID(),
		middleware.RealIP(),

		// safety
		middleware.RecoverJSON,

		// the artifact is regenerated on every build
		middleware.NoCache(),

		// observability
		middleware.AccessLogZerolog(middleware.AccessLogOptions{Slow: o.SlowRequest, Quiet: o.QuietPaths}),

		middleware.CORS(middleware.CORSOptions{AllowedOrigins: o.CORSOrigins}),
		middleware.Compress(flate.BestSpeed),
		middleware.StripSlashes(),
		middleware.Timeout(o.Timeout),
	}
}
