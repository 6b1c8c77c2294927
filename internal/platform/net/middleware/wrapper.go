// Package middleware adapts chi and go-chi/cors middleware and hosts the in-house ones
package middleware

import (
	"net/http"
	"time"

	pstrings "openship/internal/platform/strings"

	chimw "github.com/go-chi/chi/v5/middleware"
	chicors "github.com/go-chi/cors"
)

// Middleware is the stdlib middleware shape
type Middleware = func(http.Handler) http.Handler

// RequestID attaches or propagates X-Request-ID and stores it on context
func RequestID() Middleware { return chimw.RequestID }

// RealIP sets RemoteAddr from X-Forwarded-For / X-Real-IP
func RealIP() Middleware { return chimw.RealIP }

// Timeout cancels the request context after d; the graph reader observes it between lines
func Timeout(d time.Duration) Middleware { return chimw.Timeout(d) }

// NoCache disables client and proxy caching
func NoCache() Middleware { return chimw.NoCache }

// Compress wraps chi's compressor, e.g. level flate.BestSpeed
func Compress(level int) Middleware {
	c := chimw.NewCompressor(level)
	return c.Handler
}

// StripSlashes strips a trailing slash from the request path
func StripSlashes() Middleware { return chimw.StripSlashes }

// Heartbeat answers GET path with 200 before routing; for load balancers
func Heartbeat(path string) Middleware { return chimw.Heartbeat(path) }

// CORSOptions is a narrow surface over go-chi/cors
type CORSOptions struct {
	AllowedOrigins []string
	AllowedMethods []string
	AllowedHeaders []string
	ExposedHeaders []string
	MaxAge         int
}

// CORS wraps go-chi/cors; the API is read-only so methods default to GET, HEAD and OPTIONS
func CORS(o CORSOptions) Middleware {
	return chicors.Handler(chicors.Options{
		AllowedOrigins: pstrings.IfEmpty(o.AllowedOrigins, []string{"*"}),
		AllowedMethods: pstrings.IfEmpty(o.AllowedMethods, []string{http.MethodGet, http.MethodHead, http.MethodOptions}),
		AllowedHeaders: pstrings.IfEmpty(o.AllowedHeaders, []string{"Accept", "Content-Type", "X-Request-ID"}),
		ExposedHeaders: pstrings.IfEmpty(o.ExposedHeaders, []string{"X-Request-ID"}),
		MaxAge:         o.MaxAge,
	})
}
