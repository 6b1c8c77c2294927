// Package net holds transport-neutral request helpers shared by the http layers
package net

import (
	"context"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
)

// WithRequest stores reqID where chi's RequestID middleware would
func WithRequest(ctx context.Context, reqID string) context.Context {
	if reqID == "" {
		return ctx
	}
	return context.WithValue(ctx, chimw.RequestIDKey, reqID)
}

// RequestID returns the request id on ctx, or ""
func RequestID(ctx context.Context) string {
	return chimw.GetReqID(ctx)
}

// RoutePattern returns the matched chi route pattern, e.g. /api/v1/discovery/graph
// empty until routing has completed
func RoutePattern(ctx context.Context) string {
	rc := chi.RouteContext(ctx)
	if rc == nil {
		return ""
	}
	return rc.RoutePattern()
}
