// Package httpkit re-exports the platform http seam for modules and adds routing sugar
// modules import this instead of internal/platform/net/http
package httpkit

import (
	"net/http"

	phttp "openship/internal/platform/net/http"
)

type (
	// Envelope is the transport envelope type
	Envelope = phttp.Envelope

	// Response is the return-style handler result
	Response = phttp.Response

	// Handler is the platform handler type
	Handler = phttp.Handler

	// Router is the platform router seam
	Router = phttp.Router
)

// OK returns a 200 enveloped response
func OK(data any) Response { return phttp.OK(data) }

// Bare returns a 200 response written without an envelope
func Bare(data any) Response { return phttp.Bare(data) }

// NoContent returns a 204 response
func NoContent() Response { return phttp.NoContent() }

// Error returns a response that maps err to status and envelope
func Error(err error) Response { return phttp.Error(err) }

// Call adapts a handler that takes no body; fn may return a Response to take full control
func Call(fn func(*http.Request) (any, error)) Handler {
	return phttp.JSONHandlerNoBody(fn)
}

// Handle adapts a Response-returning function
func Handle(fn func(*http.Request) Response) Handler {
	return phttp.Handle(fn)
}
