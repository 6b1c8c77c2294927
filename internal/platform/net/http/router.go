package http

import "net/http"

// Handler is the platform handler type used everywhere
type Handler = func(http.ResponseWriter, *http.Request)

// Router is the surface modules mount against; the service is read-only so only safe verbs are exposed
type Router interface {
	Get(path string, h Handler)
	Head(path string, h Handler)
	Options(path string, h Handler)

	Handle(path string, h http.Handler)
	Use(mw ...func(http.Handler) http.Handler)
	Group(fn func(Router))
	Route(pattern string, fn func(Router))

	// NotFound and MethodNotAllowed replace chi's plain-text fallbacks
	NotFound(h Handler)
	MethodNotAllowed(h Handler)

	Mux() http.Handler
}
