package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// chiRouter adapts chi.Router to Router at any nesting level
type chiRouter struct{ r chi.Router }

// AdaptChi adapts a *chi.Mux to a Router
func AdaptChi(m *chi.Mux) Router { return chiRouter{r: m} }

func (c chiRouter) Get(p string, h Handler)     { c.r.Method(http.MethodGet, p, http.HandlerFunc(h)) }
func (c chiRouter) Head(p string, h Handler)    { c.r.Method(http.MethodHead, p, http.HandlerFunc(h)) }
func (c chiRouter) Options(p string, h Handler) { c.r.Method(http.MethodOptions, p, http.HandlerFunc(h)) }

func (c chiRouter) Handle(p string, h http.Handler)           { c.r.Handle(p, h) }
func (c chiRouter) Use(mw ...func(http.Handler) http.Handler) { c.r.Use(mw...) }

func (c chiRouter) Group(fn func(Router)) {
	c.r.Group(func(sub chi.Router) { fn(chiRouter{r: sub}) })
}

func (c chiRouter) Route(pattern string, fn func(Router)) {
	c.r.Route(pattern, func(sub chi.Router) { fn(chiRouter{r: sub}) })
}

func (c chiRouter) NotFound(h Handler)         { c.r.NotFound(h) }
func (c chiRouter) MethodNotAllowed(h Handler) { c.r.MethodNotAllowed(h) }

// Mux returns the handler for this scope; chi.Router implements http.Handler
func (c chiRouter) Mux() http.Handler { return c.r }
