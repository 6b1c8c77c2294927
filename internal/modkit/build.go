package modkit

import (
	"net/http"

	"openship/internal/modkit/httpkit"
	pstrings "openship/internal/platform/strings"
)

// Middleware is the chi-compatible middleware shape modules accept
type Middleware = func(http.Handler) http.Handler

// Built is what a module keeps after its options are applied
// Subrouter and Register are never nil once Build returns
type Built struct {
	Name   string
	Prefix string
	Mw     []Middleware
	Ports  any

	Subrouter func(httpkit.Router) httpkit.Router
	Register  func(httpkit.Router)
}

// Option edits a Built during Build; options apply in order and later ones win
type Option func(*Built)

// WithName sets the module name used in logs and the registry
func WithName(name string) Option { return func(b *Built) { b.Name = name } }

// WithPrefix sets the mount prefix; "" mounts at the router root
func WithPrefix(prefix string) Option { return func(b *Built) { b.Prefix = prefix } }

// WithMiddlewares appends module-scoped middleware, outermost first
func WithMiddlewares(mw ...Middleware) Option {
	return func(b *Built) { b.Mw = append(b.Mw, mw...) }
}

// WithPorts hands a module the ports it consumes from another module
func WithPorts[T any](p T) Option { return func(b *Built) { b.Ports = p } }

// WithSubrouter wraps the scoped router before any route is registered
func WithSubrouter(fn func(httpkit.Router) httpkit.Router) Option {
	return func(b *Built) { b.Subrouter = fn }
}

// WithRegister runs fn after the module registered its own routes
func WithRegister(fn func(httpkit.Router)) Option { return func(b *Built) { b.Register = fn } }

// Build applies opts to a zero Built and fills the no-op hooks
func Build(opts ...Option) Built {
	var b Built
	for _, o := range opts {
		o(&b)
	}
	// detach from any slice a caller passed to WithMiddlewares
	b.Mw = append([]Middleware(nil), b.Mw...)
	if b.Subrouter == nil {
		b.Subrouter = func(r httpkit.Router) httpkit.Router { return r }
	}
	if b.Register == nil {
		b.Register = func(httpkit.Router) {}
	}
	return b
}

// Mount scopes own under Prefix with the module middleware, then runs the Register hook
func (b Built) Mount(r httpkit.Router, own func(httpkit.Router)) {
	var prefix string
	if b.Prefix != "" {
		prefix = pstrings.MustPrefix(b.Prefix)
	}
	httpkit.MountUnder(r, prefix, b.Mw, func(sub httpkit.Router) {
		sub = b.Subrouter(sub)
		if own != nil {
			own(sub)
		}
		b.Register(sub)
	})
}
