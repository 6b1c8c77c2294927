// Package http provides http transport for discovery
package http

import (
	stdhttp "net/http"

	"openship/internal/modkit/httpkit"
	"openship/internal/services/api/discovery/domain"
	svc "openship/internal/services/api/discovery/service"
)

// AliasPath is the root route the build plugin advertises
const AliasPath = "/.openship"

// Register mounts discovery endpoints on the given router
func Register(r httpkit.Router, s svc.Service) {
	h := &handlers{svc: s}

	// full document
	httpkit.Get(r, "/", h.discover)

	// graph only, optionally narrowed to one scope or to the dependents of one key
	httpkit.Get(r, "/graph", h.graph)
}

// RegisterAlias mounts the unversioned alias that serves the bare document
func RegisterAlias(r httpkit.Router, s svc.Service) {
	h := &handlers{svc: s}
	r.Get(AliasPath, httpkit.Handle(h.alias))
}

type handlers struct{ svc svc.Service }

// swagger:route GET /discovery Discovery discoveryGet
// @Summary Application, framework and runtime identity with the dependency graph
// @Tags Discovery
// @Produce json
// @Success 200 {object} domain.Response "ok"
// @Failure 404 {object} httpkit.Envelope "graph artifact not found"
// @Router /discovery [get]
func (h *handlers) discover(r *stdhttp.Request) (any, error) {
	return h.svc.Discover(r.Context())
}

// swagger:route GET /discovery/graph Discovery discoveryGraph
// @Summary Deduplicated dependency graph and read stats
// @Tags Discovery
// @Produce json
// @Param scope query string false "keep only nodes with this scope"
// @Param dep query string false "keep only nodes that depend on this mangled key"
// @Success 200 {object} domain.Graph "ok"
// @Failure 400 {object} httpkit.Envelope "invalid scope or dep"
// @Failure 404 {object} httpkit.Envelope "graph artifact not found"
// @Router /discovery/graph [get]
func (h *handlers) graph(r *stdhttp.Request) (any, error) {
	v := r.URL.Query()
	q := domain.GraphQuery{Scope: v.Get("scope"), Dep: v.Get("dep")}
	return h.svc.Graph(r.Context(), q)
}

// alias writes the document without the envelope; failures are still enveloped
func (h *handlers) alias(r *stdhttp.Request) httpkit.Response {
	out, err := h.svc.Discover(r.Context())
	if err != nil {
		return httpkit.Error(err)
	}
	return httpkit.Bare(out)
}
