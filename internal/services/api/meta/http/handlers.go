// Package http provides meta endpoints
package http

import (
	stdctx "context"
	"net/http"
	"time"

	"openship/internal/core/version"
	"openship/internal/modkit/httpkit"
	perr "openship/internal/platform/errors"
)

// Probe is satisfied by ports that can check their inputs without doing the work
type Probe interface {
	ProbeArtifact(stdctx.Context) error
	ProbeManifest(stdctx.Context) error
}

// Deps are the handler dependencies
type Deps struct {
	ServiceName string
	InstanceID  string
	StartedAt   time.Time
	// Probe may be nil; readiness then reports the checks as skipped
	Probe Probe
	// ReadyTimeout bounds all checks together; 0 uses 2s
	ReadyTimeout time.Duration
}

type handlers struct {
	deps Deps
	now  func() time.Time
}

// Register mounts the meta routes
func Register(r httpkit.Router, d Deps) {
	if d.ReadyTimeout <= 0 {
		d.ReadyTimeout = 2 * time.Second
	}
	h := &handlers{deps: d, now: time.Now}

	// mount routes
	httpkit.GetHead(r, "/health", h.health)
	httpkit.GetHead(r, "/ready", h.ready)
	httpkit.Get(r, "/version", h.version)
	httpkit.Get(r, "/service", h.service)
}

//
// Swagger DTOs and route docs
//

// HealthResponse is the health payload
// swagger:model
type HealthResponse struct {
	OK      bool   `json:"ok"       example:"true"`
	Service string `json:"service"  example:"openship-api"`
	Started string `json:"started"  example:"2026-03-02T13:00:00Z"`
	Now     string `json:"now"      example:"2026-03-02T13:05:00Z"`
}

// ReadyCheck describes a single input check
type ReadyCheck struct {
	Name   string `json:"name"   example:"graph"`
	Status string `json:"status" example:"ok"` // ok fail skipped
	Error  string `json:"error,omitempty" example:"graph artifact not found"`
}

// ReadyResponse summarizes readiness
type ReadyResponse struct {
	Status string       `json:"status" example:"ok"` // ok degraded fail
	Checks []ReadyCheck `json:"checks"`
	Now    string       `json:"now"    example:"2026-03-02T13:05:00Z"`
}

// ServiceResponse describes service info
type ServiceResponse struct {
	Name     string `json:"name"     example:"openship-api"`
	Instance string `json:"instance" example:"5f0c7f1e-8f3a-4a59-9d0e-2b1f3b9f6a11"`
	Started  string `json:"started"  example:"2026-03-02T13:00:00Z"`
	Uptime   int64  `json:"uptime"   example:"300"`
}

// swagger:route GET /meta/health Meta metaHealth
// @Summary Health check
// @Tags Meta
// @Produce json
// @Success 200 {object} HealthResponse "ok"
// @Router /meta/health [get]
func (h *handlers) health(_ *http.Request) (any, error) {
	return HealthResponse{
		OK:      true,
		Service: h.deps.ServiceName,
		Started: h.deps.StartedAt.UTC().Format(time.RFC3339),
		Now:     h.now().UTC().Format(time.RFC3339),
	}, nil
}

// swagger:route GET /meta/ready Meta metaReady
// @Summary Readiness probe; fails when the graph artifact cannot be read
// @Tags Meta
// @Produce json
// @Success 200 {object} ReadyResponse "ok or degraded"
// @Failure 503 {object} httpkit.Envelope "graph artifact unreadable"
// @Router /meta/ready [get]
func (h *handlers) ready(r *http.Request) (any, error) {
	ctx, cancel := stdctx.WithTimeout(r.Context(), h.deps.ReadyTimeout)
	defer cancel()

	run := func(name string, fn func(stdctx.Context) error) ReadyCheck {
		if err := fn(ctx); err != nil {
			return ReadyCheck{Name: name, Status: "fail", Error: perr.WireFrom(err).Message}
		}
		return ReadyCheck{Name: name, Status: "ok"}
	}

	g := ReadyCheck{Name: "graph", Status: "skipped"}
	m := ReadyCheck{Name: "manifest", Status: "skipped"}
	if p := h.deps.Probe; p != nil {
		g = run("graph", p.ProbeArtifact)
		m = run("manifest", p.ProbeManifest)
	}

	// a missing manifest only drops identity from discovery
	overall := "ok"
	if m.Status != "ok" {
		overall = "degraded"
	}
	out := ReadyResponse{
		Status: overall,
		Checks: []ReadyCheck{g, m},
		Now:    h.now().UTC().Format(time.RFC3339),
	}
	if g.Status == "fail" {
		out.Status = "fail"
		return httpkit.Response{Status: http.StatusServiceUnavailable, Body: out}.WithHeader("Retry-After", "5"), nil
	}
	return out, nil
}

// swagger:route GET /meta/version Meta metaVersion
// @Summary Build and runtime info
// @Tags Meta
// @Produce json
// @Success 200 {object} VersionResponse "ok"
// @Router /meta/version [get]
func (h *handlers) version(_ *http.Request) (any, error) {
	return VersionResponse{Build: version.Info(), Runtime: version.Runtime()}, nil
}

// VersionResponse reports build and runtime identity
type VersionResponse struct {
	Build   version.BuildInfo   `json:"build"`
	Runtime version.RuntimeInfo `json:"runtime"`
}

// swagger:route GET /meta/service Meta metaService
// @Summary Service info and uptime
// @Tags Meta
// @Produce json
// @Success 200 {object} ServiceResponse "ok"
// @Router /meta/service [get]
func (h *handlers) service(_ *http.Request) (any, error) {
	uptime := h.now().Sub(h.deps.StartedAt)
	return ServiceResponse{
		Name:     h.deps.ServiceName,
		Instance: h.deps.InstanceID,
		Started:  h.deps.StartedAt.UTC().Format(time.RFC3339),
		Uptime:   int64(uptime / time.Second),
	}, nil
}
