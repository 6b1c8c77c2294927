// Package service assembles discovery documents from the graph artifact and the project manifest
package service

import (
	"context"
	"errors"
	"os"

	"openship/internal/core/graph"
	"openship/internal/core/manifest"
	"openship/internal/core/version"
	perr "openship/internal/platform/errors"
	"openship/internal/platform/logger"
	pnet "openship/internal/platform/net"
	"openship/internal/platform/validate"
	"openship/internal/services/api/discovery/domain"

	"github.com/rs/zerolog"
)

// Service defines the discovery service contract
type Service interface {
	domain.ServicePort
	domain.ProbePort
}

// Config locates the inputs
type Config struct {
	GraphPath    string
	ManifestPath string
	// MaxLineBytes caps one artifact line; 0 keeps the reader default
	MaxLineBytes int
}

// Svc implements Service
type Svc struct {
	cfg      Config
	src      domain.GraphSource
	manifest domain.ManifestLoader
	log      *logger.Logger
}

// New builds a Svc; nil src and load fall back to graph.NewReader and manifest.Load
func New(cfg Config, src domain.GraphSource, load domain.ManifestLoader, log *logger.Logger) *Svc {
	if cfg.GraphPath == "" {
		panic("discovery.Service requires a graph path")
	}
	if log == nil {
		log = logger.Named("discovery")
	}
	if src == nil {
		src = graph.NewReader(graph.WithLogger(log), graph.WithMaxLineSize(cfg.MaxLineBytes))
	}
	if load == nil {
		load = manifest.Load
	}
	return &Svc{cfg: cfg, src: src, manifest: load, log: log}
}

// Discover reads the artifact and the manifest; only graph failures are returned
func (s *Svc) Discover(ctx context.Context) (domain.Response, error) {
	g, err := s.readGraph(ctx)
	if err != nil {
		return domain.Response{}, err
	}

	out := domain.Response{
		Framework: manifest.Framework{Name: manifest.FrameworkName},
		Runtime:   version.Runtime(),
		Build:     version.Info(),
		Graph:     g,
	}
	if s.cfg.ManifestPath == "" {
		return out, nil
	}
	m, err := s.manifest(s.cfg.ManifestPath)
	if err != nil {
		s.log.Warn().Err(err).Str("path", s.cfg.ManifestPath).Msg("discovery: manifest unavailable, omitting application identity")
		return out, nil
	}
	app := m.Application()
	out.Application = &app
	out.Framework = m.Framework()
	return out, nil
}

// Graph reads the artifact and narrows the nodes to q.Scope, then to the dependents of q.Dep
func (s *Svc) Graph(ctx context.Context, q domain.GraphQuery) (domain.Graph, error) {
	if err := validate.Struct(q); err != nil {
		return domain.Graph{}, err
	}
	g, err := s.readGraph(ctx)
	if err != nil {
		return g, err
	}
	if q.Scope != "" {
		kept := make([]graph.Record, 0, g.Stats.ByScope[q.Scope])
		for _, rec := range g.Nodes {
			if rec.S == q.Scope {
				kept = append(kept, rec)
			}
		}
		g.Nodes = kept
	}
	if q.Dep != "" {
		g.Nodes = graph.Dependents(g.Nodes, q.Dep)
	}
	return g, nil
}

// ProbeArtifact checks that the artifact is a readable regular file
func (s *Svc) ProbeArtifact(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return perr.Wrap(err, perr.ErrorCodeUnavailable, "discovery: probe canceled")
	}
	return probeFile(s.cfg.GraphPath, "graph artifact")
}

// ProbeManifest checks that package.json is a readable regular file
func (s *Svc) ProbeManifest(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return perr.Wrap(err, perr.ErrorCodeUnavailable, "discovery: probe canceled")
	}
	if s.cfg.ManifestPath == "" {
		return perr.NotFoundf("manifest path not configured")
	}
	return probeFile(s.cfg.ManifestPath, "manifest")
}

func (s *Svc) readGraph(ctx context.Context) (domain.Graph, error) {
	res, err := s.src.Read(ctx, s.cfg.GraphPath)
	if err != nil {
		out := publicError(err, "graph artifact")
		lvl := zerolog.WarnLevel
		if pnet.IsServerError(out) {
			lvl = zerolog.ErrorLevel
		}
		s.log.WithLevel(lvl).
			Err(err).
			Str("path", s.cfg.GraphPath).
			Bool("retryable", perr.IsRetryable(out)).
			Msg("discovery: graph read failed")
		return domain.Graph{}, out
	}
	return domain.Graph{Nodes: res.Records, Stats: res.Stats}, nil
}

func probeFile(path, what string) error {
	fi, err := os.Stat(path)
	if err != nil {
		return publicError(err, what)
	}
	if fi.IsDir() {
		return perr.InvalidArgf("%s is a directory", what)
	}
	f, err := os.Open(path)
	if err != nil {
		return publicError(err, what)
	}
	return f.Close()
}

// publicError keeps the classification of err but replaces its message with one that carries no local path
func publicError(err error, what string) error {
	code := perr.CodeOf(err)
	if code == perr.ErrorCodeUnknown {
		code = perr.FSCode(err)
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		code = perr.ErrorCodeUnavailable
	}
	switch code {
	case perr.ErrorCodeNotFound:
		return perr.Wrapf(err, code, "%s not found", what)
	case perr.ErrorCodeForbidden:
		return perr.Wrapf(err, code, "%s not readable", what)
	default:
		return perr.Wrapf(err, code, "%s unavailable", what)
	}
}
