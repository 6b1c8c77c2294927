package domain

import (
	"context"

	"openship/internal/core/graph"
	"openship/internal/core/manifest"
)

// ServicePort is consumed by handlers and other modules
type ServicePort interface {
	Discover(ctx context.Context) (Response, error)
	Graph(ctx context.Context, q GraphQuery) (Graph, error)
}

// ProbePort reports whether the inputs of discovery are readable without parsing them
type ProbePort interface {
	ProbeArtifact(ctx context.Context) error
	ProbeManifest(ctx context.Context) error
}

// GraphSource reads a graph artifact; *graph.Reader implements it
type GraphSource interface {
	Read(ctx context.Context, path string) (graph.Result, error)
}

// ManifestLoader loads a package.json; manifest.Load implements it
type ManifestLoader func(path string) (manifest.Manifest, error)
