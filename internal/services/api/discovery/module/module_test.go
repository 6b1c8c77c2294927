package module

import (
	"context"
	stdhttp "net/http"
	"net/http/httptest"
	"testing"

	"openship/internal/modkit"
	"openship/internal/modkit/module"
	phttp "openship/internal/platform/net/http"
	kit "openship/internal/platform/testkit"
	"openship/internal/services/api/discovery/domain"

	"github.com/go-chi/chi/v5"
)

type fakeService struct{ probes int }

func (f *fakeService) Discover(context.Context) (domain.Response, error) {
	return domain.Response{}, nil
}

func (f *fakeService) Graph(context.Context, domain.GraphQuery) (domain.Graph, error) {
	return domain.Graph{}, nil
}

func (f *fakeService) ProbeArtifact(context.Context) error {
	f.probes++
	return nil
}

func (f *fakeService) ProbeManifest(context.Context) error { return nil }

func TestNew_Routes(t *testing.T) {
	dir := t.TempDir()
	kit.WriteFile(t, dir, ".next/openship/graph", kit.NDJSON(`{"s":"app","o":"x"}`))

	m := New(modkit.Deps{ProjectDir: dir}).(*Module)
	if m.Name() != "discovery" {
		t.Fatalf("name = %q", m.Name())
	}

	r := phttp.AdaptChi(chi.NewRouter())
	m.MountRoutes(r)
	m.MountAlias(r)

	for _, path := range []string{"/discovery", "/discovery/graph", "/.openship"} {
		rec := httptest.NewRecorder()
		r.Mux().ServeHTTP(rec, httptest.NewRequest(stdhttp.MethodGet, path, nil))
		if rec.Code != stdhttp.StatusOK {
			t.Fatalf("%s = %d %s", path, rec.Code, rec.Body.String())
		}
	}
}

func TestNew_GraphPathOverride(t *testing.T) {
	dir := t.TempDir()
	p := kit.WriteFile(t, dir, "custom.ndjson", kit.NDJSON(`{"s":"app","o":"x"}`))

	m := New(modkit.Deps{ProjectDir: t.TempDir(), GraphPath: p})
	probe := module.MustPortsOf[domain.ProbePort](m)
	if err := probe.ProbeArtifact(context.Background()); err != nil {
		t.Fatalf("override should be probed: %v", err)
	}
}

func TestNew_InjectedService(t *testing.T) {
	fake := &fakeService{}
	m := New(modkit.Deps{}, modkit.WithPorts(Ports{Service: fake}), modkit.WithPrefix("/disc"))

	probe := module.MustPortsOf[domain.ProbePort](m)
	_ = probe.ProbeArtifact(context.Background())
	if fake.probes != 1 {
		t.Fatal("injected service should back the ports")
	}

	r := phttp.AdaptChi(chi.NewRouter())
	m.MountRoutes(r)
	rec := httptest.NewRecorder()
	r.Mux().ServeHTTP(rec, httptest.NewRequest(stdhttp.MethodGet, "/disc/graph", nil))
	if rec.Code != stdhttp.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
}
