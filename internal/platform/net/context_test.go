package net_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	pnet "openship/internal/platform/net"

	"github.com/go-chi/chi/v5"
)

func TestWithRequest_RequestID(t *testing.T) {
	base := context.Background()

	ctx := pnet.WithRequest(base, "req-123")
	if got := pnet.RequestID(ctx); got != "req-123" {
		t.Fatalf("RequestID got %q want req-123", got)
	}

	if ctx := pnet.WithRequest(base, ""); ctx != base {
		t.Fatal("empty id should leave ctx unchanged")
	}
	if got := pnet.RequestID(base); got != "" {
		t.Fatalf("RequestID on bare ctx = %q", got)
	}
}

func TestRoutePattern(t *testing.T) {
	if got := pnet.RoutePattern(context.Background()); got != "" {
		t.Fatalf("RoutePattern without chi = %q", got)
	}

	var seen string
	r := chi.NewRouter()
	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/discovery/{part}", func(w http.ResponseWriter, req *http.Request) {
			seen = pnet.RoutePattern(req.Context())
		})
	})
	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/api/v1/discovery/graph", nil))
	if seen != "/api/v1/discovery/{part}" {
		t.Fatalf("RoutePattern = %q", seen)
	}
}
