package http_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	phttp "openship/internal/platform/net/http"

	"github.com/go-chi/chi/v5"
)

func TestMountProfiler(t *testing.T) {
	creds := map[string]string{"ops": "s3cret"}
	cases := []struct {
		name string
		opt  phttp.ProfilerOptions
		path string
		user string
		want int
	}{
		{"disabled", phttp.ProfilerOptions{}, "/debug/pprof/", "", http.StatusNotFound},
		{"index", phttp.ProfilerOptions{Enabled: true}, "/debug/pprof/", "", http.StatusOK},
		{"cmdline", phttp.ProfilerOptions{Enabled: true}, "/debug/pprof/cmdline", "", http.StatusOK},
		{"custom prefix", phttp.ProfilerOptions{Enabled: true, Prefix: "/_ops"}, "/_ops/pprof/", "", http.StatusOK},
		{"auth required", phttp.ProfilerOptions{Enabled: true, Users: creds}, "/debug/pprof/", "", http.StatusUnauthorized},
		{"auth wrong", phttp.ProfilerOptions{Enabled: true, Users: creds}, "/debug/pprof/", "nope", http.StatusUnauthorized},
		{"auth ok", phttp.ProfilerOptions{Enabled: true, Users: creds}, "/debug/pprof/", "s3cret", http.StatusOK},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r := phttp.AdaptChi(chi.NewRouter())
			phttp.MountProfiler(r, tc.opt)

			req := httptest.NewRequest(http.MethodGet, tc.path, nil)
			if tc.user != "" {
				req.SetBasicAuth("ops", tc.user)
			}
			rec := httptest.NewRecorder()
			r.Mux().ServeHTTP(rec, req)
			if rec.Code != tc.want {
				t.Fatalf("%s = %d, want %d", tc.path, rec.Code, tc.want)
			}
		})
	}
}
