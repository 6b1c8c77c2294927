package http_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	perr "openship/internal/platform/errors"
	pnet "openship/internal/platform/net"
	phttp "openship/internal/platform/net/http"
)

func reqWithReqID(method, path, rid string) *http.Request {
	req := httptest.NewRequest(method, path, nil)
	return req.WithContext(pnet.WithRequest(req.Context(), rid))
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) phttp.Envelope {
	t.Helper()
	var env phttp.Envelope
	if err := json.Unmarshal(rec.Body.Bytes(), &env); err != nil {
		t.Fatalf("unmarshal envelope: %v (%s)", err, rec.Body.String())
	}
	return env
}

func TestJSON(t *testing.T) {
	rec := httptest.NewRecorder()
	phttp.JSON(rec, http.StatusTeapot, map[string]any{"k": "v"})
	if rec.Code != http.StatusTeapot {
		t.Fatalf("status = %d", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/json; charset=utf-8" {
		t.Fatalf("content type = %q", ct)
	}
}

func TestRespondOKAndError(t *testing.T) {
	rec := httptest.NewRecorder()
	phttp.RespondOK(rec, reqWithReqID("GET", "/", "rid-ok"), map[string]any{"k": "v"})
	env := decodeEnvelope(t, rec)
	if rec.Code != http.StatusOK || env.RequestID != "rid-ok" {
		t.Fatalf("bad ok envelope: %d %+v", rec.Code, env)
	}
	if m, ok := env.Data.(map[string]any); !ok || m["k"] != "v" {
		t.Fatalf("data = %#v", env.Data)
	}

	rec = httptest.NewRecorder()
	phttp.RespondError(rec, reqWithReqID("GET", "/", "rid-err"), perr.NotFoundf("graph artifact not found"))
	env = decodeEnvelope(t, rec)
	if rec.Code != http.StatusNotFound || env.Code != perr.ErrorCodeNotFound || env.Error != "graph artifact not found" {
		t.Fatalf("bad error envelope: %d %+v", rec.Code, env)
	}
}

func TestHandle_Variants(t *testing.T) {
	cases := []struct {
		name       string
		resp       phttp.Response
		wantStatus int
		check      func(t *testing.T, rec *httptest.ResponseRecorder)
	}{
		{
			name:       "ok enveloped",
			resp:       phttp.OK([]string{"a"}),
			wantStatus: http.StatusOK,
			check: func(t *testing.T, rec *httptest.ResponseRecorder) {
				if env := decodeEnvelope(t, rec); env.Status != "OK" || env.RequestID != "rid" {
					t.Fatalf("envelope = %+v", env)
				}
			},
		},
		{
			name:       "zero status defaults to 200",
			resp:       phttp.Response{Body: 1},
			wantStatus: http.StatusOK,
		},
		{
			name:       "bare body",
			resp:       phttp.Bare(map[string]string{"framework": "nextjs"}),
			wantStatus: http.StatusOK,
			check: func(t *testing.T, rec *httptest.ResponseRecorder) {
				var m map[string]any
				if err := json.Unmarshal(rec.Body.Bytes(), &m); err != nil {
					t.Fatal(err)
				}
				if m["framework"] != "nextjs" || m["status_code"] != nil {
					t.Fatalf("bare body wrapped: %v", m)
				}
			},
		},
		{
			name:       "bare error is still enveloped",
			resp:       phttp.Response{Body: perr.Unavailablef("read failed"), Bare: true},
			wantStatus: http.StatusServiceUnavailable,
			check: func(t *testing.T, rec *httptest.ResponseRecorder) {
				if env := decodeEnvelope(t, rec); env.Code != perr.ErrorCodeUnavailable {
					t.Fatalf("envelope = %+v", env)
				}
			},
		},
		{
			name:       "no content",
			resp:       phttp.NoContent(),
			wantStatus: http.StatusNoContent,
			check: func(t *testing.T, rec *httptest.ResponseRecorder) {
				if rec.Body.Len() != 0 {
					t.Fatalf("204 wrote a body: %q", rec.Body.String())
				}
			},
		},
		{
			name:       "headers",
			resp:       phttp.OK(nil).WithHeader("Cache-Control", "no-store"),
			wantStatus: http.StatusOK,
			check: func(t *testing.T, rec *httptest.ResponseRecorder) {
				if rec.Header().Get("Cache-Control") != "no-store" {
					t.Fatalf("header missing")
				}
			},
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			phttp.Handle(func(*http.Request) phttp.Response { return tc.resp })(rec, reqWithReqID("GET", "/", "rid"))
			if rec.Code != tc.wantStatus {
				t.Fatalf("status = %d, want %d", rec.Code, tc.wantStatus)
			}
			if tc.check != nil {
				tc.check(t, rec)
			}
		})
	}
}

func TestWithHeader_DoesNotMutateOriginal(t *testing.T) {
	base := phttp.OK(nil).WithHeader("X-A", "1")
	_ = base.WithHeader("X-B", "2")
	if base.Header.Get("X-B") != "" {
		t.Fatal("WithHeader mutated the receiver's header map")
	}
}

func TestFallbackHandlers(t *testing.T) {
	rec := httptest.NewRecorder()
	phttp.NotFound(rec, reqWithReqID("GET", "/missing", "rid"))
	if env := decodeEnvelope(t, rec); rec.Code != http.StatusNotFound || env.Code != perr.ErrorCodeNotFound || env.RequestID != "rid" {
		t.Fatalf("not found = %d %+v", rec.Code, env)
	}

	rec = httptest.NewRecorder()
	phttp.MethodNotAllowed(rec, reqWithReqID("POST", "/api/v1/discovery", ""))
	if env := decodeEnvelope(t, rec); rec.Code != http.StatusMethodNotAllowed || env.Error != "POST not allowed" {
		t.Fatalf("method not allowed = %d %+v", rec.Code, env)
	}
}
