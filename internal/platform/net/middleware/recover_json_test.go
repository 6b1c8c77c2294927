package middleware_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	perr "openship/internal/platform/errors"
	pnet "openship/internal/platform/net"
	"openship/internal/platform/net/middleware"
	kit "openship/internal/platform/testkit"
)

func TestRecoverJSON_WritesEnvelope(t *testing.T) {
	h := middleware.RecoverJSON(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic("graph exploded")
	}))

	req := httptest.NewRequest(http.MethodGet, "/api/v1/discovery", nil)
	req = req.WithContext(pnet.WithRequest(req.Context(), "rid-1"))
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)

	if rr.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d", rr.Code)
	}
	if rr.Header().Get("X-Request-ID") != "rid-1" {
		t.Fatalf("request id header missing")
	}
	var env pnet.Wire
	if err := json.Unmarshal(rr.Body.Bytes(), &env); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if env.Code != perr.ErrorCodePanic || env.Error != "panic recovered" || env.RequestID != "rid-1" {
		t.Fatalf("envelope = %+v", env)
	}
}

func TestRecoverJSON_PassThrough(t *testing.T) {
	h := middleware.RecoverJSON(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusAccepted)
	}))
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))
	if rr.Code != http.StatusAccepted {
		t.Fatalf("status = %d", rr.Code)
	}
}

func TestRecoverJSON_RepanicsAbortHandler(t *testing.T) {
	h := middleware.RecoverJSON(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic(http.ErrAbortHandler)
	}))
	kit.MustPanic(t, func() {
		h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
	})
}
