package http_test

import (
	"net/http"
	"testing"

	"openship/internal/platform/config"
	perr "openship/internal/platform/errors"
	phttp "openship/internal/platform/net/http"
)

func TestGetJSONAndHeadJSON(t *testing.T) {
	r := phttp.NewServer(config.New()).Router()
	phttp.GetJSON(r, "/value", func(*http.Request) (any, error) { return map[string]int{"n": 1}, nil })
	phttp.GetJSON(r, "/bare", func(*http.Request) (any, error) { return phttp.Bare("x"), nil })
	phttp.GetJSON(r, "/fail", func(*http.Request) (any, error) { return nil, perr.NotFoundf("missing") })
	phttp.HeadJSON(r, "/value", func(*http.Request) (any, error) { return map[string]int{"n": 1}, nil })

	rec := serveReq(r.Mux(), reqWithReqID("GET", "/value", ""))
	if env := decodeEnvelope(t, rec); rec.Code != http.StatusOK || env.Data == nil {
		t.Fatalf("GET /value: %d %+v", rec.Code, env)
	}
	if rec := serveReq(r.Mux(), reqWithReqID("GET", "/bare", "")); rec.Body.String() != "\"x\"\n" {
		t.Fatalf("GET /bare body = %q", rec.Body.String())
	}
	if rec := serveReq(r.Mux(), reqWithReqID("GET", "/fail", "")); rec.Code != http.StatusNotFound {
		t.Fatalf("GET /fail: %d", rec.Code)
	}
	if rec := serveReq(r.Mux(), reqWithReqID("HEAD", "/value", "")); rec.Code != http.StatusOK {
		t.Fatalf("HEAD /value: %d", rec.Code)
	}
}
