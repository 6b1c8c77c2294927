// Package http writes JSON responses with a consistent envelope and hosts the server and router seams
package http

import (
	"encoding/json"
	stdhttp "net/http"

	perr "openship/internal/platform/errors"
	pnet "openship/internal/platform/net"
)

// Envelope is the standard response body for all enveloped endpoints
type Envelope = pnet.Wire

// JSON writes v as application/json with the given status
func JSON(w stdhttp.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// RespondOK writes a 200 envelope with data
func RespondOK(w stdhttp.ResponseWriter, r *stdhttp.Request, data any) {
	status, body := pnet.OK(data, pnet.RequestID(r.Context()))
	JSON(w, status, body)
}

// RespondError maps a project error into an envelope and writes it
func RespondError(w stdhttp.ResponseWriter, r *stdhttp.Request, err error) {
	status, body := pnet.Error(err, pnet.RequestID(r.Context()))
	JSON(w, status, body)
}

// Response is returned by return-style handlers
type Response struct {
	Status int
	Body   any
	Header stdhttp.Header
	// Bare writes Body as-is instead of wrapping it in an Envelope; errors are always enveloped
	Bare bool
}

// Handle adapts a Response-returning handler to net/http
func Handle(h func(r *stdhttp.Request) Response) stdhttp.HandlerFunc {
	return func(w stdhttp.ResponseWriter, r *stdhttp.Request) {
		h(r).write(w, r)
	}
}

func (resp Response) write(w stdhttp.ResponseWriter, r *stdhttp.Request) {
	for k, vv := range resp.Header {
		for _, v := range vv {
			w.Header().Add(k, v)
		}
	}

	status := resp.Status
	if status == 0 {
		status = stdhttp.StatusOK
	}
	if status == stdhttp.StatusNoContent {
		w.WriteHeader(status)
		return
	}

	reqID := pnet.RequestID(r.Context())
	if err, ok := resp.Body.(error); ok && err != nil {
		status, body := pnet.Error(err, reqID)
		JSON(w, status, body)
		return
	}
	if resp.Bare {
		JSON(w, status, resp.Body)
		return
	}
	_, body := pnet.Reply(status, resp.Body, reqID)
	JSON(w, status, body)
}

// OK returns a 200 enveloped response
func OK(data any) Response { return Response{Status: stdhttp.StatusOK, Body: data} }

// Bare returns a 200 response whose body is written without an envelope
func Bare(data any) Response { return Response{Status: stdhttp.StatusOK, Body: data, Bare: true} }

// NoContent returns a 204 response
func NoContent() Response { return Response{Status: stdhttp.StatusNoContent} }

// Error returns a response that maps the error to status and envelope
func Error(err error) Response { return Response{Body: err} }

// WithHeader returns a copy of resp with header k set to v
func (resp Response) WithHeader(k, v string) Response {
	h := resp.Header.Clone()
	if h == nil {
		h = stdhttp.Header{}
	}
	h.Set(k, v)
	resp.Header = h
	return resp
}

// NotFound writes a 404 envelope; mount with Router.NotFound
func NotFound(w stdhttp.ResponseWriter, r *stdhttp.Request) {
	RespondError(w, r, perr.NotFoundf("no route for %s", r.URL.Path))
}

// MethodNotAllowed writes a 405 envelope; mount with Router.MethodNotAllowed
func MethodNotAllowed(w stdhttp.ResponseWriter, r *stdhttp.Request) {
	status, body := pnet.Reply(stdhttp.StatusMethodNotAllowed, nil, pnet.RequestID(r.Context()))
	body.Error = r.Method + " not allowed"
	JSON(w, status, body)
}
