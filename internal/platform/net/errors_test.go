package net_test

import (
	"errors"
	"net/http"
	"testing"

	perr "openship/internal/platform/errors"
	pnet "openship/internal/platform/net"
)

func TestHTTPStatus(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		want   int
		server bool
	}{
		{"nil error -> 200", nil, http.StatusOK, false},
		{"not found -> 404", perr.NotFoundf("graph artifact"), http.StatusNotFound, false},
		{"forbidden -> 403", perr.New(perr.ErrorCodeForbidden, "denied"), http.StatusForbidden, false},
		{"unavailable -> 503", perr.Unavailablef("read failed"), http.StatusServiceUnavailable, true},
		{"foreign -> 500", errors.New("boom"), http.StatusInternalServerError, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := pnet.HTTPStatus(tt.err); got != tt.want {
				t.Fatalf("HTTPStatus() = %d, want %d", got, tt.want)
			}
			if got := pnet.IsServerError(tt.err); got != tt.server {
				t.Fatalf("IsServerError() = %v, want %v", got, tt.server)
			}
		})
	}
}
