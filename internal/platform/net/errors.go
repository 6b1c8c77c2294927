package net

import (
	"net/http"

	perr "openship/internal/platform/errors"
)

// HTTPStatus maps a project error to an http status; nil is 200
func HTTPStatus(err error) int {
	if err == nil {
		return http.StatusOK
	}
	return perr.HTTPStatus(err)
}

// IsServerError reports whether err maps to a 5xx status
func IsServerError(err error) bool {
	return HTTPStatus(err) >= http.StatusInternalServerError
}
