package httpkit

import (
	"net/http"

	phttp "openship/internal/platform/net/http"
)

// Get registers a body-less GET handler through the envelope adapter
func Get(r Router, path string, h func(*http.Request) (any, error)) {
	phttp.GetJSON(r, path, h)
}

// GetHead registers h for both GET and HEAD, for probes that only look at the status
func GetHead(r Router, path string, h func(*http.Request) (any, error)) {
	phttp.GetJSON(r, path, h)
	phttp.HeadJSON(r, path, h)
}
