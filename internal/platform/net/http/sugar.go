package http

import "net/http"

// GetJSON mounts a body-less JSON handler for GET
func GetJSON(r Router, path string, h func(*http.Request) (any, error)) {
	r.Get(path, JSONHandlerNoBody(h))
}

// HeadJSON mounts h for HEAD; the body is computed and dropped by net/http
func HeadJSON(r Router, path string, h func(*http.Request) (any, error)) {
	r.Head(path, JSONHandlerNoBody(h))
}
