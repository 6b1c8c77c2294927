package http

import "net/http"

// JSONHandlerNoBody calls fn and wraps its result; fn may return a Response to control status, headers or envelope
func JSONHandlerNoBody(fn func(*http.Request) (any, error)) Handler {
	return Handle(func(r *http.Request) Response {
		out, err := fn(r)
		if err != nil {
			return Error(err)
		}
		if resp, ok := out.(Response); ok {
			return resp
		}
		return OK(out)
	})
}
