package http

import (
	stdhttp "net/http"

	mw "github.com/go-chi/chi/v5/middleware"
)

// ProfilerOptions control the pprof mount
// Users maps basic auth users to passwords; empty leaves the endpoints open
type ProfilerOptions struct {
	Enabled bool
	Prefix  string
	Users   map[string]string
}

// MountProfiler serves chi's pprof mux under opt.Prefix ("/debug" when empty)
func MountProfiler(r Router, opt ProfilerOptions) {
	if !opt.Enabled {
		return
	}
	prefix := opt.Prefix
	if prefix == "" {
		prefix = "/debug"
	}
	h := stdhttp.StripPrefix(prefix, mw.Profiler())
	r.Group(func(g Router) {
		if len(opt.Users) > 0 {
			g.Use(mw.BasicAuth("pprof", opt.Users))
		}
		g.Handle(prefix, h)
		g.Handle(prefix+"/*", h)
	})
}
