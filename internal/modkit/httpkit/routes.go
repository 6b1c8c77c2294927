package httpkit

import "net/http"

// MountUnder mounts a subrouter at prefix with per-scope middleware
// an empty prefix mounts a group on r itself, for root-level aliases
func MountUnder(r Router, prefix string, mw []func(http.Handler) http.Handler, mount func(Router)) {
	scoped := func(sub Router) {
		if len(mw) > 0 {
			sub.Use(mw...)
		}
		mount(sub)
	}
	if prefix == "" || prefix == "/" {
		r.Group(scoped)
		return
	}
	r.Route(prefix, scoped)
}
