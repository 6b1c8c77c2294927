package httpkit

import (
	"net/http"
	"strings"
)

// APIV1Prefix is where the v1 API is mounted
const APIV1Prefix = "/api/v1"

// MountAPI scopes mount under /api/{version}; "v2", "/v2/" and "v2/" are equivalent
func MountAPI(r Router, version string, mw []func(http.Handler) http.Handler, mount func(Router)) {
	MountUnder(r, "/api/"+strings.Trim(version, "/"), mw, mount)
}

// MountAPIV1 mounts under APIV1Prefix
func MountAPIV1(r Router, mw []func(http.Handler) http.Handler, mount func(Router)) {
	MountUnder(r, APIV1Prefix, mw, mount)
}
