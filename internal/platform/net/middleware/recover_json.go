package middleware

import (
	"net/http"
	"runtime/debug"

	perr "openship/internal/platform/errors"
	"openship/internal/platform/logger"
	pnet "openship/internal/platform/net"
	phttp "openship/internal/platform/net/http"
)

// RecoverJSON turns a panic into a 500 envelope and logs the stack with the request id
// http.ErrAbortHandler is re-panicked so net/http can abort the connection
func RecoverJSON(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			v := recover()
			if v == nil {
				return
			}
			if v == http.ErrAbortHandler {
				panic(v)
			}
			reqID := pnet.RequestID(r.Context())
			logger.C(r.Context()).Error().
				Str("request_id", reqID).
				Interface("panic", v).
				Bytes("stack", debug.Stack()).
				Msg("panic recovered")

			if reqID != "" {
				w.Header().Set("X-Request-ID", reqID)
			}
			status, body := pnet.Error(perr.PanicErrf("panic recovered"), reqID)
			phttp.JSON(w, status, body)
		}()
		next.ServeHTTP(w, r)
	})
}
