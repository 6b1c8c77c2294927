package middleware

import (
	"net/http"
	"time"

	"openship/internal/platform/logger"
	pnet "openship/internal/platform/net"

	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"
)

// AccessLogOptions configures the zerolog access log
type AccessLogOptions struct {
	// Slow logs requests taking >= Slow at warn; 0 disables
	Slow time.Duration
	// Quiet paths log at debug, e.g. probes hit every few seconds
	Quiet []string
	// Log replaces the root logger; request fields are still added
	Log *logger.Logger
}

// AccessLogZerolog logs one line per request once the handler returns
// 5xx logs at error, slow requests at warn, quiet paths at debug
func AccessLogZerolog(opt AccessLogOptions) Middleware {
	quiet := make(map[string]struct{}, len(opt.Quiet))
	for _, p := range opt.Quiet {
		quiet[p] = struct{}{}
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ww := chimw.NewWrapResponseWriter(w, r.ProtoMajor)
			start := time.Now()
			next.ServeHTTP(ww, r)
			elapsed := time.Since(start)

			// chi reports 0 when the handler never wrote
			status := ww.Status()
			if status == 0 {
				status = http.StatusOK
			}

			lvl := zerolog.InfoLevel
			if _, ok := quiet[r.URL.Path]; ok {
				lvl = zerolog.DebugLevel
			}
			if opt.Slow > 0 && elapsed >= opt.Slow {
				lvl = zerolog.WarnLevel
			}
			if status >= http.StatusInternalServerError {
				lvl = zerolog.ErrorLevel
			}

			accessLogger(r, opt.Log).WithLevel(lvl).
				Int("status", status).
				Dur("elapsed", elapsed).
				Str("method", r.Method).
				Str("path", r.URL.Path).
				Int("bytes", ww.BytesWritten()).
				Msg("request done")
		})
	}
}

func accessLogger(r *http.Request, base *logger.Logger) *logger.Logger {
	ctx := r.Context()
	if base == nil {
		return logger.C(logger.WithRequest(ctx, pnet.RequestID(ctx), pnet.RoutePattern(ctx)))
	}
	l := base.With().Str("request_id", pnet.RequestID(ctx)).Str("route", pnet.RoutePattern(ctx)).Logger()
	return &l
}
