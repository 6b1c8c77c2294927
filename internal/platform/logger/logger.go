// Package logger wraps zerolog with process-wide defaults and request-scoped children
package logger

import (
	"context"
	"io"
	"os"
	"runtime/debug"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"openship/internal/platform/config/raw"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/pkgerrors"
)

// DefaultService names the process when LOG_SERVICE is unset
const DefaultService = "openship"

// Options configures the root logger
type Options struct {
	Level        string
	Format       string // console or json
	Service      string
	Component    string
	Writer       io.Writer
	WithCaller   bool
	SampleEvery  int
	StaticFields map[string]string
}

// FromEnv reads LOG_* through the raw config view; config itself logs, so it cannot be used here
func FromEnv() Options {
	rc := raw.New().Prefix("LOG_")
	return Options{
		Level:       strings.ToLower(rc.Get("LEVEL", "info")),
		Format:      strings.ToLower(rc.Get("FORMAT", "console")),
		Service:     rc.Get("SERVICE", DefaultService),
		Component:   rc.Get("COMPONENT", ""),
		WithCaller:  rc.GetBool("CALLER", false),
		SampleEvery: rc.GetInt("SAMPLE_EVERY", 0),
	}
}

var (
	once   sync.Once
	root   atomic.Pointer[zerolog.Logger]
	inited atomic.Bool
)

// Logger is the project-wide logging type
type Logger = zerolog.Logger

// Get returns the root logger, initialising it from the environment on first use
func Get() *Logger {
	if !inited.Load() {
		Init(FromEnv())
	}
	return root.Load()
}

// Init builds the root logger; only the first call has any effect
func Init(opt Options) {
	once.Do(func() {
		zerolog.ErrorStackMarshaler = pkgerrors.MarshalStack
		zerolog.TimeFieldFormat = time.RFC3339Nano

		l := build(opt)
		root.Store(&l)
		inited.Store(true)
	})
}

// build assembles a logger from opt without touching process state
func build(opt Options) zerolog.Logger {
	w := opt.Writer
	if w == nil {
		w = os.Stderr
	}
	if opt.Format == "console" {
		w = zerolog.ConsoleWriter{Out: w, TimeFormat: time.RFC3339}
	}

	fields := map[string]string{}
	if bi, ok := debug.ReadBuildInfo(); ok && bi != nil {
		fields["go_version"] = bi.GoVersion
	}
	for k, v := range opt.StaticFields {
		fields[k] = v
	}
	// service and component always win over static fields
	if opt.Service != "" {
		fields["service"] = opt.Service
	}
	if opt.Component != "" {
		fields["component"] = opt.Component
	}

	zc := zerolog.New(w).Level(parseLevel(opt.Level)).With().Timestamp()
	for k, v := range fields {
		zc = zc.Str(k, v)
	}
	if opt.WithCaller {
		zc = zc.Caller()
	}
	l := zc.Logger()
	if opt.SampleEvery > 1 {
		l = l.Sample(&zerolog.BasicSampler{N: uint32(opt.SampleEvery)})
	}
	return l
}

func parseLevel(s string) zerolog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "trace":
		return zerolog.TraceLevel
	case "debug":
		return zerolog.DebugLevel
	case "info":
		return zerolog.InfoLevel
	case "warn", "warning":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	case "fatal":
		return zerolog.FatalLevel
	case "panic":
		return zerolog.PanicLevel
	case "disabled", "off":
		return zerolog.Disabled
	default:
		return zerolog.InfoLevel
	}
}

type ctxKey struct{ name string }

var (
	keyRequestID = ctxKey{"req_id"}
	keyRoute     = ctxKey{"route"}
)

// WithRequest stores the request id and matched route on ctx
func WithRequest(ctx context.Context, reqID, route string) context.Context {
	if reqID != "" {
		ctx = context.WithValue(ctx, keyRequestID, reqID)
	}
	if route != "" {
		ctx = context.WithValue(ctx, keyRoute, route)
	}
	return ctx
}

// C returns a child of the root logger carrying request_id and route from ctx
func C(ctx context.Context) *Logger {
	b := Get().With()
	if s, ok := ctx.Value(keyRequestID).(string); ok && s != "" {
		b = b.Str("request_id", s)
	}
	if s, ok := ctx.Value(keyRoute).(string); ok && s != "" {
		b = b.Str("route", s)
	}
	l := b.Logger()
	return &l
}

// Named returns a child logger with a component field
func Named(component string) *Logger {
	if component == "" {
		return Get()
	}
	l := Get().With().Str("component", component).Logger()
	return &l
}

// Nop returns a logger that discards everything
func Nop() *Logger {
	l := zerolog.Nop()
	return &l
}
