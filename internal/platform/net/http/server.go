package http

import (
	"context"
	"errors"
	"net"
	stdhttp "net/http"
	"time"

	"openship/internal/platform/config"
	"openship/internal/platform/logger"

	"github.com/go-chi/chi/v5"
)

// Server is a thin wrapper over chi and net/http.Server
type Server struct {
	addr string
	mux  *chi.Mux
	srv  *stdhttp.Server
	// grace bounds Shutdown when Run's ctx is canceled
	grace time.Duration
}

// NewServer builds a server from cfg; opts receive the mux so callers can mount routes and middleware
// keys (under cfg's prefix): API_PORT, API_READ_TIMEOUT, API_WRITE_TIMEOUT, API_IDLE_TIMEOUT, API_SHUTDOWN_GRACE
func NewServer(cfg config.Conf, opts ...func(*chi.Mux)) *Server {
	addr := cfg.MayPort("API_PORT", ":4000")
	m := chi.NewRouter()
	for _, o := range opts {
		o(m)
	}
	return &Server{
		addr:  addr,
		mux:   m,
		grace: cfg.MayDuration("API_SHUTDOWN_GRACE", 10*time.Second),
		srv: &stdhttp.Server{
			Addr:              addr,
			Handler:           m,
			ReadHeaderTimeout: 10 * time.Second,
			ReadTimeout:       cfg.MayDuration("API_READ_TIMEOUT", 30*time.Second),
			WriteTimeout:      cfg.MayDuration("API_WRITE_TIMEOUT", 60*time.Second),
			IdleTimeout:       cfg.MayDuration("API_IDLE_TIMEOUT", 120*time.Second),
		},
	}
}

// Router returns a Router facade over the internal chi mux
func (s *Server) Router() Router { return AdaptChi(s.mux) }

// Addr returns the configured listen address
func (s *Server) Addr() string { return s.addr }

// Handler exposes the root handler, mostly for httptest
func (s *Server) Handler() stdhttp.Handler { return s.mux }

// Run listens on the configured address and serves until ctx is canceled or the listener fails
func (s *Server) Run(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.addr)
	if err != nil {
		return err
	}
	return s.Serve(ctx, ln)
}

// Serve serves on ln until ctx is canceled, then shuts down within the grace period
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	log := logger.Named("http")
	log.Info().Str("addr", ln.Addr().String()).Msg("http listening")

	errc := make(chan error, 1)
	go func() { errc <- s.srv.Serve(ln) }()

	select {
	case err := <-errc:
		if errors.Is(err, stdhttp.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		sctx, cancel := context.WithTimeout(context.Background(), s.grace)
		defer cancel()
		log.Info().Dur("grace", s.grace).Msg("http shutting down")
		if err := s.srv.Shutdown(sctx); err != nil {
			return err
		}
		if err := <-errc; err != nil && !errors.Is(err, stdhttp.ErrServerClosed) {
			return err
		}
		return nil
	}
}

// Shutdown stops the server gracefully
func (s *Server) Shutdown(ctx context.Context) error {
	return s.srv.Shutdown(ctx)
}
