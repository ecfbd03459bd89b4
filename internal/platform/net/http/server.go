package http

import (
	"context"
	"errors"
	"net"
	stdhttp "net/http"
	"time"

	"creditclear/internal/platform/config"
	"creditclear/internal/platform/logger"

	"github.com/go-chi/chi/v5"
)

// Server owns the root chi mux and the stdlib server in front of it
type Server struct {
	mux   *chi.Mux
	srv   *stdhttp.Server
	grace time.Duration
	ready chan net.Addr
}

// NewServer reads ADDR, READ_HEADER_TIMEOUT, IDLE_TIMEOUT and SHUTDOWN_GRACE from cfg
func NewServer(cfg config.Conf) *Server {
	m := chi.NewRouter()
	return &Server{
		mux:   m,
		grace: cfg.MayDuration("SHUTDOWN_GRACE", 10*time.Second),
		ready: make(chan net.Addr, 1),
		srv: &stdhttp.Server{
			Addr:              cfg.MayString("ADDR", ":4000"),
			Handler:           m,
			ReadHeaderTimeout: cfg.MayDuration("READ_HEADER_TIMEOUT", 10*time.Second),
			IdleTimeout:       cfg.MayDuration("IDLE_TIMEOUT", 2*time.Minute),
		},
	}
}

// Router returns the Router facade over the root mux
func (s *Server) Router() Router { return AdaptChi(s.mux) }

// Addr returns the configured listen address
func (s *Server) Addr() string { return s.srv.Addr }

// Ready yields the bound address once the listener is up
func (s *Server) Ready() <-chan net.Addr { return s.ready }

// Run serves until ctx is done, then drains for at most the shutdown grace
func (s *Server) Run(ctx context.Context) error {
	log := logger.Named("http")

	ln, err := net.Listen("tcp", s.srv.Addr)
	if err != nil {
		return err
	}
	log.Info().Str("addr", ln.Addr().String()).Msg("http listening")
	s.ready <- ln.Addr()

	stop := context.AfterFunc(ctx, func() {
		sctx, cancel := context.WithTimeout(context.Background(), s.grace)
		defer cancel()
		if err := s.srv.Shutdown(sctx); err != nil {
			log.Warn().Err(err).Msg("http shutdown")
		}
	})
	defer stop()

	if err := s.srv.Serve(ln); !errors.Is(err, stdhttp.ErrServerClosed) {
		return err
	}
	return nil
}
