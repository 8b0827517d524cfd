package server

import (
	"context"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/shiftlog/portal-auth/internal/config"
	"github.com/shiftlog/portal-auth/internal/logger"
)

type server struct {
	httpServer *httpServer
	logger     *logger.Logger
}

// NewServer wraps handler in an HTTP server bound to the configured
// listen address.
func NewServer(handler http.Handler, cfg *config.StubConfig, log *logger.Logger) (Server, error) {
	if cfg.HTTPAddress == "" {
		return nil, errNoListenAddress
	}

	return &server{
		httpServer: newHTTPServer(handler, cfg, log),
		logger:     log,
	}, nil
}

// RunServer implements [Server]. It serves until SIGINT, SIGTERM or
// SIGQUIT, then shuts the transport down gracefully.
func (s *server) RunServer() {
	idleConnectionsClosed := make(chan struct{})
	ctx, stop := signal.NotifyContext(
		context.Background(),
		syscall.SIGTERM,
		syscall.SIGINT,
		syscall.SIGQUIT,
	)
	defer stop()

	go func() {
		<-ctx.Done()

		s.Shutdown()
		close(idleConnectionsClosed)
	}()

	s.logger.Info().Str("address", s.httpServer.server.Addr).Msg("launching HTTP server")
	go s.httpServer.RunServer()

	<-idleConnectionsClosed
	s.logger.Info().Msg("server shut down gracefully")
}

// Shutdown implements [Server].
func (s *server) Shutdown() {
	s.httpServer.Shutdown()
}
