package sink

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/elijahgives/webhook-client/internal/logger"
)

// Server wraps the sink's HTTP server.
type Server struct {
	http *http.Server
	log  logger.Logger
}

// NewServer builds a sink server listening on addr.
func NewServer(addr string, log logger.Logger) *Server {
	return &Server{
		http: &http.Server{
			Addr:              addr,
			Handler:           NewRouter(log),
			ReadHeaderTimeout: 5 * time.Second,
			ReadTimeout:       15 * time.Second,
			WriteTimeout:      30 * time.Second,
			IdleTimeout:       60 * time.Second,
			MaxHeaderBytes:    1 << 20,
		},
		log: log,
	}
}

// Start runs the server and blocks until error or shutdown.
func (s *Server) Start() error {
	s.log.Infof("hook sink listening on %s", s.http.Addr)
	err := s.http.ListenAndServe()
	if errors.Is(err, http.ErrServerClosed) {
		return nil
	}
	return err
}

// Stop gracefully shuts the server down within the context deadline.
func (s *Server) Stop(ctx context.Context) error {
	s.log.Info("hook sink shutting down")
	return s.http.Shutdown(ctx)
}
