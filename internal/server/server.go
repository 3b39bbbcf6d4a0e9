// Package server wraps the HTTP server lifecycle.
package server

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/culinacart/recipes-api/config"
	"github.com/culinacart/recipes-api/internal/logger"
)

// Server represents the HTTP server.
type Server struct {
	http *http.Server
	log  *logger.Logger
}

// New creates a new server instance serving the given router.
func New(cfg *config.Config, router *gin.Engine, log *logger.Logger) *Server {
	return &Server{
		http: &http.Server{
			Addr:    cfg.Addr(),
			Handler: router,
		},
		log: log,
	}
}

// Start runs the server until it is shut down. A graceful shutdown is not
// reported as an error.
func (s *Server) Start() error {
	s.log.Info().Str("addr", s.http.Addr).Msg("starting server")
	if err := s.http.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Shutdown gracefully stops the server, waiting for in-flight requests
// until ctx expires.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.http.Shutdown(ctx)
}
