// Package gateway exposes the HTTP surface for price and trade requests.
package gateway

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"swapgate/internal/connector"
)

// ShutdownTimeout is the maximum time to wait for graceful shutdown.
const ShutdownTimeout = 10 * time.Second

// Server routes gateway requests to the connector registry.
type Server struct {
	log      zerolog.Logger
	router   *gin.Engine
	addr     string
	server   *http.Server
	registry *connector.Registry
}

func NewServer(registry *connector.Registry, addr string, log zerolog.Logger) *Server {
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Recovery())

	server := &Server{
		log:      log,
		router:   router,
		addr:     addr,
		registry: registry,
	}
	server.routes()
	return server
}

// Start blocks serving HTTP until the listener closes.
func (s *Server) Start() error {
	s.server = &http.Server{
		Addr:    s.addr,
		Handler: s.router,
	}
	s.log.Info().Str("addr", s.addr).Msg("gateway listening")
	if err := s.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// Shutdown drains in-flight requests within ShutdownTimeout.
func (s *Server) Shutdown() error {
	if s.server == nil {
		return nil
	}
	ctx, cancel := context.WithTimeout(context.Background(), ShutdownTimeout)
	defer cancel()
	return s.server.Shutdown(ctx)
}

// Handler exposes the router for tests.
func (s *Server) Handler() http.Handler { return s.router }
