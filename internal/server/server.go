// Package server exposes the catalog read and strategy submission
// boundaries over HTTP.
package server

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"strategy-builder/internal/catalog"
	"strategy-builder/internal/store"
	"strategy-builder/internal/stream"
)

// Server is the HTTP API server.
type Server struct {
	router  *gin.Engine
	catalog *catalog.Catalog
	store   store.StrategyStore
	hub     *stream.Hub
	log     zerolog.Logger
	http    *http.Server
}

// New creates the API server.
func New(cat *catalog.Catalog, st store.StrategyStore, hub *stream.Hub, logger zerolog.Logger) *Server {
	gin.SetMode(gin.ReleaseMode)

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(corsMiddleware())

	s := &Server{
		router:  router,
		catalog: cat,
		store:   st,
		hub:     hub,
		log:     logger.With().Str("component", "server").Logger(),
	}
	s.setupRoutes()
	return s
}

func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, DELETE, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusOK)
			return
		}
		c.Next()
	}
}

func (s *Server) setupRoutes() {
	api := s.router.Group("/api")
	{
		api.GET("/health", s.handleHealth)
		api.GET("/indicators", s.handleGetIndicators)
		api.POST("/strategies", s.handleCreateStrategy)
		api.GET("/strategies", s.handleListStrategies)
		api.GET("/strategies/:id", s.handleGetStrategy)
		api.DELETE("/strategies/:id", s.handleDeleteStrategy)
	}
	s.router.GET("/ws", s.handleEvents)
}

// Handler returns the underlying HTTP handler, used by tests.
func (s *Server) Handler() http.Handler {
	return s.router
}

// Start begins serving on the given address.
func (s *Server) Start(addr string) error {
	s.http = &http.Server{
		Addr:              addr,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
	}
	s.log.Info().Str("addr", addr).Msg("API server listening")
	if err := s.http.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// Shutdown gracefully stops the server.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.http == nil {
		return nil
	}
	return s.http.Shutdown(ctx)
}
