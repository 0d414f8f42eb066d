package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/taskdeck/taskdeck/pkg/config"
	"github.com/taskdeck/taskdeck/pkg/logger"
	"golang.org/x/sync/errgroup"
)

const apiBasePath = "/api/v0"

// Server hosts the task scoring service.
type Server struct {
	serverConfig *config.ServerConfig
	router       *gin.Engine
	httpServer   *http.Server
}

// New builds a server from the configuration attached to the context.
func New(ctx context.Context) (*Server, error) {
	cfg := config.FromContext(ctx)
	if cfg == nil {
		return nil, fmt.Errorf("configuration missing from context; attach one with config.ContextWithConfig")
	}
	log := logger.FromContext(ctx)
	s := &Server{serverConfig: &cfg.Server}
	s.router = s.buildRouter(log)
	return s, nil
}

func (s *Server) buildRouter(log logger.Logger) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(RequestIDMiddleware())
	router.Use(LoggerMiddleware(log))
	if s.serverConfig.CORSEnabled {
		router.Use(CORSMiddleware(s.serverConfig.CORS))
	}
	registerRoutes(router)
	return router
}

func registerRoutes(router *gin.Engine) {
	router.GET("/health", healthHandler)
	api := router.Group(apiBasePath)
	{
		api.GET("/health", healthHandler)
		api.GET("/strategies", strategiesHandler)
		api.POST("/tasks/analyze", analyzeHandler)
		api.POST("/tasks/suggest", suggestHandler)
	}
}

// Router exposes the handler for tests.
func (s *Server) Router() http.Handler {
	return s.router
}

// Addr returns the configured listen address.
func (s *Server) Addr() string {
	return fmt.Sprintf("%s:%d", s.serverConfig.Host, s.serverConfig.Port)
}

// Start serves until the context is canceled, then shuts down gracefully
// within the configured timeout.
func (s *Server) Start(ctx context.Context) error {
	log := logger.FromContext(ctx)
	s.httpServer = &http.Server{
		Addr:         s.Addr(),
		Handler:      s.router,
		ReadTimeout:  s.serverConfig.Timeout,
		WriteTimeout: s.serverConfig.Timeout,
	}
	log.Info("Starting scoring server", "addr", s.Addr())

	group, groupCtx := errgroup.WithContext(ctx)
	group.Go(func() error {
		if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server failed: %w", err)
		}
		return nil
	})
	group.Go(func() error {
		<-groupCtx.Done()
		log.Info("Shutting down scoring server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), s.serverConfig.Timeout)
		defer cancel()
		if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("server shutdown failed: %w", err)
		}
		return nil
	})
	return group.Wait()
}
