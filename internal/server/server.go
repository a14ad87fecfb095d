package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/acadbase/acadbase/internal/bootstrap"
	"github.com/acadbase/acadbase/internal/config"
	"github.com/acadbase/acadbase/internal/pkg/logger"
)

// Server holds the state for the HTTP server.
type Server struct {
	config *config.Config
	router *gin.Engine
	dbPool *pgxpool.Pool
	http   *http.Server
}

// NewServer builds a fully wired server: config, database, dependency
// graph and router.
func NewServer() (*Server, error) {
	cfg, err := bootstrap.LoadConfigAndSetupLogger()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	pool, err := bootstrap.SetupDatabase(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to set up database: %w", err)
	}

	deps, err := bootstrap.BuildDependencies(cfg, pool)
	if err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to build dependencies: %w", err)
	}

	router := bootstrap.SetupRouter(cfg, deps)
	setupStaticFileServing(router, cfg)

	return &Server{
		config: cfg,
		router: router,
		dbPool: pool,
	}, nil
}

// setupStaticFileServing serves the uploads directory so stored
// certificates are reachable over HTTP.
func setupStaticFileServing(router *gin.Engine, cfg *config.Config) {
	uploadPath := cfg.Server.StoragePath
	if _, err := os.Stat(uploadPath); os.IsNotExist(err) {
		if err := os.MkdirAll(uploadPath, os.ModePerm); err != nil {
			logger.Error().Err(err).Str("path", uploadPath).Msg("Failed to create uploads directory")
			return
		}
	}
	router.Static("/uploads", uploadPath)
}

// Run starts the HTTP server and blocks until shutdown.
func (s *Server) Run() error {
	s.http = &http.Server{
		Addr:         ":" + s.config.Server.Port,
		Handler:      s.router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	serverErrors := make(chan error, 1)
	go func() {
		logger.Info().Str("addr", s.http.Addr).Msg("HTTP server listening")
		serverErrors <- s.http.ListenAndServe()
	}()

	osSignals := make(chan os.Signal, 1)
	signal.Notify(osSignals, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		if !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("error starting server: %w", err)
		}
	case sig := <-osSignals:
		logger.Info().Str("signal", sig.String()).Msg("Received OS signal, shutting down")
	}

	return s.Shutdown(context.Background())
}

// Shutdown gracefully stops the server and closes resources.
func (s *Server) Shutdown(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	var shutdownErr error
	if s.http != nil {
		if err := s.http.Shutdown(ctx); err != nil {
			logger.Error().Err(err).Msg("HTTP server shutdown error")
			shutdownErr = err
		}
	}

	if s.dbPool != nil {
		s.dbPool.Close()
	}

	logger.Info().Msg("Server shutdown complete")
	return shutdownErr
}
