// Package server runs the redpen HTTP server: the JSON correction API and
// the HTML form UI around the correction orchestrator.
package server

import (
	"context"
	"errors"
	"fmt"
	"html/template"
	"log/slog"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/avast/retry-go/v4"

	"github.com/redpen-dev/redpen/internal/api"
	"github.com/redpen-dev/redpen/internal/config"
	"github.com/redpen-dev/redpen/internal/corrector"
	"github.com/redpen-dev/redpen/internal/langtool"
	"github.com/redpen-dev/redpen/internal/server/endpoints"
	"github.com/redpen-dev/redpen/internal/svcctx"
	"github.com/redpen-dev/redpen/web"
)

// Server is the main redpen HTTP server.
type Server struct {
	httpServer *http.Server
	configMgr  *config.Manager
	logger     *slog.Logger
	templates  *template.Template

	// endpoints registry for HTTP routes
	endpointRegistry *api.Registry

	// services holds the checker and corrector for context enrichment.
	// Rebuilt on config hot reload, so reads go through currentServices.
	services *svcctx.Services

	mu      sync.RWMutex
	running bool
}

// Config holds server configuration.
type Config struct {
	// Host is the address to bind to (default: 127.0.0.1)
	Host string
	// Port is the port to listen on (default: 8080)
	Port string
	// ConfigManager provides checker configuration with hot-reload support
	ConfigManager *config.Manager
	// Logger is the structured logger to use
	Logger *slog.Logger
}

// New creates a new Server with the given configuration.
func New(cfg Config) (*Server, error) {
	if cfg.Host == "" {
		cfg.Host = "127.0.0.1"
	}
	if cfg.Port == "" {
		cfg.Port = "8080"
	}
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}
	if cfg.ConfigManager == nil {
		return nil, errors.New("config manager is required")
	}

	templates, err := web.Templates()
	if err != nil {
		return nil, fmt.Errorf("failed to parse templates: %w", err)
	}

	s := &Server{
		configMgr: cfg.ConfigManager,
		logger:    cfg.Logger,
		templates: templates,
	}

	if err := s.buildServices(cfg.ConfigManager.Get()); err != nil {
		return nil, err
	}

	// Rebuild the checker and corrector when the config file changes.
	cfg.ConfigManager.OnChange(func(c *config.Config) {
		if err := s.buildServices(c); err != nil {
			s.logger.Error("config reload failed", "error", err)
			return
		}
		s.logger.Info("checker configuration reloaded", "url", c.Checker.URL)
	})

	// Create endpoint registry and register all endpoints
	s.endpointRegistry = api.NewRegistry()
	for _, ep := range endpoints.All() {
		s.endpointRegistry.Register(ep)
	}

	// Set up HTTP server
	mux := http.NewServeMux()
	s.endpointRegistry.RegisterRoutes(mux)
	s.registerRoutes(mux)

	s.httpServer = &http.Server{
		Addr:         net.JoinHostPort(cfg.Host, cfg.Port),
		Handler:      s.withServices(mux),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	return s, nil
}

// buildServices constructs the checker client and corrector from config
// and swaps them in atomically.
func (s *Server) buildServices(cfg *config.Config) error {
	checker := langtool.NewClient(langtool.Config{
		BaseURL:  cfg.Checker.URL,
		Language: cfg.Checker.Language,
		Timeout:  cfg.Checker.Timeout(),
		Logger:   s.logger,
	})

	svc, err := corrector.New(corrector.Config{
		Remote:   checker,
		Reporter: corrector.LogReporter{Logger: s.logger},
		Logger:   s.logger,
	})
	if err != nil {
		return fmt.Errorf("failed to create corrector: %w", err)
	}

	s.mu.Lock()
	s.services = &svcctx.Services{
		Corrector: svc,
		Checker:   checker,
		Logger:    s.logger,
	}
	s.mu.Unlock()
	return nil
}

// currentServices returns the live services snapshot.
func (s *Server) currentServices() *svcctx.Services {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.services
}

// withServices injects the live services into every request context.
func (s *Server) withServices(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := svcctx.WithServices(r.Context(), s.currentServices())
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// Start starts the server and blocks until the context is cancelled or an
// error occurs.
func (s *Server) Start(ctx context.Context) error {
	s.mu.Lock()
	if s.running {
		s.mu.Unlock()
		return errors.New("server already running")
	}
	s.running = true
	s.mu.Unlock()

	// Watch for config file changes while serving.
	s.configMgr.WatchConfig()

	// Probe the remote checker in the background. Purely informational:
	// the service works through the fallback corrector either way.
	go s.probeChecker(ctx)

	// Start HTTP server in goroutine
	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("starting HTTP server", "addr", s.httpServer.Addr)
		if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	// Wait for context cancellation or error
	select {
	case <-ctx.Done():
		s.logger.Info("shutdown signal received")
	case err := <-errCh:
		if err != nil {
			s.setNotRunning()
			return fmt.Errorf("HTTP server error: %w", err)
		}
	}

	return s.shutdown()
}

// probeChecker pings the remote checker a few times and logs whether it is
// reachable. Never fatal: remote failures only mean fallback corrections.
func (s *Server) probeChecker(ctx context.Context) {
	checker := s.currentServices().Checker
	err := retry.Do(
		func() error {
			return checker.Ping(ctx)
		},
		retry.Context(ctx),
		retry.Attempts(3),
		retry.Delay(2*time.Second),
	)
	if err != nil {
		s.logger.Warn("remote checker unreachable, corrections will use the local fallback",
			"url", checker.BaseURL(), "error", err)
		return
	}
	s.logger.Info("remote checker reachable", "url", checker.BaseURL())
}

// shutdown performs graceful shutdown of the HTTP server.
func (s *Server) shutdown() error {
	s.logger.Info("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
		s.logger.Error("HTTP server shutdown error", "error", err)
	}

	s.setNotRunning()
	s.logger.Info("server stopped")
	return nil
}

func (s *Server) setNotRunning() {
	s.mu.Lock()
	s.running = false
	s.mu.Unlock()
}

// IsRunning returns whether the server is currently running.
func (s *Server) IsRunning() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.running
}

// Addr returns the server's listen address.
func (s *Server) Addr() string {
	return s.httpServer.Addr
}
