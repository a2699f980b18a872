// Package server wires the account core (registry, session manager,
// authorization gate) behind an HTTP surface with logging, recovery, and
// bearer-token authentication.
package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/accountd-dev/accountd/internal/config"
	"github.com/accountd-dev/accountd/internal/server/handlers"
	"github.com/accountd-dev/accountd/internal/server/middleware"
	"github.com/accountd-dev/accountd/internal/server/sessions"
	"github.com/accountd-dev/accountd/internal/server/storage"
	"github.com/accountd-dev/accountd/internal/server/users"
)

// purgeInterval is how often expired sessions are swept from the store.
const purgeInterval = time.Hour

// Store is what the server needs from a storage backend. Both the sqlite
// and memory implementations satisfy it.
type Store interface {
	storage.UserStorage
	storage.SessionStorage
}

// Server owns the HTTP surface and the core services behind it.
type Server struct {
	logger     *slog.Logger
	cfg        *config.Config
	registry   *users.Service
	manager    *sessions.Service
	httpServer *http.Server
	version    string
}

// New wires the core services over the given store and builds the route
// table.
func New(logger *slog.Logger, cfg *config.Config, store Store, version string) *Server {
	registry := users.NewService(logger, store)
	manager := sessions.NewService(logger, registry, store, sessions.TokenConfig{
		Secret: []byte(cfg.SecretKey),
		TTL:    cfg.SessionTTL,
	})

	s := &Server{
		logger:   logger,
		cfg:      cfg,
		registry: registry,
		manager:  manager,
		version:  version,
	}

	s.httpServer = &http.Server{
		Addr:              cfg.Address,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	return s
}

// Handler builds the full route table with the middleware chain applied.
func (s *Server) Handler() http.Handler {
	userHandler := handlers.NewUserHandler(s.logger, s.registry)
	authHandler := handlers.NewAuthHandler(s.logger, s.manager)
	healthHandler := handlers.NewHealthHandler(s.logger, s.version)

	authRequired := middleware.AuthMiddleware(s.logger, s.manager)

	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/v1/users", userHandler.Register)
	mux.HandleFunc("POST /api/v1/users/sessions", authHandler.Login)
	mux.HandleFunc("DELETE /api/v1/users/sessions", authHandler.Logout)
	mux.Handle("GET /api/v1/users/me", authRequired(http.HandlerFunc(userHandler.Me)))
	mux.Handle("GET /api/v1/users", authRequired(http.HandlerFunc(userHandler.List)))
	mux.HandleFunc("GET /api/v1/health", healthHandler.Health)

	var handler http.Handler = mux
	handler = middleware.LoggingMiddleware(s.logger)(handler)
	handler = middleware.RecoveryMiddleware(s.logger)(handler)
	return handler
}

// Run starts the HTTP server and blocks until ctx is canceled, then shuts
// down gracefully. A background sweep deletes expired sessions while the
// server runs.
func (s *Server) Run(ctx context.Context) error {
	go s.purgeLoop(ctx)

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("server listening", slog.String("address", s.cfg.Address))
		if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("server error: %w", err)
	case <-ctx.Done():
	}

	s.logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown error: %w", err)
	}

	return nil
}

func (s *Server) purgeLoop(ctx context.Context) {
	ticker := time.NewTicker(purgeInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			count, err := s.manager.PurgeExpired(ctx)
			if err != nil {
				s.logger.Error("failed to purge expired sessions", slog.Any("error", err))
				continue
			}
			if count > 0 {
				s.logger.Info("purged expired sessions", slog.Int("count", count))
			}
		}
	}
}
