// Package server wires the chat stores, handlers and middleware into an HTTP server.
package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/iudanet/gophchat/internal/server/config"
	"github.com/iudanet/gophchat/internal/server/credentials"
	"github.com/iudanet/gophchat/internal/server/handlers"
	"github.com/iudanet/gophchat/internal/server/messages"
	"github.com/iudanet/gophchat/internal/server/metrics"
	"github.com/iudanet/gophchat/internal/server/middleware"
	"github.com/iudanet/gophchat/internal/server/storage"
)

const shutdownTimeout = 10 * time.Second

// Server владеет хранилищем и HTTP обработчиком
type Server struct {
	logger     *slog.Logger
	backend    storage.Backend
	store      *credentials.Store
	log        *messages.Log
	handler    http.Handler
	stopLimits func()
	cfg        *config.Config
}

// New загружает снимки из backend и собирает маршруты.
// Backend закрывается в Close
func New(ctx context.Context, cfg *config.Config, backend storage.Backend, logger *slog.Logger, version string) (*Server, error) {
	store, err := credentials.New(ctx, backend, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to init credential store: %w", err)
	}

	log, err := messages.New(ctx, backend, messages.Retention{
		Cap:  cfg.Retention.Cap,
		Keep: cfg.Retention.Keep,
	}, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to init message log: %w", err)
	}

	s := &Server{
		logger:  logger,
		backend: backend,
		store:   store,
		log:     log,
		cfg:     cfg,
	}
	s.handler = s.routes(version)

	logger.Info("state loaded",
		"storage", cfg.StorageBackend,
		"users", store.Count(),
		"messages", log.Len(),
	)
	return s, nil
}

func (s *Server) routes(version string) http.Handler {
	authHandler := handlers.NewAuthHandler(s.logger, s.store)
	messageHandler := handlers.NewMessageHandler(s.logger, s.log)
	actionHandler := handlers.NewActionHandler(s.logger, authHandler, messageHandler)
	healthHandler := handlers.NewHealthHandler(s.logger, s.backend, s.cfg.StorageBackend, version, s.store.Count, s.log.Len)

	requireAuth := middleware.AuthMiddleware(s.logger, s.store)

	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/v1/auth/register", authHandler.Register)
	mux.HandleFunc("POST /api/v1/auth/login", authHandler.Login)
	mux.HandleFunc("GET /api/v1/auth/verify", authHandler.Verify)
	mux.Handle("POST /api/v1/messages", requireAuth(http.HandlerFunc(messageHandler.Send)))
	mux.HandleFunc("GET /api/v1/messages", messageHandler.List)
	mux.Handle("/api/v1/action", actionHandler)
	mux.HandleFunc("GET /api/v1/health", healthHandler.Health)
	mux.Handle("GET /metrics", metrics.Handler())

	// лимит только на операции с паролем, polling не ограничивается
	limit := s.cfg.RateLimit
	rateLimit, stop := middleware.RateLimitByPathMiddleware([]middleware.PathRateLimit{
		{Method: http.MethodPost, Path: "/api/v1/auth/register", Rate: limit.Auth, Window: limit.Window},
		{Method: http.MethodPost, Path: "/api/v1/auth/login", Rate: limit.Auth, Window: limit.Window},
		{Method: http.MethodPost, Path: "/api/v1/action", Rate: limit.Auth, Window: limit.Window},
	}, s.logger)
	s.stopLimits = stop

	var h http.Handler = mux
	h = rateLimit(h)
	h = middleware.Metrics()(h)
	h = middleware.LoggingWithSkip(s.logger, []string{"/api/v1/health", "/metrics"})(h)
	h = middleware.CORS(s.cfg.CORSOrigin)(h)
	h = middleware.RecoveryMiddleware(s.logger)(h)
	return h
}

// Handler возвращает корневой HTTP обработчик
func (s *Server) Handler() http.Handler {
	return s.handler
}

// Run слушает cfg.HTTPAddr до отмены ctx, затем выполняет graceful shutdown
func (s *Server) Run(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.cfg.HTTPAddr)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", s.cfg.HTTPAddr, err)
	}
	return s.Serve(ctx, ln)
}

// Serve обслуживает запросы на ln до отмены ctx
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	srv := &http.Server{
		Handler:           s.handler,
		ReadHeaderTimeout: 10 * time.Second,
		ErrorLog:          slog.NewLogLogger(s.logger.Handler(), slog.LevelError),
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("HTTP server listening", "addr", ln.Addr().String())
		errCh <- srv.Serve(ln)
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("http server: %w", err)
	case <-ctx.Done():
	}

	s.logger.Info("shutting down HTTP server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("failed to shutdown http server: %w", err)
	}
	return nil
}

// Close останавливает rate limiters и закрывает backend
func (s *Server) Close() error {
	if s.stopLimits != nil {
		s.stopLimits()
	}
	if err := s.backend.Close(); err != nil {
		return fmt.Errorf("failed to close storage: %w", err)
	}
	return nil
}
