// Package server constructs and starts the relay's HTTP service with helpers
// that apply sensible production defaults.
package server

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gorilla/websocket"

	"github.com/Tyrowin/lobbychat/internal/chat"
	"github.com/Tyrowin/lobbychat/internal/metrics"
)

// Service bundles the hub, the chat relay and the metrics behind the HTTP
// routes.
type Service struct {
	cfg      *Config
	log      *slog.Logger
	hub      *Hub
	relay    *chat.Relay
	metrics  *metrics.Collectors
	origins  *originPolicy
	upgrader websocket.Upgrader
}

// NewService wires a hub and a relay together. Nothing runs until Start.
func NewService(ctx context.Context, cfg *Config, logger *slog.Logger) *Service {
	collectors := metrics.New()
	hub := NewHub(logger, collectors)
	relay := chat.NewRelay(ctx, hub, cfg.ChatConfig(), logger, collectors)
	hub.SetHandler(relay)

	origins := newOriginPolicy(cfg.AllowedOrigins, logger)
	return &Service{
		cfg:     cfg,
		log:     logger,
		hub:     hub,
		relay:   relay,
		metrics: collectors,
		origins: origins,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     origins.check,
		},
	}
}

// Start runs the hub loop and the lobby countdown.
func (s *Service) Start() {
	go s.hub.Run()
	s.relay.Start()
	s.log.Info("Hub started and ready to manage WebSocket connections")
}

// Shutdown stops the countdown and pending deletions, then closes every
// client and waits for their pumps up to timeout.
func (s *Service) Shutdown(timeout time.Duration) error {
	s.relay.Stop()
	return s.hub.Shutdown(timeout)
}

// Relay returns the chat relay.
func (s *Service) Relay() *chat.Relay { return s.relay }

// Metrics returns the Prometheus collectors.
func (s *Service) Metrics() *metrics.Collectors { return s.metrics }

// CreateServer creates and configures an HTTP server with the specified port and handler.
// It sets reasonable timeout values for production use.
func CreateServer(port string, handler http.Handler) *http.Server {
	return &http.Server{
		Addr:              port,
		Handler:           handler,
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 10 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
}

// StartServer starts the HTTP server and blocks until it stops. A server
// closed through Shutdown is not an error.
func StartServer(server *http.Server, logger *slog.Logger) error {
	logger.Info("Server listening", "addr", server.Addr)
	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// ShutdownServer gracefully shuts down the HTTP server without interrupting active connections.
// It waits for active connections to close or until the timeout is reached.
func ShutdownServer(server *http.Server, timeout time.Duration, logger *slog.Logger) error {
	logger.Info("Shutting down HTTP server...")

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		logger.Error("HTTP server shutdown error", "err", err)
		return err
	}

	logger.Info("HTTP server shutdown completed")
	return nil
}
