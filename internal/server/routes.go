// Package server wires HTTP handlers into a ServeMux via routing helpers.
package server

import (
	"net/http"

	"github.com/rs/cors"
)

// Routes returns the service's HTTP routes. Plain HTTP endpoints go through
// CORS with the configured origins; the WebSocket endpoints rely on the
// upgrader's origin check instead.
func (s *Service) Routes() *http.ServeMux {
	c := cors.New(cors.Options{
		AllowedOrigins: s.origins.corsOrigins(),
		AllowedMethods: []string{http.MethodGet, http.MethodOptions},
	})

	mux := http.NewServeMux()
	mux.HandleFunc("/", HealthHandler)
	mux.Handle("/healthz", c.Handler(http.HandlerFunc(HealthHandler)))
	mux.Handle("/rooms", c.Handler(http.HandlerFunc(s.RoomsHandler)))
	mux.Handle("/metrics", s.metrics.Handler())
	mux.HandleFunc("/ws", s.WebSocketHandler)
	mux.HandleFunc("/chat", s.WebSocketHandler)
	mux.HandleFunc("/test", TestPageHandler)
	return mux
}
