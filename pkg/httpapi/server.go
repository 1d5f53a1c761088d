// Package httpapi exposes the dealer's match statistics over HTTP. The
// table itself only speaks the binary protocol; this is a read-only side
// door for dashboards and scripts.
package httpapi

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/hadari24/blackjack-network/pkg/stats"
)

// Options holds optional configuration for the Server.
type Options struct {
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration
}

// DefaultOptions returns sensible defaults.
func DefaultOptions() Options {
	return Options{
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}
}

// Server is the dealer's HTTP stats server. All routes are read-only.
type Server struct {
	httpServer *http.Server
	reg        *stats.Registry
	opts       Options
}

// NewServer creates a Server reading from the given registry.
func NewServer(reg *stats.Registry, opts Options) *Server {
	srv := &Server{reg: reg, opts: opts}
	r := chi.NewRouter()
	r.Use(recoveryMiddleware, loggingMiddleware, requestIDMiddleware)
	srv.registerRoutes(r)
	srv.httpServer = &http.Server{
		Handler:      r,
		ReadTimeout:  opts.ReadTimeout,
		WriteTimeout: opts.WriteTimeout,
		IdleTimeout:  opts.IdleTimeout,
	}
	return srv
}

// ListenAndServe starts the HTTP server on the given address.
func (s *Server) ListenAndServe(addr string) error {
	s.httpServer.Addr = addr
	log.Printf("httpapi: stats server listening on %s", addr)
	return s.httpServer.ListenAndServe()
}

// GracefulShutdown performs a graceful shutdown of the HTTP server.
func (s *Server) GracefulShutdown(ctx context.Context) error {
	log.Println("httpapi: stats server shutting down")
	return s.httpServer.Shutdown(ctx)
}

// Handler returns the root http.Handler (useful for testing with httptest).
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler
}
