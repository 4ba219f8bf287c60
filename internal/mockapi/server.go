// Copyright (c) 2026 Playdeck. All rights reserved.
// Author: minh.vo.dev@gmail.com

package mockapi

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/minhvo-dev/playdeck/internal/platform/config"
	"github.com/minhvo-dev/playdeck/internal/platform/constants"
	"github.com/minhvo-dev/playdeck/internal/platform/middleware"
	"github.com/minhvo-dev/playdeck/internal/platform/sec"
)

// # Server Definitions

// Server wraps the chi router and the [http.Server] for the mock platform API.
//
// It is constructed once in the mock command with all dependencies injected.
type Server struct {
	httpServer *http.Server
	router     *chi.Mux
	log        *slog.Logger
}

// # Server Initialization

// NewServer constructs the chi router with the full middleware chain and
// registers all route groups under the /admin prefix.
func NewServer(context context.Context, cfg *config.Config, log *slog.Logger, store *Store, tokens *sec.TokenService) *Server {
	r := chi.NewRouter()

	// # Middleware Chain
	// Global middleware applied in order of execution.
	r.Use(middleware.RequestID())
	r.Use(middleware.StructuredLogger(log))
	r.Use(chimw.Timeout(constants.GlobalRequestTimeout))
	r.Use(middleware.RateLimit(context))
	r.Use(middleware.PanicRecovery(log))
	r.Use(middleware.Authenticate(tokens))
	r.Use(chimw.CleanPath)

	// # Infrastructure Endpoints
	// Unauthenticated health probe.
	r.Get("/health", healthHandler)

	// # Admin API
	// The console's client joins its paths onto a base URL that already ends
	// in /admin, so every domain group mounts under that prefix.
	auth := NewAuthHandler(store, tokens)
	users := NewUserHandler(store)
	posts := NewPostHandler(store)
	reports := NewReportHandler(store)
	dashboard := NewDashboardHandler(store)

	r.Route("/admin", func(admin chi.Router) {
		admin.Mount("/auth", auth.Routes())

		// Everything except login requires a verified bearer token.
		admin.Group(func(protected chi.Router) {
			protected.Use(middleware.RequireAuth)
			protected.Mount("/dashboard", dashboard.Routes())
			protected.Mount("/users", users.Routes())
			protected.Mount("/posts", posts.Routes())
			protected.Mount("/comments", posts.CommentRoutes())
			protected.Mount("/reports", reports.Routes())
		})
	})

	return &Server{
		router: r,
		log:    log,
		httpServer: &http.Server{
			Addr:              ":" + cfg.MockPort,
			Handler:           r,
			ReadTimeout:       constants.DefaultReadTimeout,
			WriteTimeout:      constants.DefaultWriteTimeout,
			IdleTimeout:       constants.DefaultIdleTimeout,
			ReadHeaderTimeout: constants.DefaultReadHeaderTimeout,
		},
	}
}

// Handler exposes the composed router, primarily for httptest servers.
func (s *Server) Handler() http.Handler {
	return s.router
}

// # Server Lifecycle

// ListenAndServe starts the HTTP server.
//
// It blocks until the server is closed or an error occurs.
func (s *Server) ListenAndServe() error {
	s.log.Info("mock api starting", slog.String("addr", s.httpServer.Addr))
	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully stops the server, waiting for in-flight requests.
func (s *Server) Shutdown(timeout time.Duration) error {
	context, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	return s.httpServer.Shutdown(context)
}
