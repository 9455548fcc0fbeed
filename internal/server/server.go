// Package server serves the blog over HTTP.
package server

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/rotoclone/rotoclone-zone/internal/comments"
	"github.com/rotoclone/rotoclone-zone/internal/config"
	"github.com/rotoclone/rotoclone-zone/internal/site"
)

// Server renders and serves the site.
type Server struct {
	cfg      *config.Config
	siteFn   func() *site.Site
	renderer *site.Renderer
	counts   *comments.Store // nil when comments are disabled
	hub      *hub
	router   chi.Router

	httpServer *http.Server
}

// New creates a server. siteFn returns the current site model on every
// call, so a hot-reloading caller can swap models under the server.
// counts may be nil when no Commento instance is configured.
func New(cfg *config.Config, siteFn func() *site.Site, counts *comments.Store) (*Server, error) {
	renderer, err := site.NewRenderer()
	if err != nil {
		return nil, fmt.Errorf("parsing templates: %w", err)
	}

	s := &Server{
		cfg:      cfg,
		siteFn:   siteFn,
		renderer: renderer,
		counts:   counts,
		hub:      newHub(),
	}
	s.router = s.buildRouter()
	return s, nil
}

// buildRouter creates and configures the chi router with all routes.
func (s *Server) buildRouter() chi.Router {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(60 * time.Second))

	// CORS: the comment embed fetches from the Commento origin, not
	// from us, so the site itself only needs a permissive GET surface.
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         300,
	}))

	// Health check
	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	})

	r.Get("/", s.handleIndex)
	r.Get("/about", s.handleAbout)
	r.Get("/blog", s.handleBlogIndex)
	r.Get("/blog/page/{page}", s.handleBlogIndex)
	r.Get("/blog/{slug}", s.handleEntry)
	r.Get("/static/{name}", s.handleStatic)
	r.Post("/theme", s.handleThemeToggle)

	if s.cfg.LiveReload {
		r.Get("/livereload", s.handleLivereload)
	}

	r.NotFound(s.handleNotFound)

	return r
}

// Router returns the HTTP handler, mainly for tests.
func (s *Server) Router() http.Handler { return s.router }

// NotifyReload tells connected dev browsers to refresh.
func (s *Server) NotifyReload() { s.hub.broadcast() }

// Start begins listening on the configured port.
func (s *Server) Start() error {
	addr := fmt.Sprintf(":%d", s.cfg.Port)
	s.httpServer = &http.Server{
		Addr:              addr,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	log.Printf("serving %s on %s", s.cfg.Title, addr)
	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully shuts down the server.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.httpServer != nil {
		return s.httpServer.Shutdown(ctx)
	}
	return nil
}
