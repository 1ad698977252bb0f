// Package server implements the framechart HTTP render service.
//
// Routes:
//
//	GET  /healthz                  liveness and build information
//	POST /render                   render a document, JSON envelope with all formats
//	POST /render/{format}          render a document, raw artifact body
//	GET  /layouts/{id}             archived layout as JSON
//	GET  /layouts/{id}/{format}    re-render an archived layout
//
// Every rendered layout is archived in the store under a fresh ID, which is
// returned in the X-Layout-ID header and the JSON envelope.
package server

import (
	"context"
	stderrors "errors"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/matzehuels/framechart/pkg/pipeline"
	"github.com/matzehuels/framechart/pkg/store"
)

const (
	requestTimeout  = 60 * time.Second
	shutdownTimeout = 10 * time.Second
	cleanupInterval = time.Hour
)

// Server serves the render API.
type Server struct {
	runner *pipeline.Runner
	store  store.Store
	logger *log.Logger
	router chi.Router
}

// New wires the routes. A nil store archives layouts in memory.
func New(runner *pipeline.Runner, st store.Store, logger *log.Logger) *Server {
	if st == nil {
		st = store.NewMemoryStore()
	}
	if logger == nil {
		logger = log.Default()
	}
	s := &Server{runner: runner, store: st, logger: logger}

	r := chi.NewRouter()
	r.Use(requestID)
	r.Use(middleware.RealIP)
	r.Use(s.observe)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(requestTimeout))

	r.Get("/healthz", s.handleHealth)
	r.Route("/render", func(r chi.Router) {
		r.Post("/", s.handleRender)
		r.Post("/{format}", s.handleRenderFormat)
	})
	r.Route("/layouts/{id}", func(r chi.Router) {
		r.Get("/", s.handleLayout)
		r.Get("/{format}", s.handleLayoutFormat)
	})
	s.router = r
	return s
}

// Handler returns the routed handler.
func (s *Server) Handler() http.Handler { return s.router }

// ListenAndServe serves on addr until ctx is cancelled, then shuts down
// gracefully. Expired layouts are cleaned up periodically while serving.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go s.cleanupLoop(ctx)

	errc := make(chan error, 1)
	go func() {
		s.logger.Info("listening", "addr", addr)
		errc <- srv.ListenAndServe()
	}()

	select {
	case err := <-errc:
		if stderrors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		s.logger.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	}
}

func (s *Server) cleanupLoop(ctx context.Context) {
	t := time.NewTicker(cleanupInterval)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-t.C:
			if err := s.store.Cleanup(ctx); err != nil {
				s.logger.Warn("layout cleanup", "err", err)
			}
		}
	}
}
