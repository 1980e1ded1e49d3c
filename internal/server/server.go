// Package server provides the HTTP API for the document generation
// pipeline: generation requests, PDF downloads, and the standalone
// render page.
package server

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/google/uuid"

	"github.com/brunnokenzokillaruna/careertrackpro-sub000/internal/generation"
	"github.com/brunnokenzokillaruna/careertrackpro-sub000/internal/locale"
	"github.com/brunnokenzokillaruna/careertrackpro-sub000/internal/types"
)

// Generator runs generation requests. Satisfied by the orchestrator.
type Generator interface {
	Generate(ctx context.Context, req generation.Request) (*generation.Result, error)
}

// Renderer produces PDF bytes from a generated document.
type Renderer interface {
	Render(ctx context.Context, doc types.GeneratedDocument, title string) ([]byte, error)
}

// ResultStore persists generated document pairs.
type ResultStore interface {
	SaveResult(ctx context.Context, userID uuid.UUID, app types.ApplicationContext, result *generation.Result) (uuid.UUID, error)
}

// Config holds server configuration.
type Config struct {
	Port int
}

// Server wraps the HTTP server and its collaborators.
type Server struct {
	httpServer *http.Server
	generator  Generator
	renderer   Renderer
	results    ResultStore
	logger     *slog.Logger
}

// New creates a server instance. The localization table is verified up
// front so an incomplete translation fails at startup, not mid-request.
func New(cfg Config, generator Generator, renderer Renderer, results ResultStore, logger *slog.Logger) (*Server, error) {
	if err := locale.Verify(); err != nil {
		return nil, fmt.Errorf("localization table incomplete: %w", err)
	}
	if logger == nil {
		logger = slog.Default()
	}

	s := &Server{
		generator: generator,
		renderer:  renderer,
		results:   results,
		logger:    logger,
	}

	mux := http.NewServeMux()
	mux.HandleFunc("POST /generate", s.handleGenerate)
	mux.HandleFunc("POST /documents/pdf", s.handleDocumentPDF)
	mux.HandleFunc("GET /render", s.handleRenderPage)
	mux.HandleFunc("POST /render", s.handleRenderPage)
	mux.HandleFunc("GET /health", s.handleHealth)

	s.httpServer = &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      s.withLogging(s.withCORS(mux)),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 120 * time.Second, // generation calls two provider endpoints
		IdleTimeout:  60 * time.Second,
	}

	return s, nil
}

// Start listens for requests until an interrupt, then shuts down
// gracefully.
func (s *Server) Start() error {
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("server starting", "addr", s.httpServer.Addr)
		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("server error: %w", err)
	case <-stop:
	}
	s.logger.Info("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := s.httpServer.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}
	s.logger.Info("server stopped")
	return nil
}

// withCORS adds CORS headers for the browser client.
func (s *Server) withCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// withLogging adds request logging.
func (s *Server) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		s.logger.Info("request", "method", r.Method, "path", r.URL.Path, "duration", time.Since(start))
	})
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, map[string]string{"status": "ok"})
}
