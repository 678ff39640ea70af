// Package inspect serves a read-only HTTP view of a running game.
package inspect

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/plus3/tetrita/loop"
	"github.com/plus3/tetrita/tetris"
	"github.com/plus3/tetrita/textboard"
)

// Source yields the latest game snapshot, or nil if none has been taken yet.
type Source interface {
	Latest() *tetris.Snapshot
}

// Server is the inspection HTTP server.
type Server struct {
	router chi.Router
	server *http.Server
	source Source
	stats  func() *loop.Stats
	log    *slog.Logger
}

// Option configures a Server.
type Option func(*Server)

// WithStats exposes scheduler statistics on /stats.
func WithStats(stats func() *loop.Stats) Option {
	return func(s *Server) { s.stats = stats }
}

// WithLogger sets the access and error logger.
func WithLogger(log *slog.Logger) Option {
	return func(s *Server) {
		if log != nil {
			s.log = log
		}
	}
}

// New creates a server for addr. It does not listen until Run.
func New(addr string, source Source, opts ...Option) *Server {
	s := &Server{
		router: chi.NewRouter(),
		source: source,
		log:    slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.server = &http.Server{
		Addr:         addr,
		Handler:      s.router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}
	s.routes()
	return s
}

func (s *Server) routes() {
	s.router.Use(middleware.RequestID)
	s.router.Use(accessLog(s.log))
	s.router.Use(middleware.Recoverer)
	s.router.Use(Compression)

	s.router.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})
	s.router.Get("/state", s.state)
	s.router.Get("/board", s.board)
	s.router.Get("/summary", s.summary)
	s.router.Get("/stats", s.statsHandler)
}

// Handler returns the routed handler, for tests and embedding.
func (s *Server) Handler() http.Handler {
	return s.router
}

// Run listens until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.server.Addr)
	if err != nil {
		return fmt.Errorf("inspect listen: %w", err)
	}
	s.log.Info("inspect server listening", "addr", ln.Addr().String())

	errc := make(chan error, 1)
	go func() { errc <- s.server.Serve(ln) }()

	select {
	case err := <-errc:
		return fmt.Errorf("inspect serve: %w", err)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := s.server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("inspect shutdown: %w", err)
	}
	if err := <-errc; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("inspect serve: %w", err)
	}
	return nil
}

func (s *Server) latest(w http.ResponseWriter) *tetris.Snapshot {
	snap := s.source.Latest()
	if snap == nil {
		http.Error(w, "no game state yet", http.StatusServiceUnavailable)
	}
	return snap
}

func (s *Server) writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.log.Warn("encode response", "err", err)
	}
}

func (s *Server) state(w http.ResponseWriter, r *http.Request) {
	if snap := s.latest(w); snap != nil {
		s.writeJSON(w, snap)
	}
}

func (s *Server) board(w http.ResponseWriter, r *http.Request) {
	snap := s.latest(w)
	if snap == nil {
		return
	}
	style := textboard.Unicode
	if r.URL.Query().Get("style") == "ascii" {
		style = textboard.ASCII
	}
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	if err := style.Write(w, snap); err != nil {
		s.log.Warn("write board", "err", err)
	}
}

func (s *Server) summary(w http.ResponseWriter, r *http.Request) {
	snap := s.latest(w)
	if snap == nil {
		return
	}
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	if _, err := textboard.Summary(snap).WriteTo(w); err != nil {
		s.log.Warn("write summary", "err", err)
	}
}

func (s *Server) statsHandler(w http.ResponseWriter, r *http.Request) {
	if s.stats == nil {
		http.NotFound(w, r)
		return
	}
	s.writeJSON(w, s.stats())
}

func accessLog(log *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			start := time.Now()
			next.ServeHTTP(ww, r)
			log.Debug("inspect request",
				"method", r.Method,
				"path", r.URL.Path,
				"status", ww.Status(),
				"bytes", ww.BytesWritten(),
				"elapsed", time.Since(start),
				"request_id", middleware.GetReqID(r.Context()),
			)
		})
	}
}
