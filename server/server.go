package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/katalvlaran/giantgraph/metrics"
	"github.com/katalvlaran/giantgraph/simulation"
)

// SessionHeader carries the current session id on every response.
const SessionHeader = "X-Session-ID"

// Defaults for the auto-runner.
const (
	DefaultStepInterval = 200 * time.Millisecond
	shutdownTimeout     = 5 * time.Second
)

// ErrOptionViolation is the panic value of option constructors given nonsense.
var ErrOptionViolation = errors.New("server: invalid option")

// Server serves one simulation.
type Server struct {
	sim       *simulation.Simulation
	logger    *zap.Logger
	collector *metrics.Collector
	validate  *validator.Validate
	runner    *runner

	stepInterval time.Duration
	maxSteps     int
}

// Option configures a Server.
type Option func(*Server)

// WithLogger sets the request and auto-run logger. Panics on nil.
func WithLogger(l *zap.Logger) Option {
	if l == nil {
		panic(fmt.Errorf("WithLogger(nil): %w", ErrOptionViolation))
	}

	return func(s *Server) { s.logger = l }
}

// WithCollector enables request metrics and the /metrics route.
func WithCollector(c *metrics.Collector) Option {
	return func(s *Server) { s.collector = c }
}

// WithStepInterval sets the auto-run tick. Panics on d ≤ 0.
func WithStepInterval(d time.Duration) Option {
	if d <= 0 {
		panic(fmt.Errorf("WithStepInterval(%s): %w", d, ErrOptionViolation))
	}

	return func(s *Server) { s.stepInterval = d }
}

// WithMaxSteps caps one auto-run at n connections; 0 means until stopped.
// Panics on n < 0.
func WithMaxSteps(n int) Option {
	if n < 0 {
		panic(fmt.Errorf("WithMaxSteps(%d): %w", n, ErrOptionViolation))
	}

	return func(s *Server) { s.maxSteps = n }
}

// New wraps sim in a Server.
func New(sim *simulation.Simulation, opts ...Option) *Server {
	s := &Server{
		sim:          sim,
		logger:       zap.NewNop(),
		validate:     validator.New(),
		stepInterval: DefaultStepInterval,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.runner = newRunner(sim, s.logger, s.stepInterval, s.maxSteps)

	return s
}

// Handler builds the router.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.Recoverer)
	r.Use(requestLogger(s.logger, s.collector))
	r.Use(s.sessionHeader)

	r.Get("/stats", s.getStats)
	r.Get("/report", s.getReport)
	r.Get("/components", s.getComponents)
	r.Route("/cycles", func(r chi.Router) {
		r.Get("/", s.getCycles)
		r.Post("/highlight", s.highlightCycle)
	})
	r.Post("/edges", s.attachSpring)
	r.Post("/step", s.step)
	r.Post("/generate", s.generate)
	r.Post("/reset", s.reset)
	r.Route("/autorun", func(r chi.Router) {
		r.Get("/", s.autorunStatus)
		r.Post("/start", s.autorunStart)
		r.Post("/stop", s.autorunStop)
	})
	if s.collector != nil {
		r.Method(http.MethodGet, "/metrics", s.collector.Handler())
	}

	return r
}

// ListenAndServe serves on addr until ctx is done, then shuts down gracefully
// and stops any running auto-run.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("server listening", zap.String("addr", addr))
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		s.runner.stop()
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("server: listen %s: %w", addr, err)
	case <-ctx.Done():
	}

	s.runner.stop()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server: shutdown: %w", err)
	}
	s.logger.Info("server stopped")

	return nil
}

// Close stops a running auto-run.
func (s *Server) Close() {
	s.runner.stop()
}
