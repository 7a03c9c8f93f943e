// Package api serves the coloring algorithms over HTTP.
//
// # Endpoints
//
//   - GET  /healthz         liveness probe with build information
//   - GET  /v1/algorithms   the algorithm table
//   - POST /v1/colorings    color a posted graph
//
// Every response carries an X-Request-ID header. Errors are JSON objects
// with the code from pkg/errors; validation codes map to 400 and
// RATE_LIMITED to 429.
//
// Coloring responses are memoized in process: the same graph, algorithm,
// seed and settings return the stored result with "cached": true.
package api

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"

	"github.com/matzehuels/colorgraph/pkg/cache"
	"github.com/matzehuels/colorgraph/pkg/coloring"
	"github.com/matzehuels/colorgraph/pkg/config"
	"github.com/matzehuels/colorgraph/pkg/ratelimit"
)

// Limits applied to POST /v1/colorings.
const (
	DefaultMaxBodyBytes = 8 << 20
	DefaultMaxVertices  = 5000
)

// shutdownTimeout bounds graceful shutdown in ListenAndServe.
const shutdownTimeout = 10 * time.Second

// Server holds the API dependencies. Configure it before calling Handler.
type Server struct {
	// Defaults supplies the seed and Iterated Greedy settings used when a
	// request leaves them out.
	Defaults config.Config

	Logger       *log.Logger
	MaxBodyBytes int64
	MaxVertices  int

	// Cache holds encoded responses of POST /v1/colorings for CacheTTL.
	// Cache failures are logged and the coloring is computed anyway.
	Cache    cache.Cache
	CacheTTL time.Duration

	// Limiter throttles the /v1 routes per client host. Nil disables it.
	Limiter ratelimit.Limiter
}

// New creates a server with the package limits.
// If logger is nil, log.Default() is used.
func New(defaults config.Config, logger *log.Logger) *Server {
	if logger == nil {
		logger = log.Default()
	}
	return &Server{
		Defaults:     defaults,
		Logger:       logger,
		MaxBodyBytes: DefaultMaxBodyBytes,
		MaxVertices:  DefaultMaxVertices,
		Cache:        cache.NewNullCache(),
		CacheTTL:     cache.DefaultTTL,
	}
}

// Handler returns the routed handler with middleware applied.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(withRequestID)
	r.Use(withLogger(s.Logger))
	r.Use(accessLog(s.Logger))
	r.Use(recoverer(s.Logger))

	r.Get("/healthz", s.handleHealth)
	r.Route("/v1", func(r chi.Router) {
		if s.Limiter != nil {
			r.Use(s.rateLimit)
		}
		r.Get("/algorithms", s.handleAlgorithms)
		r.Post("/colorings", s.handleColoring)
	})
	return r
}

// ListenAndServe serves on addr until ctx is done, then shuts down
// gracefully.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.Logger.Info("api listening", "addr", addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	s.Logger.Info("shutting down api")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// igOptions merges the request's Iterated Greedy overrides into the server
// defaults.
func (s *Server) igOptions(req *ColoringRequest) coloring.IGOptions {
	opts := s.Defaults.IGOptions()
	if ig := req.IteratedGreedy; ig != nil {
		if ig.Limit != 0 {
			opts.Limit = ig.Limit
		}
		if ig.Goal != 0 {
			opts.Goal = ig.Goal
		}
		if ig.Ratios != nil {
			opts.Ratios = *ig.Ratios
		}
		if ig.SortByDegree != nil {
			opts.SortByDegree = *ig.SortByDegree
		}
	}
	return opts
}
