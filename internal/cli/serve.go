package cli

import (
	"context"
	"io"
	"time"

	"github.com/spf13/cobra"

	"github.com/matzehuels/colorgraph/internal/api"
	"github.com/matzehuels/colorgraph/pkg/cache"
	"github.com/matzehuels/colorgraph/pkg/ratelimit"
)

// serveOptions holds the serve flags that shape the server's middleware.
type serveOptions struct {
	addr        string
	maxVertices int

	memo        bool
	memoTTL     time.Duration
	memoEntries int

	rateLimit  int
	rateWindow time.Duration
	redisURL   string
}

// serveCommand creates the serve command.
func (c *CLI) serveCommand() *cobra.Command {
	var opts serveOptions

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP API",
		Long: `Start the coloring HTTP API.

Endpoints:
  GET  /healthz         liveness and build information
  GET  /v1/algorithms   available algorithm keys
  POST /v1/colorings    color a graph

Requests that leave Iterated Greedy settings unset use the configuration
file. Identical requests are answered from an in-memory memo that lives
as long as the process. With --rate-limit each client address gets that
many /v1 requests per --rate-window; pass --redis-url to share the
counters between replicas. The server stops gracefully on SIGINT or SIGTERM.`,
		Example: `  colorgraph serve --addr :8080
  colorgraph serve --rate-limit 60 --rate-window 1m --redis-url redis://localhost:6379/0`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			cfg, err := c.loadConfig(ctx)
			if err != nil {
				return err
			}

			limiter, closer, err := newLimiter(ctx, opts)
			if err != nil {
				return err
			}
			if closer != nil {
				defer closer.Close()
			}

			srv := api.New(cfg, loggerFromContext(ctx))
			srv.MaxVertices = opts.maxVertices
			srv.Cache = newMemo(opts)
			srv.CacheTTL = opts.memoTTL
			srv.Limiter = limiter
			return srv.ListenAndServe(ctx, opts.addr)
		},
	}

	cmd.Flags().StringVar(&opts.addr, "addr", ":8080", "listen address")
	cmd.Flags().IntVar(&opts.maxVertices, "max-vertices", api.DefaultMaxVertices, "largest graph accepted")
	cmd.Flags().BoolVar(&opts.memo, "memo", true, "answer repeated requests from memory")
	cmd.Flags().DurationVar(&opts.memoTTL, "memo-ttl", cache.DefaultTTL, "how long memoized results live")
	cmd.Flags().IntVar(&opts.memoEntries, "memo-entries", 1024, "most results kept in memory (0 = unbounded)")
	cmd.Flags().IntVar(&opts.rateLimit, "rate-limit", 0, "requests per client per window (0 = off)")
	cmd.Flags().DurationVar(&opts.rateWindow, "rate-window", time.Minute, "rate limit window")
	cmd.Flags().StringVar(&opts.redisURL, "redis-url", "", "redis server holding rate limit counters (default in-process)")

	return cmd
}

// newMemo returns the in-process result memo, or a no-op one with --memo=false.
func newMemo(opts serveOptions) cache.Cache {
	if !opts.memo {
		return cache.NewNullCache()
	}
	m := cache.NewMemoryCache()
	m.MaxEntries = opts.memoEntries
	return m
}

// newLimiter builds the request limiter. It returns a nil limiter when rate
// limiting is off, and a non-nil closer when the limiter holds a connection.
func newLimiter(ctx context.Context, opts serveOptions) (ratelimit.Limiter, io.Closer, error) {
	if opts.rateLimit <= 0 {
		return nil, nil, nil
	}
	w := ratelimit.Window{Limit: opts.rateLimit, Period: opts.rateWindow}

	logger := loggerFromContext(ctx)
	if opts.redisURL == "" {
		logger.Debug("rate limiting in process", "limit", w.Limit, "window", w.Period)
		l, err := ratelimit.NewMemoryLimiter(w)
		if err != nil {
			return nil, nil, err
		}
		return l, nil, nil
	}

	logger.Debug("rate limiting through redis", "limit", w.Limit, "window", w.Period)
	l, err := ratelimit.NewRedisLimiter(ctx, opts.redisURL, w)
	if err != nil {
		return nil, nil, err
	}
	return l, l, nil
}
