// Package transport serves one MCP server over stdio and SSE at the same time.
package transport

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"golang.org/x/sync/errgroup"
)

// DefaultShutdownTimeout bounds graceful HTTP shutdown.
const DefaultShutdownTimeout = 10 * time.Second

// ErrNoTransport is returned by Run when neither stdio nor HTTP is enabled.
var ErrNoTransport = errors.New("no transport enabled")

// Options configures a Bridge.
type Options struct {
	// Addr is the host:port the SSE endpoint listens on. Empty disables HTTP.
	Addr string
	// Stdio carries the stdio session, usually &mcp.StdioTransport{}. Nil
	// disables it.
	Stdio           mcp.Transport
	Logger          *slog.Logger
	ShutdownTimeout time.Duration
}

// Bridge exposes a single MCP server on every enabled transport. Each SSE
// client gets its own session; all of them share the server's tools.
type Bridge struct {
	server *mcp.Server
	opts   Options
	log    *slog.Logger
}

// New creates a bridge for server.
func New(server *mcp.Server, opts Options) *Bridge {
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}
	if opts.ShutdownTimeout <= 0 {
		opts.ShutdownTimeout = DefaultShutdownTimeout
	}
	return &Bridge{
		server: server,
		opts:   opts,
		log:    opts.Logger.With("component", "transport"),
	}
}

// Handler returns the HTTP routes:
//
//	GET  /sse                      open an event stream (one session each)
//	POST /sse?sessionid=...        deliver a message to a session
//	POST /messages?sessionid=...   same, for clients that post elsewhere
//	GET  /healthz                  liveness
func (b *Bridge) Handler() http.Handler {
	sse := mcp.NewSSEHandler(func(*http.Request) *mcp.Server { return b.server }, nil)

	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(middleware.RealIP)
	r.Use(func(next http.Handler) http.Handler { return logRequests(next, b.log) })

	r.Handle("/sse", sse)
	r.Handle("/messages", sse)
	r.Get("/healthz", b.health)
	return r
}

func (b *Bridge) health(w http.ResponseWriter, _ *http.Request) {
	sessions := 0
	for range b.server.Sessions() {
		sessions++
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]any{
		"status":   "ok",
		"sessions": sessions,
	})
}

// Run serves every enabled transport until ctx is canceled or a transport
// fails. The stdio session ending (stdin closed) is not a failure; HTTP keeps
// serving.
func (b *Bridge) Run(ctx context.Context) error {
	if b.opts.Stdio == nil && b.opts.Addr == "" {
		return ErrNoTransport
	}

	var ln net.Listener
	if b.opts.Addr != "" {
		var err error
		if ln, err = net.Listen("tcp", b.opts.Addr); err != nil {
			return fmt.Errorf("listen %s: %w", b.opts.Addr, err)
		}
	}

	g, ctx := errgroup.WithContext(ctx)
	if b.opts.Stdio != nil {
		g.Go(func() error {
			return b.runStdio(ctx)
		})
	}
	if ln != nil {
		g.Go(func() error {
			return b.serveHTTP(ctx, ln)
		})
	}
	return g.Wait()
}

func (b *Bridge) runStdio(ctx context.Context) error {
	b.log.Info("stdio transport started")
	err := b.server.Run(ctx, b.opts.Stdio)
	if err != nil && !errors.Is(err, context.Canceled) && !errors.Is(err, io.EOF) {
		return fmt.Errorf("stdio: %w", err)
	}
	b.log.Info("stdio transport stopped")
	return nil
}

// serveHTTP serves on ln until ctx is done, then shuts down gracefully.
// Request contexts derive from ctx so open event streams end on shutdown.
func (b *Bridge) serveHTTP(ctx context.Context, ln net.Listener) error {
	srv := &http.Server{
		Handler:           b.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
		BaseContext:       func(net.Listener) context.Context { return ctx },
	}

	errCh := make(chan error, 1)
	go func() {
		b.log.Info("sse transport listening", "addr", ln.Addr().String())
		errCh <- srv.Serve(ln)
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("http: %w", err)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), b.opts.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		b.log.Error("http shutdown error", "error", err)
		_ = srv.Close()
	}
	b.log.Info("sse transport stopped")
	return nil
}
