package main

import (
	"context"
	"errors"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/spf13/cobra"

	"github.com/vmunix/plexmcp/internal/config"
	"github.com/vmunix/plexmcp/internal/transport"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the MCP server",
	Long: `Run the MCP server on the configured transports.

stdio speaks MCP on stdin/stdout. sse listens on server.host:server.port and
serves GET /sse (event stream), POST /messages (client messages) and
GET /healthz. Both share one set of tools.

Examples:
  plexmcp serve                      # stdio + sse, config discovered
  plexmcp serve --mock               # no Plex server needed
  plexmcp serve --transport sse      # HTTP only`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().StringSlice("transport", nil, "Transports to enable (stdio, sse); overrides server.transports")
	serveCmd.Flags().Int("port", 0, "SSE port; overrides server.port")
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg, path, err := loadConfig()
	if err != nil {
		var cfgErr *config.ConfigError
		if errors.As(err, &cfgErr) {
			printConfigErrors(cmd.ErrOrStderr(), cfgErr)
			return fmt.Errorf("configuration invalid")
		}
		return fmt.Errorf("config: %w", err)
	}
	if ts, _ := cmd.Flags().GetStringSlice("transport"); len(ts) > 0 {
		cfg.Server.Transports = ts
	}
	if port, _ := cmd.Flags().GetInt("port"); port > 0 {
		cfg.Server.Port = port
	}
	if errs := cfg.Validate(); len(errs) > 0 {
		printConfigErrors(cmd.ErrOrStderr(), &config.ConfigError{Path: path, Errors: errs})
		return fmt.Errorf("configuration invalid")
	}

	logger, closer, err := openLogger(cfg)
	if err != nil {
		return err
	}
	defer func() { _ = closer.Close() }()

	logger.Info("starting plexmcp",
		"version", version,
		"config", path,
		"mock", cfg.Plex.Mock,
		"transports", cfg.Server.Transports,
	)

	registry, err := newRegistry(cfg, logger)
	if err != nil {
		logger.Error("catalog init failed", "error", err)
		return err
	}

	opts := transport.Options{Logger: logger}
	if cfg.Server.Enabled(config.TransportStdio) {
		opts.Stdio = &mcp.StdioTransport{}
	}
	if cfg.Server.Enabled(config.TransportSSE) {
		opts.Addr = cfg.Server.Addr()
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := transport.New(registry.Server(), opts).Run(ctx); err != nil {
		logger.Error("server stopped", "error", err)
		return err
	}
	logger.Info("server stopped")
	return nil
}
