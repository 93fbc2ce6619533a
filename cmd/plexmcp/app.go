package main

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/vmunix/plexmcp/internal/config"
	"github.com/vmunix/plexmcp/internal/mock"
	"github.com/vmunix/plexmcp/internal/plex"
	"github.com/vmunix/plexmcp/internal/tools"
)

func parseLogLevel(s string) slog.Level {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// loadConfig resolves the config file, applies the command-line overrides and
// validates. No file at all is fine; the environment may carry everything.
func loadConfig() (*config.Config, string, error) {
	path := configPath
	if path == "" {
		found, err := config.Discover()
		switch {
		case err == nil:
			path = found
		case !config.IsNotExist(err) || os.Getenv("PLEXMCP_CONFIG") != "":
			return nil, "", err
		}
	}

	cfg, err := config.LoadWithoutValidation(path)
	if err != nil {
		return nil, path, err
	}
	if mockMode {
		cfg.Plex.Mock = true
	}
	if logLevel != "" {
		cfg.Server.LogLevel = logLevel
	}
	if errs := cfg.Validate(); len(errs) > 0 {
		return nil, path, &config.ConfigError{Path: path, Errors: errs}
	}
	return cfg, path, nil
}

// openLogger builds the server logger. Stdout carries the stdio protocol, so
// output goes to the configured file, or stderr for "-".
func openLogger(cfg *config.Config) (*slog.Logger, io.Closer, error) {
	var w io.Writer = os.Stderr
	var closer io.Closer = nopCloser{}
	if cfg.Server.LogFile != "-" {
		f, err := os.OpenFile(cfg.Server.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			return nil, nil, fmt.Errorf("open log file: %w", err)
		}
		w, closer = f, f
	}
	logger := slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: parseLogLevel(cfg.Server.LogLevel),
	}))
	return logger, closer, nil
}

// cliLogger is used by the one-shot commands: stderr, warnings and up unless
// --log-level says otherwise.
func cliLogger() *slog.Logger {
	level := slog.LevelWarn
	if logLevel != "" {
		level = parseLogLevel(logLevel)
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

// newCatalog picks the fixture client in mock mode and the HTTP client
// otherwise.
func newCatalog(cfg *config.Config, logger *slog.Logger) (tools.Catalog, error) {
	if cfg.Plex.Mock {
		logger.Info("using mock plex client")
		return mock.New(logger)
	}

	opts := []plex.Option{
		plex.WithTimeout(cfg.Plex.Timeout),
		plex.WithLogger(logger),
	}
	if cfg.Plex.TVURL != "" {
		opts = append(opts, plex.WithTVURL(cfg.Plex.TVURL))
	}
	if cfg.Plex.DiscoverURL != "" {
		opts = append(opts, plex.WithDiscoverURL(cfg.Plex.DiscoverURL))
	}
	if cfg.Plex.ClientIdentifier != "" {
		opts = append(opts, plex.WithClientIdentifier(cfg.Plex.ClientIdentifier))
	}
	return plex.NewClient(cfg.Plex.URL, cfg.Plex.Token, opts...), nil
}

func newRegistry(cfg *config.Config, logger *slog.Logger) (*tools.Registry, error) {
	catalog, err := newCatalog(cfg, logger)
	if err != nil {
		return nil, err
	}
	return tools.New(catalog, tools.Options{Logger: logger, Version: version}), nil
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
