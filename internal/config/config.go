// Package config handles TOML configuration loading with environment variable
// substitution and the PLEX_* environment overrides.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
)

// Transport names accepted in server.transports.
const (
	TransportStdio = "stdio"
	TransportSSE   = "sse"
)

// Config is the root configuration structure.
type Config struct {
	Server ServerConfig `toml:"server"`
	Plex   PlexConfig   `toml:"plex"`
}

type ServerConfig struct {
	Host       string   `toml:"host"`
	Port       int      `toml:"port"`
	LogLevel   string   `toml:"log_level"`
	LogFile    string   `toml:"log_file"` // "-" logs to stderr
	Transports []string `toml:"transports"`
}

type PlexConfig struct {
	URL              string        `toml:"url"`
	Token            string        `toml:"token"`
	TVURL            string        `toml:"tv_url"`
	DiscoverURL      string        `toml:"discover_url"`
	ClientIdentifier string        `toml:"client_identifier"`
	Timeout          time.Duration `toml:"timeout"`
	Mock             bool          `toml:"mock"`
}

// Addr returns the host:port the SSE transport listens on.
func (s ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

// Enabled reports whether the named transport is configured.
func (s ServerConfig) Enabled(transport string) bool {
	for _, t := range s.Transports {
		if strings.EqualFold(t, transport) {
			return true
		}
	}
	return false
}

// Load reads the configuration at path, applies environment overrides and
// defaults, and validates the result. An empty path skips the file. Errors
// from missing variables or validation are returned as *ConfigError.
func Load(path string) (*Config, error) {
	cfg, missing, err := load(path)
	if err != nil {
		return nil, err
	}

	cfgErr := &ConfigError{Path: path, Missing: missing, Errors: cfg.Validate()}
	if cfgErr.HasErrors() {
		return nil, cfgErr
	}
	return cfg, nil
}

// LoadWithoutValidation is Load without Validate. Missing environment
// variables are still reported.
func LoadWithoutValidation(path string) (*Config, error) {
	cfg, missing, err := load(path)
	if err != nil {
		return nil, err
	}
	if len(missing) > 0 {
		return nil, &ConfigError{Path: path, Missing: missing}
	}
	return cfg, nil
}

func load(path string) (*Config, []string, error) {
	var cfg Config
	var missing []string

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, nil, fmt.Errorf("reading config: %w", err)
		}

		var content string
		content, missing = substituteEnvVars(string(data))
		if _, err := toml.Decode(content, &cfg); err != nil {
			return nil, nil, fmt.Errorf("parsing config: %w", err)
		}
	}

	if err := cfg.applyEnv(); err != nil {
		return nil, nil, err
	}
	cfg.applyDefaults()
	return &cfg, missing, nil
}

// applyEnv overlays the PLEX_* variables, which take precedence over the file.
func (c *Config) applyEnv() error {
	if v, ok := lookup("PLEX_SERVER_URL"); ok {
		c.Plex.URL = v
	}
	if v, ok := lookup("PLEX_TOKEN"); ok {
		c.Plex.Token = v
	}
	if v, ok := lookup("USE_MOCK_CLIENT"); ok {
		mock, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("USE_MOCK_CLIENT=%q: %w", v, err)
		}
		c.Plex.Mock = mock
	}
	if v, ok := lookup("PORT"); ok {
		port, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("PORT=%q: %w", v, err)
		}
		c.Server.Port = port
	}
	if v, ok := lookup("PLEX_MCP_LOG_FILE"); ok {
		c.Server.LogFile = v
	}
	if v, ok := lookup("PLEX_MCP_LOG_LEVEL"); ok {
		c.Server.LogLevel = v
	}
	return nil
}

func (c *Config) applyDefaults() {
	if c.Server.Host == "" {
		c.Server.Host = "0.0.0.0"
	}
	if c.Server.Port == 0 {
		c.Server.Port = 3001
	}
	if c.Server.LogLevel == "" {
		c.Server.LogLevel = "info"
	}
	if c.Server.LogFile == "" {
		c.Server.LogFile = "plexmcp.log"
	}
	if len(c.Server.Transports) == 0 {
		c.Server.Transports = []string{TransportStdio, TransportSSE}
	}
	if c.Plex.Timeout == 0 {
		c.Plex.Timeout = 30 * time.Second
	}
	c.Plex.URL = strings.TrimSuffix(c.Plex.URL, "/")
}

// lookup returns a non-empty environment variable.
func lookup(name string) (string, bool) {
	v, ok := os.LookupEnv(name)
	if !ok || strings.TrimSpace(v) == "" {
		return "", false
	}
	return strings.TrimSpace(v), true
}

// IsNotExist reports whether err came from a missing config file.
func IsNotExist(err error) bool {
	return errors.Is(err, fs.ErrNotExist)
}
