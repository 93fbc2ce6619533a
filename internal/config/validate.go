package config

import (
	"fmt"
	"net/url"
	"strings"
)

var validLogLevels = map[string]bool{
	"debug": true, "info": true, "warn": true, "error": true, "": true,
}

// Validate checks the configuration for errors.
// Returns a slice of error messages (empty if valid).
func (c *Config) Validate() []string {
	var errs []string

	if c.Server.Port < 1 || c.Server.Port > 65535 {
		errs = append(errs, fmt.Sprintf("server.port: must be between 1 and 65535, got %d", c.Server.Port))
	}
	if !validLogLevels[strings.ToLower(c.Server.LogLevel)] {
		errs = append(errs, fmt.Sprintf("server.log_level: must be one of debug, info, warn, error; got %q", c.Server.LogLevel))
	}
	for _, t := range c.Server.Transports {
		switch strings.ToLower(t) {
		case TransportStdio, TransportSSE:
		default:
			errs = append(errs, fmt.Sprintf("server.transports: unknown transport %q (want stdio or sse)", t))
		}
	}
	if c.Plex.Timeout < 0 {
		errs = append(errs, fmt.Sprintf("plex.timeout: must not be negative, got %s", c.Plex.Timeout))
	}

	// Credentials are only needed when talking to a real server.
	if c.Plex.Mock {
		return errs
	}
	if c.Plex.URL == "" {
		errs = append(errs, "plex.url: required (or set PLEX_SERVER_URL, or enable mock mode)")
	} else if u, err := url.Parse(c.Plex.URL); err != nil || u.Scheme == "" || u.Host == "" {
		errs = append(errs, fmt.Sprintf("plex.url: must be an absolute URL, got %q", c.Plex.URL))
	}
	if c.Plex.Token == "" {
		errs = append(errs, "plex.token: required (or set PLEX_TOKEN, or enable mock mode)")
	}
	return errs
}
