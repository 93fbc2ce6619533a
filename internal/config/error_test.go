package config

import (
	"strings"
	"testing"
)

func TestConfigError_Error_Empty(t *testing.T) {
	e := &ConfigError{Path: "/etc/plexmcp/config.toml"}
	if got := e.Error(); got != "" {
		t.Errorf("expected empty string for no errors, got %q", got)
	}
	if e.HasErrors() {
		t.Error("expected HasErrors to be false")
	}
}

func TestConfigError_Error_MissingVars(t *testing.T) {
	e := &ConfigError{
		Path:    "/etc/plexmcp/config.toml",
		Missing: []string{"PLEX_TOKEN", "PLEX_SERVER_URL"},
	}
	got := e.Error()
	if !strings.Contains(got, "missing environment variables") {
		t.Errorf("expected 'missing environment variables', got %q", got)
	}
	if !strings.Contains(got, "PLEX_TOKEN") || !strings.Contains(got, "PLEX_SERVER_URL") {
		t.Errorf("expected var names in error, got %q", got)
	}
	if !strings.Contains(got, "/etc/plexmcp/config.toml") {
		t.Errorf("expected path in error, got %q", got)
	}
}

func TestConfigError_Error_Both(t *testing.T) {
	e := &ConfigError{
		Missing: []string{"PLEX_TOKEN"},
		Errors:  []string{"server.port: invalid"},
	}
	got := e.Error()
	if !strings.Contains(got, "missing environment variables") {
		t.Errorf("expected missing vars section, got %q", got)
	}
	if !strings.Contains(got, "validation failed") || !strings.Contains(got, "server.port") {
		t.Errorf("expected validation section, got %q", got)
	}
	if strings.HasPrefix(got, "config ") {
		t.Errorf("expected no path line without a path, got %q", got)
	}
}
