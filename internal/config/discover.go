package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// DefaultPath returns the XDG-compliant default config path.
func DefaultPath() string {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "./config.toml"
		}
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, "plexmcp", "config.toml")
}

// Discover finds the config file using the standard search order.
// Search order:
//  1. PLEXMCP_CONFIG environment variable
//  2. ./config.toml (current directory)
//  3. $XDG_CONFIG_HOME/plexmcp/config.toml
//  4. /etc/plexmcp/config.toml
//
// When none exists the returned error satisfies IsNotExist, and callers may
// run from the environment alone.
func Discover() (string, error) {
	if envPath := os.Getenv("PLEXMCP_CONFIG"); envPath != "" {
		if _, err := os.Stat(envPath); err != nil {
			return "", fmt.Errorf("PLEXMCP_CONFIG=%s: %w", envPath, err)
		}
		return envPath, nil
	}

	paths := []string{
		"./config.toml",
		DefaultPath(),
		"/etc/plexmcp/config.toml",
	}
	for _, p := range paths {
		if _, err := os.Stat(p); err == nil {
			return p, nil
		}
	}

	return "", fmt.Errorf("config not found, checked: %s: %w", strings.Join(paths, ", "), os.ErrNotExist)
}
