package main

import (
	"os"

	"github.com/spf13/cobra"
)

var version = "dev"

var (
	configPath string
	mockMode   bool
	logLevel   string
	jsonOutput bool
)

var rootCmd = &cobra.Command{
	Use:   "plexmcp",
	Short: "MCP tool server for a Plex media library",
	Long: `plexmcp - MCP tool server for a Plex media library

Exposes libraries, movies, shows, seasons, episodes, search, the watchlist
and devices of a Plex Media Server as MCP tools, over stdio and SSE.

Run 'plexmcp serve' to start the server.`,
	SilenceUsage: true,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Config file (default: discovered)")
	rootCmd.PersistentFlags().BoolVar(&mockMode, "mock", false, "Serve built-in fixtures instead of a Plex server")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Override the configured log level")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Output as JSON")

	rootCmd.Version = version
	rootCmd.SetVersionTemplate("plexmcp {{.Version}}\n")
}
