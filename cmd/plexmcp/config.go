package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/vmunix/plexmcp/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Configuration management",
}

var configInitCmd = &cobra.Command{
	Use:   "init [path]",
	Short: "Write the default configuration file",
	Long:  "Writes a commented config.toml. Without a path it goes to $XDG_CONFIG_HOME/plexmcp/config.toml.",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runConfigInit,
}

var configTestCmd = &cobra.Command{
	Use:   "test [path]",
	Short: "Validate configuration",
	Long:  "Validates config.toml syntax, required fields, and environment variable substitution without starting the server.",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runConfigTest,
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configTestCmd)
	configInitCmd.Flags().Bool("force", false, "Overwrite an existing file")
}

func runConfigInit(cmd *cobra.Command, args []string) error {
	path := config.DefaultPath()
	if len(args) > 0 {
		path = args[0]
	}

	force, _ := cmd.Flags().GetBool("force")
	if _, err := os.Stat(path); err == nil && !force {
		return fmt.Errorf("%s already exists, use --force to overwrite", path)
	}

	if err := config.WriteDefault(path); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", path)
	return nil
}

func runConfigTest(cmd *cobra.Command, args []string) error {
	if len(args) > 0 {
		configPath = args[0]
	}
	out := cmd.OutOrStdout()

	cfg, path, err := loadConfig()
	if err != nil {
		var cfgErr *config.ConfigError
		if errors.As(err, &cfgErr) {
			printConfigErrors(out, cfgErr)
			return fmt.Errorf("configuration invalid")
		}
		return fmt.Errorf("failed to load config: %w", err)
	}

	if path == "" {
		path = "(environment only)"
	}
	_, _ = fmt.Fprintf(out, "Validated %s\n\n", path)
	printConfigSummary(out, cfg)
	_, _ = fmt.Fprintln(out, "\nConfiguration valid!")
	return nil
}

func printConfigErrors(w io.Writer, e *config.ConfigError) {
	if len(e.Missing) > 0 {
		_, _ = fmt.Fprintln(w, "Missing environment variables:")
		for _, m := range e.Missing {
			_, _ = fmt.Fprintf(w, "  - %s\n", m)
		}
		_, _ = fmt.Fprintln(w)
	}

	if len(e.Errors) > 0 {
		_, _ = fmt.Fprintln(w, "Validation errors:")
		for _, err := range e.Errors {
			_, _ = fmt.Fprintf(w, "  - %s\n", err)
		}
		_, _ = fmt.Fprintln(w)
	}
}

func printConfigSummary(w io.Writer, cfg *config.Config) {
	_, _ = fmt.Fprintln(w, "Configuration Summary:")
	_, _ = fmt.Fprintf(w, "  Server:     %s (log: %s -> %s)\n", cfg.Server.Addr(), cfg.Server.LogLevel, cfg.Server.LogFile)
	_, _ = fmt.Fprintf(w, "  Transports: %v\n", cfg.Server.Transports)
	if cfg.Plex.Mock {
		_, _ = fmt.Fprintln(w, "  Plex:       mock fixtures")
		return
	}
	_, _ = fmt.Fprintf(w, "  Plex:       %s (timeout %s)\n", cfg.Plex.URL, cfg.Plex.Timeout)
}
