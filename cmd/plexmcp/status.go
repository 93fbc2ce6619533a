package main

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/vmunix/plexmcp/internal/media"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Check the connection to the Plex server",
	Long: `Connect to the configured Plex server and show its identity and libraries.

Examples:
  plexmcp status
  plexmcp status --json`,
	Args: cobra.NoArgs,
	RunE: runStatus,
}

func init() {
	rootCmd.AddCommand(statusCmd)
}

// StatusReport is the status command output.
type StatusReport struct {
	Server    string          `json:"server"`
	Machine   string          `json:"machineIdentifier"`
	Version   string          `json:"version"`
	Mock      bool            `json:"mock"`
	Libraries []media.Library `json:"libraries"`
	LatencyMS int64           `json:"latency_ms"`
}

func runStatus(cmd *cobra.Command, _ []string) error {
	cfg, _, err := loadConfig()
	if err != nil {
		return err
	}
	catalog, err := newCatalog(cfg, cliLogger())
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, cancel := context.WithTimeout(ctx, cfg.Plex.Timeout)
	defer cancel()

	start := time.Now()
	identity, err := catalog.GetIdentity(ctx)
	if err != nil {
		return fmt.Errorf("status check failed: %w", err)
	}
	sections, err := catalog.GetSections(ctx)
	if err != nil {
		return fmt.Errorf("list libraries: %w", err)
	}

	report := StatusReport{
		Server:    identity.Name,
		Machine:   identity.MachineIdentifier,
		Version:   identity.Version,
		Mock:      cfg.Plex.Mock,
		Libraries: media.NormalizeLibraries(sections),
		LatencyMS: time.Since(start).Milliseconds(),
	}

	out := cmd.OutOrStdout()
	if jsonOutput {
		return printJSON(out, report)
	}

	_, _ = fmt.Fprintf(out, "Server:    %s (%s)\n", report.Server, report.Version)
	_, _ = fmt.Fprintf(out, "Machine:   %s\n", report.Machine)
	if report.Mock {
		_, _ = fmt.Fprintln(out, "Mode:      mock")
	}
	_, _ = fmt.Fprintf(out, "Latency:   %dms\n", report.LatencyMS)
	_, _ = fmt.Fprintf(out, "Libraries: %d\n", len(report.Libraries))
	for _, lib := range report.Libraries {
		_, _ = fmt.Fprintf(out, "  %-4s %-8s %s\n", lib.ID, lib.Type, lib.Title)
	}
	return nil
}
