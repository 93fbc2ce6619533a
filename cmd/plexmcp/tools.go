package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/spf13/cobra"
)

var toolsCmd = &cobra.Command{
	Use:   "tools",
	Short: "List the MCP tools",
	Args:  cobra.NoArgs,
	RunE:  runTools,
}

var callCmd = &cobra.Command{
	Use:   "call <tool> [json-arguments]",
	Short: "Call a tool once and print the result",
	Long: `Call a tool in-process, without a transport, and print its JSON result.

Examples:
  plexmcp call list-libraries
  plexmcp call list-library-contents '{"libraryId":"1","size":5}'
  plexmcp --mock call search '{"query":"matrix"}'`,
	Args: cobra.RangeArgs(1, 2),
	RunE: runCall,
}

func init() {
	rootCmd.AddCommand(toolsCmd)
	rootCmd.AddCommand(callCmd)
}

func runTools(cmd *cobra.Command, _ []string) error {
	cfg, _, err := loadConfig()
	if err != nil {
		return err
	}
	registry, err := newRegistry(cfg, cliLogger())
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if jsonOutput {
		return printJSON(out, registry.Tools())
	}
	tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintln(tw, "NAME\tDESCRIPTION")
	for _, t := range registry.Tools() {
		_, _ = fmt.Fprintf(tw, "%s\t%s\n", t.Name, t.Description)
	}
	return tw.Flush()
}

// errToolFailed marks a call whose result carried isError.
var errToolFailed = errors.New("tool returned an error")

func runCall(cmd *cobra.Command, args []string) error {
	toolArgs := map[string]any{}
	if len(args) == 2 {
		if err := json.Unmarshal([]byte(args[1]), &toolArgs); err != nil {
			return fmt.Errorf("arguments must be a JSON object: %w", err)
		}
	}

	cfg, _, err := loadConfig()
	if err != nil {
		return err
	}
	registry, err := newRegistry(cfg, cliLogger())
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	session, err := registry.Connect(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = session.Close() }()

	res, err := session.CallTool(ctx, &mcp.CallToolParams{Name: args[0], Arguments: toolArgs})
	if err != nil {
		return fmt.Errorf("call %s: %w", args[0], err)
	}

	out := cmd.OutOrStdout()
	for _, c := range res.Content {
		text, ok := c.(*mcp.TextContent)
		if !ok {
			continue
		}
		if res.IsError {
			_, _ = fmt.Fprintln(cmd.ErrOrStderr(), text.Text)
			continue
		}
		if err := printIndented(out, text.Text); err != nil {
			return err
		}
	}
	if res.IsError {
		return errToolFailed
	}
	return nil
}

// printIndented pretty-prints a JSON payload, falling back to the raw text.
func printIndented(w io.Writer, text string) error {
	var v any
	if err := json.Unmarshal([]byte(text), &v); err != nil {
		_, err := fmt.Fprintln(w, text)
		return err
	}
	return printJSON(w, v)
}
