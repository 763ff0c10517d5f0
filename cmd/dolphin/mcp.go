// ABOUTME: CLI command for starting MCP server.
// ABOUTME: Runs stdio-based MCP server over the data file.
package main

import (
	"context"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/harperreed/dolphin/internal/mcp"
	"github.com/harperreed/dolphin/internal/storage"
	"github.com/spf13/cobra"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Start MCP server",
	Long: `Start the Model Context Protocol (MCP) server for AI assistant integration.

The server communicates via stdin/stdout and reads and writes the same data
file as the other commands, re-reading it before every request.

CONFIGURATION:

  {
    "mcpServers": {
      "dolphin": {
        "command": "dolphin",
        "args": ["--data-file", "/path/to/personal_data.json", "mcp"]
      }
    }
  }

AVAILABLE TOOLS:

  record_exercise     Record a count for pushups, situps, or pullups
  list_days           List recent days
  get_day             Get the records for one date

AVAILABLE RESOURCES:

  dolphin://today     Today's counts
  dolphin://recent    Last 7 recorded days with totals`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		// stdout carries the protocol, so confirmations are discarded.
		t, err := openTracker(storage.WithOutput(io.Discard))
		if err != nil {
			return err
		}

		server, err := mcp.NewServer(t, version)
		if err != nil {
			return err
		}

		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		// Handle shutdown signals
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		go func() {
			<-sigChan
			cancel()
		}()

		return server.Serve(ctx)
	},
}

func init() {
	rootCmd.AddCommand(mcpCmd)
}
