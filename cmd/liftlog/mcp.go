// ABOUTME: CLI command starting the MCP server over stdio.
// ABOUTME: Runs until stdin closes or an interrupt signal arrives.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/harperreed/liftlog/internal/mcp"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Start the MCP server for AI assistant integration",
	Long: `Start the Model Context Protocol server over stdio.

Exposes plan listing, day status, completion recording, exercise
history, and cycle control as MCP tools, plus plans and history as
resources. Add to Claude Desktop's config:

  {
    "mcpServers": {
      "liftlog": { "command": "liftlog", "args": ["mcp"] }
    }
  }`,
	RunE: func(cmd *cobra.Command, args []string) error {
		server, err := mcp.NewServer(planRepo, tracker)
		if err != nil {
			return fmt.Errorf("failed to create MCP server: %w", err)
		}

		ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer cancel()

		if err := server.Serve(ctx); err != nil && ctx.Err() == nil {
			return fmt.Errorf("MCP server error: %w", err)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(mcpCmd)
}
