// ABOUTME: MCP server setup for the workout tracker.
// ABOUTME: Wraps the MCP server with plan repository and progress tracker.
package mcp

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/harperreed/liftlog/internal/plans"
	"github.com/harperreed/liftlog/internal/progress"
)

// Server wraps the MCP server with storage access.
type Server struct {
	mcpServer *mcp.Server
	repo      *plans.Repository
	tracker   *progress.Tracker
}

// NewServer creates a new MCP server over the given plan repository and
// progress tracker.
func NewServer(repo *plans.Repository, tracker *progress.Tracker) (*Server, error) {
	mcpServer := mcp.NewServer(
		&mcp.Implementation{
			Name:    "liftlog",
			Version: "1.0.0",
		},
		nil,
	)

	s := &Server{
		mcpServer: mcpServer,
		repo:      repo,
		tracker:   tracker,
	}

	s.registerTools()
	s.registerResources()

	return s, nil
}

// Serve starts the MCP server using stdio transport.
func (s *Server) Serve(ctx context.Context) error {
	return s.mcpServer.Run(ctx, &mcp.StdioTransport{})
}
