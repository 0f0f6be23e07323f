// ABOUTME: MCP resource implementations for the workout tracker.
// ABOUTME: Provides liftlog://plans and liftlog://history resources.
package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

func (s *Server) registerResources() {
	// liftlog://plans - every plan with its current cycle
	s.mcpServer.AddResource(&mcp.Resource{
		URI:         "liftlog://plans",
		Name:        "Workout Plans",
		Description: "All workout plans with their days and current cycle numbers",
		MIMEType:    "application/json",
	}, s.handlePlansResource)

	// liftlog://history - recent completion records
	s.mcpServer.AddResource(&mcp.Resource{
		URI:         "liftlog://history",
		Name:        "Completion History",
		Description: "Last 20 completed workouts across all plans",
		MIMEType:    "application/json",
	}, s.handleHistoryResource)
}

// Resource handlers

func (s *Server) handlePlansResource(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
	keys, err := s.repo.Keys()
	if err != nil {
		return nil, fmt.Errorf("failed to list plans: %w", err)
	}

	result := make([]map[string]any, 0, len(keys))
	for _, key := range keys {
		p, err := s.repo.Load(key)
		if err != nil {
			return nil, fmt.Errorf("failed to load plan %s: %w", key, err)
		}
		result = append(result, map[string]any{
			"key":   key,
			"cycle": s.tracker.Cycle(key),
			"plan":  p,
		})
	}

	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal result: %w", err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      "liftlog://plans",
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}

func (s *Server) handleHistoryResource(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
	records, err := s.tracker.Ledger().Recent(20)
	if err != nil {
		return nil, fmt.Errorf("failed to load history: %w", err)
	}

	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal result: %w", err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      "liftlog://history",
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}
