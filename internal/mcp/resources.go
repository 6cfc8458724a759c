// ABOUTME: MCP resource implementations for the workout log.
// ABOUTME: Provides wodlog://recent and wodlog://prs resources.
package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

func (s *Server) registerResources() {
	s.mcpServer.AddResource(&mcp.Resource{
		URI:         "wodlog://recent",
		Name:        "Recent Workout Records",
		Description: "Last 10 workout records, newest first",
		MIMEType:    "application/json",
	}, s.handleRecentResource)

	s.mcpServer.AddResource(&mcp.Resource{
		URI:         "wodlog://prs",
		Name:        "Personal Records",
		Description: "Best stored result per exercise name",
		MIMEType:    "application/json",
	}, s.handlePRsResource)
}

// Resource handlers

func (s *Server) handleRecentResource(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
	records, err := s.store.ListAll()
	if err != nil {
		return nil, fmt.Errorf("failed to list records: %w", err)
	}
	if len(records) > 10 {
		records = records[:10]
	}

	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal result: %w", err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      "wodlog://recent",
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}

func (s *Server) handlePRsResource(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
	prs, err := s.store.PersonalRecords()
	if err != nil {
		return nil, fmt.Errorf("failed to compute prs: %w", err)
	}

	data, err := json.MarshalIndent(prs, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal result: %w", err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      "wodlog://prs",
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}
