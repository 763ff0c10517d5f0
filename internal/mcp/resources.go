// ABOUTME: MCP resource implementations for the fitness tracker.
// ABOUTME: Provides dolphin://today and dolphin://recent resources.
package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/harperreed/dolphin/internal/models"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

const (
	todayURI  = "dolphin://today"
	recentURI = "dolphin://recent"
)

func (s *Server) registerResources() {
	s.mcpServer.AddResource(&mcp.Resource{
		URI:         todayURI,
		Name:        "Today's Exercise",
		Description: "Exercise counts recorded for today",
		MIMEType:    "application/json",
	}, s.handleTodayResource)

	s.mcpServer.AddResource(&mcp.Resource{
		URI:         recentURI,
		Name:        "Recent Exercise",
		Description: "Last 7 recorded days with totals",
		MIMEType:    "application/json",
	}, s.handleRecentResource)
}

// Resource handlers

func (s *Server) handleTodayResource(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
	unlock, err := s.fresh()
	if err != nil {
		return nil, fmt.Errorf("failed to load data: %w", err)
	}
	defer unlock()

	dateKey, rec, err := s.tracker.Lookup("today")
	if err != nil {
		return nil, err
	}
	if rec == nil {
		rec = &models.DailyRecord{}
	}

	return jsonResource(todayURI, map[string]interface{}{
		"date":    dateKey,
		"pushups": rec.Pushups,
		"situps":  rec.Situps,
		"pullups": rec.Pullups,
	})
}

func (s *Server) handleRecentResource(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
	unlock, err := s.fresh()
	if err != nil {
		return nil, fmt.Errorf("failed to load data: %w", err)
	}
	defer unlock()

	days := s.tracker.Days(7)
	totals := make(map[string]uint64)
	out := make([]dayOutput, 0, len(days))
	for _, d := range days {
		for _, kind := range models.AllExerciseKinds {
			if r := d.Record.Get(kind); r != nil {
				totals[string(kind)] += uint64(r.Count)
			}
		}
		out = append(out, toDayOutput(d))
	}

	return jsonResource(recentURI, map[string]interface{}{
		"days":   out,
		"totals": totals,
	})
}

func jsonResource(uri string, v interface{}) (*mcp.ReadResourceResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal result: %w", err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      uri,
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}
