// ABOUTME: MCP tool implementations for the fitness tracker.
// ABOUTME: Provides record_exercise, list_days, and get_day.
package mcp

import (
	"context"
	"fmt"

	"github.com/harperreed/dolphin/internal/models"
	"github.com/harperreed/dolphin/internal/storage"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

func (s *Server) registerTools() {
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "record_exercise",
		Description: "Record the count for one exercise (pushups, situps, pullups) on a date. Replaces any earlier count for that exercise and date.",
	}, s.handleRecordExercise)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "list_days",
		Description: "List recorded days, newest first",
	}, s.handleListDays)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "get_day",
		Description: "Get the exercise records for one date",
	}, s.handleGetDay)
}

// Tool input/output types

type recordExerciseInput struct {
	Exercise string `json:"exercise" jsonschema:"exercise name: pushups, situps, or pullups"`
	Count    uint32 `json:"count" jsonschema:"number of repetitions completed"`
	Date     string `json:"date,omitempty" jsonschema:"today, yesterday, or YYYY-MM-DD (default today)"`
}

type recordExerciseOutput struct {
	Date     string `json:"date"`
	Exercise string `json:"exercise"`
	Count    uint32 `json:"count"`
	Message  string `json:"message"`
}

type listDaysInput struct {
	Limit int `json:"limit,omitempty" jsonschema:"max days to return (default 14)"`
}

type dayOutput struct {
	Date    string                 `json:"date"`
	Pushups *models.ExerciseRecord `json:"pushups"`
	Situps  *models.ExerciseRecord `json:"situps"`
	Pullups *models.ExerciseRecord `json:"pullups"`
}

type listDaysOutput struct {
	Days []dayOutput `json:"days"`
}

type getDayInput struct {
	Date string `json:"date" jsonschema:"today, yesterday, or YYYY-MM-DD"`
}

type getDayOutput struct {
	Found bool      `json:"found"`
	Day   dayOutput `json:"day"`
}

func toDayOutput(d storage.Day) dayOutput {
	out := dayOutput{Date: d.Date}
	if d.Record != nil {
		out.Pushups = d.Record.Pushups
		out.Situps = d.Record.Situps
		out.Pullups = d.Record.Pullups
	}
	return out
}

// Tool handlers

func (s *Server) handleRecordExercise(ctx context.Context, req *mcp.CallToolRequest, input recordExerciseInput) (*mcp.CallToolResult, recordExerciseOutput, error) {
	kind, err := models.ParseExerciseKind(input.Exercise)
	if err != nil {
		return nil, recordExerciseOutput{}, err
	}
	if input.Date == "" {
		input.Date = "today"
	}

	unlock, err := s.fresh()
	if err != nil {
		return nil, recordExerciseOutput{}, fmt.Errorf("failed to load data: %w", err)
	}
	defer unlock()

	dateKey, err := s.tracker.Upsert(kind, input.Count, input.Date)
	if err != nil {
		return nil, recordExerciseOutput{}, err
	}

	return nil, recordExerciseOutput{
		Date:     dateKey,
		Exercise: string(kind),
		Count:    input.Count,
		Message:  fmt.Sprintf("%d %s recorded for %s", input.Count, kind.Label(), dateKey),
	}, nil
}

func (s *Server) handleListDays(ctx context.Context, req *mcp.CallToolRequest, input listDaysInput) (*mcp.CallToolResult, listDaysOutput, error) {
	if input.Limit <= 0 {
		input.Limit = 14
	}

	unlock, err := s.fresh()
	if err != nil {
		return nil, listDaysOutput{}, fmt.Errorf("failed to load data: %w", err)
	}
	defer unlock()

	out := listDaysOutput{Days: []dayOutput{}}
	for _, d := range s.tracker.Days(input.Limit) {
		out.Days = append(out.Days, toDayOutput(d))
	}
	return nil, out, nil
}

func (s *Server) handleGetDay(ctx context.Context, req *mcp.CallToolRequest, input getDayInput) (*mcp.CallToolResult, getDayOutput, error) {
	unlock, err := s.fresh()
	if err != nil {
		return nil, getDayOutput{}, fmt.Errorf("failed to load data: %w", err)
	}
	defer unlock()

	dateKey, rec, err := s.tracker.Lookup(input.Date)
	if err != nil {
		return nil, getDayOutput{}, err
	}

	return nil, getDayOutput{
		Found: rec != nil,
		Day:   toDayOutput(storage.Day{Date: dateKey, Record: rec}),
	}, nil
}
