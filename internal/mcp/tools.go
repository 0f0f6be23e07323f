// ABOUTME: MCP tool implementations for the workout tracker.
// ABOUTME: Exposes plans, day status, completion recording, and history.
package mcp

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/harperreed/liftlog/internal/models"
)

func (s *Server) registerTools() {
	// list_plans
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "list_plans",
		Description: "List workout plans with their current cycle numbers",
	}, s.handleListPlans)

	// get_plan
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "get_plan",
		Description: "Get a workout plan's days and exercises",
	}, s.handleGetPlan)

	// day_status
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "day_status",
		Description: "Show which days of a plan are completed this cycle, with planned, last-cycle, and completed values",
	}, s.handleDayStatus)

	// record_completion
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "record_completion",
		Description: "Record a completed workout day; rolls the cycle over when every day is covered",
	}, s.handleRecordCompletion)

	// exercise_history
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "exercise_history",
		Description: "Get an exercise's as-performed history across all cycles, oldest first",
	}, s.handleExerciseHistory)

	// current_cycle
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "current_cycle",
		Description: "Get a plan's current cycle number",
	}, s.handleCurrentCycle)

	// start_new_cycle
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "start_new_cycle",
		Description: "Force a plan onto a new cycle regardless of completion state",
	}, s.handleStartNewCycle)

	// recent_completions
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "recent_completions",
		Description: "List recent completed workouts across all plans",
	}, s.handleRecentCompletions)
}

// Tool input/output types

type planKeyInput struct {
	PlanKey string `json:"plan_key" jsonschema:"Plan key (e.g. 2_days_week)"`
}

type planSummary struct {
	Key   string `json:"key"`
	Type  string `json:"type"`
	Days  int    `json:"days"`
	Cycle int    `json:"cycle"`
}

type dayStatusOutput struct {
	Cycle int             `json:"cycle"`
	Days  []dayStatusItem `json:"days"`
}

type dayStatusItem struct {
	Day       string           `json:"day"`
	Focus     string           `json:"focus,omitempty"`
	Completed bool             `json:"completed"`
	Exercises []exerciseStatus `json:"exercises"`
}

type exerciseStatus struct {
	Name      string                    `json:"name"`
	Planned   models.Exercise           `json:"planned"`
	Completed *models.PerformedExercise `json:"completed,omitempty"`
	LastCycle *models.PerformedExercise `json:"last_cycle,omitempty"`
}

type performedInput struct {
	Name   string `json:"name" jsonschema:"Exercise name as it appears in the plan"`
	Sets   string `json:"sets,omitempty" jsonschema:"Sets performed; blank falls back to the planned value"`
	Reps   string `json:"reps,omitempty" jsonschema:"Reps performed; blank falls back to the planned value"`
	Weight string `json:"weight,omitempty" jsonschema:"Weight used; blank falls back to the planned value"`
}

type recordCompletionInput struct {
	PlanKey   string           `json:"plan_key" jsonschema:"Plan key"`
	DayName   string           `json:"day_name" jsonschema:"Name of the completed day (e.g. Day 1)"`
	Exercises []performedInput `json:"exercises,omitempty" jsonschema:"As-performed values; omitted exercises use planned values"`
}

type recordCompletionOutput struct {
	RecordID string `json:"record_id"`
	Cycle    int    `json:"cycle"`
	NewCycle int    `json:"new_cycle"`
	Message  string `json:"message"`
}

type exerciseHistoryInput struct {
	PlanKey  string `json:"plan_key" jsonschema:"Plan key"`
	Exercise string `json:"exercise" jsonschema:"Exercise name"`
}

type cycleOutput struct {
	PlanKey string `json:"plan_key"`
	Cycle   int    `json:"cycle"`
	Message string `json:"message"`
}

type recentInput struct {
	Limit int `json:"limit,omitempty" jsonschema:"Max results (default 10)"`
}

// Tool handlers

func (s *Server) handleListPlans(ctx context.Context, req *mcp.CallToolRequest, input struct{}) (*mcp.CallToolResult, any, error) {
	keys, err := s.repo.Keys()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to list plans: %w", err)
	}

	summaries := make([]planSummary, 0, len(keys))
	for _, key := range keys {
		p, err := s.repo.Load(key)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to load plan %s: %w", key, err)
		}
		summaries = append(summaries, planSummary{
			Key:   key,
			Type:  p.Type,
			Days:  p.TotalDays(),
			Cycle: s.tracker.Cycle(key),
		})
	}

	if len(summaries) == 0 {
		return nil, map[string]any{"message": "No plans found. Seed starter plans first."}, nil
	}
	return nil, summaries, nil
}

func (s *Server) handleGetPlan(ctx context.Context, req *mcp.CallToolRequest, input planKeyInput) (*mcp.CallToolResult, any, error) {
	p, err := s.repo.Load(input.PlanKey)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load plan: %w", err)
	}
	return nil, p, nil
}

func (s *Server) handleDayStatus(ctx context.Context, req *mcp.CallToolRequest, input planKeyInput) (*mcp.CallToolResult, dayStatusOutput, error) {
	p, err := s.repo.Load(input.PlanKey)
	if err != nil {
		return nil, dayStatusOutput{}, fmt.Errorf("failed to load plan: %w", err)
	}

	statuses, err := s.tracker.DayStatuses(p, input.PlanKey)
	if err != nil {
		return nil, dayStatusOutput{}, fmt.Errorf("failed to derive day status: %w", err)
	}

	out := dayStatusOutput{Cycle: s.tracker.Cycle(input.PlanKey)}
	for _, day := range p.Days {
		ds := statuses[day.Day]
		item := dayStatusItem{
			Day:       day.Day,
			Focus:     day.Focus,
			Completed: ds.Completed,
		}
		for _, ex := range ds.Exercises {
			item.Exercises = append(item.Exercises, exerciseStatus{
				Name:      ex.Planned.Name,
				Planned:   ex.Planned,
				Completed: ex.Completed,
				LastCycle: ex.LastCycle,
			})
		}
		out.Days = append(out.Days, item)
	}
	return nil, out, nil
}

func (s *Server) handleRecordCompletion(ctx context.Context, req *mcp.CallToolRequest, input recordCompletionInput) (*mcp.CallToolResult, recordCompletionOutput, error) {
	p, err := s.repo.Load(input.PlanKey)
	if err != nil {
		return nil, recordCompletionOutput{}, fmt.Errorf("failed to load plan: %w", err)
	}
	day, dayIndex, ok := p.FindDay(input.DayName)
	if !ok {
		return nil, recordCompletionOutput{}, fmt.Errorf("plan %s has no day named %q", input.PlanKey, input.DayName)
	}

	byName := make(map[string]performedInput, len(input.Exercises))
	for _, pe := range input.Exercises {
		byName[pe.Name] = pe
	}
	performed := make([]models.PerformedExercise, 0, len(day.Exercises))
	for _, ex := range day.Exercises {
		raw := byName[ex.Name]
		performed = append(performed, models.PerformedFromPlan(ex, raw.Sets, raw.Reps, raw.Weight))
	}

	rec, err := s.tracker.RecordCompletion(input.PlanKey, p.Type, day.Day, dayIndex, p.TotalDays(), performed)
	if err != nil {
		return nil, recordCompletionOutput{}, fmt.Errorf("failed to record completion: %w", err)
	}

	newCycle := s.tracker.Cycle(input.PlanKey)
	msg := fmt.Sprintf("Recorded %s (%s) in cycle %d", day.Day, p.Type, rec.Cycle)
	if newCycle > rec.Cycle {
		msg += fmt.Sprintf("; cycle complete, now on cycle %d", newCycle)
	}
	return nil, recordCompletionOutput{
		RecordID: rec.ID,
		Cycle:    rec.Cycle,
		NewCycle: newCycle,
		Message:  msg,
	}, nil
}

func (s *Server) handleExerciseHistory(ctx context.Context, req *mcp.CallToolRequest, input exerciseHistoryInput) (*mcp.CallToolResult, any, error) {
	entries, err := s.tracker.ExerciseHistory(input.PlanKey, input.Exercise)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load history: %w", err)
	}
	if len(entries) == 0 {
		return nil, map[string]any{"message": "No history for this exercise."}, nil
	}
	return nil, entries, nil
}

func (s *Server) handleCurrentCycle(ctx context.Context, req *mcp.CallToolRequest, input planKeyInput) (*mcp.CallToolResult, cycleOutput, error) {
	cycle := s.tracker.Cycle(input.PlanKey)
	return nil, cycleOutput{
		PlanKey: input.PlanKey,
		Cycle:   cycle,
		Message: fmt.Sprintf("%s is on cycle %d", input.PlanKey, cycle),
	}, nil
}

func (s *Server) handleStartNewCycle(ctx context.Context, req *mcp.CallToolRequest, input planKeyInput) (*mcp.CallToolResult, cycleOutput, error) {
	next, err := s.tracker.StartNewCycle(input.PlanKey)
	if err != nil {
		return nil, cycleOutput{}, fmt.Errorf("failed to start new cycle: %w", err)
	}
	return nil, cycleOutput{
		PlanKey: input.PlanKey,
		Cycle:   next,
		Message: fmt.Sprintf("Now starting cycle %d", next),
	}, nil
}

func (s *Server) handleRecentCompletions(ctx context.Context, req *mcp.CallToolRequest, input recentInput) (*mcp.CallToolResult, any, error) {
	if input.Limit <= 0 {
		input.Limit = 10
	}
	records, err := s.tracker.Ledger().Recent(input.Limit)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to list completions: %w", err)
	}
	if len(records) == 0 {
		return nil, map[string]any{"message": "No completed workouts yet."}, nil
	}
	return nil, records, nil
}
