package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/2beens/liftstats/internal/analytics"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// Handler parses tool input, calls the service and formats the MCP result.
// Failures are reported as IsError results, never as protocol errors.
type Handler struct {
	service contextService
}

func NewHandler(service contextService) *Handler {
	return &Handler{
		service: service,
	}
}

func errorResult(text string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: text}},
		IsError: true,
	}
}

func jsonResult(v any) *mcp.CallToolResult {
	raw, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return errorResult("Error encoding response: " + err.Error())
	}
	return &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: string(raw)}},
	}
}

// parseDateRange reads optional YYYY-MM-DD bounds. The to date covers its whole day.
func parseDateRange(fromDate, toDate string) (analytics.DateRange, error) {
	var dateRange analytics.DateRange
	if fromDate != "" {
		from, err := time.Parse(time.DateOnly, fromDate)
		if err != nil {
			return dateRange, errors.New("Invalid from_date: use YYYY-MM-DD")
		}
		dateRange.From = &from
	}
	if toDate != "" {
		to, err := time.Parse(time.DateOnly, toDate)
		if err != nil {
			return dateRange, errors.New("Invalid to_date: use YYYY-MM-DD")
		}
		to = time.Date(to.Year(), to.Month(), to.Day(), 23, 59, 59, 999999999, to.Location())
		dateRange.To = &to
	}
	return dateRange, nil
}

func (h *Handler) GetLiftstatsContextTool() func(context.Context, *mcp.CallToolRequest, any) (*mcp.CallToolResult, any, error) {
	return func(ctx context.Context, _ *mcp.CallToolRequest, _ any) (*mcp.CallToolResult, any, error) {
		text, err := h.service.GetSchema(ctx)
		if err != nil {
			return errorResult("Error fetching schema: " + err.Error()), nil, nil
		}
		return &mcp.CallToolResult{
			Content: []mcp.Content{&mcp.TextContent{Text: text}},
		}, nil, nil
	}
}

type UserInput struct {
	UserID int64 `json:"user_id" jsonschema:"User id"`
}

func (h *Handler) GetPersonalRecordsTool() func(context.Context, *mcp.CallToolRequest, UserInput) (*mcp.CallToolResult, any, error) {
	return func(ctx context.Context, _ *mcp.CallToolRequest, in UserInput) (*mcp.CallToolResult, any, error) {
		records, err := h.service.PersonalRecords(ctx, in.UserID)
		if err != nil {
			return errorResult("Error fetching personal records: " + err.Error()), nil, nil
		}
		return jsonResult(records), nil, nil
	}
}

type PersonalRecordInput struct {
	UserID     int64 `json:"user_id" jsonschema:"User id"`
	ExerciseID int64 `json:"exercise_id" jsonschema:"Exercise id"`
}

func (h *Handler) GetPersonalRecordTool() func(context.Context, *mcp.CallToolRequest, PersonalRecordInput) (*mcp.CallToolResult, any, error) {
	return func(ctx context.Context, _ *mcp.CallToolRequest, in PersonalRecordInput) (*mcp.CallToolResult, any, error) {
		pr, err := h.service.PersonalRecord(ctx, in.UserID, in.ExerciseID)
		if err != nil {
			return errorResult("Error fetching personal record: " + err.Error()), nil, nil
		}
		if pr == nil {
			return &mcp.CallToolResult{
				Content: []mcp.Content{&mcp.TextContent{Text: "No personal record yet for this exercise."}},
			}, nil, nil
		}
		return jsonResult(pr), nil, nil
	}
}

func (h *Handler) GetUserStatsTool() func(context.Context, *mcp.CallToolRequest, UserInput) (*mcp.CallToolResult, any, error) {
	return func(ctx context.Context, _ *mcp.CallToolRequest, in UserInput) (*mcp.CallToolResult, any, error) {
		stats, err := h.service.UserStats(ctx, in.UserID)
		if err != nil {
			return errorResult("Error fetching user stats: " + err.Error()), nil, nil
		}
		return jsonResult(stats), nil, nil
	}
}

type ExerciseProgressInput struct {
	UserID     int64  `json:"user_id" jsonschema:"User id"`
	ExerciseID int64  `json:"exercise_id" jsonschema:"Exercise id"`
	FromDate   string `json:"from_date,omitempty" jsonschema:"Start date (YYYY-MM-DD), inclusive"`
	ToDate     string `json:"to_date,omitempty" jsonschema:"End date (YYYY-MM-DD), inclusive"`
}

func (h *Handler) GetExerciseProgressTool() func(context.Context, *mcp.CallToolRequest, ExerciseProgressInput) (*mcp.CallToolResult, any, error) {
	return func(ctx context.Context, _ *mcp.CallToolRequest, in ExerciseProgressInput) (*mcp.CallToolResult, any, error) {
		dateRange, err := parseDateRange(in.FromDate, in.ToDate)
		if err != nil {
			return errorResult(err.Error()), nil, nil
		}
		progress, err := h.service.ExerciseProgress(ctx, analytics.ProgressParams{
			DateRange:  dateRange,
			UserID:     in.UserID,
			ExerciseID: in.ExerciseID,
		})
		if err != nil {
			return errorResult("Error fetching exercise progress: " + err.Error()), nil, nil
		}
		return jsonResult(progress), nil, nil
	}
}

type VolumeProgressInput struct {
	UserID   int64  `json:"user_id" jsonschema:"User id"`
	Period   string `json:"period,omitempty" jsonschema:"Bucket size: weekly (default), monthly, yearly or daily"`
	FromDate string `json:"from_date,omitempty" jsonschema:"Start date (YYYY-MM-DD), inclusive"`
	ToDate   string `json:"to_date,omitempty" jsonschema:"End date (YYYY-MM-DD), inclusive"`
}

func (h *Handler) GetVolumeProgressTool() func(context.Context, *mcp.CallToolRequest, VolumeProgressInput) (*mcp.CallToolResult, any, error) {
	return func(ctx context.Context, _ *mcp.CallToolRequest, in VolumeProgressInput) (*mcp.CallToolResult, any, error) {
		dateRange, err := parseDateRange(in.FromDate, in.ToDate)
		if err != nil {
			return errorResult(err.Error()), nil, nil
		}
		period := in.Period
		if period == "" {
			period = analytics.DefaultPeriod
		}
		progress, err := h.service.VolumeProgress(ctx, analytics.VolumeParams{
			DateRange: dateRange,
			UserID:    in.UserID,
			Period:    period,
		})
		if err != nil {
			return errorResult("Error fetching volume progress: " + err.Error()), nil, nil
		}
		return jsonResult(progress), nil, nil
	}
}

type WorkoutInput struct {
	WorkoutID int64 `json:"workout_id" jsonschema:"Workout id"`
}

func (h *Handler) GetWorkoutSummaryTool() func(context.Context, *mcp.CallToolRequest, WorkoutInput) (*mcp.CallToolResult, any, error) {
	return func(ctx context.Context, _ *mcp.CallToolRequest, in WorkoutInput) (*mcp.CallToolResult, any, error) {
		summary, err := h.service.WorkoutSummary(ctx, in.WorkoutID)
		if err != nil {
			return errorResult("Error fetching workout summary: " + err.Error()), nil, nil
		}
		return jsonResult(summary), nil, nil
	}
}

type WorkoutSummariesInput struct {
	UserID   int64  `json:"user_id" jsonschema:"User id"`
	FromDate string `json:"from_date,omitempty" jsonschema:"Start date (YYYY-MM-DD), inclusive"`
	ToDate   string `json:"to_date,omitempty" jsonschema:"End date (YYYY-MM-DD), inclusive"`
}

func (h *Handler) GetWorkoutSummariesTool() func(context.Context, *mcp.CallToolRequest, WorkoutSummariesInput) (*mcp.CallToolResult, any, error) {
	return func(ctx context.Context, _ *mcp.CallToolRequest, in WorkoutSummariesInput) (*mcp.CallToolResult, any, error) {
		dateRange, err := parseDateRange(in.FromDate, in.ToDate)
		if err != nil {
			return errorResult(err.Error()), nil, nil
		}
		summaries, err := h.service.WorkoutSummaries(ctx, analytics.SummariesParams{
			DateRange: dateRange,
			UserID:    in.UserID,
		})
		if err != nil {
			return errorResult("Error fetching workout summaries: " + err.Error()), nil, nil
		}
		return jsonResult(summaries), nil, nil
	}
}
