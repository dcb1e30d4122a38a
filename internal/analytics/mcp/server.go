package mcp

import (
	"github.com/2beens/liftstats/internal/analytics"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// NewServer builds an MCP server exposing the workout analytics as tools.
// Mounted by the main service at /mcp, and served over stdio by cmd/liftstats_mcp.
func NewServer(pool *pgxpool.Pool, analyzer *analytics.Analyzer) *mcp.Server {
	return newServer(NewContextService(NewPoolSchemaRepo(pool), analyzer))
}

func newServer(svc contextService) *mcp.Server {
	h := NewHandler(svc)
	s := mcp.NewServer(&mcp.Implementation{
		Name:    "liftstats",
		Version: "1.0.0",
	}, nil)

	mcp.AddTool(s, &mcp.Tool{
		Name:        "get_liftstats_context",
		Description: "Returns the DB schema of the workout tables (users, muscle_group, split, exercise, workout, workout_exercise, exercise_result): columns, types, nullable, default.",
	}, h.GetLiftstatsContextTool())

	mcp.AddTool(s, &mcp.Tool{
		Name:        "get_personal_records",
		Description: "Returns the personal record (heaviest set, with estimated one rep max) of every exercise the user did. Arg: user_id.",
	}, h.GetPersonalRecordsTool())

	mcp.AddTool(s, &mcp.Tool{
		Name:        "get_personal_record",
		Description: "Returns the personal record of one exercise for the user, or a note that there is none yet. Args: user_id, exercise_id.",
	}, h.GetPersonalRecordTool())

	mcp.AddTool(s, &mcp.Tool{
		Name:        "get_exercise_progress",
		Description: "Returns per workout stats (avg/max weight, reps, sets, volume, estimated 1RM) of one exercise, with first vs last comparison and the current PR. Args: user_id, exercise_id; optional: from_date, to_date (YYYY-MM-DD).",
	}, h.GetExerciseProgressTool())

	mcp.AddTool(s, &mcp.Tool{
		Name:        "get_volume_progress",
		Description: "Returns training volume (weight x reps) bucketed by period, with average, peak and trend. Args: user_id; optional: period (weekly, monthly, yearly, daily), from_date, to_date (YYYY-MM-DD).",
	}, h.GetVolumeProgressTool())

	mcp.AddTool(s, &mcp.Tool{
		Name:        "get_user_stats",
		Description: "Returns overall user stats: totals, streaks, workouts per week, top 10 personal records, muscle group breakdown and weekly frequency. Arg: user_id.",
	}, h.GetUserStatsTool())

	mcp.AddTool(s, &mcp.Tool{
		Name:        "get_workout_summary",
		Description: "Returns a per exercise breakdown of one workout, flagging exercises where the workout holds the current PR. Arg: workout_id.",
	}, h.GetWorkoutSummaryTool())

	mcp.AddTool(s, &mcp.Tool{
		Name:        "get_workout_summaries",
		Description: "Returns the summary of every workout of the user, oldest first. Args: user_id; optional: from_date, to_date (YYYY-MM-DD).",
	}, h.GetWorkoutSummariesTool())

	return s
}
