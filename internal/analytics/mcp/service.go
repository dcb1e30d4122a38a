package mcp

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/2beens/liftstats/internal/analytics"
)

// workoutsAnalyzer is the subset of analytics.Analyzer the tools need.
type workoutsAnalyzer interface {
	PersonalRecords(ctx context.Context, userID int64) (map[int64]analytics.PersonalRecord, error)
	PersonalRecord(ctx context.Context, userID, exerciseID int64) (analytics.PersonalRecord, bool, error)
	ExerciseProgress(ctx context.Context, params analytics.ProgressParams) (*analytics.ExerciseProgress, error)
	VolumeProgress(ctx context.Context, params analytics.VolumeParams) (*analytics.VolumeProgress, error)
	UserStats(ctx context.Context, userID int64) (*analytics.UserStats, error)
	WorkoutSummary(ctx context.Context, workoutID int64) (*analytics.WorkoutSummary, error)
	WorkoutSummaries(ctx context.Context, params analytics.SummariesParams) ([]analytics.WorkoutSummary, error)
}

// contextService is what the Handler calls, kept small for testability.
type contextService interface {
	GetSchema(ctx context.Context) (string, error)
	PersonalRecords(ctx context.Context, userID int64) ([]analytics.PersonalRecord, error)
	PersonalRecord(ctx context.Context, userID, exerciseID int64) (*analytics.PersonalRecord, error)
	ExerciseProgress(ctx context.Context, params analytics.ProgressParams) (*analytics.ExerciseProgress, error)
	VolumeProgress(ctx context.Context, params analytics.VolumeParams) (*analytics.VolumeProgress, error)
	UserStats(ctx context.Context, userID int64) (*analytics.UserStats, error)
	WorkoutSummary(ctx context.Context, workoutID int64) (*analytics.WorkoutSummary, error)
	WorkoutSummaries(ctx context.Context, params analytics.SummariesParams) ([]analytics.WorkoutSummary, error)
}

type ContextService struct {
	schema   SchemaRepo
	analyzer workoutsAnalyzer
}

func NewContextService(schemaRepo SchemaRepo, analyzer workoutsAnalyzer) *ContextService {
	return &ContextService{
		schema:   schemaRepo,
		analyzer: analyzer,
	}
}

// GetSchema returns the schema of the workout tables as markdown.
func (s *ContextService) GetSchema(ctx context.Context) (string, error) {
	cols, err := s.schema.GetWorkoutsColumns(ctx)
	if err != nil {
		return "", err
	}
	return formatSchema(cols), nil
}

func formatSchema(cols []SchemaColumn) string {
	if len(cols) == 0 {
		return "# Liftstats DB Schema\n\nNo workout tables found in the database.\n"
	}

	byTable := make(map[string][]SchemaColumn)
	for _, c := range cols {
		byTable[c.TableName] = append(byTable[c.TableName], c)
	}

	tableOrder := make([]string, 0, len(byTable))
	for t := range byTable {
		tableOrder = append(tableOrder, t)
	}
	sort.Strings(tableOrder)

	var b strings.Builder
	b.WriteString("# Liftstats DB Schema\n\n")
	b.WriteString("Tables: ")
	b.WriteString(strings.Join(workoutsTables, ", "))
	b.WriteString(" (schema: public).\n\n")

	for _, tableName := range tableOrder {
		b.WriteString("## ")
		b.WriteString(tableName)
		b.WriteString("\n\n| Column | Type | Nullable | Default |\n|--------|------|----------|--------|\n")
		for _, c := range byTable[tableName] {
			def := "-"
			if c.ColumnDef != nil && *c.ColumnDef != "" {
				def = *c.ColumnDef
			}
			fmt.Fprintf(&b, "| %s | %s | %s | %s |\n", c.ColumnName, c.DataType, c.IsNullable, def)
		}
		b.WriteString("\n")
	}

	return strings.TrimSuffix(b.String(), "\n\n") + "\n"
}

// PersonalRecords lists the user's records ordered by exercise id.
func (s *ContextService) PersonalRecords(ctx context.Context, userID int64) ([]analytics.PersonalRecord, error) {
	records, err := s.analyzer.PersonalRecords(ctx, userID)
	if err != nil {
		return nil, err
	}
	return analytics.SortRecords(records), nil
}

// PersonalRecord returns the user's record for the exercise, nil when there is none yet.
func (s *ContextService) PersonalRecord(ctx context.Context, userID, exerciseID int64) (*analytics.PersonalRecord, error) {
	pr, found, err := s.analyzer.PersonalRecord(ctx, userID, exerciseID)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, nil
	}
	return &pr, nil
}

func (s *ContextService) ExerciseProgress(ctx context.Context, params analytics.ProgressParams) (*analytics.ExerciseProgress, error) {
	return s.analyzer.ExerciseProgress(ctx, params)
}

func (s *ContextService) VolumeProgress(ctx context.Context, params analytics.VolumeParams) (*analytics.VolumeProgress, error) {
	return s.analyzer.VolumeProgress(ctx, params)
}

func (s *ContextService) UserStats(ctx context.Context, userID int64) (*analytics.UserStats, error) {
	return s.analyzer.UserStats(ctx, userID)
}

func (s *ContextService) WorkoutSummary(ctx context.Context, workoutID int64) (*analytics.WorkoutSummary, error) {
	return s.analyzer.WorkoutSummary(ctx, workoutID)
}

func (s *ContextService) WorkoutSummaries(ctx context.Context, params analytics.SummariesParams) ([]analytics.WorkoutSummary, error) {
	return s.analyzer.WorkoutSummaries(ctx, params)
}
