package analytics

import (
	"context"
	"sort"
	"time"

	"github.com/2beens/liftstats/internal/telemetry/tracing"
	"github.com/2beens/liftstats/internal/workouts"

	"go.opentelemetry.io/otel/attribute"
)

// PersonalRecords returns the personal record of every exercise the user ever did, keyed by exercise id.
func (a *Analyzer) PersonalRecords(ctx context.Context, userID int64) (_ map[int64]PersonalRecord, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "analyzer.analytics.personalRecords")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	defer a.observe("personal_records", time.Now())
	span.SetAttributes(attribute.Int64("user.id", userID))

	if err := requireID("user id", userID); err != nil {
		return nil, err
	}

	tree, err := a.loadTree(ctx, userID)
	if err != nil {
		return nil, err
	}

	return personalRecords(tree), nil
}

// PersonalRecord returns the user's record for a single exercise.
// The bool is false when the user has no sets of that exercise yet.
func (a *Analyzer) PersonalRecord(ctx context.Context, userID, exerciseID int64) (_ PersonalRecord, _ bool, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "analyzer.analytics.personalRecord")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	defer a.observe("personal_record", time.Now())
	span.SetAttributes(
		attribute.Int64("user.id", userID),
		attribute.Int64("exercise.id", exerciseID),
	)

	if err := requireID("user id", userID); err != nil {
		return PersonalRecord{}, false, err
	}
	if err := requireID("exercise id", exerciseID); err != nil {
		return PersonalRecord{}, false, err
	}

	tree, err := a.loadTree(ctx, userID)
	if err != nil {
		return PersonalRecord{}, false, err
	}

	pr, ok := personalRecords(tree)[exerciseID]
	return pr, ok, nil
}

// personalRecords scans the tree in its chronological order. Only a strictly heavier
// set replaces a record, so on equal weights the earliest set wins.
func personalRecords(tree *workouts.Tree) map[int64]PersonalRecord {
	records := make(map[int64]PersonalRecord)
	for _, w := range tree.Workouts {
		for _, we := range tree.ExercisesOf(w.ID) {
			for _, r := range tree.ResultsOf(we.ID) {
				existing, found := records[we.ExerciseID]
				if found && r.Weight <= existing.MaxWeight {
					continue
				}
				records[we.ExerciseID] = PersonalRecord{
					ExerciseID:      we.ExerciseID,
					ExerciseName:    exerciseName(tree, we.ExerciseID),
					MaxWeight:       r.Weight,
					RepsAtMaxWeight: r.Reps,
					AchievedDate:    w.CreatedAt,
					WorkoutID:       w.ID,
					OneRepMax:       EstimateOneRepMax(r.Weight, r.Reps),
					TotalVolume:     r.Reps,
				}
			}
		}
	}
	return records
}

// SortRecords lists the records ordered by exercise id.
func SortRecords(records map[int64]PersonalRecord) []PersonalRecord {
	sorted := make([]PersonalRecord, 0, len(records))
	for _, pr := range records {
		sorted = append(sorted, pr)
	}
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].ExerciseID < sorted[j].ExerciseID
	})
	return sorted
}

// topRecords ranks records by estimated 1RM, heaviest first, exercise id breaking ties.
func topRecords(records map[int64]PersonalRecord, limit int) []PersonalRecord {
	sorted := SortRecords(records)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].OneRepMax > sorted[j].OneRepMax
	})
	if len(sorted) > limit {
		sorted = sorted[:limit]
	}
	return sorted
}

const unknownName = "Unknown"

func exerciseName(tree *workouts.Tree, exerciseID int64) string {
	if e, ok := tree.Exercise(exerciseID); ok {
		return e.Name
	}
	return unknownName
}

func muscleGroupName(tree *workouts.Tree, exerciseID int64) string {
	if name, ok := tree.MuscleGroupName(exerciseID); ok {
		return name
	}
	return unknownName
}
