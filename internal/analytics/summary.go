package analytics

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/2beens/liftstats/internal/telemetry/tracing"
	"github.com/2beens/liftstats/internal/workouts"

	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
)

const noSplitName = "No Split"

// WorkoutSummary breaks a single workout down per exercise, flagging the exercises
// for which this workout holds the user's current personal record.
func (a *Analyzer) WorkoutSummary(ctx context.Context, workoutID int64) (_ *WorkoutSummary, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "analyzer.analytics.workoutSummary")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	defer a.observe("workout_summary", time.Now())
	span.SetAttributes(attribute.Int64("workout.id", workoutID))

	if err := requireID("workout id", workoutID); err != nil {
		return nil, err
	}

	workout, err := a.repo.FindWorkoutByID(ctx, workoutID)
	if errors.Is(err, workouts.ErrWorkoutNotFound) {
		return nil, notFound(err)
	}
	if err != nil {
		return nil, fmt.Errorf("find workout %d: %w", workoutID, err)
	}

	tree, err := a.loadTree(ctx, workout.UserID)
	if err != nil {
		return nil, err
	}
	if _, ok := tree.Workout(workoutID); !ok {
		// the cached tree predates the workout
		log.Debugf("workout %d missing from the loaded workouts of user %d, reloading", workoutID, workout.UserID)
		fresh, err := a.reloadTree(ctx, workout.UserID)
		if err != nil {
			return nil, err
		}
		if fresh != nil {
			tree = fresh
		}
		if _, ok := tree.Workout(workoutID); !ok {
			log.Warnf("workout %d missing from the reloaded workouts of user %d", workoutID, workout.UserID)
		}
	}

	summary := summarize(tree, *workout, personalRecords(tree))
	return &summary, nil
}

// WorkoutSummaries summarizes every workout of the user in the date range, oldest first.
func (a *Analyzer) WorkoutSummaries(ctx context.Context, params SummariesParams) (_ []WorkoutSummary, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "analyzer.analytics.workoutSummaries")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	defer a.observe("workout_summaries", time.Now())
	span.SetAttributes(attribute.Int64("user.id", params.UserID))

	if err := requireID("user id", params.UserID); err != nil {
		return nil, err
	}

	tree, err := a.loadTree(ctx, params.UserID)
	if err != nil {
		return nil, err
	}

	records := personalRecords(tree)
	summaries := []WorkoutSummary{}
	for _, w := range tree.Workouts {
		if !params.Contains(w.CreatedAt) {
			continue
		}
		summaries = append(summaries, summarize(tree, w, records))
	}

	return summaries, nil
}

func summarize(tree *workouts.Tree, w workouts.Workout, records map[int64]PersonalRecord) WorkoutSummary {
	summary := WorkoutSummary{
		WorkoutID:   w.ID,
		WorkoutDate: w.CreatedAt,
		SplitName:   noSplitName,
		Exercises:   []ExerciseSummary{},
	}
	if name, ok := tree.SplitName(w); ok {
		summary.SplitName = name
	}

	for _, we := range tree.ExercisesOf(w.ID) {
		agg := aggregateSets(tree.ResultsOf(we.ID))

		summary.TotalExercises++
		summary.TotalSets += agg.Sets
		summary.TotalReps += agg.Reps
		summary.TotalVolume += agg.Volume

		pr, hasPR := records[we.ExerciseID]
		summary.Exercises = append(summary.Exercises, ExerciseSummary{
			ExerciseID:       we.ExerciseID,
			ExerciseName:     exerciseName(tree, we.ExerciseID),
			MuscleGroup:      muscleGroupName(tree, we.ExerciseID),
			Sets:             agg.Sets,
			TotalReps:        agg.Reps,
			MaxWeight:        agg.MaxWeight,
			AverageWeight:    agg.AverageWeight,
			Volume:           agg.Volume,
			IsPersonalRecord: hasPR && pr.WorkoutID == w.ID,
		})
	}

	return summary
}
