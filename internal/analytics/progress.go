package analytics

import (
	"context"
	"sort"
	"time"

	"github.com/2beens/liftstats/internal/telemetry/tracing"
	"github.com/2beens/liftstats/internal/workouts"

	"go.opentelemetry.io/otel/attribute"
)

// setsAggregate sums up the sets of one workout exercise.
type setsAggregate struct {
	Sets          int
	Reps          int
	MaxWeight     float64
	AverageWeight float64
	Volume        float64
	// RepsAtMax are the reps of the first set done with MaxWeight.
	RepsAtMax int
}

func aggregateSets(results []workouts.ExerciseResult) setsAggregate {
	agg := setsAggregate{Sets: len(results)}
	if len(results) == 0 {
		return agg
	}

	var totalWeight float64
	for _, r := range results {
		totalWeight += r.Weight
		agg.Reps += r.Reps
		agg.Volume += r.Volume()
		agg.MaxWeight = max(agg.MaxWeight, r.Weight)
	}
	agg.AverageWeight = totalWeight / float64(len(results))

	agg.RepsAtMax = 1
	for _, r := range results {
		if r.Weight == agg.MaxWeight {
			agg.RepsAtMax = r.Reps
			break
		}
	}

	return agg
}

// ExerciseProgress builds the per workout series of one exercise, in the given date range.
// The current PR attached to it is computed over the whole history.
func (a *Analyzer) ExerciseProgress(ctx context.Context, params ProgressParams) (_ *ExerciseProgress, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "analyzer.analytics.exerciseProgress")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	defer a.observe("exercise_progress", time.Now())
	span.SetAttributes(
		attribute.Int64("user.id", params.UserID),
		attribute.Int64("exercise.id", params.ExerciseID),
	)

	if err := requireID("user id", params.UserID); err != nil {
		return nil, err
	}
	if err := requireID("exercise id", params.ExerciseID); err != nil {
		return nil, err
	}

	tree, err := a.loadTree(ctx, params.UserID)
	if err != nil {
		return nil, err
	}

	progress := &ExerciseProgress{
		ExerciseID:   params.ExerciseID,
		ExerciseName: unknownName,
		ProgressData: []ProgressDataPoint{},
	}

	for _, w := range tree.Workouts {
		if !params.Contains(w.CreatedAt) {
			continue
		}
		for _, we := range tree.ExercisesOf(w.ID) {
			if we.ExerciseID != params.ExerciseID {
				continue
			}
			progress.ExerciseName = exerciseName(tree, we.ExerciseID)

			results := tree.ResultsOf(we.ID)
			if len(results) == 0 {
				continue
			}
			agg := aggregateSets(results)
			progress.ProgressData = append(progress.ProgressData, ProgressDataPoint{
				Date:               w.CreatedAt,
				WorkoutID:          w.ID,
				AverageWeight:      agg.AverageWeight,
				MaxWeight:          agg.MaxWeight,
				TotalReps:          agg.Reps,
				TotalSets:          agg.Sets,
				TotalVolume:        agg.Volume,
				EstimatedOneRepMax: EstimateOneRepMax(agg.MaxWeight, agg.RepsAtMax),
			})
		}
	}

	sort.SliceStable(progress.ProgressData, func(i, j int) bool {
		return progress.ProgressData[i].Date.Before(progress.ProgressData[j].Date)
	})
	progress.Stats = progressStats(progress.ProgressData)

	if pr, ok := personalRecords(tree)[params.ExerciseID]; ok {
		progress.CurrentPR = &pr
	}

	span.SetAttributes(attribute.Int("points.count", len(progress.ProgressData)))

	return progress, nil
}

// progressStats compares the first and the last point. There are no stats
// when there are no points or the first max weight is not positive.
func progressStats(points []ProgressDataPoint) *ProgressStats {
	if len(points) == 0 || points[0].MaxWeight <= 0 {
		return nil
	}

	first, last := points[0], points[len(points)-1]
	stats := &ProgressStats{
		WeightIncreasePercentage: percentChange(first.MaxWeight, last.MaxWeight),
		VolumeIncreasePercentage: percentChange(first.TotalVolume, last.TotalVolume),
		TotalWorkouts:            len(points),
		FirstWorkout:             first.Date,
		LastWorkout:              last.Date,
	}
	if wholeDaysBetween(first.Date, last.Date) > 0 {
		stats.AverageWeightProgression = (last.MaxWeight - first.MaxWeight) / float64(len(points))
	}

	return stats
}
