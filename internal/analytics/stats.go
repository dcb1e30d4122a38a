package analytics

import (
	"context"
	"time"

	"github.com/2beens/liftstats/internal/telemetry/tracing"
	"github.com/2beens/liftstats/internal/workouts"

	"go.opentelemetry.io/otel/attribute"
	"golang.org/x/sync/errgroup"
)

const topRecordsLimit = 10

// UserStats gathers the overall statistics of a user.
// The user and the user's workouts are loaded concurrently.
func (a *Analyzer) UserStats(ctx context.Context, userID int64) (_ *UserStats, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "analyzer.analytics.userStats")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	defer a.observe("user_stats", time.Now())
	span.SetAttributes(attribute.Int64("user.id", userID))

	if err := requireID("user id", userID); err != nil {
		return nil, err
	}

	var (
		user *workouts.User
		tree *workouts.Tree
	)
	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		user, err = a.findUser(gCtx, userID)
		return err
	})
	g.Go(func() error {
		var err error
		tree, err = a.loadTree(gCtx, userID)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	stats := &UserStats{
		UserID:             user.ID,
		UserName:           user.UserName,
		Overall:            overallStats(tree, a.today()),
		TopPersonalRecords: topRecords(personalRecords(tree), topRecordsLimit),
	}

	muscleGroups := newOrderedMap[string, *MuscleGroupStats]()
	frequency := newOrderedMap[string, *WorkoutFrequency]()
	for _, w := range tree.Workouts {
		week := PeriodLabel(w.CreatedAt, PeriodWeekly)
		freq := frequency.GetOrInit(week, func() *WorkoutFrequency {
			return &WorkoutFrequency{Period: week}
		})
		freq.WorkoutCount++

		for _, we := range tree.ExercisesOf(w.ID) {
			results := tree.ResultsOf(we.ID)
			if len(results) == 0 {
				continue
			}
			agg := aggregateSets(results)
			freq.TotalVolume += agg.Volume

			name := muscleGroupName(tree, we.ExerciseID)
			mg := muscleGroups.GetOrInit(name, func() *MuscleGroupStats {
				return &MuscleGroupStats{MuscleGroupName: name}
			})
			// one per set
			mg.TimesWorked += agg.Sets
			mg.TotalSets += agg.Sets
			mg.TotalVolume += agg.Volume
			mg.LastWorked = w.CreatedAt
		}
	}

	stats.MuscleGroupBreakdown = make(map[string]MuscleGroupStats, muscleGroups.Len())
	for name, mg := range muscleGroups.Map() {
		stats.MuscleGroupBreakdown[name] = *mg
	}
	stats.WorkoutFrequency = make([]WorkoutFrequency, 0, frequency.Len())
	for _, f := range frequency.Values() {
		stats.WorkoutFrequency = append(stats.WorkoutFrequency, *f)
	}

	return stats, nil
}

func overallStats(tree *workouts.Tree, today time.Time) OverallStats {
	overall := OverallStats{
		TotalWorkouts: len(tree.Workouts),
	}
	if len(tree.Workouts) == 0 {
		return overall
	}

	dates := make([]time.Time, 0, len(tree.Workouts))
	for _, w := range tree.Workouts {
		dates = append(dates, w.CreatedAt)
		overall.TotalExercises += len(tree.ExercisesOf(w.ID))
		t := workoutTotals(tree, w)
		overall.TotalSets += t.Sets
		overall.TotalReps += t.Reps
		overall.TotalVolumeLifted += t.Volume
	}

	first := tree.Workouts[0].CreatedAt
	last := tree.Workouts[len(tree.Workouts)-1].CreatedAt
	overall.FirstWorkout = &first
	overall.LastWorkout = &last
	overall.CurrentStreak = CurrentStreak(dates, today)
	overall.LongestStreak = LongestStreak(dates)

	overall.AverageWorkoutsPerWeek = float64(overall.TotalWorkouts)
	if weeks := wholeWeeksBetween(first, last); weeks > 0 {
		overall.AverageWorkoutsPerWeek = float64(overall.TotalWorkouts) / float64(weeks)
	}

	return overall
}
