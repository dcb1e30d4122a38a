package analytics

import (
	"context"
	"time"

	"github.com/2beens/liftstats/internal/telemetry/tracing"
	"github.com/2beens/liftstats/internal/workouts"

	"go.opentelemetry.io/otel/attribute"
)

// VolumeProgress buckets the volume of the user's workouts by period.
// Buckets keep the order in which their periods were first met.
func (a *Analyzer) VolumeProgress(ctx context.Context, params VolumeParams) (_ *VolumeProgress, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "analyzer.analytics.volumeProgress")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	defer a.observe("volume_progress", time.Now())
	span.SetAttributes(
		attribute.Int64("user.id", params.UserID),
		attribute.String("period", params.Period),
	)

	if err := requireID("user id", params.UserID); err != nil {
		return nil, err
	}

	tree, err := a.loadTree(ctx, params.UserID)
	if err != nil {
		return nil, err
	}

	period := ParsePeriod(params.Period)
	buckets := newOrderedMap[string, *VolumeDataPoint]()
	for _, w := range tree.Workouts {
		if !params.Contains(w.CreatedAt) {
			continue
		}
		label := PeriodLabel(w.CreatedAt, period)
		bucket := buckets.GetOrInit(label, func() *VolumeDataPoint {
			return &VolumeDataPoint{
				Label: label,
				Date:  w.CreatedAt,
			}
		})
		bucket.merge(workoutTotals(tree, w))
	}

	dataPoints := make([]VolumeDataPoint, 0, buckets.Len())
	for _, b := range buckets.Values() {
		dataPoints = append(dataPoints, *b)
	}

	return &VolumeProgress{
		Period:     params.Period,
		DataPoints: dataPoints,
		Stats:      volumeStats(dataPoints),
	}, nil
}

type totals struct {
	Sets   int
	Reps   int
	Volume float64
}

func workoutTotals(tree *workouts.Tree, w workouts.Workout) totals {
	var t totals
	for _, we := range tree.ExercisesOf(w.ID) {
		for _, r := range tree.ResultsOf(we.ID) {
			t.Sets++
			t.Reps += r.Reps
			t.Volume += r.Volume()
		}
	}
	return t
}

// merge adds a single workout to the bucket.
func (p *VolumeDataPoint) merge(t totals) {
	p.TotalVolume += t.Volume
	p.TotalWorkouts++
	p.TotalSets += t.Sets
	p.TotalReps += t.Reps
	p.AverageVolumePerWorkout = p.TotalVolume / float64(p.TotalWorkouts)
}

func volumeStats(points []VolumeDataPoint) VolumeStats {
	if len(points) == 0 {
		return VolumeStats{}
	}

	var stats VolumeStats
	peak := points[0]
	for _, p := range points {
		stats.TotalVolumeInPeriod += p.TotalVolume
		if p.TotalVolume > peak.TotalVolume {
			peak = p
		}
	}
	stats.AverageVolume = stats.TotalVolumeInPeriod / float64(len(points))
	stats.PeakVolume = peak.TotalVolume
	peakDate := peak.Date
	stats.PeakVolumeDate = &peakDate

	if len(points) > 1 {
		stats.VolumeTrend = percentChange(points[0].TotalVolume, points[len(points)-1].TotalVolume)
	}

	return stats
}
