package test

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/2beens/liftstats/internal/analytics"
	"github.com/2beens/liftstats/internal/workouts"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (s *IntegrationTestSuite) getJSON(path string, expectedStatus int, target any) {
	req, err := http.NewRequest(http.MethodGet, serverEndpoint+path, nil)
	require.NoError(s.T(), err)
	req.Header.Set("User-Agent", "test-agent")

	resp, err := s.httpClient.Do(req)
	require.NoError(s.T(), err)
	defer resp.Body.Close()

	respBytes, err := io.ReadAll(resp.Body)
	require.NoError(s.T(), err)
	require.Equal(s.T(), expectedStatus, resp.StatusCode, string(respBytes))

	if target != nil {
		require.NoError(s.T(), json.Unmarshal(respBytes, target))
	}
}

func analyticsPath(format string, args ...any) string {
	return analytics.RoutePrefix + fmt.Sprintf(format, args...)
}

func (s *IntegrationTestSuite) TestHealth() {
	var resp struct {
		Status       string            `json:"status"`
		Version      string            `json:"version"`
		Dependencies map[string]string `json:"dependencies"`
	}
	s.getJSON("/health", http.StatusOK, &resp)
	assert.Equal(s.T(), "healthy", resp.Status)
	assert.Equal(s.T(), "test-version-info", resp.Version)
	assert.Equal(s.T(), map[string]string{"postgres": "healthy", "redis": "healthy"}, resp.Dependencies)
}

func (s *IntegrationTestSuite) TestPersonalRecords() {
	var records []analytics.PersonalRecord
	s.getJSON(analyticsPath("/users/%d/personal-records", s.seeded.lifterID), http.StatusOK, &records)

	require.Len(s.T(), records, 2)
	bench, squat := records[0], records[1]
	if bench.ExerciseID != s.seeded.benchID {
		bench, squat = squat, bench
	}

	assert.Equal(s.T(), "Bench Press", bench.ExerciseName)
	assert.Equal(s.T(), 90.0, bench.MaxWeight)
	assert.Equal(s.T(), 3, bench.RepsAtMaxWeight)
	// first of the two 90kg sets wins
	assert.Equal(s.T(), s.seeded.workoutIDs[1], bench.WorkoutID)
	assert.InDelta(s.T(), 99.0, bench.OneRepMax, 0.001)

	assert.Equal(s.T(), "Squat", squat.ExerciseName)
	assert.Equal(s.T(), 120.0, squat.MaxWeight)
	assert.Equal(s.T(), s.seeded.workoutIDs[3], squat.WorkoutID)

	var record analytics.PersonalRecord
	s.getJSON(
		analyticsPath("/users/%d/exercises/%d/personal-record", s.seeded.lifterID, s.seeded.benchID),
		http.StatusOK, &record,
	)
	assert.Equal(s.T(), bench, record)

	// plank has no sets, so no record
	s.getJSON(
		analyticsPath("/users/%d/exercises/%d/personal-record", s.seeded.lifterID, s.seeded.plankID),
		http.StatusNotFound, nil,
	)
}

func (s *IntegrationTestSuite) TestExerciseProgress() {
	var progress analytics.ExerciseProgress
	s.getJSON(
		analyticsPath(
			"/users/%d/exercises/%d/progress?startDate=2024-01-16T00:00:00&endDate=2024-01-31T00:00:00",
			s.seeded.lifterID, s.seeded.benchID,
		),
		http.StatusOK, &progress,
	)

	assert.Equal(s.T(), "Bench Press", progress.ExerciseName)
	require.Len(s.T(), progress.ProgressData, 2)
	assert.Equal(s.T(), s.seeded.workoutIDs[1], progress.ProgressData[0].WorkoutID)
	assert.Equal(s.T(), 3, progress.ProgressData[0].TotalSets)
	assert.Equal(s.T(), 1350.0, progress.ProgressData[0].TotalVolume)
	assert.Equal(s.T(), s.seeded.workoutIDs[2], progress.ProgressData[1].WorkoutID)
	require.NotNil(s.T(), progress.CurrentPR)
	assert.Equal(s.T(), 90.0, progress.CurrentPR.MaxWeight)
	require.NotNil(s.T(), progress.Stats)
	assert.Equal(s.T(), 2, progress.Stats.TotalWorkouts)

	s.getJSON(
		analyticsPath("/users/%d/exercises/%d/progress?startDate=16.01.2024", s.seeded.lifterID, s.seeded.benchID),
		http.StatusBadRequest, nil,
	)
}

func (s *IntegrationTestSuite) TestVolumeProgress() {
	var volume analytics.VolumeProgress
	s.getJSON(analyticsPath("/users/%d/volume-progress", s.seeded.lifterID), http.StatusOK, &volume)

	assert.Equal(s.T(), "weekly", volume.Period)
	require.Len(s.T(), volume.DataPoints, 2)
	assert.Equal(s.T(), "2024-W03", volume.DataPoints[0].Label)
	assert.Equal(s.T(), 2850.0, volume.DataPoints[0].TotalVolume)
	assert.Equal(s.T(), "2024-W04", volume.DataPoints[1].Label)
	assert.Equal(s.T(), 810.0, volume.DataPoints[1].TotalVolume)

	var monthly analytics.VolumeProgress
	s.getJSON(analyticsPath("/users/%d/volume-progress?period=monthly", s.seeded.lifterID), http.StatusOK, &monthly)
	require.Len(s.T(), monthly.DataPoints, 1)
	assert.Equal(s.T(), "2024-01", monthly.DataPoints[0].Label)
	assert.Equal(s.T(), 3660.0, monthly.DataPoints[0].TotalVolume)
}

func (s *IntegrationTestSuite) TestWorkoutSummaries() {
	var summary analytics.WorkoutSummary
	s.getJSON(analyticsPath("/workouts/%d/summary", s.seeded.workoutIDs[0]), http.StatusOK, &summary)
	assert.Equal(s.T(), "Push Day", summary.SplitName)
	assert.Equal(s.T(), 2, summary.TotalExercises)
	assert.Equal(s.T(), 3, summary.TotalSets)
	assert.Equal(s.T(), 1500.0, summary.TotalVolume)
	for _, ex := range summary.Exercises {
		assert.False(s.T(), ex.IsPersonalRecord, ex.ExerciseName)
	}

	s.getJSON(analyticsPath("/workouts/%d/summary", s.seeded.workoutIDs[1]), http.StatusOK, &summary)
	assert.Equal(s.T(), "No Split", summary.SplitName)
	require.Len(s.T(), summary.Exercises, 1)
	assert.True(s.T(), summary.Exercises[0].IsPersonalRecord)

	s.getJSON(analyticsPath("/workouts/%d/summary", 987654), http.StatusNotFound, nil)

	var summaries []analytics.WorkoutSummary
	s.getJSON(
		analyticsPath("/users/%d/workout-summaries?startDate=2024-01-17T00:00:00&endDate=2024-01-22T23:59:59", s.seeded.lifterID),
		http.StatusOK, &summaries,
	)
	require.Len(s.T(), summaries, 2)
	assert.Equal(s.T(), s.seeded.workoutIDs[1], summaries[0].WorkoutID)
	assert.Equal(s.T(), s.seeded.workoutIDs[2], summaries[1].WorkoutID)
}

func (s *IntegrationTestSuite) TestUserStats() {
	var stats analytics.UserStats
	s.getJSON(analyticsPath("/users/%d/stats", s.seeded.lifterID), http.StatusOK, &stats)

	assert.Equal(s.T(), "lifter", stats.UserName)
	assert.Equal(s.T(), 4, stats.Overall.TotalWorkouts)
	assert.Equal(s.T(), 8, stats.Overall.TotalSets)
	assert.Equal(s.T(), 44, stats.Overall.TotalReps)
	assert.Equal(s.T(), 3660.0, stats.Overall.TotalVolumeLifted)
	assert.Equal(s.T(), 2, stats.Overall.LongestStreak)
	require.Len(s.T(), stats.TopPersonalRecords, 2)
	assert.Equal(s.T(), s.seeded.squatID, stats.TopPersonalRecords[0].ExerciseID)
	assert.Equal(s.T(), 6, stats.MuscleGroupBreakdown["Chest"].TimesWorked)

	s.getJSON(analyticsPath("/users/%d/stats", 987654), http.StatusNotFound, nil)
	s.getJSON(analyticsPath("/users/%d/stats", 0), http.StatusBadRequest, nil)
}

func (s *IntegrationTestSuite) TestCacheInvalidation() {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var userID int64
	require.NoError(s.T(), s.dbPool.QueryRow(ctx, `INSERT INTO users (user_name) VALUES ('newcomer') RETURNING id`).Scan(&userID))

	var stats analytics.UserStats
	s.getJSON(analyticsPath("/users/%d/stats", userID), http.StatusOK, &stats)
	require.Equal(s.T(), 0, stats.Overall.TotalWorkouts)

	_, err := s.dbPool.Exec(ctx, `INSERT INTO workout (user_id, created_at) VALUES ($1, $2)`, userID, day(20))
	require.NoError(s.T(), err)

	// still served from the cache
	s.getJSON(analyticsPath("/users/%d/stats", userID), http.StatusOK, &stats)
	require.Equal(s.T(), 0, stats.Overall.TotalWorkouts)

	require.NoError(s.T(), workouts.PublishChange(ctx, s.redisClient, userID))
	assert.Eventually(s.T(), func() bool {
		var fresh analytics.UserStats
		s.getJSON(analyticsPath("/users/%d/stats", userID), http.StatusOK, &fresh)
		return fresh.Overall.TotalWorkouts == 1
	}, 5*time.Second, 100*time.Millisecond)
}
