package analytics

import "time"

// PersonalRecord is the heaviest set a user ever did for an exercise.
type PersonalRecord struct {
	ExerciseID      int64     `json:"exerciseId"`
	ExerciseName    string    `json:"exerciseName"`
	MaxWeight       float64   `json:"maxWeight"`
	RepsAtMaxWeight int       `json:"repsAtMaxWeight"`
	AchievedDate    time.Time `json:"achievedDate"`
	WorkoutID       int64     `json:"workoutId"`
	OneRepMax       float64   `json:"oneRepMax"`
	// TotalVolume holds the reps done at the max weight set, not weight x reps.
	TotalVolume int `json:"totalVolume"`
}

type ExerciseProgress struct {
	ExerciseID   int64               `json:"exerciseId"`
	ExerciseName string              `json:"exerciseName"`
	ProgressData []ProgressDataPoint `json:"progressData"`
	CurrentPR    *PersonalRecord     `json:"currentPR"`
	Stats        *ProgressStats      `json:"stats"`
}

type ProgressDataPoint struct {
	Date               time.Time `json:"date"`
	WorkoutID          int64     `json:"workoutId"`
	AverageWeight      float64   `json:"averageWeight"`
	MaxWeight          float64   `json:"maxWeight"`
	TotalReps          int       `json:"totalReps"`
	TotalSets          int       `json:"totalSets"`
	TotalVolume        float64   `json:"totalVolume"`
	EstimatedOneRepMax float64   `json:"estimatedOneRepMax"`
}

type ProgressStats struct {
	WeightIncreasePercentage float64   `json:"weightIncreasePercentage"`
	VolumeIncreasePercentage float64   `json:"volumeIncreasePercentage"`
	TotalWorkouts            int       `json:"totalWorkouts"`
	FirstWorkout             time.Time `json:"firstWorkout"`
	LastWorkout              time.Time `json:"lastWorkout"`
	// AverageWeightProgression is the max weight gained per workout, in kg.
	AverageWeightProgression float64 `json:"averageWeightProgression"`
}

type WorkoutSummary struct {
	WorkoutID      int64             `json:"workoutId"`
	WorkoutDate    time.Time         `json:"workoutDate"`
	SplitName      string            `json:"splitName"`
	TotalExercises int               `json:"totalExercises"`
	TotalSets      int               `json:"totalSets"`
	TotalReps      int               `json:"totalReps"`
	TotalVolume    float64           `json:"totalVolume"`
	Exercises      []ExerciseSummary `json:"exercises"`
}

type ExerciseSummary struct {
	ExerciseID       int64   `json:"exerciseId"`
	ExerciseName     string  `json:"exerciseName"`
	MuscleGroup      string  `json:"muscleGroup"`
	Sets             int     `json:"sets"`
	TotalReps        int     `json:"totalReps"`
	MaxWeight        float64 `json:"maxWeight"`
	AverageWeight    float64 `json:"averageWeight"`
	Volume           float64 `json:"volume"`
	IsPersonalRecord bool    `json:"isPersonalRecord"`
}

type UserStats struct {
	UserID               int64                       `json:"userId"`
	UserName             string                      `json:"userName"`
	Overall              OverallStats                `json:"overall"`
	TopPersonalRecords   []PersonalRecord            `json:"topPersonalRecords"`
	MuscleGroupBreakdown map[string]MuscleGroupStats `json:"muscleGroupBreakdown"`
	WorkoutFrequency     []WorkoutFrequency          `json:"workoutFrequency"`
}

type OverallStats struct {
	TotalWorkouts          int        `json:"totalWorkouts"`
	TotalExercises         int        `json:"totalExercises"`
	TotalSets              int        `json:"totalSets"`
	TotalReps              int        `json:"totalReps"`
	TotalVolumeLifted      float64    `json:"totalVolumeLifted"`
	FirstWorkout           *time.Time `json:"firstWorkout"`
	LastWorkout            *time.Time `json:"lastWorkout"`
	CurrentStreak          int        `json:"currentStreak"`
	LongestStreak          int        `json:"longestStreak"`
	AverageWorkoutsPerWeek float64    `json:"averageWorkoutsPerWeek"`
}

type MuscleGroupStats struct {
	MuscleGroupName string    `json:"muscleGroupName"`
	TimesWorked     int       `json:"timesWorked"`
	TotalVolume     float64   `json:"totalVolume"`
	TotalSets       int       `json:"totalSets"`
	LastWorked      time.Time `json:"lastWorked"`
}

type WorkoutFrequency struct {
	Period       string  `json:"period"`
	WorkoutCount int     `json:"workoutCount"`
	TotalVolume  float64 `json:"totalVolume"`
}

type VolumeProgress struct {
	Period     string            `json:"period"`
	DataPoints []VolumeDataPoint `json:"dataPoints"`
	Stats      VolumeStats       `json:"stats"`
}

type VolumeDataPoint struct {
	Label                   string    `json:"label"`
	Date                    time.Time `json:"date"`
	TotalVolume             float64   `json:"totalVolume"`
	TotalWorkouts           int       `json:"totalWorkouts"`
	TotalSets               int       `json:"totalSets"`
	TotalReps               int       `json:"totalReps"`
	AverageVolumePerWorkout float64   `json:"averageVolumePerWorkout"`
}

type VolumeStats struct {
	AverageVolume       float64    `json:"averageVolume"`
	PeakVolume          float64    `json:"peakVolume"`
	PeakVolumeDate      *time.Time `json:"peakVolumeDate"`
	VolumeTrend         float64    `json:"volumeTrend"`
	TotalVolumeInPeriod float64    `json:"totalVolumeInPeriod"`
}

// DateRange bounds are inclusive, a nil bound is unbounded.
type DateRange struct {
	From *time.Time
	To   *time.Time
}

// Contains reports whether t is neither before From nor after To.
func (r DateRange) Contains(t time.Time) bool {
	if r.From != nil && t.Before(*r.From) {
		return false
	}
	if r.To != nil && t.After(*r.To) {
		return false
	}
	return true
}

type ProgressParams struct {
	DateRange
	UserID     int64
	ExerciseID int64
}

type VolumeParams struct {
	DateRange
	UserID int64
	Period string
}

type SummariesParams struct {
	DateRange
	UserID int64
}
