package workouts

import "time"

type User struct {
	ID       int64  `json:"id"`
	UserName string `json:"userName"`
}

// Workout is a single training session. CreatedAt is the workout "date",
// stored as a wall-clock date-time without a time zone.
type Workout struct {
	ID        int64     `json:"id"`
	UserID    int64     `json:"userId"`
	CreatedAt time.Time `json:"createdAt"`
	SplitID   *int64    `json:"splitId,omitempty"`
}

type WorkoutExercise struct {
	ID         int64 `json:"id"`
	WorkoutID  int64 `json:"workoutId"`
	ExerciseID int64 `json:"exerciseId"`
}

type Exercise struct {
	ID            int64  `json:"id"`
	Name          string `json:"name"`
	MuscleGroupID *int64 `json:"muscleGroupId,omitempty"`
}

type MuscleGroup struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// Split is a named training-day template, e.g. "Push Day".
type Split struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// ExerciseResult is one performed set.
type ExerciseResult struct {
	ID                int64   `json:"id"`
	WorkoutExerciseID int64   `json:"workoutExerciseId"`
	Reps              int     `json:"reps"`
	SetNumber         int     `json:"setNumber"`
	Weight            float64 `json:"weight"`
}

// Volume is weight x reps of a single set.
func (r ExerciseResult) Volume() float64 {
	return r.Weight * float64(r.Reps)
}
