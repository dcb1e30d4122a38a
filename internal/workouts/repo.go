package workouts

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/2beens/liftstats/internal/telemetry/tracing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"
)

var (
	ErrUserNotFound    = errors.New("user not found")
	ErrWorkoutNotFound = errors.New("workout not found")
)

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

func (r *Repo) FindUserByID(ctx context.Context, id int64) (_ *User, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.findUserByID")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int64("user.id", id))

	var u User
	err = r.db.QueryRow(
		ctx,
		`SELECT id, user_name FROM users WHERE id = $1;`,
		id,
	).Scan(&u.ID, &u.UserName)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("query user %d: %w", id, err)
	}

	return &u, nil
}

func (r *Repo) FindWorkoutByID(ctx context.Context, id int64) (_ *Workout, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.findWorkoutByID")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int64("workout.id", id))

	var w Workout
	err = r.db.QueryRow(
		ctx,
		`SELECT id, user_id, created_at, split_id FROM workout WHERE id = $1;`,
		id,
	).Scan(&w.ID, &w.UserID, &w.CreatedAt, &w.SplitID)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrWorkoutNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("query workout %d: %w", id, err)
	}

	return &w, nil
}

// FindWorkoutsByUser loads all workouts of the user, with their exercises, results,
// splits and muscle groups, using one flat join.
func (r *Repo) FindWorkoutsByUser(ctx context.Context, userID int64) (_ *Tree, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.findWorkoutsByUser")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int64("user.id", userID))

	rows, err := r.db.Query(
		ctx,
		`
			SELECT
				w.id, w.user_id, w.created_at, w.split_id, s.name,
				we.id, we.exercise_id,
				e.name, e.muscle_group_id, mg.name,
				r.id, r.reps, r.set_number, r.weight
			FROM workout w
			LEFT JOIN split s ON s.id = w.split_id
			LEFT JOIN workout_exercise we ON we.workout_id = w.id
			LEFT JOIN exercise e ON e.id = we.exercise_id
			LEFT JOIN muscle_group mg ON mg.id = e.muscle_group_id
			LEFT JOIN exercise_result r ON r.workout_exercise_id = we.id
			WHERE w.user_id = $1
			ORDER BY w.created_at, w.id, we.id, r.set_number, r.id;`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("query workouts: %w", err)
	}
	defer rows.Close()

	builder := NewTreeBuilder()
	for rows.Next() {
		var (
			workoutID, workoutUserID int64
			createdAt                time.Time
			splitID                  *int64
			splitName                *string
			weID, exerciseID         *int64
			exerciseName             *string
			muscleGroupID            *int64
			muscleGroupName          *string
			resultID                 *int64
			reps, setNumber          *int
			weight                   *float64
		)
		if err := rows.Scan(
			&workoutID, &workoutUserID, &createdAt, &splitID, &splitName,
			&weID, &exerciseID,
			&exerciseName, &muscleGroupID, &muscleGroupName,
			&resultID, &reps, &setNumber, &weight,
		); err != nil {
			return nil, fmt.Errorf("rows scan: %w", err)
		}

		builder.AddWorkout(Workout{
			ID:        workoutID,
			UserID:    workoutUserID,
			CreatedAt: createdAt,
			SplitID:   splitID,
		})
		if splitID != nil && splitName != nil {
			builder.AddSplit(Split{ID: *splitID, Name: *splitName})
		}

		if weID == nil || exerciseID == nil {
			continue
		}
		builder.AddWorkoutExercise(WorkoutExercise{
			ID:         *weID,
			WorkoutID:  workoutID,
			ExerciseID: *exerciseID,
		})
		if exerciseName != nil {
			builder.AddExercise(Exercise{
				ID:            *exerciseID,
				Name:          *exerciseName,
				MuscleGroupID: muscleGroupID,
			})
		}
		if muscleGroupID != nil && muscleGroupName != nil {
			builder.AddMuscleGroup(MuscleGroup{ID: *muscleGroupID, Name: *muscleGroupName})
		}

		if resultID == nil {
			continue
		}
		builder.AddResult(ExerciseResult{
			ID:                *resultID,
			WorkoutExerciseID: *weID,
			Reps:              derefOr(reps, 0),
			SetNumber:         derefOr(setNumber, 0),
			Weight:            derefOr(weight, 0),
		})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows: %w", err)
	}

	tree, err := builder.Build()
	if err != nil {
		return nil, err
	}
	span.SetAttributes(
		attribute.Int("workouts.count", len(tree.Workouts)),
		attribute.Int("results.count", len(tree.Results)),
	)

	return tree, nil
}

func derefOr[T any](v *T, def T) T {
	if v == nil {
		return def
	}
	return *v
}
