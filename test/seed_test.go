package test

import (
	"context"
	"fmt"
	"time"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type seededData struct {
	lifterID    int64
	otherUserID int64
	benchID     int64
	squatID     int64
	plankID     int64
	workoutIDs  []int64 // lifter workouts, in date order
}

type seedSet struct {
	weight float64
	reps   int
}

type seedExercise struct {
	exerciseID int64
	sets       []seedSet
}

func day(d int) time.Time {
	return time.Date(2024, 1, d, 18, 30, 0, 0, time.UTC)
}

// seed writes a known training history for one lifter, and random noise
// for a second user that must never leak into the lifter's analytics.
func seed(ctx context.Context, dbPool *pgxpool.Pool) (seededData, error) {
	var data seededData
	faker := gofakeit.New(42)

	err := pgx.BeginFunc(ctx, dbPool, func(tx pgx.Tx) error {
		var chestID, legsID, pushSplitID int64
		if err := insertReturningID(ctx, tx, &chestID, `INSERT INTO muscle_group (name) VALUES ($1) RETURNING id`, "Chest"); err != nil {
			return err
		}
		if err := insertReturningID(ctx, tx, &legsID, `INSERT INTO muscle_group (name) VALUES ($1) RETURNING id`, "Legs"); err != nil {
			return err
		}
		if err := insertReturningID(ctx, tx, &pushSplitID, `INSERT INTO split (name) VALUES ($1) RETURNING id`, "Push Day"); err != nil {
			return err
		}
		if err := insertReturningID(ctx, tx, &data.benchID, `INSERT INTO exercise (name, muscle_group_id) VALUES ($1, $2) RETURNING id`, "Bench Press", chestID); err != nil {
			return err
		}
		if err := insertReturningID(ctx, tx, &data.squatID, `INSERT INTO exercise (name, muscle_group_id) VALUES ($1, $2) RETURNING id`, "Squat", legsID); err != nil {
			return err
		}
		if err := insertReturningID(ctx, tx, &data.plankID, `INSERT INTO exercise (name) VALUES ($1) RETURNING id`, "Plank"); err != nil {
			return err
		}

		if err := insertReturningID(ctx, tx, &data.lifterID, `INSERT INTO users (user_name) VALUES ($1) RETURNING id`, "lifter"); err != nil {
			return err
		}
		if err := insertReturningID(ctx, tx, &data.otherUserID, `INSERT INTO users (user_name) VALUES ($1) RETURNING id`, faker.Username()); err != nil {
			return err
		}

		lifterWorkouts := []struct {
			createdAt time.Time
			splitID   *int64
			exercises []seedExercise
		}{
			{
				createdAt: day(15),
				splitID:   &pushSplitID,
				exercises: []seedExercise{
					{exerciseID: data.benchID, sets: []seedSet{{60, 10}, {80, 5}}},
					{exerciseID: data.squatID, sets: []seedSet{{100, 5}}},
				},
			},
			{
				createdAt: day(17),
				exercises: []seedExercise{
					{exerciseID: data.benchID, sets: []seedSet{{80, 5}, {90, 3}, {85, 8}}},
				},
			},
			{
				createdAt: day(22),
				exercises: []seedExercise{
					{exerciseID: data.benchID, sets: []seedSet{{90, 5}}},
					{exerciseID: data.plankID},
				},
			},
			{
				createdAt: day(23),
				exercises: []seedExercise{
					{exerciseID: data.squatID, sets: []seedSet{{120, 3}}},
				},
			},
		}
		for _, w := range lifterWorkouts {
			workoutID, err := insertWorkout(ctx, tx, data.lifterID, w.createdAt, w.splitID, w.exercises)
			if err != nil {
				return err
			}
			data.workoutIDs = append(data.workoutIDs, workoutID)
		}

		// noise: heavier lifts on other days, never visible for the lifter
		for i := 0; i < 10; i++ {
			createdAt := faker.DateRange(day(1), day(28))
			sets := make([]seedSet, faker.Number(1, 5))
			for j := range sets {
				sets[j] = seedSet{
					weight: float64(faker.Number(150, 250)),
					reps:   faker.Number(1, 12),
				}
			}
			exercises := []seedExercise{{exerciseID: data.benchID, sets: sets}}
			if _, err := insertWorkout(ctx, tx, data.otherUserID, createdAt, nil, exercises); err != nil {
				return err
			}
		}

		return nil
	})
	if err != nil {
		return seededData{}, fmt.Errorf("seed: %w", err)
	}

	return data, nil
}

func insertWorkout(
	ctx context.Context,
	tx pgx.Tx,
	userID int64,
	createdAt time.Time,
	splitID *int64,
	exercises []seedExercise,
) (int64, error) {
	var workoutID int64
	if err := insertReturningID(
		ctx, tx, &workoutID,
		`INSERT INTO workout (user_id, created_at, split_id) VALUES ($1, $2, $3) RETURNING id`,
		userID, createdAt, splitID,
	); err != nil {
		return 0, err
	}

	for _, ex := range exercises {
		var weID int64
		if err := insertReturningID(
			ctx, tx, &weID,
			`INSERT INTO workout_exercise (workout_id, exercise_id) VALUES ($1, $2) RETURNING id`,
			workoutID, ex.exerciseID,
		); err != nil {
			return 0, err
		}

		rows := make([][]any, 0, len(ex.sets))
		for i, set := range ex.sets {
			rows = append(rows, []any{weID, set.reps, i + 1, set.weight})
		}
		if _, err := tx.CopyFrom(
			ctx,
			pgx.Identifier{"exercise_result"},
			[]string{"workout_exercise_id", "reps", "set_number", "weight"},
			pgx.CopyFromRows(rows),
		); err != nil {
			return 0, fmt.Errorf("copy results of workout exercise %d: %w", weID, err)
		}
	}

	return workoutID, nil
}

func insertReturningID(ctx context.Context, tx pgx.Tx, id *int64, query string, args ...any) error {
	if err := tx.QueryRow(ctx, query, args...).Scan(id); err != nil {
		return fmt.Errorf("insert [%s]: %w", query, err)
	}
	return nil
}
