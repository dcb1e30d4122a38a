package workouts

import (
	"errors"
	"fmt"
	"sort"
)

var ErrInvalidResult = errors.New("invalid exercise result")

// Tree is a fully loaded workout subgraph (workouts -> workout exercises -> results),
// together with the exercises, muscle groups and splits they reference.
// Entities only refer to each other by id, there are no pointers between them.
//
// Workouts are ordered ascending by CreatedAt and then by ID, workout exercises by ID
// and results by SetNumber and then ID, so scanning the tree is deterministic.
type Tree struct {
	Workouts         []Workout             `json:"workouts"`
	WorkoutExercises []WorkoutExercise     `json:"workoutExercises"`
	Results          []ExerciseResult      `json:"results"`
	Exercises        map[int64]Exercise    `json:"exercises"`
	MuscleGroups     map[int64]MuscleGroup `json:"muscleGroups"`
	Splits           map[int64]Split       `json:"splits"`

	workoutIdx         map[int64]int
	exercisesByWorkout map[int64][]int
	resultsByExercise  map[int64][]int
}

// Reindex sorts the tree and rebuilds the lookup indexes.
// Needed after the tree has been decoded from its JSON form.
func (t *Tree) Reindex() {
	sort.SliceStable(t.Workouts, func(i, j int) bool {
		wi, wj := t.Workouts[i], t.Workouts[j]
		if !wi.CreatedAt.Equal(wj.CreatedAt) {
			return wi.CreatedAt.Before(wj.CreatedAt)
		}
		return wi.ID < wj.ID
	})
	sort.SliceStable(t.WorkoutExercises, func(i, j int) bool {
		return t.WorkoutExercises[i].ID < t.WorkoutExercises[j].ID
	})
	sort.SliceStable(t.Results, func(i, j int) bool {
		ri, rj := t.Results[i], t.Results[j]
		if ri.SetNumber != rj.SetNumber {
			return ri.SetNumber < rj.SetNumber
		}
		return ri.ID < rj.ID
	})

	t.workoutIdx = make(map[int64]int, len(t.Workouts))
	for i, w := range t.Workouts {
		t.workoutIdx[w.ID] = i
	}
	t.exercisesByWorkout = make(map[int64][]int)
	for i, we := range t.WorkoutExercises {
		t.exercisesByWorkout[we.WorkoutID] = append(t.exercisesByWorkout[we.WorkoutID], i)
	}
	t.resultsByExercise = make(map[int64][]int)
	for i, r := range t.Results {
		t.resultsByExercise[r.WorkoutExerciseID] = append(t.resultsByExercise[r.WorkoutExerciseID], i)
	}

	if t.Exercises == nil {
		t.Exercises = make(map[int64]Exercise)
	}
	if t.MuscleGroups == nil {
		t.MuscleGroups = make(map[int64]MuscleGroup)
	}
	if t.Splits == nil {
		t.Splits = make(map[int64]Split)
	}
}

func (t *Tree) Workout(id int64) (Workout, bool) {
	i, ok := t.workoutIdx[id]
	if !ok {
		return Workout{}, false
	}
	return t.Workouts[i], true
}

// ExercisesOf returns the workout exercises of the given workout.
func (t *Tree) ExercisesOf(workoutID int64) []WorkoutExercise {
	idxs := t.exercisesByWorkout[workoutID]
	wes := make([]WorkoutExercise, 0, len(idxs))
	for _, i := range idxs {
		wes = append(wes, t.WorkoutExercises[i])
	}
	return wes
}

// ResultsOf returns the sets performed for the given workout exercise.
func (t *Tree) ResultsOf(workoutExerciseID int64) []ExerciseResult {
	idxs := t.resultsByExercise[workoutExerciseID]
	results := make([]ExerciseResult, 0, len(idxs))
	for _, i := range idxs {
		results = append(results, t.Results[i])
	}
	return results
}

func (t *Tree) Exercise(id int64) (Exercise, bool) {
	e, ok := t.Exercises[id]
	return e, ok
}

// MuscleGroupName returns the name of the muscle group the exercise belongs to.
func (t *Tree) MuscleGroupName(exerciseID int64) (string, bool) {
	e, ok := t.Exercises[exerciseID]
	if !ok || e.MuscleGroupID == nil {
		return "", false
	}
	mg, ok := t.MuscleGroups[*e.MuscleGroupID]
	if !ok {
		return "", false
	}
	return mg.Name, true
}

func (t *Tree) SplitName(w Workout) (string, bool) {
	if w.SplitID == nil {
		return "", false
	}
	s, ok := t.Splits[*w.SplitID]
	if !ok {
		return "", false
	}
	return s.Name, true
}

// TreeBuilder folds (possibly repeated) rows of a flat join into a Tree.
// Every entity is kept once, the first time its id is seen.
type TreeBuilder struct {
	tree             *Tree
	seenWorkouts     map[int64]bool
	seenWorkoutExers map[int64]bool
	seenResults      map[int64]bool
}

func NewTreeBuilder() *TreeBuilder {
	return &TreeBuilder{
		tree: &Tree{
			Exercises:    make(map[int64]Exercise),
			MuscleGroups: make(map[int64]MuscleGroup),
			Splits:       make(map[int64]Split),
		},
		seenWorkouts:     make(map[int64]bool),
		seenWorkoutExers: make(map[int64]bool),
		seenResults:      make(map[int64]bool),
	}
}

func (b *TreeBuilder) AddWorkout(w Workout) *TreeBuilder {
	if !b.seenWorkouts[w.ID] {
		b.seenWorkouts[w.ID] = true
		b.tree.Workouts = append(b.tree.Workouts, w)
	}
	return b
}

func (b *TreeBuilder) AddWorkoutExercise(we WorkoutExercise) *TreeBuilder {
	if !b.seenWorkoutExers[we.ID] {
		b.seenWorkoutExers[we.ID] = true
		b.tree.WorkoutExercises = append(b.tree.WorkoutExercises, we)
	}
	return b
}

func (b *TreeBuilder) AddResult(r ExerciseResult) *TreeBuilder {
	if !b.seenResults[r.ID] {
		b.seenResults[r.ID] = true
		b.tree.Results = append(b.tree.Results, r)
	}
	return b
}

func (b *TreeBuilder) AddExercise(e Exercise) *TreeBuilder {
	if _, ok := b.tree.Exercises[e.ID]; !ok {
		b.tree.Exercises[e.ID] = e
	}
	return b
}

func (b *TreeBuilder) AddMuscleGroup(mg MuscleGroup) *TreeBuilder {
	if _, ok := b.tree.MuscleGroups[mg.ID]; !ok {
		b.tree.MuscleGroups[mg.ID] = mg
	}
	return b
}

func (b *TreeBuilder) AddSplit(s Split) *TreeBuilder {
	if _, ok := b.tree.Splits[s.ID]; !ok {
		b.tree.Splits[s.ID] = s
	}
	return b
}

// Build validates and indexes the collected rows.
func (b *TreeBuilder) Build() (*Tree, error) {
	for _, r := range b.tree.Results {
		if r.Weight < 0 || r.Reps < 0 {
			return nil, fmt.Errorf("result %d (weight %.2f, reps %d): %w", r.ID, r.Weight, r.Reps, ErrInvalidResult)
		}
		if !b.seenWorkoutExers[r.WorkoutExerciseID] {
			return nil, fmt.Errorf("result %d references unknown workout exercise %d: %w", r.ID, r.WorkoutExerciseID, ErrInvalidResult)
		}
	}
	b.tree.Reindex()
	return b.tree, nil
}
